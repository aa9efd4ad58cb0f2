package middleware

import (
	"context"
	"time"
)

// Timeout bounds each call with a context deadline. The deadline covers
// the whole exchange including any retries stacked inside it.
func Timeout(timeout time.Duration) Middleware {
	return func(next InvokeFunc) InvokeFunc {
		return func(ctx context.Context, method string, params []string) (string, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return next(ctx, method, params)
		}
	}
}
