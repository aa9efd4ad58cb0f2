package middleware

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimit throttles outbound calls with a token bucket, protecting a
// shared node from bursty callers. Calls wait for a token rather than
// failing, so the context deadline still bounds the total wait.
func RateLimit(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst)
	return func(next InvokeFunc) InvokeFunc {
		return func(ctx context.Context, method string, params []string) (string, error) {
			if err := limiter.Wait(ctx); err != nil {
				return "", err
			}
			return next(ctx, method, params)
		}
	}
}
