// Package middleware wraps a Transport with cross-cutting behavior.
//
// The core client performs no retry, backoff, logging, or rate limiting;
// resilience belongs above that layer. Middleware composes around the
// single Invoke primitive, so every cataloged method picks the behavior up
// for free:
//
//	t := middleware.Wrap(transport.NewHTTP(url),
//		middleware.Logging(logger),
//		middleware.Retry(3, 100*time.Millisecond),
//	)
//	c := client.New(t)
package middleware

import (
	"context"

	"github.com/ChainSafe/forest-rpc/transport"
)

// InvokeFunc mirrors Transport.Invoke as a plain function.
type InvokeFunc func(ctx context.Context, method string, params []string) (string, error)

// Invoke makes InvokeFunc itself a Transport.
func (f InvokeFunc) Invoke(ctx context.Context, method string, params []string) (string, error) {
	return f(ctx, method, params)
}

// Middleware decorates an InvokeFunc.
type Middleware func(next InvokeFunc) InvokeFunc

// Chain combines middlewares into one; the first listed is outermost.
func Chain(middlewares ...Middleware) Middleware {
	return func(next InvokeFunc) InvokeFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// Wrap applies middlewares around a Transport and returns the wrapped
// Transport.
func Wrap(t transport.Transport, middlewares ...Middleware) transport.Transport {
	return Chain(middlewares...)(t.Invoke)
}
