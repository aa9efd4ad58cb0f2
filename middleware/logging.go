package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Logging records every invocation: method, duration, and outcome.
// Parameters and results are not logged: they may carry keys and signed
// messages.
func Logging(logger *zap.Logger) Middleware {
	return func(next InvokeFunc) InvokeFunc {
		return func(ctx context.Context, method string, params []string) (string, error) {
			start := time.Now()
			result, err := next(ctx, method, params)
			fields := []zap.Field{
				zap.String("method", method),
				zap.Int("params", len(params)),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Warn("rpc call failed", append(fields, zap.Error(err))...)
				return result, err
			}
			logger.Debug("rpc call", fields...)
			return result, nil
		}
	}
}
