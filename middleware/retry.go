package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/ChainSafe/forest-rpc/protocol"
)

// Retry re-attempts failed calls with exponential backoff.
//
// Only transport-level failures are retried. An application error
// (*protocol.RPCError) means the node received and rejected the call;
// repeating it would re-execute a possibly stateful operation, so those
// surface immediately. Context cancellation also stops retrying.
func Retry(maxRetries int, baseDelay time.Duration) Middleware {
	return func(next InvokeFunc) InvokeFunc {
		return func(ctx context.Context, method string, params []string) (string, error) {
			result, err := next(ctx, method, params)
			for i := 0; i < maxRetries && err != nil; i++ {
				var rpcErr *protocol.RPCError
				if errors.As(err, &rpcErr) {
					return result, err
				}
				select {
				case <-time.After(baseDelay * time.Duration(1<<i)): // exponential backoff
				case <-ctx.Done():
					return result, err
				}
				result, err = next(ctx, method, params)
			}
			return result, err
		}
	}
}
