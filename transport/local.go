package transport

import (
	"context"
	"fmt"
	"sync"
)

// Handler serves one method on a Local transport. It receives the
// parameter fragments exactly as a remote node would and returns the
// serialized result fragment.
type Handler func(params []string) (string, error)

// Local is an in-process Transport: a map from method name to handler.
// It stands in for a node in tests and lets the typed client run against
// embedded implementations without any networking.
type Local struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewLocal creates an empty in-process transport.
func NewLocal() *Local {
	return &Local{handlers: make(map[string]Handler)}
}

// Register installs the handler for a method name, replacing any previous
// one.
func (l *Local) Register(method string, h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers[method] = h
}

// Invoke dispatches to the registered handler.
func (l *Local) Invoke(ctx context.Context, method string, params []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	l.mu.RLock()
	h, ok := l.handlers[method]
	l.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("local transport: no handler for %s", method)
	}
	return h(params)
}
