// Package client is the strongly-typed Filecoin JSON-RPC client.
//
// One exported method exists per remote operation; the full list lives in
// the Methods catalog. Every method follows the same path: encode each
// argument with the wire-codec rule its catalog entry declares for that
// position, hand the method name and the ordered JSON fragments to the
// Transport, and decode the serialized result under the declared result
// kind. The catalog is pure data; the plumbing lives here, once.
//
// The client holds no mutable state and performs no retries, caching, or
// batching; it is safe for concurrent use whenever its Transport is.
package client

import (
	"context"
	"fmt"

	"github.com/ChainSafe/forest-rpc/apiinfo"
	"github.com/ChainSafe/forest-rpc/codec"
	"github.com/ChainSafe/forest-rpc/transport"
)

// Client issues typed calls through a Transport.
type Client struct {
	transport transport.Transport
}

// New binds a client to any Transport implementation.
func New(t transport.Transport) *Client {
	return &Client{transport: t}
}

// NewHTTP connects to a node RPC endpoint URL. An empty token means
// unauthenticated requests.
func NewHTTP(endpoint, token string, opts ...transport.HTTPOption) *Client {
	if token != "" {
		opts = append([]transport.HTTPOption{transport.WithToken(token)}, opts...)
	}
	return New(transport.NewHTTP(endpoint, opts...))
}

// FromEnv connects using the FULLNODE_API_INFO environment variable,
// falling back to the local node default.
func FromEnv(opts ...transport.HTTPOption) (*Client, error) {
	info, err := apiinfo.FromEnv()
	if err != nil {
		return nil, err
	}
	return NewHTTP(info.Addr, info.Token, opts...), nil
}

// invoke encodes the arguments in declared order and performs one
// exchange. The catalog's arity is a static contract with the generated
// method list: a mismatch cannot be caused by callers or remote state, so
// it panics instead of returning an error.
func (c *Client) invoke(ctx context.Context, name string, args ...any) (string, error) {
	m, ok := catalog[name]
	if !ok {
		panic(fmt.Sprintf("rpc: method %s not in catalog", name))
	}
	if len(args) != len(m.Params) {
		panic(fmt.Sprintf("rpc: %s takes %d params, got %d", name, len(m.Params), len(args)))
	}

	params := make([]string, len(args))
	for i, arg := range args {
		p, err := codec.EncodeParam(m.Params[i], arg)
		if err != nil {
			return "", fmt.Errorf("%s: param %d: %w", name, i, err)
		}
		params[i] = p
	}
	return c.transport.Invoke(ctx, name, params)
}

// call performs one exchange and decodes the result into T under the
// catalog's result kind. Transport and application errors pass through
// unchanged; shape mismatches surface as *codec.DecodeError.
func call[T any](ctx context.Context, c *Client, name string, args ...any) (T, error) {
	raw, err := c.invoke(ctx, name, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return codec.DecodeResult[T](name, catalog[name].Result, raw)
}
