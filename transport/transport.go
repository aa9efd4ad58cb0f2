// Package transport moves one encoded RPC request to a node and returns
// one encoded response.
//
// The Transport contract is the seam between the typed client layer and the
// wire: parameters arrive as JSON text fragments and the result leaves as a
// JSON text fragment, so implementations never see domain types and the
// client never sees envelopes. HTTP is the standard implementation; Local
// runs handlers in-process, and Discovering fans out over endpoints found
// in a registry.
package transport

import "context"

// Transport performs a single request/response exchange.
//
// Implementations must signal two failure classes distinctly: failure to
// reach or parse a response from the node, and an explicit application
// error reported inside the response envelope (*protocol.RPCError). The
// latter is never silently treated as success.
type Transport interface {
	// Invoke sends the method with its pre-serialized JSON parameter
	// fragments, in order, and returns the serialized result fragment.
	// The transport does not know the semantic type of the result, only
	// that it is a JSON value.
	Invoke(ctx context.Context, method string, params []string) (string, error)
}
