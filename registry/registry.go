// Package registry tracks the node RPC endpoints available to a client.
//
// A deployment running several Filecoin nodes registers each node's RPC
// endpoint under its network name ("mainnet", "calibnet", ...). Clients
// discover the current endpoint set and spread calls across it; entries
// expire automatically when the registering side stops renewing them.
package registry

import "context"

// Endpoint is one reachable node RPC endpoint.
type Endpoint struct {
	URL     string // e.g. "http://10.0.1.5:2345/rpc/v0"
	Token   string `json:",omitempty"` // bearer credential for this node, if any
	Weight  int    // relative capacity for load balancing
	Version string // node version advertised at registration
}

// Registry is the endpoint directory for named networks.
type Registry interface {
	// Register adds an endpoint under a network name with a TTL in seconds.
	// The entry is renewed automatically until Deregister is called or the
	// registering process dies.
	Register(ctx context.Context, network string, ep Endpoint, ttl int64) error

	// Deregister removes the endpoint with the given URL.
	Deregister(ctx context.Context, network, url string) error

	// Discover returns all endpoints currently registered for a network.
	Discover(ctx context.Context, network string) ([]Endpoint, error)

	// Watch emits the updated endpoint list whenever the set changes.
	Watch(ctx context.Context, network string) <-chan []Endpoint
}
