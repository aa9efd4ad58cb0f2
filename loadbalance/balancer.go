// Package loadbalance provides strategies for spreading RPC calls across
// multiple node endpoints.
//
// Three strategies are implemented:
//   - RoundRobin:      equal-capacity nodes
//   - WeightedRandom:  heterogeneous nodes (different hardware, colocation)
//   - ConsistentHash:  affinity; the same key always lands on the same node
package loadbalance

import "github.com/ChainSafe/forest-rpc/registry"

// Balancer selects a target endpoint before each RPC call.
type Balancer interface {
	// Pick selects one endpoint from the available list.
	// Called on every RPC call, so it must be goroutine-safe.
	Pick(endpoints []registry.Endpoint) (*registry.Endpoint, error)

	// Name returns the strategy name (for logging/debugging).
	Name() string
}
