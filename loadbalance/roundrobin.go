package loadbalance

import (
	"fmt"
	"sync/atomic"

	"github.com/ChainSafe/forest-rpc/registry"
)

// RoundRobinBalancer cycles through endpoints in order. An atomic counter
// keeps Pick lock-free and goroutine-safe.
//
// Best for: pools of nodes with similar capacity.
type RoundRobinBalancer struct {
	counter int64
}

// Pick selects the next endpoint in round-robin order.
func (b *RoundRobinBalancer) Pick(endpoints []registry.Endpoint) (*registry.Endpoint, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints available")
	}
	index := atomic.AddInt64(&b.counter, 1) % int64(len(endpoints))
	return &endpoints[index], nil
}

func (b *RoundRobinBalancer) Name() string {
	return "RoundRobin"
}
