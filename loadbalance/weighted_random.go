package loadbalance

import (
	"fmt"
	"math/rand"

	"github.com/ChainSafe/forest-rpc/registry"
)

// WeightedRandomBalancer picks endpoints at random, proportionally to
// their registered weight. Nodes on bigger hardware get a bigger share.
type WeightedRandomBalancer struct{}

func (b *WeightedRandomBalancer) Pick(endpoints []registry.Endpoint) (*registry.Endpoint, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints available")
	}

	totalWeight := 0
	for _, ep := range endpoints {
		totalWeight += ep.Weight
	}
	if totalWeight <= 0 {
		// No usable weights, fall back to uniform random.
		return &endpoints[rand.Intn(len(endpoints))], nil
	}

	r := rand.Intn(totalWeight)
	for i := range endpoints {
		r -= endpoints[i].Weight
		if r < 0 {
			return &endpoints[i], nil
		}
	}

	return nil, fmt.Errorf("unexpected error in weighted random selection")
}

func (b *WeightedRandomBalancer) Name() string {
	return "WeightedRandom"
}
