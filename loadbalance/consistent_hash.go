package loadbalance

import (
	"fmt"
	"hash/crc32"
	"sort"
	"strings"
	"sync"

	"github.com/ChainSafe/forest-rpc/registry"
)

// ConsistentHashBalancer maps a key to an endpoint using a hash ring, so
// the same key lands on the same node until the ring changes. Useful when
// nodes keep per-caller state warm (lookback caches, indexed state).
//
// Virtual nodes: each real endpoint is mapped to N points on the ring.
// Without them, a handful of endpoints may cluster together and take
// uneven load; 100 virtual nodes per endpoint gives statistical
// uniformity.
type ConsistentHashBalancer struct {
	mu       sync.Mutex
	replicas int                           // virtual nodes per real endpoint
	key      string                        // hashing key, set per caller
	members  string                        // sorted URLs the ring was built from
	ring     []uint32                      // sorted hash values on the ring
	nodes    map[uint32]*registry.Endpoint // hash value → endpoint
}

// NewConsistentHashBalancer creates a hash ring with 100 virtual nodes per
// endpoint. The key identifies the caller (or any affinity token).
func NewConsistentHashBalancer(key string) *ConsistentHashBalancer {
	return &ConsistentHashBalancer{
		replicas: 100,
		key:      key,
		nodes:    make(map[uint32]*registry.Endpoint),
	}
}

// add places an endpoint onto the hash ring with N virtual nodes, each
// hashed from "{url}#{i}" to spread across the ring. The endpoint is
// copied so ring entries never point into a caller's slice.
func (b *ConsistentHashBalancer) add(ep registry.Endpoint) {
	for i := 0; i < b.replicas; i++ {
		hash := crc32.ChecksumIEEE([]byte(fmt.Sprintf("%s#%d", ep.URL, i)))
		b.ring = append(b.ring, hash)
		b.nodes[hash] = &ep
	}
	sort.Slice(b.ring, func(i, j int) bool {
		return b.ring[i] < b.ring[j]
	})
}

// signature identifies an endpoint set by its sorted URLs, independent of
// the order the registry returned them in.
func signature(endpoints []registry.Endpoint) string {
	urls := make([]string, len(endpoints))
	for i := range endpoints {
		urls[i] = endpoints[i].URL
	}
	sort.Strings(urls)
	return strings.Join(urls, "\n")
}

// Pick rebuilds the ring if the endpoint set changed, hashes the key, and
// binary-searches for the first ring point >= hash, wrapping around to the
// first point past the top.
func (b *ConsistentHashBalancer) Pick(endpoints []registry.Endpoint) (*registry.Endpoint, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints available")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if members := signature(endpoints); members != b.members {
		b.ring = b.ring[:0]
		clear(b.nodes)
		for i := range endpoints {
			b.add(endpoints[i])
		}
		b.members = members
	}

	hash := crc32.ChecksumIEEE([]byte(b.key))
	idx := sort.Search(len(b.ring), func(i int) bool {
		return b.ring[i] >= hash
	})
	if idx == len(b.ring) {
		idx = 0
	}
	return b.nodes[b.ring[idx]], nil
}

func (b *ConsistentHashBalancer) Name() string {
	return "ConsistentHash"
}
