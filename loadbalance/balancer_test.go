package loadbalance

import (
	"fmt"
	"testing"

	"github.com/ChainSafe/forest-rpc/registry"
)

var testEndpoints = []registry.Endpoint{
	{URL: "http://10.0.0.1:2345/rpc/v0", Weight: 10, Version: "1.0"},
	{URL: "http://10.0.0.2:2345/rpc/v0", Weight: 5, Version: "1.0"},
	{URL: "http://10.0.0.3:2345/rpc/v0", Weight: 10, Version: "1.0"},
}

func TestRoundRobin(t *testing.T) {
	b := &RoundRobinBalancer{}

	// Pick 3 times, should cycle through all endpoints
	results := make([]string, 3)
	for i := 0; i < 3; i++ {
		ep, err := b.Pick(testEndpoints)
		if err != nil {
			t.Fatal(err)
		}
		results[i] = ep.URL
	}

	// Pick again, should wrap around to first
	ep, _ := b.Pick(testEndpoints)
	if ep.URL != results[0] {
		t.Fatalf("expect wrap around to %s, got %s", results[0], ep.URL)
	}
}

func TestRoundRobinEmpty(t *testing.T) {
	b := &RoundRobinBalancer{}
	_, err := b.Pick([]registry.Endpoint{})
	if err == nil {
		t.Fatal("expect error for empty endpoint list")
	}
}

func TestWeightedRandom(t *testing.T) {
	b := &WeightedRandomBalancer{}

	counts := map[string]int{}
	n := 10000
	for i := 0; i < n; i++ {
		ep, err := b.Pick(testEndpoints)
		if err != nil {
			t.Fatal(err)
		}
		counts[ep.URL]++
	}

	// Weight ratio is 10:5:10, so node 1 should get ~2x of node 2
	ratio := float64(counts[testEndpoints[0].URL]) / float64(counts[testEndpoints[1].URL])
	if ratio < 1.5 || ratio > 2.5 {
		t.Fatalf("weight ratio node1/node2 = %.2f, expect ~2.0", ratio)
	}
}

func TestWeightedRandomZeroWeights(t *testing.T) {
	unweighted := []registry.Endpoint{
		{URL: "http://10.0.0.1:2345/rpc/v0"},
		{URL: "http://10.0.0.2:2345/rpc/v0"},
	}

	b := &WeightedRandomBalancer{}
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		ep, err := b.Pick(unweighted)
		if err != nil {
			t.Fatal(err)
		}
		counts[ep.URL]++
	}

	// Falls back to uniform random; both should be hit
	if len(counts) != 2 {
		t.Fatalf("expect both endpoints picked, got %v", counts)
	}
}

func TestConsistentHash(t *testing.T) {
	// Same key should always map to the same endpoint
	b1 := NewConsistentHashBalancer("wallet-f01234")
	b2 := NewConsistentHashBalancer("wallet-f01234")

	ep1, err := b1.Pick(testEndpoints)
	if err != nil {
		t.Fatal(err)
	}
	ep2, _ := b2.Pick(testEndpoints)
	if ep1.URL != ep2.URL {
		t.Fatalf("same key mapped to different endpoints: %s vs %s", ep1.URL, ep2.URL)
	}

	// Picks are stable across calls
	ep3, _ := b1.Pick(testEndpoints)
	if ep3.URL != ep1.URL {
		t.Fatalf("key remapped between picks: %s vs %s", ep1.URL, ep3.URL)
	}

	// Different keys should (likely) spread across endpoints
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		b := NewConsistentHashBalancer(fmt.Sprintf("key-%d", i))
		ep, _ := b.Pick(testEndpoints)
		seen[ep.URL] = true
	}

	// With 100 different keys and 3 nodes, we should hit at least 2
	if len(seen) < 2 {
		t.Fatalf("expect at least 2 different endpoints, got %d", len(seen))
	}
}

func TestConsistentHashSetSwap(t *testing.T) {
	old := []registry.Endpoint{
		{URL: "http://old1:2345/rpc/v0", Weight: 10},
		{URL: "http://old2:2345/rpc/v0", Weight: 10},
	}
	replacement := []registry.Endpoint{
		{URL: "http://new1:2345/rpc/v0", Weight: 10},
		{URL: "http://new2:2345/rpc/v0", Weight: 10},
	}

	b := NewConsistentHashBalancer("wallet-f01234")
	if _, err := b.Pick(old); err != nil {
		t.Fatal(err)
	}

	// Same pool size, entirely new nodes: the ring must be rebuilt, or
	// calls keep routing to deregistered endpoints.
	ep, err := b.Pick(replacement)
	if err != nil {
		t.Fatal(err)
	}
	if ep.URL != replacement[0].URL && ep.URL != replacement[1].URL {
		t.Fatalf("expect pick from the replacement set, got %s", ep.URL)
	}

	// Reordering the same set is not a change; the mapping stays put.
	first, _ := b.Pick(replacement)
	second, _ := b.Pick([]registry.Endpoint{replacement[1], replacement[0]})
	if first.URL != second.URL {
		t.Fatalf("key remapped on reorder: %s vs %s", first.URL, second.URL)
	}
}

func TestConsistentHashEmpty(t *testing.T) {
	b := NewConsistentHashBalancer("any")
	if _, err := b.Pick(nil); err == nil {
		t.Fatal("expect error for empty endpoint list")
	}
}

func TestBalancerNames(t *testing.T) {
	if (&RoundRobinBalancer{}).Name() != "RoundRobin" {
		t.Fatal("unexpected RoundRobin name")
	}
	if (&WeightedRandomBalancer{}).Name() != "WeightedRandom" {
		t.Fatal("unexpected WeightedRandom name")
	}
	if NewConsistentHashBalancer("k").Name() != "ConsistentHash" {
		t.Fatal("unexpected ConsistentHash name")
	}
}
