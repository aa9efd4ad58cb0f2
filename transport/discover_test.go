package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ChainSafe/forest-rpc/loadbalance"
	"github.com/ChainSafe/forest-rpc/registry"
)

// memRegistry is an in-memory Registry for tests.
type memRegistry struct {
	mu        sync.Mutex
	endpoints map[string][]registry.Endpoint
}

func newMemRegistry() *memRegistry {
	return &memRegistry{endpoints: make(map[string][]registry.Endpoint)}
}

func (m *memRegistry) Register(ctx context.Context, network string, ep registry.Endpoint, ttl int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.endpoints[network] = append(m.endpoints[network], ep)
	return nil
}

func (m *memRegistry) Deregister(ctx context.Context, network, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	eps := m.endpoints[network][:0]
	for _, ep := range m.endpoints[network] {
		if ep.URL != url {
			eps = append(eps, ep)
		}
	}
	m.endpoints[network] = eps
	return nil
}

func (m *memRegistry) Discover(ctx context.Context, network string) ([]registry.Endpoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]registry.Endpoint(nil), m.endpoints[network]...), nil
}

func (m *memRegistry) Watch(ctx context.Context, network string) <-chan []registry.Endpoint {
	ch := make(chan []registry.Endpoint)
	close(ch)
	return ch
}

func rpcStub(result string, hits *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		io.WriteString(w, `{"jsonrpc":"2.0","id":null,"result":`+result+`}`)
	}))
}

func TestDiscoveringInvoke(t *testing.T) {
	srv := rpcStub(`"mainnet"`, nil)
	defer srv.Close()

	reg := newMemRegistry()
	reg.Register(context.Background(), "mainnet", registry.Endpoint{URL: srv.URL, Weight: 1}, 0)

	d := NewDiscovering(reg, &loadbalance.RoundRobinBalancer{}, "mainnet")
	result, err := d.Invoke(context.Background(), "Filecoin.StateNetworkName", nil)
	if err != nil {
		t.Fatal(err)
	}
	if result != `"mainnet"` {
		t.Fatalf("expect result from discovered endpoint, got %s", result)
	}
}

func TestDiscoveringSpreadsCalls(t *testing.T) {
	var hits1, hits2 int32
	srv1 := rpcStub(`true`, &hits1)
	defer srv1.Close()
	srv2 := rpcStub(`true`, &hits2)
	defer srv2.Close()

	reg := newMemRegistry()
	reg.Register(context.Background(), "mainnet", registry.Endpoint{URL: srv1.URL, Weight: 1}, 0)
	reg.Register(context.Background(), "mainnet", registry.Endpoint{URL: srv2.URL, Weight: 1}, 0)

	d := NewDiscovering(reg, &loadbalance.RoundRobinBalancer{}, "mainnet")
	for i := 0; i < 4; i++ {
		if _, err := d.Invoke(context.Background(), "Filecoin.NetListening", nil); err != nil {
			t.Fatal(err)
		}
	}

	if hits1 != 2 || hits2 != 2 {
		t.Fatalf("expect round-robin 2/2, got %d/%d", hits1, hits2)
	}
}

func TestDiscoveringEndpointToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		io.WriteString(w, `{"jsonrpc":"2.0","id":null,"result":true}`)
	}))
	defer srv.Close()

	reg := newMemRegistry()
	reg.Register(context.Background(), "mainnet", registry.Endpoint{URL: srv.URL, Token: "node-token", Weight: 1}, 0)

	// The endpoint's own token wins over the shared option.
	d := NewDiscovering(reg, &loadbalance.RoundRobinBalancer{}, "mainnet", WithToken("shared-token"))
	if _, err := d.Invoke(context.Background(), "Filecoin.NetListening", nil); err != nil {
		t.Fatal(err)
	}
	if auth != "Bearer node-token" {
		t.Fatalf("expect endpoint token, got %q", auth)
	}
}

func TestDiscoveringNoEndpoints(t *testing.T) {
	d := NewDiscovering(newMemRegistry(), &loadbalance.RoundRobinBalancer{}, "mainnet")
	if _, err := d.Invoke(context.Background(), "Filecoin.ChainHead", nil); err == nil {
		t.Fatal("expect error when no endpoints are registered")
	}
}
