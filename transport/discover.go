package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/ChainSafe/forest-rpc/loadbalance"
	"github.com/ChainSafe/forest-rpc/registry"
)

// Discovering is a Transport that resolves the target node per call: it
// asks a registry for the endpoints currently serving a network, lets a
// balancer pick one, and delegates to an HTTP transport for that endpoint.
// HTTP transports are created lazily and cached per endpoint URL.
type Discovering struct {
	registry registry.Registry
	balancer loadbalance.Balancer
	network  string
	opts     []HTTPOption

	mu         sync.Mutex
	transports map[string]*HTTP
}

// NewDiscovering creates a discovering transport for one network name.
// Extra HTTP options apply to every per-endpoint transport; each
// endpoint's own token takes precedence over a WithToken option.
func NewDiscovering(reg registry.Registry, bal loadbalance.Balancer, network string, opts ...HTTPOption) *Discovering {
	return &Discovering{
		registry:   reg,
		balancer:   bal,
		network:    network,
		opts:       opts,
		transports: make(map[string]*HTTP),
	}
}

func (d *Discovering) transport(ep *registry.Endpoint) *HTTP {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.transports[ep.URL]
	if !ok {
		opts := append(append([]HTTPOption{}, d.opts...), func(h *HTTP) {
			if ep.Token != "" {
				h.token = ep.Token
			}
		})
		t = NewHTTP(ep.URL, opts...)
		d.transports[ep.URL] = t
	}
	return t
}

// Invoke discovers the endpoint set, picks one, and performs the exchange
// there. Discovery and balancing failures surface as transport errors.
func (d *Discovering) Invoke(ctx context.Context, method string, params []string) (string, error) {
	endpoints, err := d.registry.Discover(ctx, d.network)
	if err != nil {
		return "", fmt.Errorf("%s: discover %s endpoints: %w", method, d.network, err)
	}

	ep, err := d.balancer.Pick(endpoints)
	if err != nil {
		return "", fmt.Errorf("%s: pick %s endpoint: %w", method, d.network, err)
	}

	return d.transport(ep).Invoke(ctx, method, params)
}
