// etcd-backed implementation of the Registry interface.
//
// etcd acts as the distributed directory of node endpoints:
//
//	Key:   /forest-rpc/{network}/{endpoint URL}
//	Value: JSON-encoded Endpoint
//
// Registration uses TTL-based leases: if the registering process crashes,
// the lease expires and the entry disappears on its own, so clients never
// discover dead nodes for long.
package registry

import (
	"context"
	"encoding/json"

	clientv3 "go.etcd.io/etcd/client/v3"
)

const keyPrefix = "/forest-rpc/"

// EtcdRegistry implements Registry on etcd v3.
type EtcdRegistry struct {
	client *clientv3.Client // thread-safe, shared across goroutines
}

// NewEtcdRegistry connects to the given etcd endpoints.
func NewEtcdRegistry(endpoints []string) (*EtcdRegistry, error) {
	c, err := clientv3.New(clientv3.Config{
		Endpoints: endpoints,
	})
	if err != nil {
		return nil, err
	}
	return &EtcdRegistry{client: c}, nil
}

// Close releases the etcd client connection.
func (r *EtcdRegistry) Close() error {
	return r.client.Close()
}

// Register stores the endpoint under a TTL lease and starts background
// renewal. The lease ID stays local so one EtcdRegistry can safely register
// several endpoints concurrently.
func (r *EtcdRegistry) Register(ctx context.Context, network string, ep Endpoint, ttl int64) error {
	lease, err := r.client.Grant(ctx, ttl)
	if err != nil {
		return err
	}

	val, err := json.Marshal(ep)
	if err != nil {
		return err
	}

	_, err = r.client.Put(ctx, keyPrefix+network+"/"+ep.URL, string(val), clientv3.WithLease(lease.ID))
	if err != nil {
		return err
	}

	// KeepAlive renews the lease until the context ends; responses must be
	// drained or the channel fills up.
	ch, err := r.client.KeepAlive(ctx, lease.ID)
	if err != nil {
		return err
	}
	go func() {
		for range ch {
		}
	}()
	return nil
}

// Deregister removes an endpoint, typically during graceful shutdown.
func (r *EtcdRegistry) Deregister(ctx context.Context, network, url string) error {
	_, err := r.client.Delete(ctx, keyPrefix+network+"/"+url)
	return err
}

// Discover returns every endpoint registered under the network prefix.
func (r *EtcdRegistry) Discover(ctx context.Context, network string) ([]Endpoint, error) {
	resp, err := r.client.Get(ctx, keyPrefix+network+"/", clientv3.WithPrefix())
	if err != nil {
		return nil, err
	}

	endpoints := make([]Endpoint, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		var ep Endpoint
		if err := json.Unmarshal(kv.Value, &ep); err != nil {
			continue // skip malformed entries
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints, nil
}

// Watch re-reads the full endpoint list on every change under the network
// prefix. Server-push via the etcd Watch API, no polling.
func (r *EtcdRegistry) Watch(ctx context.Context, network string) <-chan []Endpoint {
	ch := make(chan []Endpoint, 1)

	go func() {
		defer close(ch)
		watchChan := r.client.Watch(ctx, keyPrefix+network+"/", clientv3.WithPrefix())
		for range watchChan {
			endpoints, err := r.Discover(ctx, network)
			if err != nil {
				continue
			}
			select {
			case ch <- endpoints:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
