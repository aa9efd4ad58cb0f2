package test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ChainSafe/forest-rpc/client"
	"github.com/ChainSafe/forest-rpc/transport"
)

// BenchmarkLocalCall measures the pure client-side cost per call: catalog
// lookup, param encoding, envelope-free dispatch, result decoding.
func BenchmarkLocalCall(b *testing.B) {
	local := transport.NewLocal()
	local.Register("Filecoin.WalletBalance", func(params []string) (string, error) {
		return `"1000000000000000000"`, nil
	})
	c := client.New(local)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.WalletBalance(ctx, "f01234"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHTTPCall adds the full envelope and HTTP round trip on top.
func BenchmarkHTTPCall(b *testing.B) {
	ts := httptest.NewServer(fixtureNode(1000))
	defer ts.Close()

	c := client.NewHTTP(ts.URL, "")
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.ChainHead(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLocalCallParallel exercises concurrent use of one client.
func BenchmarkLocalCallParallel(b *testing.B) {
	local := transport.NewLocal()
	local.Register("Filecoin.ChainHead", func(params []string) (string, error) {
		return `{"Cids":[],"Blocks":[],"Height":1000}`, nil
	})
	c := client.New(local)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		for pb.Next() {
			if _, err := c.ChainHead(ctx); err != nil {
				b.Fatal(err)
			}
		}
	})
}
