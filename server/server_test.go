package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/ChainSafe/forest-rpc/client"
	"github.com/ChainSafe/forest-rpc/protocol"
	"github.com/ChainSafe/forest-rpc/types"
)

func TestServer(t *testing.T) {
	// Stand up a fixture node with a bit of chain state
	svr := NewServer()
	svr.Handle("Filecoin.ChainHead", func(ctx context.Context, params []json.RawMessage) (any, error) {
		return types.TipSet{
			Cids:   []types.Cid{types.NewCid("bafy2bzacefixture")},
			Height: 1000,
		}, nil
	})
	svr.Handle("Filecoin.WalletBalance", func(ctx context.Context, params []json.RawMessage) (any, error) {
		var addr types.Address
		if err := json.Unmarshal(params[0], &addr); err != nil {
			return nil, err
		}
		if addr != "f01234" {
			return nil, fmt.Errorf("unknown address %s", addr)
		}
		return "1000000000000000000", nil
	})

	ts := httptest.NewServer(svr)
	defer ts.Close()

	c := client.NewHTTP(ts.URL, "")

	head, err := c.ChainHead(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if head.Height != 1000 {
		t.Fatalf("expect height 1000, got %d", head.Height)
	}

	bal, err := c.WalletBalance(context.Background(), "f01234")
	if err != nil {
		t.Fatal(err)
	}
	if bal.String() != "1000000000000000000" {
		t.Fatalf("expect 1000000000000000000, got %s", bal.String())
	}
}

func TestServerMethodNotFound(t *testing.T) {
	ts := httptest.NewServer(NewServer())
	defer ts.Close()

	c := client.NewHTTP(ts.URL, "")
	_, err := c.ChainHead(context.Background())

	var rpcErr *protocol.RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("expect *RPCError, got %v", err)
	}

	var detail struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rpcErr.ErrorField(), &detail); err != nil {
		t.Fatal(err)
	}
	if detail.Code != -32601 || detail.Message != "method not found" {
		t.Fatalf("expect -32601 method not found, got %d %q", detail.Code, detail.Message)
	}
}

func TestServerHandlerError(t *testing.T) {
	svr := NewServer()
	svr.Handle("Filecoin.WalletBalance", func(ctx context.Context, params []json.RawMessage) (any, error) {
		return nil, fmt.Errorf("actor not found")
	})

	ts := httptest.NewServer(svr)
	defer ts.Close()

	c := client.NewHTTP(ts.URL, "")
	_, err := c.WalletBalance(context.Background(), "f099999")

	var rpcErr *protocol.RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("expect *RPCError, got %v", err)
	}
}

func TestServerAuth(t *testing.T) {
	svr := NewServer()
	svr.RequireToken("abc")
	svr.Handle("Filecoin.NetListening", func(ctx context.Context, params []json.RawMessage) (any, error) {
		return true, nil
	})

	ts := httptest.NewServer(svr)
	defer ts.Close()

	// Wrong credential is rejected before dispatch
	c := client.NewHTTP(ts.URL, "wrong")
	if _, err := c.NetListening(context.Background()); err == nil {
		t.Fatal("expect rejection for wrong token")
	}

	// Matching credential passes
	c = client.NewHTTP(ts.URL, "abc")
	ok, err := c.NetListening(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expect true result")
	}
}
