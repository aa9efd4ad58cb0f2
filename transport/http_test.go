package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ChainSafe/forest-rpc/protocol"
)

func TestHTTPInvoke(t *testing.T) {
	var got struct {
		JSONRPC string            `json:"jsonrpc"`
		ID      json.RawMessage   `json:"id"`
		Method  string            `json:"method"`
		Params  []json.RawMessage `json:"params"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expect POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json-rpc" {
			t.Errorf("expect application/json-rpc, got %s", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("malformed request body: %v", err)
		}
		io.WriteString(w, `{"jsonrpc":"2.0","id":null,"result":"1000000000000000000"}`)
	}))
	defer srv.Close()

	tr := NewHTTP(srv.URL)
	result, err := tr.Invoke(context.Background(), "Filecoin.WalletBalance", []string{`"f01234"`})
	if err != nil {
		t.Fatal(err)
	}

	if result != `"1000000000000000000"` {
		t.Fatalf("expect serialized result fragment, got %s", result)
	}
	if got.JSONRPC != "2.0" {
		t.Fatalf("expect jsonrpc 2.0, got %q", got.JSONRPC)
	}
	if string(got.ID) != "null" {
		t.Fatalf("expect id null, got %s", got.ID)
	}
	if got.Method != "Filecoin.WalletBalance" {
		t.Fatalf("expect method name on the wire, got %q", got.Method)
	}
	if len(got.Params) != 1 || string(got.Params[0]) != `"f01234"` {
		t.Fatalf("expect params [\"f01234\"], got %v", got.Params)
	}
}

func TestHTTPBearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		io.WriteString(w, `{"jsonrpc":"2.0","id":null,"result":true}`)
	}))
	defer srv.Close()

	tr := NewHTTP(srv.URL, WithToken("abc"))
	if _, err := tr.Invoke(context.Background(), "Filecoin.NetListening", nil); err != nil {
		t.Fatal(err)
	}
	if auth != "Bearer abc" {
		t.Fatalf("expect 'Bearer abc', got %q", auth)
	}

	// Without a token the header is omitted entirely.
	tr = NewHTTP(srv.URL)
	if _, err := tr.Invoke(context.Background(), "Filecoin.NetListening", nil); err != nil {
		t.Fatal(err)
	}
	if auth != "" {
		t.Fatalf("expect no Authorization header, got %q", auth)
	}
}

func TestHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := NewHTTP(srv.URL)
	_, err := tr.Invoke(context.Background(), "Filecoin.ChainHead", nil)
	if err == nil {
		t.Fatal("expect error for 500 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expect *StatusError, got %T", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("expect code 500, got %d", statusErr.Code)
	}
}

func TestHTTPConnectionError(t *testing.T) {
	// Reserve a port, then close it so nothing is listening.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	tr := NewHTTP(srv.URL)
	_, err := tr.Invoke(context.Background(), "Filecoin.ChainHead", nil)
	if err == nil {
		t.Fatal("expect error for unreachable endpoint")
	}

	var rpcErr *protocol.RPCError
	if errors.As(err, &rpcErr) {
		t.Fatal("connection failure is not an application error")
	}
}

func TestHTTPApplicationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"jsonrpc":"2.0","id":null,"error":{"code":-32601,"message":"method not found"}}`)
	}))
	defer srv.Close()

	tr := NewHTTP(srv.URL)
	_, err := tr.Invoke(context.Background(), "Filecoin.NoSuchMethod", nil)

	var rpcErr *protocol.RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("expect *RPCError, got %v", err)
	}
}

func TestWithTimeoutOptionOrder(t *testing.T) {
	shared := &http.Client{}

	// Timeout applies whether it is listed before or after the client.
	tr := NewHTTP("http://127.0.0.1:2345/rpc/v0", WithTimeout(3*time.Second), WithHTTPClient(shared))
	if tr.client.Timeout != 3*time.Second {
		t.Fatalf("expect 3s timeout, got %v", tr.client.Timeout)
	}

	tr = NewHTTP("http://127.0.0.1:2345/rpc/v0", WithHTTPClient(shared), WithTimeout(3*time.Second))
	if tr.client.Timeout != 3*time.Second {
		t.Fatalf("expect 3s timeout, got %v", tr.client.Timeout)
	}

	// The caller's client is never mutated.
	if shared.Timeout != 0 {
		t.Fatalf("expect shared client untouched, got timeout %v", shared.Timeout)
	}
}

func TestHTTPContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewHTTP(srv.URL)
	if _, err := tr.Invoke(ctx, "Filecoin.ChainHead", nil); err == nil {
		t.Fatal("expect error for canceled context")
	}
}
