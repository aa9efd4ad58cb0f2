// Package server is an embeddable JSON-RPC 2.0 node front end.
//
// It speaks the same envelope the client posts, so it can stand in for a
// Filecoin node: in tests, as a fixture with canned chain state; in
// tooling, as a proxy that answers a subset of methods locally.
//
// Request processing pipeline:
//
//	POST /rpc/v0 → auth check → decode envelope
//	  → handler lookup → handler(params) → encode result envelope
//
// Handlers work with decoded JSON values; the envelope plumbing stays in
// one place here.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ChainSafe/forest-rpc/protocol"
	"github.com/ChainSafe/forest-rpc/registry"
)

// HandlerFunc answers one method. It receives the decoded params array and
// returns the result value, which must serialize to non-null JSON; a nil
// result reads as failure on the wire.
type HandlerFunc func(ctx context.Context, params []json.RawMessage) (any, error)

// Server dispatches JSON-RPC requests to registered handlers over HTTP.
type Server struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
	token    string // required bearer credential; empty disables the check

	httpSrv      *http.Server
	registry     registry.Registry // endpoint directory, nil if not registering
	network      string
	advertiseURL string // URL registered in the directory
	// Different from the listen address (":2345") because discovery needs
	// a URL other machines can reach.
}

// NewServer creates a server with no handlers registered.
func NewServer() *Server {
	return &Server{handlers: make(map[string]HandlerFunc)}
}

// Handle installs the handler for a full method name, replacing any
// previous one.
func (s *Server) Handle(method string, h HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = h
}

// RequireToken makes the server reject requests without this bearer
// credential.
func (s *Server) RequireToken(token string) {
	s.token = token
}

// ServeHTTP implements http.Handler, so a Server can mount under any mux
// or run inside httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.token != "" {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || auth[len("Bearer "):] != s.token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	var req struct {
		JSONRPC string            `json:"jsonrpc"`
		ID      json.RawMessage   `json:"id"`
		Method  string            `json:"method"`
		Params  []json.RawMessage `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, -32700, "parse error")
		return
	}
	if req.JSONRPC != protocol.Version {
		writeError(w, -32600, "invalid request")
		return
	}

	s.mu.RLock()
	h, ok := s.handlers[req.Method]
	s.mu.RUnlock()
	if !ok {
		writeError(w, -32601, "method not found")
		return
	}

	result, err := h(r.Context(), req.Params)
	if err != nil {
		writeError(w, 1, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json-rpc")
	json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": protocol.Version,
		"id":      nil,
		"result":  result,
	})
}

// writeError answers with a JSON-RPC error envelope. The transport status
// stays 200: the exchange succeeded, the call did not.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json-rpc")
	json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": protocol.Version,
		"id":      nil,
		"error":   map[string]any{"code": code, "message": message},
	})
}

// Serve listens on the address and serves until Shutdown. When a registry
// is given, the advertise URL is registered under the network name so
// discovering clients can find this server.
func (s *Server) Serve(address, advertiseURL, network string, reg registry.Registry) error {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	if reg != nil {
		s.registry = reg
		s.network = network
		s.advertiseURL = advertiseURL
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := reg.Register(ctx, network, registry.Endpoint{URL: advertiseURL, Token: s.token}, 10); err != nil {
			ln.Close()
			return fmt.Errorf("register endpoint: %w", err)
		}
	}

	s.httpSrv = &http.Server{Handler: s}
	if err := s.httpSrv.Serve(ln); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown deregisters from the endpoint directory and drains in-flight
// requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.registry != nil {
		if err := s.registry.Deregister(ctx, s.network, s.advertiseURL); err != nil {
			return err
		}
	}
	if s.httpSrv != nil {
		return s.httpSrv.Shutdown(ctx)
	}
	return nil
}
