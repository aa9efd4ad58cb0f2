package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ChainSafe/forest-rpc/protocol"
)

// HTTP implements Transport over HTTP POST with the JSON-RPC 2.0 envelope.
// It is safe for concurrent use; the underlying http.Client owns the
// connection pool.
type HTTP struct {
	endpoint string
	token    string
	client   *http.Client
	timeout  time.Duration
}

// HTTPOption configures an HTTP transport.
type HTTPOption func(*HTTP)

// WithToken attaches a bearer credential to every outbound request.
// Without it, requests are sent unauthenticated.
func WithToken(token string) HTTPOption {
	return func(t *HTTP) {
		t.token = token
	}
}

// WithHTTPClient substitutes the http.Client used for requests.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(t *HTTP) {
		t.client = c
	}
}

// WithTimeout bounds each HTTP exchange. Zero means no client-side limit.
// Order-independent with WithHTTPClient; a caller-supplied client is
// copied rather than mutated.
func WithTimeout(d time.Duration) HTTPOption {
	return func(t *HTTP) {
		t.timeout = d
	}
}

// NewHTTP creates a transport posting to the given JSON-RPC endpoint URL,
// e.g. "http://127.0.0.1:2345/rpc/v0".
func NewHTTP(endpoint string, opts ...HTTPOption) *HTTP {
	t := &HTTP{
		endpoint: endpoint,
		client:   &http.Client{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.timeout > 0 {
		c := *t.client
		c.Timeout = t.timeout
		t.client = &c
	}
	return t
}

// Endpoint returns the URL this transport posts to.
func (t *HTTP) Endpoint() string {
	return t.endpoint
}

// StatusError reports a non-2xx HTTP status. The response body is never
// parsed as a JSON-RPC envelope in this case.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %s", e.Status)
}

// Invoke executes one JSON-RPC exchange:
//  1. wrap the parameter fragments in a request envelope,
//  2. POST it, carrying the bearer credential if one is configured,
//  3. fail on connection errors or non-2xx status,
//  4. unpack the response envelope into the serialized result fragment.
func (t *HTTP) Invoke(ctx context.Context, method string, params []string) (string, error) {
	env, err := protocol.NewRequest(method, params)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("%s: marshal envelope: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json-rpc")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: post %s: %w", method, t.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", method, err)
	}
	return protocol.ParseResponse(method, respBody)
}
