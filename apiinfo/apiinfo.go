// Package apiinfo resolves the node connection string shared across the
// Filecoin tooling ecosystem: the FULLNODE_API_INFO environment variable,
// either "<token>:<multiaddress>" or a bare multiaddress.
//
// The multiaddress is folded into an HTTP URL for the node's RPC endpoint:
//
//	/ip4/127.0.0.1/tcp/2345/http  →  http://127.0.0.1:2345/rpc/v0
//	/dns/node.example/tcp/443/https  →  https://node.example:443/rpc/v0
package apiinfo

import (
	"fmt"
	"net"
	"os"
	"strings"

	ma "github.com/multiformats/go-multiaddr"
)

const (
	// EnvAPIInfo is the environment variable holding the connection string.
	EnvAPIInfo = "FULLNODE_API_INFO"

	// DefaultMultiaddress is used when no connection string is configured.
	DefaultMultiaddress = "/ip4/127.0.0.1/tcp/2345/http"

	rpcPath = "rpc/v0"
)

// APIInfo is a resolved node connection: endpoint URL plus optional
// bearer credential.
type APIInfo struct {
	Addr  string // e.g. "http://127.0.0.1:2345/rpc/v0"
	Token string // empty means unauthenticated
}

// FromEnv resolves FULLNODE_API_INFO, falling back to the local default.
func FromEnv() (APIInfo, error) {
	s := os.Getenv(EnvAPIInfo)
	if s == "" {
		s = DefaultMultiaddress
	}
	return Parse(s)
}

// Parse splits an optional token off the connection string and folds the
// multiaddress into an endpoint URL. The token ends at the first colon,
// but only when the string does not already start as a multiaddress:
// IPv6 multiaddresses carry colons of their own.
func Parse(s string) (APIInfo, error) {
	token := ""
	addr := s
	if i := strings.Index(s, ":"); i >= 0 && !strings.HasPrefix(s, "/") {
		token, addr = s[:i], s[i+1:]
	}

	url, err := multiaddrToURL(addr)
	if err != nil {
		return APIInfo{}, err
	}
	return APIInfo{Addr: url, Token: token}, nil
}

// multiaddrToURL folds multiaddress components into scheme, host, and
// port, defaulting any component the address omits.
func multiaddrToURL(s string) (string, error) {
	m, err := ma.NewMultiaddr(s)
	if err != nil {
		return "", fmt.Errorf("parse multiaddress %q: %w", s, err)
	}

	scheme, host, port := "http", "127.0.0.1", "2345"
	ma.ForEach(m, func(c ma.Component) bool {
		switch c.Protocol().Code {
		case ma.P_IP4, ma.P_IP6, ma.P_DNS, ma.P_DNS4, ma.P_DNS6, ma.P_DNSADDR:
			host = c.Value()
		case ma.P_TCP:
			port = c.Value()
		case ma.P_HTTP:
			scheme = "http"
		case ma.P_HTTPS, ma.P_TLS:
			scheme = "https"
		}
		return true
	})

	return fmt.Sprintf("%s://%s/%s", scheme, net.JoinHostPort(host, port), rpcPath), nil
}
