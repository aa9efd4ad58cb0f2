// Package protocol implements the JSON-RPC 2.0 envelope.
//
// Outbound, a request wraps a method name and its pre-serialized parameter
// fragments:
//
//	{"jsonrpc":"2.0","id":null,"method":"Filecoin.ChainHead","params":[...]}
//
// Inbound, a response is a JSON object whose "result" member signals
// success. Absence of "result" (including an explicit null) is a failure,
// and the entire response object is surfaced so the caller can inspect
// whatever "error" detail the node supplied.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Version is the JSON-RPC protocol version sent with every request.
const Version = "2.0"

// Request is the outbound envelope. ID is always the JSON literal null:
// each call is a single synchronous exchange, so response correlation by
// id is unnecessary.
type Request struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// NewRequest builds an envelope from pre-serialized parameter fragments.
// Each fragment is validated and placed into the params list as a JSON
// value, not as a nested string.
func NewRequest(method string, params []string) (*Request, error) {
	vals := make([]json.RawMessage, len(params))
	for i, p := range params {
		if !json.Valid([]byte(p)) {
			return nil, fmt.Errorf("%s: param %d is not valid JSON: %q", method, i, p)
		}
		vals[i] = json.RawMessage(p)
	}
	return &Request{
		JSONRPC: Version,
		ID:      json.RawMessage("null"),
		Method:  method,
		Params:  vals,
	}, nil
}

// RPCError is an application-level failure: the node responded, but the
// envelope carried no result. Response holds the entire response body,
// unparsed and unclassified.
type RPCError struct {
	Method   string
	Response json.RawMessage
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc call %s failed: %s", e.Method, e.Response)
}

// ErrorField returns the "error" member of the response, or nil if the
// node supplied none.
func (e *RPCError) ErrorField() json.RawMessage {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(e.Response, &env); err != nil {
		return nil
	}
	return env["error"]
}

// ParseResponse unpacks an inbound envelope and returns the serialized
// result fragment. A missing "result" member and an explicit null are
// treated identically: the node's intent for a null result cannot be told
// apart from failure, so both surface as *RPCError.
func ParseResponse(method string, body []byte) (string, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("%s: malformed response envelope: %w", method, err)
	}
	result, ok := env["result"]
	if !ok || string(result) == "null" {
		return "", &RPCError{
			Method:   method,
			Response: append(json.RawMessage(nil), body...),
		}
	}
	return string(result), nil
}
