// Package codec converts between Go values and the JSON text fragments used
// as RPC parameters and results.
//
// Two parameter encodings exist, mirroring the remote API's split between
// plain JSON values and canonical typed shapes:
//
//	ParamScalar: plain JSON serialization: numbers, strings, booleans,
//	              and untyped passthrough values
//	ParamTyped:  serialization of a types.* value into its stable
//	              canonical "lotus-json" object shape
//
// Both produce JSON text, not parsed values: the transport layer carries
// parameters and results as strings and stays ignorant of their types.
// The boundary between "typed domain encoding" and "generic JSON plumbing"
// sits exactly there.
package codec

import (
	"encoding/json"
	"fmt"
)

// ParamKind selects the encoding rule for one parameter position.
type ParamKind int

const (
	ParamScalar ParamKind = iota // plain JSON value
	ParamTyped                   // canonical typed-JSON shape
)

func (k ParamKind) String() string {
	if k == ParamTyped {
		return "typed"
	}
	return "scalar"
}

// ResultKind selects the decoding rule for a method's result.
type ResultKind int

const (
	ResultNull   ResultKind = iota // method returns nothing
	ResultScalar                   // plain JSON value (string, number, bool)
	ResultTyped                    // validated canonical typed-JSON shape
	ResultOpaque                   // untyped JSON passthrough
)

func (k ResultKind) String() string {
	switch k {
	case ResultScalar:
		return "scalar"
	case ResultTyped:
		return "typed"
	case ResultOpaque:
		return "opaque"
	default:
		return "null"
	}
}

// EncodeParam serializes one argument to its JSON text form. Scalar and
// typed values both go through encoding/json; typed values carry their
// canonical shape in their MarshalJSON implementations, so the kind is
// catalog metadata rather than a separate code path.
func EncodeParam(kind ParamKind, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %s param: %w", kind, err)
	}
	return string(data), nil
}

// DecodeError reports a result that was transported successfully but does
// not match the shape declared for the method. It usually means a
// client/server schema mismatch.
type DecodeError struct {
	Method  string // full method name, e.g. "Filecoin.ChainHead"
	Type    string // the Go type the result was expected to decode into
	Payload string // the raw result fragment that failed to decode
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s result into %s: %v (payload: %s)",
		e.Method, e.Type, e.Err, e.Payload)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeResult parses a raw result fragment according to the method's
// declared result kind. ResultNull ignores the payload entirely; the other
// kinds unmarshal into T, and any mismatch surfaces as a *DecodeError.
func DecodeResult[T any](method string, kind ResultKind, raw string) (T, error) {
	var v T
	if kind == ResultNull {
		return v, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, &DecodeError{
			Method:  method,
			Type:    fmt.Sprintf("%T", v),
			Payload: raw,
			Err:     err,
		}
	}
	return v, nil
}
