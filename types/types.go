// Package types defines the canonical JSON shapes ("lotus-json") used by the
// Filecoin JSON-RPC API.
//
// Every type here has a stable wire form shared with Lotus and Forest nodes:
// structs serialize with PascalCase keys, CIDs as {"/": "..."}, byte slices
// as base64 strings, and token amounts as decimal strings. Values of these
// types are what the client layer calls "structured" parameters and results,
// as opposed to plain JSON scalars.
package types

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Cid is a content identifier in its JSON form: {"/": "bafy..."}.
type Cid struct {
	Str string `json:"/"`
}

// NewCid wraps a CID string in its wire form.
func NewCid(s string) Cid {
	return Cid{Str: s}
}

func (c Cid) String() string {
	return c.Str
}

// Defined returns false for the zero Cid.
func (c Cid) Defined() bool {
	return c.Str != ""
}

// TipsetKey identifies a tipset by the ordered CIDs of its block headers.
type TipsetKey []Cid

// Address is a Filecoin address in its string form, e.g. "f01234".
// On the wire it is a plain JSON string, but it is still part of the
// typed vocabulary: the remote side validates the address format.
type Address string

func (a Address) String() string {
	return string(a)
}

// BigInt is an arbitrary-precision integer that serializes as a decimal
// JSON string, the form used for chain weights and attoFIL amounts.
type BigInt struct {
	big.Int
}

// NewInt creates a BigInt from an int64.
func NewInt(v int64) BigInt {
	var b BigInt
	b.SetInt64(v)
	return b
}

// ParseBigInt parses a decimal string into a BigInt.
func ParseBigInt(s string) (BigInt, error) {
	var b BigInt
	if _, ok := b.SetString(s, 10); !ok {
		return BigInt{}, fmt.Errorf("invalid big integer string %q", s)
	}
	return b, nil
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if _, ok := b.SetString(s, 10); !ok {
		return fmt.Errorf("invalid big integer string %q", s)
	}
	return nil
}

// TokenAmount is a quantity of FIL in attoFIL, serialized like BigInt.
type TokenAmount = BigInt

// SignatureType discriminates the signature schemes used on chain.
type SignatureType int

const (
	SigTypeSecp256k1 SignatureType = 1
	SigTypeBLS       SignatureType = 2
	SigTypeDelegated SignatureType = 3
)

// Signature is a cryptographic signature: {"Type": 2, "Data": "<base64>"}.
type Signature struct {
	Type SignatureType
	Data []byte
}

// KeyInfo is an exported wallet key: signature scheme plus raw private key.
type KeyInfo struct {
	Type       SignatureType
	PrivateKey []byte
}
