package types

import "encoding/json"

// Ticket is the VRF ticket carried by a block header.
type Ticket struct {
	VRFProof []byte
}

// ElectionProof proves a miner won the leader election for an epoch.
type ElectionProof struct {
	WinCount int64
	VRFProof []byte
}

// PoStProof is a windowed proof-of-spacetime proof.
type PoStProof struct {
	PoStProof  int64
	ProofBytes []byte
}

// BeaconEntry is a drand randomness round: {"Round": n, "Data": "<base64>"}.
type BeaconEntry struct {
	Round uint64
	Data  []byte
}

// BlockHeader is a Filecoin block header in its lotus-json form.
type BlockHeader struct {
	Miner                 Address
	Ticket                *Ticket
	ElectionProof         *ElectionProof
	BeaconEntries         []BeaconEntry
	WinPoStProof          []PoStProof
	Parents               []Cid
	ParentWeight          BigInt
	Height                int64
	ParentStateRoot       Cid
	ParentMessageReceipts Cid
	Messages              Cid
	BLSAggregate          *Signature
	Timestamp             uint64
	BlockSig              *Signature
	ForkSignaling         uint64
	ParentBaseFee         TokenAmount
}

// TipSet is a set of blocks mined at the same height:
// {"Cids": [...], "Blocks": [...], "Height": n}.
type TipSet struct {
	Cids   []Cid
	Blocks []BlockHeader
	Height int64
}

// Key returns the tipset's key, the ordered CIDs of its headers.
func (ts TipSet) Key() TipsetKey {
	return TipsetKey(ts.Cids)
}

// Message is an unsigned Filecoin message.
type Message struct {
	Version    uint64
	To         Address
	From       Address
	Nonce      uint64
	Value      TokenAmount
	GasLimit   int64
	GasFeeCap  TokenAmount
	GasPremium TokenAmount
	Method     uint64
	Params     []byte
	CID        *Cid `json:"CID,omitempty"`
}

// SignedMessage is a message plus the sender's signature.
type SignedMessage struct {
	Message   Message
	Signature Signature
	CID       *Cid `json:"CID,omitempty"`
}

// GossipBlock is a fully formed block as submitted to the sync subsystem:
// the header plus the CIDs of the messages it includes.
type GossipBlock struct {
	Header        BlockHeader
	BlsMessages   []Cid
	SecpkMessages []Cid
}

// BlockMessages are all messages included in one block, split by
// signature scheme.
type BlockMessages struct {
	BlsMessages   []Message
	SecpkMessages []SignedMessage
	Cids          []Cid
}

// ApiMessage pairs a message with its CID.
type ApiMessage struct {
	Cid     Cid
	Message Message
}

// Receipt is the execution result of a message.
type Receipt struct {
	ExitCode   int64
	Return     []byte
	GasUsed    int64
	EventsRoot *Cid `json:"EventsRoot,omitempty"`
}

// MessageLookup is the result of searching or waiting for a message:
// its receipt and the tipset it executed in.
type MessageLookup struct {
	Message Cid
	Receipt Receipt
	TipSet  TipsetKey
	Height  int64
}

// HeadChange describes one step along a chain path: a tipset being applied
// or reverted.
type HeadChange struct {
	Type string
	Val  TipSet
}

// ChainExportParams configures a chain snapshot export on the node.
type ChainExportParams struct {
	Epoch        int64
	Recent       int64
	OutputPath   string
	TipsetKeys   TipsetKey
	SkipChecksum bool
	DryRun       bool
}

// AuthNewParams requests a new JWT with the given permission set.
type AuthNewParams struct {
	Perms []string
}

// MessageSendSpec carries optional send parameters for mpool pushes.
type MessageSendSpec struct {
	MaxFee TokenAmount
}

// MessageFilter restricts StateListMessages to a sender and/or recipient.
// Empty fields match any address.
type MessageFilter struct {
	From Address `json:"From,omitempty"`
	To   Address `json:"To,omitempty"`
}

// BitField is a compressed sector-number set. The client treats its RLE+
// encoding as opaque JSON.
type BitField = json.RawMessage
