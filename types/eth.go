package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// EthBigInt is an Ethereum quantity: a big integer serialized as a
// 0x-prefixed hexadecimal JSON string.
type EthBigInt struct {
	big.Int
}

func (e EthBigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("%#x", &e.Int))
}

func (e *EthBigInt) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("invalid eth quantity %q: missing 0x prefix", s)
	}
	if _, ok := e.SetString(s[2:], 16); !ok {
		return fmt.Errorf("invalid eth quantity %q", s)
	}
	return nil
}

// EthAddress is a 20-byte Ethereum address as a 0x-prefixed hex string.
type EthAddress string

// EthSyncingResult reports the Ethereum-compatibility view of sync
// progress. DoneSync true corresponds to eth_syncing returning false.
type EthSyncingResult struct {
	DoneSync      bool  `json:"done_sync"`
	StartingBlock int64 `json:"starting_block"`
	CurrentBlock  int64 `json:"current_block"`
	HighestBlock  int64 `json:"highest_block"`
}

// EthBlock is an Ethereum-view block. Transaction content may be hashes or
// full objects depending on the request, so it stays opaque.
type EthBlock struct {
	Hash             string          `json:"hash"`
	ParentHash       string          `json:"parentHash"`
	Sha3Uncles       string          `json:"sha3Uncles"`
	Miner            EthAddress      `json:"miner"`
	StateRoot        string          `json:"stateRoot"`
	TransactionsRoot string          `json:"transactionsRoot"`
	ReceiptsRoot     string          `json:"receiptsRoot"`
	LogsBloom        string          `json:"logsBloom"`
	Difficulty       string          `json:"difficulty"`
	Number           string          `json:"number"`
	GasLimit         string          `json:"gasLimit"`
	GasUsed          string          `json:"gasUsed"`
	Timestamp        string          `json:"timestamp"`
	ExtraData        string          `json:"extraData"`
	MixHash          string          `json:"mixHash"`
	Nonce            string          `json:"nonce"`
	BaseFeePerGas    EthBigInt       `json:"baseFeePerGas"`
	Size             string          `json:"size"`
	Transactions     json.RawMessage `json:"transactions"`
	Uncles           []string        `json:"uncles"`
}
