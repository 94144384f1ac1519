package domain

import (
	"strings"
)

const (
	// AddressLength is the byte-exact length of an account address:
	// the "0x" prefix followed by 64 hex characters (32 bytes).
	AddressLength = 66

	// AddressPrefix is the required hex prefix for account addresses
	AddressPrefix = "0x"

	// ZeroAddress is the canonical all-zero account address
	ZeroAddress = Address("0x0000000000000000000000000000000000000000000000000000000000000000")
)

// Address represents a 32-byte on-chain account address
type Address string

// Valid reports whether the address has the exact expected shape:
// "0x" prefix and a total length of 66 hex characters
func (a Address) Valid() bool {
	if len(a) != AddressLength {
		return false
	}
	if !strings.HasPrefix(string(a), AddressPrefix) {
		return false
	}
	for _, c := range a[len(AddressPrefix):] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Normalize returns the address lower-cased for storage and comparison
func (a Address) Normalize() Address {
	return Address(strings.ToLower(string(a)))
}

// String returns the string representation of the address
func (a Address) String() string {
	return string(a)
}

// TokenID is a unique asset identifier within a contract's namespace
type TokenID string

// Zero reports whether the token id is empty or the degenerate zero id
// returned by the chain when the owner holds nothing
func (t TokenID) Zero() bool {
	return t == "" || t == "0" || t == "0x0"
}

// String returns the string representation of the token id
func (t TokenID) String() string {
	return string(t)
}

// TxHash is an on-chain transaction hash
type TxHash string

// String returns the string representation of the transaction hash
func (h TxHash) String() string {
	return string(h)
}

// ContextKeys scope history and statistics queries to a conversation
// and agent. They never participate in the uniqueness guarantee.
type ContextKeys struct {
	RoomID  string `json:"room_id"`
	AgentID string `json:"agent_id"`
}

// TransferRequest is the structured transfer intent produced by the
// upstream content extractor
type TransferRequest struct {
	// ContractAddress is the NFT contract to distribute from
	ContractAddress Address `json:"nftContractAddress"`
	// Recipient is the address receiving the asset
	Recipient Address `json:"recipient"`
	// Context carries the session scoping keys
	Context ContextKeys `json:"context"`
	// Raw is the original extractor payload, persisted with the record
	Raw []byte `json:"-"`
}

// DistributionEvent is the normalized event published after a
// distribution is committed to the ledger
type DistributionEvent struct {
	RecordID        string  `json:"record_id"`
	Recipient       Address `json:"recipient"`
	ContractAddress Address `json:"contract_address"`
	TokenID         TokenID `json:"token_id"`
	TxHash          TxHash  `json:"tx_hash"`
	RoomID          string  `json:"room_id,omitempty"`
	AgentID         string  `json:"agent_id,omitempty"`
	Timestamp       int64   `json:"timestamp"`
}
