// Package chain wraps the external chain gateway used to resolve the
// distributor's holdings and submit transfers. Signing and wallet
// management live behind the gateway; this package only builds calls
// and reads results.
package chain

import (
	"context"

	"github.com/feral-file/ff-airdrop/internal/domain"
)

// TransferEntryPoint is the standardized contract entry point for asset transfers
const TransferEntryPoint = "transfer"

// TransferCall is the instruction submitted to the chain gateway
type TransferCall struct {
	// ContractAddress is the NFT contract invoked
	ContractAddress domain.Address `json:"contract_address"`
	// EntryPoint is the contract function to call
	EntryPoint string `json:"entry_point"`
	// Args are the encoded call arguments: from, to, token id
	Args []string `json:"args"`
}

// BuildTransferCall builds a transfer instruction for the standardized
// transfer entry point with arguments (from, to, tokenID)
func BuildTransferCall(contract, from, to domain.Address, tokenID domain.TokenID) TransferCall {
	return TransferCall{
		ContractAddress: contract.Normalize(),
		EntryPoint:      TransferEntryPoint,
		Args: []string{
			from.Normalize().String(),
			to.Normalize().String(),
			tokenID.String(),
		},
	}
}

// Client defines the chain gateway operations the orchestrator needs
type Client interface {
	// OwnedToken resolves the token id held by owner for the given
	// contract at the given index. A zero token id means the owner
	// holds nothing at that index.
	OwnedToken(ctx context.Context, owner, contract domain.Address, index uint64) (domain.TokenID, error)

	// SubmitTransfer submits a transfer call and returns the transaction hash
	SubmitTransfer(ctx context.Context, call TransferCall) (domain.TxHash, error)
}
