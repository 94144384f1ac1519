package airdrop

import (
	"github.com/feral-file/ff-airdrop/internal/domain"
)

// ValidateTransferRequest checks a transfer request's shape before any
// state is touched. Failures are reported as the first failing reason
// of a fixed checklist: missing object, missing contract address,
// missing recipient, malformed contract address, malformed recipient.
// No side effects.
func ValidateTransferRequest(req *domain.TransferRequest) error {
	if req == nil {
		return domain.ErrRequestMissing
	}
	if req.ContractAddress == "" {
		return domain.ErrContractAddressRequired
	}
	if req.Recipient == "" {
		return domain.ErrRecipientRequired
	}
	if !req.ContractAddress.Valid() {
		return domain.ErrInvalidContractAddress
	}
	if !req.Recipient.Valid() {
		return domain.ErrInvalidRecipientAddress
	}

	return nil
}
