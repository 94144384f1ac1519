package domain

import "errors"

var (
	// ErrRequestMissing is returned when no transfer request object is present
	ErrRequestMissing = errors.New("transfer request is required")

	// ErrContractAddressRequired is returned when the NFT contract address is absent
	ErrContractAddressRequired = errors.New("NFT contract address is required")

	// ErrRecipientRequired is returned when the recipient address is absent
	ErrRecipientRequired = errors.New("recipient address is required")

	// ErrInvalidContractAddress is returned when the contract address is malformed
	ErrInvalidContractAddress = errors.New("invalid NFT contract address")

	// ErrInvalidRecipientAddress is returned when the recipient address is malformed
	ErrInvalidRecipientAddress = errors.New("invalid recipient address")

	// ErrAlreadyServed is returned when the recipient already received a distribution
	ErrAlreadyServed = errors.New("recipient already received an airdrop")

	// ErrNoAssetAvailable is returned when the distributing account holds
	// no transferable asset for the requested contract
	ErrNoAssetAvailable = errors.New("no asset available for distribution")

	// ErrRecordCommitFailed is returned when the on-chain transfer succeeded
	// but the ledger write did not; the ledger no longer blocks the recipient
	ErrRecordCommitFailed = errors.New("transfer submitted but ledger record was not committed")
)
