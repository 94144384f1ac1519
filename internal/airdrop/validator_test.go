package airdrop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-airdrop/internal/domain"
)

var (
	testContract  = domain.Address("0x" + strings.Repeat("1c", 32))
	testRecipient = domain.Address("0x" + strings.Repeat("2d", 32))
)

func TestValidateTransferRequest(t *testing.T) {
	tests := []struct {
		name string
		req  *domain.TransferRequest
		want error
	}{
		{
			name: "nil request",
			req:  nil,
			want: domain.ErrRequestMissing,
		},
		{
			name: "missing contract address",
			req: &domain.TransferRequest{
				Recipient: testRecipient,
			},
			want: domain.ErrContractAddressRequired,
		},
		{
			name: "missing recipient",
			req: &domain.TransferRequest{
				ContractAddress: testContract,
			},
			want: domain.ErrRecipientRequired,
		},
		{
			name: "malformed contract address",
			req: &domain.TransferRequest{
				ContractAddress: "0xnothex",
				Recipient:       testRecipient,
			},
			want: domain.ErrInvalidContractAddress,
		},
		{
			name: "malformed recipient",
			req: &domain.TransferRequest{
				ContractAddress: testContract,
				Recipient:       "0xnothex",
			},
			want: domain.ErrInvalidRecipientAddress,
		},
		{
			name: "valid request",
			req: &domain.TransferRequest{
				ContractAddress: testContract,
				Recipient:       testRecipient,
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransferRequest(tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

// The checklist reports exactly one reason, in a fixed order: with both
// fields absent the missing contract address wins, and a missing
// recipient is reported before a malformed contract address is checked.
func TestValidateTransferRequestPrecedence(t *testing.T) {
	err := ValidateTransferRequest(&domain.TransferRequest{})
	assert.ErrorIs(t, err, domain.ErrContractAddressRequired)

	err = ValidateTransferRequest(&domain.TransferRequest{
		ContractAddress: "0xnothex",
	})
	assert.ErrorIs(t, err, domain.ErrRecipientRequired)
}
