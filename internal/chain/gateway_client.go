package chain

import (
	"context"
	"fmt"
	"strings"

	"github.com/feral-file/ff-airdrop/internal/adapter"
	"github.com/feral-file/ff-airdrop/internal/domain"
)

type gatewayClient struct {
	baseURL string
	http    adapter.HTTPClient
}

// NewGatewayClient creates a chain client backed by the JSON gateway at baseURL
func NewGatewayClient(baseURL string, httpClient adapter.HTTPClient) Client {
	return &gatewayClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

type ownedTokenResponse struct {
	TokenID string `json:"token_id"`
}

type submitTransferResponse struct {
	TxHash string `json:"tx_hash"`
}

// OwnedToken resolves the token id held by owner for the given contract at the given index
func (c *gatewayClient) OwnedToken(ctx context.Context, owner, contract domain.Address, index uint64) (domain.TokenID, error) {
	url := fmt.Sprintf("%s/v1/accounts/%s/contracts/%s/tokens?index=%d",
		c.baseURL, owner.Normalize(), contract.Normalize(), index)

	var resp ownedTokenResponse
	if err := c.http.Get(ctx, url, &resp); err != nil {
		return "", fmt.Errorf("failed to resolve owned token: %w", err)
	}

	return domain.TokenID(resp.TokenID), nil
}

// SubmitTransfer submits a transfer call and returns the transaction hash
func (c *gatewayClient) SubmitTransfer(ctx context.Context, call TransferCall) (domain.TxHash, error) {
	url := fmt.Sprintf("%s/v1/transactions", c.baseURL)

	var resp submitTransferResponse
	if err := c.http.PostJSON(ctx, url, call, &resp); err != nil {
		return "", fmt.Errorf("failed to submit transfer: %w", err)
	}

	if resp.TxHash == "" {
		return "", fmt.Errorf("gateway returned an empty transaction hash")
	}

	return domain.TxHash(resp.TxHash), nil
}
