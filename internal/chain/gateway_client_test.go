package chain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-airdrop/internal/domain"
)

var (
	testOwner    = domain.Address("0x" + strings.Repeat("aa", 32))
	testContract = domain.Address("0x" + strings.Repeat("bb", 32))
	testTo       = domain.Address("0x" + strings.Repeat("cc", 32))
)

// fakeHTTPClient answers scripted JSON responses keyed by URL
type fakeHTTPClient struct {
	getResponses  map[string]string
	getErr        error
	postResponse  string
	postErr       error
	lastPostURL   string
	lastPostBody  interface{}
	requestedURLs []string
}

func (c *fakeHTTPClient) Get(_ context.Context, url string, result interface{}) error {
	c.requestedURLs = append(c.requestedURLs, url)
	if c.getErr != nil {
		return c.getErr
	}
	body, ok := c.getResponses[url]
	if !ok {
		return errors.New("unexpected URL: " + url)
	}
	return json.Unmarshal([]byte(body), result)
}

func (c *fakeHTTPClient) PostJSON(_ context.Context, url string, body interface{}, result interface{}) error {
	c.lastPostURL = url
	c.lastPostBody = body
	if c.postErr != nil {
		return c.postErr
	}
	return json.Unmarshal([]byte(c.postResponse), result)
}

func TestBuildTransferCall(t *testing.T) {
	call := BuildTransferCall(testContract, testOwner, testTo, "42")

	assert.Equal(t, testContract.Normalize(), call.ContractAddress)
	assert.Equal(t, TransferEntryPoint, call.EntryPoint)
	assert.Equal(t, []string{
		testOwner.Normalize().String(),
		testTo.Normalize().String(),
		"42",
	}, call.Args)
}

func TestOwnedToken(t *testing.T) {
	url := "https://gateway.test/v1/accounts/" + testOwner.String() +
		"/contracts/" + testContract.String() + "/tokens?index=0"
	httpClient := &fakeHTTPClient{
		getResponses: map[string]string{
			url: `{"token_id":"42"}`,
		},
	}
	client := NewGatewayClient("https://gateway.test/", httpClient)

	tokenID, err := client.OwnedToken(context.Background(), testOwner, testContract, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenID("42"), tokenID)
}

func TestOwnedTokenEmptyHoldings(t *testing.T) {
	url := "https://gateway.test/v1/accounts/" + testOwner.String() +
		"/contracts/" + testContract.String() + "/tokens?index=0"
	httpClient := &fakeHTTPClient{
		getResponses: map[string]string{
			url: `{"token_id":""}`,
		},
	}
	client := NewGatewayClient("https://gateway.test", httpClient)

	tokenID, err := client.OwnedToken(context.Background(), testOwner, testContract, 0)
	require.NoError(t, err)
	assert.True(t, tokenID.Zero())
}

func TestOwnedTokenGatewayError(t *testing.T) {
	httpClient := &fakeHTTPClient{getErr: errors.New("connection refused")}
	client := NewGatewayClient("https://gateway.test", httpClient)

	_, err := client.OwnedToken(context.Background(), testOwner, testContract, 0)
	assert.ErrorContains(t, err, "failed to resolve owned token")
}

func TestSubmitTransfer(t *testing.T) {
	httpClient := &fakeHTTPClient{postResponse: `{"tx_hash":"0xfeed"}`}
	client := NewGatewayClient("https://gateway.test", httpClient)

	call := BuildTransferCall(testContract, testOwner, testTo, "42")
	hash, err := client.SubmitTransfer(context.Background(), call)
	require.NoError(t, err)
	assert.Equal(t, domain.TxHash("0xfeed"), hash)
	assert.Equal(t, "https://gateway.test/v1/transactions", httpClient.lastPostURL)
	assert.Equal(t, call, httpClient.lastPostBody)
}

func TestSubmitTransferEmptyHash(t *testing.T) {
	httpClient := &fakeHTTPClient{postResponse: `{"tx_hash":""}`}
	client := NewGatewayClient("https://gateway.test", httpClient)

	_, err := client.SubmitTransfer(context.Background(), BuildTransferCall(testContract, testOwner, testTo, "42"))
	assert.ErrorContains(t, err, "empty transaction hash")
}

func TestSubmitTransferGatewayError(t *testing.T) {
	httpClient := &fakeHTTPClient{postErr: errors.New("bad gateway")}
	client := NewGatewayClient("https://gateway.test", httpClient)

	_, err := client.SubmitTransfer(context.Background(), BuildTransferCall(testContract, testOwner, testTo, "42"))
	assert.ErrorContains(t, err, "failed to submit transfer")
}
