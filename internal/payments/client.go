// Package payments executes settlement-unit transfers through the external
// wallet service. The engine bounds every send with a budget; this client just
// submits and surfaces failure.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-drop-engine/internal/adapter"
	"github.com/feral-file/ff-drop-engine/internal/fees"
)

// transferRequest is the wallet service's transfer payload
type transferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// Client implements fees.PaymentSender against the wallet service's REST API
type Client struct {
	httpClient adapter.HTTPClient
	baseURL    string
}

// NewClient creates a wallet service client
func NewClient(httpClient adapter.HTTPClient, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

var _ fees.PaymentSender = (*Client)(nil)

// Send submits a transfer and returns when the wallet service accepts it
func (c *Client) Send(ctx context.Context, to common.Address, amount *uint256.Int) error {
	body, err := json.Marshal(transferRequest{
		To:     to.Hex(),
		Amount: amount.Dec(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal transfer: %w", err)
	}

	url := fmt.Sprintf("%s/v1/transfers", c.baseURL)
	if _, err := c.httpClient.Post(ctx, url, "application/json", bytes.NewReader(body)); err != nil {
		return fmt.Errorf("failed to submit transfer: %w", err)
	}

	return nil
}
