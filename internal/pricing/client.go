// Package pricing talks to the external price-conversion and fee-registry
// service. Conversion rates and the per-item protocol fee are read fresh on
// every call; nothing is cached across settlements.
package pricing

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-drop-engine/internal/adapter"
	"github.com/feral-file/ff-drop-engine/internal/fees"
)

// convertResponse is the feed's conversion payload; amounts are decimal strings
type convertResponse struct {
	SettlementAmount string `json:"settlement_amount"`
}

// feeResponse is the feed's protocol-fee payload
type feeResponse struct {
	PerItemFee   string `json:"per_item_fee"`
	FeeRecipient string `json:"fee_recipient"`
}

// Client implements fees.Converter and fees.Registry against the price feed's
// REST API
type Client struct {
	httpClient adapter.HTTPClient
	baseURL    string
}

// NewClient creates a price feed client
func NewClient(httpClient adapter.HTTPClient, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

var (
	_ fees.Converter = (*Client)(nil)
	_ fees.Registry  = (*Client)(nil)
)

// ConvertReferenceToSettlement converts a reference-unit amount into
// settlement units at the feed's current rate
func (c *Client) ConvertReferenceToSettlement(ctx context.Context, amount *uint256.Int) (*uint256.Int, error) {
	url := fmt.Sprintf("%s/v1/convert?amount=%s", c.baseURL, amount.Dec())

	var response convertResponse
	if err := c.httpClient.Get(ctx, url, &response); err != nil {
		return nil, fmt.Errorf("failed to call price feed: %w", err)
	}

	converted, err := uint256.FromDecimal(response.SettlementAmount)
	if err != nil {
		return nil, fmt.Errorf("price feed returned malformed amount %q: %w", response.SettlementAmount, err)
	}
	return converted, nil
}

// PerItemFee returns the current flat per-item protocol fee in settlement units
func (c *Client) PerItemFee(ctx context.Context) (*uint256.Int, error) {
	response, err := c.fetchFee(ctx)
	if err != nil {
		return nil, err
	}

	fee, err := uint256.FromDecimal(response.PerItemFee)
	if err != nil {
		return nil, fmt.Errorf("fee registry returned malformed fee %q: %w", response.PerItemFee, err)
	}
	return fee, nil
}

// FeeRecipient returns the current protocol fee sink address. The sink is
// resolved dynamically on every settlement and may change between calls.
func (c *Client) FeeRecipient(ctx context.Context) (common.Address, error) {
	response, err := c.fetchFee(ctx)
	if err != nil {
		return common.Address{}, err
	}

	if !common.IsHexAddress(response.FeeRecipient) {
		return common.Address{}, fmt.Errorf("fee registry returned malformed recipient %q", response.FeeRecipient)
	}
	return common.HexToAddress(response.FeeRecipient), nil
}

func (c *Client) fetchFee(ctx context.Context) (*feeResponse, error) {
	url := fmt.Sprintf("%s/v1/fee", c.baseURL)

	var response feeResponse
	if err := c.httpClient.Get(ctx, url, &response); err != nil {
		return nil, fmt.Errorf("failed to call fee registry: %w", err)
	}
	return &response, nil
}
