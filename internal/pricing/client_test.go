package pricing_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-drop-engine/internal/mocks"
	"github.com/feral-file/ff-drop-engine/internal/pricing"
)

func newClient(t *testing.T) (*pricing.Client, *mocks.MockHTTPClient) {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	return pricing.NewClient(httpClient, "https://feed.example.com"), httpClient
}

func respondJSON(payload string) func(ctx context.Context, url string, result interface{}) error {
	return func(ctx context.Context, url string, result interface{}) error {
		return json.Unmarshal([]byte(payload), result)
	}
}

func TestConvertReferenceToSettlement(t *testing.T) {
	client, httpClient := newClient(t)

	httpClient.EXPECT().
		Get(gomock.Any(), "https://feed.example.com/v1/convert?amount=2500", gomock.Any()).
		DoAndReturn(respondJSON(`{"settlement_amount":"1000000000000000"}`))

	out, err := client.ConvertReferenceToSettlement(context.Background(), uint256.NewInt(2500))
	require.NoError(t, err)
	assert.Equal(t, uint256.MustFromDecimal("1000000000000000"), out)
}

func TestConvertReferenceToSettlement_FeedError(t *testing.T) {
	client, httpClient := newClient(t)

	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	_, err := client.ConvertReferenceToSettlement(context.Background(), uint256.NewInt(1))
	assert.ErrorContains(t, err, "failed to call price feed")
}

func TestConvertReferenceToSettlement_MalformedAmount(t *testing.T) {
	client, httpClient := newClient(t)

	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"settlement_amount":"not-a-number"}`))

	_, err := client.ConvertReferenceToSettlement(context.Background(), uint256.NewInt(1))
	assert.ErrorContains(t, err, "malformed amount")
}

func TestPerItemFee(t *testing.T) {
	client, httpClient := newClient(t)

	httpClient.EXPECT().
		Get(gomock.Any(), "https://feed.example.com/v1/fee", gomock.Any()).
		DoAndReturn(respondJSON(`{"per_item_fee":"777000000000000","fee_recipient":"0x00000000000000000000000000000000000000Fe"}`))

	fee, err := client.PerItemFee(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint256.MustFromDecimal("777000000000000"), fee)
}

func TestFeeRecipient(t *testing.T) {
	client, httpClient := newClient(t)

	httpClient.EXPECT().
		Get(gomock.Any(), "https://feed.example.com/v1/fee", gomock.Any()).
		DoAndReturn(respondJSON(`{"per_item_fee":"0","fee_recipient":"0x00000000000000000000000000000000000000Fe"}`))

	recipient, err := client.FeeRecipient(context.Background())
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000fe"), recipient)
}

func TestFeeRecipient_Malformed(t *testing.T) {
	client, httpClient := newClient(t)

	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"per_item_fee":"0","fee_recipient":"not-an-address"}`))

	_, err := client.FeeRecipient(context.Background())
	assert.ErrorContains(t, err, "malformed recipient")
}
