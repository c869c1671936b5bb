package fees_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-drop-engine/internal/domain"
	"github.com/feral-file/ff-drop-engine/internal/fees"
	"github.com/feral-file/ff-drop-engine/internal/logger"
	"github.com/feral-file/ff-drop-engine/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type accountantMocks struct {
	converter *mocks.MockConverter
	registry  *mocks.MockRegistry
	sender    *mocks.MockPaymentSender
	acct      *fees.Accountant
}

func setupAccountant(t *testing.T) *accountantMocks {
	ctrl := gomock.NewController(t)
	m := &accountantMocks{
		converter: mocks.NewMockConverter(ctrl),
		registry:  mocks.NewMockRegistry(ctrl),
		sender:    mocks.NewMockPaymentSender(ctrl),
	}
	m.acct = fees.NewAccountant(m.converter, m.registry, m.sender, time.Second)
	return m
}

func TestConvert_ZeroShortCircuits(t *testing.T) {
	m := setupAccountant(t)
	ctx := context.Background()

	// converter must not be called for zero amounts
	out, err := m.acct.Convert(ctx, uint256.NewInt(0))
	require.NoError(t, err)
	assert.True(t, out.IsZero())

	out, err = m.acct.Convert(ctx, nil)
	require.NoError(t, err)
	assert.True(t, out.IsZero())
}

func TestConvert_DelegatesNonZero(t *testing.T) {
	m := setupAccountant(t)
	ctx := context.Background()

	ref := uint256.NewInt(250)
	m.converter.EXPECT().
		ConvertReferenceToSettlement(gomock.Any(), ref).
		Return(uint256.NewInt(1000), nil)

	out, err := m.acct.Convert(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(1000), out)
}

func TestComputeFee_ReadsRegistryEachCall(t *testing.T) {
	m := setupAccountant(t)
	ctx := context.Background()

	// the registry fee changes between calls and must be re-read, not cached
	gomock.InOrder(
		m.registry.EXPECT().PerItemFee(gomock.Any()).Return(uint256.NewInt(5), nil),
		m.registry.EXPECT().PerItemFee(gomock.Any()).Return(uint256.NewInt(7), nil),
	)

	fee, err := m.acct.ComputeFee(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(15), fee)

	fee, err = m.acct.ComputeFee(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(21), fee)
}

func TestPayoutFee_SendsToRegistryRecipient(t *testing.T) {
	m := setupAccountant(t)
	ctx := context.Background()

	sink := common.HexToAddress("0x00000000000000000000000000000000000000fe")
	m.registry.EXPECT().FeeRecipient(gomock.Any()).Return(sink, nil)
	m.sender.EXPECT().Send(gomock.Any(), sink, uint256.NewInt(100)).Return(nil)

	assert.NoError(t, m.acct.PayoutFee(ctx, uint256.NewInt(100)))
}

func TestPayoutFee_ZeroIsNoOp(t *testing.T) {
	m := setupAccountant(t)

	assert.NoError(t, m.acct.PayoutFee(context.Background(), uint256.NewInt(0)))
}

func TestPayoutFee_FailureIsFatal(t *testing.T) {
	m := setupAccountant(t)
	ctx := context.Background()

	sink := common.HexToAddress("0x00000000000000000000000000000000000000fe")
	m.registry.EXPECT().FeeRecipient(gomock.Any()).Return(sink, nil)
	m.sender.EXPECT().Send(gomock.Any(), sink, gomock.Any()).Return(errors.New("sink reverted"))

	err := m.acct.PayoutFee(ctx, uint256.NewInt(100))
	assert.ErrorIs(t, err, domain.ErrFeePaymentFailed)
}

func TestTransfer_MapsFailure(t *testing.T) {
	m := setupAccountant(t)
	ctx := context.Background()

	to := common.HexToAddress("0x0000000000000000000000000000000000000042")
	m.sender.EXPECT().Send(gomock.Any(), to, gomock.Any()).Return(errors.New("unreachable"))

	err := m.acct.Transfer(ctx, to, uint256.NewInt(9))
	assert.ErrorIs(t, err, domain.ErrFundsSendFailure)
}

func TestRefund_FailureTolerated(t *testing.T) {
	m := setupAccountant(t)
	ctx := context.Background()

	to := common.HexToAddress("0x0000000000000000000000000000000000000042")
	m.sender.EXPECT().Send(gomock.Any(), to, gomock.Any()).Return(errors.New("recipient rejects payments"))

	// must not panic or propagate; the asymmetry with PayoutFee is deliberate
	m.acct.Refund(ctx, to, uint256.NewInt(3))
}

func TestRefund_ZeroSkipsSend(t *testing.T) {
	m := setupAccountant(t)

	m.acct.Refund(context.Background(), common.Address{}, uint256.NewInt(0))
}

func TestSend_BoundedBudget(t *testing.T) {
	m := setupAccountant(t)
	ctx := context.Background()

	to := common.HexToAddress("0x0000000000000000000000000000000000000042")
	m.sender.EXPECT().
		Send(gomock.Any(), to, gomock.Any()).
		DoAndReturn(func(sendCtx context.Context, _ common.Address, _ *uint256.Int) error {
			deadline, ok := sendCtx.Deadline()
			assert.True(t, ok, "send context must carry a deadline")
			assert.LessOrEqual(t, time.Until(deadline), time.Second)
			return nil
		})

	assert.NoError(t, m.acct.Transfer(ctx, to, uint256.NewInt(1)))
}
