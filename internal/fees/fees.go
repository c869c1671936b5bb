// Package fees settles the money side of a purchase: converting configured
// reference-unit prices into the settlement unit, computing the flat per-item
// protocol fee, and executing transfers with a bounded execution budget.
package fees

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/feral-file/ff-drop-engine/internal/domain"
	"github.com/feral-file/ff-drop-engine/internal/logger"
)

// Converter converts a reference-unit amount into settlement units
//
//go:generate mockgen -source=fees.go -destination=../mocks/fees.go -package=mocks -mock_names=Converter=MockConverter,Registry=MockRegistry,PaymentSender=MockPaymentSender
type Converter interface {
	ConvertReferenceToSettlement(ctx context.Context, amount *uint256.Int) (*uint256.Int, error)
}

// Registry resolves the current flat per-item protocol fee and its sink
// address. Both are re-read on every settlement, never cached across
// purchases.
type Registry interface {
	PerItemFee(ctx context.Context) (*uint256.Int, error)
	FeeRecipient(ctx context.Context) (common.Address, error)
}

// PaymentSender executes a settlement-unit transfer to an address
type PaymentSender interface {
	Send(ctx context.Context, to common.Address, amount *uint256.Int) error
}

// Accountant wires the three collaborators together. SendBudget bounds the
// execution budget forwarded to any single transfer so a hostile recipient
// cannot stall a settlement indefinitely.
type Accountant struct {
	converter  Converter
	registry   Registry
	sender     PaymentSender
	sendBudget time.Duration
}

// DefaultSendBudget is used when no send budget is configured
const DefaultSendBudget = 10 * time.Second

// NewAccountant creates an accountant over the given collaborators
func NewAccountant(converter Converter, registry Registry, sender PaymentSender, sendBudget time.Duration) *Accountant {
	if sendBudget <= 0 {
		sendBudget = DefaultSendBudget
	}
	return &Accountant{
		converter:  converter,
		registry:   registry,
		sender:     sender,
		sendBudget: sendBudget,
	}
}

// Convert converts a reference-unit amount to settlement units. A zero amount
// converts to zero without calling the converter, so zero-fee drops settle
// deterministically even when the converter is unreachable.
func (a *Accountant) Convert(ctx context.Context, amount *uint256.Int) (*uint256.Int, error) {
	if amount == nil || amount.IsZero() {
		return uint256.NewInt(0), nil
	}

	converted, err := a.converter.ConvertReferenceToSettlement(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("price conversion: %w", err)
	}
	return converted, nil
}

// ComputeFee returns perItemFee * quantity in settlement units, reading the
// current per-item fee from the registry
func (a *Accountant) ComputeFee(ctx context.Context, quantity uint64) (*uint256.Int, error) {
	perItem, err := a.registry.PerItemFee(ctx)
	if err != nil {
		return nil, fmt.Errorf("fee registry lookup: %w", err)
	}

	total := new(uint256.Int).Mul(perItem, uint256.NewInt(quantity))
	return total, nil
}

// PayoutFee transfers the protocol fee to the registry's sink address. A zero
// fee is a no-op. Failure aborts the whole settlement with
// domain.ErrFeePaymentFailed; the fee is never dropped nor retried
// asynchronously.
func (a *Accountant) PayoutFee(ctx context.Context, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return nil
	}

	recipient, err := a.registry.FeeRecipient(ctx)
	if err != nil {
		return fmt.Errorf("%w: resolving fee recipient: %v", domain.ErrFeePaymentFailed, err)
	}

	if err := a.send(ctx, recipient, amount); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFeePaymentFailed, err)
	}
	return nil
}

// Transfer sends amount to recipient with the bounded budget, mapping failure
// to domain.ErrFundsSendFailure. Used by the withdrawal path.
func (a *Accountant) Transfer(ctx context.Context, to common.Address, amount *uint256.Int) error {
	if err := a.send(ctx, to, amount); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFundsSendFailure, err)
	}
	return nil
}

// Refund returns an overpayment remainder to the buyer. Refunds are
// fire-and-forget: a failure is logged and tolerated, unlike the fee payout
// path which is fatal. Callers rely on this asymmetry.
func (a *Accountant) Refund(ctx context.Context, to common.Address, amount *uint256.Int) {
	if amount == nil || amount.IsZero() {
		return
	}

	if err := a.send(ctx, to, amount); err != nil {
		logger.WarnCtx(ctx, "refund failed, tolerated",
			zap.String("to", to.Hex()),
			zap.String("amount", amount.Dec()),
			zap.Error(err),
		)
	}
}

func (a *Accountant) send(ctx context.Context, to common.Address, amount *uint256.Int) error {
	sendCtx, cancel := context.WithTimeout(ctx, a.sendBudget)
	defer cancel()
	return a.sender.Send(sendCtx, to, amount)
}
