package domain

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

var (
	// ErrSoldOut is returned when a mint would exceed the edition size
	ErrSoldOut = errors.New("sold out")

	// ErrSaleInactive is returned when the public sale window is not active
	ErrSaleInactive = errors.New("public sale inactive")

	// ErrPresaleInactive is returned when the presale window is not active
	ErrPresaleInactive = errors.New("presale inactive")

	// ErrNotEligible is returned when a presale membership proof does not verify
	ErrNotEligible = errors.New("address not eligible for presale")

	// ErrTooManyForAddress is returned when a per-address quota is exceeded
	ErrTooManyForAddress = errors.New("too many mints for address")

	// ErrFeePaymentFailed is returned when the protocol fee payout fails
	ErrFeePaymentFailed = errors.New("protocol fee payment failed")

	// ErrFundsSendFailure is returned when a withdrawal transfer fails
	ErrFundsSendFailure = errors.New("funds transfer failed")

	// ErrFundsRecipientNotSet is returned when withdrawing with no recipient configured
	ErrFundsRecipientNotSet = errors.New("funds recipient not set")

	// ErrWithdrawNotAllowed is returned when the caller is neither owner nor funds recipient
	ErrWithdrawNotAllowed = errors.New("caller may not withdraw")

	// ErrNotOpenEdition is returned when finalizing an edition that already has a cap
	ErrNotOpenEdition = errors.New("edition is not open")

	// ErrNotOwner is returned when an owner-only operation is called by someone else
	ErrNotOwner = errors.New("caller is not the drop owner")

	// ErrSaleInProgress is returned when a purchase or withdrawal is already in
	// flight. Re-entrant calls are rejected outright, never queued.
	ErrSaleInProgress = errors.New("sale operation already in progress")

	// ErrAlreadyInitialized is returned when initializing a drop twice
	ErrAlreadyInitialized = errors.New("drop already initialized")

	// ErrDropNotFound is returned when the drop row does not exist yet
	ErrDropNotFound = errors.New("drop not initialized")
)

// WrongPriceError is returned when the supplied payment does not cover the
// purchase. Expected carries the total price in reference units so clients can
// display the correct amount.
type WrongPriceError struct {
	Expected *uint256.Int
}

func (e *WrongPriceError) Error() string {
	return fmt.Sprintf("wrong price: expected %s reference units", e.Expected.Dec())
}

// Is lets errors.Is match any WrongPriceError regardless of the carried amount
func (e *WrongPriceError) Is(target error) bool {
	_, ok := target.(*WrongPriceError)
	return ok
}
