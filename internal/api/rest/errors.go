package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-drop-engine/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeWrongPrice       ErrorCode = "wrong_price"
	ErrCodeSettlementFailed ErrorCode = "settlement_failed"
	ErrCodeInternalError    ErrorCode = "internal_error"
)

// APIError is the structured error body returned by every endpoint
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	// Expected carries the expected total for wrong-price errors, in
	// reference units
	Expected string `json:"expected,omitempty"`
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	})
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: message,
	})
}

// respondDomainError maps an engine error onto an HTTP status and body
func respondDomainError(c *gin.Context, err error) {
	var wrongPrice *domain.WrongPriceError
	if errors.As(err, &wrongPrice) {
		c.JSON(http.StatusPaymentRequired, &APIError{
			Code:     ErrCodeWrongPrice,
			Message:  "Supplied payment does not cover the purchase",
			Expected: wrongPrice.Expected.Dec(),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrDropNotFound):
		c.JSON(http.StatusNotFound, &APIError{
			Code:    ErrCodeNotFound,
			Message: "Drop not initialized",
		})

	case errors.Is(err, domain.ErrNotEligible),
		errors.Is(err, domain.ErrWithdrawNotAllowed),
		errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, &APIError{
			Code:    ErrCodeForbidden,
			Message: err.Error(),
		})

	case errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrSaleInactive),
		errors.Is(err, domain.ErrPresaleInactive),
		errors.Is(err, domain.ErrTooManyForAddress),
		errors.Is(err, domain.ErrSaleInProgress),
		errors.Is(err, domain.ErrNotOpenEdition),
		errors.Is(err, domain.ErrFundsRecipientNotSet),
		errors.Is(err, domain.ErrAlreadyInitialized):
		c.JSON(http.StatusConflict, &APIError{
			Code:    ErrCodeConflict,
			Message: err.Error(),
		})

	case errors.Is(err, domain.ErrFeePaymentFailed),
		errors.Is(err, domain.ErrFundsSendFailure):
		c.JSON(http.StatusBadGateway, &APIError{
			Code:    ErrCodeSettlementFailed,
			Message: err.Error(),
		})

	default:
		c.JSON(http.StatusInternalServerError, &APIError{
			Code:    ErrCodeInternalError,
			Message: "Internal server error",
		})
	}
}
