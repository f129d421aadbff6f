package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound        = "not found"
	ErrMsgListingNotFound = "listing not found"
	ErrMsgItemNotFound    = "item not found"

	// Authorization errors
	ErrMsgUnauthorized = "unauthorized"

	// Marketplace errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgSelfTrade         = "cannot buy your own listing"
	ErrMsgItemNotEligible   = "item is not eligible for listing"

	// Internal errors
	ErrMsgConflict    = "ownership conflict"
	ErrMsgInternal    = "internal error"
	ErrMsgPersistence = "persistence failure"

	// Input errors
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgInvalidPrice      = "price must be positive"
	ErrMsgNegativeBalance   = "balance must not be negative"
	ErrMsgInvalidItemFields = "item type and name are required"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// notFoundError is a specific "not found" that also matches ErrNotFound with errors.Is.
type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// invalidInputError is a specific validation failure that also matches ErrInvalidInput.
type invalidInputError struct {
	msg string
}

func (e *invalidInputError) Error() string { return e.msg }

func (e *invalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrNotFound        = errors.New(ErrMsgNotFound)
	ErrListingNotFound = error(&notFoundError{msg: ErrMsgListingNotFound})
	ErrItemNotFound    = error(&notFoundError{msg: ErrMsgItemNotFound})

	// Authorization errors
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	// Marketplace errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrSelfTrade         = errors.New(ErrMsgSelfTrade)
	ErrItemNotEligible   = errors.New(ErrMsgItemNotEligible)

	// Internal errors
	ErrConflict    = errors.New(ErrMsgConflict)
	ErrInternal    = errors.New(ErrMsgInternal)
	ErrPersistence = errors.New(ErrMsgPersistence)

	// Validation errors
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrInvalidPrice      = error(&invalidInputError{msg: ErrMsgInvalidPrice})
	ErrNegativeBalance   = error(&invalidInputError{msg: ErrMsgNegativeBalance})
	ErrInvalidItemFields = error(&invalidInputError{msg: ErrMsgInvalidItemFields})
)

// IsExpected reports whether err is a reportable business outcome rather than
// an unexpected internal or storage failure.
func IsExpected(err error) bool {
	switch {
	case errors.Is(err, ErrInternal), errors.Is(err, ErrPersistence):
		return false
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrSelfTrade),
		errors.Is(err, ErrItemNotEligible),
		errors.Is(err, ErrInvalidInput):
		return true
	}
	return false
}
