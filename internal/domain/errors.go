package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an error so that callers can decide how to react to it
type Kind string

const (
	KindNotFound               Kind = "not_found"
	KindInvalidState           Kind = "invalid_state"
	KindInsufficientResource   Kind = "insufficient_resource"
	KindExternalServiceFailure Kind = "external_service_failure"
	KindValidation             Kind = "validation"
	KindConflict               Kind = "conflict"
	KindForbidden              Kind = "forbidden"
	KindInternal               Kind = "internal"
)

// Error is the error type returned by the economy engines
type Error struct {
	Kind      Kind
	Code      string
	Message   string
	Retryable bool
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind and code, so sentinels work with errors.Is
// even after a message has been customised.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Code == e.Code
}

// WithMessage returns a copy of the error with a different message
func (e *Error) WithMessage(format string, args ...interface{}) *Error {
	c := *e
	c.Message = fmt.Sprintf(format, args...)
	return &c
}

// Wrap returns a copy of the error with the cause attached
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.Err = err
	return &c
}

var (
	// ErrMaxLevelReached is returned when an asset is already at the level cap
	ErrMaxLevelReached = &Error{Kind: KindInvalidState, Code: "max_level_reached", Message: "asset is already at max level"}

	// ErrListingNotActive is returned when a listing is no longer active
	ErrListingNotActive = &Error{Kind: KindInvalidState, Code: "listing_not_active", Message: "listing is not active"}

	// ErrAlreadyEquipped is returned when an item is already equipped to the hero
	ErrAlreadyEquipped = &Error{Kind: KindInvalidState, Code: "already_equipped", Message: "item is already equipped to this hero"}

	// ErrNotEquipped is returned when an item is not equipped to the hero
	ErrNotEquipped = &Error{Kind: KindInvalidState, Code: "not_equipped", Message: "item is not equipped to this hero"}

	// ErrItemEquippedElsewhere is returned when an item is equipped to another hero
	ErrItemEquippedElsewhere = &Error{Kind: KindInvalidState, Code: "item_equipped_elsewhere", Message: "item is equipped to another hero"}

	// ErrAssetLocked is returned when an asset is listed or being liquidated
	ErrAssetLocked = &Error{Kind: KindInvalidState, Code: "asset_locked", Message: "asset is locked"}

	// ErrPackAlreadyOpened is returned when a pack has been opened before
	ErrPackAlreadyOpened = &Error{Kind: KindInvalidState, Code: "pack_already_opened", Message: "pack is already opened"}

	// ErrPositionInactive is returned when a staking position has been unstaked
	ErrPositionInactive = &Error{Kind: KindInvalidState, Code: "position_inactive", Message: "staking position is not active"}

	// ErrSelfTradeForbidden is returned when a seller tries to buy its own listing
	ErrSelfTradeForbidden = &Error{Kind: KindForbidden, Code: "self_trade_forbidden", Message: "cannot buy your own listing"}

	// ErrNotSeller is returned when someone other than the seller touches a listing
	ErrNotSeller = &Error{Kind: KindForbidden, Code: "not_seller", Message: "only the seller can modify this listing"}

	// ErrInsufficientBalance is returned when a wallet cannot cover an amount
	ErrInsufficientBalance = &Error{Kind: KindInsufficientResource, Code: "insufficient_balance", Message: "insufficient balance"}

	// ErrInsufficientMergeMaterial is returned when there are not enough farmers to merge
	ErrInsufficientMergeMaterial = &Error{Kind: KindInsufficientResource, Code: "insufficient_merge_material", Message: "not enough farmers to merge"}

	// ErrBelowMinimumStake is returned when a stake is below the pool minimum
	ErrBelowMinimumStake = &Error{Kind: KindInsufficientResource, Code: "below_minimum_stake", Message: "amount is below the pool minimum stake"}

	// ErrNoRewardsAvailable is returned when there is nothing to harvest or claim
	ErrNoRewardsAvailable = &Error{Kind: KindInsufficientResource, Code: "no_rewards_available", Message: "no rewards available"}

	// ErrStaleWrite is returned when a compare-and-swap update loses a race
	ErrStaleWrite = &Error{Kind: KindConflict, Code: "stale_write", Message: "entity was modified concurrently"}
)

// NewNotFoundError creates a not found error for the given entity
func NewNotFoundError(entity string, id interface{}) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    "not_found",
		Message: fmt.Sprintf("%s %v not found", entity, id),
	}
}

// NewValidationError creates a validation error
func NewValidationError(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    "validation_failed",
		Message: fmt.Sprintf(format, args...),
	}
}

// NewLedgerError wraps a ledger failure. Transient failures are retryable.
func NewLedgerError(op string, err error, transient bool) *Error {
	return &Error{
		Kind:      KindExternalServiceFailure,
		Code:      "ledger_failure",
		Message:   fmt.Sprintf("ledger %s failed", op),
		Retryable: transient,
		Err:       err,
	}
}

// KindOf returns the kind of err, or KindInternal when err is not a domain error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsRetryable reports whether err is marked as retryable
func IsRetryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable
	}
	return false
}
