package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-economy/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		code      ErrorCode
		retryable bool
	}{
		{"not found", domain.NewNotFoundError("farmer", 7), http.StatusNotFound, "not_found", false},
		{"validation", domain.NewValidationError("price must be positive"), http.StatusUnprocessableEntity, "validation_failed", false},
		{"invalid state", domain.ErrMaxLevelReached, http.StatusConflict, "max_level_reached", false},
		{"insufficient resource", domain.ErrInsufficientBalance, http.StatusBadRequest, "insufficient_balance", false},
		{"conflict", domain.ErrStaleWrite, http.StatusConflict, "stale_write", false},
		{"forbidden", domain.ErrSelfTradeForbidden, http.StatusForbidden, "self_trade_forbidden", false},
		{"transient ledger failure", domain.NewLedgerError("transfer", errors.New("timeout"), true), http.StatusBadGateway, "ledger_failure", true},
		{"permanent ledger failure", domain.NewLedgerError("transfer", errors.New("reverted"), false), http.StatusBadGateway, "ledger_failure", false},
		{"wrapped domain error", fmt.Errorf("failed to list: %w", domain.ErrListingNotActive), http.StatusConflict, "listing_not_active", false},
		{"plain error", errors.New("connection refused"), http.StatusInternalServerError, ErrCodeInternalError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := FromError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.retryable, apiErr.Retryable)
		})
	}
}

func TestFromError_HidesInternalDetails(t *testing.T) {
	_, apiErr := FromError(errors.New("password authentication failed for user economy"))
	assert.Equal(t, "Internal server error", apiErr.Message)
	assert.Empty(t, apiErr.Details)
}

func TestFromError_LedgerDetails(t *testing.T) {
	_, apiErr := FromError(domain.NewLedgerError("mint", errors.New("execution reverted"), false))
	assert.Equal(t, "ledger mint failed", apiErr.Message)
	assert.Equal(t, "execution reverted", apiErr.Details)
}

func TestFromError_Journaled(t *testing.T) {
	err := &domain.JournaledError{InconsistencyID: 42, Reference: "listing-1", Err: errors.New("db down")}
	status, apiErr := FromError(err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, []int64{42}, apiErr.Inconsistencies)

	err = &domain.JournaledError{Err: domain.ErrStaleWrite}
	status, apiErr = FromError(err)
	assert.Equal(t, http.StatusConflict, status)
	assert.Empty(t, apiErr.Inconsistencies)
}
