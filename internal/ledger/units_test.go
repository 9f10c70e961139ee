package ledger

import (
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-economy/internal/domain"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		expected    string
		expectError bool
	}{
		{name: "whole amount", amount: "100", expected: "100000000000"},
		{name: "fractional amount", amount: "0.000005", expected: "5000"},
		{name: "sub unit digits truncated", amount: "1.0000000019", expected: "1000000001"},
		{name: "zero rejected", amount: "0", expectError: true},
		{name: "negative rejected", amount: "-5", expectError: true},
		{name: "below one unit rejected", amount: "0.0000000001", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units, err := ToBaseUnits(decimal.RequireFromString(tt.amount))
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, domain.KindValidation, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, units.String())
		})
	}
}

func TestFromBaseUnits(t *testing.T) {
	assert.Equal(t, "95", FromBaseUnits(big.NewInt(95_000_000_000)).String())
	assert.Equal(t, "0.000000001", FromBaseUnits(big.NewInt(1)).String())
	assert.True(t, FromBaseUnits(nil).IsZero())
}

func TestFromWei(t *testing.T) {
	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, "1.5", FromWei(wei).String())
}

func TestResult_Describe(t *testing.T) {
	assert.Equal(t, "success ref=0xabc", Result{Success: true, Reference: "0xabc"}.Describe())
	assert.Equal(t, "failed err=boom", Failed(errors.New("boom")).Describe())
}
