package ledger

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
)

// ToBaseUnits converts a token amount into base units at the token precision.
// Digits below the precision are truncated. Amounts that are not positive after
// truncation are rejected.
func ToBaseUnits(amount decimal.Decimal) (*big.Int, error) {
	units := amount.Shift(domain.TOKEN_DECIMALS).Truncate(0).BigInt()
	if units.Sign() <= 0 {
		return nil, domain.NewValidationError("amount %s is not a positive token amount", amount.String())
	}
	return units, nil
}

// FromBaseUnits converts base units into a token amount
func FromBaseUnits(units *big.Int) decimal.Decimal {
	if units == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(units, -domain.TOKEN_DECIMALS)
}

// FromWei converts a native balance in wei into ether
func FromWei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -18)
}

// Describe returns a short form of a result for logs
func (r Result) Describe() string {
	if r.Success {
		return fmt.Sprintf("success ref=%s", r.Reference)
	}
	return fmt.Sprintf("failed err=%v", r.Err)
}
