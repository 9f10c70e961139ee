package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
)

// Result is the outcome of a single value moving ledger call
type Result struct {
	// Success is true once the ledger accepted the operation
	Success bool
	// Reference is the on-chain transaction hash, when one exists
	Reference string
	// Err is the failure cause when Success is false
	Err error
}

// Failed returns a failed result for err
func Failed(err error) Result {
	return Result{Success: false, Err: err}
}

// Unsettled reports a call that was submitted without a confirmed outcome. The value
// may still move, so whatever the call paid for must stay reserved.
func (r Result) Unsettled() bool {
	return !r.Success && r.Reference != ""
}

// Outcome is the result of an operation with a best-effort secondary ledger step.
// Secondary is nil when the step was not attempted.
type Outcome struct {
	Primary   Result
	Secondary *Result
}

// Receipt is the chain view of a submitted transaction
type Receipt struct {
	Hash          string
	Block         *uint64
	Confirmations uint64
	Status        domain.TransactionStatus
}

// Ledger moves and reads WLOS balances held outside the database.
// Implementations must not retry value moving calls.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// Transfer moves amount from one wallet to another
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal) Result

	// Mint creates amount new tokens for the wallet
	Mint(ctx context.Context, to string, amount decimal.Decimal) Result

	// GetBalance returns the WLOS balance of a wallet
	GetBalance(ctx context.Context, wallet string) (decimal.Decimal, error)

	// GetNativeBalance returns the native chain balance of a wallet
	GetNativeBalance(ctx context.Context, wallet string) (decimal.Decimal, error)

	// GetReceipt returns the confirmation state of a submitted transaction
	GetReceipt(ctx context.Context, hash string) (*Receipt, error)

	// TreasuryAddress returns the wallet that collects payments and pays out rewards
	TreasuryAddress() string
}
