package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-economy/internal/domain"
)

// Inconsistency represents the inconsistencies table - a journal of operations that
// completed an irreversible ledger step but failed a later bookkeeping step
type Inconsistency struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Kind identifies the failed step (e.g., "transaction_record", "seller_payout")
	Kind domain.InconsistencyKind `gorm:"column:kind;not null;type:text;index"`
	// WalletAddress is the wallet affected by the operation
	WalletAddress string `gorm:"column:wallet_address;not null;default:'';type:text"`
	// Reference identifies the entity or ledger reference involved
	Reference string `gorm:"column:reference;not null;default:'';type:text"`
	// Payload is everything the reconciler needs to finish the step
	Payload datatypes.JSON `gorm:"column:payload;type:jsonb"`
	// Error is the error message of the failed step
	Error string `gorm:"column:error;not null;default:'';type:text"`
	// Status is open, resolved or manual
	Status domain.InconsistencyStatus `gorm:"column:status;not null;default:open;type:text;index"`
	// Attempts is the number of reconciliation attempts
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// CreatedAt is when the inconsistency was journaled
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// ResolvedAt is when the inconsistency was resolved
	ResolvedAt *time.Time `gorm:"column:resolved_at;type:timestamptz"`
}

// TableName specifies the table name for the Inconsistency model
func (Inconsistency) TableName() string {
	return "inconsistencies"
}
