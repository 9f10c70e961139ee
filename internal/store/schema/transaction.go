package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-economy/internal/domain"
)

// Transaction represents the transactions table - the append-only ledger of economy events
type Transaction struct {
	// ID is a ULID
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// Type is the transaction type (e.g., "Purchase", "Staking")
	Type domain.TransactionType `gorm:"column:type;not null;type:text"`
	// Item is a short human readable label (e.g., "Level Up Dragon Knight")
	Item string `gorm:"column:item;not null;type:text"`
	// Amount is signed from the point of view of the wallet the record belongs to
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(38,9)"`
	// Token is the token symbol
	Token string `gorm:"column:token;not null;default:'WLOS';type:text"`
	// FromWallet is the paying side, if any
	FromWallet *string `gorm:"column:from_wallet;type:text;index"`
	// ToWallet is the receiving side, if any
	ToWallet *string `gorm:"column:to_wallet;type:text;index"`
	// Status is pending, confirmed or failed at insert time
	Status domain.TransactionStatus `gorm:"column:status;not null;type:text"`
	// Category groups records for filtering
	Category domain.TransactionCategory `gorm:"column:category;not null;type:text"`
	// Hash is the on-chain transaction hash, if any
	Hash *string `gorm:"column:hash;type:text"`
	// Fee is the fee charged by the operation
	Fee decimal.Decimal `gorm:"column:fee;not null;default:0;type:numeric(38,9)"`
	// Timestamp is when the event happened
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// Notes is free text
	Notes *string `gorm:"column:notes;type:text"`
	// Details holds operation specific data (e.g., {"heroId": 1, "previousLevel": 1})
	Details datatypes.JSON `gorm:"column:details;type:jsonb"`

	// Confirmation is populated on reads that join the latest confirmation
	Confirmation *TransactionConfirmation `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionConfirmation represents the transaction_confirmations table - chain confirmation
// progress tracked outside the append-only transactions table
type TransactionConfirmation struct {
	// TransactionID references transactions.id
	TransactionID string `gorm:"column:transaction_id;primaryKey;type:varchar(26)"`
	// Hash is the on-chain transaction hash
	Hash string `gorm:"column:hash;not null;type:text"`
	// Block is the block the transaction was included in
	Block *uint64 `gorm:"column:block"`
	// Confirmations is the number of blocks on top of the inclusion block
	Confirmations uint64 `gorm:"column:confirmations;not null;default:0"`
	// Status mirrors the chain status (pending, confirmed, failed)
	Status domain.TransactionStatus `gorm:"column:status;not null;type:text"`
	// ObservedAt is when the confirmation was last checked
	ObservedAt time.Time `gorm:"column:observed_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TransactionConfirmation model
func (TransactionConfirmation) TableName() string {
	return "transaction_confirmations"
}
