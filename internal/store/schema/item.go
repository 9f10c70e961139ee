package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
)

// Item represents the items table - equipment that boosts hero power
type Item struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// OwnerWallet is the wallet address owning the item
	OwnerWallet string `gorm:"column:owner_wallet;not null;type:text;index"`
	// Rarity is the rarity tier
	Rarity domain.Rarity `gorm:"column:rarity;not null;type:text"`
	// Bonus is the base power bonus; zero means the rarity default applies
	Bonus decimal.Decimal `gorm:"column:bonus;not null;default:0;type:numeric(38,9)"`
	// BaseValue is the instant sell base value; zero means the default applies
	BaseValue decimal.Decimal `gorm:"column:base_value;not null;default:0;type:numeric(38,9)"`
	// Category is the marketplace category (e.g., "Weapon")
	Category string `gorm:"column:category;not null;default:'';type:text"`
	// EquippedTo is the hero the item is attached to, if any
	EquippedTo *int64 `gorm:"column:equipped_to"`
	// Status is the lock state (active, listed, liquidating)
	Status domain.AssetStatus `gorm:"column:status;not null;default:active;type:text"`
	// Version is incremented on every update for compare-and-swap
	Version int64 `gorm:"column:version;not null;default:1"`
	// CreatedAt is the timestamp when this item was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this item was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}
