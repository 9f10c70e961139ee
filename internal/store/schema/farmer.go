package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-economy/internal/domain"
)

// Farmer represents the farmers table - yield producing assets
type Farmer struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// FarmerKey is the catalog template the farmer was minted from (e.g., "agribot-3000")
	FarmerKey string `gorm:"column:farmer_key;not null;type:text"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// Rarity is the rarity tier
	Rarity domain.Rarity `gorm:"column:rarity;not null;type:text"`
	// OwnerWallet is the wallet address owning the farmer
	OwnerWallet string `gorm:"column:owner_wallet;not null;type:text;index"`
	// Level is bounded to [1, 5]
	Level int `gorm:"column:level;not null;default:1"`
	// BaseYieldPerHour is the level 1 yield rate in WLOS per hour
	BaseYieldPerHour decimal.Decimal `gorm:"column:base_yield_per_hour;not null;type:numeric(38,9)"`
	// LastHarvested is the accrual checkpoint
	LastHarvested time.Time `gorm:"column:last_harvested;not null;default:now();type:timestamptz"`
	// EquippedItems is the set of item IDs attached to the farmer
	EquippedItems datatypes.JSONSlice[int64] `gorm:"column:equipped_items;not null;type:jsonb;default:'[]'"`
	// Status is the lock state (active, listed, liquidating)
	Status domain.AssetStatus `gorm:"column:status;not null;default:active;type:text"`
	// Version is incremented on every update for compare-and-swap
	Version int64 `gorm:"column:version;not null;default:1"`
	// CreatedAt is the timestamp when this farmer was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this farmer was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Farmer model
func (Farmer) TableName() string {
	return "farmers"
}
