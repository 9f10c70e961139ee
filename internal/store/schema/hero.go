package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-economy/internal/domain"
)

// Hero represents the heroes table - power based assets that carry items
type Hero struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// HeroKey is the catalog template the hero was minted from (e.g., "dragon-knight")
	HeroKey string `gorm:"column:hero_key;not null;type:text"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// Rarity is the rarity tier
	Rarity domain.Rarity `gorm:"column:rarity;not null;type:text"`
	// HeroType is the class of the hero (e.g., "warrior", "mage")
	HeroType string `gorm:"column:hero_type;not null;default:'';type:text"`
	// OwnerWallet is the wallet address owning the hero
	OwnerWallet string `gorm:"column:owner_wallet;not null;type:text;index"`
	// Level is bounded to [1, 5]
	Level int `gorm:"column:level;not null;default:1"`
	// BasePower is the power without item bonuses
	BasePower decimal.Decimal `gorm:"column:base_power;not null;type:numeric(38,9)"`
	// Power is BasePower plus the bonuses of the equipped items at the current level
	Power decimal.Decimal `gorm:"column:power;not null;type:numeric(38,9)"`
	// EquippedItems is the ordered list of equipped item IDs without duplicates
	EquippedItems datatypes.JSONSlice[int64] `gorm:"column:equipped_items;not null;type:jsonb;default:'[]'"`
	// Status is the lock state (active, listed, liquidating)
	Status domain.AssetStatus `gorm:"column:status;not null;default:active;type:text"`
	// Version is incremented on every update for compare-and-swap
	Version int64 `gorm:"column:version;not null;default:1"`
	// CreatedAt is the timestamp when this hero was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this hero was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Hero model
func (Hero) TableName() string {
	return "heroes"
}

// HasItem reports whether the item is equipped to the hero
func (h *Hero) HasItem(itemID int64) bool {
	for _, id := range h.EquippedItems {
		if id == itemID {
			return true
		}
	}
	return false
}
