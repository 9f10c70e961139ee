package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
)

// PackType represents the pack_types table - the purchasable pack catalog
type PackType struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PackKey is the public identifier (e.g., "starter-hero-pack")
	PackKey string `gorm:"column:pack_key;not null;uniqueIndex;type:text"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description is a human readable description
	Description string `gorm:"column:description;not null;default:'';type:text"`
	// Price is the pack price in WLOS; zero means free
	Price decimal.Decimal `gorm:"column:price;not null;default:0;type:numeric(38,9)"`
	// ImageSrc is the pack image URL
	ImageSrc string `gorm:"column:image_src;not null;default:'';type:text"`
	// AssetType is the kind of asset the pack yields (hero or farmer)
	AssetType domain.AssetType `gorm:"column:asset_type;not null;type:text"`
	// CommonChance is the displayed chance of a common roll in [0, 1]
	CommonChance decimal.Decimal `gorm:"column:common_chance;not null;default:0;type:numeric(10,4)"`
	// RareChance is the chance of a rare roll in [0, 1]
	RareChance decimal.Decimal `gorm:"column:rare_chance;not null;default:0;type:numeric(10,4)"`
	// EpicChance is the chance of an epic roll in [0, 1]
	EpicChance decimal.Decimal `gorm:"column:epic_chance;not null;default:0;type:numeric(10,4)"`
	// LegendaryChance is the chance of a legendary roll in [0, 1]
	LegendaryChance decimal.Decimal `gorm:"column:legendary_chance;not null;default:0;type:numeric(10,4)"`
}

// TableName specifies the table name for the PackType model
func (PackType) TableName() string {
	return "pack_types"
}

// Pack represents the packs table - packs owned by wallets
type Pack struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PackTypeID references pack_types.id
	PackTypeID int64 `gorm:"column:pack_type_id;not null"`
	// PackKey is denormalised from the pack type
	PackKey string `gorm:"column:pack_key;not null;type:text"`
	// OwnerWallet is the wallet owning the pack
	OwnerWallet string `gorm:"column:owner_wallet;not null;type:text;index"`
	// Opened is true once the pack has been opened
	Opened bool `gorm:"column:opened;not null;default:false"`
	// OpenedAt is when the pack was opened
	OpenedAt *time.Time `gorm:"column:opened_at;type:timestamptz"`
	// CreatedAt is when the pack was bought
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// PackType is populated on reads that join the pack type
	PackType *PackType `gorm:"foreignKey:PackTypeID"`
}

// TableName specifies the table name for the Pack model
func (Pack) TableName() string {
	return "packs"
}
