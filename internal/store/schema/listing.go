package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
)

// MarketplaceListing represents the marketplace_listings table
type MarketplaceListing struct {
	// ID is a UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// ItemID is the ID of the listed asset in its own table
	ItemID int64 `gorm:"column:item_id;not null"`
	// AssetType is hero, farmer or item
	AssetType domain.AssetType `gorm:"column:asset_type;not null;type:text"`
	// ItemName is the asset name at listing time
	ItemName string `gorm:"column:item_name;not null;type:text"`
	// Category is the asset category, or "Other"
	Category string `gorm:"column:category;not null;default:'Other';type:text"`
	// Price is the asking price in WLOS
	Price decimal.Decimal `gorm:"column:price;not null;type:numeric(38,9)"`
	// SellerWallet is the wallet that listed the asset
	SellerWallet string `gorm:"column:seller_wallet;not null;type:text;index"`
	// BuyerWallet is set while settling and once sold
	BuyerWallet *string `gorm:"column:buyer_wallet;type:text"`
	// Status is active, settling, sold or cancelled; sold and cancelled are terminal
	Status domain.ListingStatus `gorm:"column:status;not null;default:active;type:text;index"`
	// ListedAt is when the listing was created
	ListedAt time.Time `gorm:"column:listed_at;not null;default:now();type:timestamptz"`
	// SoldAt is when the listing was bought
	SoldAt *time.Time `gorm:"column:sold_at;type:timestamptz"`
	// CancelledAt is when the listing was cancelled
	CancelledAt *time.Time `gorm:"column:cancelled_at;type:timestamptz"`
	// Version is incremented on every update for compare-and-swap
	Version int64 `gorm:"column:version;not null;default:1"`
	// UpdatedAt is the timestamp when this listing was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MarketplaceListing model
func (MarketplaceListing) TableName() string {
	return "marketplace_listings"
}
