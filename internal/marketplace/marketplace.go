// Package marketplace lists, sells and liquidates assets for WLOS.
package marketplace

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

const (
	// DefaultPageLimit is the page size when a query does not set one
	DefaultPageLimit = 10
	// MaxPageLimit caps the page size of listing queries
	MaxPageLimit = 100
)

// CreateListingRequest represents a request to list an asset
type CreateListingRequest struct {
	AssetType domain.AssetType
	AssetID   int64
	Price     decimal.Decimal
	// Category overrides the asset category
	Category string
}

// ListingQuery filters active listings
type ListingQuery struct {
	Category  string
	AssetType domain.AssetType
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	Page      int
	Limit     int
}

// ListingPage is a page of listings
type ListingPage struct {
	Listings []schema.MarketplaceListing `json:"listings"`
	Total    int64                       `json:"total"`
	Page     int                         `json:"page"`
	Limit    int                         `json:"limit"`
	HasMore  bool                        `json:"hasMore"`
}

// ListingResult is the outcome of listing or cancelling an asset
type ListingResult struct {
	domain.Partial
	Listing     *schema.MarketplaceListing `json:"listing"`
	Transaction *schema.Transaction        `json:"transaction,omitempty"`
}

// PurchaseResult is the outcome of buying a listing
type PurchaseResult struct {
	domain.Partial
	Listing        *schema.MarketplaceListing `json:"listing"`
	Price          decimal.Decimal            `json:"price"`
	SellerProceeds decimal.Decimal            `json:"sellerProceeds"`
	PlatformFee    decimal.Decimal            `json:"platformFee"`
	PaymentHash    string                     `json:"paymentHash,omitempty"`
	PayoutHash     string                     `json:"payoutHash,omitempty"`
	// Outcome holds the buyer payment and the seller payout
	Outcome ledger.Outcome        `json:"-"`
	Records *recorder.SaleRecords `json:"-"`
}

// InstantSellResult is the outcome of selling an asset to the treasury
type InstantSellResult struct {
	domain.Partial
	AssetType   domain.AssetType    `json:"assetType"`
	AssetID     int64               `json:"assetId"`
	Name        string              `json:"name"`
	BaseValue   decimal.Decimal     `json:"baseValue"`
	Payout      decimal.Decimal     `json:"payout"`
	Hash        string              `json:"hash,omitempty"`
	Transaction *schema.Transaction `json:"transaction,omitempty"`
}

// Stats summarises marketplace activity
type Stats struct {
	ActiveListings int64            `json:"activeListings"`
	RecentSales    int64            `json:"recentSales"`
	TotalVolume    decimal.Decimal  `json:"totalVolume"`
	AveragePrice   decimal.Decimal  `json:"averagePrice"`
	AssetTypes     map[string]int64 `json:"assetTypes"`
	Categories     map[string]int64 `json:"categories"`
	Since          time.Time        `json:"since"`
}

// Engine runs the marketplace
//
//go:generate mockgen -source=marketplace.go -destination=../mocks/marketplace.go -package=mocks -mock_names=Engine=MockMarketplaceEngine
type Engine interface {
	// CreateListing locks an asset of the wallet and lists it
	CreateListing(ctx context.Context, wallet string, req CreateListingRequest) (*ListingResult, error)

	// UpdateListing changes the price of an active listing of the wallet
	UpdateListing(ctx context.Context, wallet, listingID string, price decimal.Decimal) (*schema.MarketplaceListing, error)

	// CancelListing cancels an active listing of the wallet and unlocks the asset
	CancelListing(ctx context.Context, wallet, listingID string) (*ListingResult, error)

	// BuyItem settles an active listing for the buyer
	BuyItem(ctx context.Context, buyer, listingID string) (*PurchaseResult, error)

	// InstantSell sells an asset of the wallet to the treasury and deletes it
	InstantSell(ctx context.Context, wallet string, assetType domain.AssetType, assetID int64) (*InstantSellResult, error)

	// GetListings returns active listings newest first
	GetListings(ctx context.Context, query ListingQuery) (*ListingPage, error)

	// GetMyListings returns the active listings of the wallet newest first
	GetMyListings(ctx context.Context, wallet string, page, limit int) (*ListingPage, error)

	// GetMarketplaceStats summarises active listings and recent sales
	GetMarketplaceStats(ctx context.Context) (*Stats, error)
}

type engine struct {
	store    store.Store
	ledger   ledger.Ledger
	recorder recorder.Recorder
	clock    adapter.Clock
}

// NewEngine creates a marketplace engine
func NewEngine(st store.Store, l ledger.Ledger, rec recorder.Recorder, clock adapter.Clock) Engine {
	return &engine{
		store:    st,
		ledger:   l,
		recorder: rec,
		clock:    clock,
	}
}

// pagination normalises a page and limit into a limit and offset
func pagination(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit, (page - 1) * limit
}
