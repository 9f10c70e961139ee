package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

// MergeFarmersInput represents the input for merging farmers into a target farmer
type MergeFarmersInput struct {
	FarmerID    int64
	OwnerWallet string
	MaxLevel    int
	// MaterialCount is the number of same level farmers consumed by the merge
	MaterialCount int
}

// MergeFarmersResult represents the outcome of a merge
type MergeFarmersResult struct {
	Farmer        *schema.Farmer
	PreviousLevel int
	ConsumedIDs   []int64
}

// FarmerCheckpoint identifies a farmer version observed before a harvest
type FarmerCheckpoint struct {
	ID      int64
	Version int64
}

// UpdateHeroLevelInput represents the input for a compare-and-swap hero level update
type UpdateHeroLevelInput struct {
	HeroID          int64
	ExpectedVersion int64
	Level           int
	BasePower       decimal.Decimal
	Power           decimal.Decimal
}

// EquipItemInput represents the input for equipping or unequipping an item
type EquipItemInput struct {
	HeroID      int64
	ItemID      int64
	OwnerWallet string
	// HeroVersion is the hero version the bonus was computed against
	HeroVersion int64
	Bonus       decimal.Decimal
}

// CreateListingInput represents the input for listing an asset
type CreateListingInput struct {
	ID           string
	AssetType    domain.AssetType
	ItemID       int64
	ItemName     string
	Category     string
	Price        decimal.Decimal
	SellerWallet string
	ListedAt     time.Time
}

// CompleteSaleInput represents the input for settling a sold listing
type CompleteSaleInput struct {
	ListingID       string
	ExpectedVersion int64
	BuyerWallet     string
	SoldAt          time.Time
}

// ListingFilter filters marketplace listings
type ListingFilter struct {
	Status       *domain.ListingStatus
	Category     string
	AssetType    domain.AssetType
	SellerWallet string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Limit        int
	Offset       int
}

// CountByKey is a grouped count
type CountByKey struct {
	Key   string `gorm:"column:key"`
	Count int64  `gorm:"column:count"`
}

// MarketplaceStats aggregates marketplace activity
type MarketplaceStats struct {
	ActiveListings   int64
	SoldSince        int64
	TotalVolume      decimal.Decimal
	AveragePrice     decimal.Decimal
	ActiveByType     []CountByKey
	ActiveByCategory []CountByKey
}

// StakingPoolSummary is a pool with the amount actively staked in it
type StakingPoolSummary struct {
	Pool        schema.StakingPool
	TotalStaked decimal.Decimal
}

// AdvanceClaimInput represents the input for moving a staking claim checkpoint
type AdvanceClaimInput struct {
	PositionID int64
	// ExpectedVersion is ignored when zero
	ExpectedVersion int64
	ClaimedAt       time.Time
}

// OpenPackInput represents the input for opening a pack
type OpenPackInput struct {
	PackID      int64
	OwnerWallet string
	OpenedAt    time.Time
	Heroes      []schema.Hero
	Farmers     []schema.Farmer
}

// TransactionFilter filters transaction records of a wallet
type TransactionFilter struct {
	Wallet   string
	Category string
	Type     string
	Limit    int
	Offset   int
}

// MarkInconsistencyInput represents the input for recording a reconciliation attempt
type MarkInconsistencyInput struct {
	ID     int64
	Status domain.InconsistencyStatus
	Error  string
	At     time.Time
}

// Store defines the interface for database operations.
// Getters return nil without an error when the entity does not exist.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// Farmers
	// =============================================================================

	// GetFarmersByOwner retrieves the farmers owned by a wallet ordered by ID
	GetFarmersByOwner(ctx context.Context, wallet string) ([]schema.Farmer, error)
	// GetFarmerByID retrieves a farmer by ID
	GetFarmerByID(ctx context.Context, id int64) (*schema.Farmer, error)
	// CreateFarmer inserts a farmer
	CreateFarmer(ctx context.Context, farmer *schema.Farmer) error
	// UpdateFarmerLevel sets the level of an active farmer if its version still matches
	UpdateFarmerLevel(ctx context.Context, id int64, expectedVersion int64, level int) (*schema.Farmer, error)
	// MergeFarmers consumes same level farmers of the owner and levels up the target in one transaction
	MergeFarmers(ctx context.Context, input MergeFarmersInput) (*MergeFarmersResult, error)
	// AdvanceHarvestCheckpoints moves the harvest checkpoint of the farmers to harvestedAt.
	// A farmer is skipped when its version changed or its checkpoint is not older than harvestedAt.
	// Returns the IDs of the farmers updated.
	AdvanceHarvestCheckpoints(ctx context.Context, wallet string, farmers []FarmerCheckpoint, harvestedAt time.Time) ([]int64, error)
	// RestoreHarvestCheckpoints moves checkpoints still at reservedAt back to their previous value
	RestoreHarvestCheckpoints(ctx context.Context, wallet string, reservedAt time.Time, checkpoints []domain.CheckpointRestore) error

	// =============================================================================
	// Heroes & items
	// =============================================================================

	// GetHeroesByOwner retrieves the heroes owned by a wallet ordered by ID
	GetHeroesByOwner(ctx context.Context, wallet string) ([]schema.Hero, error)
	// GetHeroByID retrieves a hero by ID
	GetHeroByID(ctx context.Context, id int64) (*schema.Hero, error)
	// CreateHero inserts a hero
	CreateHero(ctx context.Context, hero *schema.Hero) error
	// UpdateHeroLevel sets the level and power of an active hero if its version still matches
	UpdateHeroLevel(ctx context.Context, input UpdateHeroLevelInput) (*schema.Hero, error)
	// GetItemsByOwner retrieves the items owned by a wallet ordered by ID
	GetItemsByOwner(ctx context.Context, wallet string) ([]schema.Item, error)
	// GetItemsByIDs retrieves items by IDs
	GetItemsByIDs(ctx context.Context, ids []int64) ([]schema.Item, error)
	// GetItemByID retrieves an item by ID
	GetItemByID(ctx context.Context, id int64) (*schema.Item, error)
	// CreateItem inserts an item
	CreateItem(ctx context.Context, item *schema.Item) error
	// EquipItem attaches an item to a hero and adds the bonus to its power in one transaction
	EquipItem(ctx context.Context, input EquipItemInput) (*schema.Hero, error)
	// UnequipItem detaches an item from a hero and subtracts the bonus from its power in one transaction
	UnequipItem(ctx context.Context, input EquipItemInput) (*schema.Hero, error)

	// =============================================================================
	// Asset locks
	// =============================================================================

	// SetAssetStatus moves an owned asset from one lock state to another
	SetAssetStatus(ctx context.Context, assetType domain.AssetType, id int64, owner string, from, to domain.AssetStatus) error
	// DeleteLiquidatingAsset deletes an asset that is locked for liquidation
	DeleteLiquidatingAsset(ctx context.Context, assetType domain.AssetType, id int64) error

	// =============================================================================
	// Marketplace
	// =============================================================================

	// CreateListing locks the asset as listed and inserts the listing in one transaction
	CreateListing(ctx context.Context, input CreateListingInput) (*schema.MarketplaceListing, error)
	// GetListingByID retrieves a listing by ID
	GetListingByID(ctx context.Context, id string) (*schema.MarketplaceListing, error)
	// GetListings retrieves listings by filter ordered by newest first, with the total count
	GetListings(ctx context.Context, filter ListingFilter) ([]schema.MarketplaceListing, int64, error)
	// UpdateListingPrice changes the price of an active listing owned by the seller
	UpdateListingPrice(ctx context.Context, id string, seller string, price decimal.Decimal) (*schema.MarketplaceListing, error)
	// CancelListing cancels an active listing and unlocks the asset in one transaction
	CancelListing(ctx context.Context, id string, seller string, cancelledAt time.Time) (*schema.MarketplaceListing, error)
	// ReserveListing moves an active listing to settling for the buyer and returns it with the locked price
	ReserveListing(ctx context.Context, id string, buyer string) (*schema.MarketplaceListing, error)
	// ReleaseListing moves a listing settling for the buyer back to active
	ReleaseListing(ctx context.Context, id string, buyer string) error
	// CompleteSale marks a listing settling for the buyer sold and transfers the asset in one transaction
	CompleteSale(ctx context.Context, input CompleteSaleInput) (*schema.MarketplaceListing, error)
	// GetMarketplaceStats aggregates listings; SoldSince counts sales after since
	GetMarketplaceStats(ctx context.Context, since time.Time) (*MarketplaceStats, error)

	// =============================================================================
	// Staking
	// =============================================================================

	// GetStakingPools retrieves all pools ordered by lock period with their active totals
	GetStakingPools(ctx context.Context) ([]StakingPoolSummary, error)
	// GetStakingPoolByID retrieves a pool by ID
	GetStakingPoolByID(ctx context.Context, id int64) (*schema.StakingPool, error)
	// CreateStakingPosition inserts a position
	CreateStakingPosition(ctx context.Context, position *schema.StakingPosition) error
	// GetStakingPositions retrieves the positions of a wallet with their pools
	GetStakingPositions(ctx context.Context, wallet string, activeOnly bool) ([]schema.StakingPosition, error)
	// GetStakingPositionByID retrieves a position with its pool
	GetStakingPositionByID(ctx context.Context, id int64) (*schema.StakingPosition, error)
	// DeactivateStakingPosition marks an active position inactive. Version is ignored when zero.
	DeactivateStakingPosition(ctx context.Context, id int64, expectedVersion int64) error
	// ReactivateStakingPosition marks an inactive position active again if its version still matches
	ReactivateStakingPosition(ctx context.Context, id int64, expectedVersion int64) error
	// AdvanceClaimCheckpoint moves the claim checkpoint of an active position forward
	AdvanceClaimCheckpoint(ctx context.Context, input AdvanceClaimInput) error
	// RestoreClaimCheckpoint moves a claim checkpoint still at reservedAt back to previous
	RestoreClaimCheckpoint(ctx context.Context, id int64, reservedAt time.Time, previous time.Time) error

	// =============================================================================
	// Packs
	// =============================================================================

	// GetPackTypes retrieves pack types, optionally filtered by asset type
	GetPackTypes(ctx context.Context, assetType domain.AssetType) ([]schema.PackType, error)
	// GetPackTypeByKey retrieves a pack type by key
	GetPackTypeByKey(ctx context.Context, key string) (*schema.PackType, error)
	// CreatePack inserts a pack
	CreatePack(ctx context.Context, pack *schema.Pack) error
	// GetPacksByOwner retrieves the unopened packs of a wallet with their types
	GetPacksByOwner(ctx context.Context, wallet string, assetType domain.AssetType) ([]schema.Pack, error)
	// GetPackByID retrieves a pack with its type
	GetPackByID(ctx context.Context, id int64) (*schema.Pack, error)
	// OpenPack inserts the pack contents and marks the pack opened in one transaction
	OpenPack(ctx context.Context, input OpenPackInput) error

	// =============================================================================
	// Transactions
	// =============================================================================

	// CreateTransaction appends a transaction record
	CreateTransaction(ctx context.Context, tx *schema.Transaction) error
	// GetTransactionByID retrieves a record with its latest confirmation
	GetTransactionByID(ctx context.Context, id string) (*schema.Transaction, error)
	// ListTransactions retrieves the records of a wallet newest first, with the total count
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]schema.Transaction, int64, error)
	// UpsertTransactionConfirmation creates or updates the confirmation of a record
	UpsertTransactionConfirmation(ctx context.Context, confirmation *schema.TransactionConfirmation) error

	// =============================================================================
	// Inconsistency journal
	// =============================================================================

	// CreateInconsistency journals a partial success condition
	CreateInconsistency(ctx context.Context, inconsistency *schema.Inconsistency) error
	// GetOpenInconsistencies retrieves open entries oldest first
	GetOpenInconsistencies(ctx context.Context, limit int) ([]schema.Inconsistency, error)
	// MarkInconsistency records a reconciliation attempt and its resulting status
	MarkInconsistency(ctx context.Context, input MarkInconsistencyInput) error
}
