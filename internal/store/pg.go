package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// MaxIdleConns must not exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// bumpVersion returns the columns touched by every compare-and-swap update
func bumpVersion(fields map[string]interface{}) map[string]interface{} {
	fields["version"] = gorm.Expr("version + 1")
	fields["updated_at"] = gorm.Expr("now()")
	return fields
}

func assetTableName(assetType domain.AssetType) (string, error) {
	switch assetType {
	case domain.AssetTypeHero:
		return schema.Hero{}.TableName(), nil
	case domain.AssetTypeFarmer:
		return schema.Farmer{}.TableName(), nil
	case domain.AssetTypeItem:
		return schema.Item{}.TableName(), nil
	default:
		return "", domain.NewValidationError("invalid asset type %q", assetType)
	}
}

type lockedAsset struct {
	OwnerWallet string             `gorm:"column:owner_wallet"`
	Status      domain.AssetStatus `gorm:"column:status"`
	EquippedTo  *int64             `gorm:"column:equipped_to"`
}

// lockAsset reads the lock relevant columns of an asset with SELECT ... FOR UPDATE
func lockAsset(tx *gorm.DB, assetType domain.AssetType, id int64) (*lockedAsset, error) {
	table, err := assetTableName(assetType)
	if err != nil {
		return nil, err
	}

	columns := []string{"owner_wallet", "status"}
	if assetType == domain.AssetTypeItem {
		columns = append(columns, "equipped_to")
	}

	var asset lockedAsset
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Table(table).
		Select(columns).
		Where("id = ?", id).
		Take(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(string(assetType), id)
		}
		return nil, fmt.Errorf("failed to lock %s: %w", assetType, err)
	}

	return &asset, nil
}

// =============================================================================
// Farmers
// =============================================================================

// GetFarmersByOwner retrieves the farmers owned by a wallet ordered by ID
func (s *pgStore) GetFarmersByOwner(ctx context.Context, wallet string) ([]schema.Farmer, error) {
	var farmers []schema.Farmer
	err := s.db.WithContext(ctx).
		Where("owner_wallet = ?", wallet).
		Order("id ASC").
		Find(&farmers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get farmers: %w", err)
	}
	return farmers, nil
}

// GetFarmerByID retrieves a farmer by ID
func (s *pgStore) GetFarmerByID(ctx context.Context, id int64) (*schema.Farmer, error) {
	var farmer schema.Farmer
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&farmer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get farmer: %w", err)
	}
	return &farmer, nil
}

// CreateFarmer inserts a farmer
func (s *pgStore) CreateFarmer(ctx context.Context, farmer *schema.Farmer) error {
	if err := s.db.WithContext(ctx).Create(farmer).Error; err != nil {
		return fmt.Errorf("failed to create farmer: %w", err)
	}
	return nil
}

// UpdateFarmerLevel sets the level of an active farmer if its version still matches
func (s *pgStore) UpdateFarmerLevel(ctx context.Context, id int64, expectedVersion int64, level int) (*schema.Farmer, error) {
	var farmer schema.Farmer
	res := s.db.WithContext(ctx).
		Model(&farmer).
		Clauses(clause.Returning{}).
		Where("id = ? AND version = ? AND status = ?", id, expectedVersion, domain.AssetStatusActive).
		Updates(bumpVersion(map[string]interface{}{"level": level}))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update farmer level: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrStaleWrite
	}
	return &farmer, nil
}

// MergeFarmers consumes same level farmers of the owner and levels up the target in one transaction.
// All candidate rows are locked in ascending ID order so concurrent merges cannot deadlock.
func (s *pgStore) MergeFarmers(ctx context.Context, input MergeFarmersInput) (*MergeFarmersResult, error) {
	var result *MergeFarmersResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target schema.Farmer
		if err := tx.Where("id = ?", input.FarmerID).First(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("farmer", input.FarmerID)
			}
			return fmt.Errorf("failed to get farmer: %w", err)
		}
		if target.OwnerWallet != input.OwnerWallet {
			return domain.NewNotFoundError("farmer", input.FarmerID)
		}
		if target.Status != domain.AssetStatusActive {
			return domain.ErrAssetLocked
		}
		if target.Level >= input.MaxLevel {
			return domain.ErrMaxLevelReached
		}

		var candidates []schema.Farmer
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_wallet = ? AND level = ? AND status = ?", input.OwnerWallet, target.Level, domain.AssetStatusActive).
			Order("id ASC").
			Find(&candidates).Error
		if err != nil {
			return fmt.Errorf("failed to lock farmers: %w", err)
		}

		found := false
		var consumed []int64
		for _, c := range candidates {
			if c.ID == target.ID {
				found = true
				continue
			}
			if len(consumed) < input.MaterialCount {
				consumed = append(consumed, c.ID)
			}
		}
		if !found {
			// Target changed between the read and the lock
			return domain.ErrStaleWrite
		}
		if missing := input.MaterialCount - len(consumed); missing > 0 {
			return domain.ErrInsufficientMergeMaterial.WithMessage(
				"need %d more level %d farmer(s) to merge", missing, target.Level)
		}

		if err := tx.Where("id IN ?", consumed).Delete(&schema.Farmer{}).Error; err != nil {
			return fmt.Errorf("failed to delete merged farmers: %w", err)
		}

		var merged schema.Farmer
		err = tx.Model(&merged).
			Clauses(clause.Returning{}).
			Where("id = ?", target.ID).
			Updates(bumpVersion(map[string]interface{}{"level": target.Level + 1})).Error
		if err != nil {
			return fmt.Errorf("failed to level up farmer: %w", err)
		}

		result = &MergeFarmersResult{
			Farmer:        &merged,
			PreviousLevel: target.Level,
			ConsumedIDs:   consumed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// AdvanceHarvestCheckpoints moves the harvest checkpoint of the farmers to harvestedAt
func (s *pgStore) AdvanceHarvestCheckpoints(ctx context.Context, wallet string, farmers []FarmerCheckpoint, harvestedAt time.Time) ([]int64, error) {
	if len(farmers) == 0 {
		return nil, nil
	}

	var updated []int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, f := range farmers {
			q := tx.Model(&schema.Farmer{}).
				Where("id = ? AND owner_wallet = ? AND last_harvested < ?", f.ID, wallet, harvestedAt)
			if f.Version > 0 {
				q = q.Where("version = ?", f.Version)
			}
			res := q.Updates(bumpVersion(map[string]interface{}{"last_harvested": harvestedAt}))
			if res.Error != nil {
				return fmt.Errorf("failed to advance harvest checkpoint: %w", res.Error)
			}
			if res.RowsAffected > 0 {
				updated = append(updated, f.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RestoreHarvestCheckpoints moves checkpoints still at reservedAt back to their previous value.
// A farmer harvested again since the reservation is left alone.
func (s *pgStore) RestoreHarvestCheckpoints(ctx context.Context, wallet string, reservedAt time.Time, checkpoints []domain.CheckpointRestore) error {
	if len(checkpoints) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range checkpoints {
			err := tx.Model(&schema.Farmer{}).
				Where("id = ? AND owner_wallet = ? AND last_harvested = ?", c.ID, wallet, reservedAt).
				Updates(bumpVersion(map[string]interface{}{"last_harvested": c.Previous})).Error
			if err != nil {
				return fmt.Errorf("failed to restore harvest checkpoint: %w", err)
			}
		}
		return nil
	})
}

// =============================================================================
// Heroes & items
// =============================================================================

// GetHeroesByOwner retrieves the heroes owned by a wallet ordered by ID
func (s *pgStore) GetHeroesByOwner(ctx context.Context, wallet string) ([]schema.Hero, error) {
	var heroes []schema.Hero
	err := s.db.WithContext(ctx).
		Where("owner_wallet = ?", wallet).
		Order("id ASC").
		Find(&heroes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get heroes: %w", err)
	}
	return heroes, nil
}

// GetHeroByID retrieves a hero by ID
func (s *pgStore) GetHeroByID(ctx context.Context, id int64) (*schema.Hero, error) {
	var hero schema.Hero
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&hero).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hero: %w", err)
	}
	return &hero, nil
}

// CreateHero inserts a hero
func (s *pgStore) CreateHero(ctx context.Context, hero *schema.Hero) error {
	if err := s.db.WithContext(ctx).Create(hero).Error; err != nil {
		return fmt.Errorf("failed to create hero: %w", err)
	}
	return nil
}

// UpdateHeroLevel sets the level and power of an active hero if its version still matches
func (s *pgStore) UpdateHeroLevel(ctx context.Context, input UpdateHeroLevelInput) (*schema.Hero, error) {
	var hero schema.Hero
	res := s.db.WithContext(ctx).
		Model(&hero).
		Clauses(clause.Returning{}).
		Where("id = ? AND version = ? AND status = ?", input.HeroID, input.ExpectedVersion, domain.AssetStatusActive).
		Updates(bumpVersion(map[string]interface{}{
			"level":      input.Level,
			"base_power": input.BasePower,
			"power":      input.Power,
		}))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update hero level: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrStaleWrite
	}
	return &hero, nil
}

// GetItemsByOwner retrieves the items owned by a wallet ordered by ID
func (s *pgStore) GetItemsByOwner(ctx context.Context, wallet string) ([]schema.Item, error) {
	var items []schema.Item
	err := s.db.WithContext(ctx).
		Where("owner_wallet = ?", wallet).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

// GetItemsByIDs retrieves items by IDs
func (s *pgStore) GetItemsByIDs(ctx context.Context, ids []int64) ([]schema.Item, error) {
	if len(ids) == 0 {
		return []schema.Item{}, nil
	}

	var items []schema.Item
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

// GetItemByID retrieves an item by ID
func (s *pgStore) GetItemByID(ctx context.Context, id int64) (*schema.Item, error) {
	var item schema.Item
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// CreateItem inserts an item
func (s *pgStore) CreateItem(ctx context.Context, item *schema.Item) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// lockHeroAndItem locks a hero then an item owned by the wallet for an equipment change
func lockHeroAndItem(tx *gorm.DB, input EquipItemInput) (*schema.Hero, *schema.Item, error) {
	var hero schema.Hero
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", input.HeroID).First(&hero).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.NewNotFoundError("hero", input.HeroID)
		}
		return nil, nil, fmt.Errorf("failed to lock hero: %w", err)
	}
	if hero.OwnerWallet != input.OwnerWallet {
		return nil, nil, domain.NewNotFoundError("hero", input.HeroID)
	}
	if hero.Version != input.HeroVersion {
		return nil, nil, domain.ErrStaleWrite
	}
	if hero.Status != domain.AssetStatusActive {
		return nil, nil, domain.ErrAssetLocked
	}

	var item schema.Item
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", input.ItemID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.NewNotFoundError("item", input.ItemID)
		}
		return nil, nil, fmt.Errorf("failed to lock item: %w", err)
	}
	if item.OwnerWallet != input.OwnerWallet {
		return nil, nil, domain.NewNotFoundError("item", input.ItemID)
	}

	return &hero, &item, nil
}

// EquipItem attaches an item to a hero and adds the bonus to its power in one transaction
func (s *pgStore) EquipItem(ctx context.Context, input EquipItemInput) (*schema.Hero, error) {
	var updated schema.Hero

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hero, item, err := lockHeroAndItem(tx, input)
		if err != nil {
			return err
		}
		if item.Status != domain.AssetStatusActive {
			return domain.ErrAssetLocked
		}
		if hero.HasItem(item.ID) {
			return domain.ErrAlreadyEquipped
		}
		if item.EquippedTo != nil {
			return domain.ErrItemEquippedElsewhere
		}

		items := append(append([]int64{}, hero.EquippedItems...), item.ID)
		err = tx.Model(&updated).
			Clauses(clause.Returning{}).
			Where("id = ?", hero.ID).
			Updates(bumpVersion(map[string]interface{}{
				"equipped_items": datatypes.JSONSlice[int64](items),
				"power":          hero.Power.Add(input.Bonus),
			})).Error
		if err != nil {
			return fmt.Errorf("failed to update hero: %w", err)
		}

		err = tx.Model(&schema.Item{}).
			Where("id = ?", item.ID).
			Updates(bumpVersion(map[string]interface{}{"equipped_to": hero.ID})).Error
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// UnequipItem detaches an item from a hero and subtracts the bonus from its power in one transaction
func (s *pgStore) UnequipItem(ctx context.Context, input EquipItemInput) (*schema.Hero, error) {
	var updated schema.Hero

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hero, item, err := lockHeroAndItem(tx, input)
		if err != nil {
			return err
		}
		if !hero.HasItem(item.ID) {
			return domain.ErrNotEquipped
		}

		items := make([]int64, 0, len(hero.EquippedItems))
		for _, id := range hero.EquippedItems {
			if id != item.ID {
				items = append(items, id)
			}
		}

		err = tx.Model(&updated).
			Clauses(clause.Returning{}).
			Where("id = ?", hero.ID).
			Updates(bumpVersion(map[string]interface{}{
				"equipped_items": datatypes.JSONSlice[int64](items),
				"power":          hero.Power.Sub(input.Bonus),
			})).Error
		if err != nil {
			return fmt.Errorf("failed to update hero: %w", err)
		}

		err = tx.Model(&schema.Item{}).
			Where("id = ?", item.ID).
			Updates(bumpVersion(map[string]interface{}{"equipped_to": nil})).Error
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// =============================================================================
// Asset locks
// =============================================================================

// SetAssetStatus moves an owned asset from one lock state to another
func (s *pgStore) SetAssetStatus(ctx context.Context, assetType domain.AssetType, id int64, owner string, from, to domain.AssetStatus) error {
	table, err := assetTableName(assetType)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Table(table).
		Where("id = ? AND owner_wallet = ? AND status = ?", id, owner, from).
		Updates(bumpVersion(map[string]interface{}{"status": to}))
	if res.Error != nil {
		return fmt.Errorf("failed to set %s status: %w", assetType, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleWrite
	}
	return nil
}

// DeleteLiquidatingAsset deletes an asset that is locked for liquidation
func (s *pgStore) DeleteLiquidatingAsset(ctx context.Context, assetType domain.AssetType, id int64) error {
	table, err := assetTableName(assetType)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ? AND status = ?", table), id, domain.AssetStatusLiquidating)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", assetType, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleWrite
	}
	return nil
}

// =============================================================================
// Marketplace
// =============================================================================

// CreateListing locks the asset as listed and inserts the listing in one transaction
func (s *pgStore) CreateListing(ctx context.Context, input CreateListingInput) (*schema.MarketplaceListing, error) {
	listing := schema.MarketplaceListing{
		ID:           input.ID,
		ItemID:       input.ItemID,
		AssetType:    input.AssetType,
		ItemName:     input.ItemName,
		Category:     input.Category,
		Price:        input.Price,
		SellerWallet: input.SellerWallet,
		Status:       domain.ListingStatusActive,
		ListedAt:     input.ListedAt,
		UpdatedAt:    input.ListedAt,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		asset, err := lockAsset(tx, input.AssetType, input.ItemID)
		if err != nil {
			return err
		}
		if asset.OwnerWallet != input.SellerWallet {
			return domain.NewNotFoundError(string(input.AssetType), input.ItemID)
		}
		if asset.Status != domain.AssetStatusActive {
			return domain.ErrAssetLocked
		}
		if asset.EquippedTo != nil {
			return domain.ErrAssetLocked.WithMessage("item is equipped to hero %d", *asset.EquippedTo)
		}

		table, _ := assetTableName(input.AssetType)
		err = tx.Table(table).
			Where("id = ?", input.ItemID).
			Updates(bumpVersion(map[string]interface{}{"status": domain.AssetStatusListed})).Error
		if err != nil {
			return fmt.Errorf("failed to lock %s as listed: %w", input.AssetType, err)
		}

		if err := tx.Create(&listing).Error; err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// GetListingByID retrieves a listing by ID
func (s *pgStore) GetListingByID(ctx context.Context, id string) (*schema.MarketplaceListing, error) {
	var listing schema.MarketplaceListing
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// GetListings retrieves listings by filter ordered by newest first, with the total count
func (s *pgStore) GetListings(ctx context.Context, filter ListingFilter) ([]schema.MarketplaceListing, int64, error) {
	q := s.db.WithContext(ctx).Model(&schema.MarketplaceListing{})
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.AssetType != "" {
		q = q.Where("asset_type = ?", filter.AssetType)
	}
	if filter.SellerWallet != "" {
		q = q.Where("seller_wallet = ?", filter.SellerWallet)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	var listings []schema.MarketplaceListing
	q = q.Order("listed_at DESC, id ASC").Offset(filter.Offset)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Find(&listings).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get listings: %w", err)
	}

	return listings, total, nil
}

// UpdateListingPrice changes the price of an active listing owned by the seller
func (s *pgStore) UpdateListingPrice(ctx context.Context, id string, seller string, price decimal.Decimal) (*schema.MarketplaceListing, error) {
	var updated schema.MarketplaceListing

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := lockListing(tx, id)
		if err != nil {
			return err
		}
		if listing.SellerWallet != seller {
			return domain.ErrNotSeller
		}
		if listing.Status != domain.ListingStatusActive {
			return domain.ErrListingNotActive
		}

		return tx.Model(&updated).
			Clauses(clause.Returning{}).
			Where("id = ?", id).
			Updates(bumpVersion(map[string]interface{}{"price": price})).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// CancelListing cancels an active listing and unlocks the asset in one transaction
func (s *pgStore) CancelListing(ctx context.Context, id string, seller string, cancelledAt time.Time) (*schema.MarketplaceListing, error) {
	var updated schema.MarketplaceListing

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := lockListing(tx, id)
		if err != nil {
			return err
		}
		if listing.SellerWallet != seller {
			return domain.ErrNotSeller
		}
		if listing.Status != domain.ListingStatusActive {
			return domain.ErrListingNotActive
		}

		err = tx.Model(&updated).
			Clauses(clause.Returning{}).
			Where("id = ?", id).
			Updates(bumpVersion(map[string]interface{}{
				"status":       domain.ListingStatusCancelled,
				"cancelled_at": cancelledAt,
			})).Error
		if err != nil {
			return fmt.Errorf("failed to cancel listing: %w", err)
		}

		table, err := assetTableName(listing.AssetType)
		if err != nil {
			return err
		}
		err = tx.Table(table).
			Where("id = ? AND status = ?", listing.ItemID, domain.AssetStatusListed).
			Updates(bumpVersion(map[string]interface{}{"status": domain.AssetStatusActive})).Error
		if err != nil {
			return fmt.Errorf("failed to unlock %s: %w", listing.AssetType, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// ReserveListing moves an active listing to settling for the buyer. The returned row carries
// the price the buyer pays; seller updates are refused until the listing is released or sold.
func (s *pgStore) ReserveListing(ctx context.Context, id string, buyer string) (*schema.MarketplaceListing, error) {
	var updated schema.MarketplaceListing

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := lockListing(tx, id)
		if err != nil {
			return err
		}
		if listing.Status != domain.ListingStatusActive {
			return domain.ErrListingNotActive
		}
		if strings.EqualFold(listing.SellerWallet, buyer) {
			return domain.ErrSelfTradeForbidden
		}

		return tx.Model(&updated).
			Clauses(clause.Returning{}).
			Where("id = ?", id).
			Updates(bumpVersion(map[string]interface{}{
				"status":       domain.ListingStatusSettling,
				"buyer_wallet": buyer,
			})).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// ReleaseListing moves a listing settling for the buyer back to active
func (s *pgStore) ReleaseListing(ctx context.Context, id string, buyer string) error {
	res := s.db.WithContext(ctx).
		Model(&schema.MarketplaceListing{}).
		Where("id = ? AND status = ? AND buyer_wallet = ?", id, domain.ListingStatusSettling, buyer).
		Updates(bumpVersion(map[string]interface{}{
			"status":       domain.ListingStatusActive,
			"buyer_wallet": nil,
		}))
	if res.Error != nil {
		return fmt.Errorf("failed to release listing: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleWrite.WithMessage("listing %s is not settling for %s", id, buyer)
	}

	return nil
}

// CompleteSale marks a listing settling for the buyer sold and transfers the asset in one
// transaction. Items equipped to a sold hero move with it.
func (s *pgStore) CompleteSale(ctx context.Context, input CompleteSaleInput) (*schema.MarketplaceListing, error) {
	var updated schema.MarketplaceListing

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := lockListing(tx, input.ListingID)
		if err != nil {
			return err
		}
		if listing.Status != domain.ListingStatusSettling ||
			listing.BuyerWallet == nil || *listing.BuyerWallet != input.BuyerWallet {
			return domain.ErrListingNotActive
		}
		if input.ExpectedVersion > 0 && listing.Version != input.ExpectedVersion {
			return domain.ErrStaleWrite
		}

		err = tx.Model(&updated).
			Clauses(clause.Returning{}).
			Where("id = ?", listing.ID).
			Updates(bumpVersion(map[string]interface{}{
				"status":       domain.ListingStatusSold,
				"buyer_wallet": input.BuyerWallet,
				"sold_at":      input.SoldAt,
			})).Error
		if err != nil {
			return fmt.Errorf("failed to mark listing sold: %w", err)
		}

		table, err := assetTableName(listing.AssetType)
		if err != nil {
			return err
		}
		res := tx.Table(table).
			Where("id = ? AND owner_wallet = ? AND status = ?", listing.ItemID, listing.SellerWallet, domain.AssetStatusListed).
			Updates(bumpVersion(map[string]interface{}{
				"owner_wallet": input.BuyerWallet,
				"status":       domain.AssetStatusActive,
			}))
		if res.Error != nil {
			return fmt.Errorf("failed to transfer %s: %w", listing.AssetType, res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrStaleWrite.WithMessage("listed %s %d is no longer held by the seller", listing.AssetType, listing.ItemID)
		}

		if listing.AssetType == domain.AssetTypeHero {
			err = tx.Model(&schema.Item{}).
				Where("equipped_to = ?", listing.ItemID).
				Updates(bumpVersion(map[string]interface{}{"owner_wallet": input.BuyerWallet})).Error
			if err != nil {
				return fmt.Errorf("failed to transfer equipped items: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func lockListing(tx *gorm.DB, id string) (*schema.MarketplaceListing, error) {
	var listing schema.MarketplaceListing
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("listing", id)
		}
		return nil, fmt.Errorf("failed to lock listing: %w", err)
	}
	return &listing, nil
}

// GetMarketplaceStats aggregates listings; SoldSince counts sales after since
func (s *pgStore) GetMarketplaceStats(ctx context.Context, since time.Time) (*MarketplaceStats, error) {
	db := s.db.WithContext(ctx)
	stats := MarketplaceStats{}

	if err := db.Model(&schema.MarketplaceListing{}).
		Where("status = ?", domain.ListingStatusActive).
		Count(&stats.ActiveListings).Error; err != nil {
		return nil, fmt.Errorf("failed to count active listings: %w", err)
	}

	if err := db.Model(&schema.MarketplaceListing{}).
		Where("status = ? AND sold_at >= ?", domain.ListingStatusSold, since).
		Count(&stats.SoldSince).Error; err != nil {
		return nil, fmt.Errorf("failed to count recent sales: %w", err)
	}

	var volume struct {
		Total   decimal.Decimal `gorm:"column:total"`
		Average decimal.Decimal `gorm:"column:average"`
	}
	if err := db.Model(&schema.MarketplaceListing{}).
		Select("COALESCE(SUM(price), 0) AS total, COALESCE(AVG(price), 0) AS average").
		Where("status = ?", domain.ListingStatusSold).
		Scan(&volume).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate sales volume: %w", err)
	}
	stats.TotalVolume = volume.Total
	stats.AveragePrice = volume.Average.Round(domain.TOKEN_DECIMALS)

	if err := db.Model(&schema.MarketplaceListing{}).
		Select("asset_type AS key, COUNT(*) AS count").
		Where("status = ?", domain.ListingStatusActive).
		Group("asset_type").
		Order("asset_type").
		Scan(&stats.ActiveByType).Error; err != nil {
		return nil, fmt.Errorf("failed to count listings by type: %w", err)
	}

	if err := db.Model(&schema.MarketplaceListing{}).
		Select("category AS key, COUNT(*) AS count").
		Where("status = ?", domain.ListingStatusActive).
		Group("category").
		Order("category").
		Scan(&stats.ActiveByCategory).Error; err != nil {
		return nil, fmt.Errorf("failed to count listings by category: %w", err)
	}

	return &stats, nil
}

// =============================================================================
// Staking
// =============================================================================

// GetStakingPools retrieves all pools ordered by lock period with their active totals
func (s *pgStore) GetStakingPools(ctx context.Context) ([]StakingPoolSummary, error) {
	db := s.db.WithContext(ctx)

	var pools []schema.StakingPool
	if err := db.Order("lock_period_days ASC, id ASC").Find(&pools).Error; err != nil {
		return nil, fmt.Errorf("failed to get staking pools: %w", err)
	}

	var totals []struct {
		PoolID int64           `gorm:"column:pool_id"`
		Total  decimal.Decimal `gorm:"column:total"`
	}
	if err := db.Model(&schema.StakingPosition{}).
		Select("pool_id, COALESCE(SUM(amount), 0) AS total").
		Where("is_active = ?", true).
		Group("pool_id").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum staked amounts: %w", err)
	}

	byPool := make(map[int64]decimal.Decimal, len(totals))
	for _, t := range totals {
		byPool[t.PoolID] = t.Total
	}

	summaries := make([]StakingPoolSummary, 0, len(pools))
	for _, p := range pools {
		total, ok := byPool[p.ID]
		if !ok {
			total = decimal.Zero
		}
		summaries = append(summaries, StakingPoolSummary{Pool: p, TotalStaked: total})
	}

	return summaries, nil
}

// GetStakingPoolByID retrieves a pool by ID
func (s *pgStore) GetStakingPoolByID(ctx context.Context, id int64) (*schema.StakingPool, error) {
	var pool schema.StakingPool
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&pool).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staking pool: %w", err)
	}
	return &pool, nil
}

// CreateStakingPosition inserts a position
func (s *pgStore) CreateStakingPosition(ctx context.Context, position *schema.StakingPosition) error {
	if err := s.db.WithContext(ctx).Omit("Pool").Create(position).Error; err != nil {
		return fmt.Errorf("failed to create staking position: %w", err)
	}
	return nil
}

// GetStakingPositions retrieves the positions of a wallet with their pools
func (s *pgStore) GetStakingPositions(ctx context.Context, wallet string, activeOnly bool) ([]schema.StakingPosition, error) {
	q := s.db.WithContext(ctx).
		Preload("Pool").
		Where("wallet_address = ?", wallet)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var positions []schema.StakingPosition
	if err := q.Order("start_time DESC, id DESC").Find(&positions).Error; err != nil {
		return nil, fmt.Errorf("failed to get staking positions: %w", err)
	}
	return positions, nil
}

// GetStakingPositionByID retrieves a position with its pool
func (s *pgStore) GetStakingPositionByID(ctx context.Context, id int64) (*schema.StakingPosition, error) {
	var position schema.StakingPosition
	err := s.db.WithContext(ctx).Preload("Pool").Where("id = ?", id).First(&position).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staking position: %w", err)
	}
	return &position, nil
}

// DeactivateStakingPosition marks an active position inactive
func (s *pgStore) DeactivateStakingPosition(ctx context.Context, id int64, expectedVersion int64) error {
	q := s.db.WithContext(ctx).
		Model(&schema.StakingPosition{}).
		Where("id = ? AND is_active = ?", id, true)
	if expectedVersion > 0 {
		q = q.Where("version = ?", expectedVersion)
	}

	res := q.Updates(bumpVersion(map[string]interface{}{"is_active": false}))
	if res.Error != nil {
		return fmt.Errorf("failed to deactivate staking position: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleWrite
	}
	return nil
}

// ReactivateStakingPosition marks an inactive position active again if its version still matches
func (s *pgStore) ReactivateStakingPosition(ctx context.Context, id int64, expectedVersion int64) error {
	res := s.db.WithContext(ctx).
		Model(&schema.StakingPosition{}).
		Where("id = ? AND is_active = ? AND version = ?", id, false, expectedVersion).
		Updates(bumpVersion(map[string]interface{}{"is_active": true}))
	if res.Error != nil {
		return fmt.Errorf("failed to reactivate staking position: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleWrite
	}
	return nil
}

// AdvanceClaimCheckpoint moves the claim checkpoint of an active position forward
func (s *pgStore) AdvanceClaimCheckpoint(ctx context.Context, input AdvanceClaimInput) error {
	q := s.db.WithContext(ctx).
		Model(&schema.StakingPosition{}).
		Where("id = ? AND is_active = ? AND last_claim_time < ?", input.PositionID, true, input.ClaimedAt)
	if input.ExpectedVersion > 0 {
		q = q.Where("version = ?", input.ExpectedVersion)
	}

	res := q.Updates(bumpVersion(map[string]interface{}{"last_claim_time": input.ClaimedAt}))
	if res.Error != nil {
		return fmt.Errorf("failed to advance claim checkpoint: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleWrite
	}
	return nil
}

// RestoreClaimCheckpoint moves a claim checkpoint still at reservedAt back to previous
func (s *pgStore) RestoreClaimCheckpoint(ctx context.Context, id int64, reservedAt time.Time, previous time.Time) error {
	res := s.db.WithContext(ctx).
		Model(&schema.StakingPosition{}).
		Where("id = ? AND last_claim_time = ?", id, reservedAt).
		Updates(bumpVersion(map[string]interface{}{"last_claim_time": previous}))
	if res.Error != nil {
		return fmt.Errorf("failed to restore claim checkpoint: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleWrite
	}
	return nil
}

// =============================================================================
// Packs
// =============================================================================

// GetPackTypes retrieves pack types, optionally filtered by asset type
func (s *pgStore) GetPackTypes(ctx context.Context, assetType domain.AssetType) ([]schema.PackType, error) {
	q := s.db.WithContext(ctx)
	if assetType != "" {
		q = q.Where("asset_type = ?", assetType)
	}

	var types []schema.PackType
	if err := q.Order("price ASC, id ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to get pack types: %w", err)
	}
	return types, nil
}

// GetPackTypeByKey retrieves a pack type by key
func (s *pgStore) GetPackTypeByKey(ctx context.Context, key string) (*schema.PackType, error) {
	var packType schema.PackType
	err := s.db.WithContext(ctx).Where("pack_key = ?", key).First(&packType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pack type: %w", err)
	}
	return &packType, nil
}

// CreatePack inserts a pack
func (s *pgStore) CreatePack(ctx context.Context, pack *schema.Pack) error {
	if err := s.db.WithContext(ctx).Omit("PackType").Create(pack).Error; err != nil {
		return fmt.Errorf("failed to create pack: %w", err)
	}
	return nil
}

// GetPacksByOwner retrieves the unopened packs of a wallet with their types
func (s *pgStore) GetPacksByOwner(ctx context.Context, wallet string, assetType domain.AssetType) ([]schema.Pack, error) {
	db := s.db.WithContext(ctx)
	q := db.Preload("PackType").
		Where("owner_wallet = ? AND opened = ?", wallet, false)
	if assetType != "" {
		q = q.Where("pack_type_id IN (?)", db.Model(&schema.PackType{}).Select("id").Where("asset_type = ?", assetType))
	}

	var packs []schema.Pack
	if err := q.Order("created_at DESC, id DESC").Find(&packs).Error; err != nil {
		return nil, fmt.Errorf("failed to get packs: %w", err)
	}
	return packs, nil
}

// GetPackByID retrieves a pack with its type
func (s *pgStore) GetPackByID(ctx context.Context, id int64) (*schema.Pack, error) {
	var pack schema.Pack
	err := s.db.WithContext(ctx).Preload("PackType").Where("id = ?", id).First(&pack).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pack: %w", err)
	}
	return &pack, nil
}

// OpenPack inserts the pack contents and marks the pack opened in one transaction
func (s *pgStore) OpenPack(ctx context.Context, input OpenPackInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pack schema.Pack
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", input.PackID).First(&pack).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("pack", input.PackID)
			}
			return fmt.Errorf("failed to lock pack: %w", err)
		}
		if pack.OwnerWallet != input.OwnerWallet {
			return domain.NewNotFoundError("pack", input.PackID)
		}
		if pack.Opened {
			return domain.ErrPackAlreadyOpened
		}

		if len(input.Heroes) > 0 {
			if err := tx.Create(&input.Heroes).Error; err != nil {
				return fmt.Errorf("failed to create heroes: %w", err)
			}
		}
		if len(input.Farmers) > 0 {
			if err := tx.Create(&input.Farmers).Error; err != nil {
				return fmt.Errorf("failed to create farmers: %w", err)
			}
		}

		err = tx.Model(&schema.Pack{}).
			Where("id = ?", pack.ID).
			Updates(map[string]interface{}{"opened": true, "opened_at": input.OpenedAt}).Error
		if err != nil {
			return fmt.Errorf("failed to mark pack opened: %w", err)
		}

		return nil
	})
}

// =============================================================================
// Transactions
// =============================================================================

// CreateTransaction appends a transaction record
func (s *pgStore) CreateTransaction(ctx context.Context, tx *schema.Transaction) error {
	if err := s.db.WithContext(ctx).Omit("Confirmation").Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionByID retrieves a record with its latest confirmation
func (s *pgStore) GetTransactionByID(ctx context.Context, id string) (*schema.Transaction, error) {
	var tx schema.Transaction
	err := s.db.WithContext(ctx).Preload("Confirmation").Where("id = ?", id).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// ListTransactions retrieves the records of a wallet newest first, with the total count
func (s *pgStore) ListTransactions(ctx context.Context, filter TransactionFilter) ([]schema.Transaction, int64, error) {
	q := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("(from_wallet = ? OR to_wallet = ?)", filter.Wallet, filter.Wallet)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	q = q.Preload("Confirmation").Order("timestamp DESC, id DESC").Offset(filter.Offset)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var txs []schema.Transaction
	if err := q.Find(&txs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return txs, total, nil
}

// UpsertTransactionConfirmation creates or updates the confirmation of a record
func (s *pgStore) UpsertTransactionConfirmation(ctx context.Context, confirmation *schema.TransactionConfirmation) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"hash", "block", "confirmations", "status", "observed_at"}),
		}).
		Create(confirmation).Error
	if err != nil {
		return fmt.Errorf("failed to upsert transaction confirmation: %w", err)
	}
	return nil
}

// =============================================================================
// Inconsistency journal
// =============================================================================

// CreateInconsistency journals a partial success condition
func (s *pgStore) CreateInconsistency(ctx context.Context, inconsistency *schema.Inconsistency) error {
	if err := s.db.WithContext(ctx).Create(inconsistency).Error; err != nil {
		return fmt.Errorf("failed to create inconsistency: %w", err)
	}
	return nil
}

// GetOpenInconsistencies retrieves open entries oldest first
func (s *pgStore) GetOpenInconsistencies(ctx context.Context, limit int) ([]schema.Inconsistency, error) {
	q := s.db.WithContext(ctx).
		Where("status = ?", domain.InconsistencyStatusOpen).
		Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var entries []schema.Inconsistency
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get open inconsistencies: %w", err)
	}
	return entries, nil
}

// MarkInconsistency records a reconciliation attempt and its resulting status
func (s *pgStore) MarkInconsistency(ctx context.Context, input MarkInconsistencyInput) error {
	fields := map[string]interface{}{
		"status":   input.Status,
		"error":    input.Error,
		"attempts": gorm.Expr("attempts + 1"),
	}
	if input.Status == domain.InconsistencyStatusResolved {
		fields["resolved_at"] = input.At
	}

	res := s.db.WithContext(ctx).
		Model(&schema.Inconsistency{}).
		Where("id = ?", input.ID).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to mark inconsistency: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("inconsistency", input.ID)
	}
	return nil
}
