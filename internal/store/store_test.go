package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/store/schema"
	"github.com/feral-file/ff-economy/internal/types"
)

const (
	testWalletA = "0xaaaa000000000000000000000000000000000001"
	testWalletB = "0xbbbb000000000000000000000000000000000002"
)

// =============================================================================
// Test Data Helpers
// =============================================================================

func buildTestFarmer(owner string, level int) *schema.Farmer {
	return &schema.Farmer{
		FarmerKey:        "agribot-3000",
		Name:             "AgriBot 3000",
		Rarity:           domain.RarityCommon,
		OwnerWallet:      owner,
		Level:            level,
		BaseYieldPerHour: decimal.RequireFromString("1.2"),
		LastHarvested:    time.Now().Add(-2 * time.Hour).UTC(),
		EquippedItems:    datatypes.JSONSlice[int64]{},
		Status:           domain.AssetStatusActive,
		Version:          1,
	}
}

func buildTestHero(owner string) *schema.Hero {
	return &schema.Hero{
		HeroKey:       "dragon-knight",
		Name:          "Dragon Knight",
		Rarity:        domain.RarityEpic,
		HeroType:      "warrior",
		OwnerWallet:   owner,
		Level:         1,
		BasePower:     decimal.NewFromInt(1480),
		Power:         decimal.NewFromInt(1480),
		EquippedItems: datatypes.JSONSlice[int64]{},
		Status:        domain.AssetStatusActive,
		Version:       1,
	}
}

func buildTestItem(owner string) *schema.Item {
	return &schema.Item{
		Name:        "Flame Sword",
		OwnerWallet: owner,
		Rarity:      domain.RarityRare,
		Bonus:       decimal.NewFromInt(10),
		BaseValue:   decimal.NewFromInt(40),
		Category:    "Weapon",
		Status:      domain.AssetStatusActive,
		Version:     1,
	}
}

func buildTestTransaction(from, to *string, txType domain.TransactionType, category domain.TransactionCategory, amount string, ts time.Time) *schema.Transaction {
	return &schema.Transaction{
		ID:         ulid.Make().String(),
		Type:       txType,
		Item:       "Test " + string(txType),
		Amount:     decimal.RequireFromString(amount),
		Token:      domain.TOKEN_SYMBOL,
		FromWallet: from,
		ToWallet:   to,
		Status:     domain.TransactionStatusConfirmed,
		Category:   category,
		Fee:        decimal.Zero,
		Timestamp:  ts,
	}
}

func createListing(t *testing.T, store Store, assetType domain.AssetType, itemID int64, seller string, price string) *schema.MarketplaceListing {
	t.Helper()
	listing, err := store.CreateListing(context.Background(), CreateListingInput{
		ID:           uuid.NewString(),
		AssetType:    assetType,
		ItemID:       itemID,
		ItemName:     "Listed asset",
		Category:     domain.DEFAULT_CATEGORY,
		Price:        decimal.RequireFromString(price),
		SellerWallet: seller,
		ListedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
	return listing
}

// =============================================================================
// Test: Farmers
// =============================================================================

func testFarmers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and read back farmers by owner", func(t *testing.T) {
		f1 := buildTestFarmer(testWalletA, 1)
		f2 := buildTestFarmer(testWalletA, 2)
		require.NoError(t, store.CreateFarmer(ctx, f1))
		require.NoError(t, store.CreateFarmer(ctx, f2))
		require.NoError(t, store.CreateFarmer(ctx, buildTestFarmer(testWalletB, 1)))

		farmers, err := store.GetFarmersByOwner(ctx, testWalletA)
		require.NoError(t, err)
		require.Len(t, farmers, 2)
		assert.Equal(t, f1.ID, farmers[0].ID)
		assert.Equal(t, f2.ID, farmers[1].ID)
		assert.True(t, decimal.RequireFromString("1.2").Equal(farmers[0].BaseYieldPerHour))

		got, err := store.GetFarmerByID(ctx, f2.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2, got.Level)
	})

	t.Run("missing farmer returns nil", func(t *testing.T) {
		got, err := store.GetFarmerByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("level update is compare-and-swap on version", func(t *testing.T) {
		f := buildTestFarmer(testWalletA, 1)
		require.NoError(t, store.CreateFarmer(ctx, f))

		updated, err := store.UpdateFarmerLevel(ctx, f.ID, f.Version, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Level)
		assert.Equal(t, f.Version+1, updated.Version)

		_, err = store.UpdateFarmerLevel(ctx, f.ID, f.Version, 3)
		assert.ErrorIs(t, err, domain.ErrStaleWrite)
	})

	t.Run("harvest checkpoints skip stale versions and never move backwards", func(t *testing.T) {
		f1 := buildTestFarmer(testWalletA, 1)
		f2 := buildTestFarmer(testWalletA, 1)
		require.NoError(t, store.CreateFarmer(ctx, f1))
		require.NoError(t, store.CreateFarmer(ctx, f2))

		harvestedAt := time.Now().UTC().Truncate(time.Microsecond)
		updated, err := store.AdvanceHarvestCheckpoints(ctx, testWalletA, []FarmerCheckpoint{
			{ID: f1.ID, Version: f1.Version},
			{ID: f2.ID, Version: f2.Version + 10},
		}, harvestedAt)
		require.NoError(t, err)
		assert.Equal(t, []int64{f1.ID}, updated)

		got, err := store.GetFarmerByID(ctx, f1.ID)
		require.NoError(t, err)
		assert.True(t, harvestedAt.Equal(got.LastHarvested))

		// Same checkpoint again is a no-op
		updated, err = store.AdvanceHarvestCheckpoints(ctx, testWalletA, []FarmerCheckpoint{{ID: f1.ID}}, harvestedAt)
		require.NoError(t, err)
		assert.Empty(t, updated)
	})

	t.Run("restored harvest checkpoints go back only while still at the reservation", func(t *testing.T) {
		f1 := buildTestFarmer(testWalletA, 1)
		f2 := buildTestFarmer(testWalletA, 1)
		previous := time.Now().Add(-2 * time.Hour).UTC().Truncate(time.Microsecond)
		f1.LastHarvested = previous
		f2.LastHarvested = previous
		require.NoError(t, store.CreateFarmer(ctx, f1))
		require.NoError(t, store.CreateFarmer(ctx, f2))

		reservedAt := time.Now().UTC().Truncate(time.Microsecond)
		updated, err := store.AdvanceHarvestCheckpoints(ctx, testWalletA, []FarmerCheckpoint{{ID: f1.ID}, {ID: f2.ID}}, reservedAt)
		require.NoError(t, err)
		require.ElementsMatch(t, []int64{f1.ID, f2.ID}, updated)

		// f2 is harvested again before the restore runs
		later := reservedAt.Add(time.Minute)
		_, err = store.AdvanceHarvestCheckpoints(ctx, testWalletA, []FarmerCheckpoint{{ID: f2.ID}}, later)
		require.NoError(t, err)

		require.NoError(t, store.RestoreHarvestCheckpoints(ctx, testWalletA, reservedAt, []domain.CheckpointRestore{
			{ID: f1.ID, Previous: previous},
			{ID: f2.ID, Previous: previous},
		}))

		got, err := store.GetFarmerByID(ctx, f1.ID)
		require.NoError(t, err)
		assert.True(t, previous.Equal(got.LastHarvested))

		got, err = store.GetFarmerByID(ctx, f2.ID)
		require.NoError(t, err)
		assert.True(t, later.Equal(got.LastHarvested))

		// Another wallet cannot restore these farmers
		require.NoError(t, store.RestoreHarvestCheckpoints(ctx, testWalletB, later, []domain.CheckpointRestore{{ID: f2.ID, Previous: previous}}))
		got, err = store.GetFarmerByID(ctx, f2.ID)
		require.NoError(t, err)
		assert.True(t, later.Equal(got.LastHarvested))
	})

	t.Run("empty checkpoint list", func(t *testing.T) {
		updated, err := store.AdvanceHarvestCheckpoints(ctx, testWalletA, nil, time.Now())
		require.NoError(t, err)
		assert.Empty(t, updated)
		require.NoError(t, store.RestoreHarvestCheckpoints(ctx, testWalletA, time.Now(), nil))
	})
}

// =============================================================================
// Test: MergeFarmers
// =============================================================================

func testMergeFarmers(t *testing.T, store Store) {
	ctx := context.Background()
	wallet := "0xmerge0000000000000000000000000000000001"

	t.Run("consumes the two oldest same level farmers", func(t *testing.T) {
		var farmers []*schema.Farmer
		for i := 0; i < 4; i++ {
			f := buildTestFarmer(wallet, 1)
			require.NoError(t, store.CreateFarmer(ctx, f))
			farmers = append(farmers, f)
		}
		target := farmers[3]

		result, err := store.MergeFarmers(ctx, MergeFarmersInput{
			FarmerID:      target.ID,
			OwnerWallet:   wallet,
			MaxLevel:      domain.MAX_LEVEL,
			MaterialCount: domain.MERGE_MATERIAL_COUNT,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.PreviousLevel)
		assert.Equal(t, 2, result.Farmer.Level)
		assert.Equal(t, target.ID, result.Farmer.ID)
		assert.Equal(t, []int64{farmers[0].ID, farmers[1].ID}, result.ConsumedIDs)

		remaining, err := store.GetFarmersByOwner(ctx, wallet)
		require.NoError(t, err)
		require.Len(t, remaining, 2)
		assert.Equal(t, farmers[2].ID, remaining[0].ID)
		assert.Equal(t, target.ID, remaining[1].ID)
	})

	t.Run("insufficient material reports how many are missing", func(t *testing.T) {
		lonely := "0xmerge0000000000000000000000000000000002"
		target := buildTestFarmer(lonely, 1)
		require.NoError(t, store.CreateFarmer(ctx, target))
		require.NoError(t, store.CreateFarmer(ctx, buildTestFarmer(lonely, 1)))
		require.NoError(t, store.CreateFarmer(ctx, buildTestFarmer(lonely, 2)))

		_, err := store.MergeFarmers(ctx, MergeFarmersInput{
			FarmerID:      target.ID,
			OwnerWallet:   lonely,
			MaxLevel:      domain.MAX_LEVEL,
			MaterialCount: domain.MERGE_MATERIAL_COUNT,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientMergeMaterial)
		assert.Contains(t, err.Error(), "need 1 more")

		farmers, err := store.GetFarmersByOwner(ctx, lonely)
		require.NoError(t, err)
		assert.Len(t, farmers, 3)
	})

	t.Run("max level target cannot merge", func(t *testing.T) {
		capped := "0xmerge0000000000000000000000000000000003"
		target := buildTestFarmer(capped, domain.MAX_LEVEL)
		require.NoError(t, store.CreateFarmer(ctx, target))

		_, err := store.MergeFarmers(ctx, MergeFarmersInput{
			FarmerID:      target.ID,
			OwnerWallet:   capped,
			MaxLevel:      domain.MAX_LEVEL,
			MaterialCount: domain.MERGE_MATERIAL_COUNT,
		})
		assert.ErrorIs(t, err, domain.ErrMaxLevelReached)
	})

	t.Run("foreign farmer is not found", func(t *testing.T) {
		f := buildTestFarmer(testWalletB, 1)
		require.NoError(t, store.CreateFarmer(ctx, f))

		_, err := store.MergeFarmers(ctx, MergeFarmersInput{
			FarmerID:      f.ID,
			OwnerWallet:   wallet,
			MaxLevel:      domain.MAX_LEVEL,
			MaterialCount: domain.MERGE_MATERIAL_COUNT,
		})
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

// =============================================================================
// Test: Heroes & equipment
// =============================================================================

func testEquipment(t *testing.T, store Store) {
	ctx := context.Background()
	bonus := decimal.NewFromInt(20)

	t.Run("equip and unequip keep power consistent", func(t *testing.T) {
		hero := buildTestHero(testWalletA)
		item := buildTestItem(testWalletA)
		require.NoError(t, store.CreateHero(ctx, hero))
		require.NoError(t, store.CreateItem(ctx, item))

		equipped, err := store.EquipItem(ctx, EquipItemInput{
			HeroID: hero.ID, ItemID: item.ID, OwnerWallet: testWalletA, HeroVersion: hero.Version, Bonus: bonus,
		})
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1500).Equal(equipped.Power))
		assert.Equal(t, []int64{item.ID}, []int64(equipped.EquippedItems))

		gotItem, err := store.GetItemByID(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, gotItem.EquippedTo)
		assert.Equal(t, hero.ID, *gotItem.EquippedTo)

		_, err = store.EquipItem(ctx, EquipItemInput{
			HeroID: hero.ID, ItemID: item.ID, OwnerWallet: testWalletA, HeroVersion: equipped.Version, Bonus: bonus,
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyEquipped)

		unequipped, err := store.UnequipItem(ctx, EquipItemInput{
			HeroID: hero.ID, ItemID: item.ID, OwnerWallet: testWalletA, HeroVersion: equipped.Version, Bonus: bonus,
		})
		require.NoError(t, err)
		assert.True(t, hero.Power.Equal(unequipped.Power))
		assert.Empty(t, unequipped.EquippedItems)

		_, err = store.UnequipItem(ctx, EquipItemInput{
			HeroID: hero.ID, ItemID: item.ID, OwnerWallet: testWalletA, HeroVersion: unequipped.Version, Bonus: bonus,
		})
		assert.ErrorIs(t, err, domain.ErrNotEquipped)
	})

	t.Run("item equipped to another hero", func(t *testing.T) {
		h1 := buildTestHero(testWalletA)
		h2 := buildTestHero(testWalletA)
		item := buildTestItem(testWalletA)
		require.NoError(t, store.CreateHero(ctx, h1))
		require.NoError(t, store.CreateHero(ctx, h2))
		require.NoError(t, store.CreateItem(ctx, item))

		_, err := store.EquipItem(ctx, EquipItemInput{
			HeroID: h1.ID, ItemID: item.ID, OwnerWallet: testWalletA, HeroVersion: h1.Version, Bonus: bonus,
		})
		require.NoError(t, err)

		_, err = store.EquipItem(ctx, EquipItemInput{
			HeroID: h2.ID, ItemID: item.ID, OwnerWallet: testWalletA, HeroVersion: h2.Version, Bonus: bonus,
		})
		assert.ErrorIs(t, err, domain.ErrItemEquippedElsewhere)
	})

	t.Run("stale hero version is rejected", func(t *testing.T) {
		hero := buildTestHero(testWalletA)
		item := buildTestItem(testWalletA)
		require.NoError(t, store.CreateHero(ctx, hero))
		require.NoError(t, store.CreateItem(ctx, item))

		_, err := store.EquipItem(ctx, EquipItemInput{
			HeroID: hero.ID, ItemID: item.ID, OwnerWallet: testWalletA, HeroVersion: hero.Version + 1, Bonus: bonus,
		})
		assert.ErrorIs(t, err, domain.ErrStaleWrite)
	})

	t.Run("item of another wallet is not found", func(t *testing.T) {
		hero := buildTestHero(testWalletA)
		item := buildTestItem(testWalletB)
		require.NoError(t, store.CreateHero(ctx, hero))
		require.NoError(t, store.CreateItem(ctx, item))

		_, err := store.EquipItem(ctx, EquipItemInput{
			HeroID: hero.ID, ItemID: item.ID, OwnerWallet: testWalletA, HeroVersion: hero.Version, Bonus: bonus,
		})
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("hero level update", func(t *testing.T) {
		hero := buildTestHero(testWalletA)
		require.NoError(t, store.CreateHero(ctx, hero))

		updated, err := store.UpdateHeroLevel(ctx, UpdateHeroLevelInput{
			HeroID:          hero.ID,
			ExpectedVersion: hero.Version,
			Level:           2,
			BasePower:       decimal.NewFromInt(1628),
			Power:           decimal.NewFromInt(1628),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Level)
		assert.True(t, decimal.NewFromInt(1628).Equal(updated.BasePower))

		items, err := store.GetItemsByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

// =============================================================================
// Test: Asset locks
// =============================================================================

func testAssetLocks(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("liquidation lock and delete", func(t *testing.T) {
		item := buildTestItem(testWalletA)
		require.NoError(t, store.CreateItem(ctx, item))

		err := store.DeleteLiquidatingAsset(ctx, domain.AssetTypeItem, item.ID)
		assert.ErrorIs(t, err, domain.ErrStaleWrite)

		require.NoError(t, store.SetAssetStatus(ctx, domain.AssetTypeItem, item.ID, testWalletA, domain.AssetStatusActive, domain.AssetStatusLiquidating))

		err = store.SetAssetStatus(ctx, domain.AssetTypeItem, item.ID, testWalletA, domain.AssetStatusActive, domain.AssetStatusLiquidating)
		assert.ErrorIs(t, err, domain.ErrStaleWrite)

		require.NoError(t, store.DeleteLiquidatingAsset(ctx, domain.AssetTypeItem, item.ID))

		got, err := store.GetItemByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalid asset type", func(t *testing.T) {
		err := store.SetAssetStatus(ctx, domain.AssetType("spaceship"), 1, testWalletA, domain.AssetStatusActive, domain.AssetStatusListed)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

// =============================================================================
// Test: Marketplace
// =============================================================================

func testMarketplace(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("listing locks the asset", func(t *testing.T) {
		farmer := buildTestFarmer(testWalletA, 1)
		require.NoError(t, store.CreateFarmer(ctx, farmer))

		listing := createListing(t, store, domain.AssetTypeFarmer, farmer.ID, testWalletA, "25")
		assert.Equal(t, domain.ListingStatusActive, listing.Status)

		got, err := store.GetFarmerByID(ctx, farmer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.AssetStatusListed, got.Status)

		_, err = store.CreateListing(ctx, CreateListingInput{
			ID:           uuid.NewString(),
			AssetType:    domain.AssetTypeFarmer,
			ItemID:       farmer.ID,
			ItemName:     "again",
			Category:     domain.DEFAULT_CATEGORY,
			Price:        decimal.NewFromInt(30),
			SellerWallet: testWalletA,
			ListedAt:     time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrAssetLocked)
	})

	t.Run("equipped items cannot be listed", func(t *testing.T) {
		hero := buildTestHero(testWalletA)
		item := buildTestItem(testWalletA)
		require.NoError(t, store.CreateHero(ctx, hero))
		require.NoError(t, store.CreateItem(ctx, item))
		_, err := store.EquipItem(ctx, EquipItemInput{
			HeroID: hero.ID, ItemID: item.ID, OwnerWallet: testWalletA, HeroVersion: hero.Version, Bonus: decimal.NewFromInt(20),
		})
		require.NoError(t, err)

		_, err = store.CreateListing(ctx, CreateListingInput{
			ID:           uuid.NewString(),
			AssetType:    domain.AssetTypeItem,
			ItemID:       item.ID,
			ItemName:     item.Name,
			Category:     item.Category,
			Price:        decimal.NewFromInt(5),
			SellerWallet: testWalletA,
			ListedAt:     time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrAssetLocked)
	})

	t.Run("only the seller may update or cancel", func(t *testing.T) {
		farmer := buildTestFarmer(testWalletA, 1)
		require.NoError(t, store.CreateFarmer(ctx, farmer))
		listing := createListing(t, store, domain.AssetTypeFarmer, farmer.ID, testWalletA, "25")

		_, err := store.UpdateListingPrice(ctx, listing.ID, testWalletB, decimal.NewFromInt(1))
		assert.ErrorIs(t, err, domain.ErrNotSeller)

		updated, err := store.UpdateListingPrice(ctx, listing.ID, testWalletA, decimal.NewFromInt(40))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(40).Equal(updated.Price))

		_, err = store.CancelListing(ctx, listing.ID, testWalletB, time.Now())
		assert.ErrorIs(t, err, domain.ErrNotSeller)

		cancelled, err := store.CancelListing(ctx, listing.ID, testWalletA, time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusCancelled, cancelled.Status)
		assert.NotNil(t, cancelled.CancelledAt)

		got, err := store.GetFarmerByID(ctx, farmer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.AssetStatusActive, got.Status)

		_, err = store.CancelListing(ctx, listing.ID, testWalletA, time.Now())
		assert.ErrorIs(t, err, domain.ErrListingNotActive)
	})

	t.Run("sale transfers the hero and its equipped items", func(t *testing.T) {
		hero := buildTestHero(testWalletA)
		item := buildTestItem(testWalletA)
		require.NoError(t, store.CreateHero(ctx, hero))
		require.NoError(t, store.CreateItem(ctx, item))
		equipped, err := store.EquipItem(ctx, EquipItemInput{
			HeroID: hero.ID, ItemID: item.ID, OwnerWallet: testWalletA, HeroVersion: hero.Version, Bonus: decimal.NewFromInt(20),
		})
		require.NoError(t, err)
		require.NotNil(t, equipped)

		listing := createListing(t, store, domain.AssetTypeHero, hero.ID, testWalletA, "500")

		_, err = store.CompleteSale(ctx, CompleteSaleInput{
			ListingID:   listing.ID,
			BuyerWallet: testWalletB,
			SoldAt:      time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrListingNotActive, "an unreserved listing cannot be sold")

		reserved, err := store.ReserveListing(ctx, listing.ID, testWalletB)
		require.NoError(t, err)

		_, err = store.CompleteSale(ctx, CompleteSaleInput{
			ListingID:       listing.ID,
			ExpectedVersion: reserved.Version + 1,
			BuyerWallet:     testWalletB,
			SoldAt:          time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrStaleWrite)

		_, err = store.CompleteSale(ctx, CompleteSaleInput{
			ListingID:       listing.ID,
			ExpectedVersion: reserved.Version,
			BuyerWallet:     testWalletA,
			SoldAt:          time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrListingNotActive, "only the reserving buyer completes the sale")

		sold, err := store.CompleteSale(ctx, CompleteSaleInput{
			ListingID:       listing.ID,
			ExpectedVersion: reserved.Version,
			BuyerWallet:     testWalletB,
			SoldAt:          time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusSold, sold.Status)
		require.NotNil(t, sold.BuyerWallet)
		assert.Equal(t, testWalletB, *sold.BuyerWallet)

		gotHero, err := store.GetHeroByID(ctx, hero.ID)
		require.NoError(t, err)
		assert.Equal(t, testWalletB, gotHero.OwnerWallet)
		assert.Equal(t, domain.AssetStatusActive, gotHero.Status)

		gotItem, err := store.GetItemByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, testWalletB, gotItem.OwnerWallet)

		_, err = store.CompleteSale(ctx, CompleteSaleInput{
			ListingID:   listing.ID,
			BuyerWallet: testWalletB,
			SoldAt:      time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrListingNotActive)
	})

	t.Run("reserved listing locks out rival buyers and seller edits", func(t *testing.T) {
		farmer := buildTestFarmer(testWalletA, 1)
		require.NoError(t, store.CreateFarmer(ctx, farmer))
		listing := createListing(t, store, domain.AssetTypeFarmer, farmer.ID, testWalletA, "75")

		_, err := store.ReserveListing(ctx, listing.ID, testWalletA)
		assert.ErrorIs(t, err, domain.ErrSelfTradeForbidden)

		reserved, err := store.ReserveListing(ctx, listing.ID, testWalletB)
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusSettling, reserved.Status)
		assert.Equal(t, listing.Version+1, reserved.Version)
		assert.True(t, decimal.NewFromInt(75).Equal(reserved.Price))

		_, err = store.ReserveListing(ctx, listing.ID, "0xcccc000000000000000000000000000000000003")
		assert.ErrorIs(t, err, domain.ErrListingNotActive)

		_, err = store.UpdateListingPrice(ctx, listing.ID, testWalletA, decimal.NewFromInt(1))
		assert.ErrorIs(t, err, domain.ErrListingNotActive)

		_, err = store.CancelListing(ctx, listing.ID, testWalletA, time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrListingNotActive)

		assert.ErrorIs(t, store.ReleaseListing(ctx, listing.ID, testWalletA), domain.ErrStaleWrite)
		require.NoError(t, store.ReleaseListing(ctx, listing.ID, testWalletB))
		assert.ErrorIs(t, store.ReleaseListing(ctx, listing.ID, testWalletB), domain.ErrStaleWrite)

		got, err := store.GetListingByID(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusActive, got.Status)
		assert.Nil(t, got.BuyerWallet)
		assert.True(t, decimal.NewFromInt(75).Equal(got.Price))

		updated, err := store.UpdateListingPrice(ctx, listing.ID, testWalletA, decimal.NewFromInt(80))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(80).Equal(updated.Price))
	})

	t.Run("filters and stats", func(t *testing.T) {
		seller := "0xstats000000000000000000000000000000001"
		var farmers []*schema.Farmer
		for i := 0; i < 3; i++ {
			f := buildTestFarmer(seller, 1)
			require.NoError(t, store.CreateFarmer(ctx, f))
			farmers = append(farmers, f)
		}
		createListing(t, store, domain.AssetTypeFarmer, farmers[0].ID, seller, "10")
		createListing(t, store, domain.AssetTypeFarmer, farmers[1].ID, seller, "20")
		sold := createListing(t, store, domain.AssetTypeFarmer, farmers[2].ID, seller, "30")
		_, err := store.ReserveListing(ctx, sold.ID, testWalletB)
		require.NoError(t, err)
		_, err = store.CompleteSale(ctx, CompleteSaleInput{ListingID: sold.ID, BuyerWallet: testWalletB, SoldAt: time.Now().UTC()})
		require.NoError(t, err)

		active := domain.ListingStatusActive
		minPrice := decimal.NewFromInt(15)
		listings, total, err := store.GetListings(ctx, ListingFilter{
			Status:       &active,
			SellerWallet: seller,
			MinPrice:     &minPrice,
			Limit:        10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, listings, 1)
		assert.Equal(t, farmers[1].ID, listings[0].ItemID)

		listings, total, err = store.GetListings(ctx, ListingFilter{SellerWallet: seller, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, listings, 1)

		stats, err := store.GetMarketplaceStats(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stats.ActiveListings, int64(2))
		assert.GreaterOrEqual(t, stats.SoldSince, int64(1))
		assert.True(t, stats.TotalVolume.GreaterThanOrEqual(decimal.NewFromInt(30)))
		assert.NotEmpty(t, stats.ActiveByType)
		assert.NotEmpty(t, stats.ActiveByCategory)
	})

	t.Run("missing listing", func(t *testing.T) {
		got, err := store.GetListingByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)

		_, err = store.CancelListing(ctx, uuid.NewString(), testWalletA, time.Now())
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

// =============================================================================
// Test: Staking
// =============================================================================

func testStaking(t *testing.T, store Store) {
	ctx := context.Background()

	pools, err := store.GetStakingPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 4)
	assert.Equal(t, "Flexible", pools[0].Pool.Name)
	for i := 1; i < len(pools); i++ {
		assert.LessOrEqual(t, pools[i-1].Pool.LockPeriodDays, pools[i].Pool.LockPeriodDays)
	}
	pool := pools[1].Pool

	t.Run("position lifecycle", func(t *testing.T) {
		start := time.Now().Add(-48 * time.Hour).UTC().Truncate(time.Microsecond)
		position := &schema.StakingPosition{
			WalletAddress: testWalletA,
			PoolID:        pool.ID,
			Amount:        decimal.NewFromInt(1000),
			StartTime:     start,
			EndTime:       start.Add(time.Duration(pool.LockPeriodDays) * 24 * time.Hour),
			LastClaimTime: start,
			IsActive:      true,
			Version:       1,
		}
		require.NoError(t, store.CreateStakingPosition(ctx, position))

		summaries, err := store.GetStakingPools(ctx)
		require.NoError(t, err)
		for _, s := range summaries {
			if s.Pool.ID == pool.ID {
				assert.True(t, s.TotalStaked.GreaterThanOrEqual(decimal.NewFromInt(1000)))
			}
		}

		got, err := store.GetStakingPositionByID(ctx, position.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Pool)
		assert.Equal(t, pool.Name, got.Pool.Name)

		claimedAt := time.Now().UTC().Truncate(time.Microsecond)
		require.NoError(t, store.AdvanceClaimCheckpoint(ctx, AdvanceClaimInput{
			PositionID:      position.ID,
			ExpectedVersion: got.Version,
			ClaimedAt:       claimedAt,
		}))

		err = store.AdvanceClaimCheckpoint(ctx, AdvanceClaimInput{PositionID: position.ID, ClaimedAt: claimedAt})
		assert.ErrorIs(t, err, domain.ErrStaleWrite)

		assert.ErrorIs(t, store.RestoreClaimCheckpoint(ctx, position.ID, claimedAt.Add(time.Second), start), domain.ErrStaleWrite)
		require.NoError(t, store.RestoreClaimCheckpoint(ctx, position.ID, claimedAt, start))
		got, err = store.GetStakingPositionByID(ctx, position.ID)
		require.NoError(t, err)
		assert.True(t, start.Equal(got.LastClaimTime))

		active, err := store.GetStakingPositions(ctx, testWalletA, true)
		require.NoError(t, err)
		require.NotEmpty(t, active)

		assert.ErrorIs(t, store.DeactivateStakingPosition(ctx, position.ID, got.Version+1), domain.ErrStaleWrite)
		require.NoError(t, store.DeactivateStakingPosition(ctx, position.ID, got.Version))
		assert.ErrorIs(t, store.DeactivateStakingPosition(ctx, position.ID, 0), domain.ErrStaleWrite)

		// Reactivation needs the version written by the deactivation
		assert.ErrorIs(t, store.ReactivateStakingPosition(ctx, position.ID, got.Version), domain.ErrStaleWrite)
		require.NoError(t, store.ReactivateStakingPosition(ctx, position.ID, got.Version+1))
		assert.ErrorIs(t, store.ReactivateStakingPosition(ctx, position.ID, got.Version+2), domain.ErrStaleWrite, "an active position is not reactivated")

		require.NoError(t, store.DeactivateStakingPosition(ctx, position.ID, 0))

		active, err = store.GetStakingPositions(ctx, testWalletA, true)
		require.NoError(t, err)
		for _, p := range active {
			assert.NotEqual(t, position.ID, p.ID)
		}

		all, err := store.GetStakingPositions(ctx, testWalletA, false)
		require.NoError(t, err)
		assert.NotEmpty(t, all)
	})

	t.Run("missing pool returns nil", func(t *testing.T) {
		got, err := store.GetStakingPoolByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: Packs
// =============================================================================

func testPacks(t *testing.T, store Store) {
	ctx := context.Background()

	heroTypes, err := store.GetPackTypes(ctx, domain.AssetTypeHero)
	require.NoError(t, err)
	require.NotEmpty(t, heroTypes)
	for _, pt := range heroTypes {
		assert.Equal(t, domain.AssetTypeHero, pt.AssetType)
	}

	starter, err := store.GetPackTypeByKey(ctx, "starter-hero-pack")
	require.NoError(t, err)
	require.NotNil(t, starter)
	assert.True(t, starter.Price.IsZero())

	missing, err := store.GetPackTypeByKey(ctx, "no-such-pack")
	require.NoError(t, err)
	assert.Nil(t, missing)

	t.Run("open a pack once", func(t *testing.T) {
		pack := &schema.Pack{PackTypeID: starter.ID, PackKey: starter.PackKey, OwnerWallet: testWalletA}
		require.NoError(t, store.CreatePack(ctx, pack))

		owned, err := store.GetPacksByOwner(ctx, testWalletA, domain.AssetTypeHero)
		require.NoError(t, err)
		require.NotEmpty(t, owned)
		require.NotNil(t, owned[0].PackType)

		owned, err = store.GetPacksByOwner(ctx, testWalletA, domain.AssetTypeFarmer)
		require.NoError(t, err)
		assert.Empty(t, owned)

		input := OpenPackInput{
			PackID:      pack.ID,
			OwnerWallet: testWalletA,
			OpenedAt:    time.Now().UTC(),
			Heroes:      []schema.Hero{*buildTestHero(testWalletA), *buildTestHero(testWalletA)},
		}
		require.NoError(t, store.OpenPack(ctx, input))

		heroes, err := store.GetHeroesByOwner(ctx, testWalletA)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(heroes), 2)

		got, err := store.GetPackByID(ctx, pack.ID)
		require.NoError(t, err)
		assert.True(t, got.Opened)
		assert.NotNil(t, got.OpenedAt)

		err = store.OpenPack(ctx, input)
		assert.ErrorIs(t, err, domain.ErrPackAlreadyOpened)
	})

	t.Run("pack of another wallet is not found", func(t *testing.T) {
		pack := &schema.Pack{PackTypeID: starter.ID, PackKey: starter.PackKey, OwnerWallet: testWalletB}
		require.NoError(t, store.CreatePack(ctx, pack))

		err := store.OpenPack(ctx, OpenPackInput{PackID: pack.ID, OwnerWallet: testWalletA, OpenedAt: time.Now()})
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

// =============================================================================
// Test: Transactions
// =============================================================================

func testTransactions(t *testing.T, store Store) {
	ctx := context.Background()
	wallet := "0xtx00000000000000000000000000000000000001"
	now := time.Now().UTC().Truncate(time.Microsecond)

	buy := buildTestTransaction(types.StringPtr(wallet), nil, domain.TransactionTypePurchase, domain.CategoryMarketplace, "-25", now.Add(-2*time.Minute))
	buy.Hash = types.StringPtr("0xhash1")
	details, err := json.Marshal(map[string]interface{}{"listingId": "l-1"})
	require.NoError(t, err)
	buy.Details = datatypes.JSON(details)
	stake := buildTestTransaction(types.StringPtr(wallet), nil, domain.TransactionTypeStaking, domain.CategoryStaking, "-100", now.Add(-time.Minute))
	reward := buildTestTransaction(nil, types.StringPtr(wallet), domain.TransactionTypeStakingReward, domain.CategoryStaking, "3.5", now)
	for _, tx := range []*schema.Transaction{buy, stake, reward} {
		require.NoError(t, store.CreateTransaction(ctx, tx))
	}

	t.Run("list newest first with filters", func(t *testing.T) {
		txs, total, err := store.ListTransactions(ctx, TransactionFilter{Wallet: wallet, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, txs, 3)
		assert.Equal(t, reward.ID, txs[0].ID)
		assert.Equal(t, buy.ID, txs[2].ID)

		txs, total, err = store.ListTransactions(ctx, TransactionFilter{Wallet: wallet, Category: string(domain.CategoryStaking), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, txs, 2)

		txs, total, err = store.ListTransactions(ctx, TransactionFilter{Wallet: wallet, Type: string(domain.TransactionTypeStakingReward), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, reward.ID, txs[0].ID)

		txs, total, err = store.ListTransactions(ctx, TransactionFilter{Wallet: wallet, Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, txs, 1)
		assert.Equal(t, stake.ID, txs[0].ID)
	})

	t.Run("confirmation upsert", func(t *testing.T) {
		require.NoError(t, store.UpsertTransactionConfirmation(ctx, &schema.TransactionConfirmation{
			TransactionID: buy.ID,
			Hash:          *buy.Hash,
			Status:        domain.TransactionStatusPending,
			ObservedAt:    now,
		}))

		block := uint64(120)
		require.NoError(t, store.UpsertTransactionConfirmation(ctx, &schema.TransactionConfirmation{
			TransactionID: buy.ID,
			Hash:          *buy.Hash,
			Block:         &block,
			Confirmations: 3,
			Status:        domain.TransactionStatusConfirmed,
			ObservedAt:    now.Add(time.Second),
		}))

		got, err := store.GetTransactionByID(ctx, buy.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.Confirmation)
		assert.Equal(t, uint64(3), got.Confirmation.Confirmations)
		assert.Equal(t, domain.TransactionStatusConfirmed, got.Confirmation.Status)
		assert.JSONEq(t, `{"listingId":"l-1"}`, string(got.Details))
	})

	t.Run("missing transaction returns nil", func(t *testing.T) {
		got, err := store.GetTransactionByID(ctx, ulid.Make().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: Inconsistency journal
// =============================================================================

func testInconsistencies(t *testing.T, store Store) {
	ctx := context.Background()

	first := &schema.Inconsistency{
		Kind:          domain.InconsistencyTransactionRecord,
		WalletAddress: testWalletA,
		Reference:     "0xref1",
		Payload:       datatypes.JSON(`{"type":"Purchase"}`),
		Error:         "insert failed",
		Status:        domain.InconsistencyStatusOpen,
	}
	second := &schema.Inconsistency{
		Kind:          domain.InconsistencySellerPayout,
		WalletAddress: testWalletB,
		Reference:     "listing-1",
		Status:        domain.InconsistencyStatusOpen,
	}
	require.NoError(t, store.CreateInconsistency(ctx, first))
	require.NoError(t, store.CreateInconsistency(ctx, second))

	open, err := store.GetOpenInconsistencies(ctx, 100)
	require.NoError(t, err)
	ids := make([]int64, 0, len(open))
	for _, o := range open {
		ids = append(ids, o.ID)
	}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)

	require.NoError(t, store.MarkInconsistency(ctx, MarkInconsistencyInput{
		ID:     first.ID,
		Status: domain.InconsistencyStatusResolved,
		At:     time.Now().UTC(),
	}))
	require.NoError(t, store.MarkInconsistency(ctx, MarkInconsistencyInput{
		ID:     second.ID,
		Status: domain.InconsistencyStatusManual,
		Error:  "requires operator",
		At:     time.Now().UTC(),
	}))

	open, err = store.GetOpenInconsistencies(ctx, 100)
	require.NoError(t, err)
	for _, o := range open {
		assert.NotEqual(t, first.ID, o.ID)
		assert.NotEqual(t, second.ID, o.ID)
	}

	err = store.MarkInconsistency(ctx, MarkInconsistencyInput{ID: 999999, Status: domain.InconsistencyStatusResolved})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

// RunStoreTests runs all store tests against the given store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Farmers", testFarmers},
		{"MergeFarmers", testMergeFarmers},
		{"Equipment", testEquipment},
		{"AssetLocks", testAssetLocks},
		{"Marketplace", testMarketplace},
		{"Staking", testStaking},
		{"Packs", testPacks},
		{"Transactions", testTransactions},
		{"Inconsistencies", testInconsistencies},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
