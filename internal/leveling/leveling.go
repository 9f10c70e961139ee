// Package leveling levels up, merges and equips heroes and farmers.
package leveling

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/accrual"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
	"github.com/feral-file/ff-economy/internal/types"
)

// Config holds the leveling engine configuration
type Config struct {
	// ChargeLevelUpCost transfers the level up cost to the treasury before the level changes.
	// When false the cost is only reported and recorded.
	ChargeLevelUpCost bool
}

// FarmerLevelUpResult is the outcome of a farmer level up
type FarmerLevelUpResult struct {
	domain.Partial
	Farmer        *schema.Farmer      `json:"farmer"`
	PreviousLevel int                 `json:"previousLevel"`
	NewLevel      int                 `json:"newLevel"`
	Cost          decimal.Decimal     `json:"cost"`
	YieldPerHour  decimal.Decimal     `json:"yieldPerHour"`
	Hash          string              `json:"hash,omitempty"`
	Transaction   *schema.Transaction `json:"transaction,omitempty"`
}

// HeroLevelUpResult is the outcome of a hero level up
type HeroLevelUpResult struct {
	domain.Partial
	Hero          *schema.Hero        `json:"hero"`
	PreviousLevel int                 `json:"previousLevel"`
	NewLevel      int                 `json:"newLevel"`
	Cost          decimal.Decimal     `json:"cost"`
	Hash          string              `json:"hash,omitempty"`
	Transaction   *schema.Transaction `json:"transaction,omitempty"`
}

// MergeResult is the outcome of a farmer merge
type MergeResult struct {
	domain.Partial
	Farmer        *schema.Farmer      `json:"farmer"`
	PreviousLevel int                 `json:"previousLevel"`
	NewLevel      int                 `json:"newLevel"`
	ConsumedIDs   []int64             `json:"consumedFarmerIds"`
	YieldPerHour  decimal.Decimal     `json:"yieldPerHour"`
	Transaction   *schema.Transaction `json:"transaction,omitempty"`
}

// EquipResult is the outcome of an equip or unequip
type EquipResult struct {
	Hero   *schema.Hero    `json:"hero"`
	ItemID int64           `json:"itemId"`
	Bonus  decimal.Decimal `json:"bonus"`
}

// Engine levels up, merges and equips assets
//
//go:generate mockgen -source=leveling.go -destination=../mocks/leveling.go -package=mocks -mock_names=Engine=MockLevelingEngine
type Engine interface {
	// LevelUpFarmer raises a farmer one level
	LevelUpFarmer(ctx context.Context, wallet string, farmerID int64) (*FarmerLevelUpResult, error)

	// LevelUpHero raises a hero one level and recomputes its power
	LevelUpHero(ctx context.Context, wallet string, heroID int64) (*HeroLevelUpResult, error)

	// MergeLevelUp consumes two other farmers of the same level to raise a farmer one level
	MergeLevelUp(ctx context.Context, wallet string, farmerID int64) (*MergeResult, error)

	// EquipItem attaches an item to a hero
	EquipItem(ctx context.Context, wallet string, heroID, itemID int64) (*EquipResult, error)

	// UnequipItem detaches an item from a hero
	UnequipItem(ctx context.Context, wallet string, heroID, itemID int64) (*EquipResult, error)
}

type engine struct {
	cfg      Config
	store    store.Store
	ledger   ledger.Ledger
	recorder recorder.Recorder
}

// NewEngine creates a leveling engine
func NewEngine(cfg Config, st store.Store, l ledger.Ledger, rec recorder.Recorder) Engine {
	return &engine{
		cfg:      cfg,
		store:    st,
		ledger:   l,
		recorder: rec,
	}
}

// checkLevelable validates the lock state and level of an asset before a level up
func checkLevelable(status domain.AssetStatus, level int) error {
	if status != domain.AssetStatusActive {
		return domain.ErrAssetLocked
	}
	if level >= domain.MAX_LEVEL {
		return domain.ErrMaxLevelReached
	}
	return nil
}

// charge moves the level up cost to the treasury when charging is enabled.
// Returns the ledger reference of the payment, if any.
func (e *engine) charge(ctx context.Context, wallet string, cost decimal.Decimal) (string, error) {
	if !e.cfg.ChargeLevelUpCost {
		return "", nil
	}

	balance, err := e.ledger.GetBalance(ctx, wallet)
	if err != nil {
		return "", err
	}
	if balance.LessThan(cost) {
		return "", domain.ErrInsufficientBalance.WithMessage("insufficient balance: need %s %s, have %s", cost, domain.TOKEN_SYMBOL, balance)
	}

	res := e.ledger.Transfer(ctx, wallet, e.ledger.TreasuryAddress(), cost)
	if !res.Success {
		return "", res.Err
	}
	return res.Reference, nil
}

// journalCharge reports a level up payment that was taken without the level change
func (e *engine) journalCharge(ctx context.Context, wallet string, assetType domain.AssetType, id int64, cost decimal.Decimal, hash string, cause error) {
	if !e.cfg.ChargeLevelUpCost {
		return
	}
	e.recorder.ReportInconsistency(ctx, domain.InconsistencyLevelUpCharge, wallet, hash, domain.LevelUpChargePayload{
		Wallet:    wallet,
		AssetType: assetType,
		AssetID:   id,
		Cost:      cost.String(),
		Hash:      hash,
	}, cause)
}

// LevelUpFarmer raises a farmer one level
func (e *engine) LevelUpFarmer(ctx context.Context, wallet string, farmerID int64) (*FarmerLevelUpResult, error) {
	farmer, err := e.store.GetFarmerByID(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get farmer: %w", err)
	}
	if farmer == nil || !types.SameWallet(farmer.OwnerWallet, wallet) {
		return nil, domain.NewNotFoundError("farmer", farmerID)
	}
	if err := checkLevelable(farmer.Status, farmer.Level); err != nil {
		return nil, err
	}

	cost := LevelUpCost(farmer.Level)
	hash, err := e.charge(ctx, wallet, cost)
	if err != nil {
		return nil, err
	}

	updated, err := e.store.UpdateFarmerLevel(ctx, farmer.ID, farmer.Version, farmer.Level+1)
	if err != nil {
		e.journalCharge(ctx, wallet, domain.AssetTypeFarmer, farmer.ID, cost, hash, err)
		return nil, err
	}

	result := &FarmerLevelUpResult{
		Farmer:        updated,
		PreviousLevel: farmer.Level,
		NewLevel:      updated.Level,
		Cost:          cost,
		YieldPerHour:  accrual.FarmerYield(updated.BaseYieldPerHour, updated.Level),
		Hash:          hash,
	}

	tx, err := e.recorder.RecordLevelUp(ctx, wallet, farmer.Name, domain.CategoryFarming, cost, hash, recorder.Details{
		"farmerId":      farmer.ID,
		"previousLevel": farmer.Level,
		"newLevel":      updated.Level,
		"yieldPerHour":  result.YieldPerHour.String(),
	})
	if err != nil {
		result.WarnErr("failed to record level up", err)
	}
	result.Transaction = tx

	logger.InfoCtx(ctx, "Farmer leveled up",
		zap.String("wallet", wallet),
		zap.Int64("farmerID", farmer.ID),
		zap.Int("level", updated.Level))

	return result, nil
}

// LevelUpHero raises a hero one level. Base power grows by 10% and the equipped item
// bonuses are recomputed at the new level.
func (e *engine) LevelUpHero(ctx context.Context, wallet string, heroID int64) (*HeroLevelUpResult, error) {
	hero, err := e.store.GetHeroByID(ctx, heroID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hero: %w", err)
	}
	if hero == nil || !types.SameWallet(hero.OwnerWallet, wallet) {
		return nil, domain.NewNotFoundError("hero", heroID)
	}
	if err := checkLevelable(hero.Status, hero.Level); err != nil {
		return nil, err
	}

	var items []schema.Item
	if len(hero.EquippedItems) > 0 {
		items, err = e.store.GetItemsByIDs(ctx, hero.EquippedItems)
		if err != nil {
			return nil, fmt.Errorf("failed to get equipped items: %w", err)
		}
	}

	cost := LevelUpCost(hero.Level)
	hash, err := e.charge(ctx, wallet, cost)
	if err != nil {
		return nil, err
	}

	newLevel := hero.Level + 1
	basePower := NextBasePower(hero.BasePower)
	updated, err := e.store.UpdateHeroLevel(ctx, store.UpdateHeroLevelInput{
		HeroID:          hero.ID,
		ExpectedVersion: hero.Version,
		Level:           newLevel,
		BasePower:       basePower,
		Power:           HeroPower(basePower, newLevel, items),
	})
	if err != nil {
		e.journalCharge(ctx, wallet, domain.AssetTypeHero, hero.ID, cost, hash, err)
		return nil, err
	}

	result := &HeroLevelUpResult{
		Hero:          updated,
		PreviousLevel: hero.Level,
		NewLevel:      updated.Level,
		Cost:          cost,
		Hash:          hash,
	}

	tx, err := e.recorder.RecordLevelUp(ctx, wallet, hero.Name, domain.CategoryHeroes, cost, hash, recorder.Details{
		"heroId":        hero.ID,
		"previousLevel": hero.Level,
		"newLevel":      updated.Level,
		"power":         updated.Power.String(),
	})
	if err != nil {
		result.WarnErr("failed to record level up", err)
	}
	result.Transaction = tx

	logger.InfoCtx(ctx, "Hero leveled up",
		zap.String("wallet", wallet),
		zap.Int64("heroID", hero.ID),
		zap.Int("level", updated.Level))

	return result, nil
}

// MergeLevelUp consumes the two oldest other farmers of the same level
func (e *engine) MergeLevelUp(ctx context.Context, wallet string, farmerID int64) (*MergeResult, error) {
	merged, err := e.store.MergeFarmers(ctx, store.MergeFarmersInput{
		FarmerID:      farmerID,
		OwnerWallet:   wallet,
		MaxLevel:      domain.MAX_LEVEL,
		MaterialCount: domain.MERGE_MATERIAL_COUNT,
	})
	if err != nil {
		return nil, err
	}

	result := &MergeResult{
		Farmer:        merged.Farmer,
		PreviousLevel: merged.PreviousLevel,
		NewLevel:      merged.Farmer.Level,
		ConsumedIDs:   merged.ConsumedIDs,
		YieldPerHour:  accrual.FarmerYield(merged.Farmer.BaseYieldPerHour, merged.Farmer.Level),
	}

	tx, err := e.recorder.RecordMerge(ctx, wallet, merged.Farmer.Name, recorder.Details{
		"targetFarmerId":    merged.Farmer.ID,
		"consumedFarmerIds": merged.ConsumedIDs,
		"previousLevel":     merged.PreviousLevel,
		"newLevel":          merged.Farmer.Level,
	})
	if err != nil {
		result.WarnErr("failed to record merge", err)
	}
	result.Transaction = tx

	logger.InfoCtx(ctx, "Farmers merged",
		zap.String("wallet", wallet),
		zap.Int64("farmerID", merged.Farmer.ID),
		zap.Int64s("consumed", merged.ConsumedIDs),
		zap.Int("level", merged.Farmer.Level))

	return result, nil
}

// loadEquipment reads a hero and an item owned by the wallet
func (e *engine) loadEquipment(ctx context.Context, wallet string, heroID, itemID int64) (*schema.Hero, *schema.Item, error) {
	hero, err := e.store.GetHeroByID(ctx, heroID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get hero: %w", err)
	}
	if hero == nil || !types.SameWallet(hero.OwnerWallet, wallet) {
		return nil, nil, domain.NewNotFoundError("hero", heroID)
	}

	item, err := e.store.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil || !types.SameWallet(item.OwnerWallet, wallet) {
		return nil, nil, domain.NewNotFoundError("item", itemID)
	}

	if hero.Status != domain.AssetStatusActive || item.Status != domain.AssetStatusActive {
		return nil, nil, domain.ErrAssetLocked
	}

	return hero, item, nil
}

// EquipItem attaches an item to a hero and adds its bonus at the hero's level
func (e *engine) EquipItem(ctx context.Context, wallet string, heroID, itemID int64) (*EquipResult, error) {
	hero, item, err := e.loadEquipment(ctx, wallet, heroID, itemID)
	if err != nil {
		return nil, err
	}
	if hero.HasItem(item.ID) {
		return nil, domain.ErrAlreadyEquipped
	}
	if item.EquippedTo != nil {
		return nil, domain.ErrItemEquippedElsewhere.WithMessage("item is equipped to hero %d", *item.EquippedTo)
	}

	bonus := ItemBonus(*item, hero.Level)
	updated, err := e.store.EquipItem(ctx, store.EquipItemInput{
		HeroID:      hero.ID,
		ItemID:      item.ID,
		OwnerWallet: wallet,
		HeroVersion: hero.Version,
		Bonus:       bonus,
	})
	if err != nil {
		return nil, err
	}

	return &EquipResult{Hero: updated, ItemID: item.ID, Bonus: bonus}, nil
}

// UnequipItem detaches an item from a hero and removes its bonus at the hero's current level
func (e *engine) UnequipItem(ctx context.Context, wallet string, heroID, itemID int64) (*EquipResult, error) {
	hero, item, err := e.loadEquipment(ctx, wallet, heroID, itemID)
	if err != nil {
		return nil, err
	}
	if !hero.HasItem(item.ID) {
		return nil, domain.ErrNotEquipped
	}

	bonus := ItemBonus(*item, hero.Level)
	updated, err := e.store.UnequipItem(ctx, store.EquipItemInput{
		HeroID:      hero.ID,
		ItemID:      item.ID,
		OwnerWallet: wallet,
		HeroVersion: hero.Version,
		Bonus:       bonus,
	})
	if err != nil {
		return nil, err
	}

	return &EquipResult{Hero: updated, ItemID: item.ID, Bonus: bonus}, nil
}
