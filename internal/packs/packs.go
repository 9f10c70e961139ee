// Package packs sells and opens asset packs.
package packs

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
	"github.com/feral-file/ff-economy/internal/types"
)

// Config holds the pack service configuration
type Config struct {
	// CacheSize is the number of pack type reads kept in memory
	CacheSize int
	// CacheTTL is how long a cached pack type read is served
	CacheTTL time.Duration
}

// RarityChances are the roll chances of a pack type
type RarityChances struct {
	Common    decimal.Decimal `json:"common"`
	Rare      decimal.Decimal `json:"rare"`
	Epic      decimal.Decimal `json:"epic"`
	Legendary decimal.Decimal `json:"legendary"`
}

// PackTypeView is a purchasable pack type
type PackTypeView struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Cost          decimal.Decimal  `json:"cost"`
	ImageSrc      string           `json:"imageSrc"`
	AssetType     domain.AssetType `json:"assetType"`
	RarityChances RarityChances    `json:"rarityChances"`
}

// PackView is a pack owned by a wallet
type PackView struct {
	ID        int64     `json:"id"`
	PackID    string    `json:"packId"`
	Purchased time.Time `json:"purchased"`
	Opened    bool      `json:"opened"`
	PackTypeView
}

// BuyResult is the outcome of a pack purchase
type BuyResult struct {
	domain.Partial
	Pack        PackView            `json:"pack"`
	Hash        string              `json:"hash,omitempty"`
	Transaction *schema.Transaction `json:"transaction,omitempty"`
}

// Contents are the assets a pack yielded
type Contents struct {
	Heroes  []schema.Hero   `json:"heroes"`
	Farmers []schema.Farmer `json:"farmers"`
	Items   []schema.Item   `json:"items"`
}

// OpenResult is the outcome of opening a pack
type OpenResult struct {
	PackID   int64        `json:"packId"`
	PackType PackTypeView `json:"packType"`
	Contents Contents     `json:"contents"`
}

// Service sells and opens packs
//
//go:generate mockgen -source=packs.go -destination=../mocks/packs.go -package=mocks -mock_names=Service=MockPackService
type Service interface {
	// GetPackTypes returns the pack types, optionally of one asset type
	GetPackTypes(ctx context.Context, assetType domain.AssetType) ([]PackTypeView, error)

	// BuyPack charges the pack price and adds an unopened pack to the wallet
	BuyPack(ctx context.Context, wallet, packKey string, assetType domain.AssetType) (*BuyResult, error)

	// GetPackInventory returns the unopened packs of a wallet
	GetPackInventory(ctx context.Context, wallet string, assetType domain.AssetType) ([]PackView, error)

	// OpenPack rolls the contents of an unopened pack into the wallet
	OpenPack(ctx context.Context, wallet string, packID int64) (*OpenResult, error)
}

type service struct {
	store    store.Store
	ledger   ledger.Ledger
	recorder recorder.Recorder
	clock    adapter.Clock
	random   adapter.Random
	catalog  Catalog
	types    *typeCache
}

// NewService creates a pack service
func NewService(cfg Config, st store.Store, l ledger.Ledger, rec recorder.Recorder, clock adapter.Clock, random adapter.Random, catalog Catalog) Service {
	return &service{
		store:    st,
		ledger:   l,
		recorder: rec,
		clock:    clock,
		random:   random,
		catalog:  catalog,
		types:    newTypeCache(st, clock, cfg.CacheSize, cfg.CacheTTL),
	}
}

func newPackTypeView(pt *schema.PackType) PackTypeView {
	return PackTypeView{
		ID:          pt.PackKey,
		Name:        pt.Name,
		Description: pt.Description,
		Cost:        pt.Price,
		ImageSrc:    pt.ImageSrc,
		AssetType:   pt.AssetType,
		RarityChances: RarityChances{
			Common:    pt.CommonChance,
			Rare:      pt.RareChance,
			Epic:      pt.EpicChance,
			Legendary: pt.LegendaryChance,
		},
	}
}

func newPackView(p *schema.Pack, pt *schema.PackType) PackView {
	return PackView{
		ID:           p.ID,
		PackID:       p.PackKey,
		Purchased:    p.CreatedAt,
		Opened:       p.Opened,
		PackTypeView: newPackTypeView(pt),
	}
}

func validatePackAssetType(assetType domain.AssetType) error {
	if assetType != "" && assetType != domain.AssetTypeHero && assetType != domain.AssetTypeFarmer {
		return domain.NewValidationError("invalid pack asset type: %s", assetType)
	}
	return nil
}

// GetPackTypes returns the pack types, optionally of one asset type
func (s *service) GetPackTypes(ctx context.Context, assetType domain.AssetType) ([]PackTypeView, error) {
	if err := validatePackAssetType(assetType); err != nil {
		return nil, err
	}

	types, err := s.types.list(ctx, assetType)
	if err != nil {
		return nil, err
	}

	views := make([]PackTypeView, 0, len(types))
	for i := range types {
		views = append(views, newPackTypeView(&types[i]))
	}
	return views, nil
}

// BuyPack charges the pack price and adds an unopened pack to the wallet.
// A priced pack is paid for before it is inserted.
func (s *service) BuyPack(ctx context.Context, wallet, packKey string, assetType domain.AssetType) (*BuyResult, error) {
	if assetType == "" {
		assetType = domain.AssetTypeHero
	}
	if err := validatePackAssetType(assetType); err != nil {
		return nil, err
	}

	pt, err := s.types.byKey(ctx, packKey)
	if err != nil {
		return nil, err
	}
	if pt == nil || pt.AssetType != assetType {
		return nil, domain.NewNotFoundError("pack type", packKey)
	}

	var hash string
	if pt.Price.IsPositive() {
		balance, err := s.ledger.GetBalance(ctx, wallet)
		if err != nil {
			return nil, err
		}
		if balance.LessThan(pt.Price) {
			return nil, domain.ErrInsufficientBalance.WithMessage("not enough %s to buy this pack: need %s, have %s", domain.TOKEN_SYMBOL, pt.Price, balance)
		}

		res := s.ledger.Transfer(ctx, wallet, s.ledger.TreasuryAddress(), pt.Price)
		if !res.Success {
			return nil, res.Err
		}
		hash = res.Reference
	}

	pack := &schema.Pack{
		PackTypeID:  pt.ID,
		PackKey:     pt.PackKey,
		OwnerWallet: wallet,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if err := s.store.CreatePack(ctx, pack); err != nil {
		if hash == "" {
			return nil, fmt.Errorf("failed to create pack: %w", err)
		}
		id := s.recorder.ReportInconsistency(ctx, domain.InconsistencyPackPurchase, wallet, hash, pack, err)
		return nil, &domain.JournaledError{InconsistencyID: id, Reference: hash, Err: err}
	}

	result := &BuyResult{
		Pack: newPackView(pack, pt),
		Hash: hash,
	}

	tx, err := s.recorder.RecordPackPurchase(ctx, wallet, pt.Name, pt.Price, hash, recorder.Details{
		"packId":     pack.ID,
		"packTypeId": pt.ID,
		"packKey":    pt.PackKey,
		"assetType":  pt.AssetType,
	})
	if err != nil {
		result.WarnErr("failed to record pack purchase", err)
	}
	result.Transaction = tx

	logger.InfoCtx(ctx, "Pack purchased",
		zap.String("wallet", wallet),
		zap.String("packKey", pt.PackKey),
		zap.Int64("packID", pack.ID))

	return result, nil
}

// GetPackInventory returns the unopened packs of a wallet
func (s *service) GetPackInventory(ctx context.Context, wallet string, assetType domain.AssetType) ([]PackView, error) {
	if err := validatePackAssetType(assetType); err != nil {
		return nil, err
	}

	packs, err := s.store.GetPacksByOwner(ctx, wallet, assetType)
	if err != nil {
		return nil, fmt.Errorf("failed to get packs: %w", err)
	}

	views := make([]PackView, 0, len(packs))
	for i := range packs {
		pt, err := s.packTypeOf(ctx, &packs[i])
		if err != nil {
			return nil, err
		}
		views = append(views, newPackView(&packs[i], pt))
	}
	return views, nil
}

func (s *service) packTypeOf(ctx context.Context, p *schema.Pack) (*schema.PackType, error) {
	if p.PackType != nil {
		return p.PackType, nil
	}
	pt, err := s.types.byKey(ctx, p.PackKey)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, domain.NewNotFoundError("pack type", p.PackKey)
	}
	return pt, nil
}

// OpenPack rolls the contents of an unopened pack into the wallet.
// The assets are inserted and the pack marked opened in one store transaction.
func (s *service) OpenPack(ctx context.Context, wallet string, packID int64) (*OpenResult, error) {
	pack, err := s.store.GetPackByID(ctx, packID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pack: %w", err)
	}
	if pack == nil || !types.SameWallet(pack.OwnerWallet, wallet) {
		return nil, domain.NewNotFoundError("pack", packID)
	}
	if pack.Opened {
		return nil, domain.ErrPackAlreadyOpened
	}

	pt, err := s.packTypeOf(ctx, pack)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	contents := s.roll(pt, wallet, now)

	err = s.store.OpenPack(ctx, store.OpenPackInput{
		PackID:      pack.ID,
		OwnerWallet: wallet,
		OpenedAt:    now,
		Heroes:      contents.Heroes,
		Farmers:     contents.Farmers,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Pack opened",
		zap.String("wallet", wallet),
		zap.Int64("packID", pack.ID),
		zap.Int("heroes", len(contents.Heroes)),
		zap.Int("farmers", len(contents.Farmers)))

	return &OpenResult{
		PackID:   pack.ID,
		PackType: newPackTypeView(pt),
		Contents: contents,
	}, nil
}

// roll draws between one and three assets of the pack's asset type
func (s *service) roll(pt *schema.PackType, wallet string, now time.Time) Contents {
	contents := Contents{
		Heroes:  []schema.Hero{},
		Farmers: []schema.Farmer{},
		Items:   []schema.Item{},
	}

	count := minPackAssets + s.random.IntN(maxPackAssets-minPackAssets+1)
	for i := 0; i < count; i++ {
		rarity := RollRarity(s.random.Float64(), pt)

		switch pt.AssetType {
		case domain.AssetTypeHero:
			templates := s.catalog.heroes(rarity)
			if len(templates) == 0 {
				continue
			}
			t := templates[s.random.IntN(len(templates))]
			contents.Heroes = append(contents.Heroes, schema.Hero{
				HeroKey:       t.Key,
				Name:          t.Name,
				Rarity:        rarity,
				HeroType:      t.Type,
				OwnerWallet:   wallet,
				Level:         domain.MIN_LEVEL,
				BasePower:     t.Power,
				Power:         t.Power,
				EquippedItems: datatypes.JSONSlice[int64]{},
				Status:        domain.AssetStatusActive,
				Version:       1,
			})
		case domain.AssetTypeFarmer:
			templates := s.catalog.farmers(rarity)
			if len(templates) == 0 {
				continue
			}
			t := templates[s.random.IntN(len(templates))]
			contents.Farmers = append(contents.Farmers, schema.Farmer{
				FarmerKey:        t.Key,
				Name:             t.Name,
				Rarity:           rarity,
				OwnerWallet:      wallet,
				Level:            domain.MIN_LEVEL,
				BaseYieldPerHour: t.BaseYieldPerHour,
				LastHarvested:    now,
				EquippedItems:    datatypes.JSONSlice[int64]{},
				Status:           domain.AssetStatusActive,
				Version:          1,
			})
		}
	}

	return contents
}
