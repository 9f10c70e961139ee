package marketplace

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/types"
)

// asset is the marketplace view of a hero, farmer or item
type asset struct {
	Type      domain.AssetType
	ID        int64
	Name      string
	Category  string
	Owner     string
	Status    domain.AssetStatus
	BaseValue decimal.Decimal
	// Equipped is true for an item attached to a hero or a hero carrying items
	Equipped bool
}

// label is the record item name of the asset
func (a *asset) label() string {
	if a.Name != "" {
		return a.Name
	}
	return fmt.Sprintf("%s #%d", a.Type, a.ID)
}

// loadAsset loads an asset owned by the wallet.
// Returns a not found error when the asset does not exist or belongs to another wallet.
func (e *engine) loadAsset(ctx context.Context, wallet string, assetType domain.AssetType, id int64) (*asset, error) {
	var a *asset

	switch assetType {
	case domain.AssetTypeFarmer:
		farmer, err := e.store.GetFarmerByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get farmer: %w", err)
		}
		if farmer != nil {
			a = &asset{
				Name:      farmer.Name,
				Owner:     farmer.OwnerWallet,
				Status:    farmer.Status,
				BaseValue: FarmerBaseValue(farmer.Level),
			}
		}
	case domain.AssetTypeHero:
		hero, err := e.store.GetHeroByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get hero: %w", err)
		}
		if hero != nil {
			a = &asset{
				Name:      hero.Name,
				Owner:     hero.OwnerWallet,
				Status:    hero.Status,
				BaseValue: HeroBaseValue(hero.Level, hero.Rarity),
				Equipped:  len(hero.EquippedItems) > 0,
			}
		}
	case domain.AssetTypeItem:
		item, err := e.store.GetItemByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get item: %w", err)
		}
		if item != nil {
			a = &asset{
				Name:      item.Name,
				Category:  item.Category,
				Owner:     item.OwnerWallet,
				Status:    item.Status,
				BaseValue: ItemBaseValue(item.BaseValue),
				Equipped:  item.EquippedTo != nil,
			}
		}
	default:
		return nil, domain.NewValidationError("invalid asset type: %s", assetType)
	}

	if a == nil || !types.SameWallet(a.Owner, wallet) {
		return nil, domain.NewNotFoundError(string(assetType), id)
	}
	a.Type = assetType
	a.ID = id
	return a, nil
}
