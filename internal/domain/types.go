package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetType is the kind of a collectible asset
type AssetType string

const (
	AssetTypeHero   AssetType = "hero"
	AssetTypeFarmer AssetType = "farmer"
	AssetTypeItem   AssetType = "item"
)

// IsValidAssetType checks if an asset type is valid
func IsValidAssetType(t AssetType) bool {
	return t == AssetTypeHero || t == AssetTypeFarmer || t == AssetTypeItem
}

// Rarity is the rarity tier of an asset
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// ParseRarity normalises a rarity string. Unknown values map to common.
func ParseRarity(s string) Rarity {
	switch r := Rarity(strings.ToLower(strings.TrimSpace(s))); r {
	case RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return r
	default:
		return RarityCommon
	}
}

// ItemBonusMultiplier returns the bonus multiplier applied to equipped items
func (r Rarity) ItemBonusMultiplier() decimal.Decimal {
	switch r {
	case RarityUncommon:
		return decimal.RequireFromString("1.5")
	case RarityRare:
		return decimal.NewFromInt(2)
	case RarityEpic:
		return decimal.NewFromInt(3)
	case RarityLegendary:
		return decimal.NewFromInt(5)
	default:
		return decimal.NewFromInt(1)
	}
}

// DefaultItemBonus returns the base bonus of an item without an explicit bonus
func (r Rarity) DefaultItemBonus() decimal.Decimal {
	switch r {
	case RarityUncommon:
		return decimal.NewFromInt(5)
	case RarityRare:
		return decimal.NewFromInt(10)
	case RarityEpic:
		return decimal.NewFromInt(15)
	case RarityLegendary:
		return decimal.NewFromInt(25)
	default:
		return decimal.NewFromInt(2)
	}
}

// HeroValueMultiplier returns the rarity multiplier used to value heroes for instant sell
func (r Rarity) HeroValueMultiplier() decimal.Decimal {
	switch r {
	case RarityUncommon:
		return decimal.RequireFromString("1.5")
	case RarityRare:
		return decimal.RequireFromString("2.5")
	case RarityEpic:
		return decimal.NewFromInt(4)
	case RarityLegendary:
		return decimal.NewFromInt(8)
	default:
		return decimal.NewFromInt(1)
	}
}

// AssetStatus is the lock state of an asset
type AssetStatus string

const (
	AssetStatusActive      AssetStatus = "active"
	AssetStatusListed      AssetStatus = "listed"
	AssetStatusLiquidating AssetStatus = "liquidating"
)

// ListingStatus is the state of a marketplace listing
type ListingStatus string

const (
	ListingStatusActive ListingStatus = "active"
	// ListingStatusSettling holds a listing for one buyer while their payment is in flight
	ListingStatusSettling  ListingStatus = "settling"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusCancelled ListingStatus = "cancelled"
)

// TransactionType is the type of a transaction record
type TransactionType string

const (
	TransactionTypePurchase      TransactionType = "Purchase"
	TransactionTypeSale          TransactionType = "Sale"
	TransactionTypeList          TransactionType = "List"
	TransactionTypeCancel        TransactionType = "Cancel"
	TransactionTypeInstantSell   TransactionType = "InstantSell"
	TransactionTypePlatformFee   TransactionType = "PlatformFee"
	TransactionTypeStaking       TransactionType = "Staking"
	TransactionTypeUnstaking     TransactionType = "Unstaking"
	TransactionTypeStakingReward TransactionType = "Staking Reward"
	TransactionTypeLevelUp       TransactionType = "LevelUp"
	TransactionTypeMerge         TransactionType = "Merge"
	TransactionTypeManual        TransactionType = "Manual"
	TransactionTypeHarvestReward TransactionType = "Harvest Reward"
)

// TransactionCategory groups transaction records for filtering
type TransactionCategory string

const (
	CategoryMarketplace TransactionCategory = "Marketplace"
	CategoryStaking     TransactionCategory = "Staking"
	CategoryFarming     TransactionCategory = "Farming"
	CategoryHeroes      TransactionCategory = "Heroes"
	CategoryPacks       TransactionCategory = "Packs"
	CategoryOther       TransactionCategory = "Other"
)

// TransactionStatus is the confirmation state of a transaction record
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Subject builds the message subject of a transaction event.
// Example: transactions.marketplace.instantsell
func Subject(category TransactionCategory, txType TransactionType) string {
	slug := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	}
	return fmt.Sprintf("transactions.%s.%s", slug(string(category)), slug(string(txType)))
}

// InconsistencyKind is the kind of a partial-success condition that needs reconciliation
type InconsistencyKind string

const (
	// Off-chain bookkeeping, retried by the reconciliation sweeper
	InconsistencyTransactionRecord     InconsistencyKind = "transaction_record"
	InconsistencyInstantSellCompletion InconsistencyKind = "instant_sell_completion"
	InconsistencyStakingPosition       InconsistencyKind = "staking_position"
	InconsistencySaleSettlement        InconsistencyKind = "sale_settlement"
	InconsistencySaleSettlementRecords InconsistencyKind = "sale_settlement_record"
	InconsistencyPackPurchase          InconsistencyKind = "pack_purchase"
	InconsistencyReservationRelease    InconsistencyKind = "reservation_release"

	// Ledger-side, never retried automatically
	InconsistencySellerPayout      InconsistencyKind = "seller_payout"
	InconsistencyLevelUpCharge     InconsistencyKind = "level_up_charge"
	InconsistencyUnstakeRewardMint InconsistencyKind = "unstake_reward_mint"
	InconsistencyUnsettledPayment  InconsistencyKind = "unsettled_payment"
)

// IsOffChain reports whether the sweeper may retry the inconsistency on its own
func (k InconsistencyKind) IsOffChain() bool {
	switch k {
	case InconsistencySellerPayout, InconsistencyUnstakeRewardMint, InconsistencyLevelUpCharge, InconsistencyUnsettledPayment:
		return false
	default:
		return true
	}
}

// InconsistencyStatus is the state of an inconsistency journal entry
type InconsistencyStatus string

const (
	InconsistencyStatusOpen     InconsistencyStatus = "open"
	InconsistencyStatusResolved InconsistencyStatus = "resolved"
	InconsistencyStatusManual   InconsistencyStatus = "manual"
)
