package marketplace

import (
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
)

var (
	sellerShare       = decimal.RequireFromString(domain.SELLER_SHARE)
	instantSellShare  = decimal.RequireFromString(domain.INSTANT_SELL_SHARE)
	farmerValuePerLvl = decimal.RequireFromString(domain.FARMER_VALUE_PER_LVL)
	heroValuePerLvl   = decimal.RequireFromString(domain.HERO_VALUE_PER_LVL)
	one               = decimal.NewFromInt(1)
)

// FarmerBaseValue returns 50 × (1 + 0.5 × (level − 1))
func FarmerBaseValue(level int) decimal.Decimal {
	return decimal.NewFromInt(domain.FARMER_BASE_VALUE).Mul(one.Add(farmerValuePerLvl.Mul(decimal.NewFromInt(int64(level - 1)))))
}

// HeroBaseValue returns 100 × (1 + 0.7 × (level − 1)) × rarity multiplier
func HeroBaseValue(level int, rarity domain.Rarity) decimal.Decimal {
	levelFactor := one.Add(heroValuePerLvl.Mul(decimal.NewFromInt(int64(level - 1))))
	return decimal.NewFromInt(domain.HERO_BASE_VALUE).Mul(levelFactor).Mul(domain.ParseRarity(string(rarity)).HeroValueMultiplier())
}

// ItemBaseValue returns the item's base value, or 20 when unset
func ItemBaseValue(baseValue decimal.Decimal) decimal.Decimal {
	if !baseValue.IsPositive() {
		return decimal.NewFromInt(domain.DEFAULT_ITEM_VALUE)
	}
	return baseValue
}

// InstantSellPayout returns floor(base × 0.5)
func InstantSellPayout(base decimal.Decimal) decimal.Decimal {
	return base.Mul(instantSellShare).Floor()
}

// SplitSale returns the seller proceeds (95%, at token precision) and the platform fee
func SplitSale(price decimal.Decimal) (proceeds, fee decimal.Decimal) {
	proceeds = price.Mul(sellerShare).Truncate(domain.TOKEN_DECIMALS)
	return proceeds, price.Sub(proceeds)
}
