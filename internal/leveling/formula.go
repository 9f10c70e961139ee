package leveling

import (
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

var (
	heroPowerMultiplier = decimal.RequireFromString(domain.HERO_POWER_MULTIPLIER)
	itemBonusPerLevel   = decimal.RequireFromString(domain.ITEM_BONUS_PER_LVL)
)

// LevelUpCost returns the cost of leveling up from level: 50 × 2^(level−1)
func LevelUpCost(level int) decimal.Decimal {
	if level < domain.MIN_LEVEL {
		level = domain.MIN_LEVEL
	}
	return decimal.NewFromInt(int64(domain.LEVEL_UP_BASE_COST) << uint(level-1))
}

// ItemBonus returns the power an item adds to a hero of the given level:
// baseBonus × rarity multiplier × (1 + 0.2 × (heroLevel − 1))
func ItemBonus(item schema.Item, heroLevel int) decimal.Decimal {
	rarity := domain.ParseRarity(string(item.Rarity))

	base := item.Bonus
	if !base.IsPositive() {
		base = rarity.DefaultItemBonus()
	}

	levelFactor := decimal.NewFromInt(1).Add(itemBonusPerLevel.Mul(decimal.NewFromInt(int64(heroLevel - 1))))
	return base.Mul(rarity.ItemBonusMultiplier()).Mul(levelFactor)
}

// HeroPower returns base power plus the bonuses of the equipped items at the hero level
func HeroPower(basePower decimal.Decimal, level int, items []schema.Item) decimal.Decimal {
	power := basePower
	for _, item := range items {
		power = power.Add(ItemBonus(item, level))
	}
	return power
}

// NextBasePower returns the base power after a hero level up
func NextBasePower(basePower decimal.Decimal) decimal.Decimal {
	return basePower.Mul(heroPowerMultiplier)
}
