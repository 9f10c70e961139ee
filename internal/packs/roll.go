package packs

import (
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

const (
	minPackAssets = 1
	maxPackAssets = 3
)

// RollRarity maps a roll in [0, 1) onto the cumulative legendary, epic and rare chances
// of a pack type. Anything above is common.
func RollRarity(roll float64, pt *schema.PackType) domain.Rarity {
	r := decimal.NewFromFloat(roll)
	threshold := pt.LegendaryChance
	if r.LessThan(threshold) {
		return domain.RarityLegendary
	}
	threshold = threshold.Add(pt.EpicChance)
	if r.LessThan(threshold) {
		return domain.RarityEpic
	}
	threshold = threshold.Add(pt.RareChance)
	if r.LessThan(threshold) {
		return domain.RarityRare
	}
	return domain.RarityCommon
}
