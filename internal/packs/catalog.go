package packs

import (
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
)

// HeroTemplate is a hero a pack can yield
type HeroTemplate struct {
	Key   string
	Name  string
	Type  string
	Power decimal.Decimal
}

// FarmerTemplate is a farmer a pack can yield
type FarmerTemplate struct {
	Key              string
	Name             string
	BaseYieldPerHour decimal.Decimal
}

// Catalog holds the asset templates by rarity
type Catalog struct {
	Heroes  map[domain.Rarity][]HeroTemplate
	Farmers map[domain.Rarity][]FarmerTemplate
}

// DefaultCatalog returns the built-in hero and farmer templates
func DefaultCatalog() Catalog {
	hero := func(key, name, heroType string, power int64) HeroTemplate {
		return HeroTemplate{Key: key, Name: name, Type: heroType, Power: decimal.NewFromInt(power)}
	}
	farmer := func(key, name, yield string) FarmerTemplate {
		return FarmerTemplate{Key: key, Name: name, BaseYieldPerHour: decimal.RequireFromString(yield)}
	}

	return Catalog{
		Heroes: map[domain.Rarity][]HeroTemplate{
			domain.RarityCommon: {
				hero("hunter-ranger", "Hunter Ranger", "attack", 850),
				hero("forest-druid", "Forest Druid", "magic", 820),
			},
			domain.RarityRare: {
				hero("knight-champion", "Knight Champion", "defense", 1100),
				hero("royal-knight", "Royal Knight", "balanced", 1150),
			},
			domain.RarityEpic: {
				hero("shadow-assassin", "Shadow Assassin", "speed", 1450),
				hero("dragon-knight", "Dragon Knight", "attack", 1480),
				hero("arcane-mage", "Arcane Mage", "magic", 1425),
			},
			domain.RarityLegendary: {
				hero("mountain-king", "Mountain King", "defense", 1850),
				hero("thunder-lord", "Thunder Lord", "attack", 1900),
				hero("guardian-paladin", "Guardian Paladin", "balanced", 1880),
			},
		},
		Farmers: map[domain.Rarity][]FarmerTemplate{
			domain.RarityCommon: {
				farmer("agribot-3000", "Agribot 3000", "1.2"),
				farmer("cyber-harvester", "Cyber Harvester", "1.5"),
			},
			domain.RarityRare: {
				farmer("quantum-collector", "Quantum Collector", "3.2"),
			},
			domain.RarityEpic: {
				farmer("eco-reaper", "Eco Reaper", "3.8"),
				farmer("neuro-cultivator", "Neuro Cultivator", "7.5"),
			},
			domain.RarityLegendary: {
				farmer("omega-harvester", "Omega Harvester", "15"),
			},
		},
	}
}

// heroes returns the hero templates of a rarity, falling back to common
func (c Catalog) heroes(r domain.Rarity) []HeroTemplate {
	if t := c.Heroes[r]; len(t) > 0 {
		return t
	}
	return c.Heroes[domain.RarityCommon]
}

// farmers returns the farmer templates of a rarity, falling back to common
func (c Catalog) farmers(r domain.Rarity) []FarmerTemplate {
	if t := c.Farmers[r]; len(t) > 0 {
		return t
	}
	return c.Farmers[domain.RarityCommon]
}
