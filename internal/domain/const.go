package domain

import "github.com/shopspring/decimal"

const (
	// Token constants
	TOKEN_SYMBOL   = "WLOS"
	TOKEN_DECIMALS = 9

	// Leveling constants
	MIN_LEVEL             = 1
	MAX_LEVEL             = 5
	MERGE_MATERIAL_COUNT  = 2
	LEVEL_UP_BASE_COST    = 50
	FARMER_YIELD_PER_LVL  = "0.1"
	HERO_POWER_MULTIPLIER = "1.1"
	ITEM_BONUS_PER_LVL    = "0.2"

	// Marketplace constants
	LISTING_FEE           = "0.000005"
	SELLER_SHARE          = "0.95"
	INSTANT_SELL_SHARE    = "0.5"
	DEFAULT_CATEGORY      = "Other"
	DEFAULT_ITEM_VALUE    = 20
	FARMER_BASE_VALUE     = 50
	FARMER_VALUE_PER_LVL  = "0.5"
	HERO_BASE_VALUE       = 100
	HERO_VALUE_PER_LVL    = "0.7"
	MARKETPLACE_STATS_DAY = 7

	// Calendar constants
	HOURS_PER_DAY = 24
	DAYS_PER_YEAR = 365
)

var (
	// DecimalHundred is used for percentage math
	DecimalHundred = decimal.NewFromInt(100)
	// DecimalDaysPerYear is used for annualised rates
	DecimalDaysPerYear = decimal.NewFromInt(DAYS_PER_YEAR)
)
