package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// StakingPool represents the staking_pools table - read only pool configuration
type StakingPool struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the display name (e.g., "Flexible")
	Name string `gorm:"column:name;not null;type:text"`
	// Description is a human readable description
	Description string `gorm:"column:description;not null;default:'';type:text"`
	// APY is the annual percentage yield (20 means 20%)
	APY decimal.Decimal `gorm:"column:apy;not null;type:numeric(38,9)"`
	// LockPeriodDays is the lock duration in days
	LockPeriodDays int `gorm:"column:lock_period_days;not null;default:0"`
	// MinStake is the minimum amount per stake
	MinStake decimal.Decimal `gorm:"column:min_stake;not null;default:0;type:numeric(38,9)"`
	// EarlyUnstakeFee is a percentage in [0, 100] charged when unstaking before the lock ends
	EarlyUnstakeFee decimal.Decimal `gorm:"column:early_unstake_fee;not null;default:0;type:numeric(38,9)"`
	// BattlePowerBoost is a percentage of the staked amount granted as battle power
	BattlePowerBoost decimal.Decimal `gorm:"column:battle_power_boost;not null;default:0;type:numeric(38,9)"`
}

// TableName specifies the table name for the StakingPool model
func (StakingPool) TableName() string {
	return "staking_pools"
}

// StakingPosition represents the staking_positions table - tokens locked in a pool
type StakingPosition struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletAddress is the staker
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;index"`
	// PoolID references staking_pools.id
	PoolID int64 `gorm:"column:pool_id;not null"`
	// Amount is the staked principal
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(38,9)"`
	// StartTime is when the stake was made
	StartTime time.Time `gorm:"column:start_time;not null;type:timestamptz"`
	// EndTime is when the lock ends
	EndTime time.Time `gorm:"column:end_time;not null;type:timestamptz"`
	// LastClaimTime is the accrual checkpoint, within [StartTime, now]
	LastClaimTime time.Time `gorm:"column:last_claim_time;not null;type:timestamptz"`
	// IsActive is false once unstaked; inactive is terminal
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// Version is incremented on every update for compare-and-swap
	Version int64 `gorm:"column:version;not null;default:1"`
	// CreatedAt is the timestamp when this position was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this position was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Pool is populated on reads that join the pool
	Pool *StakingPool `gorm:"foreignKey:PoolID"`
}

// TableName specifies the table name for the StakingPosition model
func (StakingPosition) TableName() string {
	return "staking_positions"
}
