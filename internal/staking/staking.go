// Package staking locks WLOS in pools and pays out their yield.
package staking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

// PoolView is a staking pool with the amount actively staked in it
type PoolView struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	LockPeriod       int             `json:"lockPeriod"`
	APY              decimal.Decimal `json:"apy"`
	MinStake         decimal.Decimal `json:"minStake"`
	BattlePowerBoost decimal.Decimal `json:"battlePowerBoost"`
	EarlyUnstakeFee  decimal.Decimal `json:"earlyUnstakeFee"`
	TotalStaked      decimal.Decimal `json:"totalStaked"`
}

// BattlePowerBoost is the battle power granted by a position
type BattlePowerBoost struct {
	Percentage decimal.Decimal `json:"percentage"`
	Value      decimal.Decimal `json:"value"`
}

// LockStatus describes the lock of a position at a point in time
type LockStatus struct {
	IsLocked           bool            `json:"isLocked"`
	RemainingDays      int             `json:"remainingDays"`
	EarlyUnstakeFee    decimal.Decimal `json:"earlyUnstakeFee"`
	EarlyUnstakeAmount decimal.Decimal `json:"earlyUnstakeAmount"`
}

// PositionView is an active position with its accrual
type PositionView struct {
	ID               int64            `json:"id"`
	PoolID           int64            `json:"poolId"`
	PoolName         string           `json:"poolName"`
	Amount           decimal.Decimal  `json:"amount"`
	StakedAt         time.Time        `json:"stakedAt"`
	EndTime          time.Time        `json:"endTime"`
	LastClaim        time.Time        `json:"lastClaim"`
	PendingRewards   decimal.Decimal  `json:"pendingRewards"`
	APY              decimal.Decimal  `json:"apy"`
	BattlePowerBoost BattlePowerBoost `json:"battlePowerBoost"`
	LockStatus       LockStatus       `json:"lockStatus"`
}

// Info summarises the active positions of a wallet
type Info struct {
	Wallet           string          `json:"wallet"`
	TotalStaked      decimal.Decimal `json:"totalStaked"`
	TotalRewards     decimal.Decimal `json:"totalRewards"`
	TotalBattlePower decimal.Decimal `json:"totalBattlePower"`
	Positions        []PositionView  `json:"positions"`
}

// StakeResult is the outcome of a stake
type StakeResult struct {
	domain.Partial
	Position        *schema.StakingPosition `json:"staking"`
	PoolName        string                  `json:"poolName"`
	APY             decimal.Decimal         `json:"apy"`
	ExpectedRewards decimal.Decimal         `json:"expectedRewards"`
	Hash            string                  `json:"hash,omitempty"`
	Transaction     *schema.Transaction     `json:"transaction,omitempty"`
}

// UnstakeResult is the outcome of an unstake.
// Outcome.Primary is the principal return, Outcome.Secondary the reward mint.
type UnstakeResult struct {
	domain.Partial
	PositionID        int64               `json:"positionId"`
	OriginalAmount    decimal.Decimal     `json:"originalAmount"`
	Fee               decimal.Decimal     `json:"fee"`
	FeePercentage     decimal.Decimal     `json:"feePercentage"`
	ReceivedAmount    decimal.Decimal     `json:"receivedAmount"`
	Rewards           decimal.Decimal     `json:"rewards"`
	IsEarlyUnstake    bool                `json:"isEarlyUnstake"`
	Outcome           ledger.Outcome      `json:"-"`
	Transaction       *schema.Transaction `json:"transaction,omitempty"`
	RewardTransaction *schema.Transaction `json:"rewardTransaction,omitempty"`
}

// ClaimResult is the outcome of a reward claim
type ClaimResult struct {
	domain.Partial
	PositionID  int64               `json:"positionId"`
	PoolID      int64               `json:"poolId"`
	PoolName    string              `json:"poolName"`
	Rewards     decimal.Decimal     `json:"rewards"`
	ClaimedAt   time.Time           `json:"claimedAt"`
	Hash        string              `json:"hash,omitempty"`
	Transaction *schema.Transaction `json:"transaction,omitempty"`
}

// Service runs the staking pools
//
//go:generate mockgen -source=staking.go -destination=../mocks/staking.go -package=mocks -mock_names=Service=MockStakingService
type Service interface {
	// GetStakingPools returns the pools ordered by lock period
	GetStakingPools(ctx context.Context) ([]PoolView, error)

	// GetStakingInfo returns the active positions of a wallet with their accrual
	GetStakingInfo(ctx context.Context, wallet string) (*Info, error)

	// StakeTokens locks an amount of the wallet in a pool
	StakeTokens(ctx context.Context, wallet string, poolID int64, amount decimal.Decimal) (*StakeResult, error)

	// UnstakeTokens returns the principal of a position, less any early fee, and mints its rewards
	UnstakeTokens(ctx context.Context, wallet string, positionID int64) (*UnstakeResult, error)

	// ClaimRewards mints the pending rewards of a position
	ClaimRewards(ctx context.Context, wallet string, positionID int64) (*ClaimResult, error)
}

type service struct {
	store    store.Store
	ledger   ledger.Ledger
	recorder recorder.Recorder
	clock    adapter.Clock
}

// NewService creates a staking service
func NewService(st store.Store, l ledger.Ledger, rec recorder.Recorder, clock adapter.Clock) Service {
	return &service{
		store:    st,
		ledger:   l,
		recorder: rec,
		clock:    clock,
	}
}
