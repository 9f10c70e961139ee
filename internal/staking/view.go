package staking

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/accrual"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

// EarlyUnstakeFee returns the fee charged when unstaking before the lock ends, else zero
func EarlyUnstakeFee(amount, feePercent decimal.Decimal, locked bool) decimal.Decimal {
	if !locked {
		return decimal.Zero
	}
	return accrual.TokenAmount(amount.Mul(feePercent).Div(domain.DecimalHundred))
}

// BattlePower returns amount × boost / 100
func BattlePower(amount, boostPercent decimal.Decimal) decimal.Decimal {
	return amount.Mul(boostPercent).Div(domain.DecimalHundred)
}

// RemainingDays returns the whole days left until end, rounded up
func RemainingDays(end, now time.Time) int {
	if !now.Before(end) {
		return 0
	}
	return int(math.Ceil(end.Sub(now).Hours() / domain.HOURS_PER_DAY))
}

// pending returns the claimable reward of a position at now
func pending(position *schema.StakingPosition, pool *schema.StakingPool, now time.Time) decimal.Decimal {
	return accrual.TokenAmount(accrual.StakingPending(position.Amount, pool.APY, position.LastClaimTime, now))
}

func newPoolView(p schema.StakingPool, total decimal.Decimal) PoolView {
	return PoolView{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		LockPeriod:       p.LockPeriodDays,
		APY:              p.APY,
		MinStake:         p.MinStake,
		BattlePowerBoost: p.BattlePowerBoost,
		EarlyUnstakeFee:  p.EarlyUnstakeFee,
		TotalStaked:      total,
	}
}

func newPositionView(position *schema.StakingPosition, pool *schema.StakingPool, now time.Time) PositionView {
	locked := now.Before(position.EndTime)
	feePercent := decimal.Zero
	if locked {
		feePercent = pool.EarlyUnstakeFee
	}

	return PositionView{
		ID:             position.ID,
		PoolID:         pool.ID,
		PoolName:       pool.Name,
		Amount:         position.Amount,
		StakedAt:       position.StartTime,
		EndTime:        position.EndTime,
		LastClaim:      position.LastClaimTime,
		PendingRewards: pending(position, pool, now),
		APY:            pool.APY,
		BattlePowerBoost: BattlePowerBoost{
			Percentage: pool.BattlePowerBoost,
			Value:      BattlePower(position.Amount, pool.BattlePowerBoost),
		},
		LockStatus: LockStatus{
			IsLocked:           locked,
			RemainingDays:      RemainingDays(position.EndTime, now),
			EarlyUnstakeFee:    feePercent,
			EarlyUnstakeAmount: EarlyUnstakeFee(position.Amount, pool.EarlyUnstakeFee, locked),
		},
	}
}
