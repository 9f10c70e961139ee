// Package accrual computes time based rewards for farmers and staking positions.
// All functions are pure: the caller supplies the current time.
package accrual

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
)

var (
	hoursPerDay    = decimal.NewFromInt(domain.HOURS_PER_DAY)
	yieldPerLevel  = decimal.RequireFromString(domain.FARMER_YIELD_PER_LVL)
	secondsPerHour = decimal.NewFromInt(int64(time.Hour / time.Second))
)

// FarmerYield returns the effective yield per hour of a farmer at the given level:
// base × (1 + 0.1 × (level − 1))
func FarmerYield(base decimal.Decimal, level int) decimal.Decimal {
	bonus := yieldPerLevel.Mul(decimal.NewFromInt(int64(level - 1)))
	return base.Mul(decimal.NewFromInt(1).Add(bonus))
}

// StakingYield returns the annual reward of a staked amount: amount × apy / 100
func StakingYield(amount, apy decimal.Decimal) decimal.Decimal {
	return amount.Mul(apy).Div(domain.DecimalHundred)
}

// Elapsed returns now − checkpoint, clamped to zero when the checkpoint is in the future
func Elapsed(checkpoint, now time.Time) time.Duration {
	d := now.Sub(checkpoint)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedHours returns the elapsed time in fractional hours
func ElapsedHours(checkpoint, now time.Time) decimal.Decimal {
	secs := decimal.NewFromFloat(Elapsed(checkpoint, now).Seconds())
	return secs.Div(secondsPerHour)
}

// ElapsedDays returns the elapsed time in fractional days
func ElapsedDays(checkpoint, now time.Time) decimal.Decimal {
	return ElapsedHours(checkpoint, now).Div(hoursPerDay)
}

// FarmerPending returns the reward accrued since the checkpoint:
// FarmerYield × elapsed hours
func FarmerPending(base decimal.Decimal, level int, checkpoint, now time.Time) decimal.Decimal {
	return FarmerYield(base, level).Mul(ElapsedHours(checkpoint, now))
}

// StakingPending returns the reward accrued since the checkpoint:
// amount × apy / 100 × elapsed days / 365
func StakingPending(amount, apy decimal.Decimal, checkpoint, now time.Time) decimal.Decimal {
	return StakingYield(amount, apy).Mul(ElapsedDays(checkpoint, now)).Div(domain.DecimalDaysPerYear)
}

// ExpectedStakingReward returns the reward of a stake held for the full lock period
func ExpectedStakingReward(amount, apy decimal.Decimal, lockDays int) decimal.Decimal {
	days := decimal.NewFromInt(int64(lockDays))
	return StakingYield(amount, apy).Mul(days).Div(domain.DecimalDaysPerYear)
}

// TokenAmount truncates an amount to the token precision
func TokenAmount(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(domain.TOKEN_DECIMALS)
}

// FarmerState is the accrual relevant state of a farmer
type FarmerState struct {
	BaseYieldPerHour decimal.Decimal
	Level            int
	LastHarvested    time.Time
}

// BatchTotal sums the pending rewards of the farmers at now
func BatchTotal(farmers []FarmerState, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, f := range farmers {
		total = total.Add(FarmerPending(f.BaseYieldPerHour, f.Level, f.LastHarvested, now))
	}
	return total
}
