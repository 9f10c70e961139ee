package accrual

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFarmerYield(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		level    int
		expected string
	}{
		{name: "level 1 equals base", base: "1.2", level: 1, expected: "1.2"},
		{name: "level 2 adds ten percent", base: "1.2", level: 2, expected: "1.32"},
		{name: "level 5 adds forty percent", base: "15", level: 5, expected: "21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, d(tt.expected).Equal(FarmerYield(d(tt.base), tt.level)), "got %s", FarmerYield(d(tt.base), tt.level))
		})
	}
}

func TestFarmerYield_MonotoneInLevel(t *testing.T) {
	base := d("3.8")
	prev := FarmerYield(base, 1)
	for level := 2; level <= 5; level++ {
		cur := FarmerYield(base, level)
		assert.True(t, cur.GreaterThan(prev), "level %d yield %s not above %s", level, cur, prev)
		prev = cur
	}
}

func TestFarmerPending(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	checkpoint := now.Add(-10 * time.Hour)

	pending := FarmerPending(d("1.2"), 2, checkpoint, now)

	assert.True(t, d("13.2").Equal(pending), "got %s", pending)
}

func TestFarmerPending_ZeroAtCheckpoint(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, FarmerPending(d("1.2"), 3, now, now).IsZero())
}

func TestFarmerPending_FutureCheckpointClampsToZero(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	pending := FarmerPending(d("1.2"), 1, now.Add(time.Hour), now)

	assert.True(t, pending.IsZero())
	assert.Equal(t, time.Duration(0), Elapsed(now.Add(time.Minute), now))
}

func TestFarmerPending_MonotoneInTime(t *testing.T) {
	checkpoint := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := decimal.Zero
	for h := 1; h <= 48; h += 7 {
		cur := FarmerPending(d("2.5"), 2, checkpoint, checkpoint.Add(time.Duration(h)*time.Hour))
		assert.True(t, cur.GreaterThanOrEqual(prev))
		prev = cur
	}
}

func TestStakingPending(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(time.Duration(36.5 * float64(24*time.Hour)))

	pending := StakingPending(d("1000"), d("20"), start, now)

	assert.True(t, d("20").Equal(pending), "got %s", pending)
}

func TestStakingPending_ZeroAPY(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, StakingPending(d("1000"), decimal.Zero, start, start.Add(240*time.Hour)).IsZero())
}

func TestExpectedStakingReward(t *testing.T) {
	assert.True(t, d("40").Equal(ExpectedStakingReward(d("1000"), d("20"), 73)))
	assert.True(t, ExpectedStakingReward(d("1000"), d("20"), 0).IsZero())
}

func TestBatchTotal(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	farmers := []FarmerState{
		{BaseYieldPerHour: d("1.2"), Level: 2, LastHarvested: now.Add(-10 * time.Hour)},
		{BaseYieldPerHour: d("1"), Level: 1, LastHarvested: now.Add(-2 * time.Hour)},
		{BaseYieldPerHour: d("5"), Level: 1, LastHarvested: now.Add(time.Hour)},
	}

	total := BatchTotal(farmers, now)

	assert.True(t, d("15.2").Equal(total), "got %s", total)
	assert.True(t, BatchTotal(nil, now).IsZero())
}

func TestTokenAmount(t *testing.T) {
	assert.Equal(t, "1.123456789", TokenAmount(d("1.1234567899")).String())
	assert.Equal(t, "5", TokenAmount(d("5")).String())
}
