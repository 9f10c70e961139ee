// Package farming reports farmer yields and harvests their accrued rewards.
package farming

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/accrual"
	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/leveling"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/metrics"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

// FarmerView is a farmer with its current accrual
type FarmerView struct {
	schema.Farmer
	YieldPerHour  decimal.Decimal `json:"yieldPerHour"`
	PendingReward decimal.Decimal `json:"pendingReward"`
	Locked        bool            `json:"locked"`
}

// FarmersOverview lists the farmers of a wallet with totals over the harvestable ones
type FarmersOverview struct {
	Farmers           []FarmerView    `json:"farmers"`
	TotalYieldPerHour decimal.Decimal `json:"totalYieldPerHour"`
	TotalPending      decimal.Decimal `json:"totalPending"`
}

// HarvestResult is the outcome of a harvest
type HarvestResult struct {
	domain.Partial
	Amount           decimal.Decimal     `json:"amount"`
	FarmersHarvested int                 `json:"farmersHarvested"`
	HarvestedAt      time.Time           `json:"harvestedAt"`
	Hash             string              `json:"hash,omitempty"`
	Transaction      *schema.Transaction `json:"transaction,omitempty"`
}

// Service exposes the farming operations of a wallet
//
//go:generate mockgen -source=farming.go -destination=../mocks/farming.go -package=mocks -mock_names=Service=MockFarmingService
type Service interface {
	// GetFarmers returns the farmers of a wallet with their yield and pending reward
	GetFarmers(ctx context.Context, wallet string) (*FarmersOverview, error)

	// HarvestAll mints the pending rewards of every unlocked farmer in one ledger call
	HarvestAll(ctx context.Context, wallet string) (*HarvestResult, error)

	// LevelUpFarmer raises a farmer one level
	LevelUpFarmer(ctx context.Context, wallet string, farmerID int64) (*leveling.FarmerLevelUpResult, error)

	// MergeLevelUp merges two same level farmers into the given one
	MergeLevelUp(ctx context.Context, wallet string, farmerID int64) (*leveling.MergeResult, error)
}

type service struct {
	store    store.Store
	ledger   ledger.Ledger
	recorder recorder.Recorder
	leveling leveling.Engine
	clock    adapter.Clock
}

// NewService creates a farming service
func NewService(st store.Store, l ledger.Ledger, rec recorder.Recorder, lv leveling.Engine, clock adapter.Clock) Service {
	return &service{
		store:    st,
		ledger:   l,
		recorder: rec,
		leveling: lv,
		clock:    clock,
	}
}

// GetFarmers returns the farmers of a wallet. Locked farmers report their accrual
// but are left out of the totals.
func (s *service) GetFarmers(ctx context.Context, wallet string) (*FarmersOverview, error) {
	farmers, err := s.store.GetFarmersByOwner(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to get farmers: %w", err)
	}

	now := s.clock.Now()
	overview := &FarmersOverview{
		Farmers:           make([]FarmerView, 0, len(farmers)),
		TotalYieldPerHour: decimal.Zero,
		TotalPending:      decimal.Zero,
	}

	for _, f := range farmers {
		view := FarmerView{
			Farmer:        f,
			YieldPerHour:  accrual.FarmerYield(f.BaseYieldPerHour, f.Level),
			PendingReward: accrual.TokenAmount(accrual.FarmerPending(f.BaseYieldPerHour, f.Level, f.LastHarvested, now)),
			Locked:        f.Status != domain.AssetStatusActive,
		}
		if !view.Locked {
			overview.TotalYieldPerHour = overview.TotalYieldPerHour.Add(view.YieldPerHour)
			overview.TotalPending = overview.TotalPending.Add(view.PendingReward)
		}
		overview.Farmers = append(overview.Farmers, view)
	}

	return overview, nil
}

// HarvestAll advances the checkpoints of the active farmers and mints the reward of those it
// moved. Checkpoints are pinned to the versions read, so a concurrent harvest or level-up
// drops the farmer from this batch. A rejected mint moves the checkpoints back.
func (s *service) HarvestAll(ctx context.Context, wallet string) (*HarvestResult, error) {
	farmers, err := s.store.GetFarmersByOwner(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to get farmers: %w", err)
	}

	now := s.clock.Now().UTC()

	read := make(map[int64]schema.Farmer, len(farmers))
	var states []accrual.FarmerState
	var checkpoints []store.FarmerCheckpoint
	for _, f := range farmers {
		if f.Status != domain.AssetStatusActive {
			continue
		}
		read[f.ID] = f
		states = append(states, farmerState(f))
		checkpoints = append(checkpoints, store.FarmerCheckpoint{ID: f.ID, Version: f.Version})
	}

	if !accrual.TokenAmount(accrual.BatchTotal(states, now)).IsPositive() {
		return nil, domain.ErrNoRewardsAvailable
	}

	ids, err := s.store.AdvanceHarvestCheckpoints(ctx, wallet, checkpoints, now)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, domain.ErrStaleWrite.WithMessage("farmers changed during harvest")
	}

	states = states[:0]
	restores := make([]domain.CheckpointRestore, 0, len(ids))
	for _, id := range ids {
		f := read[id]
		states = append(states, farmerState(f))
		restores = append(restores, domain.CheckpointRestore{ID: id, Previous: f.LastHarvested})
	}
	total := accrual.TokenAmount(accrual.BatchTotal(states, now))

	reservation := recorder.Reservation{
		Operation: "harvest",
		Amount:    total,
		Release: func(ctx context.Context) error {
			return s.store.RestoreHarvestCheckpoints(ctx, wallet, now, restores)
		},
		Payload: domain.ReservationReleasePayload{
			Target:      domain.ReservationHarvestCheckpoints,
			Wallet:      wallet,
			ReservedAt:  now,
			Checkpoints: restores,
		},
	}

	if !total.IsPositive() {
		return nil, recorder.Unwind(ctx, s.recorder, ledger.Failed(domain.ErrNoRewardsAvailable), reservation)
	}

	res := s.ledger.Mint(ctx, wallet, total)
	if !res.Success {
		logger.WarnCtx(ctx, "Harvest mint failed",
			zap.String("wallet", wallet),
			zap.String("amount", total.String()),
			zap.Error(res.Err))
		return nil, recorder.Unwind(ctx, s.recorder, res, reservation)
	}

	result := &HarvestResult{
		Amount:           total,
		FarmersHarvested: len(ids),
		HarvestedAt:      now,
		Hash:             res.Reference,
	}

	tx, err := s.recorder.RecordReward(ctx, domain.TransactionTypeHarvestReward, wallet, total, res.Reference, recorder.Details{
		"farmerIds":   ids,
		"farmerCount": len(ids),
		"harvestedAt": now,
	})
	if err != nil {
		result.WarnErr("failed to record harvest", err)
	}
	result.Transaction = tx

	metrics.AddRewardsMinted("harvest", total)
	logger.InfoCtx(ctx, "Harvested farmers",
		zap.String("wallet", wallet),
		zap.Int("farmers", len(ids)),
		zap.String("amount", total.String()),
		zap.String("hash", res.Reference))

	return result, nil
}

func farmerState(f schema.Farmer) accrual.FarmerState {
	return accrual.FarmerState{
		BaseYieldPerHour: f.BaseYieldPerHour,
		Level:            f.Level,
		LastHarvested:    f.LastHarvested,
	}
}

// LevelUpFarmer raises a farmer one level
func (s *service) LevelUpFarmer(ctx context.Context, wallet string, farmerID int64) (*leveling.FarmerLevelUpResult, error) {
	return s.leveling.LevelUpFarmer(ctx, wallet, farmerID)
}

// MergeLevelUp merges two same level farmers into the given one
func (s *service) MergeLevelUp(ctx context.Context, wallet string, farmerID int64) (*leveling.MergeResult, error) {
	return s.leveling.MergeLevelUp(ctx, wallet, farmerID)
}
