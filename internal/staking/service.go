package staking

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/accrual"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/metrics"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

// GetStakingPools returns the pools ordered by lock period
func (s *service) GetStakingPools(ctx context.Context) ([]PoolView, error) {
	summaries, err := s.store.GetStakingPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get staking pools: %w", err)
	}

	pools := make([]PoolView, 0, len(summaries))
	for _, summary := range summaries {
		pools = append(pools, newPoolView(summary.Pool, summary.TotalStaked))
	}
	return pools, nil
}

// GetStakingInfo returns the active positions of a wallet with their accrual
func (s *service) GetStakingInfo(ctx context.Context, wallet string) (*Info, error) {
	positions, err := s.store.GetStakingPositions(ctx, wallet, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get staking positions: %w", err)
	}

	now := s.clock.Now().UTC()
	info := &Info{
		Wallet:           wallet,
		TotalStaked:      decimal.Zero,
		TotalRewards:     decimal.Zero,
		TotalBattlePower: decimal.Zero,
		Positions:        make([]PositionView, 0, len(positions)),
	}

	for i := range positions {
		position := &positions[i]
		pool, err := s.poolOf(ctx, position)
		if err != nil {
			return nil, err
		}

		view := newPositionView(position, pool, now)
		info.Positions = append(info.Positions, view)
		info.TotalStaked = info.TotalStaked.Add(view.Amount)
		info.TotalRewards = info.TotalRewards.Add(view.PendingRewards)
		info.TotalBattlePower = info.TotalBattlePower.Add(view.BattlePowerBoost.Value)
	}

	return info, nil
}

// poolOf returns the joined pool of a position, loading it when the read did not join it
func (s *service) poolOf(ctx context.Context, position *schema.StakingPosition) (*schema.StakingPool, error) {
	if position.Pool != nil {
		return position.Pool, nil
	}
	pool, err := s.store.GetStakingPoolByID(ctx, position.PoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staking pool: %w", err)
	}
	if pool == nil {
		return nil, domain.NewNotFoundError("staking pool", position.PoolID)
	}
	return pool, nil
}

// activePosition loads an active position of the wallet with its pool
func (s *service) activePosition(ctx context.Context, wallet string, positionID int64) (*schema.StakingPosition, *schema.StakingPool, error) {
	position, err := s.store.GetStakingPositionByID(ctx, positionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get staking position: %w", err)
	}
	if position == nil || !strings.EqualFold(position.WalletAddress, wallet) {
		return nil, nil, domain.NewNotFoundError("staking position", positionID)
	}
	if !position.IsActive {
		return nil, nil, domain.ErrPositionInactive
	}

	pool, err := s.poolOf(ctx, position)
	if err != nil {
		return nil, nil, err
	}
	return position, pool, nil
}

// StakeTokens locks an amount of the wallet in a pool.
// The position is inserted only after the ledger accepted the transfer.
func (s *service) StakeTokens(ctx context.Context, wallet string, poolID int64, amount decimal.Decimal) (*StakeResult, error) {
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("amount must be greater than 0")
	}
	if !amount.Equal(accrual.TokenAmount(amount)) {
		return nil, domain.NewValidationError("amount supports at most %d decimals", domain.TOKEN_DECIMALS)
	}

	pool, err := s.store.GetStakingPoolByID(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staking pool: %w", err)
	}
	if pool == nil {
		return nil, domain.NewNotFoundError("staking pool", poolID)
	}
	if amount.LessThan(pool.MinStake) {
		return nil, domain.ErrBelowMinimumStake.WithMessage("minimum stake for %s is %s %s", pool.Name, pool.MinStake, domain.TOKEN_SYMBOL)
	}

	balance, err := s.ledger.GetBalance(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(amount) {
		return nil, domain.ErrInsufficientBalance.WithMessage("not enough %s for staking: need %s, have %s", domain.TOKEN_SYMBOL, amount, balance)
	}

	res := s.ledger.Transfer(ctx, wallet, s.ledger.TreasuryAddress(), amount)
	if !res.Success {
		return nil, res.Err
	}

	now := s.clock.Now().UTC()
	position := &schema.StakingPosition{
		WalletAddress: wallet,
		PoolID:        pool.ID,
		Amount:        amount,
		StartTime:     now,
		EndTime:       now.AddDate(0, 0, pool.LockPeriodDays),
		LastClaimTime: now,
		IsActive:      true,
		Version:       1,
	}
	if err := s.store.CreateStakingPosition(ctx, position); err != nil {
		id := s.recorder.ReportInconsistency(ctx, domain.InconsistencyStakingPosition, wallet, res.Reference, position, err)
		return nil, &domain.JournaledError{InconsistencyID: id, Reference: res.Reference, Err: err}
	}

	result := &StakeResult{
		Position:        position,
		PoolName:        pool.Name,
		APY:             pool.APY,
		ExpectedRewards: accrual.TokenAmount(accrual.ExpectedStakingReward(amount, pool.APY, pool.LockPeriodDays)),
		Hash:            res.Reference,
	}

	tx, err := s.recorder.RecordStaking(ctx, wallet, pool.Name, amount, res.Reference, recorder.Details{
		"poolId":     pool.ID,
		"stakingId":  position.ID,
		"startTime":  position.StartTime,
		"endTime":    position.EndTime,
		"lockPeriod": pool.LockPeriodDays,
		"apy":        pool.APY.String(),
	})
	if err != nil {
		result.WarnErr("failed to record stake", err)
	}
	result.Transaction = tx

	logger.InfoCtx(ctx, "Tokens staked",
		zap.String("wallet", wallet),
		zap.Int64("poolID", pool.ID),
		zap.Int64("positionID", position.ID),
		zap.String("amount", amount.String()))

	return result, nil
}

// UnstakeTokens returns the principal of a position, less any early fee, and mints its rewards.
//
// The position is deactivated before any value moves, so a concurrent unstake of the same
// position fails with a stale write. The principal return is the primary step; a rejected
// transfer reactivates the position. The reward mint follows and its failure is journaled
// without failing the call.
func (s *service) UnstakeTokens(ctx context.Context, wallet string, positionID int64) (*UnstakeResult, error) {
	position, pool, err := s.activePosition(ctx, wallet, positionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	early := now.Before(position.EndTime)
	fee := EarlyUnstakeFee(position.Amount, pool.EarlyUnstakeFee, early)
	received := position.Amount.Sub(fee)
	rewards := pending(position, pool, now)

	result := &UnstakeResult{
		PositionID:     position.ID,
		OriginalAmount: position.Amount,
		Fee:            fee,
		FeePercentage:  decimal.Zero,
		ReceivedAmount: received,
		Rewards:        rewards,
		IsEarlyUnstake: early,
		Outcome:        ledger.Outcome{Primary: ledger.Result{Success: true}},
	}
	if early {
		result.FeePercentage = pool.EarlyUnstakeFee
	}

	if err := s.store.DeactivateStakingPosition(ctx, position.ID, position.Version); err != nil {
		return nil, err
	}

	if received.IsPositive() {
		res := s.ledger.Transfer(ctx, s.ledger.TreasuryAddress(), wallet, received)
		result.Outcome.Primary = res
		if !res.Success {
			reserved := position.Version + 1
			return nil, recorder.Unwind(ctx, s.recorder, res, recorder.Reservation{
				Operation: "unstake",
				Amount:    received,
				Release: func(ctx context.Context) error {
					return s.store.ReactivateStakingPosition(ctx, position.ID, reserved)
				},
				Payload: domain.ReservationReleasePayload{
					Target:          domain.ReservationStakingPosition,
					Wallet:          wallet,
					PositionID:      position.ID,
					ReservedVersion: reserved,
					ReservedAt:      now,
				},
			})
		}
	}
	hash := result.Outcome.Primary.Reference

	tx, err := s.recorder.RecordUnstaking(ctx, wallet, pool.Name, received, fee, hash, recorder.Details{
		"poolId":         pool.ID,
		"stakingId":      position.ID,
		"isEarlyUnstake": early,
		"originalAmount": position.Amount.String(),
		"feePercentage":  result.FeePercentage.String(),
	})
	if err != nil {
		result.WarnErr("failed to record unstake", err)
	}
	result.Transaction = tx

	if rewards.IsPositive() {
		s.mintUnstakeRewards(ctx, wallet, position, pool, rewards, result)
	}

	logger.InfoCtx(ctx, "Tokens unstaked",
		zap.String("wallet", wallet),
		zap.Int64("positionID", position.ID),
		zap.String("received", received.String()),
		zap.String("fee", fee.String()),
		zap.Bool("partial", result.IsPartial()))

	return result, nil
}

// mintUnstakeRewards mints the final rewards of a deactivated position into the result's
// secondary outcome
func (s *service) mintUnstakeRewards(ctx context.Context, wallet string, position *schema.StakingPosition, pool *schema.StakingPool, rewards decimal.Decimal, result *UnstakeResult) {
	mint := s.ledger.Mint(ctx, wallet, rewards)
	result.Outcome.Secondary = &mint
	if !mint.Success {
		id := s.recorder.ReportInconsistency(ctx, domain.InconsistencyUnstakeRewardMint, wallet, fmt.Sprint(position.ID), domain.UnstakeRewardMintPayload{
			Wallet:     wallet,
			PositionID: position.ID,
			Amount:     rewards.String(),
		}, mint.Err)
		result.Warn(id, "failed to mint rewards: %v", mint.Err)
		return
	}
	metrics.AddRewardsMinted("staking", rewards)

	tx, err := s.recorder.RecordReward(ctx, domain.TransactionTypeStakingReward, wallet, rewards, mint.Reference, recorder.Details{
		"poolId":    pool.ID,
		"stakingId": position.ID,
		"poolName":  pool.Name,
	})
	if err != nil {
		result.WarnErr("failed to record rewards", err)
	}
	result.RewardTransaction = tx
}

// ClaimRewards moves the claim checkpoint of a position and mints its pending rewards.
// The checkpoint moves first so a concurrent claim of the same window fails with a stale
// write; a rejected mint moves it back.
func (s *service) ClaimRewards(ctx context.Context, wallet string, positionID int64) (*ClaimResult, error) {
	position, pool, err := s.activePosition(ctx, wallet, positionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	rewards := pending(position, pool, now)
	if !rewards.IsPositive() {
		return nil, domain.ErrNoRewardsAvailable
	}

	err = s.store.AdvanceClaimCheckpoint(ctx, store.AdvanceClaimInput{
		PositionID:      position.ID,
		ExpectedVersion: position.Version,
		ClaimedAt:       now,
	})
	if err != nil {
		return nil, err
	}

	mint := s.ledger.Mint(ctx, wallet, rewards)
	if !mint.Success {
		logger.WarnCtx(ctx, "Failed to mint staking rewards", zap.Int64("positionID", position.ID), zap.Error(mint.Err))
		previous := position.LastClaimTime
		return nil, recorder.Unwind(ctx, s.recorder, mint, recorder.Reservation{
			Operation: "claim",
			Amount:    rewards,
			Release: func(ctx context.Context) error {
				return s.store.RestoreClaimCheckpoint(ctx, position.ID, now, previous)
			},
			Payload: domain.ReservationReleasePayload{
				Target:      domain.ReservationClaimCheckpoint,
				Wallet:      wallet,
				PositionID:  position.ID,
				ReservedAt:  now,
				Checkpoints: []domain.CheckpointRestore{{ID: position.ID, Previous: previous}},
			},
		})
	}
	metrics.AddRewardsMinted("staking", rewards)

	result := &ClaimResult{
		PositionID: position.ID,
		PoolID:     pool.ID,
		PoolName:   pool.Name,
		Rewards:    rewards,
		ClaimedAt:  now,
		Hash:       mint.Reference,
	}

	tx, err := s.recorder.RecordReward(ctx, domain.TransactionTypeStakingReward, wallet, rewards, mint.Reference, recorder.Details{
		"poolId":    pool.ID,
		"stakingId": position.ID,
		"poolName":  pool.Name,
	})
	if err != nil {
		result.WarnErr("failed to record rewards", err)
	}
	result.Transaction = tx

	logger.InfoCtx(ctx, "Staking rewards claimed",
		zap.String("wallet", wallet),
		zap.Int64("positionID", position.ID),
		zap.String("rewards", rewards.String()))

	return result, nil
}
