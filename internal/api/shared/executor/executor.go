package executor

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/api/shared/dto"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

const DEFAULT_POOL_SIZE = 3

// Executor serves the wallet scoped reads that are not owned by an engine
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetAllAssets returns the heroes, farmers and items of a wallet
	GetAllAssets(ctx context.Context, wallet string) (*dto.AssetsResponse, error)

	// GetHeroes returns the heroes of a wallet
	GetHeroes(ctx context.Context, wallet string) ([]schema.Hero, error)

	// GetFarmers returns the farmers of a wallet
	GetFarmers(ctx context.Context, wallet string) ([]schema.Farmer, error)

	// GetItems returns the items of a wallet
	GetItems(ctx context.Context, wallet string) ([]schema.Item, error)

	// GetWalletBalance returns the WLOS and native balances of a wallet
	GetWalletBalance(ctx context.Context, wallet string) (*dto.BalanceResponse, error)
}

type executor struct {
	store  store.Store
	ledger ledger.Ledger
	pool   pond.Pool
}

// NewExecutor creates an executor. Concurrent reads of one request share a pool of poolSize workers.
func NewExecutor(st store.Store, l ledger.Ledger, poolSize int) Executor {
	if poolSize <= 0 {
		poolSize = DEFAULT_POOL_SIZE
	}
	return &executor{
		store:  st,
		ledger: l,
		pool:   pond.NewPool(poolSize),
	}
}

func (e *executor) GetAllAssets(ctx context.Context, wallet string) (*dto.AssetsResponse, error) {
	if wallet == "" {
		return nil, domain.NewValidationError("wallet address is required")
	}

	var heroes []schema.Hero
	var farmers []schema.Farmer
	var items []schema.Item

	group := e.pool.NewGroup()
	group.SubmitErr(func() error {
		var err error
		heroes, err = e.GetHeroes(ctx, wallet)
		return err
	})
	group.SubmitErr(func() error {
		var err error
		farmers, err = e.GetFarmers(ctx, wallet)
		return err
	})
	group.SubmitErr(func() error {
		var err error
		items, err = e.GetItems(ctx, wallet)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &dto.AssetsResponse{
		Wallet:  wallet,
		Heroes:  nonNil(heroes),
		Farmers: nonNil(farmers),
		Items:   nonNil(items),
	}, nil
}

func (e *executor) GetHeroes(ctx context.Context, wallet string) ([]schema.Hero, error) {
	heroes, err := e.store.GetHeroesByOwner(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to get heroes: %w", err)
	}
	return nonNil(heroes), nil
}

func (e *executor) GetFarmers(ctx context.Context, wallet string) ([]schema.Farmer, error) {
	farmers, err := e.store.GetFarmersByOwner(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to get farmers: %w", err)
	}
	return nonNil(farmers), nil
}

func (e *executor) GetItems(ctx context.Context, wallet string) ([]schema.Item, error) {
	items, err := e.store.GetItemsByOwner(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return nonNil(items), nil
}

// GetWalletBalance fails when the native balance cannot be read. A WLOS read failure
// reports a zero balance with a warning.
func (e *executor) GetWalletBalance(ctx context.Context, wallet string) (*dto.BalanceResponse, error) {
	if wallet == "" {
		return nil, domain.NewValidationError("wallet address is required")
	}

	var native, wlos decimal.Decimal
	var wlosErr error

	group := e.pool.NewGroup()
	group.SubmitErr(func() error {
		var err error
		native, err = e.ledger.GetNativeBalance(ctx, wallet)
		return err
	})
	group.Submit(func() {
		wlos, wlosErr = e.ledger.GetBalance(ctx, wallet)
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	resp := &dto.BalanceResponse{
		Wallet: wallet,
		Native: native,
		WLOS:   wlos,
	}
	if wlosErr != nil {
		logger.WarnCtx(ctx, "Could not fetch WLOS balance, reporting zero",
			zap.String("wallet", wallet),
			zap.Error(wlosErr),
		)
		resp.WLOS = decimal.Zero
		resp.Warn(0, "WLOS balance unavailable: %v", wlosErr)
	}
	return resp, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
