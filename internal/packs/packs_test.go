package packs_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/mocks"
	"github.com/feral-file/ff-economy/internal/packs"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

const (
	testWallet   = "0x1111111111111111111111111111111111111111"
	otherWallet  = "0x2222222222222222222222222222222222222222"
	testTreasury = "0x9999999999999999999999999999999999999999"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testPackMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	ledger   *mocks.MockLedger
	recorder *mocks.MockRecorder
	clock    *mocks.MockClock
	random   *mocks.MockRandom
	service  packs.Service
}

func setupTestService(t *testing.T) *testPackMocks {
	ctrl := gomock.NewController(t)

	tm := &testPackMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		ledger:   mocks.NewMockLedger(ctrl),
		recorder: mocks.NewMockRecorder(ctrl),
		clock:    mocks.NewMockClock(ctrl),
		random:   mocks.NewMockRandom(ctrl),
	}
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.ledger.EXPECT().TreasuryAddress().Return(testTreasury).AnyTimes()
	tm.service = packs.NewService(packs.Config{CacheTTL: time.Minute}, tm.store, tm.ledger, tm.recorder, tm.clock, tm.random, packs.DefaultCatalog())

	return tm
}

func tearDownTestService(mocks *testPackMocks) {
	mocks.ctrl.Finish()
}

func heroPackType(price int64) *schema.PackType {
	return &schema.PackType{
		ID:              1,
		PackKey:         "starter-hero-pack",
		Name:            "Starter Hero Pack",
		Price:           decimal.NewFromInt(price),
		AssetType:       domain.AssetTypeHero,
		CommonChance:    decimal.RequireFromString("0.6"),
		RareChance:      decimal.RequireFromString("0.25"),
		EpicChance:      decimal.RequireFromString("0.1"),
		LegendaryChance: decimal.RequireFromString("0.05"),
	}
}

func TestRollRarity(t *testing.T) {
	pt := heroPackType(0)

	tests := []struct {
		roll float64
		want domain.Rarity
	}{
		{0, domain.RarityLegendary},
		{0.049, domain.RarityLegendary},
		{0.05, domain.RarityEpic},
		{0.149, domain.RarityEpic},
		{0.15, domain.RarityRare},
		{0.399, domain.RarityRare},
		{0.4, domain.RarityCommon},
		{0.999, domain.RarityCommon},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, packs.RollRarity(tt.roll, pt), "roll %v", tt.roll)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := packs.DefaultCatalog()
	for _, r := range []domain.Rarity{domain.RarityCommon, domain.RarityRare, domain.RarityEpic, domain.RarityLegendary} {
		assert.NotEmpty(t, c.Heroes[r], "heroes %s", r)
		assert.NotEmpty(t, c.Farmers[r], "farmers %s", r)
	}
}

func TestService_GetPackTypes_Cached(t *testing.T) {
	mocks := setupTestService(t)
	defer tearDownTestService(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().GetPackTypes(ctx, domain.AssetTypeHero).Return([]schema.PackType{*heroPackType(100)}, nil).Times(2)

	gomock.InOrder(
		mocks.clock.EXPECT().Since(testNow).Return(30*time.Second),
		mocks.clock.EXPECT().Since(testNow).Return(2*time.Minute),
	)

	for i := 0; i < 3; i++ {
		types, err := mocks.service.GetPackTypes(ctx, domain.AssetTypeHero)
		require.NoError(t, err)
		require.Len(t, types, 1)
		assert.Equal(t, "starter-hero-pack", types[0].ID)
		assert.True(t, types[0].RarityChances.Legendary.Equal(decimal.RequireFromString("0.05")))
	}

	_, err := mocks.service.GetPackTypes(ctx, domain.AssetTypeItem)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestService_BuyPack(t *testing.T) {
	mocks := setupTestService(t)
	defer tearDownTestService(mocks)

	ctx := context.Background()
	price := decimal.NewFromInt(100)

	gomock.InOrder(
		mocks.store.EXPECT().GetPackTypeByKey(ctx, "starter-hero-pack").Return(heroPackType(100), nil),
		mocks.ledger.EXPECT().GetBalance(ctx, testWallet).Return(decimal.NewFromInt(100), nil),
		mocks.ledger.EXPECT().Transfer(ctx, testWallet, testTreasury, price).
			Return(ledger.Result{Success: true, Reference: "0xpack"}),
		mocks.store.EXPECT().CreatePack(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, pack *schema.Pack) error {
				assert.Equal(t, testWallet, pack.OwnerWallet)
				assert.Equal(t, int64(1), pack.PackTypeID)
				assert.False(t, pack.Opened)
				pack.ID = 33
				return nil
			}),
		mocks.recorder.EXPECT().RecordPackPurchase(ctx, testWallet, "Starter Hero Pack", price, "0xpack", gomock.Any()).
			Return(&schema.Transaction{ID: "tx-1"}, nil),
	)

	result, err := mocks.service.BuyPack(ctx, testWallet, "starter-hero-pack", "")
	require.NoError(t, err)
	assert.False(t, result.IsPartial())
	assert.Equal(t, int64(33), result.Pack.ID)
	assert.Equal(t, "starter-hero-pack", result.Pack.PackID)
	assert.Equal(t, "0xpack", result.Hash)
}

func TestService_BuyPack_Free(t *testing.T) {
	mocks := setupTestService(t)
	defer tearDownTestService(mocks)

	ctx := context.Background()

	mocks.store.EXPECT().GetPackTypeByKey(ctx, "starter-hero-pack").Return(heroPackType(0), nil)
	mocks.store.EXPECT().CreatePack(ctx, gomock.Any()).Return(nil)
	mocks.recorder.EXPECT().RecordPackPurchase(ctx, testWallet, "Starter Hero Pack", gomock.Any(), "", gomock.Any()).
		Return(nil, errors.New("db down"))

	result, err := mocks.service.BuyPack(ctx, testWallet, "starter-hero-pack", domain.AssetTypeHero)
	require.NoError(t, err)
	assert.True(t, result.IsPartial())
}

func TestService_BuyPack_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("asset type mismatch", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().GetPackTypeByKey(ctx, "starter-hero-pack").Return(heroPackType(100), nil)

		_, err := mocks.service.BuyPack(ctx, testWallet, "starter-hero-pack", domain.AssetTypeFarmer)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().GetPackTypeByKey(ctx, "starter-hero-pack").Return(heroPackType(100), nil)
		mocks.ledger.EXPECT().GetBalance(ctx, testWallet).Return(decimal.NewFromInt(99), nil)

		_, err := mocks.service.BuyPack(ctx, testWallet, "starter-hero-pack", "")
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("insert failure after payment is journaled", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		cause := errors.New("db down")
		mocks.store.EXPECT().GetPackTypeByKey(ctx, "starter-hero-pack").Return(heroPackType(100), nil)
		mocks.ledger.EXPECT().GetBalance(ctx, testWallet).Return(decimal.NewFromInt(100), nil)
		mocks.ledger.EXPECT().Transfer(ctx, testWallet, testTreasury, gomock.Any()).
			Return(ledger.Result{Success: true, Reference: "0xpack"})
		mocks.store.EXPECT().CreatePack(ctx, gomock.Any()).Return(cause)
		mocks.recorder.EXPECT().ReportInconsistency(ctx, domain.InconsistencyPackPurchase, testWallet, "0xpack", gomock.Any(), cause).
			Return(int64(2))

		_, err := mocks.service.BuyPack(ctx, testWallet, "starter-hero-pack", "")
		var je *domain.JournaledError
		require.ErrorAs(t, err, &je)
		assert.Equal(t, int64(2), je.InconsistencyID)
	})
}

func TestService_GetPackInventory(t *testing.T) {
	mocks := setupTestService(t)
	defer tearDownTestService(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().GetPacksByOwner(ctx, testWallet, domain.AssetType("")).Return([]schema.Pack{
		{ID: 1, PackKey: "starter-hero-pack", OwnerWallet: testWallet, PackType: heroPackType(100)},
	}, nil)

	views, err := mocks.service.GetPackInventory(ctx, testWallet, "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Starter Hero Pack", views[0].Name)
	assert.Equal(t, domain.AssetTypeHero, views[0].AssetType)
}

func TestService_OpenPack(t *testing.T) {
	mocks := setupTestService(t)
	defer tearDownTestService(mocks)

	ctx := context.Background()
	pack := &schema.Pack{ID: 5, PackKey: "starter-hero-pack", OwnerWallet: testWallet, PackType: heroPackType(100)}

	mocks.store.EXPECT().GetPackByID(ctx, int64(5)).Return(pack, nil)
	gomock.InOrder(
		// two assets
		mocks.random.EXPECT().IntN(3).Return(1),
		// legendary, second template
		mocks.random.EXPECT().Float64().Return(0.01),
		mocks.random.EXPECT().IntN(3).Return(1),
		// common, first template
		mocks.random.EXPECT().Float64().Return(0.9),
		mocks.random.EXPECT().IntN(2).Return(0),
	)
	mocks.store.EXPECT().OpenPack(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input store.OpenPackInput) error {
			assert.Equal(t, int64(5), input.PackID)
			assert.Equal(t, testWallet, input.OwnerWallet)
			assert.Equal(t, testNow, input.OpenedAt)
			assert.Len(t, input.Heroes, 2)
			assert.Empty(t, input.Farmers)
			return nil
		})

	result, err := mocks.service.OpenPack(ctx, testWallet, 5)
	require.NoError(t, err)
	require.Len(t, result.Contents.Heroes, 2)

	legendary := result.Contents.Heroes[0]
	assert.Equal(t, "thunder-lord", legendary.HeroKey)
	assert.Equal(t, domain.RarityLegendary, legendary.Rarity)
	assert.Equal(t, 1, legendary.Level)
	assert.True(t, legendary.Power.Equal(decimal.NewFromInt(1900)))
	assert.Equal(t, testWallet, legendary.OwnerWallet)

	common := result.Contents.Heroes[1]
	assert.Equal(t, "hunter-ranger", common.HeroKey)
	assert.Equal(t, domain.RarityCommon, common.Rarity)
}

func TestService_OpenPack_Farmers(t *testing.T) {
	mocks := setupTestService(t)
	defer tearDownTestService(mocks)

	ctx := context.Background()
	pt := heroPackType(0)
	pt.AssetType = domain.AssetTypeFarmer
	pack := &schema.Pack{ID: 5, OwnerWallet: testWallet, PackType: pt}

	mocks.store.EXPECT().GetPackByID(ctx, int64(5)).Return(pack, nil)
	gomock.InOrder(
		mocks.random.EXPECT().IntN(3).Return(0),
		mocks.random.EXPECT().Float64().Return(0.2),
		mocks.random.EXPECT().IntN(1).Return(0),
	)
	mocks.store.EXPECT().OpenPack(ctx, gomock.Any()).Return(nil)

	result, err := mocks.service.OpenPack(ctx, testWallet, 5)
	require.NoError(t, err)
	require.Len(t, result.Contents.Farmers, 1)
	f := result.Contents.Farmers[0]
	assert.Equal(t, "quantum-collector", f.FarmerKey)
	assert.Equal(t, domain.RarityRare, f.Rarity)
	assert.Equal(t, testNow, f.LastHarvested)
}

func TestService_OpenPack_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("other wallet", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().GetPackByID(ctx, int64(5)).Return(&schema.Pack{ID: 5, OwnerWallet: otherWallet}, nil)

		_, err := mocks.service.OpenPack(ctx, testWallet, 5)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("already opened", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().GetPackByID(ctx, int64(5)).Return(&schema.Pack{ID: 5, OwnerWallet: testWallet, Opened: true}, nil)

		_, err := mocks.service.OpenPack(ctx, testWallet, 5)
		assert.ErrorIs(t, err, domain.ErrPackAlreadyOpened)
	})

	t.Run("concurrent open", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().GetPackByID(ctx, int64(5)).Return(&schema.Pack{ID: 5, OwnerWallet: testWallet, PackType: heroPackType(0)}, nil)
		mocks.random.EXPECT().IntN(gomock.Any()).Return(0).AnyTimes()
		mocks.random.EXPECT().Float64().Return(0.9).AnyTimes()
		mocks.store.EXPECT().OpenPack(ctx, gomock.Any()).Return(domain.ErrPackAlreadyOpened)

		_, err := mocks.service.OpenPack(ctx, testWallet, 5)
		assert.ErrorIs(t, err, domain.ErrPackAlreadyOpened)
	})
}
