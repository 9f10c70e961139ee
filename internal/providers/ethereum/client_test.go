package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/mocks"
	"github.com/feral-file/ff-economy/internal/providers/ethereum"
)

const (
	testTreasuryKey  = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
	testTokenAddress = "0x1111111111111111111111111111111111111111"
	testPlayer       = "0x2222222222222222222222222222222222222222"
)

type testLedger struct {
	client   *mocks.MockEthClient
	clock    *mocks.MockClock
	treasury *ethereum.Treasury
	ledger   ledger.Ledger
}

func setupTestLedger(t *testing.T, waitForReceipt bool) *testLedger {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1700000000, 0)).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	treasury, err := ethereum.NewTreasury(testTreasuryKey)
	require.NoError(t, err)

	l, err := ethereum.NewLedger(ethereum.Config{
		ChainID:             1,
		TokenAddress:        testTokenAddress,
		CallTimeout:         5 * time.Second,
		ReceiptPollInterval: time.Millisecond,
		WaitForReceipt:      waitForReceipt,
	}, client, treasury, clock)
	require.NoError(t, err)

	return &testLedger{client: client, clock: clock, treasury: treasury, ledger: l}
}

func (tl *testLedger) expectSubmission(estimateErr error) {
	tl.client.EXPECT().PendingNonceAt(gomock.Any(), tl.treasury.Address).Return(uint64(7), nil)
	tl.client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	if estimateErr != nil {
		tl.client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(0), estimateErr)
		return
	}
	tl.client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(50_000), nil)
}

func TestNewLedger(t *testing.T) {
	treasury, err := ethereum.NewTreasury("0x" + testTreasuryKey)
	require.NoError(t, err)

	_, err = ethereum.NewLedger(ethereum.Config{TokenAddress: "not-an-address"}, nil, treasury, nil)
	assert.EqualError(t, err, "invalid token address: not-an-address")

	_, err = ethereum.NewLedger(ethereum.Config{TokenAddress: testTokenAddress}, nil, nil, nil)
	assert.EqualError(t, err, "treasury credential is required")

	_, err = ethereum.NewTreasury("zz")
	assert.Error(t, err)
}

func TestMint(t *testing.T) {
	tl := setupTestLedger(t, false)
	tl.expectSubmission(nil)

	var sent *types.Transaction
	tl.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			sent = tx
			return nil
		})

	res := tl.ledger.Mint(context.Background(), testPlayer, decimal.NewFromInt(10))
	require.True(t, res.Success, "mint failed: %v", res.Err)
	require.NotNil(t, sent)
	assert.Equal(t, sent.Hash().Hex(), res.Reference)
	assert.Equal(t, uint64(7), sent.Nonce())
	assert.Equal(t, uint64(60_000), sent.Gas())
	assert.Equal(t, common.HexToAddress(testTokenAddress), *sent.To())
}

func TestMint_InvalidAmount(t *testing.T) {
	tl := setupTestLedger(t, false)

	res := tl.ledger.Mint(context.Background(), testPlayer, decimal.Zero)
	assert.False(t, res.Success)
	assert.Equal(t, domain.KindValidation, domain.KindOf(res.Err))
}

func TestTransfer_Reverted(t *testing.T) {
	tl := setupTestLedger(t, false)
	tl.expectSubmission(errors.New("execution reverted: insufficient allowance"))

	res := tl.ledger.Transfer(context.Background(), testPlayer, tl.ledger.TreasuryAddress(), decimal.NewFromInt(5))
	assert.False(t, res.Success)
	assert.Empty(t, res.Reference)
	assert.Equal(t, domain.KindExternalServiceFailure, domain.KindOf(res.Err))
	assert.False(t, domain.IsRetryable(res.Err))
}

func TestTransfer_SendFailsTransiently(t *testing.T) {
	tl := setupTestLedger(t, false)
	tl.expectSubmission(nil)
	tl.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(errors.New("connection reset by peer"))

	res := tl.ledger.Transfer(context.Background(), tl.ledger.TreasuryAddress(), testPlayer, decimal.NewFromInt(5))
	assert.False(t, res.Success)
	assert.True(t, domain.IsRetryable(res.Err))
}

func TestTransfer_WaitsForReceipt(t *testing.T) {
	tl := setupTestLedger(t, true)
	tl.expectSubmission(nil)
	tl.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)

	tick := make(chan time.Time)
	close(tick)
	var ready <-chan time.Time = tick
	tl.clock.EXPECT().After(time.Millisecond).Return(ready)

	gomock.InOrder(
		tl.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, goethereum.NotFound),
		tl.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil),
	)

	res := tl.ledger.Transfer(context.Background(), tl.ledger.TreasuryAddress(), testPlayer, decimal.NewFromInt(5))
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Reference)
}

func TestTransfer_RevertedOnChain(t *testing.T) {
	tl := setupTestLedger(t, true)
	tl.expectSubmission(nil)

	var sent *types.Transaction
	tl.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			sent = tx
			return nil
		})
	tl.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)

	res := tl.ledger.Transfer(context.Background(), tl.ledger.TreasuryAddress(), testPlayer, decimal.NewFromInt(5))
	assert.False(t, res.Success)
	assert.False(t, res.Unsettled(), "a reverted transaction moved no value")
	assert.Empty(t, res.Reference)
	require.NotNil(t, sent)
	assert.Contains(t, res.Err.Error(), "ledger transfer failed")
	assert.Contains(t, res.Err.Error(), sent.Hash().Hex())
}

func TestTransfer_ReceiptUnavailable(t *testing.T) {
	tl := setupTestLedger(t, true)
	tl.expectSubmission(nil)
	tl.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	tl.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc unavailable"))

	res := tl.ledger.Transfer(context.Background(), tl.ledger.TreasuryAddress(), testPlayer, decimal.NewFromInt(5))
	assert.False(t, res.Success)
	assert.True(t, res.Unsettled())
	assert.NotEmpty(t, res.Reference)
}

func TestMint_ConcurrentSubmissionsUseDistinctNonces(t *testing.T) {
	tl := setupTestLedger(t, false)

	// The node reports the same pending nonce until it sees the first submission
	tl.client.EXPECT().PendingNonceAt(gomock.Any(), tl.treasury.Address).Return(uint64(7), nil).Times(2)
	tl.client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil).Times(2)
	tl.client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(50_000), nil).Times(2)

	var (
		mu     sync.Mutex
		nonces []uint64
	)
	tl.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			mu.Lock()
			defer mu.Unlock()
			nonces = append(nonces, tx.Nonce())
			return nil
		}).Times(2)

	var wg sync.WaitGroup
	results := make([]ledger.Result, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tl.ledger.Mint(context.Background(), testPlayer, decimal.NewFromInt(10))
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		require.True(t, res.Success, "mint failed: %v", res.Err)
	}
	assert.ElementsMatch(t, []uint64{7, 8}, nonces)
	assert.NotEqual(t, results[0].Reference, results[1].Reference)
}

func TestMint_ResyncsNonceAfterSendFailure(t *testing.T) {
	tl := setupTestLedger(t, false)

	tl.client.EXPECT().PendingNonceAt(gomock.Any(), tl.treasury.Address).Return(uint64(7), nil).Times(3)
	tl.client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil).Times(3)
	tl.client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(50_000), nil).Times(3)

	var nonces []uint64
	gomock.InOrder(
		tl.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
				nonces = append(nonces, tx.Nonce())
				return nil
			}),
		tl.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
				nonces = append(nonces, tx.Nonce())
				return errors.New("nonce too low")
			}),
		tl.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
				nonces = append(nonces, tx.Nonce())
				return nil
			}),
	)

	ctx := context.Background()
	assert.True(t, tl.ledger.Mint(ctx, testPlayer, decimal.NewFromInt(1)).Success)
	assert.False(t, tl.ledger.Mint(ctx, testPlayer, decimal.NewFromInt(1)).Success)
	assert.True(t, tl.ledger.Mint(ctx, testPlayer, decimal.NewFromInt(1)).Success)

	assert.Equal(t, []uint64{7, 8, 7}, nonces)
}

func TestGetBalance(t *testing.T) {
	tl := setupTestLedger(t, false)

	units := new(big.Int).Mul(big.NewInt(1250), big.NewInt(1_000_000_000))
	tl.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(common.LeftPadBytes(units.Bytes(), 32), nil)

	balance, err := tl.ledger.GetBalance(context.Background(), testPlayer)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1250).Equal(balance), balance.String())
}

func TestGetBalance_InvalidWallet(t *testing.T) {
	tl := setupTestLedger(t, false)

	_, err := tl.ledger.GetBalance(context.Background(), "wallet")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestGetNativeBalance_RetriesReads(t *testing.T) {
	tl := setupTestLedger(t, false)
	tl.client.EXPECT().BalanceAt(gomock.Any(), common.HexToAddress(testPlayer), nil).
		Return(nil, errors.New("rpc unavailable")).Times(3)

	_, err := tl.ledger.GetNativeBalance(context.Background(), testPlayer)
	assert.Equal(t, domain.KindExternalServiceFailure, domain.KindOf(err))
	assert.True(t, domain.IsRetryable(err))
}

func TestGetReceipt(t *testing.T) {
	hash := "0x" + common.Bytes2Hex(make([]byte, 32))

	t.Run("pending", func(t *testing.T) {
		tl := setupTestLedger(t, false)
		tl.client.EXPECT().TransactionReceipt(gomock.Any(), common.HexToHash(hash)).Return(nil, goethereum.NotFound)

		receipt, err := tl.ledger.GetReceipt(context.Background(), hash)
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusPending, receipt.Status)
		assert.Nil(t, receipt.Block)
	})

	t.Run("confirmed", func(t *testing.T) {
		tl := setupTestLedger(t, false)
		tl.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).
			Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}, nil)
		tl.client.EXPECT().HeaderByNumber(gomock.Any(), nil).Return(&types.Header{Number: big.NewInt(111)}, nil)

		receipt, err := tl.ledger.GetReceipt(context.Background(), hash)
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusConfirmed, receipt.Status)
		require.NotNil(t, receipt.Block)
		assert.Equal(t, uint64(100), *receipt.Block)
		assert.Equal(t, uint64(12), receipt.Confirmations)
	})

	t.Run("failed", func(t *testing.T) {
		tl := setupTestLedger(t, false)
		tl.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).
			Return(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(100)}, nil)

		receipt, err := tl.ledger.GetReceipt(context.Background(), hash)
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusFailed, receipt.Status)
	})
}
