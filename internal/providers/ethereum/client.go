package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/metrics"
)

// erc20ABI covers the ERC-20 calls used by the ledger plus an owner only mint
const erc20ABI = `[
{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"name":"transferFrom","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"name":"mint","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const (
	DEFAULT_CALL_TIMEOUT    = 30 * time.Second
	DEFAULT_RECEIPT_POLL    = 2 * time.Second
	DEFAULT_READ_MAX_RETRY  = 2
	DEFAULT_GAS_LIMIT_SLACK = 20 // percent added on top of the estimate
)

// Treasury is the credential used to sign ledger transactions
type Treasury struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}

// NewTreasury parses a hex encoded private key into a treasury credential
func NewTreasury(hexKey string) (*Treasury, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse treasury key: %w", err)
	}
	return &Treasury{
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
	}, nil
}

// Config holds the ledger client configuration
type Config struct {
	ChainID      int64
	TokenAddress string
	// CallTimeout bounds every ledger call, including the wait for the receipt
	CallTimeout time.Duration
	// ReceiptPollInterval is the delay between receipt polls after submission
	ReceiptPollInterval time.Duration
	// WaitForReceipt makes value moving calls wait until the transaction is mined
	WaitForReceipt bool
}

type erc20Ledger struct {
	cfg      Config
	client   adapter.EthClient
	treasury *Treasury
	clock    adapter.Clock
	token    common.Address
	abi      abi.ABI

	// mu serializes nonce assignment so concurrent submissions never share a nonce.
	// nextNonce is the lowest nonce not yet handed out by this process, 0 when unknown.
	mu        sync.Mutex
	nextNonce uint64
}

// NewLedger creates an ERC-20 backed ledger
func NewLedger(cfg Config, client adapter.EthClient, treasury *Treasury, clock adapter.Clock) (ledger.Ledger, error) {
	if treasury == nil {
		return nil, errors.New("treasury credential is required")
	}
	if !common.IsHexAddress(cfg.TokenAddress) {
		return nil, fmt.Errorf("invalid token address: %s", cfg.TokenAddress)
	}
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DEFAULT_CALL_TIMEOUT
	}
	if cfg.ReceiptPollInterval <= 0 {
		cfg.ReceiptPollInterval = DEFAULT_RECEIPT_POLL
	}

	return &erc20Ledger{
		cfg:      cfg,
		client:   client,
		treasury: treasury,
		clock:    clock,
		token:    common.HexToAddress(cfg.TokenAddress),
		abi:      parsed,
	}, nil
}

// TreasuryAddress returns the treasury wallet address
func (l *erc20Ledger) TreasuryAddress() string {
	return l.treasury.Address.Hex()
}

// Transfer moves amount between wallets. Treasury payouts use transfer; payments
// from players use transferFrom against the allowance granted to the treasury.
func (l *erc20Ledger) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) ledger.Result {
	units, err := ledger.ToBaseUnits(amount)
	if err != nil {
		return ledger.Failed(err)
	}
	if !common.IsHexAddress(from) || !common.IsHexAddress(to) {
		return ledger.Failed(domain.NewValidationError("invalid wallet address"))
	}

	fromAddr := common.HexToAddress(from)
	toAddr := common.HexToAddress(to)

	var data []byte
	if fromAddr == l.treasury.Address {
		data, err = l.abi.Pack("transfer", toAddr, units)
	} else {
		data, err = l.abi.Pack("transferFrom", fromAddr, toAddr, units)
	}
	if err != nil {
		return ledger.Failed(fmt.Errorf("failed to pack data: %w", err))
	}

	return l.submit(ctx, "transfer", data)
}

// Mint creates new tokens for the wallet
func (l *erc20Ledger) Mint(ctx context.Context, to string, amount decimal.Decimal) ledger.Result {
	units, err := ledger.ToBaseUnits(amount)
	if err != nil {
		return ledger.Failed(err)
	}
	if !common.IsHexAddress(to) {
		return ledger.Failed(domain.NewValidationError("invalid wallet address"))
	}

	data, err := l.abi.Pack("mint", common.HexToAddress(to), units)
	if err != nil {
		return ledger.Failed(fmt.Errorf("failed to pack data: %w", err))
	}

	return l.submit(ctx, "mint", data)
}

// submit signs and sends a call to the token contract. It is never retried: a
// failure after SendTransaction may still land on chain.
func (l *erc20Ledger) submit(ctx context.Context, op string, data []byte) ledger.Result {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.CallTimeout)
	defer cancel()

	start := l.clock.Now()
	res := l.send(ctx, op, data)
	metrics.ObserveLedgerCall(op, res.Success, l.clock.Since(start))
	if !res.Success {
		logger.WarnCtx(ctx, "Ledger call failed",
			zap.String("operation", op),
			zap.String("reference", res.Reference),
			zap.Error(res.Err))
	}
	return res
}

func (l *erc20Ledger) send(ctx context.Context, op string, data []byte) ledger.Result {
	signed, res := l.broadcast(ctx, op, data)
	if signed == nil {
		return res
	}

	hash := signed.Hash()
	if !l.cfg.WaitForReceipt {
		return ledger.Result{Success: true, Reference: hash.Hex()}
	}

	receipt, err := l.waitForReceipt(ctx, hash)
	if err != nil {
		// The transaction may still be mined later, so the caller must not retry it
		return ledger.Result{Reference: hash.Hex(), Err: domain.NewLedgerError(op, err, false)}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		// A reverted transaction moved no value
		return ledger.Failed(domain.NewLedgerError(op, fmt.Errorf("transaction %s reverted", hash.Hex()), false))
	}

	return ledger.Result{Success: true, Reference: hash.Hex()}
}

// broadcast assigns a nonce, signs and sends the call. It returns the signed transaction
// once the node accepted it, or a failed result otherwise.
func (l *erc20Ledger) broadcast(ctx context.Context, op string, data []byte) (*types.Transaction, ledger.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pending, err := l.client.PendingNonceAt(ctx, l.treasury.Address)
	if err != nil {
		return nil, ledger.Failed(domain.NewLedgerError(op, fmt.Errorf("failed to get nonce: %w", err), true))
	}
	// The node may not have seen our last submission yet
	nonce := max(pending, l.nextNonce)

	gasPrice, err := l.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, ledger.Failed(domain.NewLedgerError(op, fmt.Errorf("failed to get gas price: %w", err), true))
	}

	// A failed estimate usually means the call would revert (no allowance, no balance)
	gas, err := l.client.EstimateGas(ctx, ethereum.CallMsg{
		From: l.treasury.Address,
		To:   &l.token,
		Data: data,
	})
	if err != nil {
		return nil, ledger.Failed(domain.NewLedgerError(op, fmt.Errorf("failed to estimate gas: %w", err), isTransient(err)))
	}
	gas += gas * DEFAULT_GAS_LIMIT_SLACK / 100

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &l.token,
		Value:    big.NewInt(0),
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(l.cfg.ChainID)), l.treasury.PrivateKey)
	if err != nil {
		return nil, ledger.Failed(domain.NewLedgerError(op, fmt.Errorf("failed to sign transaction: %w", err), false))
	}

	if err := l.client.SendTransaction(ctx, signed); err != nil {
		// Resync with the node on the next call
		l.nextNonce = 0
		return nil, ledger.Failed(domain.NewLedgerError(op, fmt.Errorf("failed to send transaction: %w", err), isTransient(err)))
	}
	l.nextNonce = nonce + 1

	return signed, ledger.Result{}
}

func (l *erc20Ledger) waitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	for {
		receipt, err := l.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to get receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("receipt not available: %w", ctx.Err())
		case <-l.clock.After(l.cfg.ReceiptPollInterval):
		}
	}
}

// GetBalance returns the WLOS balance of the wallet
func (l *erc20Ledger) GetBalance(ctx context.Context, wallet string) (decimal.Decimal, error) {
	if !common.IsHexAddress(wallet) {
		return decimal.Zero, domain.NewValidationError("invalid wallet address")
	}

	data, err := l.abi.Pack("balanceOf", common.HexToAddress(wallet))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to pack data: %w", err)
	}

	var result []byte
	err = l.retryRead(ctx, "balanceOf", func(ctx context.Context) error {
		var callErr error
		result, callErr = l.client.CallContract(ctx, ethereum.CallMsg{To: &l.token, Data: data}, nil)
		return callErr
	})
	if err != nil {
		return decimal.Zero, domain.NewLedgerError("balanceOf", err, true)
	}

	values, err := l.abi.Unpack("balanceOf", result)
	if err != nil || len(values) == 0 {
		return decimal.Zero, fmt.Errorf("failed to unpack result: %w", err)
	}
	units, ok := values[0].(*big.Int)
	if !ok {
		return decimal.Zero, fmt.Errorf("unexpected balanceOf result type %T", values[0])
	}

	return ledger.FromBaseUnits(units), nil
}

// GetNativeBalance returns the native balance of the wallet in ether
func (l *erc20Ledger) GetNativeBalance(ctx context.Context, wallet string) (decimal.Decimal, error) {
	if !common.IsHexAddress(wallet) {
		return decimal.Zero, domain.NewValidationError("invalid wallet address")
	}

	var wei *big.Int
	err := l.retryRead(ctx, "balanceAt", func(ctx context.Context) error {
		var callErr error
		wei, callErr = l.client.BalanceAt(ctx, common.HexToAddress(wallet), nil)
		return callErr
	})
	if err != nil {
		return decimal.Zero, domain.NewLedgerError("balanceAt", err, true)
	}

	return ledger.FromWei(wei), nil
}

// GetReceipt returns the confirmation state of a transaction
func (l *erc20Ledger) GetReceipt(ctx context.Context, hash string) (*ledger.Receipt, error) {
	txHash := common.HexToHash(hash)

	var receipt *types.Receipt
	err := l.retryRead(ctx, "receipt", func(ctx context.Context) error {
		var callErr error
		receipt, callErr = l.client.TransactionReceipt(ctx, txHash)
		if errors.Is(callErr, ethereum.NotFound) {
			receipt = nil
			return nil
		}
		return callErr
	})
	if err != nil {
		return nil, domain.NewLedgerError("receipt", err, true)
	}

	if receipt == nil {
		return &ledger.Receipt{Hash: hash, Status: domain.TransactionStatusPending}, nil
	}

	block := receipt.BlockNumber.Uint64()
	result := &ledger.Receipt{
		Hash:   hash,
		Block:  &block,
		Status: domain.TransactionStatusConfirmed,
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		result.Status = domain.TransactionStatusFailed
		return result, nil
	}

	var head *types.Header
	err = l.retryRead(ctx, "header", func(ctx context.Context) error {
		var callErr error
		head, callErr = l.client.HeaderByNumber(ctx, nil)
		return callErr
	})
	if err != nil {
		return nil, domain.NewLedgerError("header", err, true)
	}
	if latest := head.Number.Uint64(); latest >= block {
		result.Confirmations = latest - block + 1
	}

	return result, nil
}

// retryRead runs a read only call with a per attempt timeout and exponential backoff
func (l *erc20Ledger) retryRead(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.1

	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, l.cfg.CallTimeout)
		defer cancel()
		return fn(callCtx)
	}

	notify := func(err error, d time.Duration) {
		logger.DebugCtx(ctx, "Retrying ledger read",
			zap.String("operation", op),
			zap.Error(err),
			zap.Duration("backoff", d))
	}

	return backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(b, DEFAULT_READ_MAX_RETRY), ctx), notify)
}

// isTransient classifies RPC errors. Reverts and explicit rejections are permanent.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, permanent := range []string{"revert", "insufficient allowance", "exceeds balance", "insufficient funds", "nonce too low"} {
		if strings.Contains(msg, permanent) {
			return false
		}
	}
	return true
}
