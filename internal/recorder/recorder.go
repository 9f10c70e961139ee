// Package recorder appends transaction records, publishes them, and journals
// bookkeeping failures that follow an irreversible ledger step.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/messaging"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
	"github.com/feral-file/ff-economy/internal/types"
)

// Details is the operation specific payload stored with a record
type Details map[string]interface{}

// Input is the generic form of a transaction record.
// Empty wallets and hash are stored as NULL.
type Input struct {
	Type       domain.TransactionType
	Category   domain.TransactionCategory
	Item       string
	Amount     decimal.Decimal
	Token      string
	FromWallet string
	ToWallet   string
	Hash       string
	Fee        decimal.Decimal
	Notes      string
	Details    Details
	// Status defaults to pending when a hash is attached and confirmed otherwise
	Status domain.TransactionStatus
	// Timestamp defaults to the current time
	Timestamp time.Time
}

// SaleInput describes a settled marketplace sale
type SaleInput struct {
	ListingID      string
	AssetType      domain.AssetType
	AssetID        int64
	ItemName       string
	Buyer          string
	Seller         string
	Price          decimal.Decimal
	SellerProceeds decimal.Decimal
	PlatformFee    decimal.Decimal
	PaymentHash    string
	// PayoutHash is empty when the seller payout has not succeeded
	PayoutHash string
}

// SaleRecords are the records written for a sale. A leg is nil when its insert failed.
type SaleRecords struct {
	Buyer       *schema.Transaction
	Seller      *schema.Transaction
	PlatformFee *schema.Transaction
}

// ConfirmationTracker starts chain confirmation tracking for a record with a hash
//
//go:generate mockgen -source=recorder.go -destination=../mocks/recorder.go -package=mocks -mock_names=ConfirmationTracker=MockConfirmationTracker
type ConfirmationTracker interface {
	TrackConfirmation(ctx context.Context, txID, hash string) error
}

// Recorder appends immutable transaction records and keeps the inconsistency journal
//
//go:generate mockgen -source=recorder.go -destination=../mocks/recorder.go -package=mocks -mock_names=Recorder=MockRecorder
type Recorder interface {
	// Record appends a record. An insert failure is journaled and returned as a *domain.JournaledError.
	Record(ctx context.Context, input Input) (*schema.Transaction, error)

	RecordPurchase(ctx context.Context, wallet, item string, price decimal.Decimal, hash string, details Details) (*schema.Transaction, error)
	RecordStaking(ctx context.Context, wallet, poolName string, amount decimal.Decimal, hash string, details Details) (*schema.Transaction, error)
	RecordUnstaking(ctx context.Context, wallet, poolName string, amount, fee decimal.Decimal, hash string, details Details) (*schema.Transaction, error)
	RecordReward(ctx context.Context, kind domain.TransactionType, wallet string, amount decimal.Decimal, hash string, details Details) (*schema.Transaction, error)
	RecordPackPurchase(ctx context.Context, wallet, packName string, price decimal.Decimal, hash string, details Details) (*schema.Transaction, error)
	RecordLevelUp(ctx context.Context, wallet, assetName string, category domain.TransactionCategory, cost decimal.Decimal, hash string, details Details) (*schema.Transaction, error)
	RecordMerge(ctx context.Context, wallet, farmerName string, details Details) (*schema.Transaction, error)
	RecordListing(ctx context.Context, wallet, assetName string, details Details) (*schema.Transaction, error)
	RecordCancel(ctx context.Context, wallet, assetName string, details Details) (*schema.Transaction, error)
	// RecordSale writes the buyer, seller and platform fee legs. The error joins the failed legs
	// and is a *domain.JournaledError.
	RecordSale(ctx context.Context, input SaleInput) (*SaleRecords, error)
	RecordInstantSell(ctx context.Context, wallet, assetName string, payout decimal.Decimal, hash string, details Details) (*schema.Transaction, error)

	// ReportInconsistency journals a partial success condition and returns the entry ID,
	// or zero when the journal itself could not be written
	ReportInconsistency(ctx context.Context, kind domain.InconsistencyKind, wallet, reference string, payload interface{}, cause error) int64

	// ListTransactions returns the records of a wallet newest first
	ListTransactions(ctx context.Context, wallet string, filter ListFilter) (*TransactionPage, error)
	// GetTransaction returns a record of the wallet with its latest confirmation
	GetTransaction(ctx context.Context, wallet, id string) (*schema.Transaction, error)
	// GetReceipt returns the receipt of a record with its canonical digest
	GetReceipt(ctx context.Context, wallet, id string) (*VerifiedReceipt, error)
	// CreateTransaction appends a manually entered record
	CreateTransaction(ctx context.Context, input ManualInput) (*schema.Transaction, error)
}

type recorder struct {
	store     store.Store
	publisher messaging.Publisher
	tracker   ConfirmationTracker
	clock     adapter.Clock
	json      adapter.JSON
	jcs       adapter.JCS
	treasury  string
}

// New creates a recorder. tracker may be nil when confirmations are not tracked.
func New(st store.Store, publisher messaging.Publisher, tracker ConfirmationTracker, clock adapter.Clock, jsonAdapter adapter.JSON, jcs adapter.JCS, treasury string) Recorder {
	return &recorder{
		store:     st,
		publisher: publisher,
		tracker:   tracker,
		clock:     clock,
		json:      jsonAdapter,
		jcs:       jcs,
		treasury:  treasury,
	}
}

// build turns an input into a record without persisting it
func (r *recorder) build(input Input) (*schema.Transaction, error) {
	ts := input.Timestamp
	if ts.IsZero() {
		ts = r.clock.Now()
	}
	ts = ts.UTC()

	token := input.Token
	if token == "" {
		token = domain.TOKEN_SYMBOL
	}

	status := input.Status
	if status == "" {
		status = domain.TransactionStatusConfirmed
		if input.Hash != "" {
			status = domain.TransactionStatusPending
		}
	}

	category := input.Category
	if category == "" {
		category = domain.CategoryOther
	}

	tx := &schema.Transaction{
		ID:         ulid.MustNew(ulid.Timestamp(ts), ulid.DefaultEntropy()).String(),
		Type:       input.Type,
		Item:       input.Item,
		Amount:     input.Amount,
		Token:      token,
		FromWallet: types.OptionalString(input.FromWallet),
		ToWallet:   types.OptionalString(input.ToWallet),
		Status:     status,
		Category:   category,
		Hash:       types.OptionalString(input.Hash),
		Fee:        input.Fee,
		Timestamp:  ts,
		Notes:      types.OptionalString(input.Notes),
	}

	if len(input.Details) > 0 {
		data, err := r.json.Marshal(input.Details)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal transaction details: %w", err)
		}
		tx.Details = datatypes.JSON(data)
	}

	return tx, nil
}

func walletOf(tx *schema.Transaction) string {
	if tx.FromWallet != nil {
		return *tx.FromWallet
	}
	if tx.ToWallet != nil {
		return *tx.ToWallet
	}
	return ""
}

// Record appends a record, publishes it and starts confirmation tracking
func (r *recorder) Record(ctx context.Context, input Input) (*schema.Transaction, error) {
	tx, err := r.build(input)
	if err != nil {
		return nil, err
	}

	return r.insert(ctx, tx)
}

func (r *recorder) insert(ctx context.Context, tx *schema.Transaction) (*schema.Transaction, error) {
	if err := r.store.CreateTransaction(ctx, tx); err != nil {
		id := r.ReportInconsistency(ctx, domain.InconsistencyTransactionRecord, walletOf(tx), tx.ID, tx, err)
		return nil, &domain.JournaledError{InconsistencyID: id, Reference: tx.ID, Err: err}
	}

	r.afterInsert(ctx, tx)
	return tx, nil
}

// afterInsert runs the best-effort steps that follow a successful insert
func (r *recorder) afterInsert(ctx context.Context, tx *schema.Transaction) {
	if err := r.publisher.PublishTransaction(ctx, tx); err != nil {
		logger.WarnCtx(ctx, "Failed to publish transaction",
			zap.String("id", tx.ID),
			zap.String("type", string(tx.Type)),
			zap.Error(err))
	}

	if r.tracker != nil && tx.Hash != nil {
		if err := r.tracker.TrackConfirmation(ctx, tx.ID, *tx.Hash); err != nil {
			logger.WarnCtx(ctx, "Failed to start confirmation tracking",
				zap.String("id", tx.ID),
				zap.String("hash", *tx.Hash),
				zap.Error(err))
		}
	}
}

// RecordPurchase records a marketplace purchase paid by the wallet
func (r *recorder) RecordPurchase(ctx context.Context, wallet, item string, price decimal.Decimal, hash string, details Details) (*schema.Transaction, error) {
	return r.Record(ctx, Input{
		Type:       domain.TransactionTypePurchase,
		Category:   domain.CategoryMarketplace,
		Item:       item,
		Amount:     price.Abs().Neg(),
		FromWallet: wallet,
		Hash:       hash,
		Details:    details,
	})
}

// RecordStaking records tokens moved into a pool
func (r *recorder) RecordStaking(ctx context.Context, wallet, poolName string, amount decimal.Decimal, hash string, details Details) (*schema.Transaction, error) {
	return r.Record(ctx, Input{
		Type:       domain.TransactionTypeStaking,
		Category:   domain.CategoryStaking,
		Item:       fmt.Sprintf("%s Stake", poolName),
		Amount:     amount,
		FromWallet: wallet,
		Hash:       hash,
		Details:    details,
	})
}

// RecordUnstaking records principal returned to the wallet net of the early unstake fee
func (r *recorder) RecordUnstaking(ctx context.Context, wallet, poolName string, amount, fee decimal.Decimal, hash string, details Details) (*schema.Transaction, error) {
	return r.Record(ctx, Input{
		Type:     domain.TransactionTypeUnstaking,
		Category: domain.CategoryStaking,
		Item:     fmt.Sprintf("%s Unstake", poolName),
		Amount:   amount,
		ToWallet: wallet,
		Hash:     hash,
		Fee:      fee,
		Details:  details,
	})
}

// RecordReward records minted rewards. kind is the harvest or staking reward type.
func (r *recorder) RecordReward(ctx context.Context, kind domain.TransactionType, wallet string, amount decimal.Decimal, hash string, details Details) (*schema.Transaction, error) {
	category := domain.CategoryStaking
	item := "Staking Rewards"
	if kind == domain.TransactionTypeHarvestReward {
		category = domain.CategoryFarming
		item = "Farmer Harvest"
	}

	return r.Record(ctx, Input{
		Type:     kind,
		Category: category,
		Item:     item,
		Amount:   amount,
		ToWallet: wallet,
		Hash:     hash,
		Details:  details,
	})
}

// RecordPackPurchase records a pack bought by the wallet
func (r *recorder) RecordPackPurchase(ctx context.Context, wallet, packName string, price decimal.Decimal, hash string, details Details) (*schema.Transaction, error) {
	return r.Record(ctx, Input{
		Type:       domain.TransactionTypePurchase,
		Category:   domain.CategoryPacks,
		Item:       packName,
		Amount:     price,
		FromWallet: wallet,
		Hash:       hash,
		Details:    details,
	})
}

// RecordLevelUp records a level up with its cost
func (r *recorder) RecordLevelUp(ctx context.Context, wallet, assetName string, category domain.TransactionCategory, cost decimal.Decimal, hash string, details Details) (*schema.Transaction, error) {
	return r.Record(ctx, Input{
		Type:       domain.TransactionTypeLevelUp,
		Category:   category,
		Item:       fmt.Sprintf("Level Up %s", assetName),
		Amount:     cost.Abs().Neg(),
		FromWallet: wallet,
		Hash:       hash,
		Details:    details,
	})
}

// RecordMerge records a farmer merge
func (r *recorder) RecordMerge(ctx context.Context, wallet, farmerName string, details Details) (*schema.Transaction, error) {
	return r.Record(ctx, Input{
		Type:       domain.TransactionTypeMerge,
		Category:   domain.CategoryFarming,
		Item:       fmt.Sprintf("Merge %s", farmerName),
		Amount:     decimal.Zero,
		FromWallet: wallet,
		Details:    details,
	})
}

// RecordListing records a marketplace listing and its fee
func (r *recorder) RecordListing(ctx context.Context, wallet, assetName string, details Details) (*schema.Transaction, error) {
	return r.Record(ctx, Input{
		Type:       domain.TransactionTypeList,
		Category:   domain.CategoryMarketplace,
		Item:       assetName,
		Amount:     decimal.Zero,
		FromWallet: wallet,
		Fee:        decimal.RequireFromString(domain.LISTING_FEE),
		Details:    details,
	})
}

// RecordCancel records a cancelled listing
func (r *recorder) RecordCancel(ctx context.Context, wallet, assetName string, details Details) (*schema.Transaction, error) {
	return r.Record(ctx, Input{
		Type:       domain.TransactionTypeCancel,
		Category:   domain.CategoryMarketplace,
		Item:       assetName,
		Amount:     decimal.Zero,
		FromWallet: wallet,
		Details:    details,
	})
}

// RecordSale writes the three legs of a sale. Every leg is attempted and the failed
// ones are journaled together as one sale_settlement_record entry.
func (r *recorder) RecordSale(ctx context.Context, input SaleInput) (*SaleRecords, error) {
	details := func(counterparty string) Details {
		return Details{
			"listingId":    input.ListingID,
			"assetType":    input.AssetType,
			"assetId":      input.AssetID,
			"price":        input.Price.String(),
			"counterparty": counterparty,
		}
	}

	sellerStatus := domain.TransactionStatus("")
	if input.PayoutHash == "" {
		// Payout not settled on chain yet
		sellerStatus = domain.TransactionStatusPending
	}

	legs := []struct {
		name  string
		input Input
		dest  **schema.Transaction
	}{
		{"buyer", Input{
			Type:       domain.TransactionTypePurchase,
			Category:   domain.CategoryMarketplace,
			Item:       input.ItemName,
			Amount:     input.Price.Abs().Neg(),
			FromWallet: input.Buyer,
			Hash:       input.PaymentHash,
			Details:    details(input.Seller),
		}, nil},
		{"seller", Input{
			Type:     domain.TransactionTypeSale,
			Category: domain.CategoryMarketplace,
			Item:     input.ItemName,
			Amount:   input.SellerProceeds,
			ToWallet: input.Seller,
			Hash:     input.PayoutHash,
			Fee:      input.PlatformFee,
			Status:   sellerStatus,
			Details:  details(input.Buyer),
		}, nil},
		{"platform fee", Input{
			Type:     domain.TransactionTypePlatformFee,
			Category: domain.CategoryMarketplace,
			Item:     input.ItemName,
			Amount:   input.PlatformFee,
			ToWallet: r.treasury,
			Details:  details(input.Buyer),
		}, nil},
	}

	records := &SaleRecords{}
	legs[0].dest = &records.Buyer
	legs[1].dest = &records.Seller
	legs[2].dest = &records.PlatformFee

	var failed []*schema.Transaction
	var errs []error
	for _, leg := range legs {
		tx, err := r.build(leg.input)
		if err == nil {
			err = r.store.CreateTransaction(ctx, tx)
			if err == nil {
				r.afterInsert(ctx, tx)
				*leg.dest = tx
				continue
			}
			failed = append(failed, tx)
		}
		errs = append(errs, fmt.Errorf("%s record: %w", leg.name, err))
	}

	if len(errs) == 0 {
		return records, nil
	}

	joined := errors.Join(errs...)
	id := r.ReportInconsistency(ctx, domain.InconsistencySaleSettlementRecords, input.Buyer, input.ListingID, failed, joined)
	return records, &domain.JournaledError{InconsistencyID: id, Reference: input.ListingID, Err: joined}
}

// RecordInstantSell records a payout for an asset sold to the treasury
func (r *recorder) RecordInstantSell(ctx context.Context, wallet, assetName string, payout decimal.Decimal, hash string, details Details) (*schema.Transaction, error) {
	return r.Record(ctx, Input{
		Type:     domain.TransactionTypeInstantSell,
		Category: domain.CategoryMarketplace,
		Item:     assetName,
		Amount:   payout,
		ToWallet: wallet,
		Hash:     hash,
		Details:  details,
	})
}
