package sweeper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/marketplace"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

var errNotReady = errors.New("dependent record is not reconciled yet")

// decode unmarshals the entry payload. An unreadable payload can only be fixed by hand.
func (r *reconciler) decode(entry schema.Inconsistency, v interface{}) (Outcome, error) {
	if len(entry.Payload) == 0 {
		return OutcomeManual, fmt.Errorf("inconsistency %d has no payload", entry.ID)
	}
	if err := r.json.Unmarshal(entry.Payload, v); err != nil {
		return OutcomeManual, fmt.Errorf("failed to decode payload: %w", err)
	}
	return "", nil
}

// insertTransaction inserts a journaled record unless it already exists, then publishes it
func (r *reconciler) insertTransaction(ctx context.Context, tx *schema.Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("journaled record has no id")
	}

	existing, err := r.store.GetTransactionByID(ctx, tx.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	tx.Confirmation = nil
	if err := r.retry(ctx, "create transaction", func() error {
		return r.store.CreateTransaction(ctx, tx)
	}); err != nil {
		return err
	}

	if err := r.publisher.PublishTransaction(ctx, tx); err != nil {
		logger.WarnCtx(ctx, "Failed to publish reconciled transaction",
			zap.String("id", tx.ID),
			zap.Error(err))
	}
	return nil
}

func (r *reconciler) reconcileTransactionRecord(ctx context.Context, entry schema.Inconsistency) (Outcome, error) {
	var tx schema.Transaction
	if outcome, err := r.decode(entry, &tx); err != nil {
		return outcome, err
	}
	if err := r.insertTransaction(ctx, &tx); err != nil {
		return OutcomeRetry, err
	}
	return OutcomeResolved, nil
}

func (r *reconciler) reconcileSaleSettlementRecords(ctx context.Context, entry schema.Inconsistency) (Outcome, error) {
	var txs []schema.Transaction
	if outcome, err := r.decode(entry, &txs); err != nil {
		return outcome, err
	}

	var errs []error
	for i := range txs {
		if err := r.insertTransaction(ctx, &txs[i]); err != nil {
			errs = append(errs, fmt.Errorf("record %s: %w", txs[i].ID, err))
		}
	}
	if len(errs) > 0 {
		return OutcomeRetry, errors.Join(errs...)
	}
	return OutcomeResolved, nil
}

// reconcileReservationRelease gives back an entity held for a ledger call the ledger rejected.
// A reservation that was already released or has moved on is left alone.
func (r *reconciler) reconcileReservationRelease(ctx context.Context, entry schema.Inconsistency) (Outcome, error) {
	var p domain.ReservationReleasePayload
	if outcome, err := r.decode(entry, &p); err != nil {
		return outcome, err
	}

	var release func() error
	switch p.Target {
	case domain.ReservationListing:
		release = func() error { return r.store.ReleaseListing(ctx, p.ListingID, p.Wallet) }
	case domain.ReservationStakingPosition:
		release = func() error { return r.store.ReactivateStakingPosition(ctx, p.PositionID, p.ReservedVersion) }
	case domain.ReservationClaimCheckpoint:
		if len(p.Checkpoints) != 1 {
			return OutcomeManual, fmt.Errorf("claim reservation of position %d has %d checkpoints", p.PositionID, len(p.Checkpoints))
		}
		previous := p.Checkpoints[0].Previous
		release = func() error { return r.store.RestoreClaimCheckpoint(ctx, p.PositionID, p.ReservedAt, previous) }
	case domain.ReservationHarvestCheckpoints:
		release = func() error { return r.store.RestoreHarvestCheckpoints(ctx, p.Wallet, p.ReservedAt, p.Checkpoints) }
	case domain.ReservationAsset:
		release = func() error {
			return r.store.SetAssetStatus(ctx, p.AssetType, p.AssetID, p.Wallet, domain.AssetStatusLiquidating, domain.AssetStatusActive)
		}
	default:
		return OutcomeManual, fmt.Errorf("unknown reservation target %q", p.Target)
	}

	err := r.retry(ctx, "release reservation", release)
	if errors.Is(err, domain.ErrStaleWrite) {
		logger.InfoCtx(ctx, "Reservation already moved on",
			zap.String("target", string(p.Target)),
			zap.String("reference", entry.Reference))
		return OutcomeResolved, nil
	}
	if err != nil {
		return OutcomeRetry, err
	}
	return OutcomeResolved, nil
}

// reconcileInstantSellCompletion deletes the liquidating asset once its payout record exists.
// A record journaled under its own entry is awaited; a record that was never built is written here.
func (r *reconciler) reconcileInstantSellCompletion(ctx context.Context, entry schema.Inconsistency) (Outcome, error) {
	var p domain.InstantSellCompletionPayload
	if outcome, err := r.decode(entry, &p); err != nil {
		return outcome, err
	}

	if p.TransactionID != "" {
		existing, err := r.store.GetTransactionByID(ctx, p.TransactionID)
		if err != nil {
			return OutcomeRetry, err
		}
		if existing == nil {
			return OutcomeRetry, fmt.Errorf("instant sell record %s: %w", p.TransactionID, errNotReady)
		}
	} else {
		payout, err := decimal.NewFromString(p.Payout)
		if err != nil {
			return OutcomeManual, fmt.Errorf("invalid payout %q: %w", p.Payout, err)
		}
		name := fmt.Sprintf("%s #%d", p.AssetType, p.AssetID)
		if _, err := r.recorder.RecordInstantSell(ctx, p.Wallet, name, payout, p.Hash, recorder.Details{
			"assetType": p.AssetType,
			"assetId":   p.AssetID,
		}); err != nil {
			return OutcomeRetry, err
		}
	}

	err := r.retry(ctx, "delete liquidating asset", func() error {
		return r.store.DeleteLiquidatingAsset(ctx, p.AssetType, p.AssetID)
	})
	if err != nil && !errors.Is(err, domain.ErrStaleWrite) {
		return OutcomeRetry, err
	}
	return OutcomeResolved, nil
}

// reconcileStakingPosition inserts the position the wallet paid for and records the stake
func (r *reconciler) reconcileStakingPosition(ctx context.Context, entry schema.Inconsistency) (Outcome, error) {
	var position schema.StakingPosition
	if outcome, err := r.decode(entry, &position); err != nil {
		return outcome, err
	}

	if position.ID != 0 {
		existing, err := r.store.GetStakingPositionByID(ctx, position.ID)
		if err != nil {
			return OutcomeRetry, err
		}
		if existing != nil {
			return OutcomeResolved, nil
		}
	}

	position.ID = 0
	position.Pool = nil
	if err := r.retry(ctx, "create staking position", func() error {
		return r.store.CreateStakingPosition(ctx, &position)
	}); err != nil {
		return OutcomeRetry, err
	}

	poolName := fmt.Sprintf("Pool #%d", position.PoolID)
	if pool, err := r.store.GetStakingPoolByID(ctx, position.PoolID); err == nil && pool != nil {
		poolName = pool.Name
	}
	if _, err := r.recorder.RecordStaking(ctx, position.WalletAddress, poolName, position.Amount, entry.Reference, recorder.Details{
		"poolId":     position.PoolID,
		"stakingId":  position.ID,
		"startTime":  position.StartTime,
		"endTime":    position.EndTime,
		"reconciled": true,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to record reconciled stake", zap.Int64("positionID", position.ID), zap.Error(err))
	}
	return OutcomeResolved, nil
}

// reconcileSaleSettlement settles a listing the buyer already paid for. The seller payout is
// never sent from here: it is journaled for an operator once the listing is settled.
func (r *reconciler) reconcileSaleSettlement(ctx context.Context, entry schema.Inconsistency) (Outcome, error) {
	var p domain.SaleSettlementPayload
	if outcome, err := r.decode(entry, &p); err != nil {
		return outcome, err
	}
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return OutcomeManual, fmt.Errorf("invalid price %q: %w", p.Price, err)
	}

	var listing *schema.MarketplaceListing
	err = r.retry(ctx, "complete sale", func() error {
		var err error
		listing, err = r.store.CompleteSale(ctx, store.CompleteSaleInput{
			ListingID:   p.ListingID,
			BuyerWallet: p.Buyer,
			SoldAt:      p.SoldAt,
		})
		return err
	})
	if errors.Is(err, domain.ErrListingNotActive) {
		current, gerr := r.store.GetListingByID(ctx, p.ListingID)
		if gerr != nil {
			return OutcomeRetry, gerr
		}
		if current != nil && current.Status == domain.ListingStatusSold &&
			current.BuyerWallet != nil && strings.EqualFold(*current.BuyerWallet, p.Buyer) {
			return OutcomeResolved, nil
		}
		return OutcomeManual, fmt.Errorf("listing %s can no longer be settled, buyer %s paid %s: %w", p.ListingID, p.Buyer, p.Price, err)
	}
	if errors.Is(err, domain.ErrStaleWrite) || domain.KindOf(err) == domain.KindNotFound {
		return OutcomeManual, fmt.Errorf("listing %s or its asset changed, buyer %s paid %s: %w", p.ListingID, p.Buyer, p.Price, err)
	}
	if err != nil {
		return OutcomeRetry, err
	}

	proceeds, fee := marketplace.SplitSale(price)
	if proceeds.IsPositive() {
		r.recorder.ReportInconsistency(ctx, domain.InconsistencySellerPayout, listing.SellerWallet, listing.ID,
			domain.SellerPayoutPayload{
				ListingID: listing.ID,
				Seller:    listing.SellerWallet,
				Amount:    proceeds.String(),
			}, errors.New("seller payout was not sent before the sale was settled"))
	}

	// Failed legs are journaled by the recorder under their own entry
	if _, err := r.recorder.RecordSale(ctx, recorder.SaleInput{
		ListingID:      listing.ID,
		AssetType:      listing.AssetType,
		AssetID:        listing.ItemID,
		ItemName:       listing.ItemName,
		Buyer:          p.Buyer,
		Seller:         listing.SellerWallet,
		Price:          price,
		SellerProceeds: proceeds,
		PlatformFee:    fee,
		PaymentHash:    p.PaymentHash,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to record reconciled sale", zap.String("listingID", listing.ID), zap.Error(err))
	}
	return OutcomeResolved, nil
}

// reconcilePackPurchase inserts the pack the wallet paid for and records the purchase
func (r *reconciler) reconcilePackPurchase(ctx context.Context, entry schema.Inconsistency) (Outcome, error) {
	var pack schema.Pack
	if outcome, err := r.decode(entry, &pack); err != nil {
		return outcome, err
	}

	if pack.ID != 0 {
		existing, err := r.store.GetPackByID(ctx, pack.ID)
		if err != nil {
			return OutcomeRetry, err
		}
		if existing != nil {
			return OutcomeResolved, nil
		}
	}

	pack.ID = 0
	pack.PackType = nil
	if err := r.retry(ctx, "create pack", func() error {
		return r.store.CreatePack(ctx, &pack)
	}); err != nil {
		return OutcomeRetry, err
	}

	pt, err := r.store.GetPackTypeByKey(ctx, pack.PackKey)
	if err != nil || pt == nil {
		logger.WarnCtx(ctx, "Pack type missing for reconciled pack", zap.String("packKey", pack.PackKey), zap.Error(err))
		return OutcomeResolved, nil
	}
	if _, err := r.recorder.RecordPackPurchase(ctx, pack.OwnerWallet, pt.Name, pt.Price, entry.Reference, recorder.Details{
		"packId":     pack.ID,
		"packTypeId": pt.ID,
		"packKey":    pt.PackKey,
		"reconciled": true,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to record reconciled pack purchase", zap.Int64("packID", pack.ID), zap.Error(err))
	}
	return OutcomeResolved, nil
}
