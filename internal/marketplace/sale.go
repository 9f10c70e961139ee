package marketplace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
)

// BuyItem settles an active listing for the buyer.
//
// The listing is reserved for the buyer before any value moves, which locks its price and
// turns away other buyers and seller updates. The buyer then pays the treasury; a rejected
// payment releases the listing. The listing and asset change hands in one database
// transaction, after which the treasury pays the seller their share. Failures after the
// payment are journaled instead of rolled back.
func (e *engine) BuyItem(ctx context.Context, buyer, listingID string) (*PurchaseResult, error) {
	listing, err := e.store.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	if listing == nil {
		return nil, domain.NewNotFoundError("listing", listingID)
	}
	if listing.Status != domain.ListingStatusActive {
		return nil, domain.ErrListingNotActive
	}
	if strings.EqualFold(listing.SellerWallet, buyer) {
		return nil, domain.ErrSelfTradeForbidden
	}

	listing, err = e.store.ReserveListing(ctx, listing.ID, buyer)
	if err != nil {
		return nil, err
	}

	price := listing.Price
	proceeds, fee := SplitSale(price)
	treasury := e.ledger.TreasuryAddress()

	result := &PurchaseResult{
		Listing:        listing,
		Price:          price,
		SellerProceeds: proceeds,
		PlatformFee:    fee,
		Outcome:        ledger.Outcome{Primary: ledger.Result{Success: true}},
	}

	reservation := recorder.Reservation{
		Operation: "purchase",
		Amount:    price,
		Release: func(ctx context.Context) error {
			return e.store.ReleaseListing(ctx, listing.ID, buyer)
		},
		Payload: domain.ReservationReleasePayload{
			Target:          domain.ReservationListing,
			Wallet:          buyer,
			ListingID:       listing.ID,
			ReservedVersion: listing.Version,
			ReservedAt:      e.clock.Now().UTC(),
		},
	}

	if price.IsPositive() {
		balance, err := e.ledger.GetBalance(ctx, buyer)
		if err != nil {
			return nil, recorder.Unwind(ctx, e.recorder, ledger.Failed(err), reservation)
		}
		if balance.LessThan(price) {
			err := domain.ErrInsufficientBalance.WithMessage("insufficient balance: need %s %s, have %s", price, domain.TOKEN_SYMBOL, balance)
			return nil, recorder.Unwind(ctx, e.recorder, ledger.Failed(err), reservation)
		}

		payment := e.ledger.Transfer(ctx, buyer, treasury, price)
		result.Outcome.Primary = payment
		if !payment.Success {
			return nil, recorder.Unwind(ctx, e.recorder, payment, reservation)
		}
		result.PaymentHash = payment.Reference
	}

	soldAt := e.clock.Now().UTC()
	sold, err := e.store.CompleteSale(ctx, store.CompleteSaleInput{
		ListingID:       listing.ID,
		ExpectedVersion: listing.Version,
		BuyerWallet:     buyer,
		SoldAt:          soldAt,
	})
	if err != nil {
		if !price.IsPositive() {
			return nil, recorder.Unwind(ctx, e.recorder, ledger.Failed(err), reservation)
		}
		id := e.recorder.ReportInconsistency(ctx, domain.InconsistencySaleSettlement, buyer, listing.ID, domain.SaleSettlementPayload{
			ListingID:   listing.ID,
			Buyer:       buyer,
			Seller:      listing.SellerWallet,
			Price:       price.String(),
			PaymentHash: result.PaymentHash,
			SoldAt:      soldAt,
		}, err)
		return nil, &domain.JournaledError{InconsistencyID: id, Reference: listing.ID, Err: err}
	}
	result.Listing = sold

	if proceeds.IsPositive() {
		payout := e.ledger.Transfer(ctx, treasury, listing.SellerWallet, proceeds)
		result.Outcome.Secondary = &payout
		if payout.Success {
			result.PayoutHash = payout.Reference
		} else {
			id := e.recorder.ReportInconsistency(ctx, domain.InconsistencySellerPayout, listing.SellerWallet, listing.ID, domain.SellerPayoutPayload{
				ListingID: listing.ID,
				Seller:    listing.SellerWallet,
				Amount:    proceeds.String(),
			}, payout.Err)
			result.Warn(id, "seller payout failed: %v", payout.Err)
		}
	}

	records, err := e.recorder.RecordSale(ctx, recorder.SaleInput{
		ListingID:      listing.ID,
		AssetType:      listing.AssetType,
		AssetID:        listing.ItemID,
		ItemName:       listing.ItemName,
		Buyer:          buyer,
		Seller:         listing.SellerWallet,
		Price:          price,
		SellerProceeds: proceeds,
		PlatformFee:    fee,
		PaymentHash:    result.PaymentHash,
		PayoutHash:     result.PayoutHash,
	})
	if err != nil {
		result.WarnErr("failed to record sale", err)
	}
	result.Records = records

	logger.InfoCtx(ctx, "Listing sold",
		zap.String("listingID", listing.ID),
		zap.String("buyer", buyer),
		zap.String("seller", listing.SellerWallet),
		zap.String("price", price.String()),
		zap.Bool("partial", result.IsPartial()))

	return result, nil
}

// InstantSell sells an asset of the wallet to the treasury and deletes it.
//
// The asset is locked as liquidating before the payout and deleted only once the
// InstantSell record exists, so a journaled failure leaves it recoverable.
func (e *engine) InstantSell(ctx context.Context, wallet string, assetType domain.AssetType, assetID int64) (*InstantSellResult, error) {
	if !domain.IsValidAssetType(assetType) {
		return nil, domain.NewValidationError("invalid asset type: %s", assetType)
	}

	a, err := e.loadAsset(ctx, wallet, assetType, assetID)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.AssetStatusActive {
		return nil, domain.ErrAssetLocked
	}
	if a.Equipped {
		return nil, domain.ErrAssetLocked.WithMessage("%s %d has equipment attached", assetType, assetID)
	}

	payout := InstantSellPayout(a.BaseValue)
	result := &InstantSellResult{
		AssetType: assetType,
		AssetID:   assetID,
		Name:      a.label(),
		BaseValue: a.BaseValue,
		Payout:    payout,
	}

	if err := e.store.SetAssetStatus(ctx, assetType, assetID, wallet, domain.AssetStatusActive, domain.AssetStatusLiquidating); err != nil {
		return nil, err
	}

	if payout.IsPositive() {
		res := e.ledger.Transfer(ctx, e.ledger.TreasuryAddress(), wallet, payout)
		if !res.Success {
			return nil, recorder.Unwind(ctx, e.recorder, res, recorder.Reservation{
				Operation: "instant_sell",
				Amount:    payout,
				Release: func(ctx context.Context) error {
					return e.store.SetAssetStatus(ctx, assetType, assetID, wallet, domain.AssetStatusLiquidating, domain.AssetStatusActive)
				},
				Payload: domain.ReservationReleasePayload{
					Target:     domain.ReservationAsset,
					Wallet:     wallet,
					AssetType:  assetType,
					AssetID:    assetID,
					ReservedAt: e.clock.Now().UTC(),
				},
			})
		}
		result.Hash = res.Reference
	}

	journal := func(txID string, cause error) int64 {
		return e.recorder.ReportInconsistency(ctx, domain.InconsistencyInstantSellCompletion, wallet, fmt.Sprintf("%s:%d", assetType, assetID), domain.InstantSellCompletionPayload{
			Wallet:        wallet,
			AssetType:     assetType,
			AssetID:       assetID,
			TransactionID: txID,
			Payout:        payout.String(),
			Hash:          result.Hash,
		}, cause)
	}

	tx, err := e.recorder.RecordInstantSell(ctx, wallet, result.Name, payout, result.Hash, recorder.Details{
		"assetType": assetType,
		"assetId":   assetID,
		"baseValue": a.BaseValue.String(),
	})
	if err != nil {
		// the asset stays liquidating until the sweeper finds the record
		var txID string
		var je *domain.JournaledError
		if errors.As(err, &je) {
			txID = je.Reference
		}
		result.Warn(journal(txID, err), "failed to record instant sell: %v", err)
		return result, nil
	}
	result.Transaction = tx

	if err := e.store.DeleteLiquidatingAsset(ctx, assetType, assetID); err != nil {
		result.Warn(journal(tx.ID, err), "failed to delete sold %s: %v", assetType, err)
	}

	logger.InfoCtx(ctx, "Asset instant sold",
		zap.String("wallet", wallet),
		zap.String("assetType", string(assetType)),
		zap.Int64("assetID", assetID),
		zap.String("payout", payout.String()))

	return result, nil
}
