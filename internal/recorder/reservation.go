package recorder

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
)

// Reservation is an entity claimed in the database before the ledger call that pays for it
type Reservation struct {
	// Operation names the ledger call, e.g. "unstake" or "purchase"
	Operation string
	Amount    decimal.Decimal
	// Release gives the entity back. It only runs after the ledger rejected the call.
	Release func(ctx context.Context) error
	// Payload describes the reservation for the sweeper when Release fails
	Payload domain.ReservationReleasePayload
}

func (r Reservation) entityID() string {
	switch {
	case r.Payload.ListingID != "":
		return r.Payload.ListingID
	case r.Payload.PositionID > 0:
		return strconv.FormatInt(r.Payload.PositionID, 10)
	case r.Payload.AssetID > 0:
		return string(r.Payload.AssetType) + ":" + strconv.FormatInt(r.Payload.AssetID, 10)
	}
	return r.Payload.Wallet
}

// Unwind returns the error for a failed ledger call made against a reservation.
//
// A rejected call moved no value, so the reservation is released and the ledger error is
// returned as is. When the release fails it is journaled for the sweeper. An unsettled call
// may still land, so the reservation is kept and the payment is journaled for an operator.
func Unwind(ctx context.Context, rec Recorder, res ledger.Result, r Reservation) error {
	if res.Unsettled() {
		id := rec.ReportInconsistency(ctx, domain.InconsistencyUnsettledPayment, r.Payload.Wallet, res.Reference, domain.UnsettledPaymentPayload{
			Wallet:    r.Payload.Wallet,
			Operation: r.Operation,
			Target:    r.Payload.Target,
			EntityID:  r.entityID(),
			Amount:    r.Amount.String(),
			Hash:      res.Reference,
		}, res.Err)
		return &domain.JournaledError{InconsistencyID: id, Reference: res.Reference, Err: res.Err}
	}

	if err := r.Release(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to release reservation",
			zap.String("operation", r.Operation),
			zap.String("target", string(r.Payload.Target)),
			zap.Error(err))
		id := rec.ReportInconsistency(ctx, domain.InconsistencyReservationRelease, r.Payload.Wallet, r.entityID(), r.Payload, err)
		return &domain.JournaledError{InconsistencyID: id, Reference: r.entityID(), Err: res.Err}
	}

	return res.Err
}
