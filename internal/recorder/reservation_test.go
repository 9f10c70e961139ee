package recorder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

func listingReservation(release func(ctx context.Context) error) recorder.Reservation {
	return recorder.Reservation{
		Operation: "purchase",
		Amount:    decimal.NewFromInt(100),
		Release:   release,
		Payload: domain.ReservationReleasePayload{
			Target:     domain.ReservationListing,
			Wallet:     testWallet,
			ListingID:  "listing-1",
			ReservedAt: testNow,
		},
	}
}

func TestUnwind_RejectedCallReleases(t *testing.T) {
	mocks := setupTestRecorder(t)
	defer tearDownTestRecorder(mocks)

	cause := domain.NewLedgerError("transfer", errors.New("insufficient allowance"), false)
	released := 0
	err := recorder.Unwind(context.Background(), mocks.recorder, ledger.Failed(cause), listingReservation(func(context.Context) error {
		released++
		return nil
	}))

	assert.Equal(t, cause, err)
	assert.Equal(t, 1, released)
}

func TestUnwind_ReleaseFailureIsJournaled(t *testing.T) {
	mocks := setupTestRecorder(t)
	defer tearDownTestRecorder(mocks)

	mocks.store.EXPECT().CreateInconsistency(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *schema.Inconsistency) error {
			assert.Equal(t, domain.InconsistencyReservationRelease, inc.Kind)
			assert.Equal(t, domain.InconsistencyStatusOpen, inc.Status)
			assert.Equal(t, "listing-1", inc.Reference)
			assert.Contains(t, string(inc.Payload), `"target":"listing"`)
			inc.ID = 4
			return nil
		})

	cause := domain.NewLedgerError("transfer", errors.New("insufficient allowance"), false)
	err := recorder.Unwind(context.Background(), mocks.recorder, ledger.Failed(cause), listingReservation(func(context.Context) error {
		return errors.New("db down")
	}))

	var je *domain.JournaledError
	require.ErrorAs(t, err, &je)
	assert.Equal(t, int64(4), je.InconsistencyID)
	assert.ErrorIs(t, err, cause)
}

func TestUnwind_UnsettledCallKeepsReservation(t *testing.T) {
	mocks := setupTestRecorder(t)
	defer tearDownTestRecorder(mocks)

	mocks.store.EXPECT().CreateInconsistency(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *schema.Inconsistency) error {
			assert.Equal(t, domain.InconsistencyUnsettledPayment, inc.Kind)
			assert.Equal(t, domain.InconsistencyStatusManual, inc.Status)
			assert.Equal(t, "0xpending", inc.Reference)
			assert.Contains(t, string(inc.Payload), `"entityId":"listing-1"`)
			inc.ID = 5
			return nil
		})

	res := ledger.Result{Reference: "0xpending", Err: errors.New("receipt not available")}
	err := recorder.Unwind(context.Background(), mocks.recorder, res, listingReservation(func(context.Context) error {
		t.Fatal("an unsettled call must not release its reservation")
		return nil
	}))

	var je *domain.JournaledError
	require.ErrorAs(t, err, &je)
	assert.Equal(t, int64(5), je.InconsistencyID)
	assert.Equal(t, "0xpending", je.Reference)
}
