package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLedgerCall(t *testing.T) {
	before := testutil.ToFloat64(ledgerCalls.WithLabelValues("mint", "true"))

	ObserveLedgerCall("mint", true, 120*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(ledgerCalls.WithLabelValues("mint", "true")))
}

func TestIncInconsistency(t *testing.T) {
	before := testutil.ToFloat64(inconsistencies.WithLabelValues("seller_payout"))

	IncInconsistency("seller_payout")
	IncInconsistency("seller_payout")

	assert.Equal(t, before+2, testutil.ToFloat64(inconsistencies.WithLabelValues("seller_payout")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ObserveHTTPRequest(http.MethodGet, "/api/v1/staking/pools", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "ff_economy_http_requests_total"))
}
