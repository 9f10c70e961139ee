package rest_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-economy/internal/api/middleware"
	"github.com/feral-file/ff-economy/internal/api/rest"
	"github.com/feral-file/ff-economy/internal/api/server"
	"github.com/feral-file/ff-economy/internal/api/shared/dto"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/farming"
	"github.com/feral-file/ff-economy/internal/marketplace"
	"github.com/feral-file/ff-economy/internal/mocks"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

const (
	testWallet      = "0xAbC0000000000000000000000000000000000001"
	canonicalWallet = "0xabc0000000000000000000000000000000000001"
	testAPIKey      = "test-api-key"
)

type testAPI struct {
	router      *gin.Engine
	privateKey  *rsa.PrivateKey
	executor    *mocks.MockAPIExecutor
	farming     *mocks.MockFarmingService
	leveling    *mocks.MockLevelingEngine
	marketplace *mocks.MockMarketplaceEngine
	staking     *mocks.MockStakingService
	packs       *mocks.MockPackService
	recorder    *mocks.MockRecorder
}

func setupTestAPI(t *testing.T) *testAPI {
	ctrl := gomock.NewController(t)

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	api := &testAPI{
		privateKey:  privateKey,
		executor:    mocks.NewMockAPIExecutor(ctrl),
		farming:     mocks.NewMockFarmingService(ctrl),
		leveling:    mocks.NewMockLevelingEngine(ctrl),
		marketplace: mocks.NewMockMarketplaceEngine(ctrl),
		staking:     mocks.NewMockStakingService(ctrl),
		packs:       mocks.NewMockPackService(ctrl),
		recorder:    mocks.NewMockRecorder(ctrl),
	}

	handler := rest.NewHandler(false, rest.Services{
		Executor:    api.executor,
		Farming:     api.farming,
		Leveling:    api.leveling,
		Marketplace: api.marketplace,
		Staking:     api.staking,
		Packs:       api.packs,
		Recorder:    api.recorder,
	})
	api.router = server.New(server.Config{
		Auth: middleware.AuthConfig{
			JWTPublicKey: string(publicPEM),
			APIKeys:      []string{testAPIKey},
		},
	}, handler, nil).Router()

	return api
}

func (a *testAPI) token(t *testing.T, subject string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(a.privateKey)
	require.NoError(t, err)
	return signed
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}, authorization string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error struct {
		Code            string  `json:"code"`
		Message         string  `json:"message"`
		Details         string  `json:"details"`
		Retryable       bool    `json:"retryable"`
		Inconsistencies []int64 `json:"inconsistencies"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"ff-economy-api"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHarvestAll(t *testing.T) {
	api := setupTestAPI(t)

	result := &farming.HarvestResult{
		Amount:           decimal.NewFromInt(42),
		FarmersHarvested: 2,
		Hash:             "0xhash",
	}
	result.Warn(7, "checkpoint not advanced for %d farmer(s)", 2)
	api.farming.EXPECT().HarvestAll(gomock.Any(), canonicalWallet).Return(result, nil)

	w := api.do(t, http.MethodPost, "/api/v1/farmers/harvest",
		dto.WalletRequest{WalletAddress: testWallet}, "Bearer "+api.token(t, testWallet))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "42", body["amount"])
	assert.Equal(t, "0xhash", body["hash"])
	assert.Equal(t, []interface{}{"checkpoint not advanced for 2 farmer(s)"}, body["warnings"])
	assert.Equal(t, []interface{}{float64(7)}, body["inconsistencies"])
}

func TestHarvestAll_PrincipalIsCaseInsensitive(t *testing.T) {
	api := setupTestAPI(t)

	api.farming.EXPECT().HarvestAll(gomock.Any(), canonicalWallet).Return(&farming.HarvestResult{}, nil)

	w := api.do(t, http.MethodPost, "/api/v1/farmers/harvest",
		dto.WalletRequest{WalletAddress: testWallet}, "Bearer "+api.token(t, canonicalWallet))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWalletsAreCanonicalized(t *testing.T) {
	api := setupTestAPI(t)

	t.Run("body wallet", func(t *testing.T) {
		api.marketplace.EXPECT().BuyItem(gomock.Any(), canonicalWallet, "5").Return(&marketplace.PurchaseResult{}, nil)

		w := api.do(t, http.MethodPost, "/api/v1/marketplace/buy/5",
			dto.BuyRequest{BuyerWalletAddress: " " + testWallet + " "}, "Bearer "+api.token(t, testWallet))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("path wallet", func(t *testing.T) {
		api.farming.EXPECT().GetFarmers(gomock.Any(), canonicalWallet).Return(&farming.FarmersOverview{}, nil)

		w := api.do(t, http.MethodGet, "/api/v1/farmers/"+testWallet, nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid body wallet", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/farmers/harvest",
			dto.WalletRequest{WalletAddress: "0xabc"}, "Bearer "+api.token(t, "0xabc"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_failed", decodeError(t, w).Error.Code)
	})

	t.Run("invalid path wallet", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/farmers/not-a-wallet", nil, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHarvestAll_MissingAuth(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/farmers/harvest", dto.WalletRequest{WalletAddress: testWallet}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decodeError(t, w).Error.Code)
}

func TestHarvestAll_WalletMismatch(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/farmers/harvest",
		dto.WalletRequest{WalletAddress: testWallet}, "Bearer "+api.token(t, "0xother"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", decodeError(t, w).Error.Code)
}

func TestLevelUpFarmer_MissingFields(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/farmers/levelup",
		map[string]string{"walletAddress": testWallet}, "Bearer "+api.token(t, testWallet))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "validation_failed", decodeError(t, w).Error.Code)
}

func TestLevelUpHero_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFoundError("hero", 9),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "insufficient balance",
			err:        domain.ErrInsufficientBalance,
			wantStatus: http.StatusBadRequest,
			wantCode:   "insufficient_balance",
		},
		{
			name:       "max level",
			err:        domain.ErrMaxLevelReached,
			wantStatus: http.StatusConflict,
			wantCode:   "max_level_reached",
		},
		{
			name:       "unexpected",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setupTestAPI(t)
			api.leveling.EXPECT().LevelUpHero(gomock.Any(), canonicalWallet, int64(9)).Return(nil, tt.err)

			w := api.do(t, http.MethodPost, "/api/v1/heroes/levelup",
				dto.HeroRequest{WalletAddress: testWallet, HeroID: 9}, "Bearer "+api.token(t, testWallet))
			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, body.Error.Details, "connection reset")
		})
	}
}

func TestBuyItem_Journaled(t *testing.T) {
	api := setupTestAPI(t)

	journaled := &domain.JournaledError{
		InconsistencyID: 31,
		Reference:       "listing:5",
		Err:             domain.NewLedgerError("transfer", errors.New("nonce too low"), false),
	}
	api.marketplace.EXPECT().BuyItem(gomock.Any(), canonicalWallet, "5").Return(nil, journaled)

	w := api.do(t, http.MethodPost, "/api/v1/marketplace/buy/5",
		dto.BuyRequest{BuyerWalletAddress: testWallet}, "Bearer "+api.token(t, testWallet))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "ledger_failure", body.Error.Code)
	assert.Equal(t, []int64{31}, body.Error.Inconsistencies)
}

func TestGetListings(t *testing.T) {
	api := setupTestAPI(t)

	min := decimal.NewFromInt(10)
	api.marketplace.EXPECT().
		GetListings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q marketplace.ListingQuery) (*marketplace.ListingPage, error) {
			assert.Equal(t, domain.AssetType("hero"), q.AssetType)
			require.NotNil(t, q.MinPrice)
			assert.True(t, min.Equal(*q.MinPrice))
			assert.Nil(t, q.MaxPrice)
			assert.Equal(t, 2, q.Page)
			assert.Equal(t, 100, q.Limit)
			return &marketplace.ListingPage{Listings: []schema.MarketplaceListing{}, Page: 2}, nil
		})

	w := api.do(t, http.MethodGet, "/api/v1/marketplace/listings?assetType=hero&minPrice=10&page=2&limit=500", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetListings_InvalidQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		details string
	}{
		{name: "asset type", query: "assetType=dragon", details: "unsupported asset type: dragon"},
		{name: "min price", query: "minPrice=cheap", details: "minPrice must be a number"},
		{name: "max price", query: "maxPrice=lots", details: "maxPrice must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setupTestAPI(t)

			w := api.do(t, http.MethodGet, "/api/v1/marketplace/listings?"+tt.query, nil, "")
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, tt.details, decodeError(t, w).Error.Details)
		})
	}
}

func TestGetWalletBalance(t *testing.T) {
	api := setupTestAPI(t)

	api.executor.EXPECT().GetWalletBalance(gomock.Any(), canonicalWallet).Return(&dto.BalanceResponse{
		Wallet: canonicalWallet,
		Native: decimal.RequireFromString("0.25"),
		WLOS:   decimal.NewFromInt(300),
	}, nil)

	w := api.do(t, http.MethodGet, "/api/v1/wallet/balance/"+testWallet, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, canonicalWallet, body["walletAddress"])
	assert.Equal(t, "300", body["wlos"])
}

func TestGetTransaction_NotFound(t *testing.T) {
	api := setupTestAPI(t)

	api.recorder.EXPECT().GetTransaction(gomock.Any(), canonicalWallet, "01HX").
		Return(nil, domain.NewNotFoundError("transaction", "01HX"))

	w := api.do(t, http.MethodGet, "/api/v1/transactions/"+testWallet+"/01HX", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "transaction 01HX not found", decodeError(t, w).Error.Message)
}

func TestListTransactions_Alias(t *testing.T) {
	api := setupTestAPI(t)

	api.recorder.EXPECT().
		ListTransactions(gomock.Any(), canonicalWallet, recorder.ListFilter{Page: 1, Limit: 10}).
		Return(&recorder.TransactionPage{}, nil)

	w := api.do(t, http.MethodGet, "/api/v1/wallet/transactions/"+testWallet, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateTransaction(t *testing.T) {
	api := setupTestAPI(t)

	input := recorder.ManualInput{
		Type:     domain.TransactionType("Purchase"),
		Item:     "Support adjustment",
		ToWallet: testWallet,
	}

	t.Run("requires api key", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/transactions", input, "Bearer "+api.token(t, testWallet))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		api.recorder.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in recorder.ManualInput) (*schema.Transaction, error) {
				assert.Equal(t, "Support adjustment", in.Item)
				return &schema.Transaction{ID: "01HXMANUAL", Item: in.Item}, nil
			})

		w := api.do(t, http.MethodPost, "/api/v1/transactions", input, "ApiKey "+testAPIKey)
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
