package dto

import (
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

// AssetsResponse holds every asset of a wallet
type AssetsResponse struct {
	Wallet  string          `json:"wallet"`
	Heroes  []schema.Hero   `json:"heroes"`
	Farmers []schema.Farmer `json:"farmers"`
	Items   []schema.Item   `json:"items"`
}

// BalanceResponse holds the balances of a wallet
type BalanceResponse struct {
	domain.Partial
	Wallet string          `json:"walletAddress"`
	Native decimal.Decimal `json:"native"`
	WLOS   decimal.Decimal `json:"wlos"`
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
