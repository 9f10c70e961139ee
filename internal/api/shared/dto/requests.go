package dto

import (
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/recorder"
)

// WalletRequest is the body of wallet scoped actions with no further arguments
type WalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// FarmerRequest targets a farmer of the wallet
type FarmerRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	FarmerID      int64  `json:"farmerId" binding:"required"`
}

// HeroRequest targets a hero of the wallet
type HeroRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	HeroID        int64  `json:"heroId" binding:"required"`
}

// EquipRequest attaches or detaches an item of the wallet
type EquipRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	HeroID        int64  `json:"heroId" binding:"required"`
	ItemID        int64  `json:"itemId" binding:"required"`
}

// CreateListingRequest lists an asset of the wallet
type CreateListingRequest struct {
	WalletAddress string           `json:"walletAddress" binding:"required"`
	AssetType     domain.AssetType `json:"assetType" binding:"required"`
	AssetID       int64            `json:"assetId" binding:"required"`
	Price         decimal.Decimal  `json:"price"`
	Category      string           `json:"category"`
}

// UpdateListingRequest changes the price of a listing
type UpdateListingRequest struct {
	WalletAddress string          `json:"walletAddress" binding:"required"`
	Price         decimal.Decimal `json:"price"`
}

// BuyRequest settles a listing for the buyer
type BuyRequest struct {
	BuyerWalletAddress string `json:"buyerWalletAddress" binding:"required"`
}

// InstantSellRequest sells an asset of the wallet to the treasury
type InstantSellRequest struct {
	WalletAddress string           `json:"walletAddress" binding:"required"`
	AssetType     domain.AssetType `json:"assetType" binding:"required"`
	AssetID       int64            `json:"assetId" binding:"required"`
}

// StakeRequest locks an amount in a pool
type StakeRequest struct {
	WalletAddress string          `json:"walletAddress" binding:"required"`
	PoolID        int64           `json:"poolId" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

// PositionRequest targets a staking position of the wallet
type PositionRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	StakingID     int64  `json:"stakingId" binding:"required"`
}

// BuyPackRequest buys a pack type
type BuyPackRequest struct {
	WalletAddress string           `json:"walletAddress" binding:"required"`
	PackID        string           `json:"packId" binding:"required"`
	AssetType     domain.AssetType `json:"assetType"`
}

// OpenPackRequest opens an owned pack
type OpenPackRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	PackID        int64  `json:"packId" binding:"required"`
}

// FilterTransactionsRequest filters the history of a wallet
type FilterTransactionsRequest struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

// CreateTransactionRequest is a manually entered record
type CreateTransactionRequest = recorder.ManualInput
