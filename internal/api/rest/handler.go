package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-economy/internal/api/shared/dto"
	"github.com/feral-file/ff-economy/internal/api/shared/executor"
	"github.com/feral-file/ff-economy/internal/farming"
	"github.com/feral-file/ff-economy/internal/leveling"
	"github.com/feral-file/ff-economy/internal/marketplace"
	"github.com/feral-file/ff-economy/internal/packs"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/staking"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GET /api/v1/assets/all/:wallet
	GetAllAssets(c *gin.Context)
	// GET /api/v1/assets/heroes/:wallet
	GetHeroAssets(c *gin.Context)
	// GET /api/v1/assets/farmers/:wallet
	GetFarmerAssets(c *gin.Context)
	// GET /api/v1/assets/items/:wallet
	GetItemAssets(c *gin.Context)

	// GetFarmers returns the farmers of a wallet with their accrual
	// GET /api/v1/farmers/:wallet
	GetFarmers(c *gin.Context)
	// POST /api/v1/farmers/harvest
	HarvestAll(c *gin.Context)
	// POST /api/v1/farmers/levelup
	LevelUpFarmer(c *gin.Context)
	// POST /api/v1/farmers/merge
	MergeFarmers(c *gin.Context)

	// GET /api/v1/heroes/:wallet
	GetHeroes(c *gin.Context)
	// POST /api/v1/heroes/levelup
	LevelUpHero(c *gin.Context)
	// POST /api/v1/heroes/equip
	EquipItem(c *gin.Context)
	// POST /api/v1/heroes/unequip
	UnequipItem(c *gin.Context)

	// GetListings returns active listings
	// GET /api/v1/marketplace/listings?category=<category>&assetType=<type>&minPrice=<price>&maxPrice=<price>&page=<page>&limit=<limit>
	GetListings(c *gin.Context)
	// GET /api/v1/marketplace/stats
	GetMarketplaceStats(c *gin.Context)
	// GET /api/v1/marketplace/listings/:wallet?page=<page>&limit=<limit>
	GetMyListings(c *gin.Context)
	// POST /api/v1/marketplace/list
	CreateListing(c *gin.Context)
	// POST /api/v1/marketplace/buy/:listingId
	BuyItem(c *gin.Context)
	// POST /api/v1/marketplace/instant-sell
	InstantSell(c *gin.Context)
	// PUT /api/v1/marketplace/listings/:listingId
	UpdateListing(c *gin.Context)
	// DELETE /api/v1/marketplace/listings/:listingId
	CancelListing(c *gin.Context)

	// GET /api/v1/staking/pools
	GetStakingPools(c *gin.Context)
	// GET /api/v1/staking/info/:wallet
	GetStakingInfo(c *gin.Context)
	// POST /api/v1/staking/stake
	StakeTokens(c *gin.Context)
	// POST /api/v1/staking/unstake
	UnstakeTokens(c *gin.Context)
	// POST /api/v1/staking/claim
	ClaimRewards(c *gin.Context)

	// GET /api/v1/packs/types?assetType=<hero|farmer>
	GetPackTypes(c *gin.Context)
	// GET /api/v1/packs/inventory/:wallet?assetType=<hero|farmer>
	GetPackInventory(c *gin.Context)
	// POST /api/v1/packs/buy
	BuyPack(c *gin.Context)
	// POST /api/v1/packs/open
	OpenPack(c *gin.Context)

	// ListTransactions returns the history of a wallet newest first
	// GET /api/v1/transactions/:wallet?page=<page>&limit=<limit>
	ListTransactions(c *gin.Context)
	// POST /api/v1/transactions/:wallet/filter
	FilterTransactions(c *gin.Context)
	// GET /api/v1/transactions/:wallet/:id
	GetTransaction(c *gin.Context)
	// GetTransactionReceipt returns the canonical receipt of a record
	// GET /api/v1/transactions/:wallet/:id/receipt
	GetTransactionReceipt(c *gin.Context)
	// CreateTransaction appends a manually entered record (requires API key)
	// POST /api/v1/transactions
	CreateTransaction(c *gin.Context)

	// GET /api/v1/wallet/balance/:wallet
	GetWalletBalance(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// Services are the engines behind the handlers
type Services struct {
	Executor    executor.Executor
	Farming     farming.Service
	Leveling    leveling.Engine
	Marketplace marketplace.Engine
	Staking     staking.Service
	Packs       packs.Service
	Recorder    recorder.Recorder
}

// handler implements the Handler interface
type handler struct {
	debug bool
	Services
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, services Services) Handler {
	return &handler{
		debug:    debug,
		Services: services,
	}
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "ff-economy-api",
	})
}
