package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-economy/internal/api/middleware"
	"github.com/feral-file/ff-economy/internal/ratelimit"
)

// SetupRoutes configures all REST API routes. Reads are public; wallet actions require a
// JWT whose subject is the acting wallet and are rate limited per wallet.
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator, limiter ratelimit.Limiter) {
	router.GET("/health", handler.HealthCheck)

	wallet := []gin.HandlerFunc{middleware.JWTAuth(auth), middleware.RateLimit(limiter)}
	with := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, wallet...), h)
	}

	v1 := router.Group("/api/v1")

	assets := v1.Group("/assets")
	{
		assets.GET("/all/:wallet", handler.GetAllAssets)
		assets.GET("/heroes/:wallet", handler.GetHeroAssets)
		assets.GET("/farmers/:wallet", handler.GetFarmerAssets)
		assets.GET("/items/:wallet", handler.GetItemAssets)
	}

	farmers := v1.Group("/farmers")
	{
		farmers.GET("/:wallet", handler.GetFarmers)
		farmers.POST("/harvest", with(handler.HarvestAll)...)
		farmers.POST("/levelup", with(handler.LevelUpFarmer)...)
		farmers.POST("/merge", with(handler.MergeFarmers)...)
	}

	heroes := v1.Group("/heroes")
	{
		heroes.GET("/:wallet", handler.GetHeroes)
		heroes.POST("/levelup", with(handler.LevelUpHero)...)
		heroes.POST("/equip", with(handler.EquipItem)...)
		heroes.POST("/unequip", with(handler.UnequipItem)...)
	}

	market := v1.Group("/marketplace")
	{
		market.GET("/listings", handler.GetListings)
		market.GET("/stats", handler.GetMarketplaceStats)
		market.GET("/listings/:wallet", handler.GetMyListings)
		market.POST("/list", with(handler.CreateListing)...)
		market.POST("/buy/:listingId", with(handler.BuyItem)...)
		market.POST("/instant-sell", with(handler.InstantSell)...)
		market.PUT("/listings/:listingId", with(handler.UpdateListing)...)
		market.DELETE("/listings/:listingId", with(handler.CancelListing)...)
	}

	staking := v1.Group("/staking")
	{
		staking.GET("/pools", handler.GetStakingPools)
		staking.GET("/info/:wallet", handler.GetStakingInfo)
		staking.POST("/stake", with(handler.StakeTokens)...)
		staking.POST("/unstake", with(handler.UnstakeTokens)...)
		staking.POST("/claim", with(handler.ClaimRewards)...)
	}

	packs := v1.Group("/packs")
	{
		packs.GET("/types", handler.GetPackTypes)
		packs.GET("/inventory/:wallet", handler.GetPackInventory)
		packs.POST("/buy", with(handler.BuyPack)...)
		packs.POST("/open", with(handler.OpenPack)...)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.POST("", middleware.APIKeyAuth(auth), handler.CreateTransaction)
		transactions.GET("/:wallet", handler.ListTransactions)
		transactions.POST("/:wallet/filter", handler.FilterTransactions)
		transactions.GET("/:wallet/:id", handler.GetTransaction)
		transactions.GET("/:wallet/:id/receipt", handler.GetTransactionReceipt)
	}

	walletGroup := v1.Group("/wallet")
	{
		walletGroup.GET("/balance/:wallet", handler.GetWalletBalance)
		walletGroup.GET("/transactions/:wallet", handler.ListTransactions)
		walletGroup.POST("/transactions/:wallet/filter", handler.FilterTransactions)
		walletGroup.GET("/transactions/:wallet/:id", handler.GetTransaction)
		walletGroup.GET("/transactions/:wallet/:id/receipt", handler.GetTransactionReceipt)
	}
}
