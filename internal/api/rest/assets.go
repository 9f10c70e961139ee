package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handler) GetAllAssets(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	assets, err := h.Executor.GetAllAssets(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err, "Failed to fetch assets")
		return
	}
	c.JSON(http.StatusOK, assets)
}

func (h *handler) GetHeroAssets(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	heroes, err := h.Executor.GetHeroes(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err, "Failed to fetch heroes")
		return
	}
	c.JSON(http.StatusOK, heroes)
}

func (h *handler) GetFarmerAssets(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	farmers, err := h.Executor.GetFarmers(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err, "Failed to fetch farmers")
		return
	}
	c.JSON(http.StatusOK, farmers)
}

func (h *handler) GetItemAssets(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	items, err := h.Executor.GetItems(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err, "Failed to fetch items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handler) GetWalletBalance(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	balance, err := h.Executor.GetWalletBalance(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err, "Failed to fetch balances")
		return
	}
	c.JSON(http.StatusOK, balance)
}
