package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-economy/internal/api/shared/dto"
)

func (h *handler) GetFarmers(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	overview, err := h.Farming.GetFarmers(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err, "Failed to fetch farmers")
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *handler) HarvestAll(c *gin.Context) {
	var req dto.WalletRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Farming.HarvestAll(c.Request.Context(), req.WalletAddress)
	if err != nil {
		respondError(c, err, "Failed to harvest rewards")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) LevelUpFarmer(c *gin.Context) {
	var req dto.FarmerRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Farming.LevelUpFarmer(c.Request.Context(), req.WalletAddress, req.FarmerID)
	if err != nil {
		respondError(c, err, "Failed to level up farmer")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) MergeFarmers(c *gin.Context) {
	var req dto.FarmerRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Farming.MergeLevelUp(c.Request.Context(), req.WalletAddress, req.FarmerID)
	if err != nil {
		respondError(c, err, "Failed to merge farmers")
		return
	}
	c.JSON(http.StatusOK, result)
}
