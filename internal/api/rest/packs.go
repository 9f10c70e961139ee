package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-economy/internal/api/shared/dto"
)

func (h *handler) GetPackTypes(c *gin.Context) {
	assetType, err := parseAssetType(c.Query("assetType"))
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	types, err := h.Packs.GetPackTypes(c.Request.Context(), assetType)
	if err != nil {
		respondError(c, err, "Failed to fetch pack types")
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *handler) GetPackInventory(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}
	assetType, err := parseAssetType(c.Query("assetType"))
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	inventory, err := h.Packs.GetPackInventory(c.Request.Context(), wallet, assetType)
	if err != nil {
		respondError(c, err, "Failed to fetch pack inventory")
		return
	}
	c.JSON(http.StatusOK, inventory)
}

func (h *handler) BuyPack(c *gin.Context) {
	var req dto.BuyPackRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Packs.BuyPack(c.Request.Context(), req.WalletAddress, req.PackID, req.AssetType)
	if err != nil {
		respondError(c, err, "Failed to buy pack")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) OpenPack(c *gin.Context) {
	var req dto.OpenPackRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Packs.OpenPack(c.Request.Context(), req.WalletAddress, req.PackID)
	if err != nil {
		respondError(c, err, "Failed to open pack")
		return
	}
	c.JSON(http.StatusOK, result)
}
