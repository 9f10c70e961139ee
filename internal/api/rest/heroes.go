package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-economy/internal/api/shared/dto"
)

func (h *handler) GetHeroes(c *gin.Context) {
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

func (h *handler) LevelUpHero(c *gin.Context) {
	var req dto.HeroRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Leveling.LevelUpHero(c.Request.Context(), req.WalletAddress, req.HeroID)
	if err != nil {
		respondError(c, err, "Failed to level up hero")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) EquipItem(c *gin.Context) {
	var req dto.EquipRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Leveling.EquipItem(c.Request.Context(), req.WalletAddress, req.HeroID, req.ItemID)
	if err != nil {
		respondError(c, err, "Failed to equip item")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) UnequipItem(c *gin.Context) {
	var req dto.EquipRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Leveling.UnequipItem(c.Request.Context(), req.WalletAddress, req.HeroID, req.ItemID)
	if err != nil {
		respondError(c, err, "Failed to unequip item")
		return
	}
	c.JSON(http.StatusOK, result)
}
