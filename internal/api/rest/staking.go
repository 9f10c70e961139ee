package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-economy/internal/api/shared/dto"
)

func (h *handler) GetStakingPools(c *gin.Context) {
	pools, err := h.Staking.GetStakingPools(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch staking pools")
		return
	}
	c.JSON(http.StatusOK, pools)
}

func (h *handler) GetStakingInfo(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	info, err := h.Staking.GetStakingInfo(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err, "Failed to fetch staking info")
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *handler) StakeTokens(c *gin.Context) {
	var req dto.StakeRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Staking.StakeTokens(c.Request.Context(), req.WalletAddress, req.PoolID, req.Amount)
	if err != nil {
		respondError(c, err, "Failed to stake tokens")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) UnstakeTokens(c *gin.Context) {
	var req dto.PositionRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Staking.UnstakeTokens(c.Request.Context(), req.WalletAddress, req.StakingID)
	if err != nil {
		respondError(c, err, "Failed to unstake tokens")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) ClaimRewards(c *gin.Context) {
	var req dto.PositionRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Staking.ClaimRewards(c.Request.Context(), req.WalletAddress, req.StakingID)
	if err != nil {
		respondError(c, err, "Failed to claim rewards")
		return
	}
	c.JSON(http.StatusOK, result)
}
