package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-economy/internal/api/shared/constants"
	"github.com/feral-file/ff-economy/internal/api/shared/dto"
	"github.com/feral-file/ff-economy/internal/marketplace"
)

func (h *handler) GetListings(c *gin.Context) {
	var params ListingsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	params.cap()

	assetType, err := parseAssetType(params.AssetType)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	minPrice, err := parseOptionalDecimal("minPrice", params.MinPrice)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	maxPrice, err := parseOptionalDecimal("maxPrice", params.MaxPrice)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	page, err := h.Marketplace.GetListings(c.Request.Context(), marketplace.ListingQuery{
		Category:  params.Category,
		AssetType: assetType,
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		Page:      params.Page,
		Limit:     params.Limit,
	})
	if err != nil {
		respondError(c, err, "Failed to fetch listings")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *handler) GetMarketplaceStats(c *gin.Context) {
	stats, err := h.Marketplace.GetMarketplaceStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch marketplace stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handler) GetMyListings(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}
	params, err := parsePage(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	page, err := h.Marketplace.GetMyListings(c.Request.Context(), wallet, params.Page, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to fetch listings")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *handler) CreateListing(c *gin.Context) {
	var req dto.CreateListingRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Marketplace.CreateListing(c.Request.Context(), req.WalletAddress, marketplace.CreateListingRequest{
		AssetType: req.AssetType,
		AssetID:   req.AssetID,
		Price:     req.Price,
		Category:  req.Category,
	})
	if err != nil {
		respondError(c, err, "Failed to create listing")
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *handler) BuyItem(c *gin.Context) {
	listingID := c.Param(constants.LISTING_ID_PARAM)
	var req dto.BuyRequest
	if !bindBody(c, &req, &req.BuyerWalletAddress) {
		return
	}

	result, err := h.Marketplace.BuyItem(c.Request.Context(), req.BuyerWalletAddress, listingID)
	if err != nil {
		respondError(c, err, "Failed to buy listing")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) InstantSell(c *gin.Context) {
	var req dto.InstantSellRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Marketplace.InstantSell(c.Request.Context(), req.WalletAddress, req.AssetType, req.AssetID)
	if err != nil {
		respondError(c, err, "Failed to instant sell asset")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) UpdateListing(c *gin.Context) {
	listingID := c.Param(constants.LISTING_ID_PARAM)
	var req dto.UpdateListingRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	listing, err := h.Marketplace.UpdateListing(c.Request.Context(), req.WalletAddress, listingID, req.Price)
	if err != nil {
		respondError(c, err, "Failed to update listing")
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *handler) CancelListing(c *gin.Context) {
	listingID := c.Param(constants.LISTING_ID_PARAM)
	var req dto.WalletRequest
	if !bindBody(c, &req, &req.WalletAddress) {
		return
	}

	result, err := h.Marketplace.CancelListing(c.Request.Context(), req.WalletAddress, listingID)
	if err != nil {
		respondError(c, err, "Failed to cancel listing")
		return
	}
	c.JSON(http.StatusOK, result)
}
