package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/api/middleware"
	"github.com/feral-file/ff-economy/internal/api/shared/constants"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/types"
)

// PageQueryParams holds the pagination of list endpoints
type PageQueryParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// ListingsQueryParams holds query parameters for GET /marketplace/listings
type ListingsQueryParams struct {
	PageQueryParams
	Category  string `form:"category"`
	AssetType string `form:"assetType"`
	MinPrice  string `form:"minPrice"`
	MaxPrice  string `form:"maxPrice"`
}

// parsePage binds and caps the pagination parameters
func parsePage(c *gin.Context) (PageQueryParams, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return params, err
	}
	params.cap()
	return params, nil
}

func (p *PageQueryParams) cap() {
	if p.Page < 1 {
		p.Page = constants.DEFAULT_PAGE
	}
	if p.Limit < 1 {
		p.Limit = constants.DEFAULT_PAGE_LIMIT
	}
	if p.Limit > constants.MAX_PAGE_LIMIT {
		p.Limit = constants.MAX_PAGE_LIMIT
	}
}

// parseOptionalDecimal parses s, returning nil when it is empty
func parseOptionalDecimal(name, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &d, nil
}

// parseAssetType validates an optional asset type filter
func parseAssetType(s string) (domain.AssetType, error) {
	if s == "" {
		return "", nil
	}
	t := domain.AssetType(s)
	if !domain.IsValidAssetType(t) {
		return "", fmt.Errorf("unsupported asset type: %s", s)
	}
	return t, nil
}

// walletParam returns the canonical wallet path parameter
func walletParam(c *gin.Context) (string, bool) {
	wallet := c.Param(constants.WALLET_PARAM)
	if wallet == "" {
		respondBadRequest(c, "Wallet address is required")
		return "", false
	}
	if !types.IsWalletAddress(wallet) {
		respondValidationError(c, fmt.Sprintf("invalid wallet address: %s", wallet))
		return "", false
	}
	return types.NormalizeWallet(wallet), true
}

// bindBody binds the JSON body, canonicalizes the wallet it acts for and checks that it is
// the authenticated wallet
func bindBody(c *gin.Context, body interface{}, wallet *string) bool {
	if err := c.ShouldBindJSON(body); err != nil {
		respondValidationError(c, err.Error())
		return false
	}
	if !types.IsWalletAddress(strings.TrimSpace(*wallet)) {
		respondValidationError(c, fmt.Sprintf("invalid wallet address: %s", *wallet))
		return false
	}
	*wallet = types.NormalizeWallet(*wallet)
	if !middleware.IsPrincipal(c, *wallet) {
		respondForbidden(c, "Wallet does not match the authenticated principal")
		return false
	}
	return true
}
