package marketplace

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return domain.NewValidationError("price must be positive")
	}
	if !price.Equal(price.Truncate(domain.TOKEN_DECIMALS)) {
		return domain.NewValidationError("price supports at most %d decimals", domain.TOKEN_DECIMALS)
	}
	return nil
}

// CreateListing locks an asset of the wallet and lists it
func (e *engine) CreateListing(ctx context.Context, wallet string, req CreateListingRequest) (*ListingResult, error) {
	if !domain.IsValidAssetType(req.AssetType) {
		return nil, domain.NewValidationError("invalid asset type: %s", req.AssetType)
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}

	a, err := e.loadAsset(ctx, wallet, req.AssetType, req.AssetID)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.AssetStatusActive {
		return nil, domain.ErrAssetLocked
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = a.Category
	}
	if category == "" {
		category = domain.DEFAULT_CATEGORY
	}

	listing, err := e.store.CreateListing(ctx, store.CreateListingInput{
		ID:           uuid.NewString(),
		AssetType:    a.Type,
		ItemID:       a.ID,
		ItemName:     a.label(),
		Category:     category,
		Price:        req.Price,
		SellerWallet: wallet,
		ListedAt:     e.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	result := &ListingResult{Listing: listing}
	tx, err := e.recorder.RecordListing(ctx, wallet, listing.ItemName, recorder.Details{
		"listingId": listing.ID,
		"assetType": listing.AssetType,
		"assetId":   listing.ItemID,
		"price":     listing.Price.String(),
		"category":  listing.Category,
	})
	if err != nil {
		result.WarnErr("failed to record listing", err)
	}
	result.Transaction = tx

	logger.InfoCtx(ctx, "Asset listed",
		zap.String("wallet", wallet),
		zap.String("listingID", listing.ID),
		zap.String("assetType", string(listing.AssetType)),
		zap.Int64("assetID", listing.ItemID))

	return result, nil
}

// UpdateListing changes the price of an active listing of the wallet
func (e *engine) UpdateListing(ctx context.Context, wallet, listingID string, price decimal.Decimal) (*schema.MarketplaceListing, error) {
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	listing, err := e.store.UpdateListingPrice(ctx, listingID, wallet, price)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Listing price updated",
		zap.String("listingID", listingID),
		zap.String("price", price.String()))

	return listing, nil
}

// CancelListing cancels an active listing of the wallet and unlocks the asset
func (e *engine) CancelListing(ctx context.Context, wallet, listingID string) (*ListingResult, error) {
	listing, err := e.store.CancelListing(ctx, listingID, wallet, e.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	result := &ListingResult{Listing: listing}
	tx, err := e.recorder.RecordCancel(ctx, wallet, listing.ItemName, recorder.Details{
		"listingId": listing.ID,
		"assetType": listing.AssetType,
		"assetId":   listing.ItemID,
	})
	if err != nil {
		result.WarnErr("failed to record cancellation", err)
	}
	result.Transaction = tx

	logger.InfoCtx(ctx, "Listing cancelled", zap.String("wallet", wallet), zap.String("listingID", listingID))

	return result, nil
}

// GetListings returns active listings newest first
func (e *engine) GetListings(ctx context.Context, query ListingQuery) (*ListingPage, error) {
	if query.AssetType != "" && !domain.IsValidAssetType(query.AssetType) {
		return nil, domain.NewValidationError("invalid asset type: %s", query.AssetType)
	}
	if query.MinPrice != nil && query.MaxPrice != nil && query.MinPrice.GreaterThan(*query.MaxPrice) {
		return nil, domain.NewValidationError("minPrice must not exceed maxPrice")
	}

	category := strings.TrimSpace(query.Category)
	if strings.EqualFold(category, "all") {
		category = ""
	}

	return e.listings(ctx, store.ListingFilter{
		Category:  category,
		AssetType: query.AssetType,
		MinPrice:  query.MinPrice,
		MaxPrice:  query.MaxPrice,
	}, query.Page, query.Limit)
}

// GetMyListings returns the active listings of the wallet newest first
func (e *engine) GetMyListings(ctx context.Context, wallet string, page, limit int) (*ListingPage, error) {
	return e.listings(ctx, store.ListingFilter{SellerWallet: wallet}, page, limit)
}

func (e *engine) listings(ctx context.Context, filter store.ListingFilter, page, limit int) (*ListingPage, error) {
	active := domain.ListingStatusActive
	page, limit, offset := pagination(page, limit)
	filter.Status = &active
	filter.Limit = limit
	filter.Offset = offset

	listings, total, err := e.store.GetListings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}
	if listings == nil {
		listings = []schema.MarketplaceListing{}
	}

	return &ListingPage{
		Listings: listings,
		Total:    total,
		Page:     page,
		Limit:    limit,
		HasMore:  int64(offset+len(listings)) < total,
	}, nil
}

// GetMarketplaceStats summarises active listings and sales of the last seven days
func (e *engine) GetMarketplaceStats(ctx context.Context) (*Stats, error) {
	since := e.clock.Now().UTC().AddDate(0, 0, -domain.MARKETPLACE_STATS_DAY)

	s, err := e.store.GetMarketplaceStats(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get marketplace stats: %w", err)
	}

	stats := &Stats{
		ActiveListings: s.ActiveListings,
		RecentSales:    s.SoldSince,
		TotalVolume:    s.TotalVolume,
		AveragePrice:   s.AveragePrice,
		AssetTypes:     make(map[string]int64, len(s.ActiveByType)),
		Categories:     make(map[string]int64, len(s.ActiveByCategory)),
		Since:          since,
	}
	for _, c := range s.ActiveByType {
		stats.AssetTypes[c.Key] = c.Count
	}
	for _, c := range s.ActiveByCategory {
		stats.Categories[c.Key] = c.Count
	}

	return stats, nil
}
