package handler

import (
	"net/http"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/logger"
	"github.com/osse101/BoobaMarket_Go/internal/marketplace"
)

// ListingsResponse is the market browse view
type ListingsResponse struct {
	Listings []domain.MarketListing `json:"listings"`
}

type CreateListingRequest struct {
	InventoryID int64 `json:"inventory_id" validate:"required,min=1"`
	Price       int   `json:"price" validate:"required,min=1,max=1000000000"`
}

type CreateListingResponse struct {
	Message   string `json:"message"`
	ListingID int64  `json:"listing_id"`
}

type BuyResponse struct {
	Message     string `json:"message"`
	Balance     int    `json:"balance"`
	InventoryID int64  `json:"inventory_id"`
	Price       int    `json:"price"`
	SellerID    string `json:"seller_id"`
}

// HandleListListings returns every active listing, newest first
// @Summary List active listings
// @Description Returns all active market listings, newest first
// @Tags market
// @Produce json
// @Success 200 {object} ListingsResponse
// @Failure 500 {object} ErrorResponse
// @Router /market/listings [get]
func HandleListListings(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.ListActive(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListListings, err)
			return
		}
		if listings == nil {
			listings = []domain.MarketListing{}
		}
		respondJSON(w, http.StatusOK, ListingsResponse{Listings: listings})
	}
}

// HandleCreateListing lists one of the caller's items for sale
// @Summary Create listing
// @Description List an owned item on the market at a fixed price
// @Tags market
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param request body CreateListingRequest true "Listing details"
// @Success 201 {object} CreateListingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /market/listings [post]
func HandleCreateListing(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		var req CreateListingRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpCreateListing); err != nil {
			return
		}

		listingID, err := svc.CreateListing(r.Context(), userID, req.InventoryID, req.Price)
		if err != nil {
			respondServiceError(w, r, OpCreateListing, err)
			return
		}

		respondJSON(w, http.StatusCreated, CreateListingResponse{
			Message:   MsgListingCreated,
			ListingID: listingID,
		})
	}
}

// HandleBuyListing buys a listing for the caller
// @Summary Buy listing
// @Description Pay the listing price to the seller and take ownership of the item
// @Tags market
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param listingID path int true "Listing ID"
// @Success 200 {object} BuyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /market/listings/{listingID}/buy [post]
func HandleBuyListing(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(w, r)
		if !ok {
			return
		}
		listingID, ok := GetListingIDParam(w, r)
		if !ok {
			return
		}

		result, err := svc.Buy(r.Context(), userID, listingID)
		if err != nil {
			respondServiceError(w, r, OpBuyListing, err)
			return
		}

		logger.FromContext(r.Context()).Info("Listing bought", "listing_id", listingID, "buyer_id", userID)
		respondJSON(w, http.StatusOK, BuyResponse{
			Message:     MsgPurchaseComplete,
			Balance:     result.BuyerBalance,
			InventoryID: result.InventoryItemID,
			Price:       result.Price,
			SellerID:    result.SellerID,
		})
	}
}

// HandleCancelListing withdraws one of the caller's listings
// @Summary Cancel listing
// @Tags market
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param listingID path int true "Listing ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /market/listings/{listingID} [delete]
func HandleCancelListing(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(w, r)
		if !ok {
			return
		}
		listingID, ok := GetListingIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Cancel(r.Context(), userID, listingID); err != nil {
			respondServiceError(w, r, OpCancelListing, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgListingCancelled})
	}
}
