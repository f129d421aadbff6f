package handler

import (
	"net/http"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/marketplace"
)

type AddItemRequest struct {
	Type   string `json:"type" validate:"required,notblank,max=100,excludesall=\x00\n\r\t"`
	Name   string `json:"name" validate:"required,notblank,max=100,excludesall=\x00\n\r\t"`
	Image  string `json:"image" validate:"max=2048"`
	Rarity string `json:"rarity" validate:"max=100"`
}

type AddItemResponse struct {
	Message     string `json:"message"`
	InventoryID int64  `json:"inventory_id"`
}

type SetBalanceRequest struct {
	Balance *int `json:"balance" validate:"required,min=0,max=1000000000"`
}

type BalanceResponse struct {
	Message string `json:"message"`
	Balance int    `json:"balance"`
}

// HandleGetInventory returns the caller's items and balance
// @Summary Get inventory
// @Description Returns the caller's items, most recently acquired first, and their balance
// @Tags inventory
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Success 200 {object} domain.Inventory
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		inv, err := svc.GetInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, OpGetInventory, err)
			return
		}

		respondJSON(w, http.StatusOK, inv)
	}
}

// HandleAddItem grants a new item to the caller
// @Summary Add item to inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param request body AddItemRequest true "Item details"
// @Success 201 {object} AddItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /inventory/items [post]
func HandleAddItem(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAddItem); err != nil {
			return
		}

		itemID, err := svc.AddInventoryItem(r.Context(), userID, domain.ItemFields{
			Type:   req.Type,
			Name:   req.Name,
			Image:  req.Image,
			Rarity: req.Rarity,
		})
		if err != nil {
			respondServiceError(w, r, OpAddItem, err)
			return
		}

		respondJSON(w, http.StatusCreated, AddItemResponse{Message: MsgItemAdded, InventoryID: itemID})
	}
}

// HandleSetBalance overwrites the caller's balance
// @Summary Set balance
// @Tags inventory
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param request body SetBalanceRequest true "New balance"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /inventory/balance [put]
func HandleSetBalance(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		var req SetBalanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpSetBalance); err != nil {
			return
		}

		if err := svc.SetBalance(r.Context(), userID, *req.Balance); err != nil {
			respondServiceError(w, r, OpSetBalance, err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{Message: MsgBalanceUpdated, Balance: *req.Balance})
	}
}
