package handlers

import (
	"errors"
	"net/http"

	"wordrush/internal/engine"
	"wordrush/internal/models"
	"wordrush/internal/repository"
	"wordrush/internal/service"
)

// ShopHandler handles avatar item purchases
type ShopHandler struct {
	profileService *service.ProfileService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(profileService *service.ProfileService) *ShopHandler {
	return &ShopHandler{profileService: profileService}
}

type purchaseRequest struct {
	ItemID models.ItemID `json:"itemId"`
}

// Purchase handles POST /api/profiles/{id}/shop/purchase
func (h *ShopHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}

	var req purchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	outcome, err := h.profileService.PurchaseItem(id, req.ItemID)
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusOK, outcome)
	case errors.Is(err, repository.ErrProfileNotFound):
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
	case errors.Is(err, engine.ErrUnknownItem):
		respondWithError(w, http.StatusBadRequest, "Unknown shop item", "", nil)
	case errors.Is(err, engine.ErrItemOwned):
		respondWithError(w, http.StatusConflict, "Item already unlocked", "", nil)
	case errors.Is(err, engine.ErrInsufficientCoins):
		respondWithError(w, http.StatusConflict, "Not enough coins", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Failed to purchase item", "", err)
	}
}
