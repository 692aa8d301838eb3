package handlers

import (
	"net/http"

	"wordrush/internal/catalog"
)

// CatalogHandler serves the static game content: reading passages, sight
// word sets, shop items and badge definitions
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetPassages handles GET /api/catalog/passages
func (h *CatalogHandler) GetPassages(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Passages)
}

// GetWordSets handles GET /api/catalog/wordsets
func (h *CatalogHandler) GetWordSets(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.WordSets)
}

// GetShopItems handles GET /api/catalog/shop
func (h *CatalogHandler) GetShopItems(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.ShopItems)
}

// GetBadges handles GET /api/catalog/badges
func (h *CatalogHandler) GetBadges(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Badges)
}
