package handlers

import "net/http"

// RegisterRoutes attaches every API endpoint to the mux. The settings
// endpoints sit behind the PIN-issued token; the login endpoint is rate
// limited to slow down PIN guessing.
func RegisterRoutes(
	mux *http.ServeMux,
	middleware *Middleware,
	profileHandler *ProfileHandler,
	activityHandler *ActivityHandler,
	shopHandler *ShopHandler,
	catalogHandler *CatalogHandler,
	settingsHandler *SettingsHandler,
) {
	// Profiles and progress
	mux.HandleFunc("GET /api/profiles", profileHandler.ListProfiles)
	mux.HandleFunc("GET /api/profiles/{id}", profileHandler.GetProfile)
	mux.HandleFunc("GET /api/profiles/{id}/streak", profileHandler.GetStreak)
	mux.HandleFunc("GET /api/profiles/{id}/badges/progress", profileHandler.GetBadgeProgress)

	// Activity submission
	mux.HandleFunc("POST /api/profiles/{id}/activities/reading", activityHandler.SubmitReading)
	mux.HandleFunc("POST /api/profiles/{id}/activities/words", activityHandler.SubmitWords)

	// Avatar shop
	mux.HandleFunc("POST /api/profiles/{id}/shop/purchase", shopHandler.Purchase)

	// Game content
	mux.HandleFunc("GET /api/catalog/passages", catalogHandler.GetPassages)
	mux.HandleFunc("GET /api/catalog/wordsets", catalogHandler.GetWordSets)
	mux.HandleFunc("GET /api/catalog/shop", catalogHandler.GetShopItems)
	mux.HandleFunc("GET /api/catalog/badges", catalogHandler.GetBadges)

	// Parent settings
	mux.HandleFunc("POST /api/settings/login", middleware.RateLimit(settingsHandler.Login))
	mux.HandleFunc("POST /api/settings/pin", middleware.RequireSettings(settingsHandler.ChangePIN))
	mux.HandleFunc("POST /api/settings/profiles/{id}/reset", middleware.RequireSettings(settingsHandler.ResetProfile))
	mux.HandleFunc("GET /api/settings/export", middleware.RequireSettings(settingsHandler.Export))
	mux.HandleFunc("POST /api/settings/import", middleware.RequireSettings(settingsHandler.Import))
	mux.HandleFunc("POST /api/settings/report", middleware.RequireSettings(settingsHandler.SendReport))
}
