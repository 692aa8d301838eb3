package handlers

import (
	"errors"
	"net/http"

	"wordrush/internal/repository"
	"wordrush/internal/security"
	"wordrush/internal/service"
)

// SettingsHandler serves the PIN-gated parent settings area: PIN login and
// change, profile resets, save-data export/import, and progress reports
type SettingsHandler struct {
	authService     *service.AuthService
	profileService  *service.ProfileService
	saveDataService *service.SaveDataService
	reportService   *service.ReportService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(
	authService *service.AuthService,
	profileService *service.ProfileService,
	saveDataService *service.SaveDataService,
	reportService *service.ReportService,
) *SettingsHandler {
	return &SettingsHandler{
		authService:     authService,
		profileService:  profileService,
		saveDataService: saveDataService,
		reportService:   reportService,
	}
}

type loginRequest struct {
	PIN string `json:"pin"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/settings/login
func (h *SettingsHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	token, err := h.authService.Login(req.PIN)
	if errors.Is(err, service.ErrWrongPIN) {
		respondWithError(w, http.StatusUnauthorized, "Wrong PIN", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to verify PIN", "", err)
		return
	}
	respondWithJSON(w, http.StatusOK, loginResponse{Token: token})
}

type changePINRequest struct {
	CurrentPIN string `json:"currentPin"`
	NewPIN     string `json:"newPin"`
}

// ChangePIN handles POST /api/settings/pin
func (h *SettingsHandler) ChangePIN(w http.ResponseWriter, r *http.Request) {
	var req changePINRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	err := h.authService.ChangePIN(req.CurrentPIN, req.NewPIN)
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, service.ErrWrongPIN):
		respondWithError(w, http.StatusUnauthorized, "Wrong PIN", "", nil)
	case errors.Is(err, security.ErrInvalidPINFormat):
		respondWithError(w, http.StatusBadRequest, "PIN must be 4 to 8 digits", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Failed to change PIN", "", err)
	}
}

// ResetProfile handles POST /api/settings/profiles/{id}/reset
func (h *SettingsHandler) ResetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}

	profile, err := h.profileService.ResetProfile(id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset profile", "", err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// Export handles GET /api/settings/export
func (h *SettingsHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="wordrush-save.json"`)
	if err := h.saveDataService.ExportToWriter(w); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to export save data", "", err)
	}
}

// Import handles POST /api/settings/import
func (h *SettingsHandler) Import(w http.ResponseWriter, r *http.Request) {
	err := h.saveDataService.ImportFromReader(r.Body)
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, service.ErrUnsupportedVersion),
		errors.Is(err, service.ErrIncompleteSaveData):
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	default:
		respondWithError(w, http.StatusBadRequest, "Invalid save data", "", err)
	}
}

// SendReport handles POST /api/settings/report
func (h *SettingsHandler) SendReport(w http.ResponseWriter, r *http.Request) {
	if !h.reportService.IsEnabled() {
		respondWithError(w, http.StatusServiceUnavailable, "Progress reports are not configured", "", nil)
		return
	}

	profiles, err := h.profileService.ListProfiles()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load profiles", "", err)
		return
	}

	if err := h.reportService.SendProgressReport(r.Context(), profiles); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to send progress report", "", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
