package handlers

import (
	"errors"
	"net/http"

	"wordrush/internal/models"
	"wordrush/internal/repository"
	"wordrush/internal/service"
)

// ProfileHandler serves profile state and progress views
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// profileIDFromRequest extracts and validates the {id} path segment
func profileIDFromRequest(r *http.Request) (models.ProfileID, bool) {
	id := models.ProfileID(r.PathValue("id"))
	switch id {
	case models.ProfileDaughter, models.ProfileSon:
		return id, true
	}
	return "", false
}

// ListProfiles handles GET /api/profiles
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.ListProfiles()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load profiles", "", err)
		return
	}
	respondWithJSON(w, http.StatusOK, profiles)
}

// GetProfile handles GET /api/profiles/{id}
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}

	profile, err := h.profileService.GetProfile(id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load profile", "", err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// GetStreak handles GET /api/profiles/{id}/streak
func (h *ProfileHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}

	status, err := h.profileService.Streak(id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load streak", "", err)
		return
	}
	respondWithJSON(w, http.StatusOK, status)
}

// GetBadgeProgress handles GET /api/profiles/{id}/badges/progress
func (h *ProfileHandler) GetBadgeProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}

	progress, err := h.profileService.BadgeProgress(id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load badge progress", "", err)
		return
	}
	respondWithJSON(w, http.StatusOK, progress)
}
