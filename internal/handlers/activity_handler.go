package handlers

import (
	"errors"
	"net/http"

	"wordrush/internal/engine"
	"wordrush/internal/repository"
	"wordrush/internal/service"
)

// ActivityHandler records completed activity sessions
type ActivityHandler struct {
	profileService *service.ProfileService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(profileService *service.ProfileService) *ActivityHandler {
	return &ActivityHandler{profileService: profileService}
}

// SubmitReading handles POST /api/profiles/{id}/activities/reading
func (h *ActivityHandler) SubmitReading(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}

	var input service.ReadingInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	outcome, err := h.profileService.SubmitReading(id, input)
	if err != nil {
		respondActivityError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, outcome)
}

// SubmitWords handles POST /api/profiles/{id}/activities/words
func (h *ActivityHandler) SubmitWords(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
		return
	}

	var input service.WordsInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	outcome, err := h.profileService.SubmitWordMatching(id, input)
	if err != nil {
		respondActivityError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, outcome)
}

// respondActivityError maps activity submission failures to HTTP statuses
func respondActivityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		respondWithError(w, http.StatusNotFound, "Unknown profile", "", nil)
	case errors.Is(err, service.ErrUnknownPassage),
		errors.Is(err, service.ErrInvalidResult),
		errors.Is(err, engine.ErrInvalidWordSet),
		errors.Is(err, engine.ErrInvalidScore),
		errors.Is(err, engine.ErrInvalidTotal):
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Failed to record activity", "", err)
	}
}
