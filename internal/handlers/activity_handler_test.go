package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wordrush/internal/models"
	"wordrush/internal/service"
)

func postJSON(t *testing.T, mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}

func TestSubmitReadingActivity(t *testing.T) {
	store := newMemProfileStore(models.DefaultProfiles()...)
	mux := newTestMux(t, store)

	recorder := postJSON(t, mux, "/api/profiles/daughter/activities/reading",
		`{"passageId":"tortoise-and-hare","wpm":80,"correctAnswers":2,"totalQuestions":2}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusOK, recorder.Body.String())
	}

	var outcome service.ActivityOutcome
	if err := json.Unmarshal(recorder.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if outcome.CoinsEarned != 20 {
		t.Errorf("CoinsEarned = %d, want 20", outcome.CoinsEarned)
	}
	if outcome.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", outcome.StreakDays)
	}

	saved, _ := store.GetProfile(models.ProfileDaughter)
	if saved.Coins != 20 {
		t.Errorf("saved Coins = %d, want 20", saved.Coins)
	}
}

func TestSubmitReadingActivityRejections(t *testing.T) {
	mux := newTestMux(t, newMemProfileStore(models.DefaultProfiles()...))

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "unknown profile",
			path:       "/api/profiles/neighbor/activities/reading",
			body:       `{"passageId":"tortoise-and-hare","wpm":80,"correctAnswers":2,"totalQuestions":2}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown passage",
			path:       "/api/profiles/daughter/activities/reading",
			body:       `{"passageId":"war-and-peace","wpm":80,"correctAnswers":2,"totalQuestions":2}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "score above total",
			path:       "/api/profiles/daughter/activities/reading",
			body:       `{"passageId":"tortoise-and-hare","wpm":80,"correctAnswers":3,"totalQuestions":2}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			path:       "/api/profiles/daughter/activities/reading",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			path:       "/api/profiles/daughter/activities/reading",
			body:       `{"passageId":"tortoise-and-hare","wpm":80,"correctAnswers":2,"totalQuestions":2,"cheatCode":true}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, mux, tt.path, tt.body)
			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", recorder.Code, tt.wantStatus, recorder.Body.String())
			}
		})
	}
}

func TestSubmitWordsActivity(t *testing.T) {
	store := newMemProfileStore(models.DefaultProfiles()...)
	mux := newTestMux(t, store)

	recorder := postJSON(t, mux, "/api/profiles/son/activities/words",
		`{"setId":1,"caughtWords":9,"totalWords":10}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusOK, recorder.Body.String())
	}

	var outcome service.ActivityOutcome
	if err := json.Unmarshal(recorder.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if outcome.CoinsEarned != 27 {
		t.Errorf("CoinsEarned = %d, want 27", outcome.CoinsEarned)
	}

	// 9/10 passes the mastery bar, so set 2 opens up
	saved, _ := store.GetProfile(models.ProfileSon)
	if saved.CurrentWordSet != 2 {
		t.Errorf("CurrentWordSet = %d, want 2", saved.CurrentWordSet)
	}
}

func TestSubmitWordsActivityInvalidSet(t *testing.T) {
	mux := newTestMux(t, newMemProfileStore(models.DefaultProfiles()...))

	recorder := postJSON(t, mux, "/api/profiles/son/activities/words",
		`{"setId":42,"caughtWords":5,"totalWords":10}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
}
