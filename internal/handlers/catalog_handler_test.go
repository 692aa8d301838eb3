package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wordrush/internal/models"
)

func TestCatalogEndpoints(t *testing.T) {
	mux := newTestMux(t, newMemProfileStore(models.DefaultProfiles()...))

	tests := []struct {
		name      string
		path      string
		wantCount int
	}{
		{"passages", "/api/catalog/passages", 12},
		{"wordsets", "/api/catalog/wordsets", 5},
		{"shop", "/api/catalog/shop", 3},
		{"badges", "/api/catalog/badges", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, req)

			if recorder.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
			}

			var items []json.RawMessage
			if err := json.Unmarshal(recorder.Body.Bytes(), &items); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(items) != tt.wantCount {
				t.Errorf("items = %d, want %d", len(items), tt.wantCount)
			}
		})
	}
}
