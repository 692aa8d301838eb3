package handlers

import (
	"net/http"
	"testing"
	"time"

	"wordrush/internal/catalog"
	"wordrush/internal/engine"
	"wordrush/internal/models"
	"wordrush/internal/repository"
	"wordrush/internal/security"
	"wordrush/internal/service"
)

type memProfileStore struct {
	profiles map[models.ProfileID]*models.Profile
}

func newMemProfileStore(profiles ...*models.Profile) *memProfileStore {
	store := &memProfileStore{profiles: make(map[models.ProfileID]*models.Profile)}
	for _, p := range profiles {
		store.profiles[p.ID] = p
	}
	return store
}

func (s *memProfileStore) GetProfile(id models.ProfileID) (*models.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (s *memProfileStore) ListProfiles() ([]*models.Profile, error) {
	var profiles []*models.Profile
	for _, id := range []models.ProfileID{models.ProfileDaughter, models.ProfileSon} {
		if p, ok := s.profiles[id]; ok {
			profiles = append(profiles, p.Clone())
		}
	}
	return profiles, nil
}

func (s *memProfileStore) SaveProfile(profile *models.Profile) error {
	s.profiles[profile.ID] = profile.Clone()
	return nil
}

func (s *memProfileStore) SaveProfiles(profiles []*models.Profile) error {
	for _, p := range profiles {
		s.profiles[p.ID] = p.Clone()
	}
	return nil
}

type memSettingsStore struct {
	pinHash string
}

func (s *memSettingsStore) GetParentPINHash() (string, error) {
	if s.pinHash == "" {
		return "", repository.ErrSettingNotFound
	}
	return s.pinHash, nil
}

func (s *memSettingsStore) SetParentPINHash(hash string) error {
	s.pinHash = hash
	return nil
}

// newTestMux wires the full API against in-memory stores
func newTestMux(t *testing.T, store *memProfileStore) *http.ServeMux {
	t.Helper()

	cat := catalog.Default()
	eng := engine.New(cat)
	profileService := service.NewProfileService(store, eng, cat)
	saveDataService := service.NewSaveDataService(store)

	tokens := security.NewTokenIssuer("test-secret", 15*time.Minute)
	authService := service.NewAuthService(&memSettingsStore{}, tokens)
	if err := authService.EnsureDefaultPIN(); err != nil {
		t.Fatalf("EnsureDefaultPIN() error = %v", err)
	}

	reportService, err := service.NewReportService("", "", "", false)
	if err != nil {
		t.Fatalf("NewReportService() error = %v", err)
	}

	middleware := NewMiddleware(authService, security.NewRateLimiter(100, time.Minute))
	profileHandler := NewProfileHandler(profileService)
	activityHandler := NewActivityHandler(profileService)
	shopHandler := NewShopHandler(profileService)
	catalogHandler := NewCatalogHandler(cat)
	settingsHandler := NewSettingsHandler(authService, profileService, saveDataService, reportService)

	mux := http.NewServeMux()
	RegisterRoutes(mux, middleware, profileHandler, activityHandler, shopHandler, catalogHandler, settingsHandler)
	return mux
}
