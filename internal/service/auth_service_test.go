package service

import (
	"errors"
	"testing"
	"time"

	"wordrush/internal/repository"
	"wordrush/internal/security"
)

type fakeSettingsStore struct {
	pinHash string
}

func (s *fakeSettingsStore) GetParentPINHash() (string, error) {
	if s.pinHash == "" {
		return "", repository.ErrSettingNotFound
	}
	return s.pinHash, nil
}

func (s *fakeSettingsStore) SetParentPINHash(hash string) error {
	s.pinHash = hash
	return nil
}

func newTestAuthService() (*AuthService, *fakeSettingsStore) {
	store := &fakeSettingsStore{}
	tokens := security.NewTokenIssuer("test-secret", 15*time.Minute)
	return NewAuthService(store, tokens), store
}

func TestEnsureDefaultPIN(t *testing.T) {
	svc, store := newTestAuthService()

	if err := svc.EnsureDefaultPIN(); err != nil {
		t.Fatalf("EnsureDefaultPIN() error = %v", err)
	}
	if store.pinHash == "" {
		t.Fatal("default PIN hash should be stored")
	}
	if !security.CheckPIN(store.pinHash, security.DefaultParentPIN) {
		t.Error("stored hash should match the default PIN")
	}

	// A second call must not replace an existing PIN
	first := store.pinHash
	if err := svc.EnsureDefaultPIN(); err != nil {
		t.Fatalf("EnsureDefaultPIN() error = %v", err)
	}
	if store.pinHash != first {
		t.Error("existing PIN hash should not be replaced")
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	if err := svc.EnsureDefaultPIN(); err != nil {
		t.Fatalf("EnsureDefaultPIN() error = %v", err)
	}

	token, err := svc.Login(security.DefaultParentPIN)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := svc.VerifyToken(token); err != nil {
		t.Errorf("VerifyToken() error = %v, want nil", err)
	}

	if _, err := svc.Login("0000"); !errors.Is(err, ErrWrongPIN) {
		t.Errorf("Login() with wrong PIN error = %v, want %v", err, ErrWrongPIN)
	}
}

func TestChangePIN(t *testing.T) {
	svc, _ := newTestAuthService()
	if err := svc.EnsureDefaultPIN(); err != nil {
		t.Fatalf("EnsureDefaultPIN() error = %v", err)
	}

	if err := svc.ChangePIN("0000", "5678"); !errors.Is(err, ErrWrongPIN) {
		t.Errorf("ChangePIN() with wrong current PIN error = %v, want %v", err, ErrWrongPIN)
	}

	if err := svc.ChangePIN(security.DefaultParentPIN, "12"); !errors.Is(err, security.ErrInvalidPINFormat) {
		t.Errorf("ChangePIN() with short new PIN error = %v, want %v", err, security.ErrInvalidPINFormat)
	}

	if err := svc.ChangePIN(security.DefaultParentPIN, "5678"); err != nil {
		t.Fatalf("ChangePIN() error = %v", err)
	}

	if _, err := svc.Login("5678"); err != nil {
		t.Errorf("Login() with new PIN error = %v, want nil", err)
	}
	if _, err := svc.Login(security.DefaultParentPIN); !errors.Is(err, ErrWrongPIN) {
		t.Errorf("Login() with old PIN error = %v, want %v", err, ErrWrongPIN)
	}
}
