package service

import (
	"errors"
	"log"

	"wordrush/internal/repository"
	"wordrush/internal/security"
)

// ErrWrongPIN is returned when the supplied PIN does not match the stored one
var ErrWrongPIN = errors.New("wrong PIN")

// SettingsStore is the persistence surface for the parent PIN.
// *repository.SettingsRepository satisfies it; tests use an in-memory fake.
type SettingsStore interface {
	GetParentPINHash() (string, error)
	SetParentPINHash(hash string) error
}

// AuthService gates the parent settings area behind a PIN. A successful
// PIN check yields a short-lived token for the protected endpoints.
type AuthService struct {
	settings SettingsStore
	tokens   *security.TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(settings SettingsStore, tokens *security.TokenIssuer) *AuthService {
	return &AuthService{settings: settings, tokens: tokens}
}

// EnsureDefaultPIN seeds the default parent PIN on first run. An existing
// PIN is left untouched.
func (s *AuthService) EnsureDefaultPIN() error {
	_, err := s.settings.GetParentPINHash()
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrSettingNotFound) {
		return err
	}

	hash, err := security.HashPIN(security.DefaultParentPIN)
	if err != nil {
		return err
	}
	log.Println("Seeding default parent PIN")
	return s.settings.SetParentPINHash(hash)
}

// Login verifies the parent PIN and issues a settings token
func (s *AuthService) Login(pin string) (string, error) {
	hash, err := s.settings.GetParentPINHash()
	if err != nil {
		return "", err
	}
	if !security.CheckPIN(hash, pin) {
		return "", ErrWrongPIN
	}
	return s.tokens.Issue()
}

// ChangePIN replaces the parent PIN after verifying the current one
func (s *AuthService) ChangePIN(currentPIN, newPIN string) error {
	hash, err := s.settings.GetParentPINHash()
	if err != nil {
		return err
	}
	if !security.CheckPIN(hash, currentPIN) {
		return ErrWrongPIN
	}
	if err := security.ValidatePINFormat(newPIN); err != nil {
		return err
	}

	newHash, err := security.HashPIN(newPIN)
	if err != nil {
		return err
	}
	return s.settings.SetParentPINHash(newHash)
}

// VerifyToken checks a settings token issued by Login
func (s *AuthService) VerifyToken(token string) error {
	return s.tokens.Verify(token)
}

var _ SettingsStore = (*repository.SettingsRepository)(nil)
