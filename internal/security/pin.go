package security

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// DefaultParentPIN is the PIN seeded on first run, before a parent changes it
const DefaultParentPIN = "1234"

// ErrInvalidPINFormat is returned when a PIN is not 4 to 8 digits
var ErrInvalidPINFormat = errors.New("PIN must be 4 to 8 digits")

// ValidatePINFormat checks that a PIN is 4 to 8 digits
func ValidatePINFormat(pin string) error {
	if len(pin) < 4 || len(pin) > 8 {
		return ErrInvalidPINFormat
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return ErrInvalidPINFormat
		}
	}
	return nil
}

// HashPIN creates a bcrypt hash of the PIN for storage
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPIN verifies a PIN against its stored bcrypt hash
func CheckPIN(hash, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
