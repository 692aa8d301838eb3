package repository

import (
	"database/sql"
	"errors"

	"wordrush/internal/database"
)

const parentPINHashKey = "parent_pin_hash"

// ErrSettingNotFound is returned when a setting key has no stored value
var ErrSettingNotFound = errors.New("setting not found")

type SettingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting retrieves a setting value by key
func (r *SettingsRepository) GetSetting(key string) (string, error) {
	var value string
	query := `SELECT value FROM settings WHERE key = ?`
	err := r.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrSettingNotFound
	}
	return value, err
}

// SetSetting updates or inserts a setting
func (r *SettingsRepository) SetSetting(key, value string) error {
	query := r.db.Dialect.UpsertSettings()
	_, err := r.db.Exec(query, key, value)
	return err
}

// GetParentPINHash retrieves the stored bcrypt hash of the parent PIN
func (r *SettingsRepository) GetParentPINHash() (string, error) {
	return r.GetSetting(parentPINHashKey)
}

// SetParentPINHash stores the bcrypt hash of the parent PIN
func (r *SettingsRepository) SetParentPINHash(hash string) error {
	return r.SetSetting(parentPINHashKey, hash)
}
