package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"wordrush/internal/models"
)

// Import validation errors
var (
	ErrUnsupportedVersion = errors.New("unsupported save data version")
	ErrIncompleteSaveData = errors.New("save data is missing a profile")
)

// SaveDataService handles export and import of the versioned save-data
// envelope used for backups and transferring progress between devices
type SaveDataService struct {
	store ProfileStore
}

// NewSaveDataService creates a new save data service
func NewSaveDataService(store ProfileStore) *SaveDataService {
	return &SaveDataService{store: store}
}

// Export builds the current save-data envelope from stored profiles
func (s *SaveDataService) Export() (*models.SaveData, error) {
	daughter, err := s.store.GetProfile(models.ProfileDaughter)
	if err != nil {
		return nil, err
	}
	son, err := s.store.GetProfile(models.ProfileSon)
	if err != nil {
		return nil, err
	}

	return &models.SaveData{
		Version:     models.SaveDataVersion,
		Profiles:    models.SaveProfiles{Daughter: daughter, Son: son},
		LastUpdated: time.Now().UTC(),
	}, nil
}

// ExportToWriter writes the save-data envelope as indented JSON
func (s *SaveDataService) ExportToWriter(w io.Writer) error {
	data, err := s.Export()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportToFile writes the save-data envelope to a file
func (s *SaveDataService) ExportToFile(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Save data exported to %s", outputPath)
	return nil
}

// Import validates a save-data envelope and replaces both stored profiles
// atomically. Envelopes with an unknown version are rejected rather than
// partially applied.
func (s *SaveDataService) Import(data *models.SaveData) error {
	if data.Version != models.SaveDataVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, data.Version)
	}
	if data.Profiles.Daughter == nil || data.Profiles.Son == nil {
		return ErrIncompleteSaveData
	}
	if data.Profiles.Daughter.ID != models.ProfileDaughter || data.Profiles.Son.ID != models.ProfileSon {
		return fmt.Errorf("profile ids do not match their envelope slots")
	}

	return s.store.SaveProfiles([]*models.Profile{
		data.Profiles.Daughter,
		data.Profiles.Son,
	})
}

// ImportFromReader decodes and imports a save-data envelope
func (s *SaveDataService) ImportFromReader(r io.Reader) error {
	var data models.SaveData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return fmt.Errorf("failed to decode save data: %w", err)
	}
	return s.Import(&data)
}

// ImportFromFile reads and imports a save-data envelope from a file
func (s *SaveDataService) ImportFromFile(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	if err := s.ImportFromReader(file); err != nil {
		return err
	}

	log.Printf("Save data imported from %s", inputPath)
	return nil
}
