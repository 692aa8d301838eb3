package models

import "time"

// SaveDataVersion is the current save-data envelope version. Envelopes with
// an unknown version are treated as unreadable.
const SaveDataVersion = 1

// SaveProfiles holds both child profiles in the envelope
type SaveProfiles struct {
	Daughter *Profile `json:"daughter"`
	Son      *Profile `json:"son"`
}

// SaveData is the versioned envelope used for export, import and backups
type SaveData struct {
	Version     int          `json:"version"`
	Profiles    SaveProfiles `json:"profiles"`
	LastUpdated time.Time    `json:"lastUpdated"`
}
