package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ActivityType discriminates the two kinds of recorded activities
type ActivityType string

const (
	ActivityReading ActivityType = "reading"
	ActivityWords   ActivityType = "words"
)

// ActivityResult is a completed activity outcome recorded on a profile.
// Concrete types are ReadingResult and WordResult; history is append-only
// and insertion-ordered.
type ActivityResult interface {
	ActivityType() ActivityType
	OccurredAt() time.Time
	Coins() int
	// Perfect reports whether every question or word was answered correctly
	Perfect() bool
}

// ReadingResult is the outcome of a Reading Race session
type ReadingResult struct {
	Timestamp      time.Time `json:"timestamp"`
	CoinsEarned    int       `json:"coinsEarned"`
	WPM            int       `json:"wpm"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	PassageID      string    `json:"passageId"`
}

func (r ReadingResult) ActivityType() ActivityType { return ActivityReading }
func (r ReadingResult) OccurredAt() time.Time      { return r.Timestamp }
func (r ReadingResult) Coins() int                 { return r.CoinsEarned }

func (r ReadingResult) Perfect() bool {
	return r.TotalQuestions > 0 && r.Score == r.TotalQuestions
}

// MarshalJSON adds the activityType discriminant
func (r ReadingResult) MarshalJSON() ([]byte, error) {
	type alias ReadingResult
	return json.Marshal(struct {
		ActivityType ActivityType `json:"activityType"`
		alias
	}{ActivityReading, alias(r)})
}

// WordResult is the outcome of a Word Catcher session
type WordResult struct {
	Timestamp   time.Time `json:"timestamp"`
	CoinsEarned int       `json:"coinsEarned"`
	SetID       int       `json:"setId"`
	Score       int       `json:"score"`
	TotalWords  int       `json:"totalWords"`
}

func (r WordResult) ActivityType() ActivityType { return ActivityWords }
func (r WordResult) OccurredAt() time.Time      { return r.Timestamp }
func (r WordResult) Coins() int                 { return r.CoinsEarned }

func (r WordResult) Perfect() bool {
	return r.TotalWords > 0 && r.Score == r.TotalWords
}

// MarshalJSON adds the activityType discriminant
func (r WordResult) MarshalJSON() ([]byte, error) {
	type alias WordResult
	return json.Marshal(struct {
		ActivityType ActivityType `json:"activityType"`
		alias
	}{ActivityWords, alias(r)})
}

// ActivityHistory is an ordered list of activity results that knows how to
// decode the tagged union form used in the save-data envelope
type ActivityHistory []ActivityResult

// UnmarshalJSON decodes each element based on its activityType discriminant
func (h *ActivityHistory) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	history := make(ActivityHistory, 0, len(raw))
	for i, entry := range raw {
		var probe struct {
			ActivityType ActivityType `json:"activityType"`
		}
		if err := json.Unmarshal(entry, &probe); err != nil {
			return fmt.Errorf("activity %d: %w", i, err)
		}

		switch probe.ActivityType {
		case ActivityReading:
			var result ReadingResult
			if err := json.Unmarshal(entry, &result); err != nil {
				return fmt.Errorf("activity %d: %w", i, err)
			}
			history = append(history, result)
		case ActivityWords:
			var result WordResult
			if err := json.Unmarshal(entry, &result); err != nil {
				return fmt.Errorf("activity %d: %w", i, err)
			}
			history = append(history, result)
		default:
			return fmt.Errorf("activity %d: unknown activity type %q", i, probe.ActivityType)
		}
	}

	*h = history
	return nil
}
