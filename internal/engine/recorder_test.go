package engine

import (
	"testing"
	"time"

	"wordrush/internal/catalog"
	"wordrush/internal/models"
)

func newTestEngine() *Engine {
	return New(catalog.Default())
}

func TestReadingCoins(t *testing.T) {
	tests := []struct {
		name           string
		correctAnswers int
		want           int
	}{
		{
			name:           "no correct answers still earns base",
			correctAnswers: 0,
			want:           10,
		},
		{
			name:           "three correct answers",
			correctAnswers: 3,
			want:           25,
		},
		{
			name:           "two correct answers",
			correctAnswers: 2,
			want:           20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReadingCoins(tt.correctAnswers)
			if result != tt.want {
				t.Errorf("ReadingCoins(%d) = %v, want %v", tt.correctAnswers, result, tt.want)
			}
		})
	}
}

func TestWordCoins(t *testing.T) {
	tests := []struct {
		name         string
		correctCount int
		want         int
	}{
		{
			name:         "no catches",
			correctCount: 0,
			want:         0,
		},
		{
			name:         "seven catches",
			correctCount: 7,
			want:         21,
		},
		{
			name:         "full set of ten",
			correctCount: 10,
			want:         30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WordCoins(tt.correctCount)
			if result != tt.want {
				t.Errorf("WordCoins(%d) = %v, want %v", tt.correctCount, result, tt.want)
			}
		})
	}
}

func TestRecordActivityAppendsAndCredits(t *testing.T) {
	e := newTestEngine()
	profile := models.NewDefaultProfile(models.ProfileDaughter, "Daughter", 8)
	profile.Coins = 5

	first := models.ReadingResult{
		Timestamp:      time.Now(),
		CoinsEarned:    25,
		WPM:            90,
		Score:          3,
		TotalQuestions: 3,
		PassageID:      "tortoise-and-hare",
	}
	second := models.WordResult{
		Timestamp:   time.Now(),
		CoinsEarned: 21,
		SetID:       1,
		Score:       7,
		TotalWords:  10,
	}

	updated := e.RecordActivity(profile, first)
	updated = e.RecordActivity(updated, second)

	if updated.Coins != 51 {
		t.Errorf("Coins = %d, want 51", updated.Coins)
	}
	if len(updated.ActivityHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(updated.ActivityHistory))
	}
	if updated.ActivityHistory[0].ActivityType() != models.ActivityReading {
		t.Errorf("first entry type = %v, want reading", updated.ActivityHistory[0].ActivityType())
	}
	if updated.ActivityHistory[1].ActivityType() != models.ActivityWords {
		t.Errorf("second entry type = %v, want words", updated.ActivityHistory[1].ActivityType())
	}
}

func TestRecordActivityDoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	profile := models.NewDefaultProfile(models.ProfileSon, "Son", 5)

	result := models.WordResult{
		Timestamp:   time.Now(),
		CoinsEarned: 9,
		SetID:       1,
		Score:       3,
		TotalWords:  10,
	}

	updated := e.RecordActivity(profile, result)

	if profile.Coins != 0 {
		t.Errorf("input profile coins = %d, want 0", profile.Coins)
	}
	if len(profile.ActivityHistory) != 0 {
		t.Errorf("input profile history length = %d, want 0", len(profile.ActivityHistory))
	}
	if updated.Coins != 9 {
		t.Errorf("updated profile coins = %d, want 9", updated.Coins)
	}
}

func TestCoinsMatchHistoryAfterMixedOperations(t *testing.T) {
	e := newTestEngine()
	profile := models.NewDefaultProfile(models.ProfileDaughter, "Daughter", 8)

	earned := 0
	for i := 0; i < 5; i++ {
		coins := ReadingCoins(2)
		profile = e.RecordActivity(profile, models.ReadingResult{
			Timestamp:      time.Now(),
			CoinsEarned:    coins,
			WPM:            80,
			Score:          2,
			TotalQuestions: 2,
			PassageID:      "lion-and-mouse",
		})
		earned += coins
	}

	updated, err := e.UnlockItem(profile, models.ItemHat, 10)
	if err != nil {
		t.Fatalf("UnlockItem() error = %v", err)
	}

	if updated.Coins != earned-10 {
		t.Errorf("Coins = %d, want %d (earned %d minus 10 spent)", updated.Coins, earned-10, earned)
	}
}
