package engine

import (
	"errors"
	"testing"

	"wordrush/internal/models"
)

func TestApplyWordSetResultMastery(t *testing.T) {
	tests := []struct {
		name           string
		setID          int
		score          int
		total          int
		wantCompleted  bool
		wantCurrentSet int
	}{
		{
			name:           "exactly 80 percent masters the set",
			setID:          1,
			score:          8,
			total:          10,
			wantCompleted:  true,
			wantCurrentSet: 2,
		},
		{
			name:           "70 percent does not master",
			setID:          1,
			score:          7,
			total:          10,
			wantCompleted:  false,
			wantCurrentSet: 1,
		},
		{
			name:           "perfect score masters the set",
			setID:          1,
			score:          10,
			total:          10,
			wantCompleted:  true,
			wantCurrentSet: 2,
		},
		{
			name:           "zero score keeps everything unchanged",
			setID:          1,
			score:          0,
			total:          10,
			wantCompleted:  false,
			wantCurrentSet: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			profile := models.NewDefaultProfile(models.ProfileSon, "Son", 5)

			updated, err := e.ApplyWordSetResult(profile, tt.setID, tt.score, tt.total)
			if err != nil {
				t.Fatalf("ApplyWordSetResult() error = %v", err)
			}

			if updated.HasCompletedWordSet(tt.setID) != tt.wantCompleted {
				t.Errorf("completed = %v, want %v", updated.HasCompletedWordSet(tt.setID), tt.wantCompleted)
			}
			if updated.CurrentWordSet != tt.wantCurrentSet {
				t.Errorf("CurrentWordSet = %d, want %d", updated.CurrentWordSet, tt.wantCurrentSet)
			}
		})
	}
}

func TestApplyWordSetResultNoDuplicates(t *testing.T) {
	e := newTestEngine()
	profile := models.NewDefaultProfile(models.ProfileSon, "Son", 5)

	updated, err := e.ApplyWordSetResult(profile, 1, 9, 10)
	if err != nil {
		t.Fatalf("first mastery error = %v", err)
	}
	updated, err = e.ApplyWordSetResult(updated, 1, 10, 10)
	if err != nil {
		t.Fatalf("second mastery error = %v", err)
	}

	if len(updated.CompletedWordSets) != 1 {
		t.Errorf("CompletedWordSets length = %d, want 1", len(updated.CompletedWordSets))
	}
	if updated.CurrentWordSet != 2 {
		t.Errorf("CurrentWordSet = %d, want 2 (re-mastering must not advance again)", updated.CurrentWordSet)
	}
}

func TestApplyWordSetResultLastSetDoesNotAdvance(t *testing.T) {
	e := newTestEngine()
	profile := models.NewDefaultProfile(models.ProfileSon, "Son", 5)
	profile.CurrentWordSet = 5
	profile.CompletedWordSets = []int{1, 2, 3, 4}

	updated, err := e.ApplyWordSetResult(profile, 5, 10, 10)
	if err != nil {
		t.Fatalf("ApplyWordSetResult() error = %v", err)
	}

	if updated.CurrentWordSet != 5 {
		t.Errorf("CurrentWordSet = %d, want 5", updated.CurrentWordSet)
	}
	if len(updated.CompletedWordSets) != 5 {
		t.Errorf("CompletedWordSets length = %d, want 5", len(updated.CompletedWordSets))
	}
}

func TestApplyWordSetResultNonCurrentSet(t *testing.T) {
	// Mastering an earlier set again must not move the current set pointer
	e := newTestEngine()
	profile := models.NewDefaultProfile(models.ProfileSon, "Son", 5)
	profile.CurrentWordSet = 3
	profile.CompletedWordSets = []int{1, 2}

	updated, err := e.ApplyWordSetResult(profile, 1, 10, 10)
	if err != nil {
		t.Fatalf("ApplyWordSetResult() error = %v", err)
	}

	if updated.CurrentWordSet != 3 {
		t.Errorf("CurrentWordSet = %d, want 3", updated.CurrentWordSet)
	}
}

func TestApplyWordSetResultContractViolations(t *testing.T) {
	tests := []struct {
		name    string
		setID   int
		score   int
		total   int
		wantErr error
	}{
		{
			name:    "zero total",
			setID:   1,
			score:   0,
			total:   0,
			wantErr: ErrInvalidTotal,
		},
		{
			name:    "negative total",
			setID:   1,
			score:   0,
			total:   -3,
			wantErr: ErrInvalidTotal,
		},
		{
			name:    "set id zero",
			setID:   0,
			score:   8,
			total:   10,
			wantErr: ErrInvalidWordSet,
		},
		{
			name:    "set id above catalog max",
			setID:   6,
			score:   8,
			total:   10,
			wantErr: ErrInvalidWordSet,
		},
		{
			name:    "negative score",
			setID:   1,
			score:   -1,
			total:   10,
			wantErr: ErrInvalidScore,
		},
		{
			name:    "score above total",
			setID:   1,
			score:   11,
			total:   10,
			wantErr: ErrInvalidScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			profile := models.NewDefaultProfile(models.ProfileSon, "Son", 5)

			_, err := e.ApplyWordSetResult(profile, tt.setID, tt.score, tt.total)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ApplyWordSetResult() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
