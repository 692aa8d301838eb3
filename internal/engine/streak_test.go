package engine

import (
	"testing"
	"time"

	"wordrush/internal/models"
)

func dayAt(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

func TestUpdateStreak(t *testing.T) {
	day1 := dayAt(2026, time.March, 2, 9)

	tests := []struct {
		name         string
		lastActivity *time.Time
		streakDays   int
		now          time.Time
		wantStreak   int
	}{
		{
			name:         "first activity ever",
			lastActivity: nil,
			streakDays:   0,
			now:          day1,
			wantStreak:   1,
		},
		{
			name:         "same day keeps streak",
			lastActivity: &day1,
			streakDays:   4,
			now:          dayAt(2026, time.March, 2, 21),
			wantStreak:   4,
		},
		{
			name:         "next calendar day extends streak",
			lastActivity: &day1,
			streakDays:   4,
			now:          dayAt(2026, time.March, 3, 7),
			wantStreak:   5,
		},
		{
			name:         "late night to early morning still consecutive",
			lastActivity: timePtr(dayAt(2026, time.March, 2, 23)),
			streakDays:   1,
			now:          dayAt(2026, time.March, 3, 1),
			wantStreak:   2,
		},
		{
			name:         "two day gap resets streak",
			lastActivity: &day1,
			streakDays:   4,
			now:          dayAt(2026, time.March, 4, 9),
			wantStreak:   1,
		},
		{
			name:         "clock moved backwards resets streak",
			lastActivity: &day1,
			streakDays:   4,
			now:          dayAt(2026, time.March, 1, 9),
			wantStreak:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			profile := models.NewDefaultProfile(models.ProfileDaughter, "Daughter", 8)
			profile.LastActivityAt = tt.lastActivity
			profile.StreakDays = tt.streakDays

			updated := e.UpdateStreak(profile, tt.now)

			if updated.StreakDays != tt.wantStreak {
				t.Errorf("StreakDays = %d, want %d", updated.StreakDays, tt.wantStreak)
			}
			if updated.LastActivityAt == nil || !updated.LastActivityAt.Equal(tt.now) {
				t.Errorf("LastActivityAt = %v, want %v", updated.LastActivityAt, tt.now)
			}
		})
	}
}

func TestUpdateStreakSequence(t *testing.T) {
	e := newTestEngine()
	profile := models.NewDefaultProfile(models.ProfileDaughter, "Daughter", 8)

	profile = e.UpdateStreak(profile, dayAt(2026, time.March, 2, 10))
	if profile.StreakDays != 1 {
		t.Fatalf("after day 1: StreakDays = %d, want 1", profile.StreakDays)
	}

	profile = e.UpdateStreak(profile, dayAt(2026, time.March, 3, 10))
	if profile.StreakDays != 2 {
		t.Fatalf("after day 2: StreakDays = %d, want 2", profile.StreakDays)
	}

	// Skipping day 4 entirely breaks the streak
	profile = e.UpdateStreak(profile, dayAt(2026, time.March, 5, 10))
	if profile.StreakDays != 1 {
		t.Fatalf("after gap: StreakDays = %d, want 1", profile.StreakDays)
	}
}

func TestStreakAtRisk(t *testing.T) {
	now := dayAt(2026, time.March, 3, 12)

	tests := []struct {
		name         string
		lastActivity *time.Time
		want         bool
	}{
		{
			name:         "no activity yet",
			lastActivity: nil,
			want:         false,
		},
		{
			name:         "activity earlier today",
			lastActivity: timePtr(dayAt(2026, time.March, 3, 8)),
			want:         false,
		},
		{
			name:         "activity yesterday",
			lastActivity: timePtr(dayAt(2026, time.March, 2, 20)),
			want:         true,
		},
		{
			name:         "activity two days ago already broken",
			lastActivity: timePtr(dayAt(2026, time.March, 1, 20)),
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			profile := models.NewDefaultProfile(models.ProfileDaughter, "Daughter", 8)
			profile.LastActivityAt = tt.lastActivity

			result := e.StreakAtRisk(profile, now)
			if result != tt.want {
				t.Errorf("StreakAtRisk() = %v, want %v", result, tt.want)
			}
		})
	}
}

func TestStreakMessage(t *testing.T) {
	tests := []struct {
		name string
		days int
		want string
	}{
		{
			name: "no streak",
			days: 0,
			want: "Start your streak today!",
		},
		{
			name: "one day",
			days: 1,
			want: "Great start! Come back tomorrow!",
		},
		{
			name: "three days",
			days: 3,
			want: "🔥 3-day streak! You're on fire!",
		},
		{
			name: "five days",
			days: 5,
			want: "🔥 5-day streak! Keep going!",
		},
		{
			name: "week or more",
			days: 9,
			want: "🌟 Amazing! 9-day streak!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StreakMessage(tt.days)
			if result != tt.want {
				t.Errorf("StreakMessage(%d) = %q, want %q", tt.days, result, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
