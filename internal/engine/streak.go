package engine

import (
	"fmt"
	"time"

	"wordrush/internal/models"
)

// localDate truncates a time to its calendar day in local time
func localDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// sameDay reports whether two times fall on the same local calendar day
func sameDay(a, b time.Time) bool {
	return localDate(a).Equal(localDate(b))
}

// nextDay reports whether b falls exactly one calendar day after a
func nextDay(a, b time.Time) bool {
	return localDate(a).AddDate(0, 0, 1).Equal(localDate(b))
}

// UpdateStreak advances the consecutive-day streak for an activity
// completed at now. Same-day activity keeps the streak, the next calendar
// day extends it, and anything else (a gap of two or more days, or a clock
// that moved backwards) resets it to 1.
func (e *Engine) UpdateStreak(p *models.Profile, now time.Time) *models.Profile {
	next := p.Clone()
	nowCopy := now
	next.LastActivityAt = &nowCopy

	last := p.LastActivityAt
	switch {
	case last == nil:
		next.StreakDays = 1
	case sameDay(*last, now):
		// streak unchanged, timestamp refreshed
	case nextDay(*last, now):
		next.StreakDays = p.StreakDays + 1
	default:
		next.StreakDays = 1
	}

	return next
}

// StreakAtRisk reports whether the streak will break unless an activity is
// completed before the current day ends: the last activity exists, is not
// today, and was exactly yesterday.
func (e *Engine) StreakAtRisk(p *models.Profile, now time.Time) bool {
	if p.LastActivityAt == nil {
		return false
	}
	if sameDay(*p.LastActivityAt, now) {
		return false
	}
	return nextDay(*p.LastActivityAt, now)
}

// StreakMessage returns the encouragement line shown with the streak count
func StreakMessage(streakDays int) string {
	switch {
	case streakDays == 0:
		return "Start your streak today!"
	case streakDays == 1:
		return "Great start! Come back tomorrow!"
	case streakDays == 2:
		return "Two days in a row! Keep it up!"
	case streakDays == 3:
		return "🔥 3-day streak! You're on fire!"
	case streakDays >= 7:
		return fmt.Sprintf("🌟 Amazing! %d-day streak!", streakDays)
	default:
		return fmt.Sprintf("🔥 %d-day streak! Keep going!", streakDays)
	}
}
