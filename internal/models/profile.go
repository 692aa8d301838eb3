package models

import "time"

// ProfileID identifies one of the two child profiles
type ProfileID string

const (
	ProfileDaughter ProfileID = "daughter"
	ProfileSon      ProfileID = "son"
)

// ItemID identifies an avatar customization item
type ItemID string

const (
	ItemHat     ItemID = "hat"
	ItemGlasses ItemID = "glasses"
	ItemCape    ItemID = "cape"
)

// UnlockedBadge records when a badge was first earned
type UnlockedBadge struct {
	BadgeID    BadgeID   `json:"badgeId"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// Profile is one child's complete game state. Engine operations treat it as
// an immutable snapshot: they clone, modify the clone, and return it.
type Profile struct {
	ID                ProfileID       `json:"id"`
	Name              string          `json:"name"`
	Age               int             `json:"age"`
	Coins             int             `json:"coins"`
	UnlockedItems     []ItemID        `json:"unlockedItems"`
	ActivityHistory   ActivityHistory `json:"activityHistory"`
	CurrentWordSet    int             `json:"currentWordSet"`
	CompletedWordSets []int           `json:"completedWordSets"`
	UnlockedBadges    []UnlockedBadge `json:"unlockedBadges"`
	LastActivityAt    *time.Time      `json:"lastActivityDate,omitempty"`
	StreakDays        int             `json:"streakDays"`
}

// NewDefaultProfile creates the initial state for a profile, preserving only
// identity. Used both for first-run seeding and for parent-triggered resets.
func NewDefaultProfile(id ProfileID, name string, age int) *Profile {
	return &Profile{
		ID:                id,
		Name:              name,
		Age:               age,
		Coins:             0,
		UnlockedItems:     []ItemID{},
		ActivityHistory:   ActivityHistory{},
		CurrentWordSet:    1,
		CompletedWordSets: []int{},
		UnlockedBadges:    []UnlockedBadge{},
		StreakDays:        0,
	}
}

// DefaultProfiles returns the built-in two-profile state
func DefaultProfiles() []*Profile {
	return []*Profile{
		NewDefaultProfile(ProfileDaughter, "Daughter", 8),
		NewDefaultProfile(ProfileSon, "Son", 5),
	}
}

// Clone returns a deep copy of the profile. ActivityResult values are
// immutable once recorded, so sharing the elements themselves is safe.
func (p *Profile) Clone() *Profile {
	clone := *p

	clone.UnlockedItems = make([]ItemID, len(p.UnlockedItems))
	copy(clone.UnlockedItems, p.UnlockedItems)

	clone.ActivityHistory = make(ActivityHistory, len(p.ActivityHistory))
	copy(clone.ActivityHistory, p.ActivityHistory)

	clone.CompletedWordSets = make([]int, len(p.CompletedWordSets))
	copy(clone.CompletedWordSets, p.CompletedWordSets)

	clone.UnlockedBadges = make([]UnlockedBadge, len(p.UnlockedBadges))
	copy(clone.UnlockedBadges, p.UnlockedBadges)

	if p.LastActivityAt != nil {
		t := *p.LastActivityAt
		clone.LastActivityAt = &t
	}

	return &clone
}

// HasItem reports whether the item has been unlocked
func (p *Profile) HasItem(itemID ItemID) bool {
	for _, id := range p.UnlockedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge has been unlocked
func (p *Profile) HasBadge(badgeID BadgeID) bool {
	for _, b := range p.UnlockedBadges {
		if b.BadgeID == badgeID {
			return true
		}
	}
	return false
}

// HasCompletedWordSet reports whether the word set has been mastered
func (p *Profile) HasCompletedWordSet(setID int) bool {
	for _, id := range p.CompletedWordSets {
		if id == setID {
			return true
		}
	}
	return false
}
