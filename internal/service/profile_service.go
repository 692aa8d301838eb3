package service

import (
	"errors"
	"fmt"
	"time"

	"wordrush/internal/catalog"
	"wordrush/internal/engine"
	"wordrush/internal/models"
	"wordrush/internal/repository"
)

// Input validation errors returned before any state change is made
var (
	ErrUnknownPassage = errors.New("unknown reading passage")
	ErrInvalidResult  = errors.New("invalid activity result")
)

// ProfileStore is the persistence surface the services need.
// *repository.ProfileRepository satisfies it; tests use an in-memory fake.
type ProfileStore interface {
	GetProfile(id models.ProfileID) (*models.Profile, error)
	ListProfiles() ([]*models.Profile, error)
	SaveProfile(profile *models.Profile) error
	SaveProfiles(profiles []*models.Profile) error
}

// ReadingInput is a completed Reading Race session as reported by the client
type ReadingInput struct {
	PassageID      string `json:"passageId"`
	WPM            int    `json:"wpm"`
	CorrectAnswers int    `json:"correctAnswers"`
	TotalQuestions int    `json:"totalQuestions"`
}

// WordsInput is a completed Word Catcher session as reported by the client
type WordsInput struct {
	SetID       int `json:"setId"`
	CaughtWords int `json:"caughtWords"`
	TotalWords  int `json:"totalWords"`
}

// ActivityOutcome is what the client needs to celebrate after an activity:
// the updated profile plus everything that changed because of it
type ActivityOutcome struct {
	Profile     *models.Profile `json:"profile"`
	CoinsEarned int             `json:"coinsEarned"`
	NewBadges   []models.Badge  `json:"newBadges"`
	StreakDays  int             `json:"streakDays"`
}

// StreakStatus describes the current streak for the home screen
type StreakStatus struct {
	StreakDays int    `json:"streakDays"`
	AtRisk     bool   `json:"atRisk"`
	Message    string `json:"message"`
}

// ProfileService handles profile state transitions and persistence
type ProfileService struct {
	store   ProfileStore
	engine  *engine.Engine
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewProfileService creates a new profile service
func NewProfileService(store ProfileStore, eng *engine.Engine, cat *catalog.Catalog) *ProfileService {
	return &ProfileService{
		store:   store,
		engine:  eng,
		catalog: cat,
		now:     time.Now,
	}
}

// GetProfile retrieves a single profile
func (s *ProfileService) GetProfile(id models.ProfileID) (*models.Profile, error) {
	return s.store.GetProfile(id)
}

// ListProfiles retrieves all profiles
func (s *ProfileService) ListProfiles() ([]*models.Profile, error) {
	return s.store.ListProfiles()
}

// SubmitReading records a completed Reading Race session: credits coins,
// advances the streak, evaluates badges, and persists the new snapshot
func (s *ProfileService) SubmitReading(id models.ProfileID, input ReadingInput) (*ActivityOutcome, error) {
	if _, ok := s.catalog.PassageByID(input.PassageID); !ok {
		return nil, ErrUnknownPassage
	}
	if input.TotalQuestions <= 0 || input.CorrectAnswers < 0 || input.CorrectAnswers > input.TotalQuestions {
		return nil, fmt.Errorf("%w: %d of %d answers", ErrInvalidResult, input.CorrectAnswers, input.TotalQuestions)
	}
	if input.WPM < 0 {
		return nil, fmt.Errorf("%w: negative wpm", ErrInvalidResult)
	}

	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := models.ReadingResult{
		Timestamp:      now,
		CoinsEarned:    engine.ReadingCoins(input.CorrectAnswers),
		WPM:            input.WPM,
		Score:          input.CorrectAnswers,
		TotalQuestions: input.TotalQuestions,
		PassageID:      input.PassageID,
	}

	next := s.engine.RecordActivity(profile, result)
	return s.finishActivity(next, result.CoinsEarned, now)
}

// SubmitWordMatching records a completed Word Catcher session: credits
// coins, applies mastery progression, advances the streak, evaluates
// badges, and persists the new snapshot
func (s *ProfileService) SubmitWordMatching(id models.ProfileID, input WordsInput) (*ActivityOutcome, error) {
	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, err
	}

	next, err := s.engine.ApplyWordSetResult(profile, input.SetID, input.CaughtWords, input.TotalWords)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := models.WordResult{
		Timestamp:   now,
		CoinsEarned: engine.WordCoins(input.CaughtWords),
		SetID:       input.SetID,
		Score:       input.CaughtWords,
		TotalWords:  input.TotalWords,
	}

	next = s.engine.RecordActivity(next, result)
	return s.finishActivity(next, result.CoinsEarned, now)
}

// finishActivity applies the shared tail of both activity flows: streak
// update, badge evaluation, and persistence
func (s *ProfileService) finishActivity(profile *models.Profile, coinsEarned int, now time.Time) (*ActivityOutcome, error) {
	profile = s.engine.UpdateStreak(profile, now)

	newBadges := s.unlockNewBadges(profile, now)

	if err := s.store.SaveProfile(profile); err != nil {
		return nil, err
	}

	return &ActivityOutcome{
		Profile:     profile,
		CoinsEarned: coinsEarned,
		NewBadges:   newBadges,
		StreakDays:  profile.StreakDays,
	}, nil
}

// unlockNewBadges records any newly earned badges on the profile and
// returns their catalog entries for display
func (s *ProfileService) unlockNewBadges(profile *models.Profile, now time.Time) []models.Badge {
	newBadges := []models.Badge{}
	for _, badgeID := range s.engine.EvaluateBadges(profile) {
		profile.UnlockedBadges = append(profile.UnlockedBadges, models.UnlockedBadge{
			BadgeID:    badgeID,
			UnlockedAt: now,
		})
		if badge, ok := s.catalog.BadgeByID(badgeID); ok {
			newBadges = append(newBadges, badge)
		}
	}
	return newBadges
}

// PurchaseItem unlocks an avatar item, spending coins. Owning every shop
// item can itself earn a badge, so badges are re-evaluated afterwards.
func (s *ProfileService) PurchaseItem(id models.ProfileID, itemID models.ItemID) (*ActivityOutcome, error) {
	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, err
	}

	item, ok := s.catalog.ShopItemByID(itemID)
	if !ok {
		return nil, engine.ErrUnknownItem
	}

	next, err := s.engine.UnlockItem(profile, itemID, item.Cost)
	if err != nil {
		return nil, err
	}

	newBadges := s.unlockNewBadges(next, s.now())

	if err := s.store.SaveProfile(next); err != nil {
		return nil, err
	}

	return &ActivityOutcome{
		Profile:    next,
		NewBadges:  newBadges,
		StreakDays: next.StreakDays,
	}, nil
}

// Streak reports the current streak status for the home screen
func (s *ProfileService) Streak(id models.ProfileID) (*StreakStatus, error) {
	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, err
	}

	return &StreakStatus{
		StreakDays: profile.StreakDays,
		AtRisk:     s.engine.StreakAtRisk(profile, s.now()),
		Message:    engine.StreakMessage(profile.StreakDays),
	}, nil
}

// BadgeProgress reports progress toward every badge for the badges screen
func (s *ProfileService) BadgeProgress(id models.ProfileID) ([]engine.BadgeProgress, error) {
	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, err
	}
	return s.engine.BadgeProgressFor(profile), nil
}

// ResetProfile restores a profile to its initial state, keeping only its
// identity (name and age)
func (s *ProfileService) ResetProfile(id models.ProfileID) (*models.Profile, error) {
	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, err
	}

	fresh := models.NewDefaultProfile(profile.ID, profile.Name, profile.Age)
	if err := s.store.SaveProfile(fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

var _ ProfileStore = (*repository.ProfileRepository)(nil)
