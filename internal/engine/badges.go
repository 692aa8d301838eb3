package engine

import "wordrush/internal/models"

// Badge thresholds
const (
	coinCollectorTarget = 50
	coinMasterTarget    = 200
	speedReaderWPM      = 100
	bookwormPassages    = 5
	dedicatedStreakDays = 3
)

// EvaluateBadges returns the badges whose unlock predicate is newly
// satisfied by the profile, in catalog evaluation order. Already-unlocked
// badges are never returned, so calling twice without a state change yields
// nothing the second time. The caller records the returned ids with an
// unlock timestamp.
//
// super-star is last in catalog order and treats badges unlocked earlier in
// the same pass as if they were already on the profile.
func (e *Engine) EvaluateBadges(p *models.Profile) []models.BadgeID {
	var newBadges []models.BadgeID

	unlocked := func(id models.BadgeID) bool {
		if p.HasBadge(id) {
			return true
		}
		for _, b := range newBadges {
			if b == id {
				return true
			}
		}
		return false
	}

	for _, badge := range e.catalog.Badges {
		if p.HasBadge(badge.ID) {
			continue
		}

		satisfied := false
		switch badge.ID {
		case models.BadgeFirstSteps:
			satisfied = len(p.ActivityHistory) >= 1
		case models.BadgeCoinCollector:
			satisfied = p.Coins >= coinCollectorTarget
		case models.BadgeCoinMaster:
			satisfied = p.Coins >= coinMasterTarget
		case models.BadgeSpeedReader:
			satisfied = bestWPM(p) >= speedReaderWPM
		case models.BadgeBookworm:
			satisfied = distinctPassages(p) >= bookwormPassages
		case models.BadgeLibraryMaster:
			satisfied = distinctPassages(p) >= len(e.catalog.Passages)
		case models.BadgeWordWizard:
			satisfied = p.HasCompletedWordSet(1)
		case models.BadgeVocabularyMaster:
			satisfied = len(p.CompletedWordSets) == e.catalog.MaxWordSet()
		case models.BadgePerfectScore:
			satisfied = hasPerfectScore(p)
		case models.BadgeDedicatedLearner:
			satisfied = p.StreakDays >= dedicatedStreakDays
		case models.BadgeFashionIcon:
			satisfied = len(p.UnlockedItems) == len(e.catalog.ShopItems)
		case models.BadgeSuperStar:
			satisfied = true
			for _, other := range e.catalog.Badges {
				if other.ID == models.BadgeSuperStar {
					continue
				}
				if !unlocked(other.ID) {
					satisfied = false
					break
				}
			}
		}

		if satisfied {
			newBadges = append(newBadges, badge.ID)
		}
	}

	return newBadges
}

// distinctPassages counts unique passages across all reading results
func distinctPassages(p *models.Profile) int {
	seen := make(map[string]bool)
	for _, a := range p.ActivityHistory {
		if r, ok := a.(models.ReadingResult); ok {
			seen[r.PassageID] = true
		}
	}
	return len(seen)
}

// bestWPM returns the highest reading speed recorded, 0 if none
func bestWPM(p *models.Profile) int {
	best := 0
	for _, a := range p.ActivityHistory {
		if r, ok := a.(models.ReadingResult); ok && r.WPM > best {
			best = r.WPM
		}
	}
	return best
}

// hasPerfectScore reports whether any recorded activity was answered 100%
// correctly
func hasPerfectScore(p *models.Profile) bool {
	for _, a := range p.ActivityHistory {
		if a.Perfect() {
			return true
		}
	}
	return false
}
