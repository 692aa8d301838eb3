package engine

import "wordrush/internal/models"

// BadgeProgress describes how close a profile is to unlocking a badge
type BadgeProgress struct {
	BadgeID    models.BadgeID `json:"badgeId"`
	Current    int            `json:"current"`
	Required   int            `json:"required"`
	Percentage float64        `json:"percentage"`
}

// BadgeProgressFor computes current/required progress toward every badge in
// catalog order, for the progress dashboard.
func (e *Engine) BadgeProgressFor(p *models.Profile) []BadgeProgress {
	progress := make([]BadgeProgress, 0, len(e.catalog.Badges))
	for _, badge := range e.catalog.Badges {
		current, required := e.badgeCounts(p, badge.ID)
		progress = append(progress, BadgeProgress{
			BadgeID:    badge.ID,
			Current:    current,
			Required:   required,
			Percentage: percentage(current, required),
		})
	}
	return progress
}

func (e *Engine) badgeCounts(p *models.Profile, id models.BadgeID) (current, required int) {
	switch id {
	case models.BadgeFirstSteps:
		return min(len(p.ActivityHistory), 1), 1
	case models.BadgeCoinCollector:
		return p.Coins, coinCollectorTarget
	case models.BadgeCoinMaster:
		return p.Coins, coinMasterTarget
	case models.BadgeSpeedReader:
		return bestWPM(p), speedReaderWPM
	case models.BadgeBookworm:
		return distinctPassages(p), bookwormPassages
	case models.BadgeLibraryMaster:
		return distinctPassages(p), len(e.catalog.Passages)
	case models.BadgeWordWizard:
		if p.HasCompletedWordSet(1) {
			return 1, 1
		}
		return 0, 1
	case models.BadgeVocabularyMaster:
		return len(p.CompletedWordSets), e.catalog.MaxWordSet()
	case models.BadgePerfectScore:
		if hasPerfectScore(p) {
			return 1, 1
		}
		return 0, 1
	case models.BadgeDedicatedLearner:
		return p.StreakDays, dedicatedStreakDays
	case models.BadgeFashionIcon:
		return len(p.UnlockedItems), len(e.catalog.ShopItems)
	case models.BadgeSuperStar:
		count := 0
		for _, other := range e.catalog.Badges {
			if other.ID != models.BadgeSuperStar && p.HasBadge(other.ID) {
				count++
			}
		}
		return count, len(e.catalog.Badges) - 1
	default:
		return 0, 1
	}
}

func percentage(current, required int) float64 {
	if required <= 0 {
		return 0
	}
	pct := float64(current) / float64(required) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}
