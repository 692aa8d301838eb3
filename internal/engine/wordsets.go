package engine

import "wordrush/internal/models"

// masteryThreshold is the fraction of correct answers required to master a
// word set.
const masteryThreshold = 0.8

// ApplyWordSetResult evaluates a word-matching score against the mastery
// threshold. On first mastery the set is added to the completed list, and
// if it is the profile's current set (and not the last one) the current set
// advances by one. Completed sets never shrink; re-mastering is a no-op.
func (e *Engine) ApplyWordSetResult(p *models.Profile, setID, score, total int) (*models.Profile, error) {
	if setID < 1 || setID > e.catalog.MaxWordSet() {
		return nil, ErrInvalidWordSet
	}
	if total <= 0 {
		return nil, ErrInvalidTotal
	}
	if score < 0 || score > total {
		return nil, ErrInvalidScore
	}

	next := p.Clone()

	percentCorrect := float64(score) / float64(total)
	if percentCorrect < masteryThreshold {
		return next, nil
	}

	if !next.HasCompletedWordSet(setID) {
		next.CompletedWordSets = append(next.CompletedWordSets, setID)
	}

	if setID == next.CurrentWordSet && setID < e.catalog.MaxWordSet() {
		next.CurrentWordSet = setID + 1
	}

	return next, nil
}
