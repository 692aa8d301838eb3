package engine

import "wordrush/internal/models"

// Coin reward formulas. These are the canonical business rules; an earlier
// revision of the word formula (5 + correct + last-word bonus) is retired.
const (
	readingBaseCoins      = 10
	readingCoinsPerAnswer = 5
	wordCoinsPerCatch     = 3
)

// ReadingCoins returns the coins earned for a reading session:
// 10 base plus 5 per correct comprehension answer.
func ReadingCoins(correctAnswers int) int {
	return readingBaseCoins + readingCoinsPerAnswer*correctAnswers
}

// WordCoins returns the coins earned for a word-matching session:
// 3 per correctly caught word.
func WordCoins(correctCount int) int {
	return wordCoinsPerCatch * correctCount
}

// RecordActivity appends a completed activity to the profile's history and
// credits its coins. The result must be well formed (valid discriminant,
// non-negative coins); the recorder itself has no failure modes.
func (e *Engine) RecordActivity(p *models.Profile, result models.ActivityResult) *models.Profile {
	next := p.Clone()
	next.ActivityHistory = append(next.ActivityHistory, result)
	next.Coins += result.Coins()
	return next
}
