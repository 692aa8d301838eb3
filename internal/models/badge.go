package models

// BadgeID identifies an achievement badge
type BadgeID string

const (
	BadgeFirstSteps       BadgeID = "first-steps"
	BadgeCoinCollector    BadgeID = "coin-collector"
	BadgeCoinMaster       BadgeID = "coin-master"
	BadgeSpeedReader      BadgeID = "speed-reader"
	BadgeBookworm         BadgeID = "bookworm"
	BadgeLibraryMaster    BadgeID = "library-master"
	BadgeWordWizard       BadgeID = "word-wizard"
	BadgeVocabularyMaster BadgeID = "vocabulary-master"
	BadgePerfectScore     BadgeID = "perfect-score"
	BadgeDedicatedLearner BadgeID = "dedicated-learner"
	BadgeFashionIcon      BadgeID = "fashion-icon"
	BadgeSuperStar        BadgeID = "super-star"
)

// Rarity is a badge's rarity tier
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Badge is a static achievement definition. Unlock predicates live in the
// engine so that catalog entries stay plain data.
type Badge struct {
	ID          BadgeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Requirement string  `json:"requirement"`
	Rarity      Rarity  `json:"rarity"`
}
