package catalog

import "wordrush/internal/models"

// defaultBadges lists every badge in evaluation order. super-star stays
// last: its predicate counts all the other badges, including ones unlocked
// in the same evaluation pass.
var defaultBadges = []models.Badge{
	{
		ID:          models.BadgeFirstSteps,
		Name:        "First Steps",
		Description: "Complete your first activity!",
		Icon:        "👣",
		Requirement: "Complete 1 activity",
		Rarity:      models.RarityCommon,
	},
	{
		ID:          models.BadgeCoinCollector,
		Name:        "Coin Collector",
		Description: "Earn your first 50 coins",
		Icon:        "🪙",
		Requirement: "Earn 50 coins",
		Rarity:      models.RarityCommon,
	},
	{
		ID:          models.BadgeCoinMaster,
		Name:        "Coin Master",
		Description: "Become rich with 200 coins!",
		Icon:        "💰",
		Requirement: "Earn 200 coins",
		Rarity:      models.RarityRare,
	},
	{
		ID:          models.BadgeSpeedReader,
		Name:        "Speed Reader",
		Description: "Read at 100 words per minute!",
		Icon:        "⚡",
		Requirement: "Achieve 100+ WPM",
		Rarity:      models.RarityRare,
	},
	{
		ID:          models.BadgeBookworm,
		Name:        "Bookworm",
		Description: "Read 5 different stories",
		Icon:        "🐛",
		Requirement: "Read 5 unique passages",
		Rarity:      models.RarityCommon,
	},
	{
		ID:          models.BadgeLibraryMaster,
		Name:        "Library Master",
		Description: "Read every story in the library!",
		Icon:        "📚",
		Requirement: "Read all 12 passages",
		Rarity:      models.RarityEpic,
	},
	{
		ID:          models.BadgeWordWizard,
		Name:        "Word Wizard",
		Description: "Master your first word set",
		Icon:        "🧙",
		Requirement: "Complete Word Set 1",
		Rarity:      models.RarityCommon,
	},
	{
		ID:          models.BadgeVocabularyMaster,
		Name:        "Vocabulary Master",
		Description: "Master all 5 word sets!",
		Icon:        "📖",
		Requirement: "Complete all word sets",
		Rarity:      models.RarityEpic,
	},
	{
		ID:          models.BadgePerfectScore,
		Name:        "Perfect Score",
		Description: "Get 100% on any activity",
		Icon:        "⭐",
		Requirement: "Score 100% correct",
		Rarity:      models.RarityRare,
	},
	{
		ID:          models.BadgeDedicatedLearner,
		Name:        "Dedicated Learner",
		Description: "Practice 3 days in a row",
		Icon:        "🔥",
		Requirement: "3-day streak",
		Rarity:      models.RarityRare,
	},
	{
		ID:          models.BadgeFashionIcon,
		Name:        "Fashion Icon",
		Description: "Collect all avatar items",
		Icon:        "👔",
		Requirement: "Unlock all items",
		Rarity:      models.RarityEpic,
	},
	{
		ID:          models.BadgeSuperStar,
		Name:        "Super Star",
		Description: "Earn every other badge!",
		Icon:        "🌟",
		Requirement: "Unlock all badges",
		Rarity:      models.RarityLegendary,
	},
}
