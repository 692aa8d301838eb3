package models

// ComprehensionQuestion is a multiple-choice question about a passage
type ComprehensionQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// ReadingPassage is a story used by the Reading Race activity
type ReadingPassage struct {
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	Text      string                  `json:"text"`
	WordCount int                     `json:"wordCount"`
	Questions []ComprehensionQuestion `json:"questions"`
}

// SightWordSet is a numbered set of sight words for the Word Catcher game.
// Sets are mastered in order, 1 through 5.
type SightWordSet struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// ShopItem is an avatar customization item purchasable with coins
type ShopItem struct {
	ID    ItemID `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Cost  int    `json:"cost"`
}
