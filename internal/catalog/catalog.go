package catalog

import (
	"fmt"

	"wordrush/internal/models"
)

// Catalog is the read-only content reference consumed by the engine and
// handlers. It is built once at startup and injected everywhere it is
// needed rather than accessed as ambient global state.
type Catalog struct {
	Passages  []models.ReadingPassage
	WordSets  []models.SightWordSet
	ShopItems []models.ShopItem
	// Badges are in evaluation order; super-star must be last because its
	// predicate depends on every other badge
	Badges []models.Badge
}

// Default returns the built-in content catalog
func Default() *Catalog {
	return &Catalog{
		Passages:  defaultPassages,
		WordSets:  defaultWordSets,
		ShopItems: defaultShopItems,
		Badges:    defaultBadges,
	}
}

// PassageByID looks up a reading passage
func (c *Catalog) PassageByID(id string) (models.ReadingPassage, bool) {
	for _, p := range c.Passages {
		if p.ID == id {
			return p, true
		}
	}
	return models.ReadingPassage{}, false
}

// WordSetByID looks up a sight-word set
func (c *Catalog) WordSetByID(id int) (models.SightWordSet, bool) {
	for _, s := range c.WordSets {
		if s.ID == id {
			return s, true
		}
	}
	return models.SightWordSet{}, false
}

// ShopItemByID looks up a shop item
func (c *Catalog) ShopItemByID(id models.ItemID) (models.ShopItem, bool) {
	for _, item := range c.ShopItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.ShopItem{}, false
}

// BadgeByID looks up a badge definition
func (c *Catalog) BadgeByID(id models.BadgeID) (models.Badge, bool) {
	for _, b := range c.Badges {
		if b.ID == id {
			return b, true
		}
	}
	return models.Badge{}, false
}

// MaxWordSet returns the highest word-set ID
func (c *Catalog) MaxWordSet() int {
	max := 0
	for _, s := range c.WordSets {
		if s.ID > max {
			max = s.ID
		}
	}
	return max
}

// Validate checks catalog consistency at startup
func (c *Catalog) Validate() error {
	if len(c.Passages) == 0 {
		return fmt.Errorf("catalog has no reading passages")
	}
	if len(c.WordSets) == 0 {
		return fmt.Errorf("catalog has no word sets")
	}

	seenPassages := make(map[string]bool)
	for _, p := range c.Passages {
		if p.ID == "" {
			return fmt.Errorf("passage %q has an empty id", p.Title)
		}
		if seenPassages[p.ID] {
			return fmt.Errorf("duplicate passage id %q", p.ID)
		}
		seenPassages[p.ID] = true

		for i, q := range p.Questions {
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				return fmt.Errorf("passage %q question %d: correct index out of range", p.ID, i)
			}
		}
	}

	// Word sets must be numbered 1..N with no gaps so progression can advance
	for i, s := range c.WordSets {
		if s.ID != i+1 {
			return fmt.Errorf("word set at position %d has id %d, want %d", i, s.ID, i+1)
		}
		if len(s.Words) == 0 {
			return fmt.Errorf("word set %d has no words", s.ID)
		}
	}

	seenItems := make(map[models.ItemID]bool)
	for _, item := range c.ShopItems {
		if seenItems[item.ID] {
			return fmt.Errorf("duplicate shop item %q", item.ID)
		}
		seenItems[item.ID] = true
		if item.Cost <= 0 {
			return fmt.Errorf("shop item %q has non-positive cost %d", item.ID, item.Cost)
		}
	}

	seenBadges := make(map[models.BadgeID]bool)
	for _, b := range c.Badges {
		if seenBadges[b.ID] {
			return fmt.Errorf("duplicate badge %q", b.ID)
		}
		seenBadges[b.ID] = true
	}
	if len(c.Badges) > 0 && c.Badges[len(c.Badges)-1].ID != models.BadgeSuperStar {
		return fmt.Errorf("super-star must be the last badge in evaluation order")
	}

	return nil
}
