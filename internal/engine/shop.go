package engine

import "wordrush/internal/models"

// UnlockItem debits the item's cost and records the unlock. Affordability
// and ownership are re-checked here so the engine stays safe to reuse
// outside the UI flow that normally enforces them.
func (e *Engine) UnlockItem(p *models.Profile, itemID models.ItemID, cost int) (*models.Profile, error) {
	if _, ok := e.catalog.ShopItemByID(itemID); !ok {
		return nil, ErrUnknownItem
	}
	if cost < 0 {
		return nil, ErrInvalidCost
	}
	if p.HasItem(itemID) {
		return nil, ErrItemOwned
	}
	if p.Coins < cost {
		return nil, ErrInsufficientCoins
	}

	next := p.Clone()
	next.Coins -= cost
	next.UnlockedItems = append(next.UnlockedItems, itemID)
	return next, nil
}
