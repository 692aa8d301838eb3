package engine

import (
	"errors"
	"testing"

	"wordrush/internal/models"
)

func TestUnlockItem(t *testing.T) {
	e := newTestEngine()
	profile := models.NewDefaultProfile(models.ProfileDaughter, "Daughter", 8)
	profile.Coins = 15

	updated, err := e.UnlockItem(profile, models.ItemHat, 10)
	if err != nil {
		t.Fatalf("UnlockItem() error = %v", err)
	}

	if updated.Coins != 5 {
		t.Errorf("Coins = %d, want 5", updated.Coins)
	}
	if len(updated.UnlockedItems) != 1 || updated.UnlockedItems[0] != models.ItemHat {
		t.Errorf("UnlockedItems = %v, want [hat]", updated.UnlockedItems)
	}

	// Input snapshot untouched
	if profile.Coins != 15 || len(profile.UnlockedItems) != 0 {
		t.Errorf("input profile mutated: coins=%d items=%v", profile.Coins, profile.UnlockedItems)
	}
}

func TestUnlockItemRejections(t *testing.T) {
	tests := []struct {
		name    string
		coins   int
		owned   []models.ItemID
		itemID  models.ItemID
		cost    int
		wantErr error
	}{
		{
			name:    "insufficient coins",
			coins:   5,
			itemID:  models.ItemHat,
			cost:    10,
			wantErr: ErrInsufficientCoins,
		},
		{
			name:    "already owned",
			coins:   100,
			owned:   []models.ItemID{models.ItemCape},
			itemID:  models.ItemCape,
			cost:    30,
			wantErr: ErrItemOwned,
		},
		{
			name:    "unknown item",
			coins:   100,
			itemID:  "crown",
			cost:    10,
			wantErr: ErrUnknownItem,
		},
		{
			name:    "negative cost",
			coins:   100,
			itemID:  models.ItemGlasses,
			cost:    -5,
			wantErr: ErrInvalidCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			profile := models.NewDefaultProfile(models.ProfileDaughter, "Daughter", 8)
			profile.Coins = tt.coins
			profile.UnlockedItems = tt.owned

			_, err := e.UnlockItem(profile, tt.itemID, tt.cost)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UnlockItem() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnlockItemExactBalance(t *testing.T) {
	e := newTestEngine()
	profile := models.NewDefaultProfile(models.ProfileSon, "Son", 5)
	profile.Coins = 30

	updated, err := e.UnlockItem(profile, models.ItemCape, 30)
	if err != nil {
		t.Fatalf("UnlockItem() error = %v", err)
	}
	if updated.Coins != 0 {
		t.Errorf("Coins = %d, want 0", updated.Coins)
	}
}
