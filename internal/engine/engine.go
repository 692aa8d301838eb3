// Package engine implements the progress and achievement rules for both
// activities: coin rewards, word-set mastery progression, day streaks,
// badge unlocking and the avatar shop ledger.
//
// Every operation is a pure function over an immutable profile snapshot.
// The input profile is never mutated; callers receive a new snapshot and
// are responsible for persisting it.
package engine

import (
	"errors"

	"wordrush/internal/catalog"
)

// Contract violations. Callers are expected to validate input before
// invoking the engine; these errors exist to fail fast instead of silently
// corrupting coin and progress invariants.
var (
	ErrInvalidWordSet    = errors.New("word set id out of range")
	ErrInvalidTotal      = errors.New("total must be positive")
	ErrInvalidScore      = errors.New("score out of range")
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrItemOwned         = errors.New("item already unlocked")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrInvalidCost       = errors.New("cost must not be negative")
)

// Engine evaluates state transitions against an injected content catalog
type Engine struct {
	catalog *catalog.Catalog
}

// New creates an engine bound to a content catalog
func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}
