// Package registry lets game variants register themselves from init()
// so the CLI and menu can list and build them without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is the interface the platform drives. Implementations hold pure
// simulation logic; the platform handles input mapping, timing and display.
type Game interface {
	// ID returns a unique identifier (e.g. "breakout", "breakout_dense").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh game. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current summary (score, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Summary string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if the ID is empty or already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}

	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
