// Package registry maps game ids to factories. Game packages register in
// init(), so the CLI and the SSH menu only need a blank import.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

// Game is a snake variant the terminal platform can drive. Implementations
// hold no terminal state; the platform owns timing, keys and drawing.
type Game interface {
	// ID is the stable key used on the command line and in the scores table.
	ID() string
	Title() string

	// Reset starts a new round with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick using the keys pressed since the last tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the game clears itself.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new terminal size
// without restarting. Games that don't implement it are Reset on resize.
type Resizer interface {
	Resize(screenW, screenH int)
}

// Autoplayer is implemented by games that play themselves. Their scores
// are not recorded as high scores.
type Autoplayer interface {
	Autoplay() bool
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a game from the loaded snake configuration.
type Factory func(cfg config.SnakeConfig) Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game under id. Games call it from init().
// Registering the same id twice panics.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Title returns the display name registered for id.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.title, ok
}

// Create builds the game registered under id with cfg.
func Create(id string, cfg config.SnakeConfig) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(cfg), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Title(id)
	return ok
}
