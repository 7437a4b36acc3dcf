// Package registry is the catalogue of playable modes. Game packages register
// a factory from init(), and frontends discover and instantiate modes by ID
// without importing the game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/defender/internal/core"
)

// Game is implemented by every playable mode. Games hold pure logic; the
// platform owns input mapping, timing and display.
type Game interface {
	// ID returns the unique identifier, used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes the game for a new session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current summary.
	State() core.GameState
}

// Collaborators are the outside services a game may talk to. Any field may
// be nil.
type Collaborators struct {
	Scores core.ScoreBook
	Cues   core.CueSink
	Logger *log.Logger
}

// Wirable is implemented by games that accept collaborators. Frontends call
// Wire before Reset.
type Wirable interface {
	Wire(c Collaborators)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// CreateWired instantiates a game and hands it the collaborators when it
// accepts them.
func CreateWired(id string, c Collaborators) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if w, ok := g.(Wirable); ok {
		w.Wire(c)
	}
	return g, nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
