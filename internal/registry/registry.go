// Package registry provides a global registry for decision policies.
// Bots register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ErrUnknownPolicy is returned by Create for names nobody registered.
var ErrUnknownPolicy = errors.New("registry: unknown policy")

// DecisionSource supplies one intent per tick.
// Implementations only read the view; they never touch the engine.
type DecisionSource interface {
	// Name returns the registered identifier (e.g., "random", "nearest").
	Name() string

	// Decide picks the intent for the coming tick.
	Decide(v snake.View) snake.Intent
}

// Finisher is implemented by sources that want to flush state when a game ends.
type Finisher interface {
	Finish(final snake.Snapshot) error
}

// Env carries what a policy may need at construction.
type Env struct {
	Seed            int64
	Store           *storage.Store // nil when no memory database is open
	Logger          *log.Logger
	MemoryThreshold float64
}

// Rand returns a generator seeded from the environment.
func (e Env) Rand() *rand.Rand {
	return rand.New(rand.NewSource(e.Seed)) //nolint:gosec // gameplay randomness
}

// Log returns the environment logger or a discarding one.
func (e Env) Log() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.New(io.Discard)
}

// PolicyInfo contains metadata about a registered policy.
type PolicyInfo struct {
	Name        string
	Description string
}

// Factory creates a new instance of a policy.
type Factory func(env Env) (DecisionSource, error)

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a policy factory to the registry.
// Typically called from a bot's init() function.
// Panics if a policy with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: policy %q already registered", name))
	}

	entries[name] = entry{factory: f, description: description}
}

// List returns information about all registered policies, sorted by name.
func List() []PolicyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PolicyInfo, 0, len(entries))
	for name, e := range entries {
		result = append(result, PolicyInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new policy by name.
func Create(name string, env Env) (DecisionSource, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, name)
	}

	src, err := e.factory(env)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", name, err)
	}
	return src, nil
}

// Exists checks if a policy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}
