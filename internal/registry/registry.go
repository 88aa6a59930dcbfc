// Package registry provides a global registry for placement evaluators.
// Evaluators register themselves in init() functions, allowing the CLI to
// discover and instantiate them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/autotetris/internal/games/tetris/core"
)

// Evaluator scores a resting placement. Higher is better.
// Implementations must not mutate the board and must be safe for
// concurrent use, since candidates are scored in parallel.
type Evaluator interface {
	// Name returns the registered identifier (e.g., "lowest").
	Name() string

	// Evaluate scores piece resting at pos on board.
	Evaluate(board *core.Board, piece *core.Piece, pos core.Pos) int
}

// EvaluatorInfo contains metadata about a registered evaluator.
type EvaluatorInfo struct {
	Name        string
	Description string
}

// Factory creates an evaluator. The seed is only meaningful for
// randomized evaluators.
type Factory func(seed int64) Evaluator

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds an evaluator factory to the registry.
// Panics if an evaluator with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: evaluator %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns all registered evaluators, sorted by name.
func List() []EvaluatorInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]EvaluatorInfo, 0, len(factories))
	for name := range factories {
		result = append(result, EvaluatorInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates an evaluator by name.
func Create(name string, seed int64) (Evaluator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown evaluator %q", name)
	}

	return f(seed), nil
}

// Exists checks if an evaluator with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
