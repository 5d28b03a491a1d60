// Package registry provides global registries for maze generators and
// solvers. Algorithms register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// ErrUnknownAlgorithm is returned when an ID has no registered factory.
var ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")

// Info contains metadata about a registered algorithm.
type Info struct {
	ID    string
	Title string
}

type entry[F any] struct {
	title   string
	factory F
}

// table is one kind of registry, keyed by algorithm ID.
type table[F any] struct {
	kind    string
	mu      sync.RWMutex
	entries map[string]entry[F]
}

func newTable[F any](kind string) *table[F] {
	return &table[F]{kind: kind, entries: make(map[string]entry[F])}
}

func (t *table[F]) register(id, title string, f F) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.entries[id]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", t.kind, id))
	}
	if title == "" {
		title = id
	}
	t.entries[id] = entry[F]{title: title, factory: f}
}

func (t *table[F]) list() []Info {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]Info, 0, len(t.entries))
	for id, e := range t.entries {
		result = append(result, Info{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

func (t *table[F]) lookup(id string) (F, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[id]
	if !ok {
		var zero F
		return zero, fmt.Errorf("%w: %s %q", ErrUnknownAlgorithm, t.kind, id)
	}
	return e.factory, nil
}

func (t *table[F]) exists(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.entries[id]
	return ok
}

var (
	generators = newTable[maze.GeneratorFactory]("generator")
	solvers    = newTable[maze.SolverFactory]("solver")
)

// RegisterGenerator adds a generator factory to the registry.
// Panics if a generator with the same ID is already registered.
func RegisterGenerator(id, title string, f maze.GeneratorFactory) {
	generators.register(id, title, f)
}

// RegisterSolver adds a solver factory to the registry.
// Panics if a solver with the same ID is already registered.
func RegisterSolver(id, title string, f maze.SolverFactory) {
	solvers.register(id, title, f)
}

// Generators returns all registered generators, sorted by ID.
func Generators() []Info {
	return generators.list()
}

// Solvers returns all registered solvers, sorted by ID.
func Solvers() []Info {
	return solvers.list()
}

// Generator returns the factory registered under id.
func Generator(id string) (maze.GeneratorFactory, error) {
	return generators.lookup(id)
}

// Solver returns the factory registered under id.
func Solver(id string) (maze.SolverFactory, error) {
	return solvers.lookup(id)
}

// GeneratorExists checks if a generator with the given ID is registered.
func GeneratorExists(id string) bool {
	return generators.exists(id)
}

// SolverExists checks if a solver with the given ID is registered.
func SolverExists(id string) bool {
	return solvers.exists(id)
}
