// Package registry provides a global registry for search strategies.
// Strategies register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/lavaqua/internal/search"
)

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID      string
	Name    string
	Aliases []string
}

// Factory is a function that creates a new instance of a strategy.
type Factory func() search.Strategy

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	aliases   = make(map[string][]string)
	lookup    = make(map[string]string) // normalized name or alias -> ID
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry under id and any
// aliases. Typically called from a strategy's init() function.
// Panics if the id or an alias is already taken.
func Register(id string, f Factory, alias ...string) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	keys := append([]string{id}, alias...)
	for _, k := range keys {
		if owner, taken := lookup[normalize(k)]; taken {
			panic(fmt.Sprintf("registry: name %q already used by %q", k, owner))
		}
	}

	factories[id] = f
	for _, k := range keys {
		lookup[normalize(k)] = id
	}
	aliases[id] = append([]string(nil), alias...)

	// Get name by creating a temporary instance
	names[id] = f().Name()
}

// List returns information about all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{
			ID:      id,
			Name:    names[id],
			Aliases: append([]string(nil), aliases[id]...),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Canonical resolves an ID or alias to the registered ID.
// Matching ignores case and treats '-', '_' and runs of spaces alike.
func Canonical(name string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	id, ok := lookup[normalize(name)]
	return id, ok
}

// Create instantiates a new strategy by its ID or alias.
// Returns an error if the name is not registered.
func Create(name string) (search.Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	id, ok := lookup[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", name)
	}

	return factories[id](), nil
}

// Exists checks if a strategy with the given ID or alias is registered.
func Exists(name string) bool {
	_, ok := Canonical(name)
	return ok
}

func normalize(name string) string {
	name = strings.ToLower(name)
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
