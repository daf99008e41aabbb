// Package registry provides a global registry for engine factories.
// Engines register themselves in init() functions, allowing the CLI to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

// EngineInfo contains metadata about a registered engine.
type EngineInfo struct {
	Name  string
	Title string
}

// Factory creates a new engine for the given runtime settings.
type Factory func(cfg core.RuntimeConfig) engine.Engine

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds an engine factory to the registry.
// Panics if an engine with the same name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: engine %q already registered", name))
	}
	entries[name] = entry{title: title, factory: f}
}

// List returns information about all registered engines, sorted by name.
func List() []EngineInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]EngineInfo, 0, len(entries))
	for name, e := range entries {
		result = append(result, EngineInfo{Name: name, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new engine by name.
func Create(name string, cfg core.RuntimeConfig) (engine.Engine, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown engine %q", name)
	}

	return e.factory(cfg), nil
}

// Exists checks if an engine with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}
