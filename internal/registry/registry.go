// Package registry provides a global registry for cart factories.
// Carts register themselves in init() functions, allowing the platform
// to discover and boot them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/avoronkov/cartage/internal/core"
	"github.com/avoronkov/cartage/internal/ecs"
)

// Status is what a cart reports back to the platform each frame.
type Status struct {
	Score    int  // Current score
	GameOver bool // Whether the cart's game has ended
}

// Cart is the interface every cartridge implements. A cart builds its
// scene graph once at boot and hands the platform a director; from
// then on the platform drives the director's update/draw hooks and the
// cart's objects do the rest.
type Cart interface {
	// ID returns a unique identifier for this cart (e.g. "demo").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Boot constructs the cart's scenes and entities and returns the
	// director bound to the opening scene. Called once per run; the
	// RuntimeConfig provides screen dimensions and the RNG seed.
	Boot(cfg core.RuntimeConfig) (*ecs.Director, error)

	// Status returns the current score and game-over state.
	Status() Status
}

// CartInfo contains metadata about a registered cart.
type CartInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a cart.
type Factory func() Cart

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a cart factory to the registry.
// Typically called from a cart's init() function.
// Panics if a cart with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: cart %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	c := f()
	titles[id] = c.Title()
}

// List returns information about all registered carts, sorted by ID.
func List() []CartInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CartInfo, 0, len(factories))
	for id := range factories {
		result = append(result, CartInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new cart by its ID.
// Returns an error if the cart ID is not registered.
func Create(id string) (Cart, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown cart %q", id)
	}

	return f(), nil
}

// Exists checks if a cart with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
