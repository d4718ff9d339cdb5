package ecs

import (
	"errors"

	"github.com/avoronkov/cartage/internal/core"
)

// ErrNilEntity is returned when adding a nil entity to a scene.
var ErrNilEntity = errors.New("ecs: entity is nil")

// Scene is an ordered container of entities, swappable as a unit by
// the Director. It runs the same attachment-order dispatch and
// deferred-removal sweep as an entity does for its components.
type Scene struct {
	name     string
	entities collection[*Entity]
	loaded   bool

	// OnLoad and OnUnload are optional transition hooks. OnLoad runs
	// before the load pass re-initializes the held entities; OnUnload
	// runs on the way out and can abort a scene swap by failing.
	OnLoad   func(s *Scene) error
	OnUnload func(s *Scene) error
}

// Name returns the scene's name.
func (s *Scene) Name() string {
	return s.name
}

// Loaded reports whether the scene is currently active.
func (s *Scene) Loaded() bool {
	return s.loaded
}

// AddEntity appends an entity to the update/draw order. The entity's
// OnAddedToScene hook runs immediately; initialization is deferred to
// the scene's load pass, not performed eagerly on attach. Adding under
// a name already present replaces the old entity in place.
func (s *Scene) AddEntity(e *Entity) error {
	if e == nil {
		return ErrNilEntity
	}
	s.entities.add(e)
	e.scene = s
	if e.OnAddedToScene != nil {
		e.OnAddedToScene(e, s)
	}
	return nil
}

// RemoveEntity flags the named entity for removal at the next update
// sweep. Unknown names are a no-op.
func (s *Scene) RemoveEntity(name string) {
	if e, ok := s.entities.get(name); ok {
		e.SetPendingRemoval(true)
	}
}

// Entity looks up an entity by name. A miss returns ok=false, never a fault.
func (s *Scene) Entity(name string) (*Entity, bool) {
	return s.entities.get(name)
}

// Entities returns the entities in attachment order.
func (s *Scene) Entities() []*Entity {
	return s.entities.snapshot()
}

// Len returns the number of entities in the scene.
func (s *Scene) Len() int {
	return s.entities.len()
}

// Load activates the scene: the OnLoad hook runs first (it may add or
// rearrange entities), then every held entity is re-initialized in
// attachment order. Loading is re-entrant; a scene can be activated
// again after unloading.
func (s *Scene) Load() error {
	if s.OnLoad != nil {
		if err := s.OnLoad(s); err != nil {
			return err
		}
	}
	for _, e := range s.entities.items() {
		e.Init()
	}
	s.loaded = true
	return nil
}

// Unload deactivates the scene, running the OnUnload teardown hook.
// A hook failure leaves the scene loaded; the caller decides.
func (s *Scene) Unload() error {
	if s.OnUnload != nil {
		if err := s.OnUnload(s); err != nil {
			return err
		}
	}
	s.loaded = false
	return nil
}

// Update runs one tick over every active entity in attachment order,
// then sweeps out entities flagged for removal and reindexes.
func (s *Scene) Update(in core.InputFrame) {
	for _, e := range s.entities.items() {
		if e.Active() && !e.PendingRemoval() {
			e.Update(in)
		}
	}
	s.entities.sweep()
}

// Draw renders every active entity in attachment order. No sweep.
func (s *Scene) Draw(dst *core.Screen) {
	for _, e := range s.entities.items() {
		if e.Active() && !e.PendingRemoval() {
			e.Draw(dst)
		}
	}
}
