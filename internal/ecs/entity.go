package ecs

import (
	"github.com/avoronkov/cartage/internal/core"
)

// Entity is a named, ordered container of components. Behavior lives in
// the components; the entity drives their lifecycle hooks in attachment
// order and performs the deferred-removal sweep at the end of each
// update pass.
type Entity struct {
	Lifecycle
	name       string
	index      int
	scene      *Scene
	components collection[Component]

	// OnAddedToScene, when set, runs after the entity joins a scene.
	OnAddedToScene func(e *Entity, s *Scene)
}

// Name returns the entity's name, unique within its scene.
func (e *Entity) Name() string {
	return e.name
}

// Index returns the 1-based position in the scene's attachment order,
// or 0 when the entity is not in a scene.
func (e *Entity) Index() int {
	return e.index
}

// Scene returns the scene holding this entity, or nil.
func (e *Entity) Scene() *Scene {
	return e.scene
}

// Add attaches a component at the end of the update/draw order and
// assigns its index. The component's OnAdded hook runs first, then
// Init. Attaching under a name that is already present replaces the
// old component in place (same slot, same index) and detaches it.
func (e *Entity) Add(c Component) error {
	if c == nil {
		return ErrNilComponent
	}
	if owner := c.Owner(); owner != nil && owner != e {
		return ErrComponentAttached
	}
	e.components.add(c)
	c.base().owner = e
	c.OnAdded(e)
	c.Init()
	return nil
}

// Remove flags the named component for removal at the next update
// sweep. Removal is never immediate: a component already dispatched
// this frame still completes it. Unknown names are a no-op.
func (e *Entity) Remove(name string) {
	if c, ok := e.components.get(name); ok {
		c.SetPendingRemoval(true)
	}
}

// Component looks up a component by name. A miss returns ok=false,
// never a fault: optional components are expected to sometimes be absent.
func (e *Entity) Component(name string) (Component, bool) {
	return e.components.get(name)
}

// Components returns the components in attachment order.
func (e *Entity) Components() []Component {
	return e.components.snapshot()
}

// Len returns the number of attached components.
func (e *Entity) Len() int {
	return e.components.len()
}

// Init re-initializes every held component, active or not, in
// attachment order. Called by the scene on load.
func (e *Entity) Init() {
	for _, c := range e.components.items() {
		c.Init()
	}
}

// Update runs one tick: every active component updates in attachment
// order, then components flagged for removal are swept out and the
// survivors reindexed. Inactive entities skip the whole pass.
func (e *Entity) Update(in core.InputFrame) {
	if !e.Active() {
		return
	}
	for _, c := range e.components.items() {
		if c.Active() && !c.PendingRemoval() {
			c.Update(in)
		}
	}
	e.components.sweep()
}

// Draw renders every active component in attachment order. There is no
// removal sweep during draw. Inactive entities are skipped.
func (e *Entity) Draw(dst *core.Screen) {
	if !e.Active() {
		return
	}
	for _, c := range e.components.items() {
		if c.Active() && !c.PendingRemoval() {
			c.Draw(dst)
		}
	}
}

func (e *Entity) setIndex(i int) {
	e.index = i
}

// detach clears scene membership so the entity can be re-added.
func (e *Entity) detach() {
	e.scene = nil
	e.index = 0
	e.pendingRemoval = false
}
