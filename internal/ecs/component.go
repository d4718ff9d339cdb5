package ecs

import (
	"errors"

	"github.com/avoronkov/cartage/internal/core"
)

var (
	// ErrNilComponent is returned when attaching a nil component.
	ErrNilComponent = errors.New("ecs: component is nil")
	// ErrComponentAttached is returned when attaching a component that
	// already belongs to another entity.
	ErrComponentAttached = errors.New("ecs: component already attached to an entity")
)

// Component is a named behavior attached to exactly one entity.
// Concrete components embed BaseComponent, which seals the interface:
// only types carrying a BaseComponent can be attached, so the kind
// check of a dynamic system becomes a compile-time guarantee.
type Component interface {
	Name() string
	Index() int
	Owner() *Entity
	Active() bool
	SetActive(v bool)
	PendingRemoval() bool
	SetPendingRemoval(v bool)

	// OnAdded runs when the component is attached, before Init.
	OnAdded(owner *Entity)
	// Init runs once at attach time and again on every scene load.
	Init()
	// Update advances the component by one tick.
	Update(in core.InputFrame)
	// Draw renders the component to the screen buffer.
	Draw(dst *core.Screen)

	base() *BaseComponent
	setIndex(i int)
	detach()
}

// BaseComponent provides the identity, lifecycle flags, and no-op hooks
// shared by every component. Embed it and override the hooks you need.
type BaseComponent struct {
	Lifecycle
	name  string
	index int
	owner *Entity
}

// Name returns the component's name, unique within its entity.
func (b *BaseComponent) Name() string {
	return b.name
}

// SetName renames the component. Must not be called while attached:
// the owning entity indexes components by name.
func (b *BaseComponent) SetName(name string) {
	b.name = name
}

// Index returns the 1-based position in the owner's attachment order,
// or 0 when detached.
func (b *BaseComponent) Index() int {
	return b.index
}

// Owner returns the entity this component is attached to, or nil.
// The reference is non-owning: removal clears it without destroying
// the component.
func (b *BaseComponent) Owner() *Entity {
	return b.owner
}

// OnAdded is a no-op by default.
func (b *BaseComponent) OnAdded(owner *Entity) {}

// Init is a no-op by default.
func (b *BaseComponent) Init() {}

// Update is a no-op by default.
func (b *BaseComponent) Update(in core.InputFrame) {}

// Draw is a no-op by default.
func (b *BaseComponent) Draw(dst *core.Screen) {}

func (b *BaseComponent) base() *BaseComponent {
	return b
}

func (b *BaseComponent) setIndex(i int) {
	b.index = i
}

// detach clears ownership state so the component can be re-attached.
func (b *BaseComponent) detach() {
	b.owner = nil
	b.index = 0
	b.pendingRemoval = false
}
