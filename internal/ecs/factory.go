package ecs

import (
	"fmt"

	"github.com/avoronkov/cartage/internal/compose"
)

// Factory stamps new entities, components, and scenes from prototype
// definitions. It owns the monotonic counters used for default names,
// so naming state has an explicit owner instead of living in globals.
// The frame loop is single-threaded, so plain counters suffice.
type Factory struct {
	entitySeq    int
	componentSeq int
	sceneSeq     int
}

// NewFactory creates a factory with all counters at zero.
func NewFactory() *Factory {
	return &Factory{}
}

// EntityDef is a composable entity prototype. Multiple defs merge
// last-write-wins; their component lists concatenate in order.
type EntityDef struct {
	Name       string
	Inactive   bool // entities start active unless set
	Components []Component

	// OnAddedToScene is copied onto the entity.
	OnAddedToScene func(e *Entity, s *Scene)
}

// NewEntity composes the given defs into a fresh entity. When no def
// supplies a name, the factory stamps entity_N and advances its
// counter. The defs themselves are never mutated.
func (f *Factory) NewEntity(defs ...EntityDef) (*Entity, error) {
	var def EntityDef
	var comps []Component
	for i := range defs {
		if err := compose.Merge(&def, defs[i], compose.Exclude("Components")); err != nil {
			return nil, fmt.Errorf("ecs: compose entity def: %w", err)
		}
		comps = append(comps, defs[i].Components...)
	}

	name := def.Name
	if name == "" {
		f.entitySeq++
		name = fmt.Sprintf("entity_%d", f.entitySeq)
	}

	e := &Entity{
		name:           name,
		OnAddedToScene: def.OnAddedToScene,
	}
	e.SetActive(!def.Inactive)

	for _, c := range comps {
		if err := e.Add(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// SceneDef is a composable scene prototype. Multiple defs merge
// last-write-wins; their entity lists concatenate in order.
type SceneDef struct {
	Name     string
	Entities []*Entity

	OnLoad   func(s *Scene) error
	OnUnload func(s *Scene) error
}

// NewScene composes the given defs into a fresh scene. When no def
// supplies a name, the factory stamps scene_N and advances its counter.
func (f *Factory) NewScene(defs ...SceneDef) (*Scene, error) {
	var def SceneDef
	var ents []*Entity
	for i := range defs {
		if err := compose.Merge(&def, defs[i], compose.Exclude("Entities")); err != nil {
			return nil, fmt.Errorf("ecs: compose scene def: %w", err)
		}
		ents = append(ents, defs[i].Entities...)
	}

	name := def.Name
	if name == "" {
		f.sceneSeq++
		name = fmt.Sprintf("scene_%d", f.sceneSeq)
	}

	s := &Scene{
		name:     name,
		entities: newCollection[*Entity](),
		OnLoad:   def.OnLoad,
		OnUnload: def.OnUnload,
	}
	for _, e := range ents {
		if err := s.AddEntity(e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ComponentOption configures component creation.
type ComponentOption func(*componentConfig)

type componentConfig struct {
	name      string
	inactive  bool
	overrides []any
}

// WithName assigns an explicit component name instead of a stamped one.
func WithName(name string) ComponentOption {
	return func(c *componentConfig) {
		c.name = name
	}
}

// WithOverride merges src into the freshly cloned prototype. Overrides
// apply in order, last-write-wins; the src value is only read.
func WithOverride(src any) ComponentOption {
	return func(c *componentConfig) {
		c.overrides = append(c.overrides, src)
	}
}

// Inactive creates the component soft-paused.
func Inactive() ComponentOption {
	return func(c *componentConfig) {
		c.inactive = true
	}
}

// NewComponent stamps a fresh component from a prototype: the prototype
// is deep-cloned (never aliased, never mutated), overrides merge into
// the clone, and the result gets its own identity. Unnamed components
// are stamped component_N from the factory counter.
func NewComponent[T Component](f *Factory, proto T, opts ...ComponentOption) (T, error) {
	var zero T
	var cfg componentConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	fresh, err := compose.Clone(proto)
	if err != nil {
		return zero, fmt.Errorf("ecs: clone prototype: %w", err)
	}
	for _, src := range cfg.overrides {
		if err := compose.Merge(fresh, src); err != nil {
			return zero, fmt.Errorf("ecs: apply override: %w", err)
		}
	}

	b := fresh.base()
	if cfg.name != "" {
		b.name = cfg.name
	} else {
		f.componentSeq++
		b.name = fmt.Sprintf("component_%d", f.componentSeq)
	}
	b.SetActive(!cfg.inactive)
	return fresh, nil
}
