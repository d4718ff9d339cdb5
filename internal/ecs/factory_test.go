package ecs

import (
	"testing"
)

// transform is a test component with nested mutable state, the shape
// prototype composition exists for.
type transform struct {
	BaseComponent
	X, Y   int
	Tags   []string
	Meta   map[string]int
	Tuning *tuning
}

type tuning struct {
	Speed int
	Decay float64
}

func TestFactoryDefaultNames(t *testing.T) {
	f := NewFactory()

	e1, err := f.NewEntity()
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	e2, err := f.NewEntity()
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}

	if e1.Name() != "entity_1" || e2.Name() != "entity_2" {
		t.Errorf("entity names = %q, %q, expected entity_1, entity_2", e1.Name(), e2.Name())
	}

	c1, err := NewComponent(f, &transform{})
	if err != nil {
		t.Fatalf("NewComponent() failed: %v", err)
	}
	c2, err := NewComponent(f, &transform{})
	if err != nil {
		t.Fatalf("NewComponent() failed: %v", err)
	}

	// Entity and component counters advance independently.
	if c1.Name() != "component_1" || c2.Name() != "component_2" {
		t.Errorf("component names = %q, %q, expected component_1, component_2", c1.Name(), c2.Name())
	}

	s1, err := f.NewScene()
	if err != nil {
		t.Fatalf("NewScene() failed: %v", err)
	}
	if s1.Name() != "scene_1" {
		t.Errorf("scene name = %q, expected scene_1", s1.Name())
	}
}

func TestFactoryExplicitNameSkipsCounter(t *testing.T) {
	f := NewFactory()

	named, err := f.NewEntity(EntityDef{Name: "hero"})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	unnamed, err := f.NewEntity()
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}

	if named.Name() != "hero" {
		t.Errorf("Name() = %q, expected hero", named.Name())
	}
	// The counter only advances when a default name is stamped.
	if unnamed.Name() != "entity_1" {
		t.Errorf("Name() = %q, expected entity_1", unnamed.Name())
	}
}

func TestNewComponentOverride(t *testing.T) {
	f := NewFactory()
	proto := &transform{X: 0, Y: 0, Tuning: &tuning{Speed: 1, Decay: 0.5}}

	c, err := NewComponent(f, proto,
		WithName("transform"),
		WithOverride(&transform{Y: 5}),
	)
	if err != nil {
		t.Fatalf("NewComponent() failed: %v", err)
	}

	if c.X != 0 || c.Y != 5 {
		t.Errorf("composed = {%d, %d}, expected {0, 5}", c.X, c.Y)
	}
	if proto.X != 0 || proto.Y != 0 {
		t.Errorf("prototype mutated to {%d, %d}, expected {0, 0}", proto.X, proto.Y)
	}
	if c.Name() != "transform" {
		t.Errorf("Name() = %q, expected transform", c.Name())
	}
	if !c.Active() {
		t.Error("new component should start active")
	}
}

func TestNewComponentDeepIndependence(t *testing.T) {
	f := NewFactory()
	proto := &transform{
		Tags:   []string{"solid"},
		Meta:   map[string]int{"hp": 3},
		Tuning: &tuning{Speed: 2},
	}

	a, err := NewComponent(f, proto)
	if err != nil {
		t.Fatalf("NewComponent() failed: %v", err)
	}
	b, err := NewComponent(f, proto)
	if err != nil {
		t.Fatalf("NewComponent() failed: %v", err)
	}

	// Mutate one instance through every nested field.
	a.Tags[0] = "ghost"
	a.Meta["hp"] = 99
	a.Tuning.Speed = 42

	if proto.Tags[0] != "solid" || proto.Meta["hp"] != 3 || proto.Tuning.Speed != 2 {
		t.Error("mutating an instance leaked into the prototype")
	}
	if b.Tags[0] != "solid" || b.Meta["hp"] != 3 || b.Tuning.Speed != 2 {
		t.Error("sibling instances share nested state")
	}
}

func TestNewComponentOverrideNotMutated(t *testing.T) {
	f := NewFactory()
	proto := &transform{Tuning: &tuning{Speed: 1}}
	override := &transform{Tuning: &tuning{Speed: 7}}

	c, err := NewComponent(f, proto, WithOverride(override))
	if err != nil {
		t.Fatalf("NewComponent() failed: %v", err)
	}

	c.Tuning.Speed = 100
	if override.Tuning.Speed != 7 {
		t.Error("mutating the instance leaked into the override")
	}
	if proto.Tuning.Speed != 1 {
		t.Error("mutating the instance leaked into the prototype")
	}
}

func TestNewComponentNilPrototype(t *testing.T) {
	f := NewFactory()

	if _, err := NewComponent(f, (*transform)(nil)); err == nil {
		t.Error("NewComponent(nil prototype) should fail")
	}
}

func TestNewComponentInactive(t *testing.T) {
	f := NewFactory()

	c, err := NewComponent(f, &transform{}, Inactive())
	if err != nil {
		t.Fatalf("NewComponent() failed: %v", err)
	}
	if c.Active() {
		t.Error("Inactive() option ignored")
	}
}

func TestNewEntityComposesDefs(t *testing.T) {
	f := NewFactory()

	a, err := NewComponent(f, &transform{}, WithName("a"))
	if err != nil {
		t.Fatalf("NewComponent() failed: %v", err)
	}
	b, err := NewComponent(f, &transform{}, WithName("b"))
	if err != nil {
		t.Fatalf("NewComponent() failed: %v", err)
	}

	base := EntityDef{Components: []Component{a}}
	override := EntityDef{Name: "player", Components: []Component{b}}

	e, err := f.NewEntity(base, override)
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}

	// Later defs win on scalars; component lists concatenate in order.
	if e.Name() != "player" {
		t.Errorf("Name() = %q, expected player", e.Name())
	}
	comps := e.Components()
	if len(comps) != 2 || comps[0].Name() != "a" || comps[1].Name() != "b" {
		t.Errorf("components = %v, expected [a b]", comps)
	}
	if !e.Active() {
		t.Error("entity should start active")
	}

	// Source defs keep their own component lists.
	if len(base.Components) != 1 || len(override.Components) != 1 {
		t.Error("composing defs mutated the sources")
	}
}

func TestNewEntityInactive(t *testing.T) {
	f := NewFactory()

	e, err := f.NewEntity(EntityDef{Inactive: true})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	if e.Active() {
		t.Error("Inactive def ignored")
	}
}
