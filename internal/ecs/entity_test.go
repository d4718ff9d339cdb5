package ecs

import (
	"testing"

	"github.com/avoronkov/cartage/internal/core"
)

// probe is a test component that records every hook call.
type probe struct {
	BaseComponent
	log       *[]string
	initCount int
	added     *Entity
}

func (p *probe) OnAdded(owner *Entity) {
	p.added = owner
	if p.log != nil {
		*p.log = append(*p.log, p.Name()+":added")
	}
}

func (p *probe) Init() {
	p.initCount++
	if p.log != nil {
		*p.log = append(*p.log, p.Name()+":init")
	}
}

func (p *probe) Update(in core.InputFrame) {
	if p.log != nil {
		*p.log = append(*p.log, p.Name()+":update")
	}
}

func (p *probe) Draw(dst *core.Screen) {
	if p.log != nil {
		*p.log = append(*p.log, p.Name()+":draw")
	}
}

func newProbe(t *testing.T, f *Factory, name string, log *[]string) *probe {
	t.Helper()
	c, err := NewComponent(f, &probe{}, WithName(name))
	if err != nil {
		t.Fatalf("NewComponent(%q) failed: %v", name, err)
	}
	c.log = log
	return c
}

func newTestEntity(t *testing.T, f *Factory) *Entity {
	t.Helper()
	e, err := f.NewEntity(EntityDef{})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	return e
}

func TestEntityAddAssignsOrderAndOwner(t *testing.T) {
	f := NewFactory()
	e := newTestEntity(t, f)

	var log []string
	a := newProbe(t, f, "a", &log)
	b := newProbe(t, f, "b", &log)

	if err := e.Add(a); err != nil {
		t.Fatalf("Add(a) failed: %v", err)
	}
	if err := e.Add(b); err != nil {
		t.Fatalf("Add(b) failed: %v", err)
	}

	if a.Index() != 1 || b.Index() != 2 {
		t.Errorf("indices = %d, %d, expected 1, 2", a.Index(), b.Index())
	}
	if a.Owner() != e || b.Owner() != e {
		t.Error("components should have the entity as owner")
	}
	if a.added != e {
		t.Error("OnAdded hook did not receive the owner")
	}

	// OnAdded must run before Init at attach time.
	want := []string{"a:added", "a:init", "b:added", "b:init"}
	if len(log) != len(want) {
		t.Fatalf("hook log = %v, expected %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("hook log[%d] = %q, expected %q", i, log[i], want[i])
		}
	}
}

func TestEntityAddNil(t *testing.T) {
	f := NewFactory()
	e := newTestEntity(t, f)

	if err := e.Add(nil); err != ErrNilComponent {
		t.Errorf("Add(nil) = %v, expected ErrNilComponent", err)
	}
}

func TestEntityAddAlreadyAttached(t *testing.T) {
	f := NewFactory()
	e1 := newTestEntity(t, f)
	e2 := newTestEntity(t, f)

	c := newProbe(t, f, "c", nil)
	if err := e1.Add(c); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := e2.Add(c); err != ErrComponentAttached {
		t.Errorf("Add() on second entity = %v, expected ErrComponentAttached", err)
	}
}

func TestEntityUpdateOrder(t *testing.T) {
	f := NewFactory()
	e := newTestEntity(t, f)

	var log []string
	names := []string{"first", "second", "third"}
	for _, n := range names {
		if err := e.Add(newProbe(t, f, n, &log)); err != nil {
			t.Fatalf("Add(%q) failed: %v", n, err)
		}
	}

	log = log[:0]
	e.Update(core.NewInputFrame())

	want := []string{"first:update", "second:update", "third:update"}
	if len(log) != len(want) {
		t.Fatalf("update log = %v, expected %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("update visited %q at position %d, expected %q", log[i], i, want[i])
		}
	}
}

func TestEntityDrawOrderAndNoSweep(t *testing.T) {
	f := NewFactory()
	e := newTestEntity(t, f)

	var log []string
	a := newProbe(t, f, "a", &log)
	b := newProbe(t, f, "b", &log)
	if err := e.Add(a); err != nil {
		t.Fatalf("Add(a) failed: %v", err)
	}
	if err := e.Add(b); err != nil {
		t.Fatalf("Add(b) failed: %v", err)
	}

	// Flag a for removal: draw must not sweep it out.
	a.SetPendingRemoval(true)
	log = log[:0]
	e.Draw(core.NewScreen(8, 8))

	if e.Len() != 2 {
		t.Errorf("Len() after Draw = %d, expected 2 (draw never sweeps)", e.Len())
	}
	if len(log) != 1 || log[0] != "b:draw" {
		t.Errorf("draw log = %v, expected only b:draw", log)
	}
}

func TestEntityDeferredRemovalAndReindex(t *testing.T) {
	f := NewFactory()
	e := newTestEntity(t, f)

	var log []string
	comps := make([]*probe, 0, 4)
	for _, n := range []string{"a", "b", "c", "d"} {
		c := newProbe(t, f, n, &log)
		comps = append(comps, c)
		if err := e.Add(c); err != nil {
			t.Fatalf("Add(%q) failed: %v", n, err)
		}
	}

	e.Remove("b")
	e.Remove("d")

	log = log[:0]
	e.Update(core.NewInputFrame())

	// Flagged components do not run in the frame they are removed.
	want := []string{"a:update", "c:update"}
	if len(log) != len(want) {
		t.Fatalf("update log = %v, expected %v", log, want)
	}

	// Physically gone after the sweep, survivors reindexed 1..m.
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", e.Len())
	}
	if _, ok := e.Component("b"); ok {
		t.Error("removed component still retrievable")
	}
	if comps[0].Index() != 1 {
		t.Errorf("a.Index() = %d, expected 1", comps[0].Index())
	}
	if comps[2].Index() != 2 {
		t.Errorf("c.Index() = %d, expected 2 after reindex", comps[2].Index())
	}

	// Removed components are detached, not destroyed.
	if comps[1].Owner() != nil {
		t.Error("removed component still has an owner")
	}
	if comps[1].Index() != 0 {
		t.Errorf("removed component index = %d, expected 0", comps[1].Index())
	}
	if comps[1].PendingRemoval() {
		t.Error("removed component still flagged, cannot be re-added cleanly")
	}
}

func TestEntityIndicesUnchangedWithoutRemoval(t *testing.T) {
	f := NewFactory()
	e := newTestEntity(t, f)

	a := newProbe(t, f, "a", nil)
	b := newProbe(t, f, "b", nil)
	if err := e.Add(a); err != nil {
		t.Fatalf("Add(a) failed: %v", err)
	}
	if err := e.Add(b); err != nil {
		t.Fatalf("Add(b) failed: %v", err)
	}

	e.Update(core.NewInputFrame())

	if a.Index() != 1 || b.Index() != 2 {
		t.Errorf("indices = %d, %d after no-removal frame, expected 1, 2", a.Index(), b.Index())
	}
}

func TestEntityInactiveComponentSkipped(t *testing.T) {
	f := NewFactory()
	e := newTestEntity(t, f)

	var log []string
	a := newProbe(t, f, "a", &log)
	b := newProbe(t, f, "b", &log)
	if err := e.Add(a); err != nil {
		t.Fatalf("Add(a) failed: %v", err)
	}
	if err := e.Add(b); err != nil {
		t.Fatalf("Add(b) failed: %v", err)
	}

	a.SetActive(false)
	log = log[:0]
	e.Update(core.NewInputFrame())
	e.Draw(core.NewScreen(8, 8))

	for _, entry := range log {
		if entry == "a:update" || entry == "a:draw" {
			t.Errorf("inactive component was dispatched: %v", log)
		}
	}

	// Soft pause: still held, still indexed, still retrievable.
	if _, ok := e.Component("a"); !ok {
		t.Error("inactive component not retrievable")
	}
	if a.Index() != 1 {
		t.Errorf("inactive component index = %d, expected 1", a.Index())
	}
}

func TestEntityInactiveSkipsWholePass(t *testing.T) {
	f := NewFactory()
	e := newTestEntity(t, f)

	var log []string
	if err := e.Add(newProbe(t, f, "a", &log)); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	e.SetActive(false)
	log = log[:0]
	e.Update(core.NewInputFrame())
	e.Draw(core.NewScreen(8, 8))

	if len(log) != 0 {
		t.Errorf("inactive entity dispatched components: %v", log)
	}
}

func TestEntityDuplicateNameReplacesInPlace(t *testing.T) {
	f := NewFactory()
	e := newTestEntity(t, f)

	first := newProbe(t, f, "dup", nil)
	middle := newProbe(t, f, "mid", nil)
	second := newProbe(t, f, "dup", nil)

	if err := e.Add(first); err != nil {
		t.Fatalf("Add(first) failed: %v", err)
	}
	if err := e.Add(middle); err != nil {
		t.Fatalf("Add(middle) failed: %v", err)
	}
	if err := e.Add(second); err != nil {
		t.Fatalf("Add(second) failed: %v", err)
	}

	// Replacement takes the old slot and index; no stale duplicate.
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", e.Len())
	}
	if second.Index() != 1 {
		t.Errorf("replacement index = %d, expected 1 (old slot)", second.Index())
	}
	got, ok := e.Component("dup")
	if !ok || got != Component(second) {
		t.Error("lookup should return the replacement component")
	}
	if first.Owner() != nil {
		t.Error("replaced component should be detached")
	}
}

func TestEntityLookupMiss(t *testing.T) {
	f := NewFactory()
	e := newTestEntity(t, f)

	if c, ok := e.Component("missing"); ok || c != nil {
		t.Errorf("Component(missing) = %v, %v, expected nil, false", c, ok)
	}

	// Removing an unknown name is a quiet no-op.
	e.Remove("missing")
}
