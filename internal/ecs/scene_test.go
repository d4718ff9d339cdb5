package ecs

import (
	"errors"
	"testing"

	"github.com/avoronkov/cartage/internal/core"
)

func newNamedEntity(t *testing.T, f *Factory, name string, log *[]string) *Entity {
	t.Helper()
	e, err := f.NewEntity(EntityDef{
		Name:       name,
		Components: []Component{mustProbe(t, f, name+".probe", log)},
	})
	if err != nil {
		t.Fatalf("NewEntity(%q) failed: %v", name, err)
	}
	return e
}

func mustProbe(t *testing.T, f *Factory, name string, log *[]string) *probe {
	t.Helper()
	c, err := NewComponent(f, &probe{}, WithName(name))
	if err != nil {
		t.Fatalf("NewComponent(%q) failed: %v", name, err)
	}
	c.log = log
	return c
}

func TestSceneDispatchOrderAndRemoval(t *testing.T) {
	f := NewFactory()

	var log []string
	e1 := newNamedEntity(t, f, "e1", &log)
	e2 := newNamedEntity(t, f, "e2", &log)

	s, err := f.NewScene(SceneDef{Name: "main", Entities: []*Entity{e1, e2}})
	if err != nil {
		t.Fatalf("NewScene() failed: %v", err)
	}

	log = log[:0]
	s.Update(core.NewInputFrame())

	want := []string{"e1.probe:update", "e2.probe:update"}
	if len(log) != len(want) {
		t.Fatalf("dispatch log = %v, expected %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("dispatch[%d] = %q, expected %q", i, log[i], want[i])
		}
	}

	// Flag e1 between frames; next update sweeps it and reindexes e2.
	e1.SetPendingRemoval(true)
	s.Update(core.NewInputFrame())

	if _, ok := s.Entity("e1"); ok {
		t.Error("e1 still present after removal sweep")
	}
	if e2.Index() != 1 {
		t.Errorf("e2.Index() = %d, expected 1 after reindex", e2.Index())
	}
	if e1.Scene() != nil {
		t.Error("removed entity still references the scene")
	}
}

func TestSceneAddEntity(t *testing.T) {
	f := NewFactory()
	s, err := f.NewScene(SceneDef{Name: "s"})
	if err != nil {
		t.Fatalf("NewScene() failed: %v", err)
	}

	if err := s.AddEntity(nil); err != ErrNilEntity {
		t.Errorf("AddEntity(nil) = %v, expected ErrNilEntity", err)
	}

	hooked := false
	e, err := f.NewEntity(EntityDef{
		Name: "hero",
		OnAddedToScene: func(e *Entity, sc *Scene) {
			hooked = true
		},
	})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	if err := s.AddEntity(e); err != nil {
		t.Fatalf("AddEntity() failed: %v", err)
	}

	if !hooked {
		t.Error("OnAddedToScene hook did not run")
	}
	if e.Scene() != s {
		t.Error("entity scene backref not set")
	}
	if e.Index() != 1 {
		t.Errorf("entity index = %d, expected 1", e.Index())
	}
}

func TestSceneLoadReinitializesEntities(t *testing.T) {
	f := NewFactory()

	var log []string
	c := mustProbe(t, f, "c", &log)
	e, err := f.NewEntity(EntityDef{Name: "e", Components: []Component{c}})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}

	loads := 0
	s, err := f.NewScene(SceneDef{
		Name:     "s",
		Entities: []*Entity{e},
		OnLoad: func(sc *Scene) error {
			loads++
			return nil
		},
	})
	if err != nil {
		t.Fatalf("NewScene() failed: %v", err)
	}

	// AddEntity must not init eagerly; only load passes do.
	initsBefore := c.initCount

	if err := s.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := s.Unload(); err != nil {
		t.Fatalf("Unload() failed: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("re-entrant Load() failed: %v", err)
	}

	if loads != 2 {
		t.Errorf("OnLoad ran %d times, expected 2", loads)
	}
	if got := c.initCount - initsBefore; got != 2 {
		t.Errorf("component re-initialized %d times across loads, expected 2", got)
	}
	if !s.Loaded() {
		t.Error("scene should be loaded")
	}
}

func TestDirectorChangeScene(t *testing.T) {
	f := NewFactory()

	var order []string
	title, err := f.NewScene(SceneDef{
		Name: "title",
		OnUnload: func(sc *Scene) error {
			order = append(order, "title:unload")
			return nil
		},
	})
	if err != nil {
		t.Fatalf("NewScene(title) failed: %v", err)
	}
	play, err := f.NewScene(SceneDef{
		Name: "play",
		OnLoad: func(sc *Scene) error {
			order = append(order, "play:load")
			return nil
		},
	})
	if err != nil {
		t.Fatalf("NewScene(play) failed: %v", err)
	}

	d := NewDirector(title)
	if err := d.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if d.Scene() != title {
		t.Error("director should start on the initial scene")
	}

	if err := d.ChangeScene(play); err != nil {
		t.Fatalf("ChangeScene() failed: %v", err)
	}

	if d.Scene() != play {
		t.Error("director did not rebind to the next scene")
	}
	if title.Loaded() {
		t.Error("previous scene still loaded")
	}
	if !play.Loaded() {
		t.Error("next scene not loaded")
	}
	if len(order) != 2 || order[0] != "title:unload" || order[1] != "play:load" {
		t.Errorf("transition order = %v, expected unload then load", order)
	}
}

func TestDirectorChangeSceneFailFast(t *testing.T) {
	f := NewFactory()

	boom := errors.New("teardown failed")
	stuck, err := f.NewScene(SceneDef{
		Name: "stuck",
		OnUnload: func(sc *Scene) error {
			return boom
		},
	})
	if err != nil {
		t.Fatalf("NewScene() failed: %v", err)
	}
	next, err := f.NewScene(SceneDef{Name: "next"})
	if err != nil {
		t.Fatalf("NewScene() failed: %v", err)
	}

	d := NewDirector(stuck)
	if err := d.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	if err := d.ChangeScene(next); !errors.Is(err, boom) {
		t.Fatalf("ChangeScene() = %v, expected the unload error", err)
	}

	// Aborted swap: the current scene stays bound and loaded.
	if d.Scene() != stuck {
		t.Error("director rebound despite failed unload")
	}
	if !stuck.Loaded() {
		t.Error("current scene should remain loaded after aborted swap")
	}
	if next.Loaded() {
		t.Error("next scene must not load after aborted swap")
	}
}

func TestDirectorChangeSceneNil(t *testing.T) {
	f := NewFactory()
	s, err := f.NewScene(SceneDef{Name: "s"})
	if err != nil {
		t.Fatalf("NewScene() failed: %v", err)
	}
	d := NewDirector(s)

	if err := d.ChangeScene(nil); err != ErrNilScene {
		t.Errorf("ChangeScene(nil) = %v, expected ErrNilScene", err)
	}
}

func TestSceneLookupMiss(t *testing.T) {
	f := NewFactory()
	s, err := f.NewScene(SceneDef{Name: "s"})
	if err != nil {
		t.Fatalf("NewScene() failed: %v", err)
	}

	if e, ok := s.Entity("missing"); ok || e != nil {
		t.Errorf("Entity(missing) = %v, %v, expected nil, false", e, ok)
	}
}
