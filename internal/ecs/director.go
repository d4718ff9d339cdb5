package ecs

import (
	"errors"
	"fmt"

	"github.com/avoronkov/cartage/internal/core"
)

// ErrNilScene is returned when transitioning to a nil scene.
var ErrNilScene = errors.New("ecs: scene is nil")

// Director owns the current-scene reference and is the surface the
// platform drives: Init once at boot, then Update and Draw once per
// frame, in that order.
type Director struct {
	current *Scene
}

// NewDirector creates a director bound to an initial scene.
// The scene is not loaded until Init.
func NewDirector(initial *Scene) *Director {
	return &Director{current: initial}
}

// Scene returns the currently bound scene, or nil.
func (d *Director) Scene() *Scene {
	return d.current
}

// Init loads the initial scene. Called once by the platform at boot.
func (d *Director) Init() error {
	if d.current == nil {
		return ErrNilScene
	}
	return d.current.Load()
}

// ChangeScene is the only sanctioned scene transition: the current
// scene unloads, the reference rebinds, and the next scene loads.
// An unload failure aborts the swap fail-fast and the current scene
// stays bound.
func (d *Director) ChangeScene(next *Scene) error {
	if next == nil {
		return ErrNilScene
	}
	if d.current != nil {
		if err := d.current.Unload(); err != nil {
			return fmt.Errorf("unload %q: %w", d.current.Name(), err)
		}
	}
	d.current = next
	if err := next.Load(); err != nil {
		return fmt.Errorf("load %q: %w", next.Name(), err)
	}
	return nil
}

// Update forwards one tick to the current scene.
func (d *Director) Update(in core.InputFrame) {
	if d.current != nil {
		d.current.Update(in)
	}
}

// Draw forwards rendering to the current scene.
func (d *Director) Draw(dst *core.Screen) {
	if d.current != nil {
		d.current.Draw(dst)
	}
}
