// Package ecs implements the cartridge object model: components
// attached to entities, entities grouped into scenes, and a director
// that swaps the active scene. Containers preserve attachment order,
// defer removal to a per-frame sweep, and are driven single-threaded
// by the platform's fixed tick.
package ecs

// Lifecycle holds the activity flags shared by entities and components.
// An inactive object is soft-paused: skipped by its owner's update and
// draw passes but still held, indexed, and retrievable. An object
// flagged for removal finishes the current frame and is physically
// removed during its owner's next update sweep.
type Lifecycle struct {
	active         bool
	pendingRemoval bool
}

// Active reports whether the object participates in update/draw.
func (l *Lifecycle) Active() bool {
	return l.active
}

// SetActive toggles the soft-pause flag.
func (l *Lifecycle) SetActive(v bool) {
	l.active = v
}

// PendingRemoval reports whether the object is scheduled for removal.
func (l *Lifecycle) PendingRemoval() bool {
	return l.pendingRemoval
}

// SetPendingRemoval schedules (or cancels) removal at the owner's next
// update sweep. It has no immediate structural effect.
func (l *Lifecycle) SetPendingRemoval(v bool) {
	l.pendingRemoval = v
}
