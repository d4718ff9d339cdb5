package demo

import (
	"github.com/avoronkov/cartage/internal/core"
	"github.com/avoronkov/cartage/internal/ecs"
)

// Mover moves the sibling transform with the D-pad, clamped to Bounds.
// Bounds is the allowed range for the transform's top-left corner.
type Mover struct {
	ecs.BaseComponent
	Speed  int
	Bounds core.Rect

	tf *Transform
}

func (m *Mover) Init() {
	m.tf = nil
	if c, ok := m.Owner().Component("transform"); ok {
		m.tf, _ = c.(*Transform)
	}
}

func (m *Mover) Update(in core.InputFrame) {
	if m.tf == nil {
		return
	}

	dx, dy := 0, 0
	if in.IsPressed(core.BtnLeft) {
		dx--
	}
	if in.IsPressed(core.BtnRight) {
		dx++
	}
	if in.IsPressed(core.BtnUp) {
		dy--
	}
	if in.IsPressed(core.BtnDown) {
		dy++
	}

	m.tf.X = core.Clamp(m.tf.X+dx*m.Speed, m.Bounds.X, m.Bounds.Right())
	m.tf.Y = core.Clamp(m.tf.Y+dy*m.Speed, m.Bounds.Y, m.Bounds.Bottom())
}
