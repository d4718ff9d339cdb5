package demo

import (
	"github.com/avoronkov/cartage/internal/core"
	"github.com/avoronkov/cartage/internal/ecs"
)

// Box draws a filled rectangle at the sibling transform's position.
// The transform must be attached before the box: siblings resolve in
// attachment order during init.
type Box struct {
	ecs.BaseComponent
	W, H  int
	Color core.Color

	tf *Transform
}

func (b *Box) Init() {
	b.tf = nil
	if c, ok := b.Owner().Component("transform"); ok {
		b.tf, _ = c.(*Transform)
	}
}

func (b *Box) Draw(dst *core.Screen) {
	if b.tf == nil {
		return
	}
	dst.FillRect(b.tf.X, b.tf.Y, b.tf.X+b.W-1, b.tf.Y+b.H-1, b.Color)
}

// Rect returns the box's current screen-space bounding box.
func (b *Box) Rect() core.Rect {
	if b.tf == nil {
		return core.Rect{}
	}
	return core.NewRect(b.tf.X, b.tf.Y, b.W, b.H)
}
