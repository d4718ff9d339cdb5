package demo

import (
	"github.com/avoronkov/cartage/internal/core"
	"github.com/avoronkov/cartage/internal/ecs"
)

// frame draws the playfield border.
type frame struct {
	ecs.BaseComponent
	Color core.Color
}

func (f *frame) Draw(dst *core.Screen) {
	dst.DrawBorder(0, 0, dst.Width()-1, dst.Height()-1, f.Color)
}
