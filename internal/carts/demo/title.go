package demo

import (
	"github.com/avoronkov/cartage/internal/core"
	"github.com/avoronkov/cartage/internal/ecs"
)

// startGate renders the title card and waits for the O button to
// start the round.
type startGate struct {
	ecs.BaseComponent
	Title string
	Start func()

	frame int
}

func (g *startGate) Init() {
	g.frame = 0
}

func (g *startGate) Update(in core.InputFrame) {
	g.frame++
	if in.IsPressed(core.BtnO) && g.Start != nil {
		g.Start()
	}
}

func (g *startGate) Draw(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	dst.DrawBorder(0, 0, w-1, h-1, core.ColorIndigo)
	dst.DrawTextCentered(h/2-2, g.Title, core.ColorWhite)

	// Slow blink.
	if g.frame%30 < 20 {
		dst.DrawTextCentered(h/2+1, "PRESS Z TO START", core.ColorYellow)
	}
}
