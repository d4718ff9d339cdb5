package demo

import (
	"fmt"

	"github.com/avoronkov/cartage/internal/core"
	"github.com/avoronkov/cartage/internal/ecs"
)

// hud draws the score line and the remaining time on top of the
// playfield. Attached last so it always paints over the boxes.
type hud struct {
	ecs.BaseComponent
	Score func() int
	Time  func() int // remaining frames
	Rate  int        // frames per second, for display
}

func (h *hud) Draw(dst *core.Screen) {
	if h.Score != nil {
		dst.DrawText(1, 0, fmt.Sprintf("SCORE %d", h.Score()), core.ColorWhite)
	}
	if h.Time != nil && h.Rate > 0 {
		secs := h.Time() / h.Rate
		text := fmt.Sprintf("TIME %d", secs)
		dst.DrawText(dst.Width()-len(text)-1, 0, text, core.ColorYellow)
	}
}

// countdown ends the round when the frame budget runs out.
type countdown struct {
	ecs.BaseComponent
	Frames   int
	OnExpire func()

	remaining int
}

func (c *countdown) Init() {
	c.remaining = c.Frames
}

func (c *countdown) Update(in core.InputFrame) {
	if c.remaining <= 0 {
		return
	}
	c.remaining--
	if c.remaining == 0 && c.OnExpire != nil {
		c.OnExpire()
	}
}

// Remaining returns the frames left in the round.
func (c *countdown) Remaining() int {
	return c.remaining
}
