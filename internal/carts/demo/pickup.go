package demo

import (
	"github.com/avoronkov/cartage/internal/core"
	"github.com/avoronkov/cartage/internal/ecs"
)

// Pickup makes its entity collectable: when the target entity's box
// overlaps its own, OnCollect fires once and the pickup's entity is
// flagged for removal at the scene's next sweep.
type Pickup struct {
	ecs.BaseComponent
	Target    string // name of the entity that collects us
	OnCollect func(p *Pickup)

	box *Box
}

func (p *Pickup) Init() {
	p.box = nil
	if c, ok := p.Owner().Component("box"); ok {
		p.box, _ = c.(*Box)
	}
}

func (p *Pickup) Update(in core.InputFrame) {
	owner := p.Owner()
	if p.box == nil || owner == nil || owner.Scene() == nil {
		return
	}

	target, ok := owner.Scene().Entity(p.Target)
	if !ok {
		return
	}
	tc, ok := target.Component("box")
	if !ok {
		return
	}
	tbox, ok := tc.(*Box)
	if !ok {
		return
	}

	if p.box.Rect().Intersects(tbox.Rect()) {
		owner.SetPendingRemoval(true)
		if p.OnCollect != nil {
			p.OnCollect(p)
		}
	}
}
