// Package demo is the built-in example cartridge: steer a box around
// the playfield and grab coins before the clock runs out. It exists to
// show the object model end to end: prototypes composed into
// components, components attached to entities, entities grouped into
// scenes, and a title-to-play scene swap through the director.
package demo

import (
	"math/rand"

	"github.com/avoronkov/cartage/internal/core"
	"github.com/avoronkov/cartage/internal/ecs"
	"github.com/avoronkov/cartage/internal/registry"
)

const (
	cartID    = "demo"
	cartTitle = "Coin Chase"

	playerW, playerH = 2, 2
	roundSeconds     = 30
)

// Shared component prototypes. Factories always compose into a fresh
// instance; these are never mutated.
var (
	transformProto = &Transform{}
	moverProto     = &Mover{Speed: 1}
	boxProto       = &Box{W: 1, H: 1, Color: core.ColorWhite}
	pickupProto    = &Pickup{Target: "player"}
)

func init() {
	registry.Register(cartID, func() registry.Cart { return New() })
}

// Cart is the demo cartridge state shared by its scenes.
type Cart struct {
	cfg      core.RuntimeConfig
	rng      *rand.Rand
	factory  *ecs.Factory
	director *ecs.Director
	play     *ecs.Scene
	coin     *ecs.Entity
	clock    *countdown

	score int
	over  bool
}

// New creates an unbooted demo cart.
func New() *Cart {
	return &Cart{}
}

// ID implements registry.Cart.
func (c *Cart) ID() string {
	return cartID
}

// Title implements registry.Cart.
func (c *Cart) Title() string {
	return cartTitle
}

// Status implements registry.Cart.
func (c *Cart) Status() registry.Status {
	return registry.Status{Score: c.score, GameOver: c.over}
}

// Boot builds the title and play scenes and returns the director bound
// to the title card.
func (c *Cart) Boot(cfg core.RuntimeConfig) (*ecs.Director, error) {
	c.cfg = cfg
	c.rng = rand.New(rand.NewSource(cfg.Seed))
	c.score = 0
	c.over = false
	c.factory = ecs.NewFactory()

	play, err := c.buildPlayScene()
	if err != nil {
		return nil, err
	}
	c.play = play

	title, err := c.buildTitleScene()
	if err != nil {
		return nil, err
	}

	c.director = ecs.NewDirector(title)
	return c.director, nil
}

func (c *Cart) buildTitleScene() (*ecs.Scene, error) {
	f := c.factory

	gate, err := ecs.NewComponent(f, &startGate{}, ecs.WithName("gate"),
		ecs.WithOverride(&startGate{
			Title: "COIN CHASE",
			Start: func() {
				// Best effort: a failed swap leaves the title card up.
				_ = c.director.ChangeScene(c.play)
			},
		}))
	if err != nil {
		return nil, err
	}

	ui, err := f.NewEntity(ecs.EntityDef{
		Name:       "ui",
		Components: []ecs.Component{gate},
	})
	if err != nil {
		return nil, err
	}

	return f.NewScene(ecs.SceneDef{
		Name:     "title",
		Entities: []*ecs.Entity{ui},
	})
}

func (c *Cart) buildPlayScene() (*ecs.Scene, error) {
	f := c.factory
	cfg := c.cfg

	border, err := ecs.NewComponent(f, &frame{}, ecs.WithName("frame"),
		ecs.WithOverride(&frame{Color: core.ColorStorm}))
	if err != nil {
		return nil, err
	}
	walls, err := f.NewEntity(ecs.EntityDef{
		Name:       "walls",
		Components: []ecs.Component{border},
	})
	if err != nil {
		return nil, err
	}

	player, err := c.buildPlayer()
	if err != nil {
		return nil, err
	}

	c.clock, err = ecs.NewComponent(f, &countdown{}, ecs.WithName("clock"),
		ecs.WithOverride(&countdown{
			Frames:   cfg.TickRate * roundSeconds,
			OnExpire: func() { c.over = true },
		}))
	if err != nil {
		return nil, err
	}
	scoreboard, err := ecs.NewComponent(f, &hud{}, ecs.WithName("hud"),
		ecs.WithOverride(&hud{
			Score: func() int { return c.score },
			Time:  func() int { return c.clock.Remaining() },
			Rate:  cfg.TickRate,
		}))
	if err != nil {
		return nil, err
	}
	overlay, err := f.NewEntity(ecs.EntityDef{
		Name:       "overlay",
		Components: []ecs.Component{c.clock, scoreboard},
	})
	if err != nil {
		return nil, err
	}

	return f.NewScene(ecs.SceneDef{
		Name:     "play",
		Entities: []*ecs.Entity{walls, player, overlay},
		OnLoad: func(s *ecs.Scene) error {
			// Re-entrant: a fresh round every time the scene loads.
			c.score = 0
			c.over = false
			c.resetPlayer(s)
			if c.coin == nil || c.coin.Scene() != s {
				if err := c.spawnCoin(s); err != nil {
					return err
				}
			}
			return nil
		},
	})
}

func (c *Cart) buildPlayer() (*ecs.Entity, error) {
	f := c.factory
	cfg := c.cfg

	tf, err := ecs.NewComponent(f, transformProto, ecs.WithName("transform"),
		ecs.WithOverride(&Transform{X: cfg.ScreenW / 2, Y: cfg.ScreenH / 2}))
	if err != nil {
		return nil, err
	}
	mv, err := ecs.NewComponent(f, moverProto, ecs.WithName("mover"),
		ecs.WithOverride(&Mover{
			Bounds: core.NewRect(1, 1, cfg.ScreenW-2-playerW, cfg.ScreenH-2-playerH),
		}))
	if err != nil {
		return nil, err
	}
	box, err := ecs.NewComponent(f, boxProto, ecs.WithName("box"),
		ecs.WithOverride(&Box{W: playerW, H: playerH, Color: core.ColorPeach}))
	if err != nil {
		return nil, err
	}

	// Attachment order matters: mover and box resolve the transform
	// sibling during init.
	return f.NewEntity(ecs.EntityDef{
		Name:       "player",
		Components: []ecs.Component{tf, mv, box},
	})
}

// spawnCoin stamps a coin entity at a random free spot and adds it to
// the scene. Safe to call mid-update: the entity joins the order after
// the in-progress pass.
func (c *Cart) spawnCoin(s *ecs.Scene) error {
	f := c.factory
	cfg := c.cfg

	x := 1 + c.rng.Intn(core.Max(cfg.ScreenW-3, 1))
	y := 1 + c.rng.Intn(core.Max(cfg.ScreenH-3, 1))

	tf, err := ecs.NewComponent(f, transformProto, ecs.WithName("transform"),
		ecs.WithOverride(&Transform{X: x, Y: y}))
	if err != nil {
		return err
	}
	box, err := ecs.NewComponent(f, boxProto, ecs.WithName("box"),
		ecs.WithOverride(&Box{Color: core.ColorYellow}))
	if err != nil {
		return err
	}
	pk, err := ecs.NewComponent(f, pickupProto, ecs.WithName("pickup"),
		ecs.WithOverride(&Pickup{
			OnCollect: func(p *Pickup) {
				c.score++
				_ = c.spawnCoin(s)
			},
		}))
	if err != nil {
		return err
	}

	coin, err := f.NewEntity(ecs.EntityDef{
		Components: []ecs.Component{tf, box, pk},
	})
	if err != nil {
		return err
	}
	c.coin = coin
	return s.AddEntity(coin)
}

func (c *Cart) resetPlayer(s *ecs.Scene) {
	player, ok := s.Entity("player")
	if !ok {
		return
	}
	if comp, ok := player.Component("transform"); ok {
		if tf, ok := comp.(*Transform); ok {
			tf.X = c.cfg.ScreenW / 2
			tf.Y = c.cfg.ScreenH / 2
		}
	}
}
