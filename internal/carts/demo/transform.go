package demo

import "github.com/avoronkov/cartage/internal/ecs"

// Transform holds an object's position on the console screen.
// It carries no behavior; sibling components read and move it.
type Transform struct {
	ecs.BaseComponent
	X, Y int
}
