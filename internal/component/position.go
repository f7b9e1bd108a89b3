// Package component holds the capability components an entity may carry.
// Systems dispatch on presence: an entity with a Fighter can be attacked, an
// entity with an AI acts in the AI phase, and so on.
package component

import "dighack/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position places an entity on the current map. Items carried in an
// inventory have no Position.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
