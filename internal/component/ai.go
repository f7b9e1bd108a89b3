package component

import "dighack/internal/ecs"

const CAI ecs.ComponentType = 7

// AIBehavior describes how an actor picks its action each turn.
type AIBehavior uint8

const (
	BehaviorHostile  AIBehavior = iota // seek the player and melee when adjacent
	BehaviorConfused                   // stumble randomly until TurnsRemaining runs out
)

type AI struct {
	Behavior AIBehavior
	// Previous is restored when a confusion wears off.
	Previous       AIBehavior
	TurnsRemaining int
	// Path is the remembered route toward the player, next step first.
	Path []Position
}

func (AI) Type() ecs.ComponentType { return CAI }
