package system

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
)

// Confuse swaps the entity's AI for a confused one lasting turns turns.
// The previous behaviour is kept so it can be restored. Re-confusing an
// already confused actor keeps the longer duration.
func Confuse(w *ecs.World, id ecs.EntityID, turns int) bool {
	c := w.Get(id, component.CAI)
	if c == nil {
		return false
	}
	ai := c.(component.AI)
	if ai.Behavior == component.BehaviorConfused {
		ai.TurnsRemaining = max(ai.TurnsRemaining, turns)
	} else {
		ai = component.AI{
			Behavior:       component.BehaviorConfused,
			Previous:       ai.Behavior,
			TurnsRemaining: turns,
		}
	}
	w.Add(id, ai)
	return true
}

// TickConfusion consumes one confused turn. It returns recovered=true when
// the confusion had already run out; the previous behaviour is restored and
// the actor does not stumble this turn.
func TickConfusion(w *ecs.World, id ecs.EntityID) (recovered bool) {
	c := w.Get(id, component.CAI)
	if c == nil {
		return false
	}
	ai := c.(component.AI)
	if ai.Behavior != component.BehaviorConfused {
		return false
	}
	if ai.TurnsRemaining <= 0 {
		w.Add(id, component.AI{Behavior: ai.Previous})
		return true
	}
	ai.TurnsRemaining--
	w.Add(id, ai)
	return false
}

// IsConfused reports whether id currently has a confused AI.
func IsConfused(w *ecs.World, id ecs.EntityID) bool {
	c := w.Get(id, component.CAI)
	return c != nil && c.(component.AI).Behavior == component.BehaviorConfused
}
