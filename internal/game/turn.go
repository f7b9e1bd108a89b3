package game

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"dighack/internal/system"
	"errors"
	"fmt"
)

// runAI lets every AI actor act once. The actor list is taken up front;
// an actor that died earlier in the batch has lost its AI and is skipped.
// Rejections from AI actions are dropped.
func (e *Engine) runAI() error {
	for _, id := range e.world.Query(component.CAI, component.CPosition) {
		if id == e.playerID || !e.world.Has(id, component.CAI) {
			continue
		}
		a := e.aiAction(id)
		if a == nil {
			continue
		}
		if err := a.Perform(e); err != nil && !isRejection(err) {
			return fmt.Errorf("actor %d: %w", id, err)
		}
	}
	return nil
}

func isRejection(err error) bool {
	var imp *Impossible
	var inv *Invalid
	return errors.As(err, &imp) || errors.As(err, &inv)
}

// aiAction decides what id does this turn. nil means it does nothing.
func (e *Engine) aiAction(id ecs.EntityID) Action {
	ai := e.world.Get(id, component.CAI).(component.AI)
	switch ai.Behavior {
	case component.BehaviorConfused:
		if system.TickConfusion(e.world, id) {
			e.addMessage(fmt.Sprintf("The %s is no longer confused.", e.entityName(id)), TagPlain)
			return nil
		}
		dx, dy := system.RandomDirection(e.rng)
		return BumpAction{Actor: id, DX: dx, DY: dy}
	default:
		return e.hostileAction(id)
	}
}

// hostileAction attacks the player when adjacent. While the actor stands
// where the player can see, it plans a path to the player; it keeps
// following the remembered path after dropping out of sight.
func (e *Engine) hostileAction(id ecs.EntityID) Action {
	pos, ok := e.position(id)
	if !ok {
		return WaitAction{Actor: id}
	}
	ai := e.world.Get(id, component.CAI).(component.AI)
	if target, ok := e.position(e.playerID); ok && e.gmap.IsVisible(pos.X, pos.Y) {
		if system.Chebyshev(pos, target) <= 1 {
			return MeleeAction{Actor: id, DX: target.X - pos.X, DY: target.Y - pos.Y}
		}
		ai.Path = system.PathTo(e.world, e.gmap, pos, target)
	}
	if len(ai.Path) == 0 {
		ai.Path = nil
		e.world.Add(id, ai)
		return WaitAction{Actor: id}
	}

	next := ai.Path[0]
	if system.Chebyshev(pos, next) != 1 {
		// A blocked step left the route behind.
		ai.Path = nil
		e.world.Add(id, ai)
		return WaitAction{Actor: id}
	}
	ai.Path = ai.Path[1:]
	if len(ai.Path) == 0 {
		ai.Path = nil
	}
	e.world.Add(id, ai)
	return MovementAction{Actor: id, DX: next.X - pos.X, DY: next.Y - pos.Y}
}
