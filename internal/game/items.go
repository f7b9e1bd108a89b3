package game

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"dighack/internal/system"
	"fmt"
	"math"
)

// ItemAction uses a consumable. Target is required by confusion and
// fireball and ignored by the rest.
type ItemAction struct {
	Actor  ecs.EntityID
	Item   ecs.EntityID
	Target *component.Position
}

func (a ItemAction) Perform(e *Engine) error {
	id := e.actor(a.Actor)
	c := e.world.Get(a.Item, component.CConsumable)
	if c == nil {
		return impossible("The %s cannot be used.", e.entityName(a.Item))
	}
	cons := c.(component.Consumable)
	if cons.Selector() != component.SelectNone && a.Target == nil {
		return impossible("You must select a target location.")
	}

	var err error
	switch cons.Kind {
	case component.ConsumeHeal:
		err = e.useHeal(id, a.Item, cons)
	case component.ConsumeLightning:
		err = e.useLightning(id, cons)
	case component.ConsumeConfusion:
		err = e.useConfusion(id, cons, *a.Target)
	case component.ConsumeFireball:
		err = e.useFireball(id, cons, *a.Target)
	default:
		return fmt.Errorf("use item %d: unknown consumable kind %d", a.Item, cons.Kind)
	}
	if err != nil {
		return err
	}
	e.consume(id, a.Item)
	return nil
}

func (e *Engine) useHeal(id, item ecs.EntityID, cons component.Consumable) error {
	recovered := system.Heal(e.world, id, cons.Amount)
	if recovered <= 0 {
		return impossible("Your health is already full.")
	}
	e.addMessage(fmt.Sprintf("You consume the %s, and recover %d HP!", e.entityName(item), recovered), TagHeal)
	return nil
}

// useLightning strikes the closest visible actor strictly within Range+1.
func (e *Engine) useLightning(id ecs.EntityID, cons component.Consumable) error {
	pos, _ := e.position(id)
	target := ecs.NilEntity
	closest := float64(cons.Range) + 1
	for _, other := range e.livingActors() {
		if other == id {
			continue
		}
		op := e.world.Get(other, component.CPosition).(component.Position)
		if !e.gmap.IsVisible(op.X, op.Y) {
			continue
		}
		if d := distance(pos, op); d < closest {
			target, closest = other, d
		}
	}
	if target == ecs.NilEntity {
		return impossible("No enemy is close enough to strike.")
	}
	e.addMessage(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder, for %d damage!",
		e.entityName(target), cons.Amount), TagPlain)
	e.damage(id, target, cons.Amount)
	return nil
}

func (e *Engine) useConfusion(id ecs.EntityID, cons component.Consumable, at component.Position) error {
	if !e.gmap.IsVisible(at.X, at.Y) {
		return impossible("You cannot target an area that you cannot see.")
	}
	target := system.ActorAt(e.world, at.X, at.Y)
	switch {
	case target == ecs.NilEntity:
		return impossible("You must select an enemy to target.")
	case target == id:
		return impossible("You cannot confuse yourself!")
	case !system.Confuse(e.world, target, cons.Turns):
		return impossible("The %s cannot be confused.", e.entityName(target))
	}
	e.addMessage(fmt.Sprintf("The eyes of the %s look vacant, as it starts to stumble around!",
		e.entityName(target)), TagStatusApplied)
	return nil
}

// useFireball hits every living actor within Radius of the target,
// the user included.
func (e *Engine) useFireball(id ecs.EntityID, cons component.Consumable, at component.Position) error {
	if !e.gmap.IsVisible(at.X, at.Y) {
		return impossible("You cannot target an area that you cannot see.")
	}
	var hit []ecs.EntityID
	for _, other := range e.livingActors() {
		op := e.world.Get(other, component.CPosition).(component.Position)
		if distance(at, op) <= float64(cons.Radius) {
			hit = append(hit, other)
		}
	}
	if len(hit) == 0 {
		return impossible("There are no targets in the radius.")
	}
	for _, other := range hit {
		e.addMessage(fmt.Sprintf("The %s is engulfed in a fiery explosion, taking %d damage!",
			e.entityName(other), cons.Amount), TagPlain)
		e.damage(id, other, cons.Amount)
	}
	return nil
}

// consume removes a used item from the inventory and the world.
func (e *Engine) consume(id, item ecs.EntityID) {
	if inv, ok := e.inventory(id); ok {
		if idx := inv.Index(item); idx >= 0 {
			inv.Items = append(inv.Items[:idx:idx], inv.Items[idx+1:]...)
			e.world.Add(id, inv)
		}
	}
	e.world.DestroyEntity(item)
}

// livingActors returns positioned fighters with HP left, in spawn order.
func (e *Engine) livingActors() []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range e.world.Query(component.CFighter, component.CPosition) {
		if e.world.Get(id, component.CFighter).(component.Fighter).Alive() {
			out = append(out, id)
		}
	}
	return out
}

func distance(a, b component.Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
