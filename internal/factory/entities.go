// Package factory builds entities from named templates and turns generator
// spawn descriptors into live entities.
package factory

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"dighack/internal/generate"
	"errors"
	"fmt"
)

// ErrUnknownTemplate is returned when a spawn names a template that does
// not exist.
var ErrUnknownTemplate = errors.New("unknown template")

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: PlayerGlyph, Name: PlayerName, Order: component.OrderActor})
	w.Add(id, component.Fighter{
		HP:          PlayerHP,
		MaxHP:       PlayerHP,
		BasePower:   PlayerPower,
		BaseDefense: PlayerDefense,
	})
	w.Add(id, component.Inventory{Capacity: PlayerCapacity})
	w.Add(id, component.Equipment{})
	w.Add(id, component.Level{Current: 1, LevelUpBase: PlayerLevelUpBase})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// Spawn creates the named template at (x, y).
func Spawn(w *ecs.World, name string, x, y int) (ecs.EntityID, error) {
	t, ok := Lookup(name)
	if !ok {
		return ecs.NilEntity, fmt.Errorf("spawn %q: %w", name, ErrUnknownTemplate)
	}
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})

	if t.Fighter != nil {
		w.Add(id, component.Renderable{Glyph: t.Glyph, Name: t.Name, Order: component.OrderActor})
		w.Add(id, *t.Fighter)
		w.Add(id, component.AI{Behavior: component.BehaviorHostile})
		w.Add(id, component.Equipment{})
		w.Add(id, component.Level{Current: 1, XPGiven: t.XPGiven})
		w.Add(id, component.TagBlocking{})
		return id, nil
	}

	w.Add(id, component.Renderable{Glyph: t.Glyph, Name: t.Name, Order: component.OrderItem})
	w.Add(id, component.TagItem{})
	if t.Consumable != nil {
		w.Add(id, *t.Consumable)
	}
	if t.Equippable != nil {
		w.Add(id, *t.Equippable)
	}
	return id, nil
}

// CheckSpawns returns an error for the first spawn naming an unknown
// template.
func CheckSpawns(spawns []generate.Spawn) error {
	for _, sp := range spawns {
		if _, ok := Lookup(sp.Template); !ok {
			return fmt.Errorf("spawn %q: %w", sp.Template, ErrUnknownTemplate)
		}
	}
	return nil
}

// Populate creates one entity per spawn, in order, so entity IDs follow the
// order the generator produced them. Nothing is created if any spawn is
// unknown.
func Populate(w *ecs.World, spawns []generate.Spawn) ([]ecs.EntityID, error) {
	if err := CheckSpawns(spawns); err != nil {
		return nil, err
	}
	ids := make([]ecs.EntityID, 0, len(spawns))
	for _, sp := range spawns {
		id, err := Spawn(w, sp.Template, sp.X, sp.Y)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
