package game

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"dighack/internal/system"
	"fmt"
	"strings"
)

// Action is one intended move by one actor. Perform either mutates the
// session or returns a rejection (*Impossible, *Invalid) having changed
// nothing. An Actor of NilEntity means the player.
type Action interface {
	Perform(e *Engine) error
}

func (e *Engine) actor(id ecs.EntityID) ecs.EntityID {
	if id == ecs.NilEntity {
		return e.playerID
	}
	return id
}

// WaitAction passes the turn.
type WaitAction struct {
	Actor ecs.EntityID
}

func (WaitAction) Perform(*Engine) error { return nil }

// BumpAction attacks a living actor at the destination, otherwise moves.
type BumpAction struct {
	Actor  ecs.EntityID
	DX, DY int
}

func (a BumpAction) Perform(e *Engine) error {
	id := e.actor(a.Actor)
	pos, ok := e.position(id)
	if !ok {
		return impossible("That way is blocked.")
	}
	if system.ActorAt(e.world, pos.X+a.DX, pos.Y+a.DY) != ecs.NilEntity {
		return MeleeAction{Actor: id, DX: a.DX, DY: a.DY}.Perform(e)
	}
	return MovementAction{Actor: id, DX: a.DX, DY: a.DY}.Perform(e)
}

// MovementAction steps one cell.
type MovementAction struct {
	Actor  ecs.EntityID
	DX, DY int
}

func (a MovementAction) Perform(e *Engine) error {
	if res, _ := system.TryMove(e.world, e.gmap, e.actor(a.Actor), a.DX, a.DY); res != system.MoveOK {
		return impossible("That way is blocked.")
	}
	return nil
}

// MeleeAction attacks the living actor in the given direction.
type MeleeAction struct {
	Actor  ecs.EntityID
	DX, DY int
}

func (a MeleeAction) Perform(e *Engine) error {
	id := e.actor(a.Actor)
	pos, ok := e.position(id)
	if !ok {
		return impossible("Nothing to attack.")
	}
	target := system.ActorAt(e.world, pos.X+a.DX, pos.Y+a.DY)
	if target == ecs.NilEntity || target == id {
		return impossible("Nothing to attack.")
	}

	desc := fmt.Sprintf("%s attacks %s", capitalize(e.entityName(id)), e.entityName(target))
	tag := TagEnemyAttack
	if id == e.playerID {
		tag = TagPlayerAttack
	}
	dmg := max(0, system.Power(e.world, id)-system.Defense(e.world, target))
	if dmg > 0 {
		e.addMessage(fmt.Sprintf("%s for %d hit points.", desc, dmg), tag)
	} else {
		e.addMessage(desc+" but does no damage.", tag)
	}
	e.damage(id, target, dmg)
	return nil
}

// damage applies amount to id and handles the death if it was lethal.
// The killer earns the victim's XPGiven.
func (e *Engine) damage(attacker, id ecs.EntityID, amount int) {
	name := e.entityName(id)
	if !system.ApplyDamage(e.world, id, amount) {
		return
	}
	if id == e.playerID {
		e.addMessage("You died!", TagPlayerDie)
		e.state = StateDead
		return
	}
	e.addMessage(fmt.Sprintf("%s is dead!", name), TagEnemyDie)
	c := e.world.Get(id, component.CLevel)
	if c == nil || attacker == id {
		return
	}
	if xp := c.(component.Level).XPGiven; xp > 0 {
		system.AddXP(e.world, attacker, xp)
		if attacker == e.playerID {
			e.addMessage(fmt.Sprintf("You gain %d experience points.", xp), TagPlain)
		}
	}
}

// PickupAction picks up the first item on the actor's cell.
type PickupAction struct {
	Actor ecs.EntityID
}

func (a PickupAction) Perform(e *Engine) error {
	id := e.actor(a.Actor)
	pos, ok := e.position(id)
	if !ok {
		return impossible("There is nothing here to pick up.")
	}
	items := system.ItemsAt(e.world, pos.X, pos.Y)
	if len(items) == 0 {
		return impossible("There is nothing here to pick up.")
	}
	inv, ok := e.inventory(id)
	if !ok || inv.Full() {
		return impossible("Your inventory is full.")
	}
	item := items[0]
	e.world.Remove(item, component.CPosition)
	inv.Items = append(inv.Items, item)
	e.world.Add(id, inv)
	e.addMessage(fmt.Sprintf("You picked up the %s!", e.entityName(item)), TagPlain)
	return nil
}

// DropAction puts a carried item on the actor's cell, unequipping it first.
type DropAction struct {
	Actor ecs.EntityID
	Item  ecs.EntityID
}

func (a DropAction) Perform(e *Engine) error {
	id := e.actor(a.Actor)
	inv, ok := e.inventory(id)
	idx := inv.Index(a.Item)
	if !ok || idx < 0 {
		return impossible("You do not carry that.")
	}
	pos, _ := e.position(id)
	if e.equipment(id).IsEquipped(a.Item) {
		e.unequip(id, a.Item)
	}
	inv.Items = append(inv.Items[:idx:idx], inv.Items[idx+1:]...)
	e.world.Add(id, inv)
	e.world.Add(a.Item, pos)
	e.addMessage(fmt.Sprintf("You dropped the %s.", e.entityName(a.Item)), TagPlain)
	return nil
}

// EquipAction toggles an equippable item. Equipping into an occupied slot
// removes the previous item first.
type EquipAction struct {
	Actor ecs.EntityID
	Item  ecs.EntityID
}

func (a EquipAction) Perform(e *Engine) error {
	id := e.actor(a.Actor)
	c := e.world.Get(a.Item, component.CEquippable)
	if c == nil {
		return impossible("The %s cannot be equipped.", e.entityName(a.Item))
	}
	if !e.world.Has(id, component.CEquipment) {
		return impossible("You cannot equip anything.")
	}
	if inv, _ := e.inventory(id); inv.Index(a.Item) < 0 {
		return impossible("You do not carry that.")
	}
	if e.equipment(id).IsEquipped(a.Item) {
		e.unequip(id, a.Item)
		return nil
	}
	slot := c.(component.Equippable).Slot
	if current := e.equipment(id).Slot(slot); current != ecs.NilEntity {
		e.unequip(id, current)
	}
	e.world.Add(id, e.equipment(id).WithSlot(slot, a.Item))
	e.addMessage(fmt.Sprintf("You equip the %s.", e.entityName(a.Item)), TagPlain)
	return nil
}

func (e *Engine) unequip(id, item ecs.EntityID) {
	eq := e.equipment(id)
	switch item {
	case eq.Weapon:
		eq.Weapon = ecs.NilEntity
	case eq.Armor:
		eq.Armor = ecs.NilEntity
	default:
		return
	}
	e.world.Add(id, eq)
	e.addMessage(fmt.Sprintf("You remove the %s.", e.entityName(item)), TagPlain)
}

// DescendAction takes the down stairs under the actor.
type DescendAction struct {
	Actor ecs.EntityID
}

func (a DescendAction) Perform(e *Engine) error {
	pos, ok := e.position(e.actor(a.Actor))
	if !ok || !e.gmap.IsDownstairs(pos.X, pos.Y) {
		return impossible("There are no stairs here.")
	}
	if err := e.loadFloor(e.floor + 1); err != nil {
		return err
	}
	e.addMessage("You descend the staircase.", TagDescend)
	return nil
}

// InventoryMode selects what InventoryAction does with the chosen slot.
type InventoryMode uint8

const (
	InventoryUse InventoryMode = iota
	InventoryDrop
)

// InventoryAction resolves an inventory slot (0 = 'a') into a use, equip
// or drop. Target is passed on to consumables that need one.
type InventoryAction struct {
	Actor  ecs.EntityID
	Index  int
	Mode   InventoryMode
	Target *component.Position
}

func (a InventoryAction) Perform(e *Engine) error {
	id := e.actor(a.Actor)
	item, err := e.inventoryItem(id, a.Index)
	if err != nil {
		return err
	}
	if a.Mode == InventoryDrop {
		return DropAction{Actor: id, Item: item}.Perform(e)
	}
	if e.world.Has(item, component.CEquippable) && !e.world.Has(item, component.CConsumable) {
		return EquipAction{Actor: id, Item: item}.Perform(e)
	}
	return ItemAction{Actor: id, Item: item, Target: a.Target}.Perform(e)
}

func (e *Engine) inventoryItem(id ecs.EntityID, index int) (ecs.EntityID, error) {
	inv, _ := e.inventory(id)
	if index < 0 || index >= len(inv.Items) {
		return ecs.NilEntity, errInvalidEntry
	}
	return inv.Items[index], nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
