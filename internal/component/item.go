package component

import "dighack/internal/ecs"

const (
	CConsumable ecs.ComponentType = 11
	CEquippable ecs.ComponentType = 12
)

// ConsumableKind selects what happens when the item is used.
type ConsumableKind uint8

const (
	ConsumeHeal      ConsumableKind = iota // restore Amount HP
	ConsumeLightning                       // Amount damage to the nearest visible enemy within Range
	ConsumeConfusion                       // confuse the targeted actor for Turns turns
	ConsumeFireball                        // Amount damage to every actor within Radius of the target
)

// Selector describes what target a consumable needs before it can be used.
type Selector uint8

const (
	SelectNone       Selector = iota // applies immediately
	SelectSingleCell                 // needs one target coordinate
	SelectArea                       // needs a target coordinate; affects a radius
)

// Consumable is a single-use item behaviour.
type Consumable struct {
	Kind   ConsumableKind
	Amount int
	Range  int
	Radius int
	Turns  int
}

func (Consumable) Type() ecs.ComponentType { return CConsumable }

// Selector reports the targeting mode this consumable requires.
func (c Consumable) Selector() Selector {
	switch c.Kind {
	case ConsumeConfusion:
		return SelectSingleCell
	case ConsumeFireball:
		return SelectArea
	}
	return SelectNone
}

// EquipSlot categorises where an item can be equipped.
type EquipSlot uint8

const (
	SlotWeapon EquipSlot = iota
	SlotArmor
)

// Equippable items add to the wearer's power or defense while equipped.
type Equippable struct {
	Slot         EquipSlot
	PowerBonus   int
	DefenseBonus int
}

func (Equippable) Type() ecs.ComponentType { return CEquippable }
