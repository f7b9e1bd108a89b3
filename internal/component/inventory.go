package component

import "dighack/internal/ecs"

const (
	CInventory ecs.ComponentType = 8
	CEquipment ecs.ComponentType = 9
)

// Inventory is an ordered list of carried item entities.
type Inventory struct {
	Items    []ecs.EntityID
	Capacity int
}

func (Inventory) Type() ecs.ComponentType { return CInventory }

// Full reports whether another item would exceed the capacity.
func (inv Inventory) Full() bool { return len(inv.Items) >= inv.Capacity }

// Index returns the position of item in the list, or -1.
func (inv Inventory) Index(item ecs.EntityID) int {
	for i, id := range inv.Items {
		if id == item {
			return i
		}
	}
	return -1
}

// Equipment holds the equipped item entity for each slot (NilEntity = empty).
// Equipped items stay in the Inventory list.
type Equipment struct {
	Weapon ecs.EntityID
	Armor  ecs.EntityID
}

func (Equipment) Type() ecs.ComponentType { return CEquipment }

// Slot returns the item held in slot s.
func (e Equipment) Slot(s EquipSlot) ecs.EntityID {
	if s == SlotArmor {
		return e.Armor
	}
	return e.Weapon
}

// WithSlot returns a copy with slot s set to item.
func (e Equipment) WithSlot(s EquipSlot, item ecs.EntityID) Equipment {
	if s == SlotArmor {
		e.Armor = item
	} else {
		e.Weapon = item
	}
	return e
}

// IsEquipped reports whether item occupies any slot.
func (e Equipment) IsEquipped(item ecs.EntityID) bool {
	return item != ecs.NilEntity && (e.Weapon == item || e.Armor == item)
}
