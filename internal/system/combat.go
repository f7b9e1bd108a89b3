package system

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
)

// CorpseGlyph is drawn where an actor died.
const CorpseGlyph = 'x'

// AttackResult holds the outcome of one melee attack.
type AttackResult struct {
	Damage int
	Killed bool
}

// equipBonus sums power and defense bonuses of the items id has equipped.
func equipBonus(w *ecs.World, id ecs.EntityID) (power, defense int) {
	c := w.Get(id, component.CEquipment)
	if c == nil {
		return 0, 0
	}
	eq := c.(component.Equipment)
	for _, item := range []ecs.EntityID{eq.Weapon, eq.Armor} {
		if item == ecs.NilEntity {
			continue
		}
		if ec := w.Get(item, component.CEquippable); ec != nil {
			e := ec.(component.Equippable)
			power += e.PowerBonus
			defense += e.DefenseBonus
		}
	}
	return power, defense
}

// Power returns base power plus equipment bonuses.
func Power(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CFighter)
	if c == nil {
		return 0
	}
	bonus, _ := equipBonus(w, id)
	return c.(component.Fighter).BasePower + bonus
}

// Defense returns base defense plus equipment bonuses.
func Defense(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CFighter)
	if c == nil {
		return 0
	}
	_, bonus := equipBonus(w, id)
	return c.(component.Fighter).BaseDefense + bonus
}

// Attack resolves one hit from attacker against defender.
// Damage is max(0, power-defense). A lethal hit turns the defender into a
// corpse; see Die.
func Attack(w *ecs.World, attackerID, defenderID ecs.EntityID) AttackResult {
	if !w.Has(attackerID, component.CFighter) || !w.Has(defenderID, component.CFighter) {
		return AttackResult{}
	}
	dmg := max(0, Power(w, attackerID)-Defense(w, defenderID))
	return AttackResult{Damage: dmg, Killed: ApplyDamage(w, defenderID, dmg)}
}

// ApplyDamage subtracts amount from the entity's HP, clamped at 0. It returns
// true when this damage killed the entity; the corpse conversion has already
// happened by then.
func ApplyDamage(w *ecs.World, id ecs.EntityID, amount int) bool {
	c := w.Get(id, component.CFighter)
	if c == nil {
		return false
	}
	f := c.(component.Fighter)
	if !f.Alive() {
		return false
	}
	f.HP = max(0, f.HP-amount)
	w.Add(id, f)
	if f.Alive() {
		return false
	}
	Die(w, id)
	return true
}

// Die converts an actor into a corpse. It stops blocking, loses its AI and
// is drawn beneath items.
func Die(w *ecs.World, id ecs.EntityID) {
	w.Remove(id, component.CTagBlocking)
	w.Remove(id, component.CAI)
	name := ""
	if rc := w.Get(id, component.CRenderable); rc != nil {
		name = rc.(component.Renderable).Name
	}
	w.Add(id, component.Renderable{
		Glyph: CorpseGlyph,
		Name:  "remains of " + name,
		Order: component.OrderCorpse,
	})
}

// Heal restores up to amount HP and returns how much was actually recovered.
func Heal(w *ecs.World, id ecs.EntityID, amount int) int {
	c := w.Get(id, component.CFighter)
	if c == nil {
		return 0
	}
	f := c.(component.Fighter)
	if f.HP >= f.MaxHP {
		return 0
	}
	newHP := min(f.MaxHP, f.HP+amount)
	recovered := newHP - f.HP
	f.HP = newHP
	w.Add(id, f)
	return recovered
}
