package system

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"testing"
)

func makeCombatants(pow, def, defHP int) (*ecs.World, ecs.EntityID, ecs.EntityID) {
	w := ecs.NewWorld()
	attacker := w.CreateEntity()
	w.Add(attacker, component.Fighter{HP: 30, MaxHP: 30, BasePower: pow})

	defender := w.CreateEntity()
	w.Add(defender, component.Fighter{HP: defHP, MaxHP: defHP, BaseDefense: def})
	w.Add(defender, component.Renderable{Glyph: 'o', Name: "Orc", Order: component.OrderActor})
	w.Add(defender, component.TagBlocking{})
	w.Add(defender, component.AI{Behavior: component.BehaviorHostile})
	w.Add(defender, component.Position{X: 1, Y: 1})
	return w, attacker, defender
}

func hpOf(w *ecs.World, id ecs.EntityID) int {
	return w.Get(id, component.CFighter).(component.Fighter).HP
}

func TestAttackPowerFourDefenseOne(t *testing.T) {
	w, attacker, defender := makeCombatants(4, 1, 10)

	res := Attack(w, attacker, defender)
	if res.Damage != 3 || hpOf(w, defender) != 7 {
		t.Fatalf("after one hit: damage=%d hp=%d, want 3 and 7", res.Damage, hpOf(w, defender))
	}
	Attack(w, attacker, defender)
	Attack(w, attacker, defender)
	if hpOf(w, defender) != 1 {
		t.Fatalf("after three hits hp=%d, want 1", hpOf(w, defender))
	}
	res = Attack(w, attacker, defender)
	if !res.Killed || hpOf(w, defender) != 0 {
		t.Fatalf("fourth hit should kill: killed=%v hp=%d", res.Killed, hpOf(w, defender))
	}
	if w.Has(defender, component.CTagBlocking) {
		t.Error("a corpse must not block movement")
	}
	if w.Has(defender, component.CAI) {
		t.Error("a corpse must not keep its AI")
	}
	r := w.Get(defender, component.CRenderable).(component.Renderable)
	if r.Glyph != CorpseGlyph || r.Name != "remains of Orc" || r.Order != component.OrderCorpse {
		t.Errorf("unexpected corpse renderable %+v", r)
	}
}

func TestAttackNeverNegative(t *testing.T) {
	w, attacker, defender := makeCombatants(2, 5, 10)
	res := Attack(w, attacker, defender)
	if res.Damage != 0 {
		t.Fatalf("damage should clamp to 0, got %d", res.Damage)
	}
	if hpOf(w, defender) != 10 {
		t.Fatal("HP must not change on a zero-damage hit")
	}
}

func TestDamageClampsAtZero(t *testing.T) {
	w, _, defender := makeCombatants(0, 0, 5)
	if !ApplyDamage(w, defender, 50) {
		t.Fatal("overkill should still report the kill")
	}
	if hpOf(w, defender) != 0 {
		t.Fatalf("HP should clamp at 0, got %d", hpOf(w, defender))
	}
	if ApplyDamage(w, defender, 1) {
		t.Fatal("a corpse cannot be killed twice")
	}
}

func TestAttackMissingFighter(t *testing.T) {
	w := ecs.NewWorld()
	a := w.CreateEntity()
	d := w.CreateEntity()
	if res := Attack(w, a, d); res != (AttackResult{}) {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestEquipmentBonuses(t *testing.T) {
	w := ecs.NewWorld()
	sword := w.CreateEntity()
	w.Add(sword, component.Equippable{Slot: component.SlotWeapon, PowerBonus: 4})
	mail := w.CreateEntity()
	w.Add(mail, component.Equippable{Slot: component.SlotArmor, DefenseBonus: 3})

	hero := w.CreateEntity()
	w.Add(hero, component.Fighter{HP: 30, MaxHP: 30, BasePower: 4, BaseDefense: 1})
	w.Add(hero, component.Equipment{Weapon: sword, Armor: mail})

	if got := Power(w, hero); got != 8 {
		t.Errorf("Power = %d, want 8", got)
	}
	if got := Defense(w, hero); got != 4 {
		t.Errorf("Defense = %d, want 4", got)
	}

	w.Add(hero, component.Equipment{})
	if Power(w, hero) != 4 || Defense(w, hero) != 1 {
		t.Error("unequipped hero should be back to base stats")
	}
}

func TestHeal(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Fighter{HP: 28, MaxHP: 30})

	if got := Heal(w, id, 4); got != 2 {
		t.Fatalf("Heal recovered %d, want 2 (capped at max)", got)
	}
	if got := Heal(w, id, 4); got != 0 {
		t.Fatalf("Heal at full HP recovered %d, want 0", got)
	}
	if hpOf(w, id) != 30 {
		t.Fatalf("HP = %d, want 30", hpOf(w, id))
	}
}
