package factory

import "dighack/internal/component"

// Template names used by the spawn tables.
const (
	Orc             = "orc"
	Troll           = "troll"
	HealthPotion    = "health_potion"
	LightningScroll = "lightning_scroll"
	ConfusionScroll = "confusion_scroll"
	FireballScroll  = "fireball_scroll"
	Dagger          = "dagger"
	Sword           = "sword"
	LeatherArmor    = "leather_armor"
	ChainMail       = "chain_mail"
)

// Template describes an entity that can be spawned by name. Exactly one of
// Fighter, Consumable or Equippable is set.
type Template struct {
	Name  string
	Glyph rune

	Fighter  *component.Fighter
	XPGiven  int
	Capacity int

	Consumable *component.Consumable
	Equippable *component.Equippable
}

// Player stats.
const (
	PlayerGlyph       = '@'
	PlayerName        = "Player"
	PlayerHP          = 30
	PlayerPower       = 4
	PlayerDefense     = 1
	PlayerCapacity    = 26
	PlayerLevelUpBase = 200
)

var templates = map[string]Template{
	Orc: {
		Name: "Orc", Glyph: 'o',
		Fighter: &component.Fighter{HP: 10, MaxHP: 10, BasePower: 3, BaseDefense: 0},
		XPGiven: 35,
	},
	Troll: {
		Name: "Troll", Glyph: 'T',
		Fighter: &component.Fighter{HP: 16, MaxHP: 16, BasePower: 4, BaseDefense: 1},
		XPGiven: 100,
	},
	HealthPotion: {
		Name: "Health Potion", Glyph: ':',
		Consumable: &component.Consumable{Kind: component.ConsumeHeal, Amount: 4},
	},
	LightningScroll: {
		Name: "Lightning Scroll", Glyph: '%',
		Consumable: &component.Consumable{Kind: component.ConsumeLightning, Amount: 20, Range: 5},
	},
	ConfusionScroll: {
		Name: "Confusion Scroll", Glyph: '?',
		Consumable: &component.Consumable{Kind: component.ConsumeConfusion, Turns: 10},
	},
	FireballScroll: {
		Name: "Fireball Scroll", Glyph: '*',
		Consumable: &component.Consumable{Kind: component.ConsumeFireball, Amount: 12, Radius: 3},
	},
	Dagger: {
		Name: "Dagger", Glyph: '/',
		Equippable: &component.Equippable{Slot: component.SlotWeapon, PowerBonus: 2},
	},
	Sword: {
		Name: "Sword", Glyph: '/',
		Equippable: &component.Equippable{Slot: component.SlotWeapon, PowerBonus: 4},
	},
	LeatherArmor: {
		Name: "Leather Armor", Glyph: '[',
		Equippable: &component.Equippable{Slot: component.SlotArmor, DefenseBonus: 1},
	},
	ChainMail: {
		Name: "Chain Mail", Glyph: '[',
		Equippable: &component.Equippable{Slot: component.SlotArmor, DefenseBonus: 3},
	},
}

// Lookup returns the named template.
func Lookup(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}
