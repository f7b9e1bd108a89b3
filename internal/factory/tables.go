package factory

import "dighack/internal/generate"

// Tables returns the spawn caps and weights for the standard catalogue.
func Tables() generate.Tables {
	return generate.Tables{
		MaxItems: []generate.FloorValue{
			{Floor: 1, Value: 4},
			{Floor: 4, Value: 8},
		},
		MaxMonsters: []generate.FloorValue{
			{Floor: 1, Value: 2},
			{Floor: 4, Value: 3},
			{Floor: 6, Value: 5},
		},
		Items: []generate.Chance{
			{Floor: 0, Template: HealthPotion, Weight: 8},
			{Floor: 0, Template: ConfusionScroll, Weight: 4},
			{Floor: 0, Template: LightningScroll, Weight: 4},
			{Floor: 0, Template: Sword, Weight: 2},
			{Floor: 0, Template: FireballScroll, Weight: 4},
			{Floor: 0, Template: ChainMail, Weight: 2},
		},
		Monsters: []generate.Chance{
			{Floor: 0, Template: Orc, Weight: 80},
			{Floor: 0, Template: Troll, Weight: 5},
			{Floor: 3, Template: Troll, Weight: 15},
			{Floor: 5, Template: Troll, Weight: 30},
			{Floor: 7, Template: Troll, Weight: 60},
		},
	}
}
