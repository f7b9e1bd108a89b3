package render

import (
	"dighack/internal/game"
	"fmt"
)

// InventoryMenu lists the carried items as "(a) Name", marking equipped
// ones with "(E)".
func InventoryMenu(f game.Feed, title string) *Menu {
	m := &Menu{Title: title}
	if len(f.Inventory) == 0 {
		m.Lines = []string{"(empty)"}
		return m
	}
	for _, it := range f.Inventory {
		line := fmt.Sprintf("(%c) %s", 'a'+rune(it.Index), it.Name)
		if it.Equipped {
			line += " (E)"
		}
		m.Lines = append(m.Lines, line)
	}
	return m
}

// LevelUpMenu offers the three attribute choices.
func LevelUpMenu(f game.Feed) *Menu {
	return &Menu{
		Title: "Level Up!",
		Lines: []string{
			"Congratulations! You level up!",
			"Select an attribute to increase.",
			fmt.Sprintf("a) Constitution (+20 HP, from %d)", f.Stats.MaxHP),
			fmt.Sprintf("b) Strength (+1 attack, from %d)", f.Stats.Power),
			fmt.Sprintf("c) Agility (+1 defense, from %d)", f.Stats.Defense),
		},
	}
}

// CharacterMenu shows the player's level and combat numbers.
func CharacterMenu(f game.Feed) *Menu {
	return &Menu{
		Title: "Character",
		Lines: []string{
			fmt.Sprintf("Level: %d", f.Stats.Level),
			fmt.Sprintf("XP: %d", f.Stats.XP),
			fmt.Sprintf("XP for next Level: %d", f.Stats.XPToNext),
			fmt.Sprintf("Attack: %d", f.Stats.Power),
			fmt.Sprintf("Defense: %d", f.Stats.Defense),
		},
	}
}

// HistoryMenu shows older messages, oldest first.
func HistoryMenu(msgs []game.Message) *Menu {
	m := &Menu{Title: "Messages"}
	for _, msg := range msgs {
		m.Lines = append(m.Lines, msg.FullText())
	}
	return m
}

// DeathMenu is shown once the player has died.
func DeathMenu() *Menu {
	return &Menu{Title: "You died!", Lines: []string{"Press q to leave."}}
}
