package game

import (
	"dighack/internal/component"
	"dighack/internal/system"
)

// LevelChoice is the attribute raised by a level-up.
type LevelChoice uint8

const (
	ChooseConstitution LevelChoice = iota + 1 // +20 max HP
	ChooseStrength                            // +1 power
	ChooseAgility                             // +1 defense
)

// LevelUp spends the level offered by the last turn on choice. It does not
// take a turn; further banked levels wait for the next one.
func (e *Engine) LevelUp(choice LevelChoice) error {
	if !e.LevelUpPending() {
		return e.invalid("You have no level-up pending.")
	}
	switch choice {
	case ChooseConstitution:
		system.IncreaseMaxHP(e.world, e.playerID)
		e.addMessage("Your health improves!", TagPlain)
	case ChooseStrength:
		system.IncreasePower(e.world, e.playerID)
		e.addMessage("You feel stronger!", TagPlain)
	case ChooseAgility:
		system.IncreaseDefense(e.world, e.playerID)
		e.addMessage("Your movements are getting swifter!", TagPlain)
	default:
		return e.invalid(errInvalidEntry.Message)
	}
	e.levelUpOffered = false
	return nil
}

// SelectTarget looks up the inventory slot the player is about to use and
// prompts for a target when it needs one.
func (e *Engine) SelectTarget(index int) (component.Selector, int, error) {
	item, err := e.inventoryItem(e.playerID, index)
	if err != nil {
		e.addMessage(errInvalidEntry.Message, TagInvalid)
		return component.SelectNone, 0, err
	}
	c := e.world.Get(item, component.CConsumable)
	if c == nil {
		return component.SelectNone, 0, nil
	}
	cons := c.(component.Consumable)
	sel := cons.Selector()
	if sel != component.SelectNone {
		e.addMessage("Select a target location.", TagNeedsTarget)
	}
	return sel, cons.Radius, nil
}

func (e *Engine) invalid(msg string) error {
	e.addMessage(msg, TagInvalid)
	return &Invalid{Message: msg}
}

func (e *Engine) playerFighter() (component.Fighter, bool) {
	c := e.world.Get(e.playerID, component.CFighter)
	if c == nil {
		return component.Fighter{}, false
	}
	return c.(component.Fighter), true
}
