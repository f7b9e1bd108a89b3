package game

import (
	"dighack/internal/system"
	"errors"
	"fmt"
)

// OutcomeKind classifies how HandleAction resolved.
type OutcomeKind uint8

const (
	// Performed means the action happened and a full turn passed.
	Performed OutcomeKind = iota
	// Rejected means nothing changed and no turn passed.
	Rejected
	// Failed means an unexpected error; the session may be inconsistent.
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Performed:
		return "performed"
	case Rejected:
		return "rejected"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("OutcomeKind(%d)", uint8(k))
}

// Outcome reports what HandleAction did.
type Outcome struct {
	Kind    OutcomeKind
	Message string // rejection text, if any
	Err     error  // set when Kind is Failed
	LevelUp bool   // the player may call LevelUp
	Dead    bool   // the player died this turn or earlier
}

// HandleAction runs one full turn: the player's action, then every AI
// actor in spawn order, then the visibility refresh and the end-of-turn
// checks. A rejected action skips everything after the player phase.
func (e *Engine) HandleAction(a Action) Outcome {
	if e.state == StateDead {
		return Outcome{Kind: Rejected, Message: "You are dead.", Dead: true}
	}

	if err := a.Perform(e); err != nil {
		return e.reject(err)
	}

	if err := e.runAI(); err != nil {
		err = fmt.Errorf("enemy turn: %w", err)
		e.addMessage(err.Error(), TagError)
		return Outcome{Kind: Failed, Err: err}
	}

	e.refreshFOV()
	return e.endTurn()
}

// reject logs a player-phase error and converts it to an Outcome.
func (e *Engine) reject(err error) Outcome {
	var imp *Impossible
	var inv *Invalid
	switch {
	case errors.As(err, &imp):
		e.addMessage(imp.Message, TagImpossible)
		return Outcome{Kind: Rejected, Message: imp.Message}
	case errors.As(err, &inv):
		e.addMessage(inv.Message, TagInvalid)
		return Outcome{Kind: Rejected, Message: inv.Message}
	}
	err = fmt.Errorf("perform action: %w", err)
	e.addMessage(err.Error(), TagError)
	return Outcome{Kind: Failed, Err: err}
}

func (e *Engine) endTurn() Outcome {
	if f, ok := e.playerFighter(); !ok || !f.Alive() {
		e.state = StateDead
		return Outcome{Kind: Performed, Dead: true}
	}
	e.levelUpOffered = system.RequiresLevelUp(e.world, e.playerID)
	return Outcome{Kind: Performed, LevelUp: e.LevelUpPending()}
}
