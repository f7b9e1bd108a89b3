package component

import "dighack/internal/ecs"

const CLevel ecs.ComponentType = 10

// Level tracks experience. XP is cumulative and never decreases; the next
// threshold is derived from Current and LevelUpBase (see system.XPToNextLevel).
type Level struct {
	Current     int
	XP          int
	XPGiven     int // awarded to whoever kills this entity
	LevelUpBase int
}

func (Level) Type() ecs.ComponentType { return CLevel }
