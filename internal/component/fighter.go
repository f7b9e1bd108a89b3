package component

import "dighack/internal/ecs"

const CFighter ecs.ComponentType = 6

// Fighter holds hit points and base combat stats. Effective power and
// defense add equipment bonuses; see system.Power and system.Defense.
type Fighter struct {
	HP, MaxHP   int
	BasePower   int
	BaseDefense int
}

func (Fighter) Type() ecs.ComponentType { return CFighter }

// Alive reports whether the fighter still has hit points.
func (f Fighter) Alive() bool { return f.HP > 0 }
