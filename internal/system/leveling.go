package system

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"math"
)

// Stat gain per level-up choice.
const (
	LevelUpHP      = 20
	LevelUpPower   = 1
	LevelUpDefense = 1
)

// XPToNextLevel is the cumulative XP needed to leave lv.Current.
func XPToNextLevel(lv component.Level) int {
	return int(math.Floor(float64(lv.LevelUpBase) * math.Pow(float64(lv.Current), 1.5)))
}

// RequiresLevelUp reports whether id has enough XP for its next level.
func RequiresLevelUp(w *ecs.World, id ecs.EntityID) bool {
	c := w.Get(id, component.CLevel)
	if c == nil {
		return false
	}
	lv := c.(component.Level)
	return lv.XP >= XPToNextLevel(lv)
}

// AddXP adds a non-negative amount of experience.
func AddXP(w *ecs.World, id ecs.EntityID, amount int) {
	c := w.Get(id, component.CLevel)
	if c == nil || amount <= 0 {
		return
	}
	lv := c.(component.Level)
	lv.XP += amount
	w.Add(id, lv)
}

func bumpLevel(w *ecs.World, id ecs.EntityID) {
	lv := w.Get(id, component.CLevel).(component.Level)
	lv.Current++
	w.Add(id, lv)
}

// IncreaseMaxHP raises max HP (and current HP) and advances the level.
func IncreaseMaxHP(w *ecs.World, id ecs.EntityID) {
	f := w.Get(id, component.CFighter).(component.Fighter)
	f.MaxHP += LevelUpHP
	f.HP += LevelUpHP
	w.Add(id, f)
	bumpLevel(w, id)
}

// IncreasePower raises base power and advances the level.
func IncreasePower(w *ecs.World, id ecs.EntityID) {
	f := w.Get(id, component.CFighter).(component.Fighter)
	f.BasePower += LevelUpPower
	w.Add(id, f)
	bumpLevel(w, id)
}

// IncreaseDefense raises base defense and advances the level.
func IncreaseDefense(w *ecs.World, id ecs.EntityID) {
	f := w.Get(id, component.CFighter).(component.Fighter)
	f.BaseDefense += LevelUpDefense
	w.Add(id, f)
	bumpLevel(w, id)
}
