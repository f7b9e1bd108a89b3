package generate

import (
	"dighack/internal/gamemap"
	"math/rand"
)

// FloorValue maps a minimum floor to a value, e.g. a spawn cap.
type FloorValue struct {
	Floor int
	Value int
}

// Chance is one row of a weighted spawn table.
type Chance struct {
	Floor    int // first floor the template may appear on
	Template string
	Weight   int
}

// Tables bound and weight what a floor may contain.
type Tables struct {
	MaxMonsters []FloorValue // ascending by Floor
	MaxItems    []FloorValue // ascending by Floor
	Monsters    []Chance
	Items       []Chance
}

// Spawn asks the factory to create Template at (X, Y).
type Spawn struct {
	Template string
	X, Y     int
}

// FloorMax returns the value of the last entry whose Floor <= floor, or 0.
// table must be sorted ascending by Floor.
func FloorMax(table []FloorValue, floor int) int {
	current := 0
	for _, fv := range table {
		if fv.Floor > floor {
			break
		}
		current = fv.Value
	}
	return current
}

// ChooseWeighted draws n templates with replacement, proportional to weight,
// from the rows available on floor. When a template appears in several
// eligible rows the latest row's weight wins.
func ChooseWeighted(table []Chance, n, floor int, rng *rand.Rand) []string {
	var names []string
	weights := make(map[string]int)
	for _, c := range table {
		if c.Floor > floor {
			continue
		}
		if _, seen := weights[c.Template]; !seen {
			names = append(names, c.Template)
		}
		weights[c.Template] = c.Weight
	}

	total := 0
	for _, name := range names {
		total += weights[name]
	}
	if total <= 0 || n <= 0 {
		return nil
	}

	out := make([]string, 0, n)
	for range n {
		pick := rng.Intn(total)
		for _, name := range names {
			pick -= weights[name]
			if pick < 0 {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// placeEntities rolls the monsters and items for one room. A spawn whose
// cell is already taken is dropped rather than moved.
func placeEntities(room gamemap.Rect, cfg *Config, occupied map[gamemap.Point]bool) []Spawn {
	rng := cfg.Rand
	monsters := randint(rng, 0, FloorMax(cfg.Tables.MaxMonsters, cfg.Floor))
	items := randint(rng, 0, FloorMax(cfg.Tables.MaxItems, cfg.Floor))

	templates := ChooseWeighted(cfg.Tables.Monsters, monsters, cfg.Floor, rng)
	templates = append(templates, ChooseWeighted(cfg.Tables.Items, items, cfg.Floor, rng)...)

	var spawns []Spawn
	for _, tmpl := range templates {
		p := gamemap.Point{
			X: randint(rng, room.X1+1, room.X2-1),
			Y: randint(rng, room.Y1+1, room.Y2-1),
		}
		if occupied[p] {
			continue
		}
		occupied[p] = true
		spawns = append(spawns, Spawn{Template: tmpl, X: p.X, Y: p.Y})
	}
	return spawns
}

// randint returns a uniform integer in [lo, hi].
func randint(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
