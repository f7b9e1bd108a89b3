package system

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"dighack/internal/gamemap"
	"math/rand"
	"slices"
)

// Chebyshev returns the king-move distance between two positions.
func Chebyshev(a, b component.Position) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// PathStep returns the first step (dx, dy) of a shortest 8-connected path
// from `from` to `to`. ok is false when no path exists.
func PathStep(w *ecs.World, gmap *gamemap.GameMap, from, to component.Position) (dx, dy int, ok bool) {
	path := PathTo(w, gmap, from, to)
	if len(path) == 0 {
		return 0, 0, false
	}
	return path[0].X - from.X, path[0].Y - from.Y, true
}

// PathTo returns a shortest 8-connected path from `from` to `to`, excluding
// `from` and ending on `to`. Walls and blocking entities are impassable
// except at the goal. The result is nil when no path exists.
func PathTo(w *ecs.World, gmap *gamemap.GameMap, from, to component.Position) []component.Position {
	if from == to || !gmap.InBounds(to.X, to.Y) {
		return nil
	}
	blocked := gamemap.NewBitset(gmap.Width, gmap.Height)
	for _, id := range w.Query(component.CTagBlocking, component.CPosition) {
		p := w.Get(id, component.CPosition).(component.Position)
		if gmap.InBounds(p.X, p.Y) {
			blocked[p.Y][p.X] = true
		}
	}

	// parent[y][x] holds the cell we came from, offset by one so zero is unset.
	parent := make([][]int, gmap.Height)
	for y := range parent {
		parent[y] = make([]int, gmap.Width)
	}
	encode := func(x, y int) int { return y*gmap.Width + x + 1 }

	parent[from.Y][from.X] = -1
	queue := []component.Position{from}
	found := false
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if !gmap.IsWalkable(nx, ny) || parent[ny][nx] != 0 {
				continue
			}
			goal := nx == to.X && ny == to.Y
			if blocked[ny][nx] && !goal {
				continue
			}
			parent[ny][nx] = encode(cur.X, cur.Y)
			if goal {
				found = true
				break
			}
			queue = append(queue, component.Position{X: nx, Y: ny})
		}
	}
	if !found {
		return nil
	}

	// Walk back from the goal to the start, then reverse.
	var path []component.Position
	x, y := to.X, to.Y
	for x != from.X || y != from.Y {
		path = append(path, component.Position{X: x, Y: y})
		p := parent[y][x] - 1
		x, y = p%gmap.Width, p/gmap.Width
	}
	slices.Reverse(path)
	return path
}

// RandomDirection picks one of the eight neighbour offsets uniformly.
func RandomDirection(rng *rand.Rand) (dx, dy int) {
	d := neighbours[rng.Intn(len(neighbours))]
	return d[0], d[1]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
