package system

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"dighack/internal/gamemap"
)

// DefaultFOVRadius is the player's sight radius in flood-fill hops.
const DefaultFOVRadius = 8

type fovNode struct {
	x, y    int
	pathLen int // cells on the path from the origin, origin included
}

// ComputeFOV flood-fills outward from (ox, oy) and returns the visible bitset.
//
// This is not line of sight. Every in-bounds 8-neighbour of a dequeued cell
// becomes visible when the path to it would hold at most radius cells, so a
// radius of 8 reaches 7 hops. Only transparent cells are expanded further,
// and each cell is enqueued at most once. Opaque cells are lit where the
// flood touches them and nothing behind them is.
func ComputeFOV(m *gamemap.GameMap, ox, oy, radius int) [][]bool {
	visible := gamemap.NewBitset(m.Width, m.Height)
	if !m.InBounds(ox, oy) {
		return visible
	}
	visible[oy][ox] = true

	seen := gamemap.NewBitset(m.Width, m.Height)
	seen[oy][ox] = true
	queue := []fovNode{{ox, oy, 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.pathLen+1 > radius {
			continue
		}
		for _, d := range neighbours {
			nx, ny := cur.x+d[0], cur.y+d[1]
			if !m.InBounds(nx, ny) {
				continue
			}
			visible[ny][nx] = true
			if seen[ny][nx] || !m.IsTransparent(nx, ny) {
				continue
			}
			seen[ny][nx] = true
			queue = append(queue, fovNode{nx, ny, cur.pathLen + 1})
		}
	}
	return visible
}

// UpdateFOV recomputes the map's visible set from the player's position and
// merges it into the explored set.
func UpdateFOV(w *ecs.World, m *gamemap.GameMap, playerID ecs.EntityID, radius int) {
	c := w.Get(playerID, component.CPosition)
	if c == nil {
		m.SetVisible(gamemap.NewBitset(m.Width, m.Height))
		return
	}
	pos := c.(component.Position)
	m.SetVisible(ComputeFOV(m, pos.X, pos.Y, radius))
}

var neighbours = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
