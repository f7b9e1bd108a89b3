package system

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"dighack/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // position updated
	MoveBlocked                    // wall or out-of-bounds
	MoveOccupied                   // a blocking entity stands on the destination
)

// TryMove attempts to move entity id by (dx, dy) on gmap.
// Returns the outcome and, for MoveOccupied, the entity in the way.
func TryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	if !gmap.IsWalkable(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}
	if other := BlockingAt(w, nx, ny); other != ecs.NilEntity && other != id {
		return MoveOccupied, other
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// BlockingAt returns the blocking entity standing on (x, y), or NilEntity.
func BlockingAt(w *ecs.World, x, y int) ecs.EntityID {
	for _, id := range w.Query(component.CTagBlocking, component.CPosition) {
		p := w.Get(id, component.CPosition).(component.Position)
		if p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// ActorAt returns the living fighter standing on (x, y), or NilEntity.
func ActorAt(w *ecs.World, x, y int) ecs.EntityID {
	for _, id := range w.Query(component.CFighter, component.CPosition) {
		if !w.Get(id, component.CFighter).(component.Fighter).Alive() {
			continue
		}
		p := w.Get(id, component.CPosition).(component.Position)
		if p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// ItemsAt returns the items lying on (x, y) in spawn order.
func ItemsAt(w *ecs.World, x, y int) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(component.CTagItem, component.CPosition) {
		p := w.Get(id, component.CPosition).(component.Position)
		if p.X == x && p.Y == y {
			out = append(out, id)
		}
	}
	return out
}
