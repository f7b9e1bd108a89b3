package game

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"dighack/internal/factory"
	"dighack/internal/gamemap"
	"dighack/internal/rng"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds a session on a hand-made 20x10 room: floor from
// (1,1) to (18,8), stairs at (18,8), player at (2,2).
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	r, src := rng.New(1)
	gmap := gamemap.New(20, 10)
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 18; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	gmap.Set(18, 8, gamemap.MakeStairsDown())
	gmap.Downstairs = gamemap.Point{X: 18, Y: 8}

	e := &Engine{
		id:     uuid.New(),
		params: DefaultParams(),
		floor:  1,
		world:  ecs.NewWorld(),
		gmap:   gmap,
		src:    src,
		rng:    r,
	}
	e.playerID = factory.NewPlayer(e.world, 2, 2)
	e.refreshFOV()
	return e
}

func spawn(t *testing.T, e *Engine, name string, x, y int) ecs.EntityID {
	t.Helper()
	id, err := factory.Spawn(e.world, name, x, y)
	require.NoError(t, err)
	return id
}

// give puts a fresh item straight into the player's inventory.
func give(t *testing.T, e *Engine, name string) ecs.EntityID {
	t.Helper()
	id := spawn(t, e, name, 0, 0)
	e.world.Remove(id, component.CPosition)
	inv, _ := e.inventory(e.playerID)
	inv.Items = append(inv.Items, id)
	e.world.Add(e.playerID, inv)
	return id
}

func playerPos(e *Engine) component.Position {
	p, _ := e.position(e.playerID)
	return p
}

func fighter(e *Engine, id ecs.EntityID) component.Fighter {
	return e.world.Get(id, component.CFighter).(component.Fighter)
}

func setHP(e *Engine, id ecs.EntityID, hp int) {
	f := fighter(e, id)
	f.HP = hp
	e.world.Add(id, f)
}

func lastMessage(e *Engine) Message {
	msgs := e.log.Last(1)
	if len(msgs) == 0 {
		return Message{}
	}
	return msgs[0]
}

func hasMessage(e *Engine, sub string) bool {
	for _, m := range e.log.All() {
		if strings.Contains(m.Text, sub) {
			return true
		}
	}
	return false
}

func messageIndex(e *Engine, sub string) int {
	for i, m := range e.log.All() {
		if strings.Contains(m.Text, sub) {
			return i
		}
	}
	return -1
}
