// Package game runs a dungeon session: it owns the world and the map,
// resolves player actions through the turn pipeline and exposes read-only
// feeds for renderers.
package game

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"dighack/internal/factory"
	"dighack/internal/gamemap"
	"dighack/internal/generate"
	"dighack/internal/rng"
	"dighack/internal/system"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// GameState tracks whether the session still accepts actions.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateDead
)

const welcomeMessage = "Hello and welcome, adventurer, to yet another dungeon!"

// Engine is one game session. It is not safe for concurrent use.
type Engine struct {
	id       uuid.UUID
	params   Params
	floor    int
	world    *ecs.World
	gmap     *gamemap.GameMap
	playerID ecs.EntityID
	log      MessageLog
	state    GameState
	src      *rng.Source
	rng      *rand.Rand

	// levelUpOffered is set by the end-of-turn check and spent by LevelUp.
	levelUpOffered bool
}

// New starts a session on floor 1. The same seed and params always produce
// the same dungeon.
func New(params Params, seed int64) (*Engine, error) {
	if params.FOVRadius <= 0 {
		params.FOVRadius = system.DefaultFOVRadius
	}
	r, src := rng.New(seed)
	e := &Engine{
		id:     uuid.New(),
		params: params,
		world:  ecs.NewWorld(),
		src:    src,
		rng:    r,
	}
	e.playerID = factory.NewPlayer(e.world, 0, 0)
	if err := e.loadFloor(1); err != nil {
		return nil, err
	}
	e.addMessage(welcomeMessage, TagWelcome)
	return e, nil
}

// loadFloor generates floor, replaces the current map and moves the player
// to the new spawn. Everything but the player and the items it carries is
// destroyed. On error the current floor is left untouched.
func (e *Engine) loadFloor(floor int) error {
	res, err := generate.Generate(levelConfig(e.params, floor, e.rng))
	if err != nil {
		return fmt.Errorf("generate floor %d: %w", floor, err)
	}
	return e.installFloor(floor, res)
}

func (e *Engine) installFloor(floor int, res *generate.Result) error {
	if err := factory.CheckSpawns(res.Spawns); err != nil {
		return fmt.Errorf("populate floor %d: %w", floor, err)
	}

	e.clearFloor()
	if _, err := factory.Populate(e.world, res.Spawns); err != nil {
		return fmt.Errorf("populate floor %d: %w", floor, err)
	}
	e.gmap = res.Map
	e.floor = floor
	e.world.Add(e.playerID, component.Position{X: res.SpawnX, Y: res.SpawnY})
	e.refreshFOV()
	return nil
}

func (e *Engine) clearFloor() {
	keep := map[ecs.EntityID]bool{e.playerID: true}
	if c := e.world.Get(e.playerID, component.CInventory); c != nil {
		for _, item := range c.(component.Inventory).Items {
			keep[item] = true
		}
	}
	for _, id := range e.world.Entities() {
		if !keep[id] {
			e.world.DestroyEntity(id)
		}
	}
}

func (e *Engine) refreshFOV() {
	system.UpdateFOV(e.world, e.gmap, e.playerID, e.params.FOVRadius)
}

func (e *Engine) addMessage(text string, tag Tag) {
	e.log.Add(text, tag)
}

// entityName returns the display name of id, or "something".
func (e *Engine) entityName(id ecs.EntityID) string {
	if c := e.world.Get(id, component.CRenderable); c != nil {
		return c.(component.Renderable).Name
	}
	return "something"
}

func (e *Engine) position(id ecs.EntityID) (component.Position, bool) {
	c := e.world.Get(id, component.CPosition)
	if c == nil {
		return component.Position{}, false
	}
	return c.(component.Position), true
}

func (e *Engine) inventory(id ecs.EntityID) (component.Inventory, bool) {
	c := e.world.Get(id, component.CInventory)
	if c == nil {
		return component.Inventory{}, false
	}
	return c.(component.Inventory), true
}

func (e *Engine) equipment(id ecs.EntityID) component.Equipment {
	if c := e.world.Get(id, component.CEquipment); c != nil {
		return c.(component.Equipment)
	}
	return component.Equipment{}
}

// ID identifies the session.
func (e *Engine) ID() uuid.UUID { return e.id }

// Params returns the generation parameters.
func (e *Engine) Params() Params { return e.params }

// Floor returns the current dungeon depth, starting at 1.
func (e *Engine) Floor() int { return e.floor }

// State reports whether the player is still alive.
func (e *Engine) State() GameState { return e.state }

// World exposes the entity store. Callers must treat it as read-only.
func (e *Engine) World() *ecs.World { return e.world }

// Map exposes the current floor. Callers must treat it as read-only.
func (e *Engine) Map() *gamemap.GameMap { return e.gmap }

// Player returns the player entity.
func (e *Engine) Player() ecs.EntityID { return e.playerID }

// Messages returns the full message history.
func (e *Engine) Messages() []Message { return e.log.All() }

// LevelUpPending reports whether the last turn offered the player a level.
// At most one level is offered per turn, however much XP is banked.
func (e *Engine) LevelUpPending() bool {
	return e.state == StatePlaying && e.levelUpOffered && system.RequiresLevelUp(e.world, e.playerID)
}
