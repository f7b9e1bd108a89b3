// Package client runs one interactive game on a tcell screen: it turns key
// presses into game actions, drives the prompts and saves on exit.
package client

import (
	"context"
	"dighack/internal/component"
	"dighack/internal/game"
	"dighack/internal/render"
	"dighack/internal/save"
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
)

const historyLen = 20

type mode uint8

const (
	modePlay mode = iota
	modeUse
	modeDrop
	modeTarget
	modeLevelUp
	modeHistory
	modeCharacter
	modeDead
)

// Client holds the UI state around one engine.
type Client struct {
	screen   tcell.Screen
	engine   *game.Engine
	store    save.Store
	slot     string
	renderer *render.Renderer

	mode    mode
	item    int // inventory slot awaiting a target
	cursor  component.Position
	radius  int
	failure error
}

// New wraps engine. store may be nil, in which case nothing is saved.
func New(screen tcell.Screen, engine *game.Engine, store save.Store, slot string) *Client {
	c := &Client{
		screen:   screen,
		engine:   engine,
		store:    store,
		slot:     slot,
		renderer: render.NewRenderer(screen),
	}
	c.settle()
	return c
}

// Run plays until the player quits or ctx is cancelled, then saves the
// session to slot. A dead player's slot is deleted instead.
func Run(ctx context.Context, screen tcell.Screen, engine *game.Engine, store save.Store, slot string) error {
	c := New(screen, engine, store, slot)

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		c.Draw()
		select {
		case <-ctx.Done():
			return c.finish(context.WithoutCancel(ctx))
		case ev, ok := <-events:
			if !ok {
				return c.finish(ctx)
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if c.HandleKey(ev) {
					return c.finish(ctx)
				}
				if c.failure != nil {
					return c.failure
				}
			}
		}
	}
}

// finish persists the session according to its state.
func (c *Client) finish(ctx context.Context) error {
	if c.store == nil || c.slot == "" {
		return nil
	}
	if c.engine.State() == game.StateDead {
		err := c.store.Delete(ctx, c.slot)
		if err != nil && !errors.Is(err, save.ErrNotFound) {
			return fmt.Errorf("delete slot %q: %w", c.slot, err)
		}
		return nil
	}
	if err := save.SaveEngine(ctx, c.store, c.slot, c.engine); err != nil {
		return err
	}
	log.Printf("saved session %s to slot %q", c.engine.ID(), c.slot)
	return nil
}

// Draw renders the current frame.
func (c *Client) Draw() {
	f := c.engine.Feed(render.HUDRows - 1)
	ov := render.Overlay{}
	switch c.mode {
	case modeUse:
		ov.Menu = render.InventoryMenu(f, "Select an item to use")
	case modeDrop:
		ov.Menu = render.InventoryMenu(f, "Select an item to drop")
	case modeTarget:
		cur := c.cursor
		ov.Cursor, ov.Radius = &cur, c.radius
	case modeLevelUp:
		ov.Menu = render.LevelUpMenu(f)
	case modeHistory:
		msgs := c.engine.Messages()
		if len(msgs) > historyLen {
			msgs = msgs[len(msgs)-historyLen:]
		}
		ov.Menu = render.HistoryMenu(msgs)
	case modeCharacter:
		ov.Menu = render.CharacterMenu(f)
	case modeDead:
		ov.Menu = render.DeathMenu()
	}
	c.renderer.Draw(f, ov)
}

// HandleKey applies one key press and reports whether the client should
// stop.
func (c *Client) HandleKey(ev *tcell.EventKey) bool {
	cmd := keyToCommand(ev)
	switch c.mode {
	case modePlay:
		return c.play(cmd)
	case modeUse, modeDrop:
		c.chooseItem(ev)
	case modeTarget:
		c.target(cmd)
	case modeLevelUp:
		c.levelUp(ev.Rune())
	case modeHistory, modeCharacter:
		c.mode = modePlay
	case modeDead:
		return cmd == CmdQuit
	}
	return false
}

func (c *Client) play(cmd Command) bool {
	switch {
	case isMove(cmd):
		dx, dy := commandToDelta(cmd)
		c.act(game.BumpAction{DX: dx, DY: dy})
	case cmd == CmdWait:
		c.act(game.WaitAction{})
	case cmd == CmdPickup:
		c.act(game.PickupAction{})
	case cmd == CmdDescend:
		c.act(game.DescendAction{})
	case cmd == CmdUse:
		c.mode = modeUse
	case cmd == CmdDrop:
		c.mode = modeDrop
	case cmd == CmdHistory:
		c.mode = modeHistory
	case cmd == CmdCharacter:
		c.mode = modeCharacter
	case cmd == CmdQuit:
		return true
	}
	return false
}

func (c *Client) chooseItem(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		c.mode = modePlay
		return
	}
	index := int(ev.Rune() - 'a')
	if c.mode == modeDrop {
		c.mode = modePlay
		c.act(game.InventoryAction{Index: index, Mode: game.InventoryDrop})
		return
	}

	c.mode = modePlay
	sel, radius, err := c.engine.SelectTarget(index)
	if err != nil {
		return
	}
	if sel == component.SelectNone {
		c.act(game.InventoryAction{Index: index})
		return
	}
	c.item = index
	c.cursor = c.engine.Feed(0).Player
	c.radius = 0
	if sel == component.SelectArea {
		c.radius = radius
	}
	c.mode = modeTarget
}

func (c *Client) target(cmd Command) {
	switch {
	case isMove(cmd):
		dx, dy := commandToDelta(cmd)
		m := c.engine.Map()
		c.cursor.X = max(0, min(m.Width-1, c.cursor.X+dx))
		c.cursor.Y = max(0, min(m.Height-1, c.cursor.Y+dy))
	case cmd == CmdConfirm:
		c.mode = modePlay
		target := c.cursor
		c.act(game.InventoryAction{Index: c.item, Target: &target})
	case cmd == CmdQuit:
		c.mode = modePlay
	}
}

func (c *Client) levelUp(r rune) {
	var choice game.LevelChoice
	switch r {
	case 'a':
		choice = game.ChooseConstitution
	case 'b':
		choice = game.ChooseStrength
	case 'c':
		choice = game.ChooseAgility
	}
	if err := c.engine.LevelUp(choice); err != nil {
		return
	}
	c.settle()
}

// act runs one action through the engine and picks the next mode.
func (c *Client) act(a game.Action) {
	out := c.engine.HandleAction(a)
	if out.Kind == game.Failed {
		log.Printf("session %s: %v", c.engine.ID(), out.Err)
		c.failure = out.Err
		return
	}
	c.settle()
}

// settle leaves any prompt the engine no longer needs and enters the
// level-up or death screen when it does.
func (c *Client) settle() {
	switch {
	case c.engine.State() == game.StateDead:
		c.mode = modeDead
	case c.engine.LevelUpPending():
		c.mode = modeLevelUp
	case c.mode == modeLevelUp:
		c.mode = modePlay
	}
}
