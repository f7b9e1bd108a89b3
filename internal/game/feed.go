package game

import (
	"dighack/internal/component"
	"dighack/internal/system"
)

// GlyphNone marks a cell the player has never seen.
const GlyphNone rune = 0

// Cell is one grid cell as the player perceives it.
type Cell struct {
	X, Y    int
	Glyph   rune
	Visible bool
	// Entity is true when Glyph comes from an entity rather than the tile.
	Entity bool
}

// Stats summarises the player for a status bar.
type Stats struct {
	HP, MaxHP      int
	Power, Defense int
	Level, XP      int
	XPToNext       int
}

// ItemView is one inventory line.
type ItemView struct {
	Index    int
	Name     string
	Glyph    rune
	Equipped bool
	Selector component.Selector
	Radius   int
}

// Feed is a read-only snapshot of everything a renderer draws.
type Feed struct {
	Width, Height  int
	Cells          []Cell // row-major
	Player         component.Position
	Stats          Stats
	Floor          int
	Messages       []Message
	Inventory      []ItemView
	State          GameState
	LevelUpPending bool
}

// Feed builds the render feed with the last n messages.
func (e *Engine) Feed(n int) Feed {
	m := e.gmap
	f := Feed{
		Width:          m.Width,
		Height:         m.Height,
		Cells:          make([]Cell, 0, m.Width*m.Height),
		Floor:          e.floor,
		Messages:       e.log.Last(n),
		State:          e.state,
		LevelUpPending: e.LevelUpPending(),
	}
	f.Player, _ = e.position(e.playerID)

	top := e.topEntities()
	for y := range m.Height {
		for x := range m.Width {
			c := Cell{X: x, Y: y, Glyph: GlyphNone}
			switch {
			case m.IsVisible(x, y):
				c.Visible = true
				c.Glyph = m.At(x, y).Glyph
				if g, ok := top[component.Position{X: x, Y: y}]; ok {
					c.Glyph, c.Entity = g, true
				}
			case m.IsExplored(x, y):
				c.Glyph = m.At(x, y).Glyph
			}
			f.Cells = append(f.Cells, c)
		}
	}

	f.Stats = e.stats()
	f.Inventory = e.inventoryView()
	return f
}

// topEntities maps each occupied cell to the glyph drawn on top: highest
// render order wins, later spawns win ties.
func (e *Engine) topEntities() map[component.Position]rune {
	type best struct {
		glyph rune
		order component.RenderOrder
	}
	cells := make(map[component.Position]best)
	for _, id := range e.world.Query(component.CRenderable, component.CPosition) {
		pos := e.world.Get(id, component.CPosition).(component.Position)
		r := e.world.Get(id, component.CRenderable).(component.Renderable)
		if cur, ok := cells[pos]; ok && cur.order > r.Order {
			continue
		}
		cells[pos] = best{r.Glyph, r.Order}
	}
	out := make(map[component.Position]rune, len(cells))
	for p, b := range cells {
		out[p] = b.glyph
	}
	return out
}

func (e *Engine) stats() Stats {
	var s Stats
	if f, ok := e.playerFighter(); ok {
		s.HP, s.MaxHP = f.HP, f.MaxHP
	}
	s.Power = system.Power(e.world, e.playerID)
	s.Defense = system.Defense(e.world, e.playerID)
	if c := e.world.Get(e.playerID, component.CLevel); c != nil {
		lv := c.(component.Level)
		s.Level, s.XP, s.XPToNext = lv.Current, lv.XP, system.XPToNextLevel(lv)
	}
	return s
}

func (e *Engine) inventoryView() []ItemView {
	inv, _ := e.inventory(e.playerID)
	eq := e.equipment(e.playerID)
	out := make([]ItemView, 0, len(inv.Items))
	for i, item := range inv.Items {
		v := ItemView{Index: i, Name: e.entityName(item), Equipped: eq.IsEquipped(item)}
		if c := e.world.Get(item, component.CRenderable); c != nil {
			v.Glyph = c.(component.Renderable).Glyph
		}
		if c := e.world.Get(item, component.CConsumable); c != nil {
			cons := c.(component.Consumable)
			v.Selector, v.Radius = cons.Selector(), cons.Radius
		}
		out = append(out, v)
	}
	return out
}
