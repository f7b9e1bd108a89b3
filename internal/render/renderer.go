// Package render draws a game.Feed onto a tcell screen. It only reads the
// feed; all game rules live in package game.
package render

import (
	"dighack/internal/component"
	"dighack/internal/game"
	"dighack/internal/gamemap"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of rows reserved at the bottom for the status bar
// and message log.
const HUDRows = 5

// Overlay is transient UI drawn over the map: a targeting cursor, an area
// preview and an optional menu box.
type Overlay struct {
	Cursor *component.Position
	Radius int // area preview radius around Cursor; 0 for single cell
	Menu   *Menu
}

// Menu is a titled box of text lines.
type Menu struct {
	Title string
	Lines []string
}

// Renderer draws the game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0)}
	r.resize()
	return r
}

func (r *Renderer) resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(0, h-HUDRows)
}

// Camera exposes the current viewport.
func (r *Renderer) Camera() *Camera { return r.camera }

// Draw renders one full frame and shows it.
func (r *Renderer) Draw(f game.Feed, ov Overlay) {
	r.resize()
	r.screen.Clear()

	focus := f.Player
	if ov.Cursor != nil {
		focus = *ov.Cursor
	}
	r.camera.Follow(focus.X, focus.Y, f.Width, f.Height)

	r.drawMap(f)
	if ov.Cursor != nil {
		r.drawCursor(f, *ov.Cursor, ov.Radius)
	}
	r.DrawHUD(f)
	if ov.Menu != nil {
		r.drawMenu(*ov.Menu)
	}
	r.screen.Show()
}

func (r *Renderer) drawMap(f game.Feed) {
	for _, c := range f.Cells {
		if c.Glyph == game.GlyphNone {
			continue
		}
		sx, sy, onScreen := r.camera.WorldToScreen(c.X, c.Y)
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, c.Glyph, cellStyle(c))
	}
}

func cellStyle(c game.Cell) tcell.Style {
	wall := !c.Entity && c.Glyph == gamemap.GlyphWall
	var bg tcell.Color
	switch {
	case c.Visible && wall:
		bg = litWall
	case c.Visible:
		bg = litFloor
	case wall:
		bg = darkWall
	default:
		bg = darkFloor
	}
	fg := tcell.ColorWhite
	if c.Entity || c.Glyph == gamemap.GlyphStairsDown {
		fg = glyphColor(c.Glyph)
	} else if wall {
		fg = bg
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

// drawCursor highlights the target cell and, for area targeting, every
// cell within radius of it.
func (r *Renderer) drawCursor(f game.Feed, cur component.Position, radius int) {
	if radius > 0 {
		for _, c := range f.Cells {
			if math.Hypot(float64(c.X-cur.X), float64(c.Y-cur.Y)) > float64(radius) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(c.X, c.Y)
			if !onScreen {
				continue
			}
			mainc, _, _, _ := r.screen.GetContent(sx, sy)
			r.screen.SetContent(sx, sy, mainc, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(areaBack))
		}
	}
	sx, sy, onScreen := r.camera.WorldToScreen(cur.X, cur.Y)
	if !onScreen {
		return
	}
	mainc, _, _, _ := r.screen.GetContent(sx, sy)
	if mainc == 0 {
		mainc = ' '
	}
	r.screen.SetContent(sx, sy, mainc, nil, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(cursorBack))
}

// drawMenu draws a bordered box centred over the map area.
func (r *Renderer) drawMenu(m Menu) {
	sw, _ := r.screen.Size()
	width := runewidth.StringWidth(m.Title) + 4
	for _, l := range m.Lines {
		width = max(width, runewidth.StringWidth(l)+4)
	}
	width = min(width, sw)
	height := len(m.Lines) + 2
	x0 := max(0, (sw-width)/2)
	y0 := max(0, (r.camera.ViewHeight-height)/2)

	border := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+height-1) && (x == x0 || x == x0+width-1):
				ch = '+'
			case y == y0 || y == y0+height-1:
				ch = '─'
			case x == x0 || x == x0+width-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, border)
		}
	}
	r.drawText(x0+2, y0, width-4, " "+m.Title+" ", border.Bold(true))
	for i, l := range m.Lines {
		r.drawText(x0+2, y0+1+i, width-4, l, border)
	}
}

// putGlyph draws a single glyph at screen position (x, y), padding the
// second column of wide runes.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
