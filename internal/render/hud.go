package render

import (
	"dighack/internal/game"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const barWidth = 20

// DrawHUD renders the status panel and the last messages below the map.
func (r *Renderer) DrawHUD(f game.Feed) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - HUDRows
	if hudY < 0 {
		return
	}

	r.drawHLine(hudY, tcell.ColorGray)

	r.drawBar(0, hudY+1, f.Stats.HP, f.Stats.MaxHP)
	r.drawText(0, hudY+2, barWidth, fmt.Sprintf("Dungeon level: %d", f.Floor), tcell.StyleDefault)
	r.drawText(0, hudY+3, barWidth, fmt.Sprintf("LV %d  XP %d/%d", f.Stats.Level, f.Stats.XP, f.Stats.XPToNext), tcell.StyleDefault)
	r.drawText(0, hudY+4, barWidth, fmt.Sprintf("ATK %d  DEF %d", f.Stats.Power, f.Stats.Defense), tcell.StyleDefault)

	logX := barWidth + 2
	logW := screenW - logX
	msgs := f.Messages
	if len(msgs) > HUDRows-1 {
		msgs = msgs[len(msgs)-(HUDRows-1):]
	}
	for i, m := range msgs {
		r.drawText(logX, hudY+1+i, logW, m.FullText(), tcell.StyleDefault.Foreground(TagColor(m.Tag)))
	}
}

// drawBar draws "HP: cur/max" over a filled/empty bar.
func (r *Renderer) drawBar(x, y, cur, maxVal int) {
	filled := 0
	if maxVal > 0 {
		filled = max(0, min(barWidth, cur*barWidth/maxVal))
	}
	label := []rune(fmt.Sprintf(" HP: %d/%d", cur, maxVal))
	for i := range barWidth {
		bg := barEmpty
		if i < filled {
			bg = barFilled
		}
		ch := ' '
		if i < len(label) {
			ch = label[i]
		}
		r.screen.SetContent(x+i, y, ch, nil, tcell.StyleDefault.Foreground(barText).Background(bg))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := range w {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at column x, clipped to width columns.
func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) {
	if width <= 0 {
		return
	}
	text = runewidth.Truncate(text, width, "…")
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
