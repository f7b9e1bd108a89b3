package render

import (
	"dighack/internal/game"

	"github.com/gdamore/tcell/v2"
)

// Message colours, one per log tag.
var tagColors = map[game.Tag]tcell.Color{
	game.TagPlain:         tcell.NewRGBColor(0xFF, 0xFF, 0xFF),
	game.TagPlayerAttack:  tcell.NewRGBColor(0x8C, 0x8C, 0x8C),
	game.TagEnemyAttack:   tcell.NewRGBColor(0xFF, 0xC0, 0xC0),
	game.TagNeedsTarget:   tcell.NewRGBColor(0x3F, 0xFF, 0xFF),
	game.TagStatusApplied: tcell.NewRGBColor(0x3F, 0xFF, 0x3F),
	game.TagDescend:       tcell.NewRGBColor(0x9F, 0x3F, 0xFF),
	game.TagPlayerDie:     tcell.NewRGBColor(0xFF, 0x30, 0x30),
	game.TagEnemyDie:      tcell.NewRGBColor(0xFF, 0xA0, 0x30),
	game.TagWelcome:       tcell.NewRGBColor(0x20, 0xA0, 0xFF),
	game.TagHeal:          tcell.NewRGBColor(0x00, 0xFF, 0x00),
	game.TagInvalid:       tcell.NewRGBColor(0xFF, 0xFF, 0x00),
	game.TagImpossible:    tcell.NewRGBColor(0x80, 0x80, 0x80),
	game.TagError:         tcell.NewRGBColor(0xFF, 0x40, 0x40),
}

// TagColor returns the foreground colour for a message tag.
func TagColor(t game.Tag) tcell.Color {
	if c, ok := tagColors[t]; ok {
		return c
	}
	return tagColors[game.TagPlain]
}

// Health bar colours.
var (
	barText   = tcell.NewRGBColor(0xFF, 0xFF, 0xFF)
	barFilled = tcell.NewRGBColor(0x00, 0x60, 0x00)
	barEmpty  = tcell.NewRGBColor(0x40, 0x10, 0x10)
)

// Tile backgrounds: lit cells are warm, remembered cells are dim blue.
var (
	litWall    = tcell.NewRGBColor(130, 110, 50)
	litFloor   = tcell.NewRGBColor(200, 180, 50)
	darkWall   = tcell.NewRGBColor(0, 0, 100)
	darkFloor  = tcell.NewRGBColor(50, 50, 150)
	cursorBack = tcell.NewRGBColor(0xFF, 0xFF, 0xFF)
	areaBack   = tcell.NewRGBColor(0x80, 0x20, 0x20)
)

// glyphColors tints entity glyphs. Unknown glyphs draw white.
var glyphColors = map[rune]tcell.Color{
	'@': tcell.NewRGBColor(255, 255, 255),
	'o': tcell.NewRGBColor(63, 127, 63),
	'T': tcell.NewRGBColor(0, 127, 0),
	'x': tcell.NewRGBColor(191, 0, 0),
	':': tcell.NewRGBColor(127, 0, 255),
	'%': tcell.NewRGBColor(255, 255, 0),
	'?': tcell.NewRGBColor(207, 63, 255),
	'*': tcell.NewRGBColor(255, 0, 0),
	'/': tcell.NewRGBColor(0, 191, 255),
	'[': tcell.NewRGBColor(139, 69, 19),
	'>': tcell.NewRGBColor(255, 255, 255),
}

func glyphColor(g rune) tcell.Color {
	if c, ok := glyphColors[g]; ok {
		return c
	}
	return tcell.ColorWhite
}
