package gamemap

// Glyphs used by the three canonical tiles.
const (
	GlyphFloor      rune = ' '
	GlyphWall       rune = '+'
	GlyphStairsDown rune = '>'
)

// Tile is an immutable terrain value.
type Tile struct {
	Walkable    bool
	Transparent bool
	Glyph       rune
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Walkable: false, Transparent: false, Glyph: GlyphWall}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Walkable: true, Transparent: true, Glyph: GlyphFloor}
}

// MakeStairsDown returns a downward staircase tile.
func MakeStairsDown() Tile {
	return Tile{Walkable: true, Transparent: true, Glyph: GlyphStairsDown}
}
