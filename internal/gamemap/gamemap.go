// Package gamemap holds the tile grid for one dungeon floor together with
// the visible and explored bitsets derived from the player's field of view.
package gamemap

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds the rectangle with top-left (x, y) spanning w×h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Inner reports whether (x, y) lies strictly inside the rectangle border.
func (r Rect) Inner(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// GameMap is the tile grid of one floor. Visible is rewritten by every FOV
// refresh; Explored only ever gains cells.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Visible       [][]bool
	Explored      [][]bool
	Downstairs    Point
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{
		Width:    width,
		Height:   height,
		Tiles:    tiles,
		Visible:  NewBitset(width, height),
		Explored: NewBitset(width, height),
	}
}

// NewBitset allocates a height×width boolean grid.
func NewBitset(width, height int) [][]bool {
	b := make([][]bool, height)
	for y := range b {
		b[y] = make([]bool, width)
	}
	return b
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) Tile {
	return m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Transparent
}

// IsVisible reports whether (x, y) is currently in the player's view.
func (m *GameMap) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Visible[y][x]
}

// IsExplored reports whether (x, y) has ever been seen.
func (m *GameMap) IsExplored(x, y int) bool {
	return m.InBounds(x, y) && m.Explored[y][x]
}

// SetVisible replaces the visible bitset and merges it into Explored.
// visible must have the map's dimensions.
func (m *GameMap) SetVisible(visible [][]bool) {
	m.Visible = visible
	for y := range m.Height {
		for x := range m.Width {
			if visible[y][x] {
				m.Explored[y][x] = true
			}
		}
	}
}

// IsDownstairs reports whether (x, y) is the floor's descent point.
func (m *GameMap) IsDownstairs(x, y int) bool {
	return m.Downstairs.X == x && m.Downstairs.Y == y
}
