package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5)
	// all walls initially
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	m.Set(2, 2, MakeFloor())
	if !m.IsWalkable(2, 2) {
		t.Error("floor tile should be walkable")
	}
	// out of bounds
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	edge := Rect{4, 0, 8, 4} // shares the x=4 column with a
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
	if !a.Intersects(edge) {
		t.Error("rectangles sharing an edge intersect (inclusive bounds)")
	}
}

func TestAt(t *testing.T) {
	m := New(5, 5)
	if m.At(2, 3) != MakeWall() {
		t.Fatal("expected a wall at (2,3) before any Set")
	}
	m.Set(2, 3, MakeFloor())
	if m.At(2, 3) != MakeFloor() {
		t.Fatal("Set should be reflected by subsequent At")
	}
}

func TestCanonicalTiles(t *testing.T) {
	cases := []struct {
		name                  string
		tile                  Tile
		walkable, transparent bool
		glyph                 rune
	}{
		{"floor", MakeFloor(), true, true, ' '},
		{"wall", MakeWall(), false, false, '+'},
		{"stairs", MakeStairsDown(), true, true, '>'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.tile.Walkable != tc.walkable || tc.tile.Transparent != tc.transparent || tc.tile.Glyph != tc.glyph {
				t.Errorf("%s = %+v", tc.name, tc.tile)
			}
		})
	}
}

func TestRectInnerExcludesBorder(t *testing.T) {
	r := NewRect(2, 2, 4, 4) // (2,2)-(6,6)
	if r.Inner(2, 3) || r.Inner(6, 3) {
		t.Error("border cells must not be inner")
	}
	if !r.Inner(3, 3) || !r.Inner(5, 5) {
		t.Error("(3,3) and (5,5) should be inner")
	}
}

func TestSetVisibleGrowsExplored(t *testing.T) {
	m := New(4, 4)
	first := NewBitset(4, 4)
	first[1][1] = true
	m.SetVisible(first)

	second := NewBitset(4, 4)
	second[2][2] = true
	m.SetVisible(second)

	if m.IsVisible(1, 1) {
		t.Error("(1,1) should no longer be visible")
	}
	if !m.IsExplored(1, 1) || !m.IsExplored(2, 2) {
		t.Error("explored must keep every cell ever seen")
	}
	if m.IsVisible(-1, 0) || m.IsExplored(4, 0) {
		t.Error("out-of-bounds cells are never visible or explored")
	}
}

func TestIsTransparent(t *testing.T) {
	cases := []struct {
		name string
		tile Tile
		x, y int
		want bool
	}{
		{"wall is opaque", MakeWall(), 2, 2, false},
		{"floor is transparent", MakeFloor(), 2, 2, true},
		{"out-of-bounds x=-1", MakeWall(), -1, 0, false},
		{"out-of-bounds y=-1", MakeWall(), 0, -1, false},
		{"out-of-bounds beyond width", MakeWall(), 10, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(5, 5)
			if tc.x >= 0 && tc.y >= 0 && tc.x < 5 && tc.y < 5 {
				m.Set(tc.x, tc.y, tc.tile)
			}
			if got := m.IsTransparent(tc.x, tc.y); got != tc.want {
				t.Errorf("IsTransparent(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}
