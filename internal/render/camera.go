package render

// Camera translates between map coordinates and screen coordinates. Every
// glyph is one terminal column wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera with the given viewport.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow centres the camera on (cx, cy) and then clamps it so a map larger
// than the viewport never shows space past its edges. A smaller map is
// pinned to the top-left corner.
func (c *Camera) Follow(cx, cy, mapW, mapH int) {
	c.OffsetX = clampOffset(cx-c.ViewWidth/2, mapW, c.ViewWidth)
	c.OffsetY = clampOffset(cy-c.ViewHeight/2, mapH, c.ViewHeight)
}

func clampOffset(off, size, view int) int {
	if size <= view {
		return 0
	}
	return max(0, min(off, size-view))
}

// WorldToScreen converts map (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to map coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}
