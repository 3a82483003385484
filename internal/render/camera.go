package render

// cellColumns is how many terminal columns one map tile spans. Every
// glyph is drawn as a wide rune.
const cellColumns = 2

// Camera maps dungeon tiles onto the terminal area above the HUD.
type Camera struct {
	OffsetX, OffsetY int // top-left tile of the view
	Cols, Rows       int // view size in terminal cells
}

// NewCamera returns a camera of cols by rows terminal cells looking at (x, y).
func NewCamera(x, y, cols, rows int) *Camera {
	c := &Camera{Cols: cols, Rows: rows}
	c.Center(x, y)
	return c
}

// Center puts tile (x, y) in the middle of the view.
func (c *Camera) Center(x, y int) {
	c.OffsetX = x - c.Cols/cellColumns/2
	c.OffsetY = y - c.Rows/2
}

// Resize changes the view size and keeps the tile it was centered on.
func (c *Camera) Resize(cols, rows int) {
	x, y := c.ScreenToWorld(c.Cols/2, c.Rows/2)
	c.Cols, c.Rows = cols, rows
	c.Center(x, y)
}

// WorldToScreen returns the terminal cell of tile (wx, wy) and whether it
// lies inside the view.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * cellColumns
	sy = wy - c.OffsetY
	return sx, sy, sx >= 0 && sx < c.Cols && sy >= 0 && sy < c.Rows
}

// ScreenToWorld returns the tile under terminal cell (sx, sy).
func (c *Camera) ScreenToWorld(sx, sy int) (wx, wy int) {
	return sx/cellColumns + c.OffsetX, sy + c.OffsetY
}
