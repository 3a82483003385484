package gamemap

// Side names the edge of a partition a room connects through.
type Side uint8

const (
	SideNone Side = iota
	SideNorth
	SideSouth
	SideEast
	SideWest
)

func (s Side) String() string {
	switch s {
	case SideNorth:
		return "north"
	case SideSouth:
		return "south"
	case SideEast:
		return "east"
	case SideWest:
		return "west"
	}
	return "none"
}

// Room is an axis-aligned partition rectangle plus its center.
// ConnectTo is only meaningful while the dungeon is being generated.
type Room struct {
	X, Y, Width, Height int
	CenterX, CenterY    int
	ConnectTo           Side
}

// NewRoom returns a room whose center is derived from its rectangle.
func NewRoom(x, y, w, h int) Room {
	return Room{X: x, Y: y, Width: w, Height: h, CenterX: x + w/2, CenterY: y + h/2}
}

// Center returns the center point of the room.
func (r Room) Center() (int, int) {
	return r.CenterX, r.CenterY
}

// Contains reports whether (x, y) lies inside the room rectangle
// (right and bottom edges exclusive).
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// GameMap holds the tile grid and room list for one dungeon level.
// Tiles is indexed [x][y].
type GameMap struct {
	Width, Height int
	Tiles         [][]int
	Rooms         []Room
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([][]int, width)
	for x := range tiles {
		tiles[x] = make([]int, height)
		for y := range tiles[x] {
			tiles[x][y] = Wall
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// NewSimple creates one big bordered room covering the whole map.
func NewSimple(width, height int) *GameMap {
	m := New(width, height)
	for x := 1; x < width-1; x++ {
		for y := 1; y < height-1; y++ {
			m.Tiles[x][y] = Floor
		}
	}
	m.Rooms = []Room{{
		X:       0,
		Y:       0,
		Width:   width - 2,
		Height:  height - 2,
		CenterX: width / 2,
		CenterY: height / 2,
	}}
	return m
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile code at (x, y). Off-grid positions read as wall.
func (m *GameMap) At(x, y int) int {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.Tiles[x][y]
}

// Set replaces the tile at (x, y). Off-grid writes are ignored.
func (m *GameMap) Set(x, y, tile int) {
	if m.InBounds(x, y) {
		m.Tiles[x][y] = tile
	}
}

// IsFloor returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsFloor(x, y int) bool {
	return m.At(x, y) == Floor
}

// Flatten returns the grid in row-major order (index = y*Width + x).
func (m *GameMap) Flatten() []int {
	out := make([]int, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			out[y*m.Width+x] = m.Tiles[x][y]
		}
	}
	return out
}

// SameRoom reports whether both points lie inside one room rectangle.
func (m *GameMap) SameRoom(ax, ay, bx, by int) bool {
	for _, r := range m.Rooms {
		if r.Contains(ax, ay) && r.Contains(bx, by) {
			return true
		}
	}
	return false
}
