package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"bsp-roguelike/internal/engine"
	"bsp-roguelike/internal/gamemap"
)

// HUDHeight is the number of rows reserved below the map.
const HUDHeight = 8

// Scene is the read-only view of a level the renderer draws.
type Scene interface {
	Width() int
	Height() int
	Tile(x, y int) int
	PlayerPosition() (x, y int)
	GoalPosition() (x, y int)
	Mobs() []engine.MobView
	DroppedItems() []engine.ItemView
}

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	floor  int // 1-indexed floor number for theme selection
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, floor int) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-HUDHeight, 1)),
		floor:  floor,
	}
}

// SetFloor updates the floor theme index.
func (r *Renderer) SetFloor(floor int) { r.floor = floor }

// Resize adapts the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-HUDHeight, 1))
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame renders tiles, the goal, items, mobs and finally the player.
func (r *Renderer) DrawFrame(s Scene) {
	r.screen.Clear()
	r.drawMap(s)

	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	gx, gy := s.GoalPosition()
	r.putWorld(gx, gy, GlyphGoal, style)
	for _, it := range s.DroppedItems() {
		r.putWorld(it.X, it.Y, ItemGlyph(it.Kind), style)
	}
	for _, m := range s.Mobs() {
		r.putWorld(m.X, m.Y, GlyphMob, style)
	}
	px, py := s.PlayerPosition()
	r.putWorld(px, py, GlyphPlayer, style)
}

func (r *Renderer) drawMap(s Scene) {
	theme := ThemeFor(r.floor)
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			glyph := theme.Floor
			if s.Tile(x, y) == gamemap.Wall {
				glyph = theme.Wall
			}
			r.putWorld(x, y, glyph, style)
		}
	}
}

func (r *Renderer) putWorld(wx, wy int, glyph string, style tcell.Style) {
	sx, sy, onScreen := r.camera.WorldToScreen(wx, wy)
	if !onScreen {
		return
	}
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
