package system

import (
	"bsp-roguelike/internal/dynmap"
	"bsp-roguelike/internal/gamemap"
)

// openMap creates a w×h map that is entirely passable floor, with a single
// room covering it.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for x := range w {
		for y := range h {
			gmap.Set(x, y, gamemap.Floor)
		}
	}
	gmap.Rooms = []gamemap.Room{gamemap.NewRoom(0, 0, w, h)}
	return gmap
}

// newWorld places the player at (px, py) on a 20×20 open map.
func newWorld(px, py int) (*gamemap.GameMap, *dynmap.Map) {
	dm := dynmap.New()
	dm.Player.X, dm.Player.Y = px, py
	return openMap(20, 20), dm
}
