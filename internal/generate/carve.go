package generate

import (
	"fmt"
	"strings"

	"bsp-roguelike/internal/gamemap"
	"bsp-roguelike/internal/random"
)

// Mode selects the layout algorithm for a level.
type Mode int

const (
	ModeBSP Mode = iota
	ModeSimple
)

func (m Mode) String() string {
	if m == ModeSimple {
		return "simple"
	}
	return "bsp"
}

// ParseMode maps a config value onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bsp":
		return ModeBSP, nil
	case "simple":
		return ModeSimple, nil
	}
	return ModeBSP, fmt.Errorf("unknown map mode %q", s)
}

// Build generates a complete static map using the requested mode.
func Build(mode Mode, rng random.Source, width, height int) *gamemap.GameMap {
	if mode == ModeSimple {
		return gamemap.NewSimple(width, height)
	}
	return Dungeon(rng, width, height)
}

// Dungeon partitions the whole grid and carves it.
func Dungeon(rng random.Source, width, height int) *gamemap.GameMap {
	tree := BuildTree(rng, 0, 0, width, height)
	return Carve(rng, tree, width, height)
}

// Carve renders the tree into a wall/floor grid. Leaf rooms are carved in
// post-order first; corridors are dug once every internal node has adopted
// its child's center.
func Carve(rng random.Source, tree *Tree, width, height int) *gamemap.GameMap {
	gmap := gamemap.New(width, height)
	if tree.Root == Nil {
		return gmap
	}
	for _, leaf := range tree.Leaves() {
		carveRoom(gmap, rng, leaf)
	}
	tree.PropagateCenters()
	connectRooms(gmap, tree, tree.Root)
	return gmap
}

func carveRoom(gmap *gamemap.GameMap, rng random.Source, n Node) {
	border := 2 + rng.Intn(3)
	for x := n.X + border; x < n.X+n.Width-border; x++ {
		for y := n.Y + border; y < n.Y+n.Height-border; y++ {
			gmap.Set(x, y, gamemap.Floor)
		}
	}
	gmap.Rooms = append(gmap.Rooms, n.Room())
}

func connectRooms(gmap *gamemap.GameMap, tree *Tree, idx int) {
	n := tree.Nodes[idx]
	if n.IsLeaf() {
		return
	}
	connectRooms(gmap, tree, n.Left)
	connectRooms(gmap, tree, n.Right)
	connectSiblings(gmap, tree.Nodes[n.Left], tree.Nodes[n.Right])
}
