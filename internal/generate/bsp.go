package generate

import (
	"bsp-roguelike/internal/gamemap"
	"bsp-roguelike/internal/random"
)

const (
	// MinRoomSize is the smallest partition edge that may become a room.
	MinRoomSize = 16
	// MaxDepth is the deepest level at which a partition may still split.
	MaxDepth = 3
)

// Nil marks an absent child in the node arena.
const Nil = -1

// Node is one partition rectangle in the tree. Left and Right index into
// Tree.Nodes; a node whose Left is Nil is a leaf room.
type Node struct {
	X, Y, Width, Height int
	CenterX, CenterY    int
	ConnectTo           gamemap.Side
	Left, Right         int
	Depth               int
}

// IsLeaf reports whether the node was not subdivided.
func (n Node) IsLeaf() bool { return n.Left == Nil }

// Room converts the node rectangle into a room entry. The connection tag is
// internal to generation and is not published.
func (n Node) Room() gamemap.Room {
	return gamemap.Room{
		X: n.X, Y: n.Y, Width: n.Width, Height: n.Height,
		CenterX: n.CenterX, CenterY: n.CenterY,
		ConnectTo: gamemap.SideNone,
	}
}

// Tree is an arena of partition nodes. Children are always allocated after
// their parent.
type Tree struct {
	Nodes []Node
	Root  int
}

// BuildTree partitions the rectangle (x, y, w, h) into a binary tree.
// Root is Nil when the rectangle is too small to hold a single room.
func BuildTree(rng random.Source, x, y, w, h int) *Tree {
	t := &Tree{}
	t.Root = t.build(rng, x, y, w, h, gamemap.SideNone, 0)
	return t
}

func (t *Tree) build(rng random.Source, x, y, w, h int, connectTo gamemap.Side, depth int) int {
	if w < MinRoomSize || h < MinRoomSize {
		return Nil
	}
	if depth > MaxDepth {
		return Nil
	}

	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{
		X: x, Y: y, Width: w, Height: h,
		CenterX: x + w/2, CenterY: y + h/2,
		ConnectTo: connectTo,
		Left:      Nil,
		Right:     Nil,
		Depth:     depth,
	})
	mark := len(t.Nodes)

	var left, right int
	if rng.Intn(2) == 0 {
		splitX := clamp(x+1+rng.Intn(w-2), x+MinRoomSize, x+w-MinRoomSize)
		left = t.build(rng, x, y, splitX-x, h, gamemap.SideEast, depth+1)
		right = t.build(rng, splitX, y, x+w-splitX, h, gamemap.SideWest, depth+1)
	} else {
		splitY := clamp(y+1+rng.Intn(h-2), y+MinRoomSize, y+h-MinRoomSize)
		left = t.build(rng, x, y, w, splitY-y, gamemap.SideSouth, depth+1)
		right = t.build(rng, x, splitY, w, y+h-splitY, gamemap.SideNorth, depth+1)
	}

	// A node never keeps exactly one child: a lopsided split is dropped
	// together with everything allocated beneath it.
	if left == Nil || right == Nil {
		t.Nodes = t.Nodes[:mark]
		return idx
	}
	t.Nodes[idx].Left = left
	t.Nodes[idx].Right = right
	return idx
}

// clamp applies the upper bound first, then the lower bound, so a partition
// narrower than two rooms yields a split whose far side is too small and
// collapses.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// PropagateCenters runs a post-order pass that gives every internal node the
// center of whichever child lies nearer its own ConnectTo side.
func (t *Tree) PropagateCenters() {
	t.propagate(t.Root)
}

func (t *Tree) propagate(idx int) {
	if idx == Nil {
		return
	}
	n := &t.Nodes[idx]
	if n.IsLeaf() {
		return
	}
	t.propagate(n.Left)
	t.propagate(n.Right)
	t.adoptCenter(idx)
}

func (t *Tree) adoptCenter(idx int) {
	n := &t.Nodes[idx]
	l, r := t.Nodes[n.Left], t.Nodes[n.Right]
	var pickLeft bool
	switch n.ConnectTo {
	case gamemap.SideNorth:
		pickLeft = l.CenterY < r.CenterY
	case gamemap.SideSouth:
		pickLeft = l.CenterY > r.CenterY
	case gamemap.SideEast:
		pickLeft = l.CenterX > r.CenterX
	case gamemap.SideWest:
		pickLeft = l.CenterX < r.CenterX
	default:
		return
	}
	src := r
	if pickLeft {
		src = l
	}
	n.CenterX, n.CenterY = src.CenterX, src.CenterY
}

// Leaves returns the leaf nodes in depth-first, left-to-right order.
func (t *Tree) Leaves() []Node {
	var out []Node
	t.walk(t.Root, func(n Node) {
		if n.IsLeaf() {
			out = append(out, n)
		}
	})
	return out
}

// walk visits nodes in post-order.
func (t *Tree) walk(idx int, fn func(Node)) {
	if idx == Nil {
		return
	}
	n := t.Nodes[idx]
	t.walk(n.Left, fn)
	t.walk(n.Right, fn)
	fn(n)
}
