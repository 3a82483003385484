package generate

import "bsp-roguelike/internal/gamemap"

// corridorEnd records where a child's straight corridor stops. Only the
// coordinate along the joining segment is kept.
type corridorEnd struct {
	x, y       int
	hasX, hasY bool
}

// connectSiblings digs one straight corridor out of each child toward the
// other, then joins the two ends with a perpendicular segment.
func connectSiblings(gmap *gamemap.GameMap, left, right Node) {
	l := digToward(gmap, left, right)
	r := digToward(gmap, right, left)

	if l.hasX && r.hasX {
		carveH(gmap, l.x, r.x, max(left.Y, right.Y))
	}
	if l.hasY && r.hasY {
		carveV(gmap, l.y, r.y, max(left.X, right.X))
	}
}

// digToward carves from the child's center to the sibling's outer edge along
// the child's ConnectTo axis. Ranges are half-open; an empty range digs nothing.
func digToward(gmap *gamemap.GameMap, child, sibling Node) corridorEnd {
	var end corridorEnd
	switch child.ConnectTo {
	case gamemap.SideNorth:
		end.x, end.hasX = child.CenterX, true
		carveSpanV(gmap, sibling.Y+sibling.Height, child.CenterY, child.CenterX)
	case gamemap.SideSouth:
		end.x, end.hasX = child.CenterX, true
		carveSpanV(gmap, child.CenterY, sibling.Y, child.CenterX)
	case gamemap.SideEast:
		end.y, end.hasY = child.CenterY, true
		carveSpanH(gmap, child.CenterX, sibling.X, child.CenterY)
	case gamemap.SideWest:
		end.y, end.hasY = child.CenterY, true
		carveSpanH(gmap, sibling.X+sibling.Width, child.CenterX, child.CenterY)
	}
	return end
}

func carveSpanH(gmap *gamemap.GameMap, from, to, y int) {
	if from < to {
		carveH(gmap, from, to-1, y)
	}
}

func carveSpanV(gmap *gamemap.GameMap, from, to, x int) {
	if from < to {
		carveV(gmap, from, to-1, x)
	}
}

// carveH digs x1..x2 inclusive on row y, in either order.
func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.Floor)
		}
	}
}

// carveV digs y1..y2 inclusive on column x, in either order.
func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.Floor)
		}
	}
}
