package entity

// Direction is one of the eight compass facings. The numeric values are part
// of the host contract: 0 is Up and the rest follow clockwise.
type Direction uint8

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

var offsets = [...][2]int{
	Up:        {0, -1},
	UpRight:   {1, -1},
	Right:     {1, 0},
	DownRight: {1, 1},
	Down:      {0, 1},
	DownLeft:  {-1, 1},
	Left:      {-1, 0},
	UpLeft:    {-1, -1},
}

var directionNames = [...]string{
	Up:        "up",
	UpRight:   "up right",
	Right:     "right",
	DownRight: "down right",
	Down:      "down",
	DownLeft:  "down left",
	Left:      "left",
	UpLeft:    "up left",
}

// Offset returns the one-tile step for d.
func (d Direction) Offset() (dx, dy int) {
	if int(d) >= len(offsets) {
		return 0, -1
	}
	o := offsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "up"
	}
	return directionNames[d]
}

// DirectionFromInt validates a host-supplied direction code.
func DirectionFromInt(v int) (Direction, bool) {
	if v < 0 || v > int(UpLeft) {
		return Up, false
	}
	return Direction(v), true
}

// Facing returns the direction pointing along (dx, dy). A zero delta on one
// axis yields a cardinal direction. ok is false when both deltas are zero.
func Facing(dx, dy int) (d Direction, ok bool) {
	switch {
	case dx > 0 && dy > 0:
		return DownRight, true
	case dx > 0 && dy < 0:
		return UpRight, true
	case dx > 0:
		return Right, true
	case dx < 0 && dy > 0:
		return DownLeft, true
	case dx < 0 && dy < 0:
		return UpLeft, true
	case dx < 0:
		return Left, true
	case dy > 0:
		return Down, true
	case dy < 0:
		return Up, true
	}
	return Up, false
}
