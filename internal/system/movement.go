package system

import (
	"github.com/zyedidia/generic/mapset"

	"bsp-roguelike/internal/dynmap"
	"bsp-roguelike/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // position updated
	MoveBlocked                    // wall or out-of-bounds
	MoveOccupied                   // a mob stands on the target
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	}
	return "occupied"
}

// TryMove relocates the player to (x, y). The target need not be adjacent;
// it only has to be floor with no mob on it.
func TryMove(gmap *gamemap.GameMap, dm *dynmap.Map, x, y int) MoveResult {
	if !gmap.IsFloor(x, y) {
		return MoveBlocked
	}
	if dm.MobAt(x, y) >= 0 {
		return MoveOccupied
	}
	dm.Player.X, dm.Player.Y = x, y
	return MoveOK
}

// MobMove is a step proposed by the AI, applied later by ResolveMobMoves.
type MobMove struct {
	MobID int
	X, Y  int
}

type point struct{ x, y int }

// ResolveMobMoves applies proposals in order. A step is refused when another
// mob stood on the destination before this pass, or when an earlier proposal
// in the same pass already claimed it. It returns the number of mobs moved.
func ResolveMobMoves(dm *dynmap.Map, moves []MobMove) int {
	taken := mapset.New[point]()
	for _, mob := range dm.Mobs {
		taken.Put(point{mob.X, mob.Y})
	}

	moved := 0
	for _, mv := range moves {
		idx := dm.MobIndex(mv.MobID)
		if idx < 0 {
			continue
		}
		dest := point{mv.X, mv.Y}
		if taken.Has(dest) {
			continue
		}
		taken.Put(dest)
		dm.Mobs[idx].X, dm.Mobs[idx].Y = mv.X, mv.Y
		moved++
	}
	return moved
}
