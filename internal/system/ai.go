package system

import (
	"bsp-roguelike/internal/dynmap"
	"bsp-roguelike/internal/entity"
	"bsp-roguelike/internal/gamemap"
)

// DecideMobActions runs one turn of AI. Only mobs sharing a room with the
// player act. An adjacent mob turns toward the player and attacks; any other
// mob turns along its greedy step and proposes it when the step is floor.
// Facing is updated in place; attacks and moves are returned for the caller
// to resolve.
func DecideMobActions(gmap *gamemap.GameMap, dm *dynmap.Map) ([]entity.MobAttackInfo, []MobMove) {
	var attacks []entity.MobAttackInfo
	var moves []MobMove

	px, py := dm.Player.X, dm.Player.Y
	for i := range dm.Mobs {
		mob := &dm.Mobs[i]
		if !gmap.SameRoom(px, py, mob.X, mob.Y) {
			continue
		}

		dx, dy := px-mob.X, py-mob.Y
		if abs(dx) <= 1 && abs(dy) <= 1 {
			if d, ok := entity.Facing(dx, dy); ok {
				mob.Dir = d
			}
			attacks = append(attacks, mob.Attack())
			continue
		}

		// Ties go vertical.
		if abs(dx) > abs(dy) {
			mob.Dir, _ = entity.Facing(sign(dx), 0)
		} else {
			mob.Dir, _ = entity.Facing(0, sign(dy))
		}
		ox, oy := mob.Dir.Offset()
		nx, ny := mob.X+ox, mob.Y+oy
		if gmap.IsFloor(nx, ny) {
			moves = append(moves, MobMove{MobID: mob.ID, X: nx, Y: ny})
		}
	}
	return attacks, moves
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
