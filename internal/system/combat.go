package system

import (
	"bsp-roguelike/internal/dynmap"
	"bsp-roguelike/internal/entity"
	"bsp-roguelike/internal/random"
)

// NoDrop marks an AttackResult whose kill left nothing behind.
const NoDrop = -1

// AttackResult holds the outcome of one player attack.
type AttackResult struct {
	Hit    bool // a mob stood on the target tile
	MobID  int
	Damage int
	Killed bool
	DropID int // id of the potion left behind, or NoDrop
}

// DropRule decides what a defeated mob leaves behind.
type DropRule struct {
	Probability float64
	PotionHeal  int
}

// ApplyPlayerAttack resolves a buffered player hit. A mob reduced to 0 HP
// may drop a potion on its tile, hands its experience to the player and is
// removed; its id is appended to dm.Defeated.
func ApplyPlayerAttack(dm *dynmap.Map, atk entity.AttackInfo, drop DropRule, rng random.Source) AttackResult {
	res := AttackResult{DropID: NoDrop}
	idx := dm.MobAt(atk.X, atk.Y)
	if idx < 0 {
		return res
	}
	mob := &dm.Mobs[idx]
	mob.HP -= atk.Damage
	res.Hit = true
	res.MobID = mob.ID
	res.Damage = atk.Damage
	if mob.HP > 0 {
		return res
	}

	res.Killed = true
	if rng.Float64() < drop.Probability {
		res.DropID = dm.DropItem(mob.X, mob.Y, entity.HealthPotion(drop.PotionHeal))
	}
	dm.Player.Exp += mob.Exp
	dm.RemoveMob(idx)
	dm.Defeated = append(dm.Defeated, res.MobID)
	return res
}

// HitResult records one mob attack that landed on the player.
type HitResult struct {
	MobID  int
	Damage int
}

// ApplyMobAttacks subtracts every buffered mob hit aimed at the player's
// current tile. Hits aimed elsewhere are discarded.
func ApplyMobAttacks(dm *dynmap.Map, attacks []entity.MobAttackInfo) []HitResult {
	var hits []HitResult
	p := dm.Player
	for _, a := range attacks {
		if a.X != p.X || a.Y != p.Y {
			continue
		}
		p.HP -= a.Damage
		hits = append(hits, HitResult{MobID: a.MobID, Damage: a.Damage})
	}
	return hits
}
