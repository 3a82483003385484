package entity

const (
	mobBaseHP  = 10
	mobBaseATK = 5
	mobBaseDEF = 2
	mobBaseExp = 1
)

// Mob is a hostile creature. ID is assigned at spawn and never reused
// within a level.
type Mob struct {
	ID       int
	X, Y     int
	Dir      Direction
	HP       int
	ATK, DEF int
	Exp      int
}

// NewMob returns a level 1 mob.
func NewMob(id, x, y int) Mob {
	return NewMobFromLevel(id, x, y, 1)
}

// NewMobFromLevel scales every base stat linearly with level.
// Levels below 1 are treated as 1.
func NewMobFromLevel(id, x, y, level int) Mob {
	level = max(level, 1)
	return Mob{
		ID:  id,
		X:   x,
		Y:   y,
		Dir: Up,
		HP:  mobBaseHP * level,
		ATK: mobBaseATK * level,
		DEF: mobBaseDEF * level,
		Exp: mobBaseExp * level,
	}
}

// Attack returns the tile the mob is facing and its damage.
func (m *Mob) Attack() MobAttackInfo {
	dx, dy := m.Dir.Offset()
	return MobAttackInfo{
		AttackInfo: AttackInfo{X: m.X + dx, Y: m.Y + dy, Damage: m.ATK},
		MobID:      m.ID,
	}
}
