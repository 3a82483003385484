package entity

// InventorySize is the fixed number of player item slots.
const InventorySize = 8

// AttackInfo is a pending hit: the target tile and the damage it deals.
type AttackInfo struct {
	X, Y   int
	Damage int
}

// MobAttackInfo is a pending hit tagged with the attacking mob.
type MobAttackInfo struct {
	AttackInfo
	MobID int
}

// Player holds the player's stats and inventory. It knows nothing about the
// map; the engine resolves everything it returns.
type Player struct {
	X, Y          int
	Dir           Direction
	HP, MaxHP     int
	ATK, DEF      int
	Level         int
	Exp           int
	Items         [InventorySize]Item
	Active        int
	HealOnLevelUp bool
}

// NewPlayer returns a level 1 player at the origin facing up.
func NewPlayer() *Player {
	return &Player{
		Dir:   Up,
		HP:    100,
		MaxHP: 100,
		ATK:   10,
		DEF:   5,
		Level: 1,
	}
}

// Attack returns the tile in front of the player and the damage dealt there.
// A sword in the active slot adds its bonus.
func (p *Player) Attack() AttackInfo {
	dx, dy := p.Dir.Offset()
	dmg := p.ATK
	if p.Active >= 0 && p.Active < len(p.Items) {
		dmg += p.Items[p.Active].AttackBonus()
	}
	return AttackInfo{X: p.X + dx, Y: p.Y + dy, Damage: dmg}
}

// Select makes slot i active. Out-of-range indexes are ignored.
func (p *Player) Select(i int) bool {
	if i < 0 || i >= len(p.Items) {
		return false
	}
	p.Active = i
	return true
}

// UseItem applies the active slot. A consumed item leaves the slot empty.
func (p *Player) UseItem() SideEffect {
	if p.Active < 0 || p.Active >= len(p.Items) {
		return SideEffectFault
	}
	it := p.Items[p.Active]
	b := it.behavior()
	if b.use == nil {
		return SideEffectFault
	}
	b.use(p, it.Amount)
	p.Items[p.Active] = Null
	return SideEffectNone
}

// AddItem stores it in the first empty slot. It fails when every slot is
// taken.
func (p *Player) AddItem(it Item) bool {
	for i := range p.Items {
		if p.Items[i].IsNull() {
			p.Items[i] = it
			return true
		}
	}
	return false
}

// CheckLevelUp raises the level once when enough experience is banked.
func (p *Player) CheckLevelUp() bool {
	if p.Exp < p.Level*3 {
		return false
	}
	p.Exp = 0
	p.Level++
	p.MaxHP += 10
	p.ATK += 2
	p.DEF++
	if p.HealOnLevelUp {
		p.HP = p.MaxHP
	}
	return true
}

// Dead reports whether the player has run out of HP.
func (p *Player) Dead() bool { return p.HP <= 0 }
