package entity

import "fmt"

// Kind tags the item variant.
type Kind uint8

const (
	KindNull Kind = iota
	KindHealthPotion
	KindSword
	KindShield
)

// Item is a closed variant. Amount is the heal for a potion, the attack
// bonus for a sword and the defense bonus for a shield.
type Item struct {
	Kind   Kind
	Amount int
}

// Null is the empty inventory slot.
var Null = Item{}

func HealthPotion(heal int) Item { return Item{Kind: KindHealthPotion, Amount: heal} }

func Sword(bonus int) Item { return Item{Kind: KindSword, Amount: bonus} }

func Shield(bonus int) Item { return Item{Kind: KindShield, Amount: bonus} }

// SideEffect reports what using an item did beyond its user.
type SideEffect uint8

const (
	// SideEffectNone means the item worked and affected only its user.
	SideEffectNone SideEffect = iota
	// SideEffectFault means nothing usable was in the slot.
	SideEffectFault
)

func (s SideEffect) String() string {
	if s == SideEffectFault {
		return "fault"
	}
	return "none"
}

// behavior is the per-kind effect table. Every place that needs to know what
// an item does reads it from here.
type behavior struct {
	label   string
	use     func(p *Player, amount int)
	attack  bool
	defense bool
}

var behaviors = [...]behavior{
	KindNull:         {},
	KindHealthPotion: {label: "Health Potion", use: heal},
	KindSword:        {label: "Sword", attack: true},
	KindShield:       {label: "Shield", defense: true},
}

func heal(p *Player, amount int) {
	p.HP = min(p.MaxHP, p.HP+amount)
}

func (i Item) behavior() behavior {
	if int(i.Kind) >= len(behaviors) {
		return behavior{}
	}
	return behaviors[i.Kind]
}

// IsNull reports whether the slot is empty.
func (i Item) IsNull() bool { return i.Kind == KindNull }

// Usable reports whether the item has a use effect.
func (i Item) Usable() bool { return i.behavior().use != nil }

// AttackBonus is the damage the item adds while held in the active slot.
func (i Item) AttackBonus() int {
	if i.behavior().attack {
		return i.Amount
	}
	return 0
}

// DefenseBonus is the defense the item grants.
func (i Item) DefenseBonus() int {
	if i.behavior().defense {
		return i.Amount
	}
	return 0
}

// String renders the item the way the host lists inventory slots.
func (i Item) String() string {
	b := i.behavior()
	if b.label == "" {
		return "-"
	}
	return fmt.Sprintf("%s: %d", b.label, i.Amount)
}

// DroppedItem is an item lying on the map. ID is unique within a level.
type DroppedItem struct {
	ID   int
	X, Y int
	Item Item
}
