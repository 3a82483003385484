package engine

import (
	"fmt"
	"slices"

	"bsp-roguelike/internal/entity"
	"bsp-roguelike/internal/gamemap"
)

// MobView is the host-facing view of a live mob.
type MobView struct {
	ID        int
	X, Y      int
	Direction int
	HP        int
}

// ItemView is the host-facing view of an item on the floor.
type ItemView struct {
	ID    int
	X, Y  int
	Kind  entity.Kind
	Label string
}

// HasLevel reports whether a level has been generated.
func (e *Engine) HasLevel() bool { return e.gmap != nil }

// Level returns the current floor number, starting at 1.
func (e *Engine) Level() int { return e.level }

// Turns returns how many turns have been resolved.
func (e *Engine) Turns() int { return e.turns }

func (e *Engine) PlayerPosition() (x, y int) {
	return e.dm.Player.X, e.dm.Player.Y
}

// PlayerDirection returns the facing as its 0..7 code.
func (e *Engine) PlayerDirection() int { return int(e.dm.Player.Dir) }

func (e *Engine) PlayerHP() (hp, maxHP int) {
	return e.dm.Player.HP, e.dm.Player.MaxHP
}

func (e *Engine) PlayerLevel() int { return e.dm.Player.Level }

// ActiveSlot returns the last selected inventory slot.
func (e *Engine) ActiveSlot() int { return e.dm.Player.Active }

// PlayerItems lists every inventory slot, "-" for empty ones.
func (e *Engine) PlayerItems() []string {
	out := make([]string, len(e.dm.Player.Items))
	for i, it := range e.dm.Player.Items {
		out[i] = it.String()
	}
	return out
}

// PlayerStatus renders the status panel text.
func (e *Engine) PlayerStatus() string {
	p := e.dm.Player
	return fmt.Sprintf("Level: %d\nHP: %d /%d\nAttack: %d\nDefense: %d\nexp: %d",
		p.Level, p.HP, p.MaxHP, p.ATK, p.DEF, p.Exp)
}

// Mobs lists the live mobs.
func (e *Engine) Mobs() []MobView {
	out := make([]MobView, 0, len(e.dm.Mobs))
	for _, m := range e.dm.Mobs {
		out = append(out, MobView{ID: m.ID, X: m.X, Y: m.Y, Direction: int(m.Dir), HP: m.HP})
	}
	return out
}

// DroppedItems lists the items lying on the floor.
func (e *Engine) DroppedItems() []ItemView {
	out := make([]ItemView, 0, len(e.dm.Items))
	for _, it := range e.dm.Items {
		out = append(out, ItemView{ID: it.ID, X: it.X, Y: it.Y, Kind: it.Item.Kind, Label: it.Item.String()})
	}
	return out
}

// AddedItemIDs returns the items dropped this turn. The list restarts with
// each intent, or with AdvanceTurn when no intent preceded it.
func (e *Engine) AddedItemIDs() []int { return slices.Clone(e.addedItems) }

// RemovedItemIDs returns the items picked up this turn, with the same
// lifetime as AddedItemIDs.
func (e *Engine) RemovedItemIDs() []int { return slices.Clone(e.removedItems) }

// DefeatedMobIDs returns the mobs killed this turn.
func (e *Engine) DefeatedMobIDs() []int { return slices.Clone(e.dm.Defeated) }

func (e *Engine) GoalPosition() (x, y int) {
	return e.dm.GoalX, e.dm.GoalY
}

// Grid returns the tiles in row-major order (index = y*width + x), or nil
// before the first level.
func (e *Engine) Grid() []int {
	if e.gmap == nil {
		return nil
	}
	return e.gmap.Flatten()
}

// Tile returns the tile code at (x, y); off-grid reads as wall.
func (e *Engine) Tile(x, y int) int {
	if e.gmap == nil {
		return gamemap.Wall
	}
	return e.gmap.At(x, y)
}

func (e *Engine) Width() int {
	if e.gmap == nil {
		return 0
	}
	return e.gmap.Width
}

func (e *Engine) Height() int {
	if e.gmap == nil {
		return 0
	}
	return e.gmap.Height
}

// Rooms returns a copy of the room list.
func (e *Engine) Rooms() []gamemap.Room {
	if e.gmap == nil {
		return nil
	}
	return slices.Clone(e.gmap.Rooms)
}

// GameOver reports whether the player has run out of HP. The engine keeps
// accepting commands either way.
func (e *Engine) GameOver() bool { return e.dm.Player.Dead() }

// Messages returns the message log, oldest first.
func (e *Engine) Messages() []string { return slices.Clone(e.messages) }

// ClearMessages empties the message log.
func (e *Engine) ClearMessages() { e.messages = nil }
