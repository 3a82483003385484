package engine

import (
	"bsp-roguelike/internal/entity"
	"bsp-roguelike/internal/msg"
	"bsp-roguelike/internal/system"
)

// SetFacing turns the player without spending a turn. Codes outside 0..7
// are rejected.
func (e *Engine) SetFacing(dir int) bool {
	d, ok := entity.DirectionFromInt(dir)
	if !ok {
		return false
	}
	e.dm.Player.Dir = d
	return true
}

// Move walks the player to (x, y) and picks up whatever lies there.
func (e *Engine) Move(x, y int) bool {
	e.clearItemDeltas()
	if e.gmap == nil {
		return false
	}
	res := system.TryMove(e.gmap, e.dm, x, y)
	if res != system.MoveOK {
		e.logger.Debug("player move refused", "x", x, "y", y, "result", res)
		return false
	}
	e.pickupHere()
	return true
}

// Attack buffers a hit on the tile the player faces. Damage is applied by
// AdvanceTurn.
func (e *Engine) Attack() {
	e.clearItemDeltas()
	atk := e.dm.Player.Attack()
	e.playerAttack = &atk
	e.logger.Debug("player attack", "x", atk.X, "y", atk.Y, "damage", atk.Damage)
}

// Pickup takes the item under the player, if any.
func (e *Engine) Pickup() {
	e.clearItemDeltas()
	e.pickupHere()
}

func (e *Engine) pickupHere() {
	p := e.dm.Player
	idx := e.dm.ItemAt(p.X, p.Y)
	if idx < 0 {
		return
	}
	if !p.AddItem(e.dm.Items[idx].Item) {
		e.addMessage(msg.InventoryFull)
		return
	}
	it := e.dm.RemoveItem(idx)
	e.removedItems = append(e.removedItems, it.ID)
	e.addMessage(msg.ItemPickedUp)
}

// UseItem selects slot and uses it. It returns false for a slot index out
// of range; an empty or unusable slot still spends the turn.
func (e *Engine) UseItem(slot int) bool {
	e.clearItemDeltas()
	p := e.dm.Player
	if !p.Select(slot) {
		return false
	}
	effect := p.UseItem()
	e.playerEffects = append(e.playerEffects, effect)
	if effect == entity.SideEffectNone {
		e.addMessage(msg.HPRecovered)
	} else {
		e.addMessage(msg.NothingToUse)
	}
	return true
}

// CanUseItem reports whether slot holds something with a use effect.
func (e *Engine) CanUseItem(slot int) bool {
	items := e.dm.Player.Items
	if slot < 0 || slot >= len(items) {
		return false
	}
	return items[slot].Usable()
}
