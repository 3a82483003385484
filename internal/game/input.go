package game

import (
	"github.com/gdamore/tcell/v2"

	"bsp-roguelike/internal/entity"
)

// Action represents a player-requested game action.
type Action uint8

// Move and face actions are laid out in direction-code order so the code is
// the offset from the first action of each block.
const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveUpRight
	ActionMoveRight
	ActionMoveDownRight
	ActionMoveDown
	ActionMoveDownLeft
	ActionMoveLeft
	ActionMoveUpLeft
	ActionFaceUp
	ActionFaceUpRight
	ActionFaceRight
	ActionFaceDownRight
	ActionFaceDown
	ActionFaceDownLeft
	ActionFaceLeft
	ActionFaceUpLeft
	ActionUse1
	ActionUse2
	ActionUse3
	ActionUse4
	ActionUse5
	ActionUse6
	ActionUse7
	ActionUse8
	ActionAttack
	ActionPickup
	ActionWait
	ActionDescend
	ActionQuit
)

var runeActions = map[rune]Action{
	'k': ActionMoveUp,
	'u': ActionMoveUpRight,
	'l': ActionMoveRight,
	'n': ActionMoveDownRight,
	'j': ActionMoveDown,
	'b': ActionMoveDownLeft,
	'h': ActionMoveLeft,
	'y': ActionMoveUpLeft,
	'K': ActionFaceUp,
	'U': ActionFaceUpRight,
	'L': ActionFaceRight,
	'N': ActionFaceDownRight,
	'J': ActionFaceDown,
	'B': ActionFaceDownLeft,
	'H': ActionFaceLeft,
	'Y': ActionFaceUpLeft,
	'a': ActionAttack,
	',': ActionPickup,
	'.': ActionWait,
	'>': ActionDescend,
	'q': ActionQuit,
	'Q': ActionQuit,
}

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	r := ev.Rune()
	if r >= '1' && r <= '8' {
		return ActionUse1 + Action(r-'1')
	}
	return runeActions[r]
}

// moveDirection returns the direction of a move action.
func moveDirection(a Action) (entity.Direction, bool) {
	if a < ActionMoveUp || a > ActionMoveUpLeft {
		return 0, false
	}
	return entity.Direction(a - ActionMoveUp), true
}

// faceDirection returns the direction of a turn-only action.
func faceDirection(a Action) (entity.Direction, bool) {
	if a < ActionFaceUp || a > ActionFaceUpLeft {
		return 0, false
	}
	return entity.Direction(a - ActionFaceUp), true
}

// useSlot returns the inventory slot of a use action.
func useSlot(a Action) (int, bool) {
	if a < ActionUse1 || a > ActionUse8 {
		return 0, false
	}
	return int(a - ActionUse1), true
}
