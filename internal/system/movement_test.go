package system

import (
	"testing"

	"bsp-roguelike/internal/gamemap"
)

func TestTryMoveSucceeds(t *testing.T) {
	gmap, dm := newWorld(3, 3)
	if got := TryMove(gmap, dm, 4, 3); got != MoveOK {
		t.Fatalf("expected MoveOK, got %v", got)
	}
	if dm.Player.X != 4 || dm.Player.Y != 3 {
		t.Fatalf("expected position (4,3), got (%d,%d)", dm.Player.X, dm.Player.Y)
	}
}

func TestTryMoveBlockedByWall(t *testing.T) {
	gmap, dm := newWorld(3, 3)
	gmap.Set(3, 2, gamemap.Wall)
	if got := TryMove(gmap, dm, 3, 2); got != MoveBlocked {
		t.Fatalf("expected MoveBlocked, got %v", got)
	}
	if got := TryMove(gmap, dm, -1, 3); got != MoveBlocked {
		t.Fatalf("off-grid: expected MoveBlocked, got %v", got)
	}
	if dm.Player.X != 3 || dm.Player.Y != 3 {
		t.Fatalf("position should be unchanged, got (%d,%d)", dm.Player.X, dm.Player.Y)
	}
}

func TestTryMoveBlockedByMob(t *testing.T) {
	gmap, dm := newWorld(3, 3)
	dm.SpawnMob(4, 3, 1)
	if got := TryMove(gmap, dm, 4, 3); got != MoveOccupied {
		t.Fatalf("expected MoveOccupied, got %v", got)
	}
	if dm.Player.X != 3 {
		t.Fatalf("position should be unchanged, got (%d,%d)", dm.Player.X, dm.Player.Y)
	}
}

func TestResolveMobMovesFirstProposalWins(t *testing.T) {
	_, dm := newWorld(10, 10)
	a := dm.SpawnMob(1, 1, 1)
	b := dm.SpawnMob(3, 1, 1)
	moved := ResolveMobMoves(dm, []MobMove{
		{MobID: b, X: 2, Y: 1},
		{MobID: a, X: 2, Y: 1},
	})
	if moved != 1 {
		t.Fatalf("moved = %d; want 1", moved)
	}
	if m := dm.Mobs[dm.MobIndex(b)]; m.X != 2 {
		t.Errorf("first proposer should move, at (%d,%d)", m.X, m.Y)
	}
	if m := dm.Mobs[dm.MobIndex(a)]; m.X != 1 {
		t.Errorf("second proposer should stay, at (%d,%d)", m.X, m.Y)
	}
}

func TestResolveMobMovesChecksPreMovePositions(t *testing.T) {
	_, dm := newWorld(10, 10)
	front := dm.SpawnMob(2, 1, 1)
	back := dm.SpawnMob(1, 1, 1)
	// The front mob steps away, but its old tile still counts as taken.
	moved := ResolveMobMoves(dm, []MobMove{
		{MobID: front, X: 3, Y: 1},
		{MobID: back, X: 2, Y: 1},
	})
	if moved != 1 {
		t.Fatalf("moved = %d; want 1", moved)
	}
	if m := dm.Mobs[dm.MobIndex(back)]; m.X != 1 {
		t.Errorf("follower moved into a vacated tile: (%d,%d)", m.X, m.Y)
	}
}

func TestResolveMobMovesUnknownMob(t *testing.T) {
	_, dm := newWorld(10, 10)
	if moved := ResolveMobMoves(dm, []MobMove{{MobID: 42, X: 1, Y: 1}}); moved != 0 {
		t.Errorf("moved = %d; want 0", moved)
	}
}
