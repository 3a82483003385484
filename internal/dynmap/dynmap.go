// Package dynmap holds the mutable per-level entities: the player, live mobs,
// items on the floor and the goal tile.
package dynmap

import (
	"slices"

	"bsp-roguelike/internal/entity"
)

// Map is an index-based arena. Mobs and items are plain values addressed by
// slice index; their IDs are minted from per-level counters and never reused.
type Map struct {
	Player   *entity.Player
	Mobs     []entity.Mob
	Items    []entity.DroppedItem
	Defeated []int
	GoalX    int
	GoalY    int

	nextMobID  int
	nextItemID int
}

// New creates an empty map around a fresh player.
func New() *Map {
	return &Map{Player: entity.NewPlayer()}
}

// Clear drops every per-level list and restarts the id counters. The player
// carries over between levels.
func (m *Map) Clear() {
	m.Mobs = nil
	m.Items = nil
	m.Defeated = nil
	m.GoalX, m.GoalY = 0, 0
	m.nextMobID = 0
	m.nextItemID = 0
}

// SpawnMob adds a mob scaled to level and returns its id.
func (m *Map) SpawnMob(x, y, level int) int {
	id := m.nextMobID
	m.nextMobID++
	m.Mobs = append(m.Mobs, entity.NewMobFromLevel(id, x, y, level))
	return id
}

// DropItem places it on the floor and returns its id.
func (m *Map) DropItem(x, y int, it entity.Item) int {
	id := m.nextItemID
	m.nextItemID++
	m.Items = append(m.Items, entity.DroppedItem{ID: id, X: x, Y: y, Item: it})
	return id
}

// MobIndex returns the slice index of the mob with id, or -1.
func (m *Map) MobIndex(id int) int {
	return slices.IndexFunc(m.Mobs, func(mob entity.Mob) bool { return mob.ID == id })
}

// MobAt returns the index of the first mob standing on (x, y), or -1.
func (m *Map) MobAt(x, y int) int {
	return slices.IndexFunc(m.Mobs, func(mob entity.Mob) bool { return mob.X == x && mob.Y == y })
}

// ItemAt returns the index of the first item lying on (x, y), or -1.
func (m *Map) ItemAt(x, y int) int {
	return slices.IndexFunc(m.Items, func(it entity.DroppedItem) bool { return it.X == x && it.Y == y })
}

// RemoveMob deletes the mob at idx, keeping the order of the rest.
func (m *Map) RemoveMob(idx int) entity.Mob {
	mob := m.Mobs[idx]
	m.Mobs = slices.Delete(m.Mobs, idx, idx+1)
	return mob
}

// RemoveItem deletes the item at idx, keeping the order of the rest.
func (m *Map) RemoveItem(idx int) entity.DroppedItem {
	it := m.Items[idx]
	m.Items = slices.Delete(m.Items, idx, idx+1)
	return it
}
