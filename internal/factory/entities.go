package factory

import (
	"bsp-roguelike/internal/dynmap"
	"bsp-roguelike/internal/entity"
	"bsp-roguelike/internal/generate"
)

// NewPotion creates the health potion every spawn and drop produces.
func NewPotion(heal int) entity.Item {
	return entity.HealthPotion(heal)
}

// PlacePlayer moves the player to a level's spawn tile. Stats, inventory
// and facing carry over.
func PlacePlayer(p *entity.Player, x, y int) {
	p.X, p.Y = x, y
}

// Spawn creates the floor items and mobs listed in pop. Items are created
// first so their ids start at 0, then mobs scaled to level.
func Spawn(dm *dynmap.Map, pop generate.PopulateResult, level, potionHeal int) (items, mobs int) {
	for _, sp := range pop.Items {
		dm.DropItem(sp.X, sp.Y, NewPotion(potionHeal))
	}
	for _, sp := range pop.Mobs {
		dm.SpawnMob(sp.X, sp.Y, level)
	}
	return len(pop.Items), len(pop.Mobs)
}
