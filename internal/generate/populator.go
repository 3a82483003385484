package generate

import (
	"github.com/zyedidia/generic/mapset"

	"bsp-roguelike/internal/gamemap"
	"bsp-roguelike/internal/random"
)

// SpawnPoint holds a world coordinate where an entity should appear.
type SpawnPoint struct {
	X, Y int
}

// Config controls how many entities Populate tries to place.
type Config struct {
	ItemCount int
	MobCount  int
	Rand      random.Source
}

// PopulateResult is returned by Populate with entity spawn data.
type PopulateResult struct {
	Items []SpawnPoint
	Mobs  []SpawnPoint
}

// Populate spreads items and then mobs across the rooms. Each room gets
// count/rooms+1 draws; a draw landing on a wall is discarded, so fewer
// entities than requested may be placed. Mobs additionally never share a
// tile with each other or with the player.
func Populate(gmap *gamemap.GameMap, cfg *Config, player SpawnPoint) PopulateResult {
	var result PopulateResult
	if len(gmap.Rooms) == 0 {
		return result
	}

	result.Items = scatter(gmap, cfg.Rand, cfg.ItemCount, nil)

	occupied := mapset.New[SpawnPoint]()
	occupied.Put(player)
	result.Mobs = scatter(gmap, cfg.Rand, cfg.MobCount, &occupied)
	return result
}

func scatter(gmap *gamemap.GameMap, rng random.Source, count int, occupied *mapset.Set[SpawnPoint]) []SpawnPoint {
	if count <= 0 {
		return nil
	}
	attempts := count/len(gmap.Rooms) + 1
	var out []SpawnPoint
	for _, room := range gmap.Rooms {
		for range attempts {
			if len(out) >= count {
				return out
			}
			p := randomInRoom(room, rng)
			if !gmap.IsFloor(p.X, p.Y) {
				continue
			}
			if occupied != nil {
				if occupied.Has(p) {
					continue
				}
				occupied.Put(p)
			}
			out = append(out, p)
		}
	}
	return out
}

// randomInRoom draws a uniform point inside the room rectangle. The rectangle
// includes the carved border, which is why callers check for walls.
func randomInRoom(room gamemap.Room, rng random.Source) SpawnPoint {
	x := room.X + int(rng.Float64()*float64(room.Width))
	y := room.Y + int(rng.Float64()*float64(room.Height))
	return SpawnPoint{X: x, Y: y}
}
