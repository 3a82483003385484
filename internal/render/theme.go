package render

import "bsp-roguelike/internal/entity"

// FloorTiles holds the emoji glyphs used to draw one floor's terrain.
type FloorTiles struct {
	Wall  string
	Floor string
}

// TileThemes cycles with the floor number.
var TileThemes = []FloorTiles{
	{Wall: "🧱", Floor: "⬛"},
	{Wall: "🧊", Floor: "⬜"},
	{Wall: "🍄", Floor: "🟫"},
	{Wall: "🪨", Floor: "🟪"},
	{Wall: "🌋", Floor: "🟥"},
}

// ThemeFor returns the tile set for a 1-indexed floor number.
func ThemeFor(floor int) FloorTiles {
	if floor < 1 {
		floor = 1
	}
	return TileThemes[(floor-1)%len(TileThemes)]
}

const (
	GlyphPlayer = "🧙"
	GlyphMob    = "👾"
	GlyphGoal   = "🔽"
)

var itemGlyphs = map[entity.Kind]string{
	entity.KindHealthPotion: "🧪",
	entity.KindSword:        "🗡️",
	entity.KindShield:       "🛡️",
}

// ItemGlyph returns the map glyph for an item kind.
func ItemGlyph(k entity.Kind) string {
	if g, ok := itemGlyphs[k]; ok {
		return g
	}
	return "❔"
}

// facingArrows is indexed by direction code.
var facingArrows = [...]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// FacingArrow returns an arrow for a direction code, or "?" when the code is
// out of range.
func FacingArrow(dir int) string {
	if dir < 0 || dir >= len(facingArrows) {
		return "?"
	}
	return facingArrows[dir]
}
