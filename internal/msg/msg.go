// Package msg holds the player-facing message catalog. Keys are the English
// format strings; other locales register translations under the same key.
package msg

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ItemPickedUp  = "Picked up an item."
	InventoryFull = "Your inventory is full."
	DamageDealt   = "Dealt %[2]d damage to ID%[1]d."
	MobDefeated   = "Defeated ID%[1]d."
	AttackMissed  = "The attack missed."
	LevelUp       = "Level up!"
	HPRecovered   = "HP recovered."
	NothingToUse  = "Nothing happened."
	DamageTaken   = "Took %[2]d damage from ID%[1]d."
	GameOver      = "You collapsed."
	Descended     = "Descended to floor %[1]d."
)

var japanese = map[string]string{
	ItemPickedUp:  "アイテムを拾った。",
	InventoryFull: "持ち物がいっぱいです。",
	DamageDealt:   "ID%[1]dに%[2]dダメージを与えた。",
	MobDefeated:   "ID%[1]dを倒した。",
	AttackMissed:  "攻撃が外れた。",
	LevelUp:       "レベルアップした。",
	HPRecovered:   "HPが回復した。",
	NothingToUse:  "何も起こらなかった。",
	DamageTaken:   "プレイヤーはID%[1]dから%[2]dダメージを受けた。",
	GameOver:      "力尽きた。",
	Descended:     "地下%[1]d階に降りた。",
}

var supportedTags = []language.Tag{
	language.English,
	language.Japanese,
}

func init() {
	for key, text := range japanese {
		if err := message.SetString(language.Japanese, key, text); err != nil {
			panic(err)
		}
	}
	for key := range japanese {
		if err := message.SetString(language.English, key, key); err != nil {
			panic(err)
		}
	}
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// ParseLocale resolves a locale name to a supported tag. Region variants
// fall back to their base language.
func ParseLocale(value string) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Tag{}, false
	}
	base, _ := parsed.Base()
	for _, tag := range supportedTags {
		if b, _ := tag.Base(); b == base {
			return tag, true
		}
	}
	return language.Tag{}, false
}

// Printer returns a message printer for the supplied locale, falling back to
// English for anything unsupported.
func Printer(locale string) *message.Printer {
	tag, ok := ParseLocale(locale)
	if !ok {
		tag = Default()
	}
	return message.NewPrinter(tag)
}
