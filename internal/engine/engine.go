// Package engine is the authoritative turn engine. The host drives it with
// player intents followed by AdvanceTurn, then polls the query methods.
package engine

import (
	"errors"
	"log/slog"

	"golang.org/x/text/message"

	"bsp-roguelike/internal/config"
	"bsp-roguelike/internal/dynmap"
	"bsp-roguelike/internal/entity"
	"bsp-roguelike/internal/factory"
	"bsp-roguelike/internal/gamemap"
	"bsp-roguelike/internal/generate"
	"bsp-roguelike/internal/msg"
	"bsp-roguelike/internal/random"
)

// ErrNoLevel is returned when a turn is advanced before any level exists.
var ErrNoLevel = errors.New("engine: no level generated")

const maxMessages = 50

// Options are the gameplay tunables the engine reads.
type Options struct {
	Items           int
	Mobs            int
	DropProbability float64
	PotionHeal      int
	HealOnLevelUp   bool
	Mode            generate.Mode
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig extracts the engine tunables from a validated config.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Items:           cfg.Items,
		Mobs:            cfg.Mobs,
		DropProbability: cfg.DropProbability,
		PotionHeal:      cfg.PotionHeal,
		HealOnLevelUp:   cfg.HealOnLevelUp,
		Mode:            cfg.Mode(),
	}
}

// Level is the snapshot returned by GenerateLevel.
type Level struct {
	Width, Height    int
	Grid             []int
	Rooms            []gamemap.Room
	PlayerX, PlayerY int
	GoalX, GoalY     int
}

// Engine owns the static map, the dynamic map and the per-turn buffers.
// It is not safe for concurrent use; the host calls one method at a time.
type Engine struct {
	opts    Options
	rng     random.Source
	printer *message.Printer
	logger  *slog.Logger

	gmap  *gamemap.GameMap
	dm    *dynmap.Map
	level int
	turns int

	playerAttack  *entity.AttackInfo
	playerEffects []entity.SideEffect
	mobAttacks    []entity.MobAttackInfo
	mobEffects    []entity.SideEffect

	addedItems   []int
	removedItems []int
	deltasOpen   bool // an intent has started this turn's item deltas
	messages     []string
}

// New creates an engine at level 1 with no map yet. A nil printer uses
// English and a nil logger uses slog.Default.
func New(opts Options, rng random.Source, printer *message.Printer, logger *slog.Logger) *Engine {
	if printer == nil {
		printer = msg.Printer("en")
	}
	if logger == nil {
		logger = slog.Default()
	}
	dm := dynmap.New()
	dm.Player.HealOnLevelUp = opts.HealOnLevelUp
	return &Engine{
		opts:    opts,
		rng:     rng,
		printer: printer,
		logger:  logger,
		dm:      dm,
		level:   1,
	}
}

// InitializeLevel generates a new static map and repopulates the dynamic
// map. The player keeps stats and inventory. With no rooms the player and
// goal are left at the origin and nothing is spawned.
func (e *Engine) InitializeLevel(width, height int) {
	e.gmap = generate.Build(e.opts.Mode, e.rng, width, height)
	e.dm.Clear()
	e.resetBuffers()

	rooms := e.gmap.Rooms
	n := len(rooms)
	e.logger.Debug("level generated", "level", e.level, "width", width, "height", height, "rooms", n)
	if n == 0 {
		factory.PlacePlayer(e.dm.Player, 0, 0)
		return
	}

	start, goal := pickStartAndGoal(e.rng, n)
	px, py := rooms[start].Center()
	factory.PlacePlayer(e.dm.Player, px, py)
	e.dm.GoalX, e.dm.GoalY = rooms[goal].Center()

	pop := generate.Populate(e.gmap, &generate.Config{
		ItemCount: e.opts.Items,
		MobCount:  e.opts.Mobs,
		Rand:      e.rng,
	}, generate.SpawnPoint{X: px, Y: py})
	items, mobs := factory.Spawn(e.dm, pop, e.level, e.opts.PotionHeal)
	e.logger.Debug("items generated", "count", items, "max", e.opts.Items)
	e.logger.Debug("mobs generated", "count", mobs, "max", e.opts.Mobs)
}

// pickStartAndGoal draws two room indexes, distinct whenever n > 1. The goal
// is uniform over the rooms other than the start.
func pickStartAndGoal(rng random.Source, n int) (start, goal int) {
	start = rng.Intn(n)
	if n == 1 {
		return start, start
	}
	goal = rng.Intn(n - 1)
	if goal >= start {
		goal++
	}
	return start, goal
}

// GenerateLevel initializes a level and returns its snapshot.
func (e *Engine) GenerateLevel(width, height int) Level {
	e.InitializeLevel(width, height)
	return Level{
		Width:   e.gmap.Width,
		Height:  e.gmap.Height,
		Grid:    e.gmap.Flatten(),
		Rooms:   e.Rooms(),
		PlayerX: e.dm.Player.X,
		PlayerY: e.dm.Player.Y,
		GoalX:   e.dm.GoalX,
		GoalY:   e.dm.GoalY,
	}
}

// NextLevel advances the floor counter used to scale new mobs.
func (e *Engine) NextLevel() {
	e.level++
}

// Descend moves to the next floor when the player stands on the goal. The
// new floor has the same size as the current one.
func (e *Engine) Descend() bool {
	if e.gmap == nil || len(e.gmap.Rooms) == 0 {
		return false
	}
	p := e.dm.Player
	if p.X != e.dm.GoalX || p.Y != e.dm.GoalY {
		return false
	}
	e.NextLevel()
	e.InitializeLevel(e.gmap.Width, e.gmap.Height)
	e.addMessage(msg.Descended, e.level)
	return true
}

func (e *Engine) resetBuffers() {
	e.playerAttack = nil
	e.playerEffects = nil
	e.mobAttacks = nil
	e.mobEffects = nil
	e.addedItems = nil
	e.removedItems = nil
	e.deltasOpen = false
}

func (e *Engine) addMessage(key string, args ...any) {
	e.messages = append(e.messages, e.printer.Sprintf(key, args...))
	if len(e.messages) > maxMessages {
		e.messages = e.messages[len(e.messages)-maxMessages:]
	}
}

// clearItemDeltas starts a new turn's added/removed item bookkeeping.
func (e *Engine) clearItemDeltas() {
	e.addedItems = e.addedItems[:0]
	e.removedItems = e.removedItems[:0]
	e.deltasOpen = true
}
