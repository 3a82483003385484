// Package game hosts the turn engine in a tcell terminal. It translates keys
// into engine intents, advances turns and draws the result.
package game

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"bsp-roguelike/internal/engine"
	"bsp-roguelike/internal/render"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateDead
)

const helpLine = "hjklyubn move  HJKLYUBN face  a attack  , pickup  1-8 use  . wait  > descend  q quit"

// Options describe the level size and the run metadata written to the log.
type Options struct {
	Width, Height int
	Seed          int64
	Mode          string
}

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	eng      *engine.Engine
	logger   *slog.Logger
	opts     Options
	state    GameState
	runLog   RunLog
}

// New opens the terminal and returns a Game driving eng.
func New(eng *engine.Engine, opts Options, logger *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen, eng, opts, logger)
}

// NewWithScreen initializes screen and generates the first level if eng has
// none yet.
func NewWithScreen(screen tcell.Screen, eng *engine.Engine, opts Options, logger *slog.Logger) (*Game, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if !eng.HasLevel() {
		eng.InitializeLevel(opts.Width, opts.Height)
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, eng.Level()),
		eng:      eng,
		logger:   logger,
		opts:     opts,
		runLog:   RunLog{Seed: opts.Seed, Mode: opts.Mode},
	}
	logger.Info("run started", "seed", opts.Seed, "mode", opts.Mode, "width", opts.Width, "height", opts.Height)
	return g, nil
}

// Run is the main loop. It returns when the player quits; the run log is
// written on the way out.
func (g *Game) Run() {
	defer g.screen.Fini()
	defer g.finishRun()

	for {
		g.draw()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			if !g.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey applies one key press and reports whether the loop continues.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	action := keyToAction(ev)
	if action == ActionQuit {
		return false
	}
	if g.state == StateDead {
		return true
	}
	g.processAction(action)
	return true
}

// processAction forwards one action to the engine and, when it spends a turn,
// advances the turn.
func (g *Game) processAction(action Action) {
	if d, ok := faceDirection(action); ok {
		g.eng.SetFacing(int(d))
		return
	}

	turnUsed := false
	if d, ok := moveDirection(action); ok {
		g.eng.SetFacing(int(d))
		dx, dy := d.Offset()
		x, y := g.eng.PlayerPosition()
		turnUsed = g.eng.Move(x+dx, y+dy)
	} else if slot, ok := useSlot(action); ok {
		turnUsed = g.eng.UseItem(slot)
	}

	switch action {
	case ActionAttack:
		g.eng.Attack()
		turnUsed = true
	case ActionPickup:
		g.eng.Pickup()
		turnUsed = true
	case ActionWait:
		turnUsed = true
	case ActionDescend:
		if g.eng.Descend() {
			g.renderer.SetFloor(g.eng.Level())
			g.logger.Info("descended", "floor", g.eng.Level())
		}
		return
	}

	if turnUsed {
		g.advance()
	}
}

// advance resolves the turn and folds its deltas into the run log.
func (g *Game) advance() {
	before, _ := g.eng.PlayerHP()
	if err := g.eng.AdvanceTurn(); err != nil {
		g.logger.Error("advance turn", "error", err)
		return
	}
	after, _ := g.eng.PlayerHP()

	g.runLog.TurnsPlayed++
	g.runLog.ItemsPickedUp += len(g.eng.RemovedItemIDs())
	g.runLog.DamageTaken += max(before-after, 0)
	g.runLog.EnemiesKilled += len(g.eng.DefeatedMobIDs())
	if g.eng.GameOver() {
		g.state = StateDead
		g.runLog.Died = true
	}
}

func (g *Game) draw() {
	px, py := g.eng.PlayerPosition()
	g.renderer.CenterOn(px, py)
	g.renderer.DrawFrame(g.eng)
	g.renderer.DrawHUD(render.HUD{
		Floor:    g.eng.Level(),
		Status:   g.eng.PlayerStatus(),
		Facing:   g.eng.PlayerDirection(),
		Items:    g.eng.PlayerItems(),
		Active:   g.eng.ActiveSlot(),
		Messages: g.eng.Messages(),
		GameOver: g.state == StateDead,
		HelpLine: helpLine,
	})
}

func (g *Game) finishRun() {
	g.runLog.FloorsReached = g.eng.Level()
	g.runLog.PlayerLevel = g.eng.PlayerLevel()
	g.logger.Info("run finished",
		"floor", g.runLog.FloorsReached,
		"turns", g.runLog.TurnsPlayed,
		"kills", g.runLog.EnemiesKilled,
		"died", g.runLog.Died,
	)
	if err := saveRunLog(g.runLog); err != nil {
		g.logger.Warn("save run log", "error", err)
	}
}
