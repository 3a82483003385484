package engine

import (
	"context"
	"log/slog"

	"bsp-roguelike/internal/msg"
	"bsp-roguelike/internal/system"
)

// AdvanceTurn resolves one turn: the player's buffered side effects and
// attack, the level-up check, then mob AI, mob moves and mob attacks.
// It fails with ErrNoLevel, leaving every buffer intact, when no level has
// been generated.
func (e *Engine) AdvanceTurn() error {
	if e.gmap == nil {
		return ErrNoLevel
	}
	if !e.deltasOpen {
		e.clearItemDeltas()
	}
	e.deltasOpen = false

	e.applyPlayerSideEffects()
	e.applyPlayerAttack()

	if e.dm.Player.CheckLevelUp() {
		e.addMessage(msg.LevelUp)
		e.logger.Debug("level up", "level", e.dm.Player.Level)
	}

	attacks, moves := system.DecideMobActions(e.gmap, e.dm)
	e.mobAttacks = append(e.mobAttacks, attacks...)
	moved := system.ResolveMobMoves(e.dm, moves)
	e.logger.Debug("mob moves", "proposed", len(moves), "applied", moved)

	e.applyMobSideEffects()
	e.applyMobAttacks()

	e.turns++
	e.logTurnSummary()
	return nil
}

func (e *Engine) applyPlayerSideEffects() {
	for i, effect := range e.playerEffects {
		e.logger.Debug("player item used", "index", i, "effect", effect)
	}
	e.playerEffects = e.playerEffects[:0]
}

func (e *Engine) applyPlayerAttack() {
	e.dm.Defeated = e.dm.Defeated[:0]
	if e.playerAttack == nil {
		return
	}
	atk := *e.playerAttack
	e.playerAttack = nil

	rule := system.DropRule{Probability: e.opts.DropProbability, PotionHeal: e.opts.PotionHeal}
	res := system.ApplyPlayerAttack(e.dm, atk, rule, e.rng)
	if !res.Hit {
		e.addMessage(msg.AttackMissed)
		e.logger.Debug("player attack fumbled")
		return
	}
	e.addMessage(msg.DamageDealt, res.MobID, res.Damage)
	e.logger.Debug("mob damaged", "id", res.MobID, "damage", res.Damage)
	if !res.Killed {
		return
	}
	if res.DropID != system.NoDrop {
		e.addedItems = append(e.addedItems, res.DropID)
	}
	e.addMessage(msg.MobDefeated, res.MobID)
	e.logger.Debug("mob defeated", "id", res.MobID, "drop", res.DropID)
}

func (e *Engine) applyMobSideEffects() {
	for i, effect := range e.mobEffects {
		e.logger.Debug("mob item used", "index", i, "effect", effect)
	}
	e.mobEffects = e.mobEffects[:0]
}

func (e *Engine) applyMobAttacks() {
	hits := system.ApplyMobAttacks(e.dm, e.mobAttacks)
	e.mobAttacks = e.mobAttacks[:0]
	for _, h := range hits {
		e.addMessage(msg.DamageTaken, h.MobID, h.Damage)
	}
	if len(hits) > 0 && e.dm.Player.Dead() {
		e.addMessage(msg.GameOver)
		e.logger.Info("game over", "level", e.level, "turns", e.turns+1)
	}
}

func (e *Engine) logTurnSummary() {
	if !e.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	p := e.dm.Player
	e.logger.Debug("turn", "n", e.turns, "direction", p.Dir, "hp", p.HP)
	for _, m := range e.dm.Mobs {
		e.logger.Debug("mob", "id", m.ID, "hp", m.HP)
	}
}
