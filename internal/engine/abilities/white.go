package abilities

import (
	"fmt"

	"loucura/internal/engine"
)

// LogicalRigor (White, passive): exactly two revealed cards with an even sum
// ignore Madness damage entirely.
type LogicalRigor struct{ passive }

func (LogicalRigor) ID() engine.AbilityID { return engine.AbilityLogicalRigor }
func (LogicalRigor) Ajah() engine.Ajah    { return engine.AjahWhite }

func (LogicalRigor) ModifyMadnessDamage(g *engine.Game, owner, damage int) (int, bool, string) {
	p := g.Players[owner]
	if len(p.Revealed) != 2 || p.RevealedSum()%2 != 0 {
		return damage, false, ""
	}
	return 0, true, fmt.Sprintf("Logical Rigor: %s ignores the Madness damage.", p.ID)
}

// MentalBarrier (White, once per round): protect a player from this round's
// Mental State penalty.
type MentalBarrier struct{}

func (MentalBarrier) ID() engine.AbilityID       { return engine.AbilityMentalBarrier }
func (MentalBarrier) Ajah() engine.Ajah          { return engine.AjahWhite }
func (MentalBarrier) Kind() engine.AbilityKind   { return engine.KindActive }
func (MentalBarrier) Budget() engine.Budget      { return engine.BudgetOncePerRound }
func (MentalBarrier) Phases() []engine.GamePhase { return []engine.GamePhase{engine.PhaseAjahTurns} }
func (MentalBarrier) OwnTurn() bool              { return false }

func (b MentalBarrier) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	if !g.ValidSeat(opts.TargetIndex) {
		return engine.ErrInvalidTarget
	}
	g.Usage(owner, b.ID()).Target = engine.PlayerTarget{Player: opts.TargetIndex}
	g.Logf("Mental Barrier: %s shields %s.", g.Players[owner].ID, g.Players[opts.TargetIndex].ID)
	return nil
}

func (b MentalBarrier) Guards(g *engine.Game, owner, target int, effect engine.EffectID) bool {
	if effect != engine.EffectHesitation {
		return false
	}
	u := g.Usage(owner, b.ID())
	if u == nil || !u.UsedThisRound {
		return false
	}
	t, ok := u.Target.(engine.PlayerTarget)
	return ok && t.Player == target
}
