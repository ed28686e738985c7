package abilities

import (
	"fmt"

	"loucura/internal/engine"
)

const (
	corruptedWordDamage = 7
	darkOfferingCost    = 10
)

// CorruptedWord (Black, once per round): mark a player. If they stand with
// three revealed cards this round they lose 7 life and grant 1 Saidar.
type CorruptedWord struct{}

func (CorruptedWord) ID() engine.AbilityID       { return engine.AbilityCorruptedWord }
func (CorruptedWord) Ajah() engine.Ajah          { return engine.AjahBlack }
func (CorruptedWord) Kind() engine.AbilityKind   { return engine.KindActive }
func (CorruptedWord) Budget() engine.Budget      { return engine.BudgetOncePerRound }
func (CorruptedWord) Phases() []engine.GamePhase { return []engine.GamePhase{engine.PhaseAjahTurns} }
func (CorruptedWord) OwnTurn() bool              { return true }

func (c CorruptedWord) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	if err := otherSeat(g, owner, opts.TargetIndex); err != nil {
		return err
	}
	if g.Players[opts.TargetIndex].Standing {
		return fmt.Errorf("%w: %s is already standing", engine.ErrInvalidTarget, g.Players[opts.TargetIndex].ID)
	}
	g.Usage(owner, c.ID()).Target = engine.PlayerTarget{Player: opts.TargetIndex}
	g.Logf("Corrupted Word: %s targets %s.", g.Players[owner].ID, g.Players[opts.TargetIndex].ID)
	return nil
}

func (c CorruptedWord) OnStand(g *engine.Game, owner, stander int) {
	u := g.Usage(owner, c.ID())
	if u == nil {
		return
	}
	t, ok := u.Target.(engine.PlayerTarget)
	if !ok || t.Player != stander {
		return
	}
	p := g.Players[stander]
	if len(p.Revealed) != 3 {
		return
	}
	u.Target = nil
	p.SaidarBonus++
	g.Logf("Corrupted Word: %s stood with three cards.", p.ID)
	g.DamagePlayer(stander, corruptedWordDamage, "Corrupted Word")
}

// DarkOffering (Black, once per game): sacrifice 10 life to nullify the next
// Mental State effect.
type DarkOffering struct{}

func (DarkOffering) ID() engine.AbilityID     { return engine.AbilityDarkOffering }
func (DarkOffering) Ajah() engine.Ajah        { return engine.AjahBlack }
func (DarkOffering) Kind() engine.AbilityKind { return engine.KindActive }
func (DarkOffering) Budget() engine.Budget    { return engine.BudgetOncePerGame }
func (DarkOffering) OwnTurn() bool            { return false }

func (DarkOffering) Phases() []engine.GamePhase {
	return []engine.GamePhase{engine.PhaseAjahTurns, engine.PhaseSaidarTracks}
}

func (DarkOffering) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	g.Flags.MentalStateNullified = true
	g.Logf("Dark Offering: %s sacrifices life to nullify the next Mental State.", g.Players[owner].ID)
	g.LoseLife(owner, darkOfferingCost, "Dark Offering")
	return nil
}
