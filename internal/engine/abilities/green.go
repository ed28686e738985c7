package abilities

import (
	"fmt"

	"loucura/internal/engine"
)

const allianceBonus = 2

// BattleTactics (Green, passive): an alliance declared while revealing. When
// both allies have revealed at least two cards, each adds 2 sanity damage.
type BattleTactics struct{ passive }

func (BattleTactics) ID() engine.AbilityID { return engine.AbilityBattleTactics }
func (BattleTactics) Ajah() engine.Ajah    { return engine.AjahGreen }

func (b BattleTactics) Declare(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	if err := otherSeat(g, owner, opts.TargetIndex); err != nil {
		return err
	}
	if len(g.Players[owner].Revealed) < 2 {
		return fmt.Errorf("%w: reveal two cards before forming an alliance", engine.ErrInvalidAction)
	}
	g.Usage(owner, b.ID()).Target = engine.PartnerTarget{Partner: opts.TargetIndex}
	g.Logf("Battle Tactics: %s allied with %s.", g.Players[owner].ID, g.Players[opts.TargetIndex].ID)
	return nil
}

func (b BattleTactics) ContributionBonus(g *engine.Game, owner, contributor int) (int, string) {
	u := g.Usage(owner, b.ID())
	if u == nil {
		return 0, ""
	}
	t, ok := u.Target.(engine.PartnerTarget)
	if !ok || (contributor != owner && contributor != t.Partner) {
		return 0, ""
	}
	if len(g.Players[owner].Revealed) < 2 || len(g.Players[t.Partner].Revealed) < 2 {
		return 0, ""
	}
	return allianceBonus, fmt.Sprintf("Battle Tactics adds %d damage for %s.", allianceBonus, g.Players[contributor].ID)
}

// VigilantGuardian (Green, once per round): share this round's Madness damage
// with a partner. The owner takes the larger half.
type VigilantGuardian struct{}

func (VigilantGuardian) ID() engine.AbilityID       { return engine.AbilityVigilantGuardian }
func (VigilantGuardian) Ajah() engine.Ajah          { return engine.AjahGreen }
func (VigilantGuardian) Kind() engine.AbilityKind   { return engine.KindActive }
func (VigilantGuardian) Budget() engine.Budget      { return engine.BudgetOncePerRound }
func (VigilantGuardian) Phases() []engine.GamePhase { return []engine.GamePhase{engine.PhaseAjahTurns} }
func (VigilantGuardian) OwnTurn() bool              { return true }

func (v VigilantGuardian) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	if err := otherSeat(g, owner, opts.TargetIndex); err != nil {
		return err
	}
	g.Usage(owner, v.ID()).Target = engine.PartnerTarget{Partner: opts.TargetIndex}
	g.Logf("Vigilant Guardian: %s will share the next Madness with %s.", g.Players[owner].ID, g.Players[opts.TargetIndex].ID)
	return nil
}

func (v VigilantGuardian) SplitPartner(g *engine.Game, owner int) (int, bool) {
	u := g.Usage(owner, v.ID())
	if u == nil || !u.UsedThisRound {
		return 0, false
	}
	t, ok := u.Target.(engine.PartnerTarget)
	return t.Partner, ok
}
