package abilities

import (
	"fmt"

	"loucura/internal/engine"
)

// RetaliationShield (Red, passive): gain shield equal to half the sanity damage
// contributed, rounded down.
type RetaliationShield struct{ passive }

func (RetaliationShield) ID() engine.AbilityID { return engine.AbilityRetaliationShield }
func (RetaliationShield) Ajah() engine.Ajah    { return engine.AjahRed }

func (RetaliationShield) ShieldForContribution(g *engine.Game, owner, contribution int) int {
	if contribution <= 0 {
		return 0
	}
	return contribution / 2
}

// TotalRepression (Red, once per game): the revealed Madness card deals nothing.
type TotalRepression struct{}

func (TotalRepression) ID() engine.AbilityID     { return engine.AbilityTotalRepression }
func (TotalRepression) Ajah() engine.Ajah        { return engine.AjahRed }
func (TotalRepression) Kind() engine.AbilityKind { return engine.KindActive }
func (TotalRepression) Budget() engine.Budget    { return engine.BudgetOncePerGame }
func (TotalRepression) OwnTurn() bool            { return false }

func (TotalRepression) Phases() []engine.GamePhase {
	return []engine.GamePhase{engine.PhaseMadnessReaction}
}

func (TotalRepression) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	if g.ActiveMadness == nil {
		return fmt.Errorf("%w: no Madness card to repress", engine.ErrInvalidAction)
	}
	g.Flags.MadnessNullified = true
	g.Logf("Total Repression: %s nullified the Madness card.", g.Players[owner].ID)
	g.Phase = engine.PhaseMadnessDamage
	return nil
}
