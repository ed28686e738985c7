package abilities

import (
	"fmt"

	"loucura/internal/engine"
)

const maxStudyCards = 2

// ConcentratedStudy (Brown, once per round): before revealing, discard up to
// two hand cards and draw as many.
type ConcentratedStudy struct{}

func (ConcentratedStudy) ID() engine.AbilityID       { return engine.AbilityConcentratedStudy }
func (ConcentratedStudy) Ajah() engine.Ajah          { return engine.AjahBrown }
func (ConcentratedStudy) Kind() engine.AbilityKind   { return engine.KindActive }
func (ConcentratedStudy) Budget() engine.Budget      { return engine.BudgetOncePerRound }
func (ConcentratedStudy) Phases() []engine.GamePhase { return []engine.GamePhase{engine.PhaseAjahTurns} }
func (ConcentratedStudy) OwnTurn() bool              { return true }

func (ConcentratedStudy) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	p := g.Players[owner]
	if len(p.Revealed) > 0 || p.Standing {
		return fmt.Errorf("%w: study only before revealing", engine.ErrInvalidAction)
	}
	if len(opts.CardIndices) > maxStudyCards {
		return fmt.Errorf("%w: at most %d cards", engine.ErrInvalidAction, maxStudyCards)
	}
	drawn, err := g.DiscardAndDraw(owner, opts.CardIndices)
	if err != nil {
		return err
	}
	g.Logf("Concentrated Study: %s discarded %d and drew %d card(s).", p.ID, len(opts.CardIndices), drawn)
	return nil
}

// MentalArchive (Brown, passive): declared while revealing. At cleanup the
// chosen revealed card goes back on top of the draw pile.
type MentalArchive struct{ passive }

func (MentalArchive) ID() engine.AbilityID { return engine.AbilityMentalArchive }
func (MentalArchive) Ajah() engine.Ajah    { return engine.AjahBrown }

func (m MentalArchive) Declare(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	if !g.HasRevealedValue(owner, opts.CardValue) {
		return fmt.Errorf("%w: no revealed card of value %d", engine.ErrInvalidTarget, opts.CardValue)
	}
	g.Usage(owner, m.ID()).Target = engine.CardValueTarget{Value: opts.CardValue}
	g.Logf("Mental Archive: %s will keep a card of value %d.", g.Players[owner].ID, opts.CardValue)
	return nil
}

func (m MentalArchive) OnCleanup(g *engine.Game, owner int) {
	u := g.Usage(owner, m.ID())
	if u == nil {
		return
	}
	t, ok := u.Target.(engine.CardValueTarget)
	if !ok {
		return
	}
	u.Target = nil
	if g.ReturnRevealedToTop(owner, t.Value) {
		g.Logf("Mental Archive: %s returned a card of value %d to the top of the deck.", g.Players[owner].ID, t.Value)
	}
}
