package abilities

import "loucura/internal/engine"

// PiercingGaze (Blue, passive): the next Madness card is revealed as soon as
// the round's Mental State is drawn.
type PiercingGaze struct{ passive }

func (PiercingGaze) ID() engine.AbilityID { return engine.AbilityPiercingGaze }
func (PiercingGaze) Ajah() engine.Ajah    { return engine.AjahBlue }

func (PiercingGaze) OnMentalState(g *engine.Game, owner int) {
	if g.MadnessPreview != nil {
		return
	}
	// Reshuffle now so the preview is the card that will actually be drawn.
	if len(g.MadnessDeck) == 0 {
		if len(g.MadnessDiscard) == 0 {
			return
		}
		g.MadnessDeck = engine.Shuffle(g.Rand(), g.MadnessDiscard)
		g.MadnessDiscard = nil
	}
	top := g.MadnessDeck[0]
	g.MadnessPreview = &top
	g.Logf("Piercing Gaze (%s): the next Madness card has value %d.", g.Players[owner].ID, top.Value)
}

// SubtleIntrigue (Blue, once per round): nullify the next Mental State effect.
type SubtleIntrigue struct{}

func (SubtleIntrigue) ID() engine.AbilityID     { return engine.AbilitySubtleIntrigue }
func (SubtleIntrigue) Ajah() engine.Ajah        { return engine.AjahBlue }
func (SubtleIntrigue) Kind() engine.AbilityKind { return engine.KindActive }
func (SubtleIntrigue) Budget() engine.Budget    { return engine.BudgetOncePerRound }
func (SubtleIntrigue) OwnTurn() bool            { return false }

func (SubtleIntrigue) Phases() []engine.GamePhase {
	return []engine.GamePhase{engine.PhaseAjahTurns, engine.PhaseSaidarTracks}
}

func (SubtleIntrigue) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	g.Flags.MentalStateNullified = true
	g.Logf("Subtle Intrigue (%s): the next Mental State effect will be nullified.", g.Players[owner].ID)
	return nil
}
