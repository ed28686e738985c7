package abilities

import "loucura/internal/engine"

// FutureInfluence (Gray, once per game): remove one permanent enhancement.
type FutureInfluence struct{}

func (FutureInfluence) ID() engine.AbilityID       { return engine.AbilityFutureInfluence }
func (FutureInfluence) Ajah() engine.Ajah          { return engine.AjahGray }
func (FutureInfluence) Kind() engine.AbilityKind   { return engine.KindActive }
func (FutureInfluence) Budget() engine.Budget      { return engine.BudgetOncePerGame }
func (FutureInfluence) Phases() []engine.GamePhase { return []engine.GamePhase{engine.PhaseAjahTurns} }
func (FutureInfluence) OwnTurn() bool              { return true }

func (FutureInfluence) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	removed, err := g.RemoveEnhancement(opts.EnhancementIndex)
	if err != nil {
		return err
	}
	g.Logf("Future Influence: %s removed the enhancement %s.", g.Players[owner].ID, removed)
	return nil
}

// DiplomaticSolution (Gray, once per game): the next Saidar phase grants extra
// points but the Teia track does not advance.
type DiplomaticSolution struct{}

func (DiplomaticSolution) ID() engine.AbilityID     { return engine.AbilityDiplomaticSolution }
func (DiplomaticSolution) Ajah() engine.Ajah        { return engine.AjahGray }
func (DiplomaticSolution) Kind() engine.AbilityKind { return engine.KindActive }
func (DiplomaticSolution) Budget() engine.Budget    { return engine.BudgetOncePerGame }
func (DiplomaticSolution) OwnTurn() bool            { return false }

func (DiplomaticSolution) Phases() []engine.GamePhase {
	return []engine.GamePhase{engine.PhaseAjahTurns, engine.PhaseSaidarTracks}
}

func (DiplomaticSolution) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	g.Flags.DiplomaticSolution = true
	g.Logf("Diplomatic Solution: %s secures %d extra Saidar for the next Saidar phase.",
		g.Players[owner].ID, g.Config.DiplomaticBonus)
	return nil
}
