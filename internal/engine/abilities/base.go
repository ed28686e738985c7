package abilities

import (
	"fmt"

	"loucura/internal/engine"
)

// passive fills in the Ability methods shared by always-on abilities.
type passive struct{}

func (passive) Kind() engine.AbilityKind   { return engine.KindPassive }
func (passive) Budget() engine.Budget      { return engine.BudgetUnlimited }
func (passive) Phases() []engine.GamePhase { return nil }
func (passive) OwnTurn() bool              { return false }

func (passive) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	return fmt.Errorf("%w: passive abilities are not invoked", engine.ErrInvalidAction)
}

// otherSeat validates a target seat that must differ from the owner's.
func otherSeat(g *engine.Game, owner, target int) error {
	if !g.ValidSeat(target) || target == owner {
		return fmt.Errorf("%w: seat %d", engine.ErrInvalidTarget, target)
	}
	return nil
}
