package abilities

import (
	"fmt"

	"loucura/internal/engine"
)

const healAmount = 3

// HealingTouch (Yellow, once per round): heal any player, up to starting life.
type HealingTouch struct{}

func (HealingTouch) ID() engine.AbilityID       { return engine.AbilityHealingTouch }
func (HealingTouch) Ajah() engine.Ajah          { return engine.AjahYellow }
func (HealingTouch) Kind() engine.AbilityKind   { return engine.KindActive }
func (HealingTouch) Budget() engine.Budget      { return engine.BudgetOncePerRound }
func (HealingTouch) Phases() []engine.GamePhase { return []engine.GamePhase{engine.PhaseAjahTurns} }
func (HealingTouch) OwnTurn() bool              { return false }

func (HealingTouch) Apply(g *engine.Game, owner int, opts engine.AbilityOptions) error {
	if !g.ValidSeat(opts.TargetIndex) {
		return engine.ErrInvalidTarget
	}
	healed := g.Heal(opts.TargetIndex, healAmount)
	target := g.Players[opts.TargetIndex]
	g.Logf("Healing Touch: %s healed %s for %d. Life: %d.", g.Players[owner].ID, target.ID, healed, target.Life)
	return nil
}

// VitalShield (Yellow, passive): Madness damage is reduced by 1, 2 or 4
// depending on the Madness card's value. A nullified card counts as 0.
type VitalShield struct{ passive }

func (VitalShield) ID() engine.AbilityID { return engine.AbilityVitalShield }
func (VitalShield) Ajah() engine.Ajah    { return engine.AjahYellow }

func (VitalShield) ModifyMadnessDamage(g *engine.Game, owner, damage int) (int, bool, string) {
	if g.ActiveMadness == nil {
		return damage, false, ""
	}
	value := g.ActiveMadness.Value
	if g.Flags.MadnessNullified {
		value = 0
	}
	r := engine.TieredShieldReduction(value)
	return max(0, damage-r), false, fmt.Sprintf("Vital Shield of %s reduces the damage by %d.", g.Players[owner].ID, r)
}
