package abilities

import "loucura/internal/engine"

// All returns every Ajah ability in catalog order.
func All() []engine.Ability {
	return []engine.Ability{
		PiercingGaze{}, SubtleIntrigue{},
		HealingTouch{}, VitalShield{},
		RetaliationShield{}, TotalRepression{},
		BattleTactics{}, VigilantGuardian{},
		FutureInfluence{}, DiplomaticSolution{},
		CorruptedWord{}, DarkOffering{},
		ConcentratedStudy{}, MentalArchive{},
		LogicalRigor{}, MentalBarrier{},
	}
}

// NewRegistry returns a registry holding every ability.
func NewRegistry() *engine.AbilityRegistry {
	r := engine.NewAbilityRegistry()
	for _, a := range All() {
		if err := r.Register(a); err != nil {
			panic(err)
		}
	}
	return r
}
