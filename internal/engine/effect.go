package engine

// EffectID identifies a mental-state round effect.
type EffectID string

const (
	EffectNone         EffectID = "none"
	EffectHesitation   EffectID = "hesitation"
	EffectDistrust     EffectID = "distrust"
	EffectFlameBlocked EffectID = "flame_blocked"
	EffectFury         EffectID = "fury"
	EffectCalm         EffectID = "calm"
)

// EnhancementID identifies a permanent, game-long rule modifier.
type EnhancementID string

const (
	EnhancementNone         EnhancementID = "none"
	EnhancementExtraDraw    EnhancementID = "extra_draw"
	EnhancementFlameSetback EnhancementID = "flame_setback"
	EnhancementBustLimit10  EnhancementID = "bust_limit_10"
)

// ConditionID gates the unlock of a mental state's enhancement.
type ConditionID string

const (
	ConditionNone        ConditionID = "none" // unconditional
	ConditionNoBust      ConditionID = "no_bust"
	ConditionAnyStanding ConditionID = "any_standing"
	ConditionFlame3      ConditionID = "flame_3"
)

// DamagePolicy selects which players receive madness damage.
type DamagePolicy string

const (
	DamageDefault         DamagePolicy = "default"
	DamageHighestScore    DamagePolicy = "highest_score"
	DamageLowestLife      DamagePolicy = "lowest_life"
	DamageFirstPlayerPlus DamagePolicy = "first_player_plus"
	DamageAllPlus         DamagePolicy = "all_plus"
	DamageNone            DamagePolicy = "none"
	DamageSplit           DamagePolicy = "split" // only ever selected by Vigilant Guardian
)

// Flags holds transient flags that outlive a single phase.
type Flags struct {
	MentalStateNullified bool `json:"mental_state_nullified"`
	DiplomaticSolution   bool `json:"diplomatic_solution"`
	MadnessNullified     bool `json:"madness_nullified"`
}

// SaidarTracks are the four shared upgrade counters.
type SaidarTracks struct {
	Chama  int `json:"chama"`
	Escudo int `json:"escudo"`
	Calice int `json:"calice"`
	Teia   int `json:"teia"`
}

// SaidarUpgrades is a distribution of Saidar points across the tracks.
type SaidarUpgrades struct {
	Chama  int `json:"chama"`
	Escudo int `json:"escudo"`
	Calice int `json:"calice"`
	Teia   int `json:"teia"`
}

// Total returns the number of points spent.
func (u SaidarUpgrades) Total() int {
	return u.Chama + u.Escudo + u.Calice + u.Teia
}

// ShieldReduction is the flat madness reduction granted by the Escudo track.
func (t SaidarTracks) ShieldReduction() int {
	return max(0, floorDiv(t.Escudo-1, 2))
}

// FlameBonus is the flat sanity damage bonus granted by the Chama track.
func (t SaidarTracks) FlameBonus() int {
	return max(0, floorDiv(t.Chama-1, 3))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
