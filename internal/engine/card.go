package engine

// Card is a personal deck card. Value is 0-9.
type Card struct {
	Value int  `json:"value"`
	Ajah  Ajah `json:"ajah"`
}

// MadnessCard is the shared attack card drawn each round.
type MadnessCard struct {
	Value int `json:"value"`
}

// MentalStateCard is a one-shot round modifier drawn from a deck that never reshuffles.
type MentalStateCard struct {
	ID              string        `json:"id"`
	Level           int           `json:"level"`
	EffectText      string        `json:"effect_text"`
	Effect          EffectID      `json:"effect"`
	EnhancementText string        `json:"enhancement_text,omitempty"`
	Enhancement     EnhancementID `json:"enhancement"`
	Condition       ConditionID   `json:"condition"`
	Damage          DamagePolicy  `json:"damage"`
}

func sumValues(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Value
	}
	return sum
}
