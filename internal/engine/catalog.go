package engine

// Catalog is the static card data consumed by setup.
type Catalog struct {
	Decks        map[Ajah][]Card
	Madness      []MadnessCard
	MentalStates []MentalStateCard
}

// DeckSize returns the fixed size of an Ajah's starting deck.
func (c Catalog) DeckSize(a Ajah) int {
	return len(c.Decks[a])
}

// DefaultCatalog returns the base game decks.
func DefaultCatalog() Catalog {
	even := []int{0, 0, 2, 2, 4, 4, 6, 6, 8}
	odd := []int{1, 1, 3, 3, 5, 5, 7, 7, 9}
	ladder := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}

	deck := func(a Ajah, values []int) []Card {
		cards := make([]Card, len(values))
		for i, v := range values {
			cards[i] = Card{Value: v, Ajah: a}
		}
		return cards
	}

	decks := map[Ajah][]Card{
		AjahWhite:  deck(AjahWhite, even),
		AjahGray:   deck(AjahGray, even),
		AjahGreen:  deck(AjahGreen, odd),
		AjahYellow: deck(AjahYellow, odd),
		AjahRed:    deck(AjahRed, odd),
		AjahBlue:   deck(AjahBlue, ladder),
		AjahBrown:  deck(AjahBrown, ladder),
		AjahBlack:  deck(AjahBlack, ladder),
	}

	var madness []MadnessCard
	for _, v := range []int{2, 3, 4, 5, 6, 7, 8, 9, 2, 3, 4, 5} {
		madness = append(madness, MadnessCard{Value: v})
	}

	return Catalog{
		Decks:        decks,
		Madness:      madness,
		MentalStates: baseMentalStates(),
	}
}

func baseMentalStates() []MentalStateCard {
	hesitation := MentalStateCard{
		ID: "Hesitation", Level: 1,
		EffectText: "The first player to stand this round discards a random card from hand.",
		Effect:     EffectHesitation, Enhancement: EnhancementNone,
		Condition: ConditionNone, Damage: DamageNone,
	}
	distrust := MentalStateCard{
		ID: "Distrust", Level: 2,
		EffectText:      "Revealed cards are face down and only scored when the Ajah turns end.",
		Effect:          EffectDistrust,
		EnhancementText: "Permanent: draw one extra card when refilling hands.",
		Enhancement:     EnhancementExtraDraw,
		Condition:       ConditionAnyStanding, Damage: DamageNone,
	}
	fear := MentalStateCard{
		ID: "ParalyzingFear", Level: 2,
		EffectText:      "The Flame track cannot advance this round.",
		Effect:          EffectFlameBlocked,
		EnhancementText: "The Flame track drops one level.",
		Enhancement:     EnhancementFlameSetback,
		Condition:       ConditionFlame3, Damage: DamageFirstPlayerPlus,
	}
	paranoia := MentalStateCard{
		ID: "SelectiveParanoia", Level: 2,
		EffectText: "Madness strikes only the player with the highest score.",
		Effect:     EffectNone, Enhancement: EnhancementNone,
		Condition: ConditionNone, Damage: DamageHighestScore,
	}
	despair := MentalStateCard{
		ID: "SuffocatingDespair", Level: 2,
		EffectText: "Madness strikes only the player with the lowest life.",
		Effect:     EffectNone, Enhancement: EnhancementNone,
		Condition: ConditionNone, Damage: DamageLowestLife,
	}
	fury := MentalStateCard{
		ID: "BlindFury", Level: 3,
		EffectText: "Madness damage is increased by 2 this round.",
		Effect:     EffectFury, Enhancement: EnhancementNone,
		Condition: ConditionNone, Damage: DamageAllPlus,
	}
	calm := MentalStateCard{
		ID: "DeceptiveCalm", Level: 1,
		EffectText:      "If no player busts, Rand recovers 5 sanity.",
		Effect:          EffectCalm,
		EnhancementText: "Permanent: the bust limit is 10 instead of 9.",
		Enhancement:     EnhancementBustLimit10,
		Condition:       ConditionNoBust, Damage: DamageNone,
	}

	cards := []MentalStateCard{hesitation, distrust, fear, paranoia, despair}
	for i := 0; i < 30; i++ {
		cards = append(cards, fury, calm)
	}
	return cards
}
