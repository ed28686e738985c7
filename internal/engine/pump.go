package engine

import (
	"errors"
)

// The pump drains automatic phases until the game waits for input or ends.

// maxPumpSteps bounds a single drain. One round has six automatic phases, so
// hitting this means a step failed to advance.
const maxPumpSteps = 32

func (g *Game) pump() {
	for steps := 0; !g.Phase.WaitsForInput(); steps++ {
		if steps >= maxPumpSteps {
			g.Logf("Automatic phases did not settle after %d steps. Halting at %s.", steps, g.Phase)
			return
		}
		from := g.Phase
		next := g.step()
		if next == from {
			g.Logf("Phase %s did not advance. Halting.", from)
			return
		}
		g.Phase = next
	}
}

// step runs the current automatic phase and returns the phase to move to.
func (g *Game) step() GamePhase {
	switch g.Phase {
	case PhaseMentalState:
		return g.stepMentalState()
	case PhaseMadnessTurn:
		return g.stepMadnessTurn()
	case PhaseMadnessDamage:
		return g.stepMadnessDamage()
	case PhaseSanityDamage:
		return g.stepSanityDamage()
	case PhaseCleanup:
		return g.stepCleanup()
	default:
		return g.Phase
	}
}

func (g *Game) stepMentalState() GamePhase {
	g.RoundEffects = make(map[EffectID]bool)
	g.MadnessPreview = nil

	if len(g.MentalDeck) == 0 {
		g.Logf("The Mental State deck is exhausted. Madness wins.")
		return g.finish(WinnerMadness)
	}
	card := g.MentalDeck[0]
	g.MentalDeck = g.MentalDeck[1:]
	g.ActiveMentalState = &card
	g.Logf("Round %d. Mental State %q revealed.", g.Round, card.ID)

	if g.Flags.MentalStateNullified {
		g.Flags.MentalStateNullified = false
		g.Logf("The Mental State effect was nullified.")
	} else if card.Effect != EffectNone && card.Effect != "" {
		g.RoundEffects[card.Effect] = true
		g.Logf("Effect: %s", card.EffectText)
	}

	g.hooks(func(owner int, a Ability) {
		if h, ok := a.(MentalStateHook); ok {
			h.OnMentalState(g, owner)
		}
	})

	seat, ok := g.firstTurnSeat()
	if !ok {
		g.Logf("No Ajah can reveal this round.")
		g.endAjahTurns()
		return PhaseMadnessTurn
	}
	g.CurrentPlayer = seat
	return PhaseAjahTurns
}

func (g *Game) stepMadnessTurn() GamePhase {
	card, draw, discard, err := DrawWithReshuffle(g.Rand(), g.MadnessDeck, g.MadnessDiscard)
	if errors.Is(err, ErrDeckExhausted) {
		g.ActiveMadness = nil
		g.Logf("The Madness deck is empty. No attack this round.")
		return PhaseMadnessDamage
	}
	g.MadnessDeck, g.MadnessDiscard = draw, discard
	g.ActiveMadness = &card
	g.Logf("Madness attacks! Card value: %d.", card.Value)

	if g.reactionAvailable() {
		g.Logf("A reaction to the Madness is available.")
		return PhaseMadnessReaction
	}
	return PhaseMadnessDamage
}

// reactionAvailable reports whether any seat holds an unused reaction ability.
func (g *Game) reactionAvailable() bool {
	found := false
	g.hooks(func(owner int, a Ability) {
		if found || a.Kind() != KindActive {
			return
		}
		for _, ph := range a.Phases() {
			if ph == PhaseMadnessReaction && available(a, g.Usage(owner, a.ID())) {
				found = true
				return
			}
		}
	})
	return found
}

func (g *Game) stepMadnessDamage() GamePhase {
	plan := g.PlanMadnessDamage()
	g.applyMadnessDamage(plan)

	for _, p := range g.Players {
		if p.Life <= 0 {
			g.Logf("%s has fallen. Madness wins.", p.ID)
			return g.finish(WinnerMadness)
		}
	}
	return PhaseSanityDamage
}

func (g *Game) stepSanityDamage() GamePhase {
	plan := g.PlanSanityDamage()
	g.applySanityDamage(plan)
	g.checkEnhancement()

	if g.Sanity <= 0 {
		g.Logf("Rand's sanity is restored. The Ajahs win!")
		return g.finish(WinnerPlayers)
	}
	g.enterSaidarTracks()
	return PhaseSaidarTracks
}

// enterSaidarTracks computes the round's Saidar budget.
func (g *Game) enterSaidarTracks() {
	g.SaidarPoints = g.Config.SaidarPointsPerRound
	for _, p := range g.Players {
		if p.SaidarBonus > 0 {
			g.SaidarPoints += p.SaidarBonus
			g.Logf("Saidar bonus from %s: +%d.", p.ID, p.SaidarBonus)
			p.SaidarBonus = 0
		}
	}
	if g.Flags.DiplomaticSolution {
		g.Flags.DiplomaticSolution = false
		g.SaidarPoints += g.Config.DiplomaticBonus
		g.Logf("Diplomatic Solution grants %d extra Saidar points.", g.Config.DiplomaticBonus)
	} else {
		g.Tracks.Teia++
		g.Logf("Teia advances to level %d.", g.Tracks.Teia)
	}
	g.Logf("%d Saidar point(s) to spend.", g.SaidarPoints)
}

func (g *Game) stepCleanup() GamePhase {
	g.hooks(func(owner int, a Ability) {
		if h, ok := a.(CleanupHook); ok {
			h.OnCleanup(g, owner)
		}
	})

	hand := g.Config.HandSize
	if g.HasEnhancement(EnhancementExtraDraw) {
		hand++
	}
	r := g.Rand()
	for _, p := range g.Players {
		p.DiscardPile = append(p.DiscardPile, p.Revealed...)
		p.Revealed = nil
		for len(p.Hand) < hand {
			card, draw, discard, err := DrawWithReshuffle(r, p.DrawPile, p.DiscardPile)
			if err != nil {
				break
			}
			p.DrawPile, p.DiscardPile = draw, discard
			p.Hand = append(p.Hand, card)
		}
		p.Standing = false
		p.Score = 0
		for _, u := range p.Abilities {
			u.UsedThisRound = false
			u.Target = nil
		}
	}

	if g.ActiveMadness != nil {
		g.MadnessDiscard = append(g.MadnessDiscard, *g.ActiveMadness)
		g.ActiveMadness = nil
	}
	g.Flags.MadnessNullified = false
	g.SaidarPoints = 0

	g.Round++
	g.RoundLeader = (g.RoundLeader + 1) % len(g.Players)
	g.CurrentPlayer = g.RoundLeader

	if g.Round > g.Config.MaxRounds {
		g.Logf("Round %d has ended. Madness wins.", g.Config.MaxRounds)
		return g.finish(WinnerMadness)
	}
	return PhaseMentalState
}
