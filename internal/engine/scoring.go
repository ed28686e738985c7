package engine

import (
	"fmt"
	"slices"
)

const (
	defaultBustLimit  = 9
	extendedBustLimit = 10
)

// ComputeScore sums cards, wrapping by the bust limit when the sum exceeds it.
// A sum of 11 against a limit of 9 scores 2.
func ComputeScore(cards []Card, bustLimit int) int {
	sum := sumValues(cards)
	if sum > bustLimit {
		return sum - bustLimit
	}
	return sum
}

// BustLimit returns the bust limit in force for a set of enhancements.
func BustLimit(enhancements []EnhancementID) int {
	if slices.Contains(enhancements, EnhancementBustLimit10) {
		return extendedBustLimit
	}
	return defaultBustLimit
}

// BustLimit returns the game's current bust limit.
func (g *Game) BustLimit() int {
	return BustLimit(g.Enhancements)
}

// TieredShieldReduction is the Vital Shield reduction for a Madness card value.
func TieredShieldReduction(madnessValue int) int {
	switch {
	case madnessValue <= 3:
		return 1
	case madnessValue <= 6:
		return 2
	default:
		return 4
	}
}

// HasEnhancement reports whether a permanent enhancement is unlocked.
func (g *Game) HasEnhancement(e EnhancementID) bool {
	return slices.Contains(g.Enhancements, e)
}

// Busted reports whether a player's revealed cards exceed the bust limit.
func (g *Game) Busted(p *Player) bool {
	return p.RevealedSum() > g.BustLimit()
}

func (g *Game) anyBust() bool {
	for _, p := range g.Players {
		if g.Busted(p) {
			return true
		}
	}
	return false
}

// rescore updates a player's score after a reveal. Distrust defers scoring to
// the end of AjahTurns.
func (g *Game) rescore(p *Player) {
	if g.RoundEffects[EffectDistrust] {
		return
	}
	p.Score = ComputeScore(p.Revealed, g.BustLimit())
}

func (g *Game) scoreText(p *Player) string {
	if g.RoundEffects[EffectDistrust] {
		return "hidden"
	}
	return fmt.Sprint(p.Score)
}

// checkEnhancement unlocks the active mental state's enhancement when its
// condition holds.
func (g *Game) checkEnhancement() {
	ms := g.ActiveMentalState
	if ms == nil || ms.Enhancement == EnhancementNone || ms.Enhancement == "" {
		return
	}
	var met bool
	switch ms.Condition {
	case ConditionNoBust:
		met = !g.anyBust()
	case ConditionAnyStanding:
		met = slices.ContainsFunc(g.Players, func(p *Player) bool { return p.Standing })
	case ConditionFlame3:
		met = g.Tracks.Chama >= 3
	default:
		met = true
	}
	if !met || g.HasEnhancement(ms.Enhancement) {
		return
	}
	g.Enhancements = append(g.Enhancements, ms.Enhancement)
	g.Logf("Permanent enhancement unlocked: %s", ms.EnhancementText)

	if ms.Enhancement == EnhancementFlameSetback && g.Tracks.Chama > 0 {
		g.Tracks.Chama--
		g.Logf("Chama falls to level %d.", g.Tracks.Chama)
	}
}

// RemoveEnhancement drops the enhancement at index i.
func (g *Game) RemoveEnhancement(i int) (EnhancementID, error) {
	if i < 0 || i >= len(g.Enhancements) {
		return EnhancementNone, fmt.Errorf("%w: enhancement %d", ErrInvalidTarget, i)
	}
	removed := g.Enhancements[i]
	g.Enhancements = slices.Delete(g.Enhancements, i, i+1)
	return removed, nil
}
