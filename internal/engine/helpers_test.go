package engine_test

import (
	"errors"
	"slices"
	"testing"

	"loucura/internal/engine"
	"loucura/internal/engine/abilities"
)

func newRegistry() *engine.AbilityRegistry {
	return abilities.NewRegistry()
}

// quietCard is a mental state with no effect, enhancement or special targeting.
func quietCard() engine.MentalStateCard {
	return engine.MentalStateCard{
		ID:          "Quiet",
		Level:       1,
		Effect:      engine.EffectNone,
		Enhancement: engine.EnhancementNone,
		Condition:   engine.ConditionNone,
		Damage:      engine.DamageDefault,
	}
}

// quietConfig uses n quiet mental states and a madness deck of the given values.
func quietConfig(seed uint64, mentalStates int, madness ...int) engine.GameConfig {
	cfg := engine.DefaultConfig()
	cfg.Seed = seed
	cfg.Catalog.MentalStates = nil
	for i := 0; i < mentalStates; i++ {
		cfg.Catalog.MentalStates = append(cfg.Catalog.MentalStates, quietCard())
	}
	cfg.Catalog.Madness = nil
	for _, v := range madness {
		cfg.Catalog.Madness = append(cfg.Catalog.Madness, engine.MadnessCard{Value: v})
	}
	return cfg
}

func startGame(t *testing.T, cfg engine.GameConfig, ajahs ...engine.Ajah) *engine.Game {
	t.Helper()
	return mustApply(t, engine.NewGame(cfg, newRegistry()), engine.StartGame(ajahs...))
}

func mustApply(t *testing.T, g *engine.Game, cmd engine.Command) *engine.Game {
	t.Helper()
	next, err := g.Apply(cmd)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", cmd.Type, err)
	}
	return next
}

func mustReject(t *testing.T, g *engine.Game, cmd engine.Command, want error) *engine.Game {
	t.Helper()
	next, err := g.Apply(cmd)
	if !errors.Is(err, want) {
		t.Fatalf("%s: expected %v, got %v", cmd.Type, want, err)
	}
	return next
}

// setHand arranges a player's cards so the hand holds exactly values, in
// order, and everything else sits in the draw pile.
func setHand(t *testing.T, g *engine.Game, seat int, values ...int) {
	t.Helper()
	p := g.Players[seat]
	pool := slices.Concat(p.Hand, p.DrawPile, p.DiscardPile)
	var hand []engine.Card
	for _, v := range values {
		i := slices.IndexFunc(pool, func(c engine.Card) bool { return c.Value == v })
		if i < 0 {
			t.Fatalf("%s has no card of value %d", p.ID, v)
		}
		hand = append(hand, pool[i])
		pool = slices.Delete(pool, i, i+1)
	}
	p.Hand = hand
	p.DrawPile = pool
	p.DiscardPile = nil
}

func checkZones(t *testing.T, g *engine.Game) {
	t.Helper()
	for _, p := range g.Players {
		if want := g.Config.Catalog.DeckSize(p.Ajah); p.CardCount() != want {
			t.Fatalf("%s holds %d cards across zones, want %d", p.ID, p.CardCount(), want)
		}
	}
}

// autoCommand picks a legal command so a game can be played to the end.
// Even seats stand after revealing, odd seats end their turn.
func autoCommand(g *engine.Game) engine.Command {
	switch g.Phase {
	case engine.PhaseAjahTurns:
		cur := g.CurrentPlayer
		p := g.Players[cur]
		switch {
		case len(p.Revealed) == 0 && len(p.Hand) >= 2:
			return engine.RevealCards(cur, 0, 1)
		case len(p.Revealed) == 2 && !p.Standing && len(p.Hand) > 0 && cur%2 == 0:
			return engine.Stand(cur, 0)
		default:
			return engine.EndTurn()
		}
	case engine.PhaseMadnessReaction:
		return engine.DeclineReaction()
	case engine.PhaseSaidarTracks:
		return engine.SpendSaidar(engine.SaidarUpgrades{Escudo: g.SaidarPoints})
	default:
		return engine.EndTurn()
	}
}

// playRound reveals cards 0 and 1 for every seat, ends every turn and stops at
// the next input phase after AjahTurns.
func playRound(t *testing.T, g *engine.Game) *engine.Game {
	t.Helper()
	for g.Phase == engine.PhaseAjahTurns {
		p := g.Players[g.CurrentPlayer]
		if len(p.Revealed) == 0 && len(p.Hand) >= 2 {
			g = mustApply(t, g, engine.RevealCards(g.CurrentPlayer, 0, 1))
		}
		g = mustApply(t, g, engine.EndTurn())
	}
	return g
}
