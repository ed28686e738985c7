package abilities_test

import (
	"errors"
	"slices"
	"testing"

	"loucura/internal/engine"
	"loucura/internal/engine/abilities"
)

func neutralCard() engine.MentalStateCard {
	return engine.MentalStateCard{
		ID:          "Neutral",
		Effect:      engine.EffectNone,
		Enhancement: engine.EnhancementNone,
		Condition:   engine.ConditionNone,
		Damage:      engine.DamageDefault,
	}
}

func config(mental []engine.MentalStateCard, madness ...int) engine.GameConfig {
	cfg := engine.DefaultConfig()
	cfg.Seed = 99
	cfg.Catalog.MentalStates = mental
	cfg.Catalog.Madness = nil
	for _, v := range madness {
		cfg.Catalog.Madness = append(cfg.Catalog.Madness, engine.MadnessCard{Value: v})
	}
	return cfg
}

func neutral(n int) []engine.MentalStateCard {
	out := make([]engine.MentalStateCard, n)
	for i := range out {
		out[i] = neutralCard()
	}
	return out
}

func start(t *testing.T, cfg engine.GameConfig, ajahs ...engine.Ajah) *engine.Game {
	t.Helper()
	return mustApply(t, engine.NewGame(cfg, abilities.NewRegistry()), engine.StartGame(ajahs...))
}

func mustApply(t *testing.T, g *engine.Game, cmd engine.Command) *engine.Game {
	t.Helper()
	next, err := g.Apply(cmd)
	if err != nil {
		t.Fatalf("%s %s: unexpected error: %v", cmd.Type, cmd.Ability, err)
	}
	return next
}

func mustReject(t *testing.T, g *engine.Game, cmd engine.Command, want error) {
	t.Helper()
	if _, err := g.Apply(cmd); !errors.Is(err, want) {
		t.Fatalf("%s %s: expected %v, got %v", cmd.Type, cmd.Ability, want, err)
	}
}

func use(seat int, id engine.AbilityID, target int) engine.Command {
	return engine.UseAbility(seat, id, engine.AbilityOptions{TargetIndex: target})
}

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
	p.Hand, p.DrawPile, p.DiscardPile = hand, pool, nil
}

// playRound reveals two cards per seat and ends every turn.
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

func checkZones(t *testing.T, g *engine.Game) {
	t.Helper()
	for _, p := range g.Players {
		if p.CardCount() != g.Config.Catalog.DeckSize(p.Ajah) {
			t.Fatalf("%s holds %d cards", p.ID, p.CardCount())
		}
	}
}

func TestRegistry(t *testing.T) {
	r := abilities.NewRegistry()
	for _, id := range engine.AllAbilityIDs() {
		if _, err := r.Get(id); err != nil {
			t.Errorf("ability %s not registered: %v", id, err)
		}
	}
	for _, a := range engine.AllAjahs() {
		if len(r.ForAjah(a)) == 0 {
			t.Errorf("%s has no abilities", a)
		}
	}
	if err := r.Register(abilities.HealingTouch{}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestPlayersReceiveTheirAbilities(t *testing.T) {
	g := start(t, config(neutral(3), 4), engine.AjahGray, engine.AjahRed)
	gray := g.Players[0].Abilities
	if len(gray) != 2 || gray[engine.AbilityFutureInfluence].UsesLeft != 1 {
		t.Fatalf("unexpected gray abilities: %+v", gray)
	}
	if u := g.Players[1].Abilities[engine.AbilityRetaliationShield]; u == nil || u.UsesLeft != engine.Unbounded {
		t.Fatalf("expected an unbounded retaliation shield, got %+v", u)
	}
}

func TestAbilityLegality(t *testing.T) {
	g := start(t, config(neutral(3), 4), engine.AjahYellow, engine.AjahRed)
	mustReject(t, g, use(0, engine.AbilityVitalShield, 0), engine.ErrInvalidAction)
	mustReject(t, g, use(0, engine.AbilityTotalRepression, 0), engine.ErrAbilityUnavailable)
	mustReject(t, g, use(1, engine.AbilityTotalRepression, 0), engine.ErrWrongPhase)
	mustReject(t, g, use(0, engine.AbilityHealingTouch, 7), engine.ErrInvalidTarget)
	mustReject(t, g, use(5, engine.AbilityHealingTouch, 0), engine.ErrPlayerNotFound)
}

func TestHealingTouch(t *testing.T) {
	g := start(t, config(neutral(3), 4), engine.AjahYellow, engine.AjahGray)
	g.Players[1].Life = 30
	g = mustApply(t, g, use(0, engine.AbilityHealingTouch, 1))
	if g.Players[1].Life != 33 {
		t.Fatalf("expected 33 life, got %d", g.Players[1].Life)
	}
	if !g.Usage(0, engine.AbilityHealingTouch).UsedThisRound {
		t.Fatal("expected the round budget to be spent")
	}
	mustReject(t, g, use(0, engine.AbilityHealingTouch, 1), engine.ErrAbilityUnavailable)

	g = start(t, config(neutral(3), 4), engine.AjahYellow, engine.AjahGray)
	g.Players[0].Life = 39
	g = mustApply(t, g, use(0, engine.AbilityHealingTouch, 0))
	if g.Players[0].Life != 40 {
		t.Fatalf("healing must cap at 40, got %d", g.Players[0].Life)
	}
}

func TestOncePerRoundResetsAtCleanup(t *testing.T) {
	g := start(t, config(neutral(3), 4, 4), engine.AjahYellow, engine.AjahGray)
	g = mustApply(t, g, use(0, engine.AbilityHealingTouch, 1))
	g = playRound(t, g)
	g = mustApply(t, g, engine.SpendSaidar(engine.SaidarUpgrades{Escudo: g.SaidarPoints}))
	if g.Usage(0, engine.AbilityHealingTouch).UsedThisRound {
		t.Fatal("expected the round budget to reset")
	}
	mustApply(t, g, use(0, engine.AbilityHealingTouch, 1))
}

func TestTotalRepression(t *testing.T) {
	g := playRound(t, start(t, config(neutral(3), 9, 9), engine.AjahRed, engine.AjahGray))
	if g.Phase != engine.PhaseMadnessReaction {
		t.Fatalf("expected MadnessReaction, got %s", g.Phase)
	}
	g = mustApply(t, g, use(0, engine.AbilityTotalRepression, 0))
	if g.Phase != engine.PhaseSaidarTracks {
		t.Fatalf("expected the pump to reach SaidarTracks, got %s", g.Phase)
	}
	for _, p := range g.Players {
		if p.Life != 40 {
			t.Fatalf("%s took damage from a repressed card: %d", p.ID, p.Life)
		}
	}
	if g.Usage(0, engine.AbilityTotalRepression).UsesLeft != 0 {
		t.Fatal("expected the single use to be spent")
	}

	g = mustApply(t, g, engine.SpendSaidar(engine.SaidarUpgrades{Escudo: g.SaidarPoints}))
	if g.Flags.MadnessNullified {
		t.Fatal("nullification must not outlive the round")
	}
	g = playRound(t, g)
	if g.Phase != engine.PhaseSaidarTracks {
		t.Fatalf("no reaction is left, expected SaidarTracks, got %s", g.Phase)
	}
}

func TestDeclineReaction(t *testing.T) {
	g := playRound(t, start(t, config(neutral(3), 9), engine.AjahRed, engine.AjahGray))
	g = mustApply(t, g, engine.DeclineReaction())
	if g.Players[1].Life != 31 {
		t.Fatalf("expected full damage after declining, got %d", g.Players[1].Life)
	}
}

func TestSubtleIntrigue(t *testing.T) {
	fury := neutralCard()
	fury.Effect = engine.EffectFury
	g := start(t, config([]engine.MentalStateCard{fury, fury}, 3, 3), engine.AjahBlue, engine.AjahGray)
	if !g.RoundEffects[engine.EffectFury] {
		t.Fatal("expected fury in round 1")
	}

	g = mustApply(t, g, use(0, engine.AbilitySubtleIntrigue, 0))
	if !g.Flags.MentalStateNullified {
		t.Fatal("expected the nullify flag")
	}
	g = playRound(t, g)
	g = mustApply(t, g, engine.SpendSaidar(engine.SaidarUpgrades{Escudo: g.SaidarPoints}))

	if g.ActiveMentalState.Effect != engine.EffectFury {
		t.Fatalf("expected the fury card in round 2, got %s", g.ActiveMentalState.ID)
	}
	if g.RoundEffects[engine.EffectFury] || g.Flags.MentalStateNullified {
		t.Fatal("expected the fury effect to be nullified and the flag cleared")
	}
}

func TestSubtleIntrigueUsableByAnySeat(t *testing.T) {
	g := start(t, config(neutral(3), 3), engine.AjahGray, engine.AjahBlue)
	mustApply(t, g, use(1, engine.AbilitySubtleIntrigue, 0))
}

func TestVigilantGuardian(t *testing.T) {
	g := start(t, config(neutral(3), 7), engine.AjahGreen, engine.AjahGray, engine.AjahBlue)
	mustReject(t, g, use(0, engine.AbilityVigilantGuardian, 0), engine.ErrInvalidTarget)

	g = mustApply(t, g, use(0, engine.AbilityVigilantGuardian, 2))
	g = playRound(t, g)
	want := []int{36, 33, 37}
	for i, p := range g.Players {
		if p.Life != want[i] {
			t.Errorf("%s: life %d, want %d", p.ID, p.Life, want[i])
		}
	}
}

func TestVigilantGuardianNeedsOwnTurn(t *testing.T) {
	g := start(t, config(neutral(3), 7), engine.AjahGray, engine.AjahGreen)
	mustReject(t, g, use(1, engine.AbilityVigilantGuardian, 0), engine.ErrNotYourTurn)
}

func TestBattleTacticsDeclaration(t *testing.T) {
	g := start(t, config(neutral(3), 2), engine.AjahGreen, engine.AjahGray)
	setHand(t, g, 0, 1, 3, 5, 7)
	setHand(t, g, 1, 2, 4, 0, 6)

	mustReject(t, g, engine.RevealCards(0, 0, 1).With(engine.Declaration{
		Ability: engine.AbilityBattleTactics, Options: engine.AbilityOptions{TargetIndex: 0},
	}), engine.ErrInvalidTarget)

	g = mustApply(t, g, engine.RevealCards(0, 0, 1).With(engine.Declaration{
		Ability: engine.AbilityBattleTactics, Options: engine.AbilityOptions{TargetIndex: 1},
	}))
	g = mustApply(t, g, engine.EndTurn())
	g = mustApply(t, g, engine.RevealCards(1, 0, 1))
	g = mustApply(t, g, engine.EndTurn())

	// 4 + 2 for green, 6 + 2 for gray.
	if g.Sanity != 70-14 {
		t.Fatalf("expected sanity 56, got %d", g.Sanity)
	}
}

func TestFutureInfluence(t *testing.T) {
	g := start(t, config(neutral(3), 2), engine.AjahGray, engine.AjahBlue)
	mustReject(t, g, engine.UseAbility(0, engine.AbilityFutureInfluence, engine.AbilityOptions{EnhancementIndex: 0}), engine.ErrInvalidTarget)

	g.Enhancements = []engine.EnhancementID{engine.EnhancementExtraDraw, engine.EnhancementBustLimit10}
	g = mustApply(t, g, engine.UseAbility(0, engine.AbilityFutureInfluence, engine.AbilityOptions{EnhancementIndex: 0}))
	if !slices.Equal(g.Enhancements, []engine.EnhancementID{engine.EnhancementBustLimit10}) {
		t.Fatalf("unexpected enhancements %v", g.Enhancements)
	}
	mustReject(t, g, engine.UseAbility(0, engine.AbilityFutureInfluence, engine.AbilityOptions{}), engine.ErrAbilityUnavailable)
}

func TestDiplomaticSolution(t *testing.T) {
	g := start(t, config(neutral(3), 2), engine.AjahGray, engine.AjahBlue)
	g = mustApply(t, g, use(0, engine.AbilityDiplomaticSolution, 0))
	g = playRound(t, g)
	if g.SaidarPoints != 6 || g.Tracks.Teia != 1 {
		t.Fatalf("expected 6 points and teia 1, got %d and %d", g.SaidarPoints, g.Tracks.Teia)
	}
	if g.Flags.DiplomaticSolution {
		t.Fatal("expected the flag to be consumed")
	}
}

func TestCorruptedWord(t *testing.T) {
	g := start(t, config(neutral(3), 2), engine.AjahBlack, engine.AjahGray)
	mustReject(t, g, use(0, engine.AbilityCorruptedWord, 0), engine.ErrInvalidTarget)

	g = mustApply(t, g, use(0, engine.AbilityCorruptedWord, 1))
	g = mustApply(t, g, engine.RevealCards(0, 0, 1))
	g = mustApply(t, g, engine.EndTurn())
	g = mustApply(t, g, engine.RevealCards(1, 0, 1))
	g = mustApply(t, g, engine.Stand(1, 0))

	gray := g.Players[1]
	if gray.Life != 33 || gray.SaidarBonus != 1 {
		t.Fatalf("expected 33 life and 1 saidar bonus, got %d and %d", gray.Life, gray.SaidarBonus)
	}

	g = mustApply(t, g, engine.EndTurn())
	if g.SaidarPoints != 3 || g.Players[1].SaidarBonus != 0 {
		t.Fatalf("expected the bonus to be paid out, got %d points", g.SaidarPoints)
	}
}

func TestCorruptedWordUsesShield(t *testing.T) {
	g := start(t, config(neutral(3), 2), engine.AjahBlack, engine.AjahGray)
	g.Players[1].Shield = 4
	g = mustApply(t, g, use(0, engine.AbilityCorruptedWord, 1))
	g = mustApply(t, g, engine.RevealCards(0, 0, 1))
	g = mustApply(t, g, engine.EndTurn())
	g = mustApply(t, g, engine.RevealCards(1, 0, 1))
	g = mustApply(t, g, engine.Stand(1, 0))
	if g.Players[1].Shield != 0 || g.Players[1].Life != 37 {
		t.Fatalf("expected shield to absorb 4, got shield %d life %d", g.Players[1].Shield, g.Players[1].Life)
	}
}

func TestDarkOffering(t *testing.T) {
	g := start(t, config(neutral(3), 2), engine.AjahGray, engine.AjahBlack)
	g = mustApply(t, g, use(1, engine.AbilityDarkOffering, 0))
	if g.Players[1].Life != 30 || !g.Flags.MentalStateNullified {
		t.Fatalf("expected 30 life and a pending nullify, got %d", g.Players[1].Life)
	}

	g = start(t, config(neutral(3), 2), engine.AjahGray, engine.AjahBlack)
	g.Players[1].Life = 10
	g = mustApply(t, g, use(1, engine.AbilityDarkOffering, 0))
	if g.Phase != engine.PhaseGameOver || g.Winner != engine.WinnerMadness {
		t.Fatalf("expected the sacrifice to end the game, got %s", g.Phase)
	}
}

func TestConcentratedStudy(t *testing.T) {
	g := start(t, config(neutral(3), 2), engine.AjahBrown, engine.AjahGray)
	mustReject(t, g, engine.UseAbility(0, engine.AbilityConcentratedStudy, engine.AbilityOptions{}), engine.ErrInvalidAction)
	mustReject(t, g, engine.UseAbility(0, engine.AbilityConcentratedStudy, engine.AbilityOptions{CardIndices: []int{0, 1, 2}}), engine.ErrInvalidAction)

	g = mustApply(t, g, engine.UseAbility(0, engine.AbilityConcentratedStudy, engine.AbilityOptions{CardIndices: []int{0, 2}}))
	if len(g.Players[0].Hand) != 4 || len(g.Players[0].DiscardPile) != 2 {
		t.Fatalf("expected 4 in hand and 2 discarded, got %d and %d", len(g.Players[0].Hand), len(g.Players[0].DiscardPile))
	}
	checkZones(t, g)

	g = start(t, config(neutral(3), 2), engine.AjahBrown, engine.AjahGray)
	g = mustApply(t, g, engine.RevealCards(0, 0, 1))
	mustReject(t, g, engine.UseAbility(0, engine.AbilityConcentratedStudy, engine.AbilityOptions{CardIndices: []int{0}}), engine.ErrInvalidAction)
}

func TestMentalArchive(t *testing.T) {
	g := start(t, config(neutral(3), 2, 2), engine.AjahBrown, engine.AjahGray)
	setHand(t, g, 0, 5, 6, 0, 1)

	archive := func(v int) engine.Declaration {
		return engine.Declaration{Ability: engine.AbilityMentalArchive, Options: engine.AbilityOptions{CardValue: v}}
	}
	mustReject(t, g, engine.RevealCards(0, 0, 1).With(archive(8)), engine.ErrInvalidTarget)
	g = mustApply(t, g, engine.RevealCards(0, 0, 1).With(archive(5)))

	g = playRound(t, g)
	g = mustApply(t, g, engine.SpendSaidar(engine.SaidarUpgrades{Escudo: g.SaidarPoints}))

	brown := g.Players[0]
	if !slices.ContainsFunc(brown.Hand, func(c engine.Card) bool { return c.Value == 5 }) {
		t.Fatalf("expected the archived 5 to be drawn again, hand %v", brown.Hand)
	}
	if len(brown.DiscardPile) != 1 || brown.DiscardPile[0].Value != 6 {
		t.Fatalf("expected only the 6 discarded, got %v", brown.DiscardPile)
	}
	if g.Usage(0, engine.AbilityMentalArchive).Target != nil {
		t.Fatal("expected the archive target to be cleared")
	}
	checkZones(t, g)
}

func TestMentalBarrierBlocksHesitation(t *testing.T) {
	hesitation := neutralCard()
	hesitation.Effect = engine.EffectHesitation
	g := start(t, config([]engine.MentalStateCard{hesitation}, 2), engine.AjahWhite, engine.AjahGray)

	g = mustApply(t, g, use(0, engine.AbilityMentalBarrier, 0))
	g = mustApply(t, g, engine.RevealCards(0, 0, 1))
	g = mustApply(t, g, engine.Stand(0, 0))
	if len(g.Players[0].Hand) != 1 || len(g.Players[0].DiscardPile) != 0 {
		t.Fatalf("expected the barrier to prevent the discard, hand %d", len(g.Players[0].Hand))
	}
}

func TestPiercingGaze(t *testing.T) {
	g := start(t, config(neutral(3), 3, 8, 5), engine.AjahBlue, engine.AjahGray)
	if g.MadnessPreview == nil {
		t.Fatal("expected a madness preview")
	}
	preview := g.MadnessPreview.Value
	g = playRound(t, g)
	if g.ActiveMadness == nil || g.ActiveMadness.Value != preview {
		t.Fatalf("expected the previewed %d to be drawn", preview)
	}
}

func TestPiercingGazeAfterReshuffle(t *testing.T) {
	g := playRound(t, start(t, config(neutral(3), 6), engine.AjahBlue, engine.AjahGray))
	g = mustApply(t, g, engine.SpendSaidar(engine.SaidarUpgrades{Escudo: g.SaidarPoints}))
	if g.MadnessPreview == nil || g.MadnessPreview.Value != 6 {
		t.Fatal("expected the reshuffled card to be previewed")
	}
}

func TestUsableAbilities(t *testing.T) {
	g := start(t, config(neutral(3), 2), engine.AjahBlack, engine.AjahGray)
	black := g.ViewFor(0)
	if !black.CanReveal || !slices.Contains(black.UsableAbilities, engine.AbilityCorruptedWord) {
		t.Fatalf("unexpected view for seat 0: %+v", black.UsableAbilities)
	}
	gray := g.ViewFor(1)
	if gray.CanReveal {
		t.Fatal("seat 1 should wait for its turn")
	}
	if slices.Contains(gray.UsableAbilities, engine.AbilityFutureInfluence) ||
		!slices.Contains(gray.UsableAbilities, engine.AbilityDiplomaticSolution) {
		t.Fatalf("unexpected abilities for seat 1: %v", gray.UsableAbilities)
	}
}
