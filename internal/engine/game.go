package engine

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
)

var (
	ErrNotYourTurn        = errors.New("not your turn")
	ErrInvalidAction      = errors.New("invalid action")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrWrongPhase         = errors.New("wrong phase for this action")
	ErrAbilityUnavailable = errors.New("ability unavailable")
	ErrOverspend          = errors.New("not enough saidar points")
	ErrTrackBlocked       = errors.New("track blocked this round")
	ErrGameOver           = errors.New("game is over")
	ErrDeckExhausted      = errors.New("deck exhausted")
)

// Game is an immutable-per-command snapshot of the whole table.
type Game struct {
	Players   []*Player        `json:"players"`
	Config    GameConfig       `json:"-"`
	Abilities *AbilityRegistry `json:"-"`
	pcg       *rand.PCG

	Phase         GamePhase `json:"phase"`
	Winner        Winner    `json:"winner,omitempty"`
	Sanity        int       `json:"sanity"`
	Round         int       `json:"round"`
	RoundLeader   int       `json:"round_leader"`
	CurrentPlayer int       `json:"current_player"`

	Tracks       SaidarTracks `json:"saidar_tracks"`
	SaidarPoints int          `json:"saidar_points"`

	ActiveMentalState *MentalStateCard `json:"active_mental_state,omitempty"`
	ActiveMadness     *MadnessCard     `json:"active_madness,omitempty"`
	MadnessPreview    *MadnessCard     `json:"madness_preview,omitempty"`

	Enhancements []EnhancementID  `json:"permanent_enhancements"`
	RoundEffects map[EffectID]bool `json:"round_effects"`
	Flags        Flags             `json:"flags"`

	MadnessDeck    []MadnessCard     `json:"madness_deck"`
	MadnessDiscard []MadnessCard     `json:"madness_discard"`
	MentalDeck     []MentalStateCard `json:"mental_deck"`

	Log []string `json:"log"`
}

// NewGame creates a game waiting for start_game.
func NewGame(config GameConfig, abilities *AbilityRegistry) *Game {
	g := &Game{
		Config:       config,
		Abilities:    abilities,
		pcg:          rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15),
		Phase:        PhaseSetup,
		RoundEffects: make(map[EffectID]bool),
	}
	g.Logf("Welcome to Rand's Madness.")
	return g
}

// Rand returns a generator drawing from the snapshot's own random state.
func (g *Game) Rand() *rand.Rand {
	return rand.New(g.pcg)
}

// Clone returns a deep copy sharing only the config and ability registry.
func (g *Game) Clone() *Game {
	c := *g
	pcg := *g.pcg
	c.pcg = &pcg
	c.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		c.Players[i] = p.clone()
	}
	if g.ActiveMentalState != nil {
		ms := *g.ActiveMentalState
		c.ActiveMentalState = &ms
	}
	if g.ActiveMadness != nil {
		m := *g.ActiveMadness
		c.ActiveMadness = &m
	}
	if g.MadnessPreview != nil {
		m := *g.MadnessPreview
		c.MadnessPreview = &m
	}
	c.Enhancements = cloneSlice(g.Enhancements)
	c.RoundEffects = maps.Clone(g.RoundEffects)
	if c.RoundEffects == nil {
		c.RoundEffects = make(map[EffectID]bool)
	}
	c.MadnessDeck = cloneSlice(g.MadnessDeck)
	c.MadnessDiscard = cloneSlice(g.MadnessDiscard)
	c.MentalDeck = cloneSlice(g.MentalDeck)
	c.Log = cloneSlice(g.Log)
	return &c
}

// Apply is the single entry point for commands. It never mutates g: on success
// it returns the next snapshot; on rejection it returns a copy of g whose only
// change is a log entry explaining the error.
func (g *Game) Apply(cmd Command) (*Game, error) {
	next := g.Clone()
	if err := next.apply(cmd); err != nil {
		rejected := g.Clone()
		rejected.Logf("Rejected %s: %v.", cmd.Type, err)
		return rejected, err
	}
	return next, nil
}

func (g *Game) apply(cmd Command) error {
	if g.Phase == PhaseGameOver {
		return ErrGameOver
	}
	switch cmd.Type {
	case CommandStartGame:
		return g.applyStartGame(cmd)
	case CommandRevealCards:
		return g.applyReveal(cmd)
	case CommandStand:
		return g.applyStand(cmd)
	case CommandEndTurn:
		return g.applyEndTurn()
	case CommandSpendSaidar:
		return g.applySpendSaidar(cmd)
	case CommandUseAbility:
		return g.applyAbility(cmd)
	case CommandDeclineReaction:
		return g.applyDeclineReaction()
	default:
		return fmt.Errorf("%w: unknown command %q", ErrInvalidAction, cmd.Type)
	}
}

func (g *Game) applyStartGame(cmd Command) error {
	if g.Phase != PhaseSetup {
		return ErrWrongPhase
	}
	n := len(cmd.Ajahs)
	if n < g.Config.MinPlayers || n > len(AllAjahs()) {
		return fmt.Errorf("%w: %d players", ErrInvalidAction, n)
	}
	seen := make(map[Ajah]bool, n)
	for _, a := range cmd.Ajahs {
		if !a.Valid() {
			return fmt.Errorf("%w: unknown ajah %d", ErrInvalidAction, int(a))
		}
		if seen[a] {
			return fmt.Errorf("%w: ajah %s chosen twice", ErrInvalidAction, a)
		}
		if g.Config.Catalog.DeckSize(a) == 0 {
			return fmt.Errorf("%w: no deck for ajah %s", ErrInvalidAction, a)
		}
		seen[a] = true
	}

	r := g.Rand()
	g.Players = make([]*Player, n)
	for i, a := range cmd.Ajahs {
		p := NewPlayer(i, a, g.Config.StartingLife, g.Abilities)
		deck := Shuffle(r, g.Config.Catalog.Decks[a])
		hand := min(g.Config.HandSize, len(deck))
		p.Hand = deck[:hand:hand]
		p.DrawPile = cloneSlice(deck[hand:])
		g.Players[i] = p
	}

	g.Sanity = g.Config.SanityFor(n)
	g.Round = 1
	g.RoundLeader = 0
	g.CurrentPlayer = 0
	g.Tracks = SaidarTracks{Chama: 1, Escudo: 1, Calice: 1, Teia: 1}
	g.SaidarPoints = g.Config.SaidarPointsPerRound
	g.MadnessDeck = Shuffle(r, g.Config.Catalog.Madness)
	g.MadnessDiscard = nil
	g.MentalDeck = Shuffle(r, g.Config.Catalog.MentalStates)
	g.Phase = PhaseMentalState
	g.Logf("The game begins with %d players. Rand's sanity is %d.", n, g.Sanity)

	g.pump()
	return nil
}

// seat validates a player index and returns the player.
func (g *Game) seat(idx int) (*Player, error) {
	if idx < 0 || idx >= len(g.Players) {
		return nil, fmt.Errorf("%w: seat %d", ErrPlayerNotFound, idx)
	}
	return g.Players[idx], nil
}

// turnSeat validates that idx is the player holding the turn during AjahTurns.
func (g *Game) turnSeat(idx int) (*Player, error) {
	if g.Phase != PhaseAjahTurns {
		return nil, ErrWrongPhase
	}
	p, err := g.seat(idx)
	if err != nil {
		return nil, err
	}
	if g.CurrentPlayer != idx {
		return nil, ErrNotYourTurn
	}
	return p, nil
}

func (g *Game) applyReveal(cmd Command) error {
	p, err := g.turnSeat(cmd.Player)
	if err != nil {
		return err
	}
	if p.Standing || len(p.Revealed) > 0 {
		return fmt.Errorf("%w: %s already revealed this round", ErrInvalidAction, p.ID)
	}
	if err := validateIndices(cmd.Cards, len(p.Hand), 2); err != nil {
		return err
	}

	var revealed []Card
	p.Hand, revealed = removeIndices(p.Hand, cmd.Cards)
	p.Revealed = append(p.Revealed, revealed...)
	g.rescore(p)
	g.Logf("%s revealed %d card(s). Score: %s.", p.ID, len(revealed), g.scoreText(p))

	return g.declare(cmd.Player, cmd.Declarations)
}

func (g *Game) applyStand(cmd Command) error {
	p, err := g.turnSeat(cmd.Player)
	if err != nil {
		return err
	}
	if p.Standing {
		return fmt.Errorf("%w: %s is already standing", ErrInvalidAction, p.ID)
	}
	if len(p.Revealed) != 2 {
		return fmt.Errorf("%w: reveal 2 cards before standing", ErrInvalidAction)
	}
	if err := validateIndices(cmd.Cards, len(p.Hand), 1); err != nil {
		return err
	}

	firstToStand := true
	for _, other := range g.Players {
		if other.Standing {
			firstToStand = false
			break
		}
	}

	var revealed []Card
	p.Hand, revealed = removeIndices(p.Hand, cmd.Cards)
	p.Revealed = append(p.Revealed, revealed...)
	p.Standing = true
	g.rescore(p)
	g.Logf("%s revealed a third card and stands. Score: %s.", p.ID, g.scoreText(p))

	if firstToStand && g.RoundEffects[EffectHesitation] {
		g.applyHesitation(cmd.Player)
	}

	if err := g.declare(cmd.Player, cmd.Declarations); err != nil {
		return err
	}

	g.hooks(func(owner int, a Ability) {
		if h, ok := a.(StandHook); ok && g.Phase != PhaseGameOver {
			h.OnStand(g, owner, cmd.Player)
		}
	})
	return nil
}

func (g *Game) applyHesitation(seat int) {
	p := g.Players[seat]
	if g.guarded(seat, EffectHesitation) {
		return
	}
	if len(p.Hand) == 0 {
		return
	}
	idx := g.Rand().IntN(len(p.Hand))
	var discarded []Card
	p.Hand, discarded = removeIndices(p.Hand, []int{idx})
	p.DiscardPile = append(p.DiscardPile, discarded...)
	g.Logf("Hesitation: %s stood first and discarded a random card.", p.ID)
}

// guarded reports whether any ability shields seat from effect.
func (g *Game) guarded(seat int, effect EffectID) bool {
	guarded := false
	g.hooks(func(owner int, a Ability) {
		if guard, ok := a.(EffectGuard); ok && !guarded && guard.Guards(g, owner, seat, effect) {
			guarded = true
			g.Logf("%s: %s is protected from %s.", a.ID(), g.Players[seat].ID, effect)
		}
	})
	return guarded
}

// declare records passive-ability targets submitted alongside a reveal.
func (g *Game) declare(seat int, decls []Declaration) error {
	for _, d := range decls {
		if g.Players[seat].Abilities[d.Ability] == nil {
			return fmt.Errorf("%w: %s does not have %s", ErrAbilityUnavailable, g.Players[seat].ID, d.Ability)
		}
		a, err := g.Abilities.Get(d.Ability)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAbilityUnavailable, err)
		}
		decl, ok := a.(Declarer)
		if !ok {
			return fmt.Errorf("%w: %s takes no declaration", ErrInvalidAction, d.Ability)
		}
		if err := decl.Declare(g, seat, d.Options); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) applyEndTurn() error {
	if g.Phase != PhaseAjahTurns {
		return ErrWrongPhase
	}
	p := g.Players[g.CurrentPlayer]
	if !p.Done() {
		return fmt.Errorf("%w: %s must reveal before ending the turn", ErrInvalidAction, p.ID)
	}

	if next, ok := g.nextTurnSeat(g.CurrentPlayer); ok {
		g.CurrentPlayer = next
		g.Logf("Turn ended. Next: %s.", g.Players[next].ID)
		return nil
	}

	g.Logf("All Ajahs have played.")
	g.endAjahTurns()
	g.Phase = PhaseMadnessTurn
	g.pump()
	return nil
}

// endAjahTurns resolves the round effects that wait for every player to act.
func (g *Game) endAjahTurns() {
	if g.RoundEffects[EffectDistrust] {
		for _, p := range g.Players {
			p.Score = ComputeScore(p.Revealed, g.BustLimit())
			g.Logf("Distrust: %s scores %d.", p.ID, p.Score)
		}
	}
	if g.RoundEffects[EffectCalm] {
		if g.anyBust() {
			g.Logf("Deceptive Calm: someone busted, no recovery.")
		} else {
			g.Sanity += 5
			g.Logf("Deceptive Calm: nobody busted, Rand recovers 5 sanity (%d).", g.Sanity)
		}
	}
}

func (g *Game) applySpendSaidar(cmd Command) error {
	if g.Phase != PhaseSaidarTracks {
		return ErrWrongPhase
	}
	u := cmd.Upgrades
	if u.Chama < 0 || u.Escudo < 0 || u.Calice < 0 || u.Teia < 0 {
		return fmt.Errorf("%w: negative upgrade", ErrInvalidAction)
	}
	if u.Total() > g.SaidarPoints {
		return fmt.Errorf("%w: %d requested, %d available", ErrOverspend, u.Total(), g.SaidarPoints)
	}
	if u.Chama > 0 && g.RoundEffects[EffectFlameBlocked] {
		return fmt.Errorf("%w: chama", ErrTrackBlocked)
	}

	g.Tracks.Chama += u.Chama
	g.Tracks.Escudo += u.Escudo
	g.Tracks.Calice += u.Calice
	g.Tracks.Teia += u.Teia
	g.SaidarPoints -= u.Total()
	g.Logf("Tracks advanced: chama +%d, escudo +%d, calice +%d, teia +%d. %d point(s) left.",
		u.Chama, u.Escudo, u.Calice, u.Teia, g.SaidarPoints)

	if g.SaidarPoints == 0 {
		g.Phase = PhaseCleanup
		g.pump()
	}
	return nil
}

func (g *Game) applyAbility(cmd Command) error {
	p, err := g.seat(cmd.Player)
	if err != nil {
		return err
	}
	usage := p.Abilities[cmd.Ability]
	if usage == nil {
		return fmt.Errorf("%w: %s does not have %s", ErrAbilityUnavailable, p.ID, cmd.Ability)
	}
	a, err := g.Abilities.Get(cmd.Ability)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAbilityUnavailable, err)
	}
	if err := g.canUse(cmd.Player, a, usage); err != nil {
		return err
	}

	if err := a.Apply(g, cmd.Player, cmd.Options); err != nil {
		return err
	}
	consume(a, usage)
	g.pump()
	return nil
}

// canUse checks kind, phase, turn and budget legality of an active ability.
func (g *Game) canUse(seat int, a Ability, usage *AbilityUsage) error {
	if a.Kind() == KindPassive {
		return fmt.Errorf("%w: %s is passive", ErrInvalidAction, a.ID())
	}
	legal := false
	for _, ph := range a.Phases() {
		if ph == g.Phase {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%w: %s during %s", ErrWrongPhase, a.ID(), g.Phase)
	}
	if a.OwnTurn() && g.CurrentPlayer != seat {
		return ErrNotYourTurn
	}
	if !available(a, usage) {
		return fmt.Errorf("%w: %s already used", ErrAbilityUnavailable, a.ID())
	}
	return nil
}

func (g *Game) applyDeclineReaction() error {
	if g.Phase != PhaseMadnessReaction {
		return ErrWrongPhase
	}
	g.Logf("Reaction declined.")
	g.Phase = PhaseMadnessDamage
	g.pump()
	return nil
}

// finish ends the game and returns the terminal phase for the pump.
func (g *Game) finish(w Winner) GamePhase {
	g.Phase = PhaseGameOver
	g.Winner = w
	return PhaseGameOver
}

// HasEffect reports whether a round effect is active.
func (g *Game) HasEffect(e EffectID) bool {
	return g.RoundEffects[e]
}
