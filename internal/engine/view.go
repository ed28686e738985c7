package engine

// View is a snapshot annotated for one seat. Seat -1 is the shared table.
type View struct {
	*Game
	Seat             int         `json:"seat"`
	BustLimit        int         `json:"bust_limit"`
	CanReveal        bool        `json:"can_reveal"`
	CanStand         bool        `json:"can_stand"`
	CanEndTurn       bool        `json:"can_end_turn"`
	CanSpend         bool        `json:"can_spend"`
	CanDecline       bool        `json:"can_decline"`
	UsableAbilities  []AbilityID `json:"usable_abilities"`
	AwaitingCommands bool        `json:"awaiting_commands"`
}

// ViewFor returns the snapshot with the commands currently legal for seat.
func (g *Game) ViewFor(seat int) View {
	v := View{
		Game:             g,
		Seat:             seat,
		BustLimit:        g.BustLimit(),
		CanSpend:         g.Phase == PhaseSaidarTracks,
		CanDecline:       g.Phase == PhaseMadnessReaction,
		AwaitingCommands: g.Phase != PhaseGameOver,
	}
	if seat >= 0 && seat < len(g.Players) {
		p := g.Players[seat]
		turn := g.Phase == PhaseAjahTurns && g.CurrentPlayer == seat
		v.CanReveal = turn && !p.Standing && len(p.Revealed) == 0 && len(p.Hand) >= 2
		v.CanStand = turn && !p.Standing && len(p.Revealed) == 2 && len(p.Hand) >= 1
		v.CanEndTurn = turn && p.Done()
		v.UsableAbilities = g.UsableAbilities(seat)
	}
	return v
}

// UsableAbilities lists the active abilities seat may invoke now, judged by
// phase, turn and budget. Target validity is checked on use.
func (g *Game) UsableAbilities(seat int) []AbilityID {
	if seat < 0 || seat >= len(g.Players) || g.Abilities == nil || g.Phase == PhaseGameOver {
		return nil
	}
	var out []AbilityID
	g.ownerHooks(seat, func(a Ability) {
		if g.canUse(seat, a, g.Usage(seat, a.ID())) == nil {
			out = append(out, a.ID())
		}
	})
	return out
}
