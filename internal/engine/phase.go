package engine

// GamePhase represents the current phase of the round state machine.
type GamePhase int

const (
	PhaseSetup           GamePhase = iota // waiting for start_game
	PhaseMentalState                      // draw the round's mental state
	PhaseAjahTurns                        // players reveal/stand in seat order
	PhaseMadnessTurn                      // draw the madness card
	PhaseMadnessReaction                  // a reaction ability may fire
	PhaseMadnessDamage                    // resolve madness damage
	PhaseSanityDamage                     // resolve sanity damage, unlock enhancements
	PhaseSaidarTracks                     // spend Saidar points
	PhaseCleanup                          // end-of-round housekeeping
	PhaseGameOver                         // terminal
)

var phaseNames = map[GamePhase]string{
	PhaseSetup:           "Setup",
	PhaseMentalState:     "MentalState",
	PhaseAjahTurns:       "AjahTurns",
	PhaseMadnessTurn:     "MadnessTurn",
	PhaseMadnessReaction: "MadnessReaction",
	PhaseMadnessDamage:   "MadnessDamage",
	PhaseSanityDamage:    "SanityDamage",
	PhaseSaidarTracks:    "SaidarTracks",
	PhaseCleanup:         "Cleanup",
	PhaseGameOver:        "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

func (p GamePhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// WaitsForInput reports whether the pump stops at this phase.
func (p GamePhase) WaitsForInput() bool {
	switch p {
	case PhaseSetup, PhaseAjahTurns, PhaseMadnessReaction, PhaseSaidarTracks, PhaseGameOver:
		return true
	default:
		return false
	}
}

// Winner tags the side that won a finished game.
type Winner string

const (
	WinnerNone    Winner = ""
	WinnerPlayers Winner = "players"
	WinnerMadness Winner = "madness"
)
