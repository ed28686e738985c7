package protocol

// Message types: Server → Client
const (
	MsgGameState = "game_state"
	MsgError     = "error"
	MsgWelcome   = "welcome"
)

// Message types: Client → Server.
// In-game commands use the same names as engine CommandType.
const (
	MsgStartGame       = "start_game"
	MsgRevealCards     = "reveal_cards"
	MsgStand           = "stand"
	MsgEndTurn         = "end_turn"
	MsgSpendSaidar     = "spend_saidar"
	MsgUseAbility      = "use_ability"
	MsgDeclineReaction = "decline_reaction"
)

// Welcome is sent once to a client after it connects.
type Welcome struct {
	TableID  string `json:"table_id"`
	ClientID string `json:"client_id"`
	Seat     int    `json:"seat"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
	Command string `json:"command,omitempty"`
}
