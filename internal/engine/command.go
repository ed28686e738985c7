package engine

// CommandType identifies commands sent to Game.Apply.
type CommandType string

const (
	CommandStartGame       CommandType = "start_game"
	CommandRevealCards     CommandType = "reveal_cards"
	CommandStand           CommandType = "stand"
	CommandEndTurn         CommandType = "end_turn"
	CommandSpendSaidar     CommandType = "spend_saidar"
	CommandUseAbility      CommandType = "use_ability"
	CommandDeclineReaction CommandType = "decline_reaction"
)

// Command is one externally submitted action.
type Command struct {
	Type CommandType `json:"type"`
	// Params depend on Type:
	// start_game: Ajahs
	// reveal_cards: Player, Cards (2), Declarations
	// stand: Player, Cards (1), Declarations
	// spend_saidar: Upgrades
	// use_ability: Player, Ability, Options
	Player       int            `json:"player"`
	Ajahs        []Ajah         `json:"ajahs,omitempty"`
	Cards        []int          `json:"cards,omitempty"`
	Declarations []Declaration  `json:"declarations,omitempty"`
	Upgrades     SaidarUpgrades `json:"upgrades"`
	Ability      AbilityID      `json:"ability,omitempty"`
	Options      AbilityOptions `json:"options"`
}

func StartGame(ajahs ...Ajah) Command {
	return Command{Type: CommandStartGame, Ajahs: ajahs}
}

func RevealCards(player int, cards ...int) Command {
	return Command{Type: CommandRevealCards, Player: player, Cards: cards}
}

func Stand(player, card int) Command {
	return Command{Type: CommandStand, Player: player, Cards: []int{card}}
}

func EndTurn() Command {
	return Command{Type: CommandEndTurn}
}

func SpendSaidar(u SaidarUpgrades) Command {
	return Command{Type: CommandSpendSaidar, Upgrades: u}
}

func UseAbility(player int, id AbilityID, opts AbilityOptions) Command {
	return Command{Type: CommandUseAbility, Player: player, Ability: id, Options: opts}
}

func DeclineReaction() Command {
	return Command{Type: CommandDeclineReaction}
}

// With attaches passive-ability declarations to a reveal or stand command.
func (c Command) With(decls ...Declaration) Command {
	c.Declarations = append(cloneSlice(c.Declarations), decls...)
	return c
}
