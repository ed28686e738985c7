package engine

// GameConfig holds the rule constants and card data for a new game.
type GameConfig struct {
	Catalog Catalog

	StartingLife         int // also the healing cap
	HandSize             int
	MaxRounds            int
	BaseSanity           int // see SanityFor
	SanityPerExtraPlayer int
	SaidarPointsPerRound int
	DiplomaticBonus      int
	LogLimit             int
	MinPlayers           int

	Seed uint64 // seeds the game's PCG; equal seeds replay identically
}

func DefaultConfig() GameConfig {
	return GameConfig{
		Catalog:              DefaultCatalog(),
		StartingLife:         40,
		HandSize:             4,
		MaxRounds:            10,
		BaseSanity:           50,
		SanityPerExtraPlayer: 20,
		SaidarPointsPerRound: 2,
		DiplomaticBonus:      4,
		LogLimit:             20,
		MinPlayers:           2,
	}
}

// SanityFor returns Rand's starting sanity for n players.
func (c GameConfig) SanityFor(n int) int {
	return c.BaseSanity + (n-1)*c.SanityPerExtraPlayer
}
