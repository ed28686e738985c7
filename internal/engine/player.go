package engine

import (
	"fmt"
	"sort"
)

// Player holds one seat's state.
type Player struct {
	ID          string                      `json:"id"`
	Ajah        Ajah                        `json:"ajah"`
	Life        int                         `json:"life"`
	Hand        []Card                      `json:"hand"`
	DrawPile    []Card                      `json:"draw_pile"`
	DiscardPile []Card                      `json:"discard_pile"`
	Revealed    []Card                      `json:"revealed"`
	Score       int                         `json:"score"`
	Standing    bool                        `json:"standing"`
	Shield      int                         `json:"shield"`
	SaidarBonus int                         `json:"saidar_bonus"` // paid out at the next Saidar phase
	Abilities   map[AbilityID]*AbilityUsage `json:"abilities"`
}

// NewPlayer seats an Ajah with its ability usage records.
func NewPlayer(seat int, ajah Ajah, life int, abilities *AbilityRegistry) *Player {
	p := &Player{
		ID:        fmt.Sprintf("Player %d", seat+1),
		Ajah:      ajah,
		Life:      life,
		Abilities: make(map[AbilityID]*AbilityUsage),
	}
	if abilities != nil {
		for _, a := range abilities.ForAjah(ajah) {
			p.Abilities[a.ID()] = &AbilityUsage{UsesLeft: a.Budget().InitialUses()}
		}
	}
	return p
}

// CardCount is the number of cards across all of the player's zones.
func (p *Player) CardCount() int {
	return len(p.Hand) + len(p.DrawPile) + len(p.DiscardPile) + len(p.Revealed)
}

// Done reports whether the player has finished acting for the round.
func (p *Player) Done() bool {
	if p.Standing || len(p.Revealed) >= 2 {
		return true
	}
	// Nothing left to reveal.
	return len(p.Revealed) == 0 && len(p.Hand) < 2
}

// RevealedSum is the raw sum of revealed card values.
func (p *Player) RevealedSum() int {
	return sumValues(p.Revealed)
}

func (p *Player) clone() *Player {
	c := *p
	c.Hand = cloneSlice(p.Hand)
	c.DrawPile = cloneSlice(p.DrawPile)
	c.DiscardPile = cloneSlice(p.DiscardPile)
	c.Revealed = cloneSlice(p.Revealed)
	c.Abilities = make(map[AbilityID]*AbilityUsage, len(p.Abilities))
	for id, u := range p.Abilities {
		cu := *u
		c.Abilities[id] = &cu
	}
	return &c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// validateIndices checks that indices are exactly want distinct positions in [0,n).
func validateIndices(indices []int, n, want int) error {
	if len(indices) != want {
		return fmt.Errorf("%w: expected %d card indices, got %d", ErrInvalidAction, want, len(indices))
	}
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: card index %d out of range", ErrInvalidAction, idx)
		}
		if seen[idx] {
			return fmt.Errorf("%w: duplicate card index %d", ErrInvalidAction, idx)
		}
		seen[idx] = true
	}
	return nil
}

func sortedDesc(indices []int) []int {
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted
}
