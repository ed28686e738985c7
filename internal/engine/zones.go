package engine

import "fmt"

// DiscardAndDraw moves the hand cards at indices to the discard pile and draws
// as many replacements. Drawing stops early if both piles run out.
func (g *Game) DiscardAndDraw(seat int, indices []int) (int, error) {
	p, err := g.seat(seat)
	if err != nil {
		return 0, err
	}
	if len(indices) == 0 {
		return 0, fmt.Errorf("%w: no cards chosen", ErrInvalidAction)
	}
	if err := validateIndices(indices, len(p.Hand), len(indices)); err != nil {
		return 0, err
	}

	var discarded []Card
	p.Hand, discarded = removeIndices(p.Hand, indices)
	p.DiscardPile = append(p.DiscardPile, discarded...)

	r := g.Rand()
	drawn := 0
	for range discarded {
		card, draw, discard, err := DrawWithReshuffle(r, p.DrawPile, p.DiscardPile)
		if err != nil {
			break
		}
		p.DrawPile, p.DiscardPile = draw, discard
		p.Hand = append(p.Hand, card)
		drawn++
	}
	return drawn, nil
}

// HasRevealedValue reports whether seat has a revealed card of value.
func (g *Game) HasRevealedValue(seat, value int) bool {
	for _, c := range g.Players[seat].Revealed {
		if c.Value == value {
			return true
		}
	}
	return false
}

// ReturnRevealedToTop moves the first revealed card of value to the top of the
// seat's draw pile.
func (g *Game) ReturnRevealedToTop(seat, value int) bool {
	p := g.Players[seat]
	for i, c := range p.Revealed {
		if c.Value != value {
			continue
		}
		p.Revealed, _ = removeIndices(p.Revealed, []int{i})
		p.DrawPile = append([]Card{c}, p.DrawPile...)
		return true
	}
	return false
}

// ValidSeat reports whether i is a seated player.
func (g *Game) ValidSeat(i int) bool {
	return i >= 0 && i < len(g.Players)
}
