package engine

import "math/rand/v2"

// Shuffle returns a uniformly permuted copy of cards. The input is not modified.
func Shuffle[T any](r *rand.Rand, cards []T) []T {
	out := make([]T, len(cards))
	copy(out, cards)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// DrawWithReshuffle takes the top card (index 0) of draw. When draw is empty the
// discard pile is shuffled into it first. ErrDeckExhausted is returned, with the
// piles untouched, when both are empty.
func DrawWithReshuffle[T any](r *rand.Rand, draw, discard []T) (T, []T, []T, error) {
	var zero T
	if len(draw) == 0 {
		if len(discard) == 0 {
			return zero, draw, discard, ErrDeckExhausted
		}
		draw = Shuffle(r, discard)
		discard = nil
	}
	top := draw[0]
	rest := make([]T, len(draw)-1)
	copy(rest, draw[1:])
	return top, rest, discard, nil
}

// removeIndices removes the given positions from cards, highest first, and
// returns the remaining cards and the removed ones in removal order. Indices
// must already be validated.
func removeIndices[T any](cards []T, indices []int) ([]T, []T) {
	sorted := sortedDesc(indices)
	remaining := make([]T, len(cards))
	copy(remaining, cards)
	removed := make([]T, 0, len(sorted))
	for _, idx := range sorted {
		removed = append(removed, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return remaining, removed
}
