package engine

// Turn order during AjahTurns. Seats rotate from the round leader; players who
// are already done are skipped.

// firstTurnSeat returns the first seat from the round leader that can still act.
func (g *Game) firstTurnSeat() (int, bool) {
	n := len(g.Players)
	for i := 0; i < n; i++ {
		seat := (g.RoundLeader + i) % n
		if !g.Players[seat].Done() {
			return seat, true
		}
	}
	return 0, false
}

// nextTurnSeat returns the next seat after from that can still act.
func (g *Game) nextTurnSeat(from int) (int, bool) {
	n := len(g.Players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if !g.Players[seat].Done() {
			return seat, true
		}
	}
	return 0, false
}

// AllDone reports whether every player has finished the round's reveals.
func (g *Game) AllDone() bool {
	_, ok := g.firstTurnSeat()
	return !ok
}
