package engine

import "fmt"

// Logf prepends an entry to the game log, dropping the oldest beyond LogLimit.
func (g *Game) Logf(format string, args ...any) {
	entry := fmt.Sprintf(format, args...)
	g.Log = append([]string{entry}, g.Log...)
	if limit := g.Config.LogLimit; limit > 0 && len(g.Log) > limit {
		g.Log = g.Log[:limit]
	}
}

// LastLog returns the most recent log entry.
func (g *Game) LastLog() string {
	if len(g.Log) == 0 {
		return ""
	}
	return g.Log[0]
}
