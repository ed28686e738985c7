package session

import (
	"fmt"
	"reflect"
	"sync"

	"loucura/internal/engine"
)

// Session owns one table: the live snapshot, every snapshot before it and the
// commands that produced them.
type Session struct {
	mu       sync.Mutex
	ID       string
	Seed     uint64
	config   engine.GameConfig
	registry *engine.AbilityRegistry
	game     *engine.Game
	history  []*engine.Game
	commands []engine.Command
}

// New creates a session in setup with the given rules and seed.
func New(id string, config engine.GameConfig, registry *engine.AbilityRegistry) *Session {
	return &Session{
		ID:       id,
		Seed:     config.Seed,
		config:   config,
		registry: registry,
		game:     engine.NewGame(config, registry),
	}
}

// Submit applies cmd to the live snapshot. Rejected commands are recorded too
// since they add a log line to the snapshot.
func (s *Session) Submit(cmd engine.Command) (*engine.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.game.Apply(cmd)
	s.history = append(s.history, s.game)
	s.commands = append(s.commands, cmd)
	s.game = next
	return next, err
}

// Snapshot returns the live snapshot. Snapshots are never mutated.
func (s *Session) Snapshot() *engine.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game
}

// History returns the snapshots preceding the live one, oldest first.
func (s *Session) History() []*engine.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*engine.Game, len(s.history))
	copy(out, s.history)
	return out
}

// Commands returns a copy of the command log.
func (s *Session) Commands() []engine.Command {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]engine.Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// ReplayResult reports a replay of the command log from the session seed.
type ReplayResult struct {
	Commands  int    `json:"commands"`
	Rejected  int    `json:"rejected"`
	Identical bool   `json:"identical"`
	Phase     string `json:"phase"`
}

// Replay runs the command log against a fresh game with the same seed and
// compares the outcome with the live snapshot.
func (s *Session) Replay() (ReplayResult, error) {
	cmds := s.Commands()
	live := s.Snapshot()

	g, rejected := Replay(s.config, s.registry, cmds)
	res := ReplayResult{
		Commands:  len(cmds),
		Rejected:  rejected,
		Identical: reflect.DeepEqual(g, live),
		Phase:     g.Phase.String(),
	}
	if !res.Identical {
		return res, fmt.Errorf("table %s: replay of %d commands diverged", s.ID, len(cmds))
	}
	return res, nil
}

// Replay applies cmds in order to a new game and returns the final snapshot
// and the number of rejected commands.
func Replay(config engine.GameConfig, registry *engine.AbilityRegistry, cmds []engine.Command) (*engine.Game, int) {
	g := engine.NewGame(config, registry)
	rejected := 0
	for _, cmd := range cmds {
		var err error
		g, err = g.Apply(cmd)
		if err != nil {
			rejected++
		}
	}
	return g, rejected
}
