package session

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"loucura/internal/engine"
)

// Manager manages multiple tables.
type Manager struct {
	mu       sync.Mutex
	config   engine.GameConfig
	registry *engine.AbilityRegistry
	sessions map[string]*Session
}

// NewManager creates a manager whose tables use config and registry. A zero
// config seed gives every table a fresh random seed.
func NewManager(config engine.GameConfig, registry *engine.AbilityRegistry) *Manager {
	return &Manager{
		config:   config,
		registry: registry,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new table and returns it.
func (m *Manager) Create() (*Session, error) {
	cfg := m.config
	if cfg.Seed == 0 {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		cfg.Seed = seed
	}
	s := New(uuid.NewString(), cfg, m.registry)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s, nil
}

// Get returns a table by ID, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Remove forgets a table.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// NewSeed returns a random non-zero seed.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	if seed := binary.LittleEndian.Uint64(b[:]); seed != 0 {
		return seed, nil
	}
	return 1, nil
}
