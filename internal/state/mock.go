package state

import (
	"database/sql"
	"maps"
	"sync"
)

// Mock is a test double for Manager.
type Mock struct {
	mu      sync.Mutex
	windows map[string]WindowState
	options map[string]map[string]string
	saves   int
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{
		windows: make(map[string]WindowState),
		options: make(map[string]map[string]string),
	}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveWindow(state WindowState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windows[state.DeckID] = state
	m.saves++
}

func (m *Mock) GetWindow(deckID string) (*WindowState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.windows[deckID]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager on first run
	}
	return &state, nil
}

func (m *Mock) GetOptions(deckID string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.options[deckID]), nil
}

func (m *Mock) SaveOptions(deckID string, options map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.options[deckID] = maps.Clone(options)
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetWindow(state WindowState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windows[state.DeckID] = state
}

func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
