package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "liquid"
	dbFileName   = "liquid.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db  *sql.DB
	log zerolog.Logger

	// saveMu guards the fields below and is held for the whole of a
	// window write, so Close never races a debounced save.
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *WindowState
	debounce  time.Duration
	closed    bool
}

// Open opens the state database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens (creating if needed) the state database at dbPath.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, log: zerolog.Nop(), debounce: saveDebounce}, nil
}

// SetLogger sets the logger debounced writes report their errors to.
func (m *Manager) SetLogger(l zerolog.Logger) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	m.log = l
}

// Close writes the pending window, waiting for a write already in
// progress, and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	err := m.flushLocked()
	m.closed = true
	m.saveMu.Unlock()

	if cerr := m.db.Close(); err == nil {
		err = cerr
	}
	return err
}

// Flush writes any window state still waiting for its debounce.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	return m.flushLocked()
}

func (m *Manager) flushLocked() error {
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	if pending == nil || m.closed {
		return nil
	}
	return saveWindow(m.db, *pending)
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) GetWindow(deckID string) (*WindowState, error) {
	return getWindow(m.db, deckID)
}

// SaveWindow records the window shown for a deck. Writes are debounced:
// only the last state of a burst of navigation reaches the database.
func (m *Manager) SaveWindow(state WindowState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		m.saveMu.Lock()
		defer m.saveMu.Unlock()

		if m.pending == nil {
			return
		}
		deckID := m.pending.DeckID
		if err := m.flushLocked(); err != nil {
			m.log.Error().Err(err).Str("deck", deckID).Msg("save window")
		}
	})
}

func (m *Manager) GetOptions(deckID string) (map[string]string, error) {
	return getOptions(m.db, deckID)
}

func (m *Manager) SaveOptions(deckID string, options map[string]string) error {
	return saveOptions(m.db, deckID, options)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
