package state

import (
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveWindow(state WindowState)
	GetWindow(deckID string) (*WindowState, error)
	GetOptions(deckID string) (map[string]string, error)
	SaveOptions(deckID string, options map[string]string) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
