package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/liquid/internal/db"
)

// WindowState is the last window shown for a deck.
type WindowState struct {
	DeckID    string
	First     int
	Last      int
	ItemCount int // deck size when saved, 0 if unknown
	UpdatedAt time.Time
}

func getWindow(db *sql.DB, deckID string) (*WindowState, error) {
	row := db.QueryRow(`
		SELECT first_index, last_index, item_count, updated_at
		FROM deck_windows WHERE deck_id = ?
	`, deckID)

	state := WindowState{DeckID: deckID}
	var itemCount sql.NullInt64
	var updatedAt int64

	err := row.Scan(&state.First, &state.Last, &itemCount, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.ItemCount = int(dbutil.NullInt64Value(itemCount))
	state.UpdatedAt = time.Unix(updatedAt, 0)

	return &state, nil
}

func saveWindow(db *sql.DB, state WindowState) error {
	updatedAt := state.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	_, err := db.Exec(`
		INSERT INTO deck_windows (deck_id, first_index, last_index, item_count, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(deck_id) DO UPDATE SET
			first_index = excluded.first_index,
			last_index = excluded.last_index,
			item_count = excluded.item_count,
			updated_at = excluded.updated_at
	`, state.DeckID, state.First, state.Last, dbutil.PositiveInt64(state.ItemCount), updatedAt.Unix())

	return err
}
