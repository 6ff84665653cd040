package state

import (
	"database/sql"

	dbutil "github.com/llehouerou/liquid/internal/db"
)

// getOptions returns the option overrides saved for a deck, keyed by
// option name. A deck with none yields an empty map.
func getOptions(db *sql.DB, deckID string) (map[string]string, error) {
	rows, err := db.Query(`
		SELECT name, value FROM deck_options WHERE deck_id = ? ORDER BY name
	`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make(map[string]string)
	for rows.Next() {
		var name string
		var value sql.NullString
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		options[name] = dbutil.NullStringValue(value)
	}
	return options, rows.Err()
}

// saveOptions replaces every override saved for a deck.
func saveOptions(db *sql.DB, deckID string, options map[string]string) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM deck_options WHERE deck_id = ?`, deckID); err != nil {
			return err
		}
		for name, value := range options {
			if _, err := tx.Exec(`
				INSERT INTO deck_options (deck_id, name, value) VALUES (?, ?, ?)
			`, deckID, name, value); err != nil {
				return err
			}
		}
		return nil
	})
}
