package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS deck_windows (
			deck_id TEXT PRIMARY KEY,
			first_index INTEGER NOT NULL,
			last_index INTEGER NOT NULL,
			item_count INTEGER,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS deck_options (
			deck_id TEXT NOT NULL,
			name TEXT NOT NULL,
			value TEXT,
			PRIMARY KEY (deck_id, name)
		);

		CREATE INDEX IF NOT EXISTS idx_deck_windows_updated ON deck_windows(updated_at DESC);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
