package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE cards (id INTEGER PRIMARY KEY, title TEXT)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countCards(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM cards`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx(t *testing.T) {
	abort := errors.New("abort")

	tests := []struct {
		name      string
		titles    []string
		fail      bool
		wantCount int
	}{
		{name: "single insert commits", titles: []string{"Cupcake"}, wantCount: 1},
		{name: "several inserts commit", titles: []string{"Cupcake", "Donut", "Eclair"}, wantCount: 3},
		{name: "error rolls everything back", titles: []string{"Cupcake", "Donut"}, fail: true, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			defer db.Close()

			err := WithTx(db, func(tx *sql.Tx) error {
				for _, title := range tt.titles {
					if _, err := tx.Exec(`INSERT INTO cards (title) VALUES (?)`, title); err != nil {
						return err
					}
				}
				if tt.fail {
					return abort
				}
				return nil
			})

			if tt.fail && !errors.Is(err, abort) {
				t.Fatalf("WithTx error = %v, want %v", err, abort)
			}
			if !tt.fail && err != nil {
				t.Fatalf("WithTx failed: %v", err)
			}
			if got := countCards(t, db); got != tt.wantCount {
				t.Errorf("count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestPositiveInt64(t *testing.T) {
	tests := []struct {
		in   int
		want sql.NullInt64
	}{
		{in: 7, want: sql.NullInt64{Int64: 7, Valid: true}},
		{in: 0, want: sql.NullInt64{}},
		{in: -3, want: sql.NullInt64{}},
	}

	for _, tt := range tests {
		if got := PositiveInt64(tt.in); got != tt.want {
			t.Errorf("PositiveInt64(%d) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestNullValues(t *testing.T) {
	if got := NullInt64Value(sql.NullInt64{Int64: 123, Valid: true}); got != 123 {
		t.Errorf("NullInt64Value(valid) = %d, want 123", got)
	}
	if got := NullInt64Value(sql.NullInt64{Int64: 123}); got != 0 {
		t.Errorf("NullInt64Value(invalid) = %d, want 0", got)
	}
	if got := NullStringValue(sql.NullString{String: "hello", Valid: true}); got != "hello" {
		t.Errorf("NullStringValue(valid) = %q, want %q", got, "hello")
	}
	if got := NullStringValue(sql.NullString{String: "hello"}); got != "" {
		t.Errorf("NullStringValue(invalid) = %q, want empty", got)
	}
}
