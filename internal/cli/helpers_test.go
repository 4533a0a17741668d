package cli

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openRaw(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	return db
}
