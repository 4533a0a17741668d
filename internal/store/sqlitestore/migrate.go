package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
)

// migration is one schema step. apply must be safe on tables that already
// carry the change, since files written before versioning report version 0
// whatever their columns are.
type migration struct {
	version int
	name    string
	apply   func(ctx context.Context, tx *sql.Tx) error
}

var migrations = []migration{
	{1, "create labels", func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS labels (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				text TEXT NOT NULL,
				checked INTEGER DEFAULT 0
			)`)
		return err
	}},
	{2, "add recurrence", func(ctx context.Context, tx *sql.Tx) error {
		return addColumnIfMissing(ctx, tx, "labels", "recurrence", `TEXT DEFAULT 'day'`)
	}},
	{3, "add last_modified", func(ctx context.Context, tx *sql.Tx) error {
		return addColumnIfMissing(ctx, tx, "labels", "last_modified", `DATE`)
	}},
	{4, "copy legacy reset_type", func(ctx context.Context, tx *sql.Tx) error {
		ok, err := hasColumn(ctx, tx, "labels", "reset_type")
		if err != nil || !ok {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE labels SET recurrence = reset_type WHERE reset_type IS NOT NULL AND reset_type != ''`)
		return err
	}},
}

// LatestVersion is the schema version Migrate brings a database to.
func LatestVersion() int { return migrations[len(migrations)-1].version }

// SchemaVersion reads PRAGMA user_version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// Migrate applies the steps newer than the stored version, each in its own
// transaction together with the version bump.
func (s *Store) Migrate(ctx context.Context) error {
	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := s.applyMigration(ctx, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
	}
	return nil
}

func (s *Store) applyMigration(ctx context.Context, m migration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := m.apply(ctx, tx); err != nil {
		return err
	}
	// PRAGMA does not take bind parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, m.version)); err != nil {
		return err
	}
	return tx.Commit()
}

func addColumnIfMissing(ctx context.Context, tx *sql.Tx, table, column, decl string) error {
	ok, err := hasColumn(ctx, tx, table, column)
	if err != nil || ok {
		return err
	}
	_, err = tx.ExecContext(ctx, fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, column, decl))
	return err
}

// Columns lists the column names of the labels table.
func (s *Store) Columns(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM pragma_table_info('labels')`)
	if err != nil {
		return nil, fmt.Errorf("table info: %w", err)
	}
	defer rows.Close()
	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

func hasColumn(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
