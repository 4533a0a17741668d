package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/idilsaglam/dailycheck/internal/model"
)

// SQLite-backed storage. One file, one table, single user.
// Every write is its own statement (or transaction) so it is durable on return.

// Store persists checklist items in the labels table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates the database file if needed and migrates it to the current
// schema. A nil clock means time.Now.
func Open(ctx context.Context, path string, now func() time.Time) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_fk=1")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one writer, and keeps ":memory:" on a single connection
	db.SetMaxOpenConns(1)

	s := New(db, now)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already opened database. Callers must run Migrate.
func New(db *sql.DB, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{db: db, now: now}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) today() string {
	return model.FormatDate(s.now())
}

// Create inserts an unchecked item stamped with today's date.
func (s *Store) Create(ctx context.Context, text string, r model.Recurrence) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, model.ErrEmptyText
	}
	if !r.IsValid() {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidRecurrence, r)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO labels (text, checked, recurrence, last_modified) VALUES (?, 0, ?, ?)`,
		text, string(r), s.today(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// ListAll returns every row in id order.
func (s *Store) ListAll(ctx context.Context) ([]model.Item, error) {
	// CAST keeps the driver from converting DATE columns into time.Time.
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, COALESCE(checked, 0), COALESCE(recurrence, 'day'),
		       CAST(last_modified AS TEXT)
		FROM labels
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var (
			it   model.Item
			rec  string
			last sql.NullString
		)
		if err := rows.Scan(&it.ID, &it.Text, &it.Checked, &rec, &last); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Recurrence = model.Recurrence(rec)
		if last.Valid {
			it.LastModified = last.String
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Get returns a single item.
func (s *Store) Get(ctx context.Context, id int64) (model.Item, error) {
	var (
		it   model.Item
		rec  string
		last sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, text, COALESCE(checked, 0), COALESCE(recurrence, 'day'),
		       CAST(last_modified AS TEXT)
		FROM labels WHERE id = ?`, id).Scan(&it.ID, &it.Text, &it.Checked, &rec, &last)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("%w: id %d", model.ErrItemNotFound, id)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("get item: %w", err)
	}
	it.Recurrence = model.Recurrence(rec)
	if last.Valid {
		it.LastModified = last.String
	}
	return it, nil
}

// SetChecked writes the flag and stamps today's date, even when the flag
// does not change.
func (s *Store) SetChecked(ctx context.Context, id int64, checked bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE labels SET checked = ?, last_modified = ? WHERE id = ?`,
		boolToInt(checked), s.today(), id,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", model.ErrItemNotFound, id)
	}
	return nil
}

// DeleteByText removes every row whose text matches exactly and reports how
// many went. No match is not an error.
func (s *Store) DeleteByText(ctx context.Context, text string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM labels WHERE text = ?`, text)
	if err != nil {
		return 0, fmt.Errorf("delete items: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// ClearChecked unchecks ids in one transaction. last_modified is left alone.
func (s *Store) ClearChecked(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `UPDATE labels SET checked = 0 WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("prepare clear: %w", err)
	}
	defer stmt.Close()

	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, id); err != nil {
			return fmt.Errorf("clear item %d: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
