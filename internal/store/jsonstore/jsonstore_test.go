package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idilsaglam/dailycheck/internal/model"
)

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "routine.json")
	items := []model.Item{
		{ID: 3, Text: "rent", Checked: true, Recurrence: model.Monthly, LastModified: "2024-05-01"},
		{ID: 9, Text: "bins", Recurrence: model.WeeklyMonday},
	}
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	if err := Save(path, items, now); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.ExportedAt.Equal(now) || len(s.Items) != 2 {
		t.Fatalf("snapshot = %+v", s)
	}
	if s.Items[0] != items[0] || s.Items[1] != items[1] {
		t.Errorf("items = %+v", s.Items)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("expected error for broken json")
	}

	future := filepath.Join(dir, "future.json")
	os.WriteFile(future, []byte(`{"version": 7, "items": []}`), 0o644)
	if _, err := Load(future); err == nil {
		t.Error("expected error for unknown version")
	}
}
