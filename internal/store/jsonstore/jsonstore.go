package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/idilsaglam/dailycheck/internal/model"
)

// JSON snapshots of the checklist. Single file, human-readable, portable.
// Used for export/import; the database stays the source of truth.

const formatVersion = 1

// Snapshot is the file layout.
type Snapshot struct {
	Version    int          `json:"version"`
	ExportedAt time.Time    `json:"exported_at"`
	Items      []model.Item `json:"items"`
}

func Load(path string) (Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read file: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if s.Version != formatVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	return s, nil
}

func Save(path string, items []model.Item, now time.Time) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(Snapshot{Version: formatVersion, ExportedAt: now, Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
