package checklist

import (
	"context"
	"fmt"

	"github.com/idilsaglam/dailycheck/internal/store/jsonstore"
)

// Export writes every item to a JSON snapshot and returns how many.
func (s *Service) Export(ctx context.Context, path string) (int, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := jsonstore.Save(path, items, s.now()); err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	s.logger.Info("exported items", "path", path, "count", len(items))
	return len(items), nil
}

// Import adds the snapshot's items as new unchecked entries. Ids and check
// state are not carried over; rows with an unknown recurrence are skipped.
func (s *Service) Import(ctx context.Context, path string) (added, skipped int, err error) {
	snap, err := jsonstore.Load(path)
	if err != nil {
		return 0, 0, fmt.Errorf("import: %w", err)
	}
	for _, it := range snap.Items {
		if !it.Recurrence.IsValid() {
			skipped++
			continue
		}
		id, err := s.Add(ctx, it.Text, it.Recurrence)
		if err != nil {
			return added, skipped, err
		}
		if id == 0 {
			skipped++
			continue
		}
		added++
	}
	s.logger.Info("imported items", "path", path, "added", added, "skipped", skipped)
	return added, skipped, nil
}
