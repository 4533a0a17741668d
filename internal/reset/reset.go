// Package reset clears checkmarks whose recurrence boundary has passed.
//
// The sweep runs once when the program starts, before anything is drawn. A
// session that stays open across midnight is not re-swept until restart.
package reset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/dailycheck/internal/model"
)

// ShouldReset reports whether an item checked on lastModified must be
// unchecked today.
//
// The Monday rule is literal: any Monday clears an item last touched on a
// non-Monday, however long ago. Monthly compares the month only, so May of
// last year counts as the same month as May of this year.
func ShouldReset(today, lastModified time.Time, r model.Recurrence) bool {
	switch r {
	case model.Daily:
		return !model.SameDate(today, lastModified)
	case model.WeeklyMonday:
		return today.Weekday() == time.Monday && lastModified.Weekday() != time.Monday
	case model.Monthly:
		return today.Month() != lastModified.Month()
	}
	return false
}

// Plan returns the ids of checked items that must be cleared. Items never
// stamped are skipped. One unparsable date fails the whole plan.
func Plan(today time.Time, items []model.Item) ([]int64, error) {
	var ids []int64
	for _, it := range items {
		if it.LastModified == "" {
			continue
		}
		last, err := model.ParseDate(it.LastModified)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", it.ID, err)
		}
		if it.Checked && ShouldReset(today, last, it.Recurrence) {
			ids = append(ids, it.ID)
		}
	}
	return ids, nil
}

// Store is the slice of the item store a sweep needs.
type Store interface {
	ListAll(ctx context.Context) ([]model.Item, error)
	ClearChecked(ctx context.Context, ids []int64) error
}

// Result summarizes one sweep.
type Result struct {
	ID       string
	Examined int
	Cleared  []int64
}

// Sweep loads every item, plans and applies the resets in one write.
// Nothing is written if any stored date is malformed.
func Sweep(ctx context.Context, s Store, today time.Time, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	res := Result{ID: uuid.NewString()}
	logger = logger.With("sweep_id", res.ID, "today", model.FormatDate(today))

	items, err := s.ListAll(ctx)
	if err != nil {
		return res, fmt.Errorf("load items: %w", err)
	}
	res.Examined = len(items)

	ids, err := Plan(today, items)
	if err != nil {
		logger.Error("reset sweep aborted", "error", err)
		return res, err
	}
	if err := s.ClearChecked(ctx, ids); err != nil {
		return res, fmt.Errorf("clear checked: %w", err)
	}
	res.Cleared = ids

	logger.Info("reset sweep done", "examined", res.Examined, "cleared", len(ids))
	return res, nil
}
