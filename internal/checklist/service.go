// Package checklist is the glue every front end talks to: it runs the
// startup reset sweep and exposes add, toggle, delete and a grouped view
// rebuilt from the store on every call.
package checklist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/idilsaglam/dailycheck/internal/model"
	"github.com/idilsaglam/dailycheck/internal/reset"
)

type Store interface {
	Create(ctx context.Context, text string, r model.Recurrence) (int64, error)
	ListAll(ctx context.Context) ([]model.Item, error)
	Get(ctx context.Context, id int64) (model.Item, error)
	SetChecked(ctx context.Context, id int64, checked bool) error
	DeleteByText(ctx context.Context, text string) (int64, error)
	ClearChecked(ctx context.Context, ids []int64) error
}

type Service struct {
	store  Store
	now    func() time.Time
	logger *slog.Logger
	swept  bool
}

func NewService(store Store, now func() time.Time, logger *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, now: now, logger: logger}
}

// Startup runs the reset sweep. Only the first call does any work.
func (s *Service) Startup(ctx context.Context) (reset.Result, error) {
	if s.swept {
		return reset.Result{}, nil
	}
	res, err := reset.Sweep(ctx, s.store, s.now(), s.logger)
	if err != nil {
		return res, fmt.Errorf("startup reset: %w", err)
	}
	s.swept = true
	return res, nil
}

// Add stores a new unchecked item with text as typed. Blank text is ignored
// and yields id 0.
func (s *Service) Add(ctx context.Context, text string, r model.Recurrence) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	id, err := s.store.Create(ctx, text, r)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("item added", "id", id, "recurrence", r)
	return id, nil
}

// Delete removes every item whose text equals text exactly, surrounding
// spaces included. Blank text is ignored.
func (s *Service) Delete(ctx context.Context, text string) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	n, err := s.store.DeleteByText(ctx, text)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("items deleted", "count", n)
	return n, nil
}

func (s *Service) SetChecked(ctx context.Context, id int64, checked bool) error {
	if err := s.store.SetChecked(ctx, id, checked); err != nil {
		return err
	}
	s.logger.Debug("item checked", "id", id, "checked", checked)
	return nil
}

// Toggle flips the checked flag and returns the new value.
func (s *Service) Toggle(ctx context.Context, id int64) (bool, error) {
	it, err := s.store.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if err := s.SetChecked(ctx, id, !it.Checked); err != nil {
		return false, err
	}
	return !it.Checked, nil
}

// View reads the store and groups the items for display.
func (s *Service) View(ctx context.Context) (View, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return View{}, err
	}
	return BuildView(items), nil
}
