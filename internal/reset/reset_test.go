package reset_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/idilsaglam/dailycheck/internal/model"
	"github.com/idilsaglam/dailycheck/internal/reset"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

var (
	monday     = date(2024, 5, 6)
	prevFriday = date(2024, 5, 3)
	wednesday  = date(2024, 5, 8)
	lastMonday = date(2024, 4, 29)
)

func TestShouldReset(t *testing.T) {
	tests := []struct {
		name  string
		rec   model.Recurrence
		today time.Time
		last  time.Time
		want  bool
	}{
		{"daily same day", model.Daily, date(2024, 5, 2), date(2024, 5, 2), false},
		{"daily same day later hour", model.Daily, date(2024, 5, 2).Add(22 * time.Hour), date(2024, 5, 2), false},
		{"daily yesterday", model.Daily, date(2024, 5, 2), date(2024, 5, 1), true},
		{"daily a year ago same day", model.Daily, date(2024, 5, 2), date(2023, 5, 2), true},
		{"daily future date", model.Daily, date(2024, 5, 2), date(2024, 5, 9), true},

		{"monday after friday", model.WeeklyMonday, monday, prevFriday, true},
		{"monday same monday", model.WeeklyMonday, monday, monday, false},
		{"monday after previous monday", model.WeeklyMonday, monday, lastMonday, false},
		{"monday months later", model.WeeklyMonday, monday, date(2023, 11, 15), true},
		{"wednesday after friday", model.WeeklyMonday, wednesday, prevFriday, false},
		{"wednesday after old monday", model.WeeklyMonday, wednesday, lastMonday, false},
		{"sunday", model.WeeklyMonday, date(2024, 5, 5), date(2024, 4, 30), false},

		{"monthly same month", model.Monthly, date(2024, 5, 31), date(2024, 5, 1), false},
		{"monthly next month", model.Monthly, date(2024, 6, 1), date(2024, 5, 31), true},
		{"monthly same month last year", model.Monthly, date(2024, 5, 2), date(2023, 5, 10), false},
		{"monthly december to january", model.Monthly, date(2025, 1, 1), date(2024, 12, 31), true},

		{"unknown recurrence", model.Recurrence("year"), date(2024, 5, 2), date(2020, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reset.ShouldReset(tt.today, tt.last, tt.rec); got != tt.want {
				t.Errorf("ShouldReset(%s, %s, %q) = %v, want %v",
					model.FormatDate(tt.today), model.FormatDate(tt.last), tt.rec, got, tt.want)
			}
		})
	}
}

func TestPlan(t *testing.T) {
	items := []model.Item{
		{ID: 1, Checked: true, Recurrence: model.Daily, LastModified: "2024-05-05"},
		{ID: 2, Checked: true, Recurrence: model.Daily, LastModified: "2024-05-06"},
		{ID: 3, Checked: true, Recurrence: model.WeeklyMonday, LastModified: "2024-05-03"},
		{ID: 4, Checked: true, Recurrence: model.Monthly, LastModified: "2024-04-30"},
		{ID: 5, Checked: true, Recurrence: model.Daily},
		{ID: 6, Checked: false, Recurrence: model.Daily, LastModified: "2024-05-01"},
	}
	ids, err := reset.Plan(monday, items)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	want := []int64{1, 3, 4}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)
			break
		}
	}
}

func TestPlan_MalformedDateIsFatal(t *testing.T) {
	items := []model.Item{
		{ID: 1, Checked: true, Recurrence: model.Daily, LastModified: "2024-05-01"},
		{ID: 2, Checked: false, Recurrence: model.Daily, LastModified: "05/01/2024"},
	}
	ids, err := reset.Plan(monday, items)
	if !errors.Is(err, model.ErrMalformedDate) {
		t.Fatalf("err = %v, want ErrMalformedDate", err)
	}
	if ids != nil {
		t.Errorf("ids = %v, want nil", ids)
	}
}

type fakeStore struct {
	items   []model.Item
	listErr error
	cleared [][]int64
}

func (f *fakeStore) ListAll(context.Context) ([]model.Item, error) { return f.items, f.listErr }

func (f *fakeStore) ClearChecked(_ context.Context, ids []int64) error {
	f.cleared = append(f.cleared, ids)
	return nil
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestSweep(t *testing.T) {
	fs := &fakeStore{items: []model.Item{
		{ID: 7, Checked: true, Recurrence: model.Daily, LastModified: "2024-05-05"},
		{ID: 8, Checked: true, Recurrence: model.Monthly, LastModified: "2024-05-01"},
	}}
	res, err := reset.Sweep(context.Background(), fs, monday, quietLogger())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if res.ID == "" {
		t.Error("sweep id should be set")
	}
	if res.Examined != 2 || len(res.Cleared) != 1 || res.Cleared[0] != 7 {
		t.Errorf("result = %+v", res)
	}
	if len(fs.cleared) != 1 {
		t.Errorf("ClearChecked called %d times, want 1", len(fs.cleared))
	}
}

func TestSweep_MalformedDateWritesNothing(t *testing.T) {
	fs := &fakeStore{items: []model.Item{
		{ID: 1, Checked: true, Recurrence: model.Daily, LastModified: "2024-05-05"},
		{ID: 2, Checked: true, Recurrence: model.Daily, LastModified: "garbage"},
	}}
	_, err := reset.Sweep(context.Background(), fs, monday, quietLogger())
	if !errors.Is(err, model.ErrMalformedDate) {
		t.Fatalf("err = %v, want ErrMalformedDate", err)
	}
	if len(fs.cleared) != 0 {
		t.Errorf("ClearChecked should not run, got %v", fs.cleared)
	}
}

func TestSweep_ListError(t *testing.T) {
	boom := errors.New("disk gone")
	fs := &fakeStore{listErr: boom}
	if _, err := reset.Sweep(context.Background(), fs, monday, nil); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}
