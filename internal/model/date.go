package model

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk format of LastModified.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// ParseDate reads a stored date as local midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedDate, s, err)
	}
	return t, nil
}

// SameDate compares calendar dates, ignoring the time of day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
