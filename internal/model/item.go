package model

import (
	"errors"
	"fmt"
	"strings"
)

// Item is the domain model for a recurring checklist entry.
type Item struct {
	ID         int64      `json:"id"`
	Text       string     `json:"text"`
	Checked    bool       `json:"checked"`
	Recurrence Recurrence `json:"recurrence"`
	// LastModified is the YYYY-MM-DD date of the last checked-state change.
	// Empty when the row never had one.
	LastModified string `json:"last_modified,omitempty"`
}

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrEmptyText         = errors.New("empty text")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	ErrMalformedDate     = errors.New("malformed date")
)

// Recurrence decides which reset rule applies to an item.
type Recurrence string

const (
	Daily        Recurrence = "day"
	WeeklyMonday Recurrence = "week"
	Monthly      Recurrence = "month"
)

// Recurrences returns the kinds in display order.
func Recurrences() []Recurrence {
	return []Recurrence{Daily, WeeklyMonday, Monthly}
}

func (r Recurrence) IsValid() bool {
	switch r {
	case Daily, WeeklyMonday, Monthly:
		return true
	}
	return false
}

// Label is the section header shown for r.
func (r Recurrence) Label() string {
	switch r {
	case Daily:
		return "Daily"
	case WeeklyMonday:
		return "Every Monday"
	case Monthly:
		return "Monthly"
	}
	return string(r)
}

// Next cycles through Recurrences; used by the add form.
func (r Recurrence) Next() Recurrence {
	all := Recurrences()
	for i, x := range all {
		if x == r {
			return all[(i+1)%len(all)]
		}
	}
	return Daily
}

// ParseRecurrence accepts the stored tags plus a few friendly aliases.
func ParseRecurrence(s string) (Recurrence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daily", "d":
		return Daily, nil
	case "week", "weekly", "monday", "w":
		return WeeklyMonday, nil
	case "month", "monthly", "m":
		return Monthly, nil
	}
	return "", fmt.Errorf("%w: %q (want day, week or month)", ErrInvalidRecurrence, s)
}
