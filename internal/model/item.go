package model

import (
	"errors"
	"fmt"
	"strings"
)

// Item is the domain model for a todo entry.
// Field names match the stored JSON document.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

const (
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
)

// Status is the human-readable completion state used by listings and exports.
func (i Item) Status() string {
	if i.IsCompleted {
		return StatusCompleted
	}
	return StatusPending
}

// Filter selects which subset of the stored list is shown.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterCompleted  Filter = "completed"
	FilterIncomplete Filter = "incomplete"
)

var ErrInvalidFilter = errors.New("invalid filter")

// Filters lists every filter in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterCompleted, FilterIncomplete}
}

// ParseFilter accepts the filter names case-insensitively plus the legacy
// "inCompleted" spelling. The empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "completed", "done":
		return FilterCompleted, nil
	case "incomplete", "incompleted", "pending":
		return FilterIncomplete, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterIncomplete:
		return true
	}
	return false
}

// Next cycles all -> completed -> incomplete -> all.
func (f Filter) Next() Filter {
	fs := Filters()
	for i, x := range fs {
		if x == f {
			return fs[(i+1)%len(fs)]
		}
	}
	return FilterAll
}

// Match reports whether the item belongs to the filtered view.
func (f Filter) Match(it Item) bool {
	switch f {
	case FilterCompleted:
		return it.IsCompleted
	case FilterIncomplete:
		return !it.IsCompleted
	}
	return true
}

// Apply keeps the matching items in their original order.
func (f Filter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}
