package entry

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName = errors.New("entry: name is required")
	ErrEmptyText = errors.New("entry: strategy text is required")
)

// Entry is a user-written strategy.
type Entry struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Validate checks that both fields carry text. Callers run it before Append;
// the list itself accepts anything.
func Validate(e Entry) error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(e.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// List keeps entries in insertion order. It is not safe for concurrent use.
type List struct {
	entries []Entry
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Append adds e to the end and returns its storage position.
func (l *List) Append(e Entry) int {
	l.entries = append(l.entries, e)
	return len(l.entries) - 1
}

// Delete removes the entry at position. Later entries shift down by one.
// An out-of-range position leaves the list untouched and reports false.
func (l *List) Delete(position int) bool {
	if position < 0 || position >= len(l.entries) {
		return false
	}
	l.entries = append(l.entries[:position], l.entries[position+1:]...)
	return true
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// All returns a copy in insertion order.
func (l *List) All() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// DisplayOrder returns a copy with the most recently added entry first.
func (l *List) DisplayOrder() []Entry {
	n := len(l.entries)
	out := make([]Entry, n)
	for i, e := range l.entries {
		out[n-1-i] = e
	}
	return out
}

// StoragePosition maps an index of DisplayOrder back to the position Delete
// expects. It returns -1 when displayIndex is out of range.
func (l *List) StoragePosition(displayIndex int) int {
	n := len(l.entries)
	if displayIndex < 0 || displayIndex >= n {
		return -1
	}
	return n - 1 - displayIndex
}
