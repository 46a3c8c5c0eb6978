package session

import (
	"context"
	"sync"
	"time"

	"strategycoach/pkg/entry"
	"strategycoach/pkg/strategy"
)

// SavedEntry is an entry paired with its storage position, so a client
// showing the newest-first view can still delete by position.
type SavedEntry struct {
	Position int
	entry.Entry
}

// Session is the per-visitor state: saved entries and the last coach
// result. All access goes through its methods, which serialise on mu.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu          sync.Mutex
	entries     *entry.List
	suggestions []strategy.Record
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:          id,
		CreatedAt:   now,
		entries:     entry.NewList(),
		suggestions: make([]strategy.Record, 0),
	}
}

// AddEntry appends e and returns its storage position. Callers validate e.
func (s *Session) AddEntry(e entry.Entry) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Append(e)
}

// DeleteEntry removes the entry at storage position. Out of range is a no-op.
func (s *Session) DeleteEntry(position int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Delete(position)
}

// Entries returns saved entries newest first, each with its storage position.
func (s *Session) Entries() []SavedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	display := s.entries.DisplayOrder()
	out := make([]SavedEntry, len(display))
	for i, e := range display {
		out[i] = SavedEntry{Position: s.entries.StoragePosition(i), Entry: e}
	}
	return out
}

// EntryCount returns the number of saved entries.
func (s *Session) EntryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Len()
}

// ReplaceSuggestions stores the records of the latest successful call.
func (s *Session) ReplaceSuggestions(records []strategy.Record) {
	cp := make([]strategy.Record, len(records))
	copy(cp, records)
	s.mu.Lock()
	s.suggestions = cp
	s.mu.Unlock()
}

// Suggestions returns a copy of the stored coach records.
func (s *Session) Suggestions() []strategy.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]strategy.Record, len(s.suggestions))
	copy(cp, s.suggestions)
	return cp
}

type ctxKey struct{}

// NewContext returns ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by NewContext.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
