package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/collection"
)

const (
	// DefaultTTL is the idle lifetime used when none is configured.
	DefaultTTL = 2 * time.Hour
	// DefaultLimit caps live sessions when no limit is configured.
	DefaultLimit = 10000
)

// Store keeps sessions in memory. A session is dropped after ttl without
// use, or when the limit evicts it.
type Store struct {
	cache *collection.Cache
	nowFn func() time.Time
}

// NewStore builds a store. Non-positive arguments fall back to the defaults.
func NewStore(ttl time.Duration, limit int) (*Store, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	cache, err := collection.NewCache(ttl, collection.WithName("sessions"), collection.WithLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("session: create cache: %w", err)
	}
	return &Store{cache: cache, nowFn: time.Now}, nil
}

// Create starts a new session with a random ID.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), s.nowFn())
	s.cache.Set(sess.ID, sess)
	return sess
}

// Get returns a live session and refreshes its expiry.
func (s *Store) Get(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*Session)
	if !ok {
		return nil, false
	}
	s.cache.Set(id, sess)
	return sess, true
}

// Resolve returns the session for id, or a new one when id is unknown or
// expired. created reports which.
func (s *Store) Resolve(id string) (sess *Session, created bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	return s.Create(), true
}

// Delete drops a session. Its ID is not reused; the next request naming it
// starts a fresh session.
func (s *Store) Delete(id string) {
	s.cache.Del(id)
}
