package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strategycoach/pkg/entry"
	"strategycoach/pkg/strategy"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(time.Minute, 100)
	require.NoError(t, err)
	return store
}

func TestStoreCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	sess := store.Create()
	_, err := uuid.Parse(sess.ID)
	require.NoError(t, err)
	assert.False(t, sess.CreatedAt.IsZero())

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = store.Get(uuid.NewString())
	assert.False(t, ok)
	_, ok = store.Get("not-a-uuid")
	assert.False(t, ok)

	store.Delete(sess.ID)
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)
}

func TestStoreResolve(t *testing.T) {
	store := newTestStore(t)

	first, created := store.Resolve("")
	require.True(t, created)

	again, created := store.Resolve(first.ID)
	require.False(t, created)
	assert.Same(t, first, again)

	other, created := store.Resolve("bogus")
	require.True(t, created)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestNewStoreDefaults(t *testing.T) {
	store, err := NewStore(0, 0)
	require.NoError(t, err)
	assert.NotNil(t, store.Create())
}

func TestSessionEntries(t *testing.T) {
	sess := newSession("s", time.Now())

	assert.Equal(t, 0, sess.AddEntry(entry.Entry{Name: "A", Text: "first"}))
	assert.Equal(t, 1, sess.AddEntry(entry.Entry{Name: "B", Text: "second"}))
	assert.Equal(t, 2, sess.AddEntry(entry.Entry{Name: "C", Text: "third"}))

	got := sess.Entries()
	require.Len(t, got, 3)
	assert.Equal(t, SavedEntry{Position: 2, Entry: entry.Entry{Name: "C", Text: "third"}}, got[0])
	assert.Equal(t, SavedEntry{Position: 0, Entry: entry.Entry{Name: "A", Text: "first"}}, got[2])

	assert.True(t, sess.DeleteEntry(got[1].Position))
	assert.False(t, sess.DeleteEntry(5))
	assert.False(t, sess.DeleteEntry(-1))
	assert.Equal(t, 2, sess.EntryCount())

	got = sess.Entries()
	assert.Equal(t, "C", got[0].Name)
	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, "A", got[1].Name)
}

func TestSessionSuggestions(t *testing.T) {
	sess := newSession("s", time.Now())
	assert.NotNil(t, sess.Suggestions())
	assert.Empty(t, sess.Suggestions())

	records := []strategy.Record{{Strategy: "s1", Explanation: "e1"}}
	sess.ReplaceSuggestions(records)
	records[0].Strategy = "mutated"

	got := sess.Suggestions()
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].Strategy)

	got[0].Strategy = "mutated again"
	assert.Equal(t, "s1", sess.Suggestions()[0].Strategy)

	sess.ReplaceSuggestions(nil)
	assert.Empty(t, sess.Suggestions())
}

func TestSessionConcurrentAccess(t *testing.T) {
	sess := newSession("s", time.Now())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.AddEntry(entry.Entry{Name: "n", Text: "t"})
			_ = sess.Entries()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, sess.EntryCount())
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	sess := newSession("s", time.Now())
	got, ok := FromContext(NewContext(context.Background(), sess))
	require.True(t, ok)
	assert.Same(t, sess, got)
}
