package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriterRequiresDir(t *testing.T) {
	_, err := NewWriter("")
	require.Error(t, err)
}

func TestWriteExchange(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journal")
	w, err := NewWriter(dir)
	require.NoError(t, err)
	w.nowFn = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }

	rec := &ExchangeRecord{
		SessionID:      "s-1",
		PromptDigest:   "abc",
		ResponseDigest: Digest("[전략]: a\n[해설]: b"),
		RecordCount:    1,
		Stats:          map[string]int{"blocks": 1, "well_formed": 1},
		Success:        true,
	}
	path, err := w.WriteExchange(rec)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exchange_20240501_093000_00001.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded ExchangeRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.Sequence)
	assert.Equal(t, "s-1", decoded.SessionID)
	assert.Equal(t, 1, decoded.Stats["well_formed"])
	assert.True(t, decoded.Success)

	_, err = w.WriteExchange(nil)
	require.Error(t, err)
}

func TestWriteExchangeConcurrent(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.WriteExchange(&ExchangeRecord{Success: true})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries, err := os.ReadDir(w.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}

func TestDigest(t *testing.T) {
	assert.Len(t, Digest("x"), 64)
	assert.Equal(t, Digest("x"), Digest("x"))
	assert.NotEqual(t, Digest("x"), Digest("y"))
}
