package journal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ExchangeRecord captures one coach call for later review. The raw model
// reply is stored only as a digest.
type ExchangeRecord struct {
	Timestamp      time.Time      `json:"timestamp"`
	Sequence       int            `json:"sequence"`
	SessionID      string         `json:"session_id,omitempty"`
	Provider       string         `json:"provider,omitempty"`
	Model          string         `json:"model,omitempty"`
	TemplateDigest string         `json:"template_digest,omitempty"`
	PromptDigest   string         `json:"prompt_digest,omitempty"`
	ResponseDigest string         `json:"response_digest,omitempty"`
	ResponseChars  int            `json:"response_chars"`
	RecordCount    int            `json:"record_count"`
	Stats          map[string]int `json:"stats,omitempty"`
	DurationMs     int64          `json:"duration_ms"`
	Success        bool           `json:"success"`
	ErrorMessage   string         `json:"error_message,omitempty"`
}

// Writer persists exchange records to a directory, one JSON file each.
// It is safe for concurrent use.
type Writer struct {
	dir   string
	mu    sync.Mutex
	seq   int
	nowFn func() time.Time
}

// NewWriter creates dir if needed and returns a writer rooted there.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, errors.New("journal: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("journal: create %s: %w", dir, err)
	}
	return &Writer{dir: dir, nowFn: time.Now}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteExchange stamps rec with a timestamp and sequence number and writes
// it to a new file. It returns the file path.
func (w *Writer) WriteExchange(rec *ExchangeRecord) (string, error) {
	if rec == nil {
		return "", errors.New("journal: nil record")
	}

	w.mu.Lock()
	w.seq++
	seq := w.seq
	if rec.Timestamp.IsZero() {
		rec.Timestamp = w.nowFn()
	}
	w.mu.Unlock()

	rec.Sequence = seq
	name := fmt.Sprintf("exchange_%s_%05d.json", rec.Timestamp.UTC().Format("20060102_150405"), seq)
	path := filepath.Join(w.dir, name)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("journal: encode record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("journal: write %s: %w", path, err)
	}
	return path, nil
}

// Digest returns the hex SHA-256 of s, used for raw replies.
func Digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
