package strategy

import "strings"

const (
	// StrategyMarker introduces the strategy phrase of a block.
	StrategyMarker = "[전략]:"
	// ExplanationMarker introduces the explanation of a block.
	ExplanationMarker = "[해설]:"
	// BlockDelimiter separates blocks when it stands alone on a line.
	BlockDelimiter = "---"
)

// Record is one suggestion extracted from a model reply.
type Record struct {
	Strategy    string `json:"strategy"`
	Explanation string `json:"explanation"`
}

// BlockKind classifies a block before any extraction is attempted.
type BlockKind int

const (
	// WellFormed blocks carry both markers, strategy first.
	WellFormed BlockKind = iota
	// MissingMarker blocks lack one or both markers.
	MissingMarker
	// Malformed blocks carry both markers in reverse order.
	Malformed
)

func (k BlockKind) String() string {
	switch k {
	case WellFormed:
		return "well_formed"
	case MissingMarker:
		return "missing_marker"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Stats counts blocks per kind for a single parse.
type Stats struct {
	Blocks        int `json:"blocks"`
	WellFormed    int `json:"wellFormed"`
	MissingMarker int `json:"missingMarker"`
	Malformed     int `json:"malformed"`
}

// Parse converts a raw model reply into records in block order.
// Blocks lacking a marker or carrying them in reverse order are skipped.
func Parse(raw string) []Record {
	records, _ := ParseWithStats(raw)
	return records
}

// ParseWithStats is Parse plus per-kind block counts.
func ParseWithStats(raw string) ([]Record, Stats) {
	var stats Stats
	records := make([]Record, 0)
	for _, block := range SplitBlocks(raw) {
		stats.Blocks++
		rec, kind := Extract(block)
		switch kind {
		case WellFormed:
			stats.WellFormed++
			records = append(records, rec)
		case MissingMarker:
			stats.MissingMarker++
		case Malformed:
			stats.Malformed++
		}
	}
	return records, stats
}

// SplitBlocks partitions raw on lines whose trimmed content is exactly "---".
// An empty input yields no blocks.
func SplitBlocks(raw string) []string {
	if raw == "" {
		return nil
	}
	var (
		blocks  []string
		current []string
	)
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == BlockDelimiter {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
			continue
		}
		current = append(current, line)
	}
	return append(blocks, strings.Join(current, "\n"))
}

// Classify reports whether block can be extracted.
func Classify(block string) BlockKind {
	s := strings.Index(block, StrategyMarker)
	e := strings.Index(block, ExplanationMarker)
	switch {
	case s < 0 || e < 0:
		return MissingMarker
	case e < s:
		return Malformed
	default:
		return WellFormed
	}
}

// Extract returns the record of a well-formed block. For any other kind the
// record is zero and must be ignored.
func Extract(block string) (Record, BlockKind) {
	kind := Classify(block)
	if kind != WellFormed {
		return Record{}, kind
	}
	rest := block[strings.Index(block, StrategyMarker)+len(StrategyMarker):]
	// Classify guarantees the explanation marker follows the strategy marker.
	cut := strings.Index(rest, ExplanationMarker)
	return Record{
		Strategy:    strings.TrimSpace(rest[:cut]),
		Explanation: strings.TrimSpace(rest[cut+len(ExplanationMarker):]),
	}, WellFormed
}
