package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/pkg/journal"
	"strategycoach/pkg/llm"
	"strategycoach/pkg/prompt"
	"strategycoach/pkg/strategy"
)

var (
	// ErrDisabled means no generator is configured, usually because the
	// API credential is absent.
	ErrDisabled = errors.New("coach: suggestions are disabled")
	// ErrEmptySituation rejects a blank situation before any call is made.
	ErrEmptySituation = errors.New("coach: situation is empty")
)

// GenerationError wraps a failed outbound call or an unusable reply.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("coach: generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// TextGenerator is the outbound call the coach depends on.
type TextGenerator interface {
	Generate(ctx context.Context, prompt llm.Prompt) (string, error)
}

// Result is the outcome of a successful call. Zero records is not an
// error; Usable reports whether anything could be parsed.
type Result struct {
	Records      []strategy.Record `json:"records"`
	Stats        strategy.Stats    `json:"stats"`
	PromptDigest string            `json:"promptDigest"`
	Usable       bool              `json:"usable"`
}

// Coach runs the prompt, generate and parse pipeline.
type Coach struct {
	generator TextGenerator
	template  *prompt.CoachTemplate
	journal   *journal.Writer
	count     int
	nowFn     func() time.Time
}

// Option customises a Coach.
type Option func(*Coach)

// WithJournal records every call to w.
func WithJournal(w *journal.Writer) Option {
	return func(c *Coach) {
		c.journal = w
	}
}

// WithTemplate replaces the built-in instruction template.
func WithTemplate(tpl *prompt.CoachTemplate) Option {
	return func(c *Coach) {
		c.template = tpl
	}
}

// WithSuggestionCount changes how many strategies are requested.
func WithSuggestionCount(n int) Option {
	return func(c *Coach) {
		if n > 0 {
			c.count = n
		}
	}
}

// New builds a coach. A nil generator yields a coach whose Suggest always
// returns ErrDisabled.
func New(gen TextGenerator, opts ...Option) (*Coach, error) {
	c := &Coach{
		generator: gen,
		count:     prompt.DefaultSuggestionCount,
		nowFn:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.template == nil {
		tpl, err := prompt.NewCoachTemplate("")
		if err != nil {
			return nil, fmt.Errorf("coach: load default template: %w", err)
		}
		c.template = tpl
	}
	return c, nil
}

// Enabled reports whether Suggest can reach a generator.
func (c *Coach) Enabled() bool {
	return c != nil && c.generator != nil
}

// PromptSource reports where the instruction template came from.
func (c *Coach) PromptSource() string {
	return c.template.Source()
}

// Suggest asks the generator for strategies fitting situation and parses
// the reply.
func (c *Coach) Suggest(ctx context.Context, situation string) (*Result, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	situation = strings.TrimSpace(situation)
	if situation == "" {
		return nil, ErrEmptySituation
	}

	msgs, err := c.template.Render(prompt.CoachData{Situation: situation, Count: c.count})
	if err != nil {
		return nil, fmt.Errorf("coach: render prompt: %w", err)
	}
	promptDigest := prompt.DigestString(msgs.Text())

	start := c.nowFn()
	raw, err := c.generator.Generate(ctx, llm.Prompt{System: msgs.System, User: msgs.User})
	elapsed := c.nowFn().Sub(start)
	if err == nil && strings.TrimSpace(raw) == "" {
		err = llm.ErrEmptyResponse
	}
	if err != nil {
		logx.WithContext(ctx).Errorf("coach: generate failed after %s: %v", elapsed, err)
		c.record(ctx, &journal.ExchangeRecord{
			PromptDigest: promptDigest,
			DurationMs:   elapsed.Milliseconds(),
			ErrorMessage: err.Error(),
		})
		return nil, &GenerationError{Err: err}
	}

	records, stats := strategy.ParseWithStats(raw)
	result := &Result{
		Records:      records,
		Stats:        stats,
		PromptDigest: promptDigest,
		Usable:       len(records) > 0,
	}

	if !result.Usable {
		logx.WithContext(ctx).Infof("coach: reply had no usable blocks (blocks=%d missing=%d malformed=%d)",
			stats.Blocks, stats.MissingMarker, stats.Malformed)
	} else {
		logx.WithContext(ctx).Infof("coach: parsed %d records from %d blocks in %s",
			len(records), stats.Blocks, elapsed)
	}

	c.record(ctx, &journal.ExchangeRecord{
		PromptDigest:   promptDigest,
		ResponseDigest: journal.Digest(raw),
		ResponseChars:  len([]rune(raw)),
		RecordCount:    len(records),
		Stats: map[string]int{
			"blocks":         stats.Blocks,
			"well_formed":    stats.WellFormed,
			"missing_marker": stats.MissingMarker,
			"malformed":      stats.Malformed,
		},
		DurationMs: elapsed.Milliseconds(),
		Success:    true,
	})
	return result, nil
}

func (c *Coach) record(ctx context.Context, rec *journal.ExchangeRecord) {
	if c.journal == nil {
		return
	}
	rec.SessionID = SessionIDFromContext(ctx)
	rec.TemplateDigest = c.template.Digest()
	if cfgr, ok := c.generator.(interface{ GetConfig() *llm.Config }); ok {
		if cfg := cfgr.GetConfig(); cfg != nil {
			rec.Provider = cfg.Provider
			rec.Model = cfg.DefaultModel
		}
	}
	if _, err := c.journal.WriteExchange(rec); err != nil {
		logx.WithContext(ctx).Errorf("coach: write journal: %v", err)
	}
}
