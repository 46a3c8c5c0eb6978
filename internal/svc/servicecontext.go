package svc

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"

	"strategycoach/internal/config"
	"strategycoach/internal/middleware"
	"strategycoach/internal/session"
	"strategycoach/pkg/coach"
	"strategycoach/pkg/halloffame"
	"strategycoach/pkg/journal"
	llmpkg "strategycoach/pkg/llm"
	"strategycoach/pkg/prompt"
)

type ServiceContext struct {
	Config config.Config

	// Generator is nil when no LLM credential is configured.
	Generator  llmpkg.Generator
	Coach      *coach.Coach
	Journal    *journal.Writer
	Sessions   *session.Store
	HallOfFame *halloffame.Table

	Session rest.Middleware
}

// Option adjusts how Build wires dependencies.
type Option func(*buildOptions)

type buildOptions struct {
	generator llmpkg.Generator
	llmOpts   []llmpkg.ClientOption
}

// WithGenerator supplies a ready generator instead of building one from
// the LLM section.
func WithGenerator(gen llmpkg.Generator) Option {
	return func(o *buildOptions) {
		o.generator = gen
	}
}

// WithLLMOptions passes client options through to the generator.
func WithLLMOptions(opts ...llmpkg.ClientOption) Option {
	return func(o *buildOptions) {
		o.llmOpts = append(o.llmOpts, opts...)
	}
}

func NewServiceContext(c config.Config) *ServiceContext {
	sc, err := Build(c)
	logx.Must(err)
	return sc
}

// Build wires the service dependencies from c.
func Build(c config.Config, opts ...Option) (*ServiceContext, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	sc := &ServiceContext{Config: c}

	gen := o.generator
	if gen == nil && c.AIEnabled() {
		built, err := llmpkg.NewGenerator(context.Background(), c.LLM.Value, o.llmOpts...)
		if err != nil && !errors.Is(err, llmpkg.ErrMissingAPIKey) {
			return nil, fmt.Errorf("build llm generator: %w", err)
		}
		if err == nil {
			gen = built
		}
	}
	sc.Generator = gen
	if gen == nil {
		logx.Info("coach suggestions disabled: no LLM credential configured")
	}

	coachOpts := []coach.Option{coach.WithSuggestionCount(c.Coach.SuggestionCount)}
	if c.Coach.PromptTemplate != "" {
		tpl, err := prompt.NewCoachTemplate(c.Coach.PromptTemplate)
		if err != nil {
			return nil, fmt.Errorf("load coach prompt: %w", err)
		}
		coachOpts = append(coachOpts, coach.WithTemplate(tpl))
	}
	if c.Coach.JournalDir != "" {
		w, err := journal.NewWriter(c.Coach.JournalDir)
		if err != nil {
			return nil, err
		}
		sc.Journal = w
		coachOpts = append(coachOpts, coach.WithJournal(w))
	}

	// A nil Generator must reach the coach as a nil interface.
	var textGen coach.TextGenerator
	if gen != nil {
		textGen = gen
	}
	coachSvc, err := coach.New(textGen, coachOpts...)
	if err != nil {
		return nil, err
	}
	sc.Coach = coachSvc

	store, err := session.NewStore(c.Session.TTL, c.Session.Limit)
	if err != nil {
		return nil, err
	}
	sc.Sessions = store
	sc.Session = middleware.NewSessionMiddleware(store, c.Session.TTL).Handle

	table, err := halloffame.Default()
	if err != nil {
		return nil, fmt.Errorf("load hall of fame: %w", err)
	}
	sc.HallOfFame = table

	return sc, nil
}

// Close releases the generator.
func (sc *ServiceContext) Close() error {
	if sc.Generator == nil {
		return nil
	}
	return sc.Generator.Close()
}
