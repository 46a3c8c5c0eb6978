package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	"strategycoach/pkg/confkit"
	llmpkg "strategycoach/pkg/llm"
)

type SessionConf struct {
	// TTL is how long an idle session survives.
	TTL   time.Duration `json:",default=2h"`
	Limit int           `json:",default=10000"`
}

type CoachConf struct {
	// PromptTemplate overrides the built-in instruction template.
	PromptTemplate  string `json:",optional"`
	SuggestionCount int    `json:",default=3"`
	// JournalDir enables the exchange journal when set.
	JournalDir string `json:",optional"`
}

type Config struct {
	rest.RestConf
	// Env indicates the running environment: test | dev | prod
	Env     string      `json:",default=test"`
	Session SessionConf `json:",optional"`
	Coach   CoachConf   `json:",optional"`

	// LLM is optional. Without it, or without an API key in it, the
	// suggestion endpoints report the feature as disabled.
	LLM confkit.Section[llmpkg.Config] `json:",optional"`

	mainPath string
	baseDir  string
}

// AIEnabled reports whether a usable LLM credential was loaded.
func (c *Config) AIEnabled() bool {
	return c.LLM.Loaded() && c.LLM.Value.Enabled()
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.hydrateSections(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	env := strings.ToLower(strings.TrimSpace(c.Env))
	switch env {
	case "", "test", "dev", "prod":
		if env == "" {
			env = "test"
		}
		c.Env = env
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	return c.validateSession()
}

func (c *Config) validateSession() error {
	if c.Session.TTL < 0 {
		return errors.New("config: session.ttl cannot be negative")
	}
	if c.Session.Limit < 0 {
		return errors.New("config: session.limit cannot be negative")
	}
	if c.Coach.SuggestionCount < 0 {
		return errors.New("config: coach.suggestionCount cannot be negative")
	}
	return nil
}

func (c *Config) hydrateSections() error {
	base := c.baseDir

	if err := c.LLM.Hydrate(base, llmpkg.LoadConfig); err != nil {
		return fmt.Errorf("load llm config: %w", err)
	}
	c.Coach.PromptTemplate = confkit.ResolvePath(base, c.Coach.PromptTemplate)
	c.Coach.JournalDir = confkit.ResolvePath(base, c.Coach.JournalDir)
	return nil
}

// MainPath is the absolute path Load read, empty for configs built in code.
func (c *Config) MainPath() string {
	return c.mainPath
}
