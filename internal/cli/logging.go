package cli

import (
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/internal/config"
	"strategycoach/pkg/confkit"
	llmpkg "strategycoach/pkg/llm"
)

// ConfigSummaryLines returns human readable lines describing the loaded app config.
// Credentials are reported only as present or absent.
func ConfigSummaryLines(cfg *config.Config) []string {
	if cfg == nil {
		return []string{"Configuration: <nil>"}
	}

	lines := []string{
		fmt.Sprintf("Config file: %s", valueOr(cfg.MainPath(), "inline")),
		fmt.Sprintf("Environment: %s", cfg.Env),
		fmt.Sprintf("Listen: %s:%d", cfg.Host, cfg.Port),
		fmt.Sprintf("Sessions (ttl/limit): %s / %d", cfg.Session.TTL, cfg.Session.Limit),
		fmt.Sprintf("Coach prompt: %s", valueOr(cfg.Coach.PromptTemplate, "built-in")),
		fmt.Sprintf("Coach journal: %s", valueOr(cfg.Coach.JournalDir, "disabled")),
		sectionLine("LLM config", cfg.LLM),
	}
	if cfg.LLM.Loaded() {
		lines = append(lines, llmLines(cfg.LLM.Value)...)
	}
	lines = append(lines, fmt.Sprintf("AI coach: %s", enabled(cfg.AIEnabled())))
	return lines
}

// LogConfigSummary emits the configuration summary using logx.
func LogConfigSummary(cfg *config.Config) {
	lines := ConfigSummaryLines(cfg)
	if len(lines) == 0 {
		return
	}
	logx.Info("configuration summary")
	for _, line := range lines {
		logx.Infof("config • %s", line)
	}
}

func llmLines(c *llmpkg.Config) []string {
	return []string{
		fmt.Sprintf("LLM provider/model: %s / %s", c.Provider, c.DefaultModel),
		fmt.Sprintf("LLM endpoint: %s", valueOr(c.BaseURL, "provider default")),
		fmt.Sprintf("LLM timeout/retries: %s / %d", c.Timeout, c.MaxRetries),
		fmt.Sprintf("LLM api key: %s", presence(c.Enabled())),
	}
}

func presence(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}

func enabled(ok bool) string {
	if ok {
		return "enabled"
	}
	return "disabled"
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func sectionLine[T any](name string, section confkit.Section[T]) string {
	switch {
	case strings.TrimSpace(section.File) != "":
		return fmt.Sprintf("%s: %s", name, section.File)
	case section.Value != nil:
		return fmt.Sprintf("%s: inline", name)
	default:
		return fmt.Sprintf("%s: not configured", name)
	}
}
