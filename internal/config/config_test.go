package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func clearCoachEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"COACH_LLM_PROVIDER", "COACH_LLM_API_KEY", "COACH_LLM_BASE_URL",
		"COACH_LLM_MODEL", "COACH_LLM_TIMEOUT", "COACH_LLM_MAX_RETRIES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadWithLLMSection(t *testing.T) {
	clearCoachEnv(t)
	dir := t.TempDir()

	writeFile(t, dir, "llm.yaml", `
provider: gemini
api_key: ${COACH_TEST_KEY}
default_model: gemini-1.5-flash
timeout: 20s
`)
	mainPath := writeFile(t, dir, "strategycoach.yaml", `
Name: strategycoach-test
Host: 127.0.0.1
Port: 0
Env: Dev
Session:
  TTL: 30m
  Limit: 50
Coach:
  JournalDir: journal
LLM:
  File: llm.yaml
`)
	t.Setenv("COACH_TEST_KEY", "secret")

	cfg, err := Load(mainPath)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 50, cfg.Session.Limit)
	assert.Equal(t, 3, cfg.Coach.SuggestionCount)
	assert.Equal(t, filepath.Join(dir, "journal"), cfg.Coach.JournalDir)
	assert.Equal(t, "", cfg.Coach.PromptTemplate)
	assert.Equal(t, mainPath, cfg.MainPath())

	require.True(t, cfg.LLM.Loaded())
	assert.Equal(t, filepath.Join(dir, "llm.yaml"), cfg.LLM.File)
	assert.Equal(t, "secret", cfg.LLM.Value.APIKey)
	assert.Equal(t, 20*time.Second, cfg.LLM.Value.Timeout)
	assert.True(t, cfg.AIEnabled())
}

func TestLoadWithoutLLM(t *testing.T) {
	clearCoachEnv(t)
	dir := t.TempDir()
	mainPath := writeFile(t, dir, "strategycoach.yaml", `
Name: strategycoach-test
Host: 127.0.0.1
Port: 0
`)

	cfg, err := Load(mainPath)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.False(t, cfg.LLM.Loaded())
	assert.False(t, cfg.AIEnabled())
}

func TestLoadWithKeylessLLM(t *testing.T) {
	clearCoachEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "llm.yaml", "default_model: gemini-1.5-flash\n")
	mainPath := writeFile(t, dir, "strategycoach.yaml", `
Name: strategycoach-test
Host: 127.0.0.1
Port: 0
LLM:
  File: llm.yaml
`)

	cfg, err := Load(mainPath)
	require.NoError(t, err, "a missing credential only disables suggestions")
	assert.True(t, cfg.LLM.Loaded())
	assert.False(t, cfg.AIEnabled())
}

func TestLoadErrors(t *testing.T) {
	clearCoachEnv(t)
	dir := t.TempDir()

	t.Run("bad env", func(t *testing.T) {
		p := writeFile(t, dir, "bad-env.yaml", "Name: x\nHost: 127.0.0.1\nPort: 0\nEnv: staging\n")
		_, err := Load(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "env must be one of")
	})

	t.Run("missing llm file", func(t *testing.T) {
		p := writeFile(t, dir, "missing-llm.yaml", "Name: x\nHost: 127.0.0.1\nPort: 0\nLLM:\n  File: nope.yaml\n")
		_, err := Load(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load llm config")
	})

	t.Run("missing main file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
	})
}

func TestValidateSession(t *testing.T) {
	cfg := &Config{Session: SessionConf{TTL: -time.Second}}
	require.Error(t, cfg.Validate())

	cfg = &Config{Session: SessionConf{Limit: -1}}
	require.Error(t, cfg.Validate())

	cfg = &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "test", cfg.Env)
}
