package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strategycoach/pkg/coach"
	"strategycoach/pkg/halloffame"
	llmpkg "strategycoach/pkg/llm"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const sampleReply = `[전략]: 나는 준비되었다
[해설]: 충분히 연습했음을 떠올립니다.
---
[전략]: 해설이 없는 블록`

func TestParseStdin(t *testing.T) {
	out, err := execute(t, sampleReply, "parse")
	require.NoError(t, err)

	var got parseOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Records, 1)
	assert.Equal(t, "나는 준비되었다", got.Records[0].Strategy)
	assert.Equal(t, 2, got.Stats.Blocks)
	assert.Equal(t, 1, got.Stats.MissingMarker)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reply.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleReply), 0o600))

	out, err := execute(t, "", "parse", path)
	require.NoError(t, err)
	assert.Contains(t, out, "충분히 연습했음을 떠올립니다.")

	_, err = execute(t, "", "parse", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestHallOfFame(t *testing.T) {
	out, err := execute(t, "", "halloffame", "--sport", "축구", "--json")
	require.NoError(t, err)

	var athletes []halloffame.Athlete
	require.NoError(t, json.Unmarshal([]byte(out), &athletes))
	require.NotEmpty(t, athletes)
	for _, a := range athletes {
		assert.Equal(t, "축구", a.Sport)
	}

	out, err = execute(t, "", "halloffame")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.Equal(t, 9, strings.Count(out, "\n"))
}

type cannedGenerator string

func (g cannedGenerator) Generate(context.Context, llmpkg.Prompt) (string, error) {
	return string(g), nil
}

func TestRunSuggest(t *testing.T) {
	cmd := &cobra.Command{}
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	require.NoError(t, runSuggest(context.Background(), cmd, cannedGenerator(sampleReply), "긴장돼요"))
	var res coach.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.True(t, res.Usable)
	assert.Len(t, res.Records, 1)
	assert.Empty(t, errOut.String())

	out.Reset()
	require.NoError(t, runSuggest(context.Background(), cmd, cannedGenerator("아무 형식 없음"), "긴장돼요"))
	assert.Contains(t, errOut.String(), "no usable strategy blocks")

	err := runSuggest(context.Background(), cmd, nil, "긴장돼요")
	require.ErrorIs(t, err, coach.ErrDisabled)
}

func TestSuggestRequiresSituation(t *testing.T) {
	_, err := execute(t, "", "suggest")
	require.Error(t, err)
}

func TestSuggestWithoutKey(t *testing.T) {
	t.Setenv("COACH_LLM_API_KEY", "")
	t.Setenv("NO_DOTENV", "1")
	path := filepath.Join(t.TempDir(), "llm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: gemini\n"), 0o600))

	_, err := execute(t, "", "suggest", "-s", "긴장돼요", "--llm-config", path)
	require.ErrorIs(t, err, coach.ErrDisabled)
}
