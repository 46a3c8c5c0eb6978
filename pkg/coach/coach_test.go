package coach

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx/logtest"

	"strategycoach/pkg/journal"
	"strategycoach/pkg/llm"
	"strategycoach/pkg/prompt"
	"strategycoach/pkg/strategy"
)

type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []llm.Prompt
}

func (f *fakeGenerator) Generate(_ context.Context, p llm.Prompt) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, p)
	return f.reply, f.err
}

func (f *fakeGenerator) GetConfig() *llm.Config {
	return &llm.Config{Provider: llm.ProviderGemini, DefaultModel: "gemini-1.5-flash"}
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

const threeBlocks = `[전략]: 지금 이 순간에 집중하자
[해설]: 과거의 실수나 미래의 결과가 아닌 현재의 플레이에만 집중합니다.
---
[전략]: 나는 준비되었다
[해설]: 충분히 연습했음을 스스로 상기시켜 자신감을 높입니다.
---
[전략]: 실수는 성장의 기회
[해설]: 실수를 두려워하지 않고 배움의 과정으로 받아들입니다.`

func TestSuggest(t *testing.T) {
	gen := &fakeGenerator{reply: threeBlocks}
	c, err := New(gen)
	require.NoError(t, err)
	require.True(t, c.Enabled())

	res, err := c.Suggest(context.Background(), "  결승전을 앞두고 너무 긴장돼요  ")
	require.NoError(t, err)
	require.True(t, res.Usable)

	want := []strategy.Record{
		{Strategy: "지금 이 순간에 집중하자", Explanation: "과거의 실수나 미래의 결과가 아닌 현재의 플레이에만 집중합니다."},
		{Strategy: "나는 준비되었다", Explanation: "충분히 연습했음을 스스로 상기시켜 자신감을 높입니다."},
		{Strategy: "실수는 성장의 기회", Explanation: "실수를 두려워하지 않고 배움의 과정으로 받아들입니다."},
	}
	if diff := cmp.Diff(want, res.Records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, strategy.Stats{Blocks: 3, WellFormed: 3}, res.Stats)
	assert.Len(t, res.PromptDigest, 64)

	require.Equal(t, 1, gen.calls())
	assert.Contains(t, gen.prompts[0].User, "'결승전을 앞두고 너무 긴장돼요'")
	assert.Contains(t, gen.prompts[0].System, "[전략]:")
	assert.NotContains(t, gen.prompts[0].System, "결승전")
}

func TestSuggestDisabled(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	_, err = c.Suggest(context.Background(), "긴장돼요")
	require.ErrorIs(t, err, ErrDisabled)

	var nilCoach *Coach
	assert.False(t, nilCoach.Enabled())
}

func TestSuggestEmptySituation(t *testing.T) {
	gen := &fakeGenerator{reply: threeBlocks}
	c, err := New(gen)
	require.NoError(t, err)

	for _, situation := range []string{"", "   ", "\n\t"} {
		_, err := c.Suggest(context.Background(), situation)
		require.ErrorIs(t, err, ErrEmptySituation)
	}
	assert.Zero(t, gen.calls(), "no outbound call for a blank situation")
}

func TestSuggestGenerationFailure(t *testing.T) {
	boom := errors.New("connection refused")
	c, err := New(&fakeGenerator{err: boom})
	require.NoError(t, err)

	_, err = c.Suggest(context.Background(), "긴장돼요")
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, boom)
}

func TestSuggestEmptyReply(t *testing.T) {
	c, err := New(&fakeGenerator{reply: "  \n"})
	require.NoError(t, err)

	_, err = c.Suggest(context.Background(), "긴장돼요")
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

func TestSuggestNothingUsable(t *testing.T) {
	reply := "오늘은 좋은 하루네요.\n---\n[해설]: 뒤집힌 블록\n[전략]: 거꾸로"
	c, err := New(&fakeGenerator{reply: reply})
	require.NoError(t, err)

	res, err := c.Suggest(context.Background(), "긴장돼요")
	require.NoError(t, err)
	assert.False(t, res.Usable)
	assert.Empty(t, res.Records)
	assert.NotNil(t, res.Records)
	assert.Equal(t, strategy.Stats{Blocks: 2, MissingMarker: 1, Malformed: 1}, res.Stats)
}

func TestSuggestNothingUsableLogsInfo(t *testing.T) {
	collector := logtest.NewCollector(t)
	c, err := New(&fakeGenerator{reply: "형식이 없는 답변"})
	require.NoError(t, err)

	_, err = c.Suggest(context.Background(), "긴장돼요")
	require.NoError(t, err)

	out := collector.String()
	assert.Contains(t, out, "reply had no usable blocks")
	assert.Contains(t, out, `"level":"info"`)
	assert.NotContains(t, out, `"level":"slow"`)
}

func TestSuggestionCountReachesPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: threeBlocks}
	tpl, err := prompt.NewCoachTemplate("")
	require.NoError(t, err)
	c, err := New(gen, WithTemplate(tpl), WithSuggestionCount(5))
	require.NoError(t, err)

	_, err = c.Suggest(context.Background(), "긴장돼요")
	require.NoError(t, err)
	assert.Contains(t, gen.prompts[0].System, "create 5 distinct")
	assert.Equal(t, "inline:coach.tmpl", c.PromptSource())
}

func TestSuggestWritesJournal(t *testing.T) {
	dir := t.TempDir()
	w, err := journal.NewWriter(dir)
	require.NoError(t, err)

	c, err := New(&fakeGenerator{reply: threeBlocks}, WithJournal(w))
	require.NoError(t, err)

	ctx := ContextWithSessionID(context.Background(), "session-42")
	_, err = c.Suggest(ctx, "긴장돼요")
	require.NoError(t, err)

	failing, err := New(&fakeGenerator{err: errors.New("timeout")}, WithJournal(w))
	require.NoError(t, err)
	_, err = failing.Suggest(ctx, "긴장돼요")
	require.Error(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "exchange_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 2)

	var recs []journal.ExchangeRecord
	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		var rec journal.ExchangeRecord
		require.NoError(t, json.Unmarshal(data, &rec))
		recs = append(recs, rec)
	}

	var ok, failed *journal.ExchangeRecord
	for i := range recs {
		if recs[i].Success {
			ok = &recs[i]
		} else {
			failed = &recs[i]
		}
	}
	require.NotNil(t, ok)
	require.NotNil(t, failed)

	assert.Equal(t, "session-42", ok.SessionID)
	assert.Equal(t, llm.ProviderGemini, ok.Provider)
	assert.Equal(t, 3, ok.RecordCount)
	assert.Equal(t, journal.Digest(threeBlocks), ok.ResponseDigest)
	assert.Equal(t, c.template.Digest(), ok.TemplateDigest)
	assert.Equal(t, ok.TemplateDigest, failed.TemplateDigest)
	assert.True(t, strings.Contains(failed.ErrorMessage, "timeout"))
}

func TestSessionIDFromContext(t *testing.T) {
	assert.Equal(t, "", SessionIDFromContext(context.Background()))
	assert.Equal(t, "abc", SessionIDFromContext(ContextWithSessionID(context.Background(), "abc")))
}
