package dictionary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"dailyword/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockProvider struct {
	name   string
	result *types.MeaningResult
	err    error
	calls  int
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Lookup(_ context.Context, _ string) (*types.MeaningResult, error) {
	m.calls++
	if m.result == nil {
		return nil, m.err
	}
	return m.result.Clone(), m.err
}

type mockTranslator struct {
	out   string
	calls int
}

func (m *mockTranslator) Translate(_ context.Context, _ string) string {
	m.calls++
	return m.out
}

func hit(source string, defs ...string) *types.MeaningResult {
	r := &types.MeaningResult{Word: "APPLE", Source: source}
	for _, d := range defs {
		r.Meanings = append(r.Meanings, types.Meaning{PartOfSpeech: "noun", Definition: d})
	}
	return r
}

func TestResolver_FirstSourceWins(t *testing.T) {
	a := &mockProvider{name: "A", result: hit("A", "a fruit")}
	b := &mockProvider{name: "B", result: hit("B", "other")}
	c := &mockProvider{name: "C", result: hit("C", "other")}
	tr := &mockTranslator{out: "सेब"}

	r := NewResolver(tr, newTestLogger(), a, b, c, DefaultFallback())
	got := r.Resolve(context.Background(), "apple")

	require.NotNil(t, got)
	assert.Equal(t, "A", got.Source)
	assert.Equal(t, "APPLE", got.Word)
	assert.Equal(t, "सेब", got.HindiTranslation)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 0, b.calls)
	assert.Equal(t, 0, c.calls)
	assert.Equal(t, 1, tr.calls)
}

func TestResolver_FallsThroughToSecondSource(t *testing.T) {
	tests := []struct {
		name string
		a    *mockProvider
	}{
		{name: "first source errors", a: &mockProvider{name: "A", err: errors.New("timeout")}},
		{name: "first source empty", a: &mockProvider{name: "A"}},
		{name: "first source has no definitions", a: &mockProvider{name: "A", result: hit("A", "", "  ")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &mockProvider{name: "B", result: hit("B", "a fruit")}
			c := &mockProvider{name: "C", result: hit("C", "other")}

			r := NewResolver(&mockTranslator{}, newTestLogger(), tt.a, b, c, DefaultFallback())
			got := r.Resolve(context.Background(), "apple")

			require.NotNil(t, got)
			assert.Equal(t, "B", got.Source)
			assert.Equal(t, 1, tt.a.calls)
			assert.Equal(t, 1, b.calls)
			assert.Equal(t, 0, c.calls)
		})
	}
}

func TestResolver_AllRemoteFail_UsesFallbackVerbatim(t *testing.T) {
	failing := func(name string) *mockProvider {
		return &mockProvider{name: name, err: errors.New("boom")}
	}
	tr := &mockTranslator{out: "प्रतिक्रिया"}
	r := NewResolver(tr, newTestLogger(), failing("A"), failing("B"), failing("C"), DefaultFallback())

	got := r.Resolve(context.Background(), "REACT")

	require.NotNil(t, got)
	assert.Equal(t, DefaultFallback().Get("react"), got)
	assert.Equal(t, FallbackSource, got.Source)
	assert.Equal(t, "", got.HindiTranslation)
	assert.Equal(t, 0, tr.calls, "fallback entries are not translated")
}

func TestResolver_AllFail_UnknownWord(t *testing.T) {
	var observed []string
	r := NewResolver(nil, newTestLogger(),
		&mockProvider{name: "A", err: errors.New("boom")},
		&mockProvider{name: "B"},
		&mockProvider{name: "C"},
		DefaultFallback(),
	)
	r.OnResolved(func(source string) { observed = append(observed, source) })

	assert.Nil(t, r.Resolve(context.Background(), "zzzzz"))
	assert.Equal(t, []string{"none"}, observed)
}

func TestResolver_TruncatesMeanings(t *testing.T) {
	a := &mockProvider{name: "A", result: hit("A", "one", "", "two", "three", "four", "five")}
	r := NewResolver(nil, newTestLogger(), a)

	got := r.Resolve(context.Background(), "apple")

	require.NotNil(t, got)
	require.Len(t, got.Meanings, MaxMeanings)
	assert.Equal(t, []string{"one", "two", "three"}, []string{
		got.Meanings[0].Definition, got.Meanings[1].Definition, got.Meanings[2].Definition,
	})
	assert.Equal(t, "", got.HindiTranslation)
}

func TestResolver_TranslationFailureKeepsResult(t *testing.T) {
	a := &mockProvider{name: "A", result: hit("A", "a fruit")}
	r := NewResolver(&mockTranslator{out: ""}, newTestLogger(), a)

	got := r.Resolve(context.Background(), "apple")

	require.NotNil(t, got)
	assert.Equal(t, "A", got.Source)
	assert.Equal(t, "", got.HindiTranslation)
}

func TestResolver_Sources(t *testing.T) {
	r := NewResolver(nil, newTestLogger(), &mockProvider{name: "A"}, &mockProvider{name: "B"}, DefaultFallback())
	assert.Equal(t, []string{"A", "B", TableName}, r.Sources())
}

func TestResolver_OnLookupReportsRemoteSources(t *testing.T) {
	a := &mockProvider{name: "A", err: errors.New("status code: 500")}
	b := &mockProvider{name: "B"}

	type lookup struct {
		source string
		failed bool
	}
	var got []lookup

	r := NewResolver(nil, newTestLogger(), a, b, DefaultFallback())
	r.OnLookup(func(source string, err error) {
		got = append(got, lookup{source: source, failed: err != nil})
	})
	result := r.Resolve(context.Background(), "react")

	require.NotNil(t, result)
	assert.Equal(t, FallbackSource, result.Source)
	assert.Equal(t, []lookup{{source: "A", failed: true}, {source: "B", failed: false}}, got)
}
