// Mangamatch Core
// Copyright (c) 2026 The Mangamatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later

package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mangamatch/core/pkg/titles"
)

func TestScoreKnownScenarios(t *testing.T) {
	t.Parallel()

	e := New()

	tests := []struct {
		name   string
		titleA string
		titleB string
		want   int
	}{
		{"identical", "One Piece", "One Piece", 100},
		{"case_insensitive", "One Piece", "ONE PIECE", 100},
		{"volume_marker_ignored", "One Piece Vol. 5", "One Piece", 100},
		{"empty_left", "", "Anything", 0},
		{"empty_right", "Anything", "", 0},
		{"both_empty", "", "", 0},
		{"single_character_identity", "A", "A", 100},
		{"punctuation_only", "!!!", "???", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.Score(tt.titleA, tt.titleB))
		})
	}
}

func TestScoreUnrelatedTitlesStayLow(t *testing.T) {
	t.Parallel()

	e := New()

	// No shared tokens after normalization; only incidental character
	// overlap should register, well below match level.
	score := e.Score("Attack on Titan", "Shingeki no Kyojin")
	assert.Greater(t, score, 0)
	assert.Less(t, score, 50)
}

func TestScoreSymmetric(t *testing.T) {
	t.Parallel()

	e := New()
	pairs := [][2]string{
		{"One Piece", "One Piece Red"},
		{"Attack on Titan", "Shingeki no Kyojin"},
		{"Fullmetal Alchemist", "Fullmetal Alchemist Brotherhood"},
		{"ワンピース", "One Piece"},
		{"", "Berserk"},
	}
	for _, p := range pairs {
		assert.Equal(t, e.Score(p[0], p[1]), e.Score(p[1], p[0]),
			"score must be order-independent for %q / %q", p[0], p[1])
	}
}

func TestScoreRange(t *testing.T) {
	t.Parallel()

	e := New()
	pairs := [][2]string{
		{"One Piece", "One Piece"},
		{"One Piece", "Two Pieces"},
		{"a", "b"},
		{"", ""},
		{"進撃の巨人", "Attack on Titan"},
	}
	for _, p := range pairs {
		s := e.Score(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestScoreMonotonicDegradation(t *testing.T) {
	t.Parallel()

	e := New()
	exact := e.Score("One Piece", "One Piece")
	padded := e.Score("One Piece", "One Piece Unrelated Trailing Words")
	assert.Equal(t, 100, exact)
	assert.Less(t, padded, exact,
		"unrelated trailing text must not look like an exact match")
	assert.Greater(t, padded, 0)
}

func TestLengthGuardActivation(t *testing.T) {
	t.Parallel()

	e := New()

	// Normalized lengths 3 and 20: ratio 0.15 is far below the 0.7
	// threshold, so the guard formula must decide the score and the
	// algorithm suite must not run.
	a := "abc"
	b := "abcdefghijklmnopqrst"
	ratio := 3.0 / 20.0
	expected := int(math.Round(100 * titles.DiceCoefficient(a, b) * ratio))

	got := e.Score(a, b)
	assert.Equal(t, expected, got)

	stats := e.Stats()
	for name, s := range stats.Algorithms {
		assert.Zerof(t, s.Len, "algorithm cache %q must stay untouched on the guard path", name)
		assert.Zerof(t, s.Misses, "algorithm cache %q must stay untouched on the guard path", name)
	}
	assert.Equal(t, 1, stats.Results.Len, "guard results are still cached")
}

func TestScoreCacheDeterminism(t *testing.T) {
	t.Parallel()

	e := New()
	a, b := "One Piece Red", "One Piece Blue"

	first := e.Score(a, b)
	before := e.Stats()
	second := e.Score(a, b)
	after := e.Stats()

	assert.Equal(t, first, second)
	assert.Equal(t, before.Results.Hits+1, after.Results.Hits,
		"second call must be served from the result cache")
	for name := range before.Algorithms {
		assert.Equal(t, before.Algorithms[name], after.Algorithms[name],
			"algorithm cache %q must not be consulted on the cached path", name)
	}
}

func TestScoreWithConfigVariantsDoNotCollide(t *testing.T) {
	t.Parallel()

	e := New()
	a, b := "Fullmetal Alchemist", "Fullmetal Panic"

	exactOnly := DefaultConfig()
	exactOnly.SubstringWeight = 0
	exactOnly.WordOrderWeight = 0
	exactOnly.CharacterWeight = 0
	exactOnly.SemanticWeight = 0
	exactOnly.JaroWinklerWeight = 0
	exactOnly.NGramWeight = 0

	blended := e.ScoreWith(a, b, DefaultConfig())
	solo := e.ScoreWith(a, b, exactOnly)
	assert.NotEqual(t, blended, solo,
		"different configs must key different result cache entries")
	assert.Equal(t, blended, e.ScoreWith(a, b, DefaultConfig()))
	assert.Equal(t, solo, e.ScoreWith(a, b, exactOnly))
}

func TestScoreWithZeroWeights(t *testing.T) {
	t.Parallel()

	e := New()
	cfg := Config{LengthRatioThreshold: 0.7}

	assert.Equal(t, 0, e.ScoreWith("One Piece Red", "One Piece Blue", cfg))
	assert.Equal(t, 100, e.ScoreWith("One Piece", "One Piece", cfg),
		"identity fast path precedes the weighted blend")
}

func TestDebugModeBypassesResultCache(t *testing.T) {
	t.Parallel()

	var seen []Breakdown
	e := New(WithObserver(func(b Breakdown) { seen = append(seen, b) }))

	cfg := DefaultConfig()
	cfg.Debug = true

	a, b := "One Piece Red", "One Piece Blue"
	first := e.ScoreWith(a, b, cfg)
	second := e.ScoreWith(a, b, cfg)

	assert.Equal(t, first, second)
	require.Len(t, seen, 2, "every debug call must re-report")
	assert.Equal(t, 0, e.Stats().Results.Len, "debug calls must not populate the result cache")

	breakdown := seen[0]
	assert.False(t, breakdown.Guarded)
	assert.Len(t, breakdown.Scores, len(registry()))
	assert.Equal(t, first, breakdown.Final)
	for _, s := range breakdown.Scores {
		assert.GreaterOrEqual(t, s.Score, 0.0, "algorithm %s", s.Name)
		assert.LessOrEqual(t, s.Score, 1.0, "algorithm %s", s.Name)
	}
}

func TestDebugModeReportsGuard(t *testing.T) {
	t.Parallel()

	var seen []Breakdown
	e := New(WithObserver(func(b Breakdown) { seen = append(seen, b) }))

	cfg := DefaultConfig()
	cfg.Debug = true
	e.ScoreWith("abc", "abcdefghijklmnopqrst", cfg)

	require.Len(t, seen, 1)
	assert.True(t, seen[0].Guarded)
	assert.Empty(t, seen[0].Scores)
	assert.InDelta(t, 0.15, seen[0].LengthRatio, 1e-9)
}

func TestReset(t *testing.T) {
	t.Parallel()

	e := New()
	e.Score("One Piece Red", "One Piece Blue")
	e.Reset()

	stats := e.Stats()
	assert.Equal(t, 0, stats.Normalized.Len)
	assert.Equal(t, 0, stats.Words.Len)
	assert.Equal(t, 0, stats.Results.Len)
	for name, s := range stats.Algorithms {
		assert.Zerof(t, s.Len, "algorithm cache %q", name)
	}
}

func TestExtractMeaningfulWordsDefensiveCopy(t *testing.T) {
	t.Parallel()

	e := New()
	words := e.ExtractMeaningfulWords("One Piece Red")
	require.Equal(t, []string{"one", "piece", "red"}, words)

	words[0] = "mutated"
	assert.Equal(t, []string{"one", "piece", "red"},
		e.ExtractMeaningfulWords("One Piece Red"),
		"cached token list must not observe caller mutation")
}

func TestEngineNormalize(t *testing.T) {
	t.Parallel()

	e := New()
	assert.Equal(t, "onepiece", e.Normalize("One Piece Vol. 3"))
	assert.Equal(t, titles.Normalize("Kaguya-sama: Love Is War"),
		e.Normalize("Kaguya-sama: Love Is War"))
}

func TestPackageLevelSurface(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, CalculateSimilarity("Berserk", "Berserk"))
	assert.Equal(t, 100, CalculateSimilarityWith("Berserk", "BERSERK", DefaultConfig()))
	assert.Equal(t, "berserk", Normalize("Berserk (Official)"))
	assert.Equal(t, []string{"shingeki", "kyojin"}, ExtractMeaningfulWords("Shingeki no Kyojin"))
}

func TestPairKeySymmetric(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PairKey("a", "b"), PairKey("b", "a"))
	assert.Equal(t, PairKey("", "x"), PairKey("x", ""))
	assert.NotEqual(t, PairKey("ab", "c"), PairKey("a", "bc"),
		"separator must prevent concatenation collisions")
}

func TestConfigKeyDistinguishesWeights(t *testing.T) {
	t.Parallel()

	a := DefaultConfig()
	b := DefaultConfig()
	assert.Equal(t, a.Key(), b.Key())

	b.SemanticWeight += 0.01
	assert.NotEqual(t, a.Key(), b.Key())

	// Debug is excluded: debug calls never touch the cache.
	c := DefaultConfig()
	c.Debug = true
	assert.Equal(t, a.Key(), c.Key())
}
