// Mangamatch Core
// Copyright (c) 2026 The Mangamatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Mangamatch Core.
//
// Mangamatch Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mangamatch Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mangamatch Core.  If not, see <http://www.gnu.org/licenses/>.

// Package similarity scores how likely two free-text manga titles name the
// same work. Seven independent algorithms run over normalized and tokenized
// forms of both titles; a weighted combiner blends their [0,1] sub-scores
// into a single integer confidence in [0,100]. Every layer of computation is
// memoized in bounded LRU caches, so scoring one imported title against
// hundreds of catalog candidates in a tight loop stays cheap.
package similarity

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/mangamatch/core/pkg/memoize"
	"github.com/mangamatch/core/pkg/titles"
)

// Cache capacities. Tunable, but must stay finite: they are the only bound
// on memory growth over long review sessions.
const (
	textCacheCap   = 2000
	wordCacheCap   = 2000
	pairCacheCap   = 3000
	resultCacheCap = 3000
)

// AlgorithmScore is one algorithm's contribution to a debug breakdown.
type AlgorithmScore struct {
	Name   string
	Weight float64
	Score  float64
}

// Breakdown is the full diagnostic record of one scoring call, delivered to
// the engine's observer when Config.Debug is set.
type Breakdown struct {
	TitleA      string
	TitleB      string
	Scores      []AlgorithmScore
	LengthRatio float64
	// Guarded reports that the length-disparity guard short-circuited the
	// algorithm suite; Scores is empty in that case.
	Guarded bool
	Final   int
}

// Observer receives debug breakdowns. The engine has no other side effect.
type Observer func(Breakdown)

// logObserver is the default Observer; it writes the breakdown as a zerolog
// debug event.
func logObserver(b Breakdown) {
	ev := log.Debug().
		Str("titleA", b.TitleA).
		Str("titleB", b.TitleB).
		Float64("lengthRatio", b.LengthRatio).
		Bool("guarded", b.Guarded)
	for _, s := range b.Scores {
		ev = ev.Float64(s.Name, s.Score)
	}
	ev.Int("score", b.Final).Msg("similarity breakdown")
}

// Engine owns the algorithm registry and every cache. Construct one with
// New; all methods are safe for concurrent use because cache mutation is
// delegated to the synchronized LRU layer and everything else is pure.
type Engine struct {
	cfg        Config
	observer   Observer
	algorithms []weightedAlgorithm

	normCache   *memoize.Cache[string, string]
	wordCache   *memoize.Cache[string, []string]
	pairCaches  map[string]*memoize.Cache[string, float64]
	resultCache *memoize.Cache[string, int]
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithConfig sets the engine's default scoring configuration, used by Score.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithObserver replaces the default zerolog debug observer.
func WithObserver(fn Observer) Option {
	return func(e *Engine) { e.observer = fn }
}

// New constructs an engine with freshly allocated caches and the full
// algorithm registry.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:         DefaultConfig(),
		observer:    logObserver,
		algorithms:  registry(),
		normCache:   memoize.New[string, string](textCacheCap),
		wordCache:   memoize.New[string, []string](wordCacheCap),
		resultCache: memoize.New[string, int](resultCacheCap),
	}
	e.pairCaches = make(map[string]*memoize.Cache[string, float64], len(e.algorithms))
	for _, wa := range e.algorithms {
		e.pairCaches[wa.algo.Name()] = memoize.New[string, float64](pairCacheCap)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score returns the similarity of two titles in [0,100] using the engine's
// default configuration.
func (e *Engine) Score(a, b string) int {
	return e.ScoreWith(a, b, e.cfg)
}

// ScoreWith returns the similarity of two titles in [0,100] under the given
// configuration. It is deterministic for identical inputs and config,
// symmetric in a and b, and total: no input can make it fail.
//
// Fast paths, in order: 0 when either normalized form is empty; 100 for
// identical raw or identical normalized inputs; the length-disparity penalty
// when the normalized lengths differ beyond the configured threshold. Only
// after those does the weighted algorithm suite run.
func (e *Engine) ScoreWith(a, b string, cfg Config) int {
	na := e.Normalize(a)
	nb := e.Normalize(b)

	if na == "" || nb == "" {
		return 0
	}
	if a == b || na == nb {
		return 100
	}

	resultKey := PairKey(na, nb) + pairKeySep + cfg.Key()
	if !cfg.Debug {
		if cached, ok := e.resultCache.Get(resultKey); ok {
			return cached
		}
	}

	la, lb := len([]rune(na)), len([]rune(nb))
	shorter, longer := la, lb
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	ratio := float64(shorter) / float64(longer)

	if ratio < cfg.LengthRatioThreshold {
		// Titles of wildly different length are almost never the same work:
		// discount a cheap coefficient similarity by the ratio instead of
		// running the full suite.
		score := clampScore(100 * titles.DiceCoefficient(na, nb) * ratio)
		e.finish(Breakdown{
			TitleA:      a,
			TitleB:      b,
			LengthRatio: ratio,
			Guarded:     true,
			Final:       score,
		}, resultKey, cfg.Debug)
		return score
	}

	ta := Title{Raw: a, Normalized: na, Words: e.words(a)}
	tb := Title{Raw: b, Normalized: nb, Words: e.words(b)}

	scores := make([]AlgorithmScore, 0, len(e.algorithms))
	sum, weightSum := 0.0, 0.0
	for _, wa := range e.algorithms {
		w := wa.weight(cfg)
		if w < 0 {
			w = 0
		}
		s := e.pairScore(wa.algo, ta, tb)
		scores = append(scores, AlgorithmScore{Name: wa.algo.Name(), Weight: w, Score: s})
		sum += s * w
		weightSum += w
	}

	score := 0
	if weightSum > 0 {
		score = clampScore(100 * sum / weightSum)
	}
	e.finish(Breakdown{
		TitleA:      a,
		TitleB:      b,
		Scores:      scores,
		LengthRatio: ratio,
		Final:       score,
	}, resultKey, cfg.Debug)
	return score
}

// finish either records the result or, in debug mode, reports the breakdown
// without touching the result cache so repeated debug calls recompute.
func (e *Engine) finish(b Breakdown, resultKey string, debug bool) {
	if debug {
		e.observer(b)
		return
	}
	e.resultCache.Set(resultKey, b.Final)
}

// pairScore memoizes one algorithm's sub-score for an unordered raw pair.
func (e *Engine) pairScore(algo Algorithm, a, b Title) float64 {
	cache := e.pairCaches[algo.Name()]
	key := PairKey(a.Raw, b.Raw)
	if v, ok := cache.Get(key); ok {
		return v
	}
	v := algo.Score(a, b)
	cache.Set(key, v)
	return v
}

// Normalize returns the canonical comparison form of a title, memoized by
// raw input.
func (e *Engine) Normalize(s string) string {
	return e.normCache.GetOrCompute(s, func() string {
		return titles.Normalize(s)
	})
}

// ExtractMeaningfulWords returns the meaningful tokens of a title, memoized
// by raw input. The returned slice is a fresh copy on every call; callers
// may mutate it safely.
func (e *Engine) ExtractMeaningfulWords(s string) []string {
	cached := e.words(s)
	words := make([]string, len(cached))
	copy(words, cached)
	return words
}

// words returns the shared cached token list. Internal callers must not
// mutate it.
func (e *Engine) words(s string) []string {
	return e.wordCache.GetOrCompute(s, func() []string {
		return titles.NormalizeToWords(s)
	})
}

// Reset purges every cache. Scores are unaffected; only memoized state is
// dropped. Intended for tests and process-lifetime boundaries.
func (e *Engine) Reset() {
	e.normCache.Purge()
	e.wordCache.Purge()
	e.resultCache.Purge()
	for _, c := range e.pairCaches {
		c.Purge()
	}
}

// CacheStats is a snapshot of every cache owned by the engine, keyed by
// algorithm name for the per-algorithm pair caches.
type CacheStats struct {
	Normalized memoize.Stats
	Words      memoize.Stats
	Results    memoize.Stats
	Algorithms map[string]memoize.Stats
}

// Stats returns current hit/miss/size counters for all caches.
func (e *Engine) Stats() CacheStats {
	stats := CacheStats{
		Normalized: e.normCache.Stats(),
		Words:      e.wordCache.Stats(),
		Results:    e.resultCache.Stats(),
		Algorithms: make(map[string]memoize.Stats, len(e.pairCaches)),
	}
	for name, c := range e.pairCaches {
		stats.Algorithms[name] = c.Stats()
	}
	return stats
}

func clampScore(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
