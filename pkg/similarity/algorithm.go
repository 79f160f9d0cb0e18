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

package similarity

// Title is a prepared comparison form of one raw title string. The engine
// builds it once per call through its caches so every algorithm sees the
// same normalized text and token list.
type Title struct {
	// Raw is the title as the caller passed it.
	Raw string
	// Normalized is the canonical unspaced comparison form (titles.Normalize).
	Normalized string
	// Words are the meaningful tokens (titles.NormalizeToWords). Algorithms
	// must treat the slice as read-only.
	Words []string
}

// Algorithm scores the similarity of two prepared titles on [0,1], where 1
// means "as similar as this metric can express" and 0 means no similarity
// detected. Implementations must be pure and symmetric in their arguments.
type Algorithm interface {
	// Name identifies the algorithm in config weights, cache keys, and debug
	// breakdowns.
	Name() string
	// Score returns the similarity of a and b in [0,1].
	Score(a, b Title) float64
}

// weightedAlgorithm binds an algorithm to the config field carrying its
// weight. Weights are resolved per call because the config arrives with the
// call, not at registry construction.
type weightedAlgorithm struct {
	algo   Algorithm
	weight func(Config) float64
}

// registry returns the full algorithm suite in evaluation order. The
// combiner iterates this list, so adding or removing an algorithm is a
// one-line change here plus a weight field.
func registry() []weightedAlgorithm {
	return []weightedAlgorithm{
		{exactMatch{}, func(c Config) float64 { return c.ExactWeight }},
		{longestSubstring{}, func(c Config) float64 { return c.SubstringWeight }},
		{wordOrder{}, func(c Config) float64 { return c.WordOrderWeight }},
		{character{}, func(c Config) float64 { return c.CharacterWeight }},
		{semantic{}, func(c Config) float64 { return c.SemanticWeight }},
		{jaroWinkler{}, func(c Config) float64 { return c.JaroWinklerWeight }},
		{ngram{}, func(c Config) float64 { return c.NGramWeight }},
	}
}
