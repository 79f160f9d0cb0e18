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

import "fmt"

// Config holds the tuning knobs for a scoring call: one non-negative weight
// per algorithm, the length-disparity threshold, and the debug flag. It is
// an immutable value passed by value into every call; weights need not sum
// to 1 because the combiner normalizes by their sum at call time.
//
// Callers wanting a partial override start from DefaultConfig and change
// fields:
//
//	cfg := similarity.DefaultConfig()
//	cfg.SemanticWeight = 0.2
//	score := engine.ScoreWith(a, b, cfg)
type Config struct {
	ExactWeight       float64
	SubstringWeight   float64
	WordOrderWeight   float64
	CharacterWeight   float64
	SemanticWeight    float64
	JaroWinklerWeight float64
	NGramWeight       float64

	// LengthRatioThreshold is the minimum normalized-length ratio
	// (shorter/longer) below which the length-disparity guard short-circuits
	// the full algorithm suite. Must be in (0,1].
	LengthRatioThreshold float64

	// Debug routes the per-algorithm breakdown to the engine's observer and
	// bypasses the result cache so repeated calls always recompute.
	Debug bool
}

// DefaultConfig returns the tuned default weighting. The exact values are
// empirical tuning constants, not behavioral contracts; only their
// existence, non-negativity, and normalization are load-bearing.
func DefaultConfig() Config {
	return Config{
		ExactWeight:          0.35,
		SubstringWeight:      0.12,
		WordOrderWeight:      0.12,
		CharacterWeight:      0.08,
		SemanticWeight:       0.13,
		JaroWinklerWeight:    0.12,
		NGramWeight:          0.08,
		LengthRatioThreshold: 0.70,
	}
}

// Key returns a canonical fixed-precision signature of the config's numeric
// fields, used to key the result cache so calls with different weightings
// never collide. Debug is excluded: debug calls bypass the cache entirely.
func (c Config) Key() string {
	return fmt.Sprintf("%.3f|%.3f|%.3f|%.3f|%.3f|%.3f|%.3f|%.3f",
		c.ExactWeight, c.SubstringWeight, c.WordOrderWeight, c.CharacterWeight,
		c.SemanticWeight, c.JaroWinklerWeight, c.NGramWeight,
		c.LengthRatioThreshold)
}

// pairKeySep separates the two halves of a pair key. A unit-separator
// control byte cannot appear in any real title.
const pairKeySep = "\x1f"

// PairKey returns a canonical order-independent identifier for an unordered
// pair of strings: PairKey(a, b) == PairKey(b, a) always, so symmetric
// algorithms' caches are never polluted by argument order.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + pairKeySep + b
}
