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

// defaultEngine backs the package-level convenience functions. Most of the
// matching pipeline wants exactly one process-wide engine; callers needing
// isolated cache lifecycles (tests, parallel pipelines with different
// tunings) construct their own with New.
var defaultEngine = New()

// CalculateSimilarity scores two titles with the default engine and
// configuration.
func CalculateSimilarity(a, b string) int {
	return defaultEngine.Score(a, b)
}

// CalculateSimilarityWith scores two titles with the default engine under
// the given configuration.
func CalculateSimilarityWith(a, b string, cfg Config) int {
	return defaultEngine.ScoreWith(a, b, cfg)
}

// Normalize returns the canonical comparison form of a title using the
// default engine's cache.
func Normalize(s string) string {
	return defaultEngine.Normalize(s)
}

// ExtractMeaningfulWords returns the meaningful tokens of a title using the
// default engine's cache.
func ExtractMeaningfulWords(s string) []string {
	return defaultEngine.ExtractMeaningfulWords(s)
}
