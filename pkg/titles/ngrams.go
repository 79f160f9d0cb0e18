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

package titles

// Bigrams creates overlapping 2-character chunks from a string. Shingles are
// rune-based so CJK titles without word boundaries shingle correctly.
//
// Example:
//
//	Bigrams("ワンピース") → ["ワン", "ンピ", "ピー", "ース"]
//
// For strings shorter than 2 runes, returns the original string as a
// single-element slice.
func Bigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		return []string{s}
	}

	bigrams := make([]string, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		bigrams = append(bigrams, string(runes[i:i+2]))
	}
	return bigrams
}

// Trigrams creates overlapping 3-character chunks from a string.
// For strings shorter than 3 runes, falls back to bigrams or returns the
// original string.
func Trigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		return []string{s}
	}
	if len(runes) < 3 {
		return Bigrams(s)
	}

	trigrams := make([]string, 0, len(runes)-2)
	for i := 0; i < len(runes)-2; i++ {
		trigrams = append(trigrams, string(runes[i:i+3]))
	}
	return trigrams
}

// JaccardSimilarity computes the Jaccard similarity coefficient between two
// sets of strings: the size of the intersection divided by the size of the
// union. Returns a value between 0.0 (no overlap) and 1.0 (identical sets).
//
// Example:
//
//	set1 := []string{"a", "b", "c"}
//	set2 := []string{"b", "c", "d"}
//	similarity := JaccardSimilarity(set1, set2)  // Returns 0.5 (2 common / 4 total)
func JaccardSimilarity(set1, set2 []string) float64 {
	if len(set1) == 0 && len(set2) == 0 {
		return 1.0 // Both empty = identical
	}
	if len(set1) == 0 || len(set2) == 0 {
		return 0.0 // One empty = no similarity
	}

	union := make(map[string]bool)
	intersection := make(map[string]bool)

	for _, elem := range set1 {
		union[elem] = true
	}
	for _, elem := range set2 {
		if union[elem] {
			intersection[elem] = true
		}
		union[elem] = true
	}

	return float64(len(intersection)) / float64(len(union))
}

// DiceCoefficient computes the Sørensen–Dice coefficient over the bigram
// sets of two strings: 2×|A∩B| / (|A|+|B|). This is the cheap whole-string
// coefficient used by both the character-similarity algorithm and the
// length-disparity penalty.
//
// Identical strings score 1.0. Strings shorter than 2 runes cannot shingle,
// so they score 1.0 on equality and 0.0 otherwise.
func DiceCoefficient(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len([]rune(a)) < 2 || len([]rune(b)) < 2 {
		return 0.0
	}

	setA := make(map[string]bool)
	for _, g := range Bigrams(a) {
		setA[g] = true
	}
	setB := make(map[string]bool)
	for _, g := range Bigrams(b) {
		setB[g] = true
	}

	common := 0
	for g := range setA {
		if setB[g] {
			common++
		}
	}

	return 2 * float64(common) / float64(len(setA)+len(setB))
}
