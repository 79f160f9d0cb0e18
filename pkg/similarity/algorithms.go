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

import (
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/mangamatch/core/pkg/titles"
)

// exactMatch scores 1.0 for identical normalized forms, the length ratio
// shorter/longer when one normalized form fully contains the other, and 0
// otherwise. Containment matters for titles listed with and without their
// subtitle ("Berserk" vs "Berserk Deluxe").
type exactMatch struct{}

func (exactMatch) Name() string { return "exact" }

func (exactMatch) Score(a, b Title) float64 {
	na, nb := a.Normalized, b.Normalized
	if na == nb {
		return 1.0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		la, lb := len([]rune(na)), len([]rune(nb))
		if la > lb {
			la, lb = lb, la
		}
		return float64(la) / float64(lb)
	}
	return 0
}

// longestSubstring scores the longest contiguous shared substring of the
// normalized forms against the longer string's length. If the whole shorter
// string appears in the longer one, the score is 1.0.
type longestSubstring struct{}

func (longestSubstring) Name() string { return "substring" }

func (longestSubstring) Score(a, b Title) float64 {
	ra, rb := []rune(a.Normalized), []rune(b.Normalized)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	// Rolling single-row DP over rune positions.
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	best := 0
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}

	shorter, longer := len(ra), len(rb)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if best == shorter {
		return 1.0
	}
	return float64(best) / float64(longer)
}

// wordOrder is the Jaccard index over the two token sets. Order-insensitive
// by design: manga titles commonly reorder subtitle and series components
// between sources.
type wordOrder struct{}

func (wordOrder) Name() string { return "wordorder" }

func (wordOrder) Score(a, b Title) float64 {
	return titles.JaccardSimilarity(a.Words, b.Words)
}

// character averages a bigram Dice coefficient with a normalized edit
// distance similarity over the normalized forms. Identical forms return 1.0
// without running the edit-distance computation.
type character struct{}

func (character) Name() string { return "character" }

func (character) Score(a, b Title) float64 {
	na, nb := a.Normalized, b.Normalized
	if na == nb {
		return 1.0
	}
	return (titles.DiceCoefficient(na, nb) + editSimilarity(na, nb)) / 2
}

// editSimilarity is 1 − editDistance/max(len1,len2) over runes, floored at 0.
func editSimilarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	sim := 1 - float64(edlib.LevenshteinDistance(a, b))/float64(maxLen)
	if sim < 0 {
		return 0
	}
	return sim
}

// highTokenSimilarity is the floor a character-level token comparison must
// clear to count as a word match in the semantic blend.
const highTokenSimilarity = 0.7

// semantic blends a stem-aware word alignment (weight 0.7) with a Jaccard
// index over the stemmed token sets (weight 0.3). Alignment is averaged over
// both directions so the score is symmetric.
type semantic struct{}

func (semantic) Name() string { return "semantic" }

func (semantic) Score(a, b Title) float64 {
	stemsA := stemAll(a.Words)
	stemsB := stemAll(b.Words)

	alignment := (alignScore(a.Words, b.Words, stemsA, stemsB) +
		alignScore(b.Words, a.Words, stemsB, stemsA)) / 2
	setOverlap := titles.JaccardSimilarity(stemsA, stemsB)

	return 0.7*alignment + 0.3*setOverlap
}

func stemAll(words []string) []string {
	stems := make([]string, len(words))
	for i, w := range words {
		stems[i] = titles.Stem(w)
	}
	return stems
}

// alignScore finds, for every token in from, its best counterpart in to:
// an exact token match scores 1, equal stems score 0.95, and a sufficiently
// character-similar token pair scores at most 0.9. The result is the mean
// best-match score.
func alignScore(from, to, fromStems, toStems []string) float64 {
	if len(from) == 0 && len(to) == 0 {
		return 1.0
	}
	if len(from) == 0 || len(to) == 0 {
		return 0
	}

	total := 0.0
	for i, w := range from {
		best := 0.0
		for j, other := range to {
			var score float64
			switch {
			case w == other:
				score = 1.0
			case fromStems[i] == toStems[j]:
				score = 0.95
			default:
				if cs := (titles.DiceCoefficient(w, other) + editSimilarity(w, other)) / 2; cs >= highTokenSimilarity {
					score = 0.9 * cs
				}
			}
			if score > best {
				best = score
			}
			if best == 1.0 {
				break
			}
		}
		total += best
	}
	return total / float64(len(from))
}

// ngram is the Jaccard index over the trigram shingle sets of the
// normalized forms. Strings shorter than the shingle size fall back to
// whole-string equality rather than producing a degenerate shingle set.
type ngram struct{}

const shingleSize = 3

func (ngram) Name() string { return "ngram" }

func (ngram) Score(a, b Title) float64 {
	na, nb := a.Normalized, b.Normalized
	if len([]rune(na)) < shingleSize || len([]rune(nb)) < shingleSize {
		if na == nb {
			return 1.0
		}
		return 0
	}
	return titles.JaccardSimilarity(titles.Trigrams(na), titles.Trigrams(nb))
}
