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

const (
	winklerPrefixCap = 4
	winklerScale     = 0.1
)

// jaroWinkler is the standard character-alignment similarity with a
// common-prefix bonus (prefix capped at 4 runes, scale 0.1). Implemented
// here rather than taken from go-edlib because the combiner contract pins
// the exact variant: identical strings score 1, an empty side scores 0, and
// the prefix bonus applies unconditionally.
type jaroWinkler struct{}

func (jaroWinkler) Name() string { return "jarowinkler" }

func (jaroWinkler) Score(a, b Title) float64 {
	return jaroWinklerSimilarity([]rune(a.Normalized), []rune(b.Normalized))
}

func jaroWinklerSimilarity(a, b []rune) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if string(a) == string(b) {
		return 1.0
	}

	jaro := jaroSimilarity(a, b)
	if jaro == 0 {
		return 0
	}

	prefixMax := min(min(winklerPrefixCap, len(a)), len(b))
	prefix := 0
	for prefix < prefixMax && a[prefix] == b[prefix] {
		prefix++
	}

	return jaro + winklerScale*float64(prefix)*(1-jaro)
}

func jaroSimilarity(a, b []rune) float64 {
	window := max(max(len(a), len(b))/2-1, 0)
	matchedA := make([]bool, len(a))
	matchedB := make([]bool, len(b))

	common := 0
	for i := range a {
		lo := max(i-window, 0)
		hi := min(i+window+1, len(b))
		for j := lo; j < hi; j++ {
			if matchedB[j] || a[i] != b[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			common++
			break
		}
	}
	if common == 0 {
		return 0
	}

	halfTransposed := 0
	k := 0
	for i := range a {
		if !matchedA[i] {
			continue
		}
		for !matchedB[k] {
			k++
		}
		if a[i] != b[k] {
			halfTransposed++
		}
		k++
	}
	transposed := halfTransposed / 2

	c := float64(common)
	return (c/float64(len(a)) + c/float64(len(b)) + (c-float64(transposed))/c) / 3
}
