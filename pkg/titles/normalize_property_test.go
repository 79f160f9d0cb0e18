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

import (
	"testing"
	"unicode"

	"pgregory.net/rapid"
)

// realisticTitleGen generates strings using character sets found in real
// manga titles: Latin with common diacritics, kana and kanji, Hangul,
// Cyrillic, punctuation, and list-decoration characters.
func realisticTitleGen() *rapid.Generator[string] {
	//nolint:gosmopolitan // Intentional multi-script for testing international title support
	chars := []rune(
		"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" +
			" -:.'\"&!?(),[]{}~" +
			"àáâãäçèéêëñóôöùúü" +
			"ワンピースドラゴンボール進撃の巨人鬼滅刃" +
			"ひらがなかたかな" +
			"한국어만화" +
			"АБВГДабвгд",
	)
	return rapid.StringOfN(rapid.SampledFrom(chars), 0, 80, -1)
}

// TestPropertyNormalizeDeterministic verifies same input always produces
// same output.
func TestPropertyNormalizeDeterministic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		input := realisticTitleGen().Draw(t, "input")
		if Normalize(input) != Normalize(input) {
			t.Fatalf("Normalize not deterministic for %q", input)
		}
	})
}

// TestPropertyNormalizeCollapsed verifies the output contains only
// lowercase letters and numbers: no spaces, no punctuation, no uppercase.
func TestPropertyNormalizeCollapsed(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		input := realisticTitleGen().Draw(t, "input")
		for _, r := range Normalize(input) {
			if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
				t.Fatalf("non-alphanumeric rune %q in Normalize(%q)", r, input)
			}
			if unicode.IsUpper(r) {
				t.Fatalf("uppercase rune %q in Normalize(%q)", r, input)
			}
		}
	})
}

// TestPropertyWordsAreMeaningful verifies every extracted token is longer
// than one rune, lowercase, and not a stop word.
func TestPropertyWordsAreMeaningful(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		input := realisticTitleGen().Draw(t, "input")
		for _, w := range NormalizeToWords(input) {
			if len([]rune(w)) <= 1 {
				t.Fatalf("token %q too short from %q", w, input)
			}
			if IsStopWord(w) {
				t.Fatalf("stop word %q survived extraction from %q", w, input)
			}
		}
	})
}

// TestPropertyNormalizeNeverPanics exercises the pipeline with fully
// arbitrary Unicode, not just realistic titles.
func TestPropertyNormalizeNeverPanics(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")
		_ = Normalize(input)
		_ = NormalizeToWords(input)
	})
}
