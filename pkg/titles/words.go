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
	"strings"
	"unicode"
)

// stopWords are tokens carrying no matching signal: English articles and
// prepositions, romanized Japanese particles, and generic list/release words
// that appear on reading lists but not in canonical catalog titles.
var stopWords = map[string]struct{}{
	// English articles, prepositions, connectives
	"the": {}, "an": {}, "of": {}, "and": {}, "or": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"with": {}, "from": {}, "by": {},

	// Romanized Japanese particles
	"no": {}, "wa": {}, "ga": {}, "wo": {}, "ni": {}, "de": {}, "mo": {},

	// Generic list and release vocabulary
	"manga": {}, "manhwa": {}, "manhua": {}, "comic": {}, "comics": {},
	"collection": {}, "series": {}, "anthology": {},
	"official": {}, "complete": {}, "edition": {},
	"volume": {}, "chapter": {},
}

// IsStopWord reports whether the lowercase token is filtered from word
// extraction.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// NormalizeToWords converts a title to its meaningful tokens. It runs the
// same decoration-stripping pipeline as Normalize but preserves word
// boundaries: punctuation collapses to spaces instead of disappearing, so
// the result can feed token-level similarity and stemming.
//
// Tokens of length ≤1 and stop-word tokens are dropped. A fresh slice is
// returned on every call; callers may mutate the result freely.
//
// Example:
//
//	NormalizeToWords("The Rising of the Shield Hero (Manga)")
//	→ []string{"rising", "shield", "hero"}
func NormalizeToWords(input string) []string {
	s := normalizeInternal(input)
	if s == "" {
		return []string{}
	}

	// Preserve spaces so Fields can split; everything else that is not a
	// letter or number becomes a word boundary. Rune-based classification
	// keeps this safe for CJK text.
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)

	fields := strings.Fields(s)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) <= 1 || IsStopWord(f) {
			continue
		}
		words = append(words, f)
	}
	return words
}
