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

import "strings"

// Stem reduces a token to an approximate root form so inflected variants
// compare equal ("stories"/"story", "running"/"run"). It is a lightweight
// suffix cascade, not a full Porter stemmer: titles need plural and common
// verbal suffixes handled, nothing more.
//
// Tokens of up to two runes pass through unchanged. First matching rule
// wins; rules are ordered longest suffix first so "stories" hits "ies"
// before "es".
func Stem(token string) string {
	if len([]rune(token)) <= 2 {
		return token
	}

	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "sses"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "tion") && len(token) > 5:
		return token[:len(token)-4] + "t"
	case strings.HasSuffix(token, "ing") && len(token) > 5:
		return collapseDoubledEnd(token[:len(token)-3])
	case strings.HasSuffix(token, "ed") && len(token) > 4:
		return collapseDoubledEnd(token[:len(token)-2])
	case strings.HasSuffix(token, "ly") && len(token) > 4:
		return token[:len(token)-2]
	case strings.HasSuffix(token, "er") && len(token) > 4:
		return token[:len(token)-2]
	case strings.HasSuffix(token, "es") && len(token) > 3:
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s") && len(token) > 3 &&
		!strings.HasSuffix(token, "ss") && !strings.HasSuffix(token, "us"):
		return token[:len(token)-1]
	}

	return token
}

// collapseDoubledEnd undoes consonant doubling left behind by suffix
// removal ("running" → "runn" → "run").
func collapseDoubledEnd(s string) string {
	if len(s) >= 4 && s[len(s)-1] == s[len(s)-2] {
		return s[:len(s)-1]
	}
	return s
}
