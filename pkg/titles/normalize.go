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
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize converts a manga title to a canonical comparison form for
// cross-source matching.
//
// Normalization Pipeline:
//   Stage 1: Decoration Stripping - bracketed metadata and trailing
//            release/volume/chapter markers removed
//            "One Piece Vol. 5 (Official)" → "One Piece"
//   Stage 2: Width Normalization - Fullwidth→Halfwidth (ASCII),
//            Halfwidth→Fullwidth (CJK kana)
//   Stage 3: Unicode Normalization - symbol removal, NFKC/NFC, diacritic
//            removal for non-CJK text: "Pokémon" → "Pokemon"
//   Stage 4: Punctuation Normalization - CJK and typographic punctuation
//            folded to ASCII equivalents
//   Stage 5: Abbreviation Expansion - "&"→"and", "vs"→"versus", etc.
//   Stage 6: Final Collapse - lowercase, every non-letter/non-number rune
//            (whitespace included) dropped
//
// The function is deterministic and total: any input, in any script,
// produces some normalized output without failing. Empty in → empty out.
//
// Example:
//   Normalize("Attack on Titan: Vol. 12 [RAW]") → "attackontitan"

var (
	// Trailing markers stack ("Title Vol. 3 RAW"), so the rules run in a
	// fixed number of passes rather than a single application.
	volumeMarkerRegex = regexp.MustCompile(
		`(?i)[\s:,.-]*\b(?:vol(?:ume)?s?|v)[.\s]*\d{1,4}(?:\s*[-~]\s*\d{1,4})?\s*$`,
	)
	chapterMarkerRegex = regexp.MustCompile(
		`(?i)[\s:,.-]*\b(?:ch(?:apter)?s?|c)[.\s]*\d{1,4}(?:\s*[-~]\s*\d{1,4})?\s*$`,
	)
	releaseMarkerRegex = regexp.MustCompile(
		`(?i)[\s:,.-]+(?:raws?|scans?|scanlations?|webcomic|webtoon|` +
			`fan ?colou?red|colou?red|uncensored|official|digital|complete)\s*$`,
	)

	markerRegexes = []*regexp.Regexp{
		releaseMarkerRegex,
		volumeMarkerRegex,
		chapterMarkerRegex,
	}

	// Typographic and CJK punctuation folded to ASCII equivalents.
	// Fullwidth ASCII variants are handled earlier by width.Fold; these are
	// the forms width folding does not touch.
	punctReplacer = strings.NewReplacer(
		"…", "...",
		"—", "-", "–", "-", "―", "-", "〜", "-", "~", "-",
		"・", " ", "·", " ",
		"、", ",", "。", ".",
		"「", "", "」", "", "『", "", "』", "",
		"’", "'", "‘", "'", "“", `"`, "”", `"`,
		"×", "x",
	)

	// Whole-word abbreviation expansions, applied after punctuation
	// normalization so dotted forms like "vs." are still intact.
	abbreviations = map[string]string{
		"vs":    "versus",
		"vs.":   "versus",
		"ft":    "featuring",
		"ft.":   "featuring",
		"feat":  "featuring",
		"feat.": "featuring",
		"vol":   "volume",
		"vol.":  "volume",
		"ch":    "chapter",
		"ch.":   "chapter",
	}
)

// isASCII checks if a string contains only ASCII characters (bytes < 128).
// Used to skip expensive Unicode processing for plain Latin titles.
func isASCII(s string) bool {
	for i := range s {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}

func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) ||
			unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

// foldWidth converts fullwidth ASCII to halfwidth and halfwidth kana to
// fullwidth ("ＯＮＥ ＰＩＥＣＥ" → "ONE PIECE", "ﾜﾝﾋﾟｰｽ" → "ワンピース").
// Returns the input unchanged if the transform fails.
func foldWidth(s string) string {
	if folded, _, err := transform.String(width.Fold, s); err == nil {
		return folded
	}
	return s
}

// removeDiacritics strips combining diacritical marks ("Pokémon" → "Pokemon").
func removeDiacritics(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	if normalized, _, err := transform.String(t, s); err == nil {
		return normalized
	}
	return s
}

// normalizeUnicode removes decorative symbols (™, ©, currency) and applies
// canonical Unicode normalization. CJK text gets NFC only, since NFKC
// mangles katakana; everything else gets NFKC plus diacritic removal.
func normalizeUnicode(s string) string {
	symbolPredicate := runes.Predicate(func(r rune) bool {
		return unicode.Is(unicode.So, r) || unicode.Is(unicode.Sc, r)
	})
	if cleaned, _, err := transform.String(runes.Remove(symbolPredicate), s); err == nil {
		s = cleaned
	}

	if containsCJK(s) {
		return norm.NFC.String(s)
	}
	s = norm.NFKC.String(s)
	return removeDiacritics(s)
}

// stripBrackets removes all bracketed segments, tracking nesting depth per
// bracket type so malformed input cannot cause superlinear blowup.
// If stripping would erase the entire title (e.g. "[Oshi no Ko]", where the
// brackets are part of the name), only the bracket characters themselves are
// dropped and the content is kept.
func stripBrackets(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	// Track nesting depth per bracket class: 0=()（）, 1=[]［］, 2={}, 3=<>, 4=【】〔〕
	depth := [5]int{}

	for _, r := range s {
		switch r {
		case '(', '（':
			depth[0]++
		case ')', '）':
			if depth[0] > 0 {
				depth[0]--
			}
		case '[', '［':
			depth[1]++
		case ']', '］':
			if depth[1] > 0 {
				depth[1]--
			}
		case '{':
			depth[2]++
		case '}':
			if depth[2] > 0 {
				depth[2]--
			}
		case '<':
			depth[3]++
		case '>':
			if depth[3] > 0 {
				depth[3]--
			}
		case '【', '〔':
			depth[4]++
		case '】', '〕':
			if depth[4] > 0 {
				depth[4]--
			}
		default:
			if depth == [5]int{} {
				result.WriteRune(r)
			}
		}
	}

	stripped := strings.TrimSpace(result.String())
	if stripped == "" {
		return strings.TrimSpace(strings.Map(func(r rune) rune {
			switch r {
			case '(', ')', '[', ']', '{', '}', '<', '>',
				'（', '）', '［', '］', '【', '】', '〔', '〕':
				return ' '
			}
			return r
		}, s))
	}
	return stripped
}

// stripTrailingMarkers removes release, volume, and chapter markers from the
// end of a title. Two passes, since markers stack.
func stripTrailingMarkers(s string) string {
	const markerPasses = 2
	for pass := 0; pass < markerPasses; pass++ {
		for _, re := range markerRegexes {
			s = strings.TrimSpace(re.ReplaceAllString(s, ""))
		}
	}
	return s
}

// normalizePunctuation folds typographic and CJK punctuation to ASCII.
func normalizePunctuation(s string) string {
	return punctReplacer.Replace(s)
}

// expandAbbreviations replaces conjunction symbols and whole-word
// abbreviations with their spelled-out forms.
func expandAbbreviations(s string) string {
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, " + ", " and ")

	fields := strings.Fields(s)
	for i, f := range fields {
		if repl, ok := abbreviations[strings.ToLower(f)]; ok {
			fields[i] = repl
		}
	}
	return strings.Join(fields, " ")
}

// normalizeInternal performs Stages 1-5 of the normalization pipeline.
// Shared by Normalize and NormalizeToWords so both operate on identical
// text; only the final collapse differs between them.
func normalizeInternal(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}

	// Stage 1: Decoration Stripping
	s = stripBrackets(s)
	s = stripTrailingMarkers(s)

	if !isASCII(s) {
		// Stage 2: Width Normalization
		s = foldWidth(s)

		// Stage 3: Unicode Normalization
		s = normalizeUnicode(s)
	}

	// Stage 4: Punctuation Normalization
	s = normalizePunctuation(s)

	// Stage 5: Abbreviation Expansion
	s = expandAbbreviations(s)

	return strings.TrimSpace(s)
}

// Normalize runs the full pipeline and collapses the result to a lowercase,
// unspaced stream of letters and numbers. See the pipeline doc above.
func Normalize(input string) string {
	s := normalizeInternal(input)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
