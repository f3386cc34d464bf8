// Package tongan provides text normalization for Tongan headword matching.
//
// Tongan text mixes several apostrophe-like characters for the fakauʻa
// (glottal stop) and carries macron diacritics on long vowels. Dictionary
// sources and user selections rarely agree on which variant they use, so
// every lookup path compares words through Normalize.
package tongan

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Apostrophe is the canonical form every apostrophe variant folds into.
const Apostrophe = '\''

// apostropheVariants are the characters treated as a fakauʻa: the modifier
// letter turned comma (U+02BB), modifier letter apostrophe (U+02BC), the
// curly single quotes (U+2018, U+2019), the prime (U+2032), and the grave
// accent (U+0060) sometimes typed for it.
var apostropheVariants = map[rune]rune{
	'ʻ': Apostrophe,
	'ʼ': Apostrophe,
	'‘': Apostrophe,
	'’': Apostrophe,
	'′': Apostrophe,
	'`': Apostrophe,
}

// stripMarks decomposes to NFD and removes combining marks, so that
// "fále" and "fale" compare equal.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize returns the canonical comparison key for a word: lower-cased,
// trimmed, apostrophe variants unified, diacritics removed. It never fails
// and is idempotent. Two words are the same lookup key iff their normalized
// forms are equal.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Map(func(r rune) rune {
		if folded, ok := apostropheVariants[r]; ok {
			return folded
		}
		return r
	}, s)

	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		// transform only fails on malformed UTF-8; fall back to the
		// apostrophe-folded form so lookups still behave consistently.
		return s
	}
	return stripped
}
