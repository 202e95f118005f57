package search

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block. Marks from
// other blocks, such as Devanagari vowel signs, are part of the letter and
// stay.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize lowercases s and strips diacritic marks, so "Matemática" and
// "MATEMATICA" compare equal.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// Transformer chains carry state and are not safe for concurrent use.
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(combiningDiacritics)),
		cases.Lower(language.Und),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
