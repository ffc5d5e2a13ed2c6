// Package vntext provides Vietnamese-aware text folding for
// accent-insensitive search and slug derivation.
package vntext

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops all combining marks, and recomposes.
// This folds every Vietnamese tone/vowel mark to its base Latin letter.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	// nonSlugChars matches anything that isn't a lowercase letter, digit,
	// space, or hyphen after folding.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Fold returns the ASCII-folded, lowercase form of s. Vietnamese
// diacritics are removed (including đ/Đ, which carry no combining mark).
// Fold is idempotent: Fold(Fold(s)) == Fold(s).
func Fold(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Malformed input: fold what we can.
		folded = s
	}
	folded = strings.Map(func(r rune) rune {
		switch r {
		case 'đ':
			return 'd'
		case 'Đ':
			return 'D'
		}
		return r
	}, folded)
	return strings.ToLower(folded)
}

// ContainsFold reports whether needle occurs in haystack when both are
// folded. An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// Slug derives a category value slug from a display name.
// Example: "Vòng Bạc Ý" → "vong-bac-y"
func Slug(s string) string {
	result := Fold(strings.TrimSpace(s))
	result = nonSlugChars.ReplaceAllString(result, "")
	result = strings.Join(strings.Fields(result), "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
