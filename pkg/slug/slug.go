// Package slug converts between symbolic identifiers (are_you_in_business?)
// and their human-friendly forms (are-you-in-business?, "Are you in business?").
//
// A trailing question mark is optional everywhere: Key drops it, so a slug
// with or without the mark resolves to the same identifier.
package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// ToSlug renders an identifier as lower-case words joined by hyphens.
// Any run of characters that is not a letter or digit becomes a single hyphen.
// A trailing question mark is preserved.
func ToSlug(id string) string {
	s := strings.TrimSpace(id)
	question := strings.HasSuffix(s, "?")
	s = strings.TrimSuffix(s, "?")

	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	if question && b.Len() > 0 {
		b.WriteByte('?')
	}
	return b.String()
}

// FromSlug returns the identifier candidate for a slug.
// FromSlug(ToSlug(id)) == id for every identifier made of lower-case letters,
// digits and single underscores, with or without a trailing question mark.
func FromSlug(s string) string {
	return strings.ReplaceAll(ToSlug(s), "-", "_")
}

// Key is the index key used to match identifiers and slugs against each other.
// Identifiers, slugs and display strings that differ only in case, separators
// or a trailing question mark share the same key. Case is folded the same way
// as Symbolize, so "Straße" and "STRASSE" meet.
func Key(s string) string {
	return cases.Fold().String(strings.TrimSuffix(ToSlug(s), "?"))
}

// Humanize renders an identifier as a sentence: separators become spaces and
// the first letter is capitalized.
func Humanize(id string) string {
	s := strings.Join(strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}), " ")
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Symbolize normalizes free-form input ("No", " Under 70k ") into the shape of
// an answer identifier ("no", "under_70k"). Case is folded with full Unicode
// case folding.
func Symbolize(s string) string {
	folded := cases.Fold().String(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(folded, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}), "_")
}

// AnswerKey is the form submitted answers are matched on: Symbolize without a
// trailing question mark. Answers of one node must have distinct keys.
func AnswerKey(s string) string {
	return Symbolize(strings.TrimRight(strings.TrimSpace(s), "?"))
}
