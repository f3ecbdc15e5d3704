// Package naming implements the filename casing conventions applied as the
// last transformation before a suggested name becomes a filename.
package naming

import (
	"fmt"
	"strings"
	"unicode"
)

// Convention is a filename casing/separator style.
type Convention string

const (
	KebabCase  Convention = "kebab-case"
	SnakeCase  Convention = "snake_case"
	CamelCase  Convention = "camelCase"
	PascalCase Convention = "PascalCase"
	Lowercase  Convention = "lowercase"
	Uppercase  Convention = "UPPERCASE"
)

// Conventions returns all supported conventions in display order.
func Conventions() []Convention {
	return []Convention{KebabCase, SnakeCase, CamelCase, PascalCase, Lowercase, Uppercase}
}

// Validate returns an error if c is not a known convention.
func (c Convention) Validate() error {
	switch c {
	case KebabCase, SnakeCase, CamelCase, PascalCase, Lowercase, Uppercase:
		return nil
	}
	return fmt.Errorf("unknown naming convention: %q", string(c))
}

// Apply normalizes text and reformats it according to the convention.
//
// Normalization keeps letters, digits, underscores, whitespace and hyphens;
// everything else is dropped. Runs of whitespace collapse to a single space.
// Empty or whitespace-only input yields an empty string; callers that cannot
// accept an empty name must substitute a fallback before calling Apply.
//
// An unknown convention falls back to kebab-case.
func Apply(text string, convention Convention) string {
	normalized := normalize(text)

	switch convention {
	case KebabCase:
		s := strings.ToLower(normalized)
		s = strings.ReplaceAll(s, " ", "-")
		return strings.ReplaceAll(s, "_", "-")

	case SnakeCase:
		s := strings.ToLower(normalized)
		s = strings.ReplaceAll(s, " ", "_")
		return strings.ReplaceAll(s, "-", "_")

	case CamelCase:
		words := splitWords(normalized)
		var b strings.Builder
		for i, w := range words {
			if i == 0 {
				b.WriteString(strings.ToLower(w))
				continue
			}
			b.WriteString(capitalize(w))
		}
		return b.String()

	case PascalCase:
		var b strings.Builder
		for _, w := range splitWords(normalized) {
			b.WriteString(capitalize(w))
		}
		return b.String()

	case Lowercase:
		s := strings.ToLower(normalized)
		return strings.Map(dropSeparators, s)

	case Uppercase:
		s := strings.ToUpper(normalized)
		return strings.Map(dropSeparators, s)

	default:
		s := strings.ToLower(normalized)
		s = strings.ReplaceAll(s, " ", "-")
		return strings.ReplaceAll(s, "_", "-")
	}
}

// normalize strips disallowed characters and collapses whitespace.
func normalize(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
}

// splitWords tokenizes for camelCase/PascalCase. Tokens break on whitespace,
// hyphens and underscores, and additionally on a lowercase-or-digit to
// uppercase transition so that already-cased input re-tokenizes to the same
// words (Apply stays idempotent on its own output).
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_':
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}

func capitalize(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return ""
	}
	first := string(unicode.ToUpper(runes[0]))
	return first + strings.ToLower(string(runes[1:]))
}

func dropSeparators(r rune) rune {
	if r == ' ' || r == '-' || r == '_' {
		return -1
	}
	return r
}
