// Package template maps an AI-generated core name and a file category to a
// final descriptive name, and infers categories from file context.
package template

import "fmt"

// Category is the semantic file type used to select a filename template and
// tailor AI prompts.
type Category string

const (
	Document Category = "document"
	Movie    Category = "movie"
	Music    Category = "music"
	Series   Category = "series"
	Photo    Category = "photo"
	Book     Category = "book"
	General  Category = "general"

	// Auto is a resolution request, never a final value. It must be resolved
	// to a concrete category before Apply is called.
	Auto Category = "auto"
)

// Categories returns the concrete categories (Auto excluded).
func Categories() []Category {
	return []Category{Document, Movie, Music, Series, Photo, Book, General}
}

// Validate returns an error if c is neither a concrete category nor Auto.
func (c Category) Validate() error {
	switch c {
	case Document, Movie, Music, Series, Photo, Book, General, Auto:
		return nil
	}
	return fmt.Errorf("unknown category: %q", string(c))
}

// DateFormat selects how {date} placeholders are rendered.
type DateFormat string

const (
	DateISO     DateFormat = "YYYY-MM-DD"
	DateYear    DateFormat = "YYYY"
	DateCompact DateFormat = "YYYYMMDD"
	DateNone    DateFormat = "none"
)

// Validate returns an error if f is not a known date format.
func (f DateFormat) Validate() error {
	switch f {
	case DateISO, DateYear, DateCompact, DateNone:
		return nil
	}
	return fmt.Errorf("unknown date format: %q", string(f))
}
