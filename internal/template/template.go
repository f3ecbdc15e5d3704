package template

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"airename/internal/naming"
)

// Options carries the user-configurable parts of template application.
type Options struct {
	Category     Category
	PersonalName string
	DateFormat   DateFormat
}

// ConfigurationError reports a programming or configuration mistake, such as
// applying a template to the unresolved Auto pseudo-category.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

var (
	placeholderPattern = regexp.MustCompile(`\{[^}]+\}`)
	hyphenRuns         = regexp.MustCompile(`-+`)

	// Overridable for tests.
	now = time.Now
)

// Apply substitutes the core name into the category's pattern, fills in the
// personal name and date when configured, strips unreplaced placeholders,
// and normalizes the result through the naming convention transformer.
//
// The category must be concrete; passing Auto is an error, callers resolve it
// via Categorize first.
func Apply(coreName string, category Category, opts Options, convention naming.Convention) (string, error) {
	if category == Auto {
		return "", &ConfigurationError{Message: `cannot apply template to unresolved category "auto"`}
	}
	tmpl, ok := fileTemplates[category]
	if !ok {
		return "", &ConfigurationError{Message: fmt.Sprintf("no template for category %q", string(category))}
	}

	result := strings.Replace(tmpl.Pattern, "{content}", coreName, 1)

	if opts.PersonalName != "" {
		result = strings.Replace(result, "{personalName}", opts.PersonalName, 1)
	}

	if opts.DateFormat != "" && opts.DateFormat != DateNone {
		result = strings.Replace(result, "{date}", formatDate(now(), opts.DateFormat), 1)
	}

	// Drop placeholders nothing supplied a value for.
	result = placeholderPattern.ReplaceAllString(result, "")

	result = hyphenRuns.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return naming.Apply(result, convention), nil
}

// formatDate renders t according to the date format, zero-padded.
func formatDate(t time.Time, format DateFormat) string {
	switch format {
	case DateISO:
		return t.Format("2006-01-02")
	case DateYear:
		return t.Format("2006")
	default:
		return t.Format("20060102")
	}
}
