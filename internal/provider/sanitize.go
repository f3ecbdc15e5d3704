package provider

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	wrappingQuotes = regexp.MustCompile(`^["']|["']$`)
	trailingExt    = regexp.MustCompile(`(?i)\.(txt|pdf|docx?|xlsx?|md|rtf)$`)
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// SanitizeResponse normalizes a raw model response into a usable core name:
// strips wrapping quotes and any document extension the model tacked on,
// replaces filesystem-reserved characters, collapses whitespace to hyphens
// and lowercases. The convention transform downstream handles final casing.
func SanitizeResponse(name string) string {
	name = strings.TrimSpace(name)
	name = wrappingQuotes.ReplaceAllString(name, "")
	name = trailingExt.ReplaceAllString(name, "")
	name = invalidChars.ReplaceAllString(name, "-")
	name = whitespaceRun.ReplaceAllString(name, "-")
	return strings.ToLower(name)
}

// fallbackFromFilename derives a core name from the original filename for
// providers that cannot process scanned documents.
func fallbackFromFilename(originalName string) string {
	stem := strings.TrimSuffix(originalName, filepath.Ext(originalName))
	if name := SanitizeResponse(stem); name != "" {
		return name
	}
	return "untitled-document"
}
