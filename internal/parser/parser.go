// Package parser implements the document parser capability: given a file
// path, produce text content and optional metadata, or fail.
package parser

import (
	"strings"
	"unicode"

	"airename/internal/renamer"
)

// Registry returns all parsers in selection order. The orchestrator uses the
// first parser whose Supports matches.
func Registry() []renamer.DocumentParser {
	return []renamer.DocumentParser{
		NewPDFParser(),
		NewWordParser(),
		NewExcelParser(),
		NewTextParser(),
		NewImageParser(),
	}
}

// isScannedText heuristically detects image-only documents from their
// extracted text: very little text, very few words, or mostly non-alphabetic
// characters.
func isScannedText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 50 {
		return true
	}
	if len(strings.Fields(trimmed)) < 10 {
		return true
	}

	alpha := 0
	total := 0
	for _, r := range text {
		total++
		if unicode.IsLetter(r) {
			alpha++
		}
	}
	if total == 0 {
		return true
	}
	return float64(total-alpha)/float64(total) > 0.9
}
