package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"airename/internal/renamer"
)

// TextParser reads plain-text family files verbatim.
type TextParser struct{}

func NewTextParser() *TextParser { return &TextParser{} }

func (p *TextParser) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".rtf":
		return true
	}
	return false
}

func (p *TextParser) Parse(path string) (renamer.ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return renamer.ParseResult{}, fmt.Errorf("failed to parse text file: %w", err)
	}
	content := strings.TrimSpace(string(data))

	var meta *renamer.DocumentMetadata
	if content != "" {
		meta = &renamer.DocumentMetadata{WordCount: len(strings.Fields(content))}
	}
	return renamer.ParseResult{Content: content, Metadata: meta}, nil
}
