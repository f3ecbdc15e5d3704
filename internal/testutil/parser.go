package testutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"airename/internal/renamer"
)

// StubParser serves canned parse results keyed by file basename. It supports
// every extension in Extensions (all paths when empty).
type StubParser struct {
	Extensions []string
	Results    map[string]renamer.ParseResult
	Errs       map[string]error
}

// NewStubParser creates a StubParser with empty result maps.
func NewStubParser(extensions ...string) *StubParser {
	return &StubParser{
		Extensions: extensions,
		Results:    make(map[string]renamer.ParseResult),
		Errs:       make(map[string]error),
	}
}

// AddContent registers content for a basename.
func (p *StubParser) AddContent(name, content string) {
	p.Results[name] = renamer.ParseResult{Content: content}
}

func (p *StubParser) Supports(path string) bool {
	if len(p.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range p.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func (p *StubParser) Parse(path string) (renamer.ParseResult, error) {
	name := filepath.Base(path)
	if err, ok := p.Errs[name]; ok {
		return renamer.ParseResult{}, err
	}
	if res, ok := p.Results[name]; ok {
		return res, nil
	}
	return renamer.ParseResult{}, fmt.Errorf("no stub content for %s", name)
}
