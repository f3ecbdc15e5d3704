package renamer

import (
	"context"

	"airename/internal/naming"
	"airename/internal/template"
)

// DocumentParser extracts text content and optional metadata from a file.
// One parser exists per format family; the orchestrator picks the first
// parser whose Supports returns true for a given path.
type DocumentParser interface {
	Supports(path string) bool
	Parse(path string) (ParseResult, error)
}

// GenerateRequest is the input to an AI provider's filename generation.
type GenerateRequest struct {
	Content      string
	OriginalName string
	Convention   naming.Convention
	Category     template.Category
	FileInfo     *FileInfo
}

// AIProvider turns document content into a suggested core name.
// Implementations issue exactly one request per call: no retries, no
// streaming accumulation.
type AIProvider interface {
	Name() string
	GenerateFileName(ctx context.Context, req GenerateRequest) (string, error)
}

// FilesystemManager is the slice of filesystem access the orchestrator
// needs: conflict checking and the rename itself.
type FilesystemManager interface {
	Exists(path string) (bool, error)
	Rename(oldPath, newPath string) error
}
