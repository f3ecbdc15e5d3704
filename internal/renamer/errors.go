package renamer

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyContent is returned when a parser succeeds but yields no usable
// text. The message is user-facing and matched by callers' result display.
var ErrEmptyContent = errors.New("No content could be extracted from the file")

// SizeLimitError reports a file larger than the configured maximum.
type SizeLimitError struct {
	Size int64
	Max  int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("File size (%dMB) exceeds maximum allowed size (%dMB)",
		roundMB(e.Size), roundMB(e.Max))
}

func roundMB(b int64) int64 {
	return int64(math.Round(float64(b) / (1024 * 1024)))
}

// NoParserError reports that no registered parser supports the file type.
type NoParserError struct {
	Extension string
}

func (e *NoParserError) Error() string {
	return fmt.Sprintf("No parser available for file type: %s", e.Extension)
}

// ProviderError wraps a failure from an AI provider: transport errors,
// non-2xx responses, or empty response content.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s failed to generate a filename: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ConflictError reports that the computed target path already exists.
type ConflictError struct {
	Target string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Target filename already exists: %s", e.Target)
}
