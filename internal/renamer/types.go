// Package renamer is the domain core: the data model, the capability
// interfaces the orchestrator depends on, and the per-file rename pipeline.
package renamer

import (
	"time"

	"airename/internal/template"
)

// FileInfo describes one candidate file. It is created when a directory is
// scanned and mutated exactly once afterwards, to attach DocumentMetadata
// after parsing.
type FileInfo struct {
	Path      string
	Name      string
	Extension string
	Size      int64

	CreatedAt  time.Time
	ModifiedAt time.Time
	AccessedAt time.Time

	// Folder context: the immediate parent folder name and the trailing
	// segments of the directory path, used for classification and prompts.
	ParentFolder string
	FolderPath   []string

	DocumentMetadata *DocumentMetadata
}

// DocumentMetadata holds properties extracted from a document's own
// metadata. A pure value; never mutated after a parser produces it.
type DocumentMetadata struct {
	Title    string
	Author   string
	Creator  string
	Subject  string
	Keywords []string

	CreationDate     time.Time
	ModificationDate time.Time

	Pages     int
	WordCount int
}

// ParseResult is the transient output of a document parser.
type ParseResult struct {
	Content  string
	Metadata *DocumentMetadata
}

// RenameResult records the outcome for one input file. NewPath equals
// OriginalPath when no rename occurred (same name, dry-run, or failure).
// Failed results always carry a non-empty Error.
type RenameResult struct {
	OriginalPath  string
	NewPath       string
	SuggestedName string
	Success       bool
	Error         string
}

// TemplateContext flattens the file's folder and metadata context into the
// shape the classifier consumes.
func (f *FileInfo) TemplateContext() *template.FileContext {
	fctx := &template.FileContext{
		FolderPath:   f.FolderPath,
		ParentFolder: f.ParentFolder,
	}
	if m := f.DocumentMetadata; m != nil {
		fctx.Title = m.Title
		fctx.Author = m.Author
		fctx.Creator = m.Creator
		fctx.Subject = m.Subject
		fctx.Keywords = m.Keywords
	}
	return fctx
}
