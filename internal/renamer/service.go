package renamer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"airename/internal/naming"
	"airename/internal/template"
)

// Options is the run-scoped, read-only configuration slice the orchestrator
// needs. The caller builds it once from the external config.
type Options struct {
	MaxFileSize int64
	DryRun      bool
	Convention  naming.Convention
	Template    template.Options
}

// Service is the batch rename orchestrator. Files are processed strictly
// sequentially in input order; a file's failure is recorded and never aborts
// the batch.
type Service struct {
	parsers  []DocumentParser
	provider AIProvider
	fsmgr    FilesystemManager
	logger   Logger
	opts     Options
}

// NewService creates a Service with the provided capabilities.
func NewService(parsers []DocumentParser, provider AIProvider, fsmgr FilesystemManager, logger Logger, opts Options) *Service {
	return &Service{
		parsers:  parsers,
		provider: provider,
		fsmgr:    fsmgr,
		logger:   logger,
		opts:     opts,
	}
}

// RenameFiles processes each file through the rename pipeline and returns one
// result per input, in input order.
func (s *Service) RenameFiles(ctx context.Context, files []FileInfo) []RenameResult {
	results := make([]RenameResult, 0, len(files))

	for i := range files {
		file := &files[i]
		s.logger.Info("processing file", "name", file.Name)

		result, err := s.renameFile(ctx, file)
		if err != nil {
			s.logger.Warn("file failed", "name", file.Name, "error", err)
			results = append(results, RenameResult{
				OriginalPath:  file.Path,
				NewPath:       file.Path,
				SuggestedName: file.Name,
				Success:       false,
				Error:         err.Error(),
			})
			continue
		}
		results = append(results, result)
	}

	return results
}

// renameFile runs one file through the pipeline:
// size check -> parse -> categorize -> generate -> template -> conflict check
// -> rename (or simulate).
func (s *Service) renameFile(ctx context.Context, file *FileInfo) (RenameResult, error) {
	if file.Size > s.opts.MaxFileSize {
		return RenameResult{}, &SizeLimitError{Size: file.Size, Max: s.opts.MaxFileSize}
	}

	parser := s.selectParser(file.Path)
	if parser == nil {
		return RenameResult{}, &NoParserError{Extension: file.Extension}
	}

	parsed, err := parser.Parse(file.Path)
	if err != nil {
		return RenameResult{}, fmt.Errorf("parsing %s: %w", file.Name, err)
	}
	if strings.TrimSpace(parsed.Content) == "" {
		return RenameResult{}, ErrEmptyContent
	}
	file.DocumentMetadata = parsed.Metadata

	category := s.opts.Template.Category
	if category == template.Auto {
		category = template.Categorize(file.Path, parsed.Content, file.TemplateContext())
		s.logger.Debug("category resolved", "name", file.Name, "category", string(category))
	}

	coreName, err := s.provider.GenerateFileName(ctx, GenerateRequest{
		Content:      parsed.Content,
		OriginalName: file.Name,
		Convention:   s.opts.Convention,
		Category:     category,
		FileInfo:     file,
	})
	if err != nil {
		return RenameResult{}, &ProviderError{Provider: s.provider.Name(), Err: err}
	}
	if strings.TrimSpace(coreName) == "" {
		return RenameResult{}, &ProviderError{Provider: s.provider.Name(), Err: fmt.Errorf("empty filename suggestion")}
	}

	templated, err := template.Apply(coreName, category, s.opts.Template, s.opts.Convention)
	if err != nil {
		return RenameResult{}, err
	}

	newName := templated + file.Extension
	newPath := filepath.Join(filepath.Dir(file.Path), newName)

	if newPath != file.Path {
		exists, err := s.fsmgr.Exists(newPath)
		if err != nil {
			return RenameResult{}, fmt.Errorf("checking target path: %w", err)
		}
		if exists {
			return RenameResult{}, &ConflictError{Target: newName}
		}
	}

	if !s.opts.DryRun && newPath != file.Path {
		if err := s.fsmgr.Rename(file.Path, newPath); err != nil {
			return RenameResult{}, fmt.Errorf("renaming file: %w", err)
		}
		s.logger.Info("file renamed", "from", file.Name, "to", newName)
	}

	return RenameResult{
		OriginalPath:  file.Path,
		NewPath:       newPath,
		SuggestedName: newName,
		Success:       true,
	}, nil
}

func (s *Service) selectParser(path string) DocumentParser {
	for _, p := range s.parsers {
		if p.Supports(path) {
			return p
		}
	}
	return nil
}

// Summary aggregates a batch's outcomes.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Summarize counts successful and failed results.
func Summarize(results []RenameResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}
