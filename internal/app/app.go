// Package app is the application layer between the CLI and the rename
// service. It constructs all dependencies from config and exposes
// high-level operations that accept raw string paths.
package app

import (
	"context"
	"fmt"
	"os"

	"airename/internal/config"
	"airename/internal/fs"
	"airename/internal/parser"
	"airename/internal/provider"
	"airename/internal/renamer"
)

// App wires the filesystem manager, parser registry, AI provider and
// rename service together for one CLI invocation. The caller must call
// Close when done.
type App struct {
	cfg      *config.Config
	fsmgr    *fs.OSFilesystemManager
	provider renamer.AIProvider
	service  *renamer.Service
	logFile  *os.File
	runID    string
}

// NewApp creates a fully wired App from the given config.
func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	aiProvider, err := provider.New(cfg)
	if err != nil {
		return nil, err
	}

	runID := renamer.UUIDGenerator{}.New()
	logger, logFile, err := newLogger(cfg.LogDir, runID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	fsmgr := fs.NewOSFilesystemManager(cfg.SupportedExtensions)
	svc := renamer.NewService(
		parser.Registry(),
		aiProvider,
		fsmgr,
		&slogAdapter{l: logger},
		renamer.Options{
			MaxFileSize: cfg.MaxFileSize,
			DryRun:      cfg.DryRun,
			Convention:  cfg.NamingConvention,
			Template:    cfg.TemplateOptions(),
		},
	)

	logger.Info("run started",
		"provider", cfg.Provider,
		"convention", string(cfg.NamingConvention),
		"category", string(cfg.Template.Category),
		"dry_run", cfg.DryRun)

	return &App{
		cfg:      cfg,
		fsmgr:    fsmgr,
		provider: aiProvider,
		service:  svc,
		logFile:  logFile,
		runID:    runID,
	}, nil
}

// ScanDirectory lists the supported files in a directory without touching
// them. The CLI shows this listing before asking for confirmation.
func (a *App) ScanDirectory(rawPath string) ([]renamer.FileInfo, error) {
	return a.fsmgr.ScanDirectory(rawPath)
}

// RenameFiles runs the scanned files through the rename pipeline.
func (a *App) RenameFiles(ctx context.Context, files []renamer.FileInfo) []renamer.RenameResult {
	return a.service.RenameFiles(ctx, files)
}

// ProviderName returns the display name of the active AI provider.
func (a *App) ProviderName() string {
	return a.provider.Name()
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
