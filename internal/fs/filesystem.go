// Package fs implements filesystem access: scanning a directory into the
// domain's FileInfo records and performing the conflict check and rename.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"airename/internal/renamer"
)

// folderContextDepth is how many trailing directory segments are kept as
// folder context for classification and prompts.
const folderContextDepth = 3

// OSFilesystemManager is the real filesystem implementation. It scans
// directories filtered by an extension allowlist and performs renames.
type OSFilesystemManager struct {
	extensions map[string]bool
}

// NewOSFilesystemManager creates a filesystem manager that only surfaces
// files whose extension is in the given set (case-insensitive).
func NewOSFilesystemManager(extensions []string) *OSFilesystemManager {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = true
	}
	return &OSFilesystemManager{extensions: set}
}

// ScanDirectory lists the directory (non-recursive, regular files only) and
// returns a FileInfo per file whose extension is supported, in directory
// order.
func (m *OSFilesystemManager) ScanDirectory(dir string) ([]renamer.FileInfo, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving directory: %w", err)
	}

	info, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	parentFolder := filepath.Base(absDir)
	folderPath := trailingSegments(absDir, folderContextDepth)

	var files []renamer.FileInfo
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !m.extensions[ext] {
			continue
		}

		fi, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}

		created, accessed := statTimes(fi)
		files = append(files, renamer.FileInfo{
			Path:         filepath.Join(absDir, entry.Name()),
			Name:         entry.Name(),
			Extension:    ext,
			Size:         fi.Size(),
			CreatedAt:    created,
			ModifiedAt:   fi.ModTime(),
			AccessedAt:   accessed,
			ParentFolder: parentFolder,
			FolderPath:   folderPath,
		})
	}

	return files, nil
}

// Exists reports whether a path exists.
func (m *OSFilesystemManager) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Rename moves oldPath to newPath within the same directory.
//
// The caller checks for conflicts first; between that check and this call
// another process could create the target, in which case os.Rename silently
// replaces it. Accepted limitation: Go has no portable rename-if-absent.
func (m *OSFilesystemManager) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// trailingSegments returns up to n trailing path segments of dir, root and
// volume excluded.
func trailingSegments(dir string, n int) []string {
	clean := filepath.Clean(dir)
	clean = strings.TrimPrefix(clean, filepath.VolumeName(clean))
	parts := strings.Split(clean, string(filepath.Separator))

	var segments []string
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) > n {
		segments = segments[len(segments)-n:]
	}
	return segments
}

// Compile-time check against the orchestrator's interface.
var _ renamer.FilesystemManager = (*OSFilesystemManager)(nil)
