package testutil

import (
	"sync"
)

// RenameCall records one Rename invocation.
type RenameCall struct {
	OldPath string
	NewPath string
}

// MockFilesystemManager is an in-memory path set for testing conflict checks
// and renames.
type MockFilesystemManager struct {
	mu       sync.Mutex
	paths    map[string]bool
	ExistErr error
	RenErr   error
	Renames  []RenameCall
}

// NewMockFilesystemManager creates an empty mock filesystem.
func NewMockFilesystemManager() *MockFilesystemManager {
	return &MockFilesystemManager{paths: make(map[string]bool)}
}

// AddPath marks a path as existing.
func (m *MockFilesystemManager) AddPath(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths[path] = true
}

func (m *MockFilesystemManager) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ExistErr != nil {
		return false, m.ExistErr
	}
	return m.paths[path], nil
}

func (m *MockFilesystemManager) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RenErr != nil {
		return m.RenErr
	}
	m.Renames = append(m.Renames, RenameCall{OldPath: oldPath, NewPath: newPath})
	delete(m.paths, oldPath)
	m.paths[newPath] = true
	return nil
}
