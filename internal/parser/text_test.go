package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTextParser_Parse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("  meeting notes for the quarterly review  \n"), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewTextParser()
	got, err := p.Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Content != "meeting notes for the quarterly review" {
		t.Errorf("Content = %q, want trimmed text", got.Content)
	}
	if got.Metadata == nil || got.Metadata.WordCount != 6 {
		t.Errorf("Metadata = %+v, want WordCount 6", got.Metadata)
	}
}

func TestTextParser_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.md")
	if err := os.WriteFile(path, []byte("   \n\t"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewTextParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Content != "" {
		t.Errorf("Content = %q, want empty", got.Content)
	}
	if got.Metadata != nil {
		t.Errorf("Metadata = %+v, want nil for empty file", got.Metadata)
	}
}

func TestTextParser_MissingFile(t *testing.T) {
	_, err := NewTextParser().Parse(filepath.Join(t.TempDir(), "gone.txt"))
	if err == nil {
		t.Fatal("Parse() error = nil, want read failure")
	}
}
