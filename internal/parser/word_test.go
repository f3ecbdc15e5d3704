package parser

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDocx assembles a minimal .docx (a zip with document.xml and the two
// property parts) at path.
func writeDocx(t *testing.T, path string, members map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

const docxBody = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Employment Contract</w:t></w:r></w:p>
    <w:p><w:r><w:t>Between ACME Corp and Jane Smith.</w:t></w:r></w:p>
  </w:body>
</w:document>`

const docxCore = `<?xml version="1.0"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
  xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/">
  <dc:title>Employment Contract</dc:title>
  <dc:creator>Jane Smith</dc:creator>
  <dc:subject>Employment</dc:subject>
  <cp:keywords>contract, hr; legal</cp:keywords>
  <dcterms:created>2024-01-15T10:30:00Z</dcterms:created>
</cp:coreProperties>`

const docxApp = `<?xml version="1.0"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">
  <Application>Microsoft Word</Application>
  <Pages>2</Pages>
  <Words>450</Words>
</Properties>`

func TestWordParser_Parse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.docx")
	writeDocx(t, path, map[string]string{
		"word/document.xml": docxBody,
		"docProps/core.xml": docxCore,
		"docProps/app.xml":  docxApp,
	})

	got, err := NewWordParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !strings.Contains(got.Content, "Employment Contract") {
		t.Errorf("Content = %q, missing first paragraph", got.Content)
	}
	if !strings.Contains(got.Content, "Between ACME Corp and Jane Smith.") {
		t.Errorf("Content = %q, missing second paragraph", got.Content)
	}
	// Paragraphs become separate lines.
	if len(strings.Split(got.Content, "\n")) < 2 {
		t.Errorf("Content = %q, want paragraph line breaks", got.Content)
	}

	m := got.Metadata
	if m == nil {
		t.Fatal("Metadata = nil")
	}
	if m.Title != "Employment Contract" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.Author != "Jane Smith" {
		t.Errorf("Author = %q", m.Author)
	}
	if m.Creator != "Microsoft Word" {
		t.Errorf("Creator = %q", m.Creator)
	}
	if len(m.Keywords) != 3 || m.Keywords[0] != "contract" || m.Keywords[2] != "legal" {
		t.Errorf("Keywords = %v, want [contract hr legal]", m.Keywords)
	}
	if m.CreationDate.IsZero() {
		t.Error("CreationDate is zero")
	}
	if m.Pages != 2 || m.WordCount != 450 {
		t.Errorf("Pages/WordCount = %d/%d, want 2/450", m.Pages, m.WordCount)
	}
}

func TestWordParser_MissingBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	writeDocx(t, path, map[string]string{"docProps/core.xml": docxCore})

	_, err := NewWordParser().Parse(path)
	if err == nil || !strings.Contains(err.Error(), "no document body") {
		t.Errorf("Parse() error = %v, want missing body error", err)
	}
}

func TestWordParser_LegacyDocRejected(t *testing.T) {
	_, err := NewWordParser().Parse("/tmp/old.doc")
	if err == nil || !strings.Contains(err.Error(), "convert the file to .docx") {
		t.Errorf("Parse(.doc) error = %v, want conversion hint", err)
	}
}

func TestWordParser_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.docx")
	if err := os.WriteFile(path, []byte("plain text, not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewWordParser().Parse(path); err == nil {
		t.Error("Parse() error = nil, want zip failure")
	}
}
