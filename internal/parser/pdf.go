package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"airename/internal/renamer"
)

// PDFParser extracts text and Info-dictionary metadata from PDF files.
type PDFParser struct{}

func NewPDFParser() *PDFParser { return &PDFParser{} }

func (p *PDFParser) Supports(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".pdf"
}

func (p *PDFParser) Parse(path string) (result renamer.ParseResult, err error) {
	// The underlying reader panics on some malformed cross-reference tables;
	// convert that into a parse error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse PDF file: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return renamer.ParseResult{}, fmt.Errorf("failed to parse PDF file: %w", err)
	}
	defer f.Close()

	text, err := extractText(reader)
	if err != nil {
		return renamer.ParseResult{}, fmt.Errorf("failed to parse PDF file: %w", err)
	}

	meta := extractInfo(reader)
	if meta == nil {
		meta = &renamer.DocumentMetadata{}
	}
	meta.Pages = reader.NumPage()
	meta.WordCount = len(strings.Fields(text))

	content := strings.TrimSpace(text)
	if isScannedText(content) {
		// Image-only PDF: tag the sparse text so providers can take the
		// scanned-document fallback instead of naming from noise.
		content = renamer.MarkScannedDocument(content)
	}

	return renamer.ParseResult{Content: content, Metadata: meta}, nil
}

func extractText(reader *pdf.Reader) (string, error) {
	var buf bytes.Buffer
	r, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// extractInfo maps the PDF Info dictionary onto DocumentMetadata.
func extractInfo(reader *pdf.Reader) *renamer.DocumentMetadata {
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return nil
	}

	meta := &renamer.DocumentMetadata{
		Title:   info.Key("Title").Text(),
		Author:  info.Key("Author").Text(),
		Creator: info.Key("Creator").Text(),
		Subject: info.Key("Subject").Text(),
	}
	if kw := info.Key("Keywords").Text(); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				meta.Keywords = append(meta.Keywords, k)
			}
		}
	}
	meta.CreationDate = parsePDFDate(info.Key("CreationDate").Text())
	meta.ModificationDate = parsePDFDate(info.Key("ModDate").Text())
	return meta
}

// parsePDFDate parses dates of the form "D:YYYYMMDDHHmmSS..." with missing
// trailing components allowed. Returns the zero time when unparseable.
func parsePDFDate(s string) time.Time {
	s = strings.TrimPrefix(s, "D:")
	digits := s
	for i, r := range s {
		if r < '0' || r > '9' {
			digits = s[:i]
			break
		}
	}
	for _, layout := range []string{"20060102150405", "200601021504", "20060102", "2006"} {
		if len(digits) >= len(layout) {
			if t, err := time.Parse(layout, digits[:len(layout)]); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
