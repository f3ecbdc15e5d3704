package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"airename/internal/renamer"
)

// WordParser extracts text and core properties from .docx files.
// A .docx is a zip archive; the body lives in word/document.xml and the
// document properties in docProps/core.xml and docProps/app.xml.
type WordParser struct{}

func NewWordParser() *WordParser { return &WordParser{} }

func (p *WordParser) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx", ".doc":
		return true
	}
	return false
}

func (p *WordParser) Parse(path string) (renamer.ParseResult, error) {
	if strings.ToLower(filepath.Ext(path)) == ".doc" {
		return renamer.ParseResult{}, fmt.Errorf("legacy .doc format is not supported; convert the file to .docx")
	}

	archive, err := zip.OpenReader(path)
	if err != nil {
		return renamer.ParseResult{}, fmt.Errorf("failed to parse Word document: %w", err)
	}
	defer archive.Close()

	var content string
	meta := &renamer.DocumentMetadata{}

	for _, f := range archive.File {
		switch f.Name {
		case "word/document.xml":
			content, err = extractDocumentText(f)
			if err != nil {
				return renamer.ParseResult{}, fmt.Errorf("failed to parse Word document: %w", err)
			}
		case "docProps/core.xml":
			readCoreProperties(f, meta)
		case "docProps/app.xml":
			readAppProperties(f, meta)
		}
	}

	if content == "" {
		return renamer.ParseResult{}, fmt.Errorf("failed to parse Word document: no document body found")
	}

	content = strings.TrimSpace(content)
	if meta.WordCount == 0 {
		meta.WordCount = len(strings.Fields(content))
	}
	return renamer.ParseResult{Content: content, Metadata: meta}, nil
}

// extractDocumentText walks document.xml collecting run text (<w:t>) and
// inserting newlines at paragraph boundaries (</w:p>).
func extractDocumentText(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var b strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

type coreProperties struct {
	Title    string `xml:"title"`
	Creator  string `xml:"creator"`
	Subject  string `xml:"subject"`
	Keywords string `xml:"keywords"`
	Created  string `xml:"created"`
	Modified string `xml:"modified"`
}

func readCoreProperties(f *zip.File, meta *renamer.DocumentMetadata) {
	var props coreProperties
	if !decodeZipXML(f, &props) {
		return
	}
	meta.Title = props.Title
	meta.Author = props.Creator
	meta.Subject = props.Subject
	for _, k := range strings.FieldsFunc(props.Keywords, func(r rune) bool { return r == ',' || r == ';' }) {
		if k = strings.TrimSpace(k); k != "" {
			meta.Keywords = append(meta.Keywords, k)
		}
	}
	if t, err := time.Parse(time.RFC3339, props.Created); err == nil {
		meta.CreationDate = t
	}
	if t, err := time.Parse(time.RFC3339, props.Modified); err == nil {
		meta.ModificationDate = t
	}
}

type appProperties struct {
	Application string `xml:"Application"`
	Pages       int    `xml:"Pages"`
	Words       int    `xml:"Words"`
}

func readAppProperties(f *zip.File, meta *renamer.DocumentMetadata) {
	var props appProperties
	if !decodeZipXML(f, &props) {
		return
	}
	meta.Creator = props.Application
	meta.Pages = props.Pages
	meta.WordCount = props.Words
}

// decodeZipXML best-effort decodes one zip member into v. Metadata is
// optional, so failures just leave v untouched.
func decodeZipXML(f *zip.File, v any) bool {
	rc, err := f.Open()
	if err != nil {
		return false
	}
	defer rc.Close()
	return xml.NewDecoder(rc).Decode(v) == nil
}
