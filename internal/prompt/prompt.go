// Package prompt assembles the canonical filename-generation prompt shared
// verbatim across all AI providers, so behavior stays provider-independent.
package prompt

import (
	"fmt"
	"math"
	"strings"

	"airename/internal/naming"
	"airename/internal/renamer"
	"airename/internal/template"
)

// maxContentChars caps the document excerpt included in the prompt.
const maxContentChars = 2000

// System is the system-role message for providers that support a
// system/user role split.
const System = "You are a helpful assistant that generates descriptive filenames based on document content. Always respond with just the filename, no explanation or additional text."

// Context is the input to Build.
type Context struct {
	Content      string
	OriginalName string
	Convention   naming.Convention
	Category     template.Category
	FileInfo     *renamer.FileInfo
}

// Build renders the prompt. It is a pure function of its input.
func Build(ctx Context) string {
	var b strings.Builder

	b.WriteString("Based on the following document information, generate a descriptive filename that captures the main topic/purpose of the document. The filename should be:\n")
	b.WriteString("- Descriptive and meaningful\n")
	b.WriteString("- Professional and clean\n")
	b.WriteString("- Between 3-10 words\n")
	fmt.Fprintf(&b, "- %s\n", naming.Instructions(ctx.Convention))
	fmt.Fprintf(&b, "- %s\n", template.Instructions(ctx.Category))
	b.WriteString("- Do not include file extension\n")
	b.WriteString("- If the document is specifically for/about a person (based on content), include their name at the beginning\n")
	b.WriteString("- Include dates only if they are essential to the document's identity (e.g., contracts, certificates)\n")
	b.WriteString("- Ignore irrelevant folder names that don't describe the document content\n")
	b.WriteString("- Only use letters, numbers, and appropriate separators for the naming convention\n")
	b.WriteString("- Focus on the document's actual content and purpose, not just metadata\n")

	if fi := ctx.FileInfo; fi != nil {
		b.WriteString("\nFile Information:\n")
		fmt.Fprintf(&b, "- Original filename: %s\n", ctx.OriginalName)
		fmt.Fprintf(&b, "- File size: %dKB\n", int64(math.Round(float64(fi.Size)/1024)))
		if !fi.CreatedAt.IsZero() {
			fmt.Fprintf(&b, "- Created: %s\n", fi.CreatedAt.Format("2006-01-02"))
		}
		if !fi.ModifiedAt.IsZero() {
			fmt.Fprintf(&b, "- Modified: %s\n", fi.ModifiedAt.Format("2006-01-02"))
		}
		if fi.ParentFolder != "" {
			fmt.Fprintf(&b, "- Parent folder: %s\n", fi.ParentFolder)
		}
		if len(fi.FolderPath) > 0 {
			fmt.Fprintf(&b, "- Folder path: %s\n", strings.Join(fi.FolderPath, " > "))
		}
		writeDocumentProperties(&b, fi.DocumentMetadata)
	}

	fmt.Fprintf(&b, "\nDocument content (first %d characters):\n%s\n", maxContentChars, excerpt(ctx.Content))

	b.WriteString("\nImportant: If this document is specifically for or about a particular person mentioned in the content, start the filename with their name. Otherwise, focus on the document's main purpose and content.\n")
	b.WriteString("\nRespond with only the filename using the specified naming convention, no explanation.")

	return b.String()
}

// writeDocumentProperties emits one line per present metadata field.
func writeDocumentProperties(b *strings.Builder, m *renamer.DocumentMetadata) {
	if m == nil {
		return
	}
	b.WriteString("\nDocument Properties:\n")
	if m.Title != "" {
		fmt.Fprintf(b, "- Title: %s\n", m.Title)
	}
	if m.Author != "" {
		fmt.Fprintf(b, "- Author: %s\n", m.Author)
	}
	if m.Creator != "" {
		fmt.Fprintf(b, "- Creator: %s\n", m.Creator)
	}
	if m.Subject != "" {
		fmt.Fprintf(b, "- Subject: %s\n", m.Subject)
	}
	if len(m.Keywords) > 0 {
		fmt.Fprintf(b, "- Keywords: %s\n", strings.Join(m.Keywords, ", "))
	}
	if !m.CreationDate.IsZero() {
		fmt.Fprintf(b, "- Created: %s\n", m.CreationDate.Format("2006-01-02"))
	}
	if !m.ModificationDate.IsZero() {
		fmt.Fprintf(b, "- Modified: %s\n", m.ModificationDate.Format("2006-01-02"))
	}
	if m.Pages > 0 {
		fmt.Fprintf(b, "- Pages: %d\n", m.Pages)
	}
	if m.WordCount > 0 {
		fmt.Fprintf(b, "- Word count: %d\n", m.WordCount)
	}
}

// excerpt truncates content to the first maxContentChars characters without
// splitting a multi-byte rune.
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= maxContentChars {
		return content
	}
	return string(runes[:maxContentChars])
}
