package parser

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"airename/internal/renamer"
)

// ExcelParser extracts cell text and document properties from spreadsheets.
type ExcelParser struct{}

func NewExcelParser() *ExcelParser { return &ExcelParser{} }

func (p *ExcelParser) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

func (p *ExcelParser) Parse(path string) (renamer.ParseResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return renamer.ParseResult{}, fmt.Errorf("failed to parse Excel file: %w", err)
	}
	defer f.Close()

	var sheets []string
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return renamer.ParseResult{}, fmt.Errorf("failed to parse Excel file: %w", err)
		}
		var lines []string
		for _, row := range rows {
			line := strings.TrimRight(strings.Join(row, ","), ",")
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			sheets = append(sheets, fmt.Sprintf("Sheet: %s\n%s", name, strings.Join(lines, "\n")))
		}
	}

	content := strings.TrimSpace(strings.Join(sheets, "\n\n"))
	return renamer.ParseResult{Content: content, Metadata: excelMetadata(f)}, nil
}

// excelMetadata maps the workbook's document properties, best-effort.
func excelMetadata(f *excelize.File) *renamer.DocumentMetadata {
	props, err := f.GetDocProps()
	if err != nil || props == nil {
		return nil
	}
	meta := &renamer.DocumentMetadata{
		Title:   props.Title,
		Author:  props.Creator,
		Subject: props.Subject,
	}
	for _, k := range strings.Split(props.Keywords, ",") {
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
	return meta
}
