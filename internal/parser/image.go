package parser

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"airename/internal/renamer"
)

// ImageParser handles image files. There is no text to extract; the content
// it produces is a scanned-image marker carrying the base64-encoded image,
// which vision-capable providers forward to the model.
type ImageParser struct{}

func NewImageParser() *ImageParser { return &ImageParser{} }

var imageMediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

func (p *ImageParser) Supports(path string) bool {
	_, ok := imageMediaTypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

func (p *ImageParser) Parse(path string) (renamer.ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return renamer.ParseResult{}, fmt.Errorf("failed to read image file: %w", err)
	}
	if len(data) == 0 {
		return renamer.ParseResult{}, fmt.Errorf("failed to read image file: file is empty")
	}

	mediaType := imageMediaTypes[strings.ToLower(filepath.Ext(path))]
	encoded := base64.StdEncoding.EncodeToString(data)
	return renamer.ParseResult{Content: renamer.EncodeScannedImage(mediaType, encoded)}, nil
}
