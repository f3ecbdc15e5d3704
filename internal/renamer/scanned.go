package renamer

import "strings"

// Content markers for the scanned-document fallback. Parsers emit these when
// a file has no extractable text but does have a visual representation.
// Vision-capable providers forward the embedded image to the model; others
// fall back to sanitizing the original filename.
const (
	scannedImagePrefix  = "[scanned-image "
	scannedDocumentMark = "[scanned-document]"
)

// EncodeScannedImage wraps a base64-encoded image as parser content.
func EncodeScannedImage(mediaType, base64Data string) string {
	return scannedImagePrefix + mediaType + "]\n" + base64Data
}

// DecodeScannedImage extracts the media type and base64 payload from
// scanned-image content. ok is false for ordinary text content.
func DecodeScannedImage(content string) (mediaType, base64Data string, ok bool) {
	if !strings.HasPrefix(content, scannedImagePrefix) {
		return "", "", false
	}
	rest := content[len(scannedImagePrefix):]
	end := strings.Index(rest, "]\n")
	if end < 0 {
		return "", "", false
	}
	return rest[:end], rest[end+2:], true
}

// MarkScannedDocument tags sparse text extracted from an image-only document
// (e.g. a scanned PDF) so providers can choose a fallback path.
func MarkScannedDocument(text string) string {
	return scannedDocumentMark + "\n" + text
}

// IsScannedDocument reports whether content carries the scanned-document tag.
func IsScannedDocument(content string) bool {
	return strings.HasPrefix(content, scannedDocumentMark)
}

// IsScannedContent reports whether content is either scanned marker form.
func IsScannedContent(content string) bool {
	return strings.HasPrefix(content, scannedImagePrefix) || IsScannedDocument(content)
}
