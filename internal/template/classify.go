package template

import (
	"path/filepath"
	"strings"
)

// FileContext carries the folder and document-metadata context used for
// classification, pre-extracted so this package stays free of the domain
// types that embed it.
type FileContext struct {
	FolderPath   []string
	ParentFolder string

	// Document metadata fields, when a parser produced them.
	Title    string
	Author   string
	Creator  string
	Subject  string
	Keywords []string
}

var (
	documentExtensions = []string{".pdf", ".docx", ".doc", ".txt", ".rtf"}
	movieExtensions    = []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm"}
	musicExtensions    = []string{".mp3", ".flac", ".wav", ".aac", ".ogg", ".m4a"}
	photoExtensions    = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".heic", ".webp"}
	bookExtensions     = []string{".epub", ".mobi", ".azw", ".azw3"}

	seriesKeywords = []string{"s01", "s02", "s03", "s04", "s05", "season", "episode", "e01", "e02", "e03", "series", "show", "tv"}
	bookKeywords   = []string{"chapter", "author", "book", "novel", "ebook", "isbn", "publisher", "edition"}

	// Folder names that decide a category outright. Checked in order;
	// series before movie so "tv/shows" folders are not mistaken for films.
	folderCategories = []struct {
		category Category
		names    []string
	}{
		{Series, []string{"series", "shows", "tv", "television"}},
		{Movie, []string{"movies", "films", "cinema", "video"}},
		{Music, []string{"music", "audio", "songs", "albums"}},
		{Photo, []string{"photos", "images", "pictures", "gallery"}},
		{Book, []string{"books", "ebooks", "library", "reading"}},
		{Document, []string{"documents", "docs", "papers", "files"}},
	}
)

// Categorize infers a concrete category for a file. It never returns Auto;
// when nothing matches the result is General.
//
// Precedence: folder context > series keywords on video files > extension
// class > General.
func Categorize(path string, content string, fctx *FileContext) Category {
	ext := strings.ToLower(filepath.Ext(path))
	stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	contentLower := strings.ToLower(content)

	folderHints := folderHintSet(fctx)
	textHints := []string{stem, contentLower}
	textHints = append(textHints, metadataHints(fctx)...)

	// Folder names outrank everything, including extension class.
	for _, fc := range folderCategories {
		for _, name := range fc.names {
			if folderHints[name] {
				return fc.category
			}
		}
	}

	// A video file that looks episodic is a series, not a movie.
	if containsExtension(movieExtensions, ext) && anyHintContains(textHints, seriesKeywords) {
		return Series
	}

	switch {
	case containsExtension(documentExtensions, ext):
		if containsExtension(bookExtensions, ext) || anyHintContains(textHints, bookKeywords) {
			return Book
		}
		return Document
	case containsExtension(movieExtensions, ext):
		return Movie
	case containsExtension(musicExtensions, ext):
		return Music
	case containsExtension(photoExtensions, ext):
		return Photo
	case containsExtension(bookExtensions, ext):
		return Book
	}

	return General
}

func folderHintSet(fctx *FileContext) map[string]bool {
	hints := make(map[string]bool)
	if fctx == nil {
		return hints
	}
	for _, seg := range fctx.FolderPath {
		hints[strings.ToLower(seg)] = true
	}
	if fctx.ParentFolder != "" {
		hints[strings.ToLower(fctx.ParentFolder)] = true
	}
	return hints
}

func metadataHints(fctx *FileContext) []string {
	if fctx == nil {
		return nil
	}
	var hints []string
	for _, s := range []string{fctx.Title, fctx.Author, fctx.Creator, fctx.Subject} {
		if s != "" {
			hints = append(hints, strings.ToLower(s))
		}
	}
	for _, k := range fctx.Keywords {
		if k != "" {
			hints = append(hints, strings.ToLower(k))
		}
	}
	return hints
}

func containsExtension(set []string, ext string) bool {
	for _, e := range set {
		if e == ext {
			return true
		}
	}
	return false
}

func anyHintContains(hints []string, keywords []string) bool {
	for _, h := range hints {
		for _, kw := range keywords {
			if strings.Contains(h, kw) {
				return true
			}
		}
	}
	return false
}
