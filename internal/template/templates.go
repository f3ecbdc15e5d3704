package template

import (
	"fmt"
	"strings"
)

// FileTemplate is static reference data describing how final names are
// assembled for one category.
type FileTemplate struct {
	Category    Category
	Pattern     string // e.g. "{content}-{personalName}-{date}"
	Description string
	Examples    []string
}

// fileTemplates holds one template per concrete category. Placeholders other
// than {content}, {personalName} and {date} ({year}, {season}, {episode},
// {artist}, {author}) are documentation of the intended shape; Apply strips
// them when no value is substituted.
var fileTemplates = map[Category]FileTemplate{
	Document: {
		Category:    Document,
		Pattern:     "{content}-{personalName}-{date}",
		Description: "Personal documents with name and date",
		Examples: []string{
			"driving-license-amirhossein-20250213.pdf",
			"dennemeyer-working-contract-amirhossein-20240314.pdf",
			"university-diploma-sarah-20220615.pdf",
		},
	},
	Movie: {
		Category:    Movie,
		Pattern:     "{content}-{year}",
		Description: "Movies with release year",
		Examples: []string{
			"the-dark-knight-2008.mkv",
			"inception-2010.mp4",
			"pulp-fiction-1994.avi",
		},
	},
	Music: {
		Category:    Music,
		Pattern:     "{artist}-{content}",
		Description: "Music files with artist name",
		Examples: []string{
			"the-beatles-hey-jude.mp3",
			"queen-bohemian-rhapsody.flac",
			"pink-floyd-wish-you-were-here.wav",
		},
	},
	Series: {
		Category:    Series,
		Pattern:     "{content}-s{season}e{episode}",
		Description: "TV series with season and episode",
		Examples: []string{
			"breaking-bad-s01e01.mkv",
			"game-of-thrones-s04e09.mp4",
			"the-office-s02e01.avi",
		},
	},
	Photo: {
		Category:    Photo,
		Pattern:     "{content}-{personalName}-{date}",
		Description: "Photos with personal name and date",
		Examples: []string{
			"vacation-paris-john-20240715.jpg",
			"wedding-ceremony-maria-20231009.png",
			"birthday-party-alex-20240320.heic",
		},
	},
	Book: {
		Category:    Book,
		Pattern:     "{author}-{content}",
		Description: "Books with author name",
		Examples: []string{
			"george-orwell-1984.pdf",
			"j-k-rowling-harry-potter-philosophers-stone.epub",
			"stephen-king-the-shining.mobi",
		},
	},
	General: {
		Category:    General,
		Pattern:     "{content}",
		Description: "General files without special formatting",
		Examples: []string{
			"meeting-notes-q4-2024.txt",
			"project-requirements.docx",
			"financial-report.xlsx",
		},
	},
}

// Lookup returns the template for a concrete category.
func Lookup(category Category) (FileTemplate, bool) {
	t, ok := fileTemplates[category]
	return t, ok
}

// Instructions returns a static description of the category's naming shape
// with examples, for verbatim use inside AI prompts. Auto is valid here
// (prompts can be built before categorization has run) and maps to a generic
// instruction instead of failing.
func Instructions(category Category) string {
	if category == Auto {
		return "Generate a descriptive filename that matches the file's content and type."
	}
	t, ok := fileTemplates[category]
	if !ok {
		return "Generate a descriptive filename that matches the file's content and type."
	}
	return fmt.Sprintf("Generate filename for %s type files. %s. Examples: %s",
		t.Category, t.Description, strings.Join(t.Examples, ", "))
}
