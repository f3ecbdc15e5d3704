package naming

import (
	"strings"
	"testing"
	"unicode"
)

func TestApply_Conventions(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		convention Convention
		want       string
	}{
		{"kebab from spaces", "Meeting Notes 2024", KebabCase, "meeting-notes-2024"},
		{"kebab from underscores", "meeting_notes_2024", KebabCase, "meeting-notes-2024"},
		{"snake from spaces", "Meeting Notes 2024", SnakeCase, "meeting_notes_2024"},
		{"snake from hyphens", "meeting-notes-2024", SnakeCase, "meeting_notes_2024"},
		{"camel from spaces", "meeting notes final", CamelCase, "meetingNotesFinal"},
		{"camel from kebab", "meeting-notes-final", CamelCase, "meetingNotesFinal"},
		{"pascal from spaces", "meeting notes final", PascalCase, "MeetingNotesFinal"},
		{"lowercase drops separators", "Meeting-Notes_2024", Lowercase, "meetingnotes2024"},
		{"uppercase drops separators", "Meeting-Notes_2024", Uppercase, "MEETINGNOTES2024"},
		{"strips punctuation", "report: Q4 (final)!", KebabCase, "report-q4-final"},
		{"collapses whitespace", "  too   many\tspaces ", KebabCase, "too-many-spaces"},
		{"empty input", "", KebabCase, ""},
		{"punctuation only", "!!! ???", SnakeCase, ""},
		{"unknown falls back to kebab", "Some Name", Convention("bogus"), "some-name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.text, tt.convention); got != tt.want {
				t.Errorf("Apply(%q, %s) = %q, want %q", tt.text, tt.convention, got, tt.want)
			}
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	inputs := []string{
		"Meeting Notes 2024",
		"already-kebab-case",
		"Mixed_Separators and Spaces",
		"Q4 Financial Report v2",
	}

	for _, c := range Conventions() {
		for _, in := range inputs {
			once := Apply(in, c)
			twice := Apply(once, c)
			if once != twice {
				t.Errorf("Apply(%s) not idempotent: %q -> %q -> %q", c, in, once, twice)
			}
		}
	}
}

func TestApply_OutputAlphabet(t *testing.T) {
	in := "Crazy: Input!! with  (many) sep_ar-ators & symbols"
	for _, c := range Conventions() {
		out := Apply(in, c)
		for _, r := range out {
			ok := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
			if !ok {
				t.Errorf("Apply(%s) output %q contains disallowed rune %q", c, out, r)
			}
		}
		if strings.Contains(out, " ") {
			t.Errorf("Apply(%s) output %q contains a space", c, out)
		}
	}
}

func TestValidate(t *testing.T) {
	for _, c := range Conventions() {
		if err := c.Validate(); err != nil {
			t.Errorf("Validate(%s) = %v, want nil", c, err)
		}
	}
	if err := Convention("shouting-case").Validate(); err == nil {
		t.Error("Validate(unknown) = nil, want error")
	}
}

func TestInstructions_AllConventionsCovered(t *testing.T) {
	for _, c := range Conventions() {
		got := Instructions(c)
		if got == "" {
			t.Errorf("Instructions(%s) is empty", c)
		}
	}
	// Unknown conventions get the kebab-case instruction.
	if got := Instructions(Convention("bogus")); got != Instructions(KebabCase) {
		t.Errorf("Instructions(unknown) = %q, want kebab-case instruction", got)
	}
}
