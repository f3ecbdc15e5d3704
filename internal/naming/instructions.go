package naming

// instructions describes each convention for inclusion in AI prompts.
// The wording must stay consistent with what Apply actually produces.
var instructions = map[Convention]string{
	KebabCase:  `Use lowercase with hyphens between words (e.g., "meeting-notes-2024")`,
	SnakeCase:  `Use lowercase with underscores between words (e.g., "meeting_notes_2024")`,
	CamelCase:  `Use camelCase format starting with lowercase (e.g., "meetingNotes2024")`,
	PascalCase: `Use PascalCase format starting with uppercase (e.g., "MeetingNotes2024")`,
	Lowercase:  `Use single lowercase word with no separators (e.g., "meetingnotes2024")`,
	Uppercase:  `Use single uppercase word with no separators (e.g., "MEETINGNOTES2024")`,
}

// Instructions returns a human-readable description of the convention with an
// example, for verbatim use inside AI prompts. Unknown conventions get the
// kebab-case description, mirroring Apply's fallback.
func Instructions(convention Convention) string {
	if s, ok := instructions[convention]; ok {
		return s
	}
	return instructions[KebabCase]
}
