package rendering

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-layout/internal/types"
)

// maxFilenameLength caps sanitized base names.
const maxFilenameLength = 100

// SanitizeFilename strips characters that are unsafe in filenames, collapses
// whitespace runs to single underscores and caps the length. The extension
// is the caller's concern.
func SanitizeFilename(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '-', r == '_', r == '.':
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
		}
	}

	out := strings.Join(strings.Fields(sb.String()), "_")
	if len(out) > maxFilenameLength {
		out = out[:maxFilenameLength]
	}
	return out
}

// OutputBaseName derives the default output base name for a document: its
// title, else the person's name, else "Resume".
func OutputBaseName(doc *types.ResumeDocument) string {
	if doc != nil {
		if name := SanitizeFilename(doc.Title); name != "" {
			return name
		}
		if name := SanitizeFilename(doc.PersonalInfo.FullName); name != "" {
			return name
		}
	}
	return "Resume"
}
