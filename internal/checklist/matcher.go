package checklist

import "strings"

// knownExtensions are stripped during filename normalization, checked in this
// priority order.
var knownExtensions = []string{".docx", ".doc", ".pdf", ".txt", ".rtf", ".odt"}

// Matches reports whether an uploaded document satisfies a requirement. It
// short-circuits in order: any content keyword found in the text, then
// normalized filename equality with the requirement name, then any keyword
// found in the raw filename.
func Matches(text, filename string, req Requirement) bool {
	textLower := strings.ToLower(text)
	for _, keyword := range req.ContentKeywords {
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			return true
		}
	}
	return matchesFilename(filename, req)
}

// matchesFilename applies only the filename portion of the matching rules.
func matchesFilename(filename string, req Requirement) bool {
	if NormalizeFilename(filename) == NormalizeFilename(req.DocumentName) {
		return true
	}
	filenameLower := strings.ToLower(filename)
	for _, keyword := range req.ContentKeywords {
		if strings.Contains(filenameLower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// NormalizeFilename reduces a filename to a canonical comparable form: trim,
// strip one recognized extension, map "_", "-" and "." to spaces, lowercase,
// and collapse runs of whitespace. The operation is idempotent.
func NormalizeFilename(filename string) string {
	name := strings.TrimSpace(filename)

	lower := strings.ToLower(name)
	for _, ext := range knownExtensions {
		if strings.HasSuffix(lower, ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}

	replacer := strings.NewReplacer("_", " ", "-", " ", ".", " ")
	name = replacer.Replace(name)

	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
