package extract

import "strings"

// Section is a titled run of paragraphs inside a document.
type Section struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// Structure is the parsed shape of a document. A zero Structure is valid and
// means "nothing detected"; downstream checks treat absent collections as
// empty rather than as errors.
type Structure struct {
	Title      string       `json:"title"`
	Sections   []Section    `json:"sections"`
	Tables     [][][]string `json:"tables"`
	Paragraphs []string     `json:"paragraphs"`
}

// buildStructure derives the structure tree from ordered body items. The
// title is the first paragraph. A paragraph starts a new section when it
// carries a Heading style, is short and fully upper-case, or is a short
// colon-terminated label; everything after a section header accrues to that
// section, anything before the first header lands in Paragraphs.
func buildStructure(items []bodyItem) Structure {
	var s Structure

	for _, item := range items {
		if item.table != nil {
			s.Tables = append(s.Tables, item.table)
		}
		if item.paragraph == nil {
			continue
		}
		text := strings.TrimSpace(item.paragraph.text)
		if text == "" {
			continue
		}
		if s.Title == "" {
			s.Title = text
		}
		if isHeading(item.paragraph.style, text) {
			s.Sections = append(s.Sections, Section{Title: text})
			continue
		}
		if n := len(s.Sections); n > 0 {
			s.Sections[n-1].Content = append(s.Sections[n-1].Content, text)
			continue
		}
		s.Paragraphs = append(s.Paragraphs, text)
	}

	return s
}

func isHeading(style, text string) bool {
	if strings.HasPrefix(style, "Heading") {
		return true
	}
	if len(text) < 100 && isAllUpper(text) {
		return true
	}
	if strings.HasSuffix(text, ":") && len(text) < 50 {
		return true
	}
	return false
}

// isAllUpper reports whether text contains at least one cased letter and no
// lower-case letters.
func isAllUpper(text string) bool {
	return strings.ToUpper(text) == text && strings.ToLower(text) != text
}
