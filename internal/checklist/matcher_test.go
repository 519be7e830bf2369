package checklist

import "testing"

func TestNormalizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Articles_of_Association.docx", "articles of association"},
		{"Board-Resolution.DOCX", "board resolution"},
		{"Board_Resolution.DOCX", "board resolution"},
		{"board.resolution.pdf", "board resolution"},
		{"  UBO Declaration Form.txt  ", "ubo declaration form"},
		{"memorandum", "memorandum"},
		{"archive.tar.odt", "archive tar"},
		{"report.xlsx", "report xlsx"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := NormalizeFilename(tc.in); got != tc.want {
			t.Errorf("NormalizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeFilenameIdempotent(t *testing.T) {
	inputs := []string{"Articles_of_Association.docx", "Board-Resolution.DOCX", "plain name"}
	for _, in := range inputs {
		once := NormalizeFilename(in)
		if twice := NormalizeFilename(once); twice != once {
			t.Errorf("NormalizeFilename not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestMatches(t *testing.T) {
	req := Requirement{
		DocumentName:    "Board Resolution",
		ContentKeywords: []string{"board resolution", "board meeting", "directors resolution"},
	}

	tests := []struct {
		name     string
		text     string
		filename string
		want     bool
	}{
		{"content keyword", "Minutes of the BOARD MEETING held on 1 June", "scan001.docx", true},
		{"normalized filename equality", "", "Board_Resolution.DOCX", true},
		{"keyword in raw filename", "", "signed board resolution final.pdf", true},
		{"no match", "unrelated content", "unrelated.docx", false},
		{"case-insensitive content", "BOARD RESOLUTION OF THE DIRECTORS", "x.docx", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(tc.text, tc.filename, req); got != tc.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tc.text, tc.filename, got, tc.want)
			}
		})
	}
}

func TestMatchesFilenameOnly(t *testing.T) {
	req := Requirement{
		DocumentName:    "Articles of Association",
		ContentKeywords: []string{"articles of association", "aoa"},
	}

	if !matchesFilename("articles-of-association.pdf", req) {
		t.Error("expected normalized filename match")
	}
	if !matchesFilename("Company AoA v2.docx", req) {
		t.Error("expected keyword-in-filename match")
	}
	if matchesFilename("shareholder register.docx", req) {
		t.Error("unexpected match")
	}
}
