package compliance

// Severity levels for compliance issues.
const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"
	SeverityLow    = "Low"
)

// Issue types emitted by the checker.
const (
	TypeJurisdictionError    = "Jurisdiction Error"
	TypeMissingADGMReference = "Missing ADGM Reference"
	TypeMissingClause        = "Missing Required Clause"
	TypeAmbiguousLanguage    = "Ambiguous Language"
	TypeMissingTitle         = "Missing Title"
	TypePoorStructure        = "Poor Structure"
)

// LegalCitation is a knowledge-base reference attached to an issue during
// enrichment.
type LegalCitation struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Source   string `json:"source"`
	Article  string `json:"article"`
	Citation string `json:"citation"`
}

// Issue is one compliance finding. It is created by the checker and read-only
// afterwards; enrichment may append LegalReferences and Links but never
// changes Severity or Description.
type Issue struct {
	Type            string          `json:"type"`
	Severity        string          `json:"severity"`
	Description     string          `json:"description"`
	Section         string          `json:"section"`
	Clause          string          `json:"clause"`
	ADGMReference   string          `json:"adgm_reference"`
	Suggestion      string          `json:"suggestion"`
	LegalReferences []LegalCitation `json:"legal_references,omitempty"`
	Links           []string        `json:"adgm_links,omitempty"`
}

// Report is the outcome of checking one document.
type Report struct {
	Score       float64 `json:"compliance_score"`
	TotalIssues int     `json:"total_issues"`
	HighCount   int     `json:"high_severity_issues"`
	MediumCount int     `json:"medium_severity_issues"`
	LowCount    int     `json:"low_severity_issues"`
	Issues      []Issue `json:"issues"`
	IsCompliant bool    `json:"is_compliant"`
}
