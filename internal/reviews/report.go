package reviews

import "adgm-backend/internal/compliance"

// DocumentSummary is the per-document line in a review report.
type DocumentSummary struct {
	FileName        string  `json:"file_name"`
	DocumentType    string  `json:"document_type"`
	ComplianceScore float64 `json:"compliance_score"`
	TotalIssues     int     `json:"total_issues"`
	WordCount       int     `json:"word_count"`
}

// ReportedIssue attributes a compliance finding to the document it came from.
type ReportedIssue struct {
	Document      string `json:"document"`
	DocumentType  string `json:"document_type"`
	Section       string `json:"section"`
	Issue         string `json:"issue"`
	Severity      string `json:"severity"`
	Suggestion    string `json:"suggestion"`
	ADGMReference string `json:"adgm_reference"`
}

// Report is the structured output of one review.
type Report struct {
	Process                string            `json:"process"`
	DocumentsUploaded      int               `json:"documents_uploaded"`
	RequiredDocuments      int               `json:"required_documents"`
	MissingDocuments       []string          `json:"missing_documents"`
	CompletenessPercentage float64           `json:"completeness_percentage"`
	IsComplete             bool              `json:"is_complete"`
	Documents              []DocumentSummary `json:"documents"`
	IssuesFound            []ReportedIssue   `json:"issues_found"`
	UserMessage            string            `json:"user_message"`
	Errors                 []string          `json:"errors"`
}

func toReportedIssues(fileName, documentType string, issues []compliance.Issue) []ReportedIssue {
	out := make([]ReportedIssue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, ReportedIssue{
			Document:      fileName,
			DocumentType:  documentType,
			Section:       issue.Section,
			Issue:         issue.Description,
			Severity:      issue.Severity,
			Suggestion:    issue.Suggestion,
			ADGMReference: issue.ADGMReference,
		})
	}
	return out
}
