package checklist

import (
	"fmt"
	"strings"
)

var processDescriptions = map[string]string{
	"Company Incorporation": "You are attempting to incorporate a company in ADGM",
	"Business Licensing":    "You are applying for a business license in ADGM",
	"Employment Contracts":  "You are setting up employment contracts for ADGM operations",
	"Commercial Agreements": "You are establishing commercial agreements for ADGM business",
}

// ProcessDescription returns a human-readable description of the process.
func ProcessDescription(processType string) string {
	if desc, ok := processDescriptions[processType]; ok {
		return desc
	}
	return "Unknown legal process"
}

// ComposeUserMessage renders a verification result as a user-facing status
// message. Missing documents are quoted and comma-joined in catalog order.
func ComposeUserMessage(result Result) string {
	desc := ProcessDescription(result.ProcessType)

	if result.IsComplete {
		return fmt.Sprintf(
			"Excellent! %s. You have uploaded all %d required documents. Your submission is complete and ready for review.",
			desc, result.RequiredDocuments,
		)
	}

	quoted := make([]string, 0, len(result.MissingDocuments))
	for _, name := range result.MissingDocuments {
		quoted = append(quoted, "'"+name+"'")
	}
	return fmt.Sprintf(
		"%s. Based on our reference list, you have uploaded %d out of %d required documents. The missing document(s) appear to be: %s.",
		desc, result.DocumentsUploaded, result.RequiredDocuments, strings.Join(quoted, ", "),
	)
}
