package checklist

import (
	"math"

	"adgm-backend/internal/shared/telemetry"
)

// UploadedDocument is the loader-supplied descriptor for one uploaded file.
type UploadedDocument struct {
	FilePath     string `json:"file_path"`
	FileName     string `json:"file_name"`
	DocumentType string `json:"document_type"`
	TextContent  string `json:"text_content"`
}

// Result is the outcome of one checklist verification.
type Result struct {
	ProcessType            string   `json:"process_type"`
	DocumentsUploaded      int      `json:"documents_uploaded"`
	RequiredDocuments      int      `json:"required_documents"`
	MissingDocuments       []string `json:"missing_documents"`
	CompletenessPercentage float64  `json:"completeness_percentage"`
	IsComplete             bool     `json:"is_complete"`
}

// Verifier matches uploaded documents against the process checklist. The
// zero value uses each document's inline TextContent; set ExtractText to pull
// text through the document loader instead.
type Verifier struct {
	// ExtractText, when set, supplies the text for a document. Failures are
	// logged and treated as empty text; they never abort the verification.
	ExtractText func(doc UploadedDocument) (string, error)
}

// Verify checks document completeness for the inferred process.
//
// Matching is first-match-wins in upload order then catalog order: one
// uploaded document marks at most one mandatory slot, and a slot once marked
// stays marked. Two uploads may both nominally match the same slot; only the
// first is recorded and the second marks nothing. That is intentional, not a
// best-match ranking.
func (v *Verifier) Verify(uploaded []UploadedDocument) Result {
	if len(uploaded) == 0 {
		return Result{
			ProcessType:      "Unknown",
			MissingDocuments: []string{},
		}
	}

	documentTypes := make([]string, 0, len(uploaded))
	for _, doc := range uploaded {
		documentTypes = append(documentTypes, doc.DocumentType)
	}
	processType := IdentifyProcess(documentTypes)

	requirements, ok := checklists[processType]
	if !ok {
		return Result{
			ProcessType:       "Unknown Process",
			DocumentsUploaded: len(uploaded),
			MissingDocuments:  []string{},
		}
	}

	var mandatory []Requirement
	for _, req := range requirements {
		if req.IsMandatory {
			mandatory = append(mandatory, req)
		}
	}

	found := make(map[string]bool, len(mandatory))
	for _, doc := range uploaded {
		if doc.FileName == "" {
			continue
		}
		text := v.textFor(doc)

		matched := false
		for _, req := range mandatory {
			if found[req.DocumentName] {
				continue
			}
			if Matches(text, doc.FileName, req) {
				found[req.DocumentName] = true
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// Filename-only fallback against still-unsatisfied slots.
		for _, req := range mandatory {
			if found[req.DocumentName] {
				continue
			}
			if matchesFilename(doc.FileName, req) {
				found[req.DocumentName] = true
				break
			}
		}
	}

	missing := []string{}
	satisfied := 0
	for _, req := range mandatory {
		if found[req.DocumentName] {
			satisfied++
		} else {
			missing = append(missing, req.DocumentName)
		}
	}

	completeness := 0.0
	if len(mandatory) > 0 {
		completeness = round2(float64(satisfied) / float64(len(mandatory)) * 100)
	}

	return Result{
		ProcessType:            processType,
		DocumentsUploaded:      len(uploaded),
		RequiredDocuments:      len(mandatory),
		MissingDocuments:       missing,
		CompletenessPercentage: completeness,
		IsComplete:             len(missing) == 0,
	}
}

func (v *Verifier) textFor(doc UploadedDocument) string {
	if v.ExtractText == nil {
		return doc.TextContent
	}
	text, err := v.ExtractText(doc)
	if err != nil {
		telemetry.Warn("checklist.extract_failed", map[string]any{
			"file_name": doc.FileName,
			"error":     err.Error(),
		})
		return ""
	}
	return text
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
