package reviews

import (
	"context"
	"strings"

	"adgm-backend/internal/checklist"
	"adgm-backend/internal/compliance"
	"adgm-backend/internal/extract"
	"adgm-backend/internal/knowledge"
	"adgm-backend/internal/shared/metrics"
	"adgm-backend/internal/shared/telemetry"
)

// File is one uploaded payload submitted for review.
type File struct {
	Name string
	Data []byte
}

// Service runs the full review pipeline: load, check, enrich, verify.
type Service struct {
	// Enrich attaches knowledge-base references to issues. Defaults to the
	// static knowledge store when nil.
	Enrich func(documentType string, issues []compliance.Issue) []compliance.Issue
}

// NewService constructs a Service with the default enrichment.
func NewService() *Service {
	return &Service{Enrich: knowledge.Enrich}
}

// Review processes the uploaded files and produces a structured report.
// A file that fails to load is recorded under Errors and skipped; it never
// aborts the review.
func (s *Service) Review(ctx context.Context, ownerID string, files []File) Report {
	metrics.IncReviewStarted()
	start := metrics.NowMillis()

	enrich := s.Enrich
	if enrich == nil {
		enrich = knowledge.Enrich
	}

	loaded := make([]extract.Document, 0, len(files))
	summaries := make([]DocumentSummary, 0, len(files))
	issuesFound := []ReportedIssue{}
	loadErrors := []string{}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			loadErrors = append(loadErrors, file.Name+": "+err.Error())
			continue
		}

		doc, err := extract.Process(file.Name, file.Data)
		if err != nil {
			metrics.IncDocumentLoadFailed()
			telemetry.Error("review.document_load_failed", map[string]any{
				"owner_id":  ownerID,
				"file_name": file.Name,
				"error":     err.Error(),
			})
			loadErrors = append(loadErrors, file.Name+": "+err.Error())
			continue
		}
		loaded = append(loaded, doc)

		report := compliance.Check(doc.DocumentType, doc.TextContent, doc.Structure)
		metrics.ObserveComplianceScore(report.Score)

		enriched := enrich(doc.DocumentType, report.Issues)
		issuesFound = append(issuesFound, toReportedIssues(doc.FileName, doc.DocumentType, enriched)...)

		summaries = append(summaries, DocumentSummary{
			FileName:        doc.FileName,
			DocumentType:    doc.DocumentType,
			ComplianceScore: report.Score,
			TotalIssues:     report.TotalIssues,
			WordCount:       doc.WordCount,
		})
	}

	descriptors := make([]checklist.UploadedDocument, 0, len(loaded))
	for _, doc := range loaded {
		descriptors = append(descriptors, checklist.UploadedDocument{
			FilePath:     doc.FilePath,
			FileName:     doc.FileName,
			DocumentType: doc.DocumentType,
			TextContent:  doc.TextContent,
		})
	}

	verifier := checklist.Verifier{}
	result := verifier.Verify(descriptors)

	userMessage := checklist.ComposeUserMessage(result)
	if len(loadErrors) > 0 {
		userMessage += "\n\nErrors:\n" + strings.Join(loadErrors, "\n")
	}

	metrics.IncReviewCompleted()
	metrics.ObserveReviewDurationMs(metrics.NowMillis() - start)

	return Report{
		Process:                result.ProcessType,
		DocumentsUploaded:      result.DocumentsUploaded,
		RequiredDocuments:      result.RequiredDocuments,
		MissingDocuments:       result.MissingDocuments,
		CompletenessPercentage: result.CompletenessPercentage,
		IsComplete:             result.IsComplete,
		Documents:              summaries,
		IssuesFound:            issuesFound,
		UserMessage:            userMessage,
		Errors:                 loadErrors,
	}
}
