package knowledge

import (
	"adgm-backend/internal/compliance"
	"adgm-backend/internal/shared/telemetry"
)

// Enrich decorates compliance issues with legal citations and official links.
// It is purely additive: severity and description are never altered, and any
// failure inside enrichment leaves the original issues intact rather than
// dropping already-computed findings.
func Enrich(documentType string, issues []compliance.Issue) (enriched []compliance.Issue) {
	enriched = make([]compliance.Issue, len(issues))
	copy(enriched, issues)

	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Warn("knowledge.enrich_failed", map[string]any{
				"document_type": documentType,
				"error":         rec,
			})
			copy(enriched, issues)
		}
	}()

	for i := range enriched {
		guidance := GuidanceFor(documentType, enriched[i].Type)
		if len(guidance) == 0 {
			continue
		}
		citations := make([]compliance.LegalCitation, 0, len(guidance))
		for _, ref := range guidance {
			citations = append(citations, compliance.LegalCitation{
				Title:    ref.Title,
				Content:  ref.Content,
				Source:   ref.Source,
				Article:  ref.Article,
				Citation: Citation(ref),
			})
		}
		enriched[i].LegalReferences = citations
		enriched[i].Links = LinksFor(CategoryFor(enriched[i].Type))
	}

	return enriched
}
