// Package knowledge is the static ADGM legal reference base. It backs
// best-effort enrichment of compliance issues with citations and official
// links; it is read-only after initialization.
package knowledge

import (
	"sort"
	"strings"
)

// Reference is one legal reference or regulation excerpt.
type Reference struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Source   string `json:"source"`
	Article  string `json:"article"`
	Category string `json:"category"`
}

var base = map[string][]Reference{
	"company_formation": {
		{
			Title:    "Company Formation Requirements",
			Content:  "Companies must have a registered office in ADGM, minimum share capital as specified, and comply with corporate governance standards.",
			Source:   "ADGM Companies Regulations 2020",
			Article:  "Art. 6",
			Category: "Formation",
		},
		{
			Title:    "Articles of Association",
			Content:  "Must include company name, registered office, objects clause, share capital structure, director qualifications, and amendment procedures.",
			Source:   "ADGM Companies Regulations 2020",
			Article:  "Art. 6",
			Category: "Formation",
		},
		{
			Title:    "Director Qualifications",
			Content:  "Directors must be at least 18 years old, not disqualified, and meet fit and proper person criteria.",
			Source:   "ADGM Companies Regulations 2020",
			Article:  "Art. 22",
			Category: "Governance",
		},
	},
	"compliance": {
		{
			Title:    "Compliance Requirements",
			Content:  "Companies must maintain proper books and records, file annual returns, and comply with ongoing reporting obligations.",
			Source:   "ADGM Companies Regulations 2020",
			Article:  "Art. 45",
			Category: "Compliance",
		},
		{
			Title:    "Reporting Obligations",
			Content:  "Annual financial statements, director reports, and changes in company structure must be reported to ADGM.",
			Source:   "ADGM Companies Regulations 2020",
			Article:  "Art. 45",
			Category: "Compliance",
		},
	},
	"commercial_regulations": {
		{
			Title:    "Business Licensing",
			Content:  "Business activities require appropriate licenses and compliance with sector-specific regulations.",
			Source:   "ADGM Commercial Regulations",
			Article:  "Art. 3",
			Category: "Licensing",
		},
		{
			Title:    "Risk Management",
			Content:  "Companies must implement appropriate risk management and compliance policies.",
			Source:   "ADGM Commercial Regulations",
			Article:  "Art. 12",
			Category: "Compliance",
		},
	},
	"jurisdiction": {
		{
			Title:    "ADGM Jurisdiction",
			Content:  "All legal matters, disputes, and compliance issues fall under ADGM Courts jurisdiction, not UAE Federal Courts.",
			Source:   "ADGM Companies Regulations 2020",
			Article:  "Art. 6",
			Category: "Jurisdiction",
		},
		{
			Title:    "Court System",
			Content:  "ADGM operates its own court system with specialized commercial and civil courts.",
			Source:   "ADGM Court Regulations",
			Article:  "Art. 1",
			Category: "Jurisdiction",
		},
	},
}

var categoryOrder = []string{"company_formation", "compliance", "commercial_regulations", "jurisdiction"}

// OfficialLinks are the official ADGM resources by topic.
var OfficialLinks = map[string]string{
	"main_website":           "https://www.adgm.com",
	"companies_regulations":  "https://www.adgm.com/operating-in-adgm/legal-framework/companies-regulations-2020",
	"commercial_regulations": "https://www.adgm.com/operating-in-adgm/legal-framework/commercial-regulations",
	"court_system":           "https://www.adgm.com/operating-in-adgm/legal-framework/court-system",
	"licensing":              "https://www.adgm.com/operating-in-adgm/doing-business-licensing",
	"compliance":             "https://www.adgm.com/operating-in-adgm/operating-compliance",
}

var categoryLinks = map[string][]string{
	"company_formation": {"main_website", "companies_regulations", "licensing"},
	"compliance":        {"compliance", "companies_regulations"},
	"commercial":        {"commercial_regulations", "licensing"},
	"jurisdiction":      {"court_system", "companies_regulations"},
}

// Search finds references matching the query by keyword, most relevant first,
// capped at 5 results. An empty category searches every category.
func Search(query, category string) []Reference {
	queryLower := strings.ToLower(query)

	categories := categoryOrder
	if category != "" {
		categories = []string{category}
	}

	var results []Reference
	for _, cat := range categories {
		for _, ref := range base[cat] {
			if strings.Contains(strings.ToLower(ref.Title), queryLower) ||
				strings.Contains(strings.ToLower(ref.Content), queryLower) ||
				strings.Contains(strings.ToLower(ref.Article), queryLower) {
				results = append(results, ref)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return relevance(queryLower, results[i]) > relevance(queryLower, results[j])
	})

	if len(results) > 5 {
		results = results[:5]
	}
	return results
}

// relevance weights a title match above content, content above article.
func relevance(queryLower string, ref Reference) float64 {
	score := 0.0
	if strings.Contains(strings.ToLower(ref.Title), queryLower) {
		score += 10
	}
	if strings.Contains(strings.ToLower(ref.Content), queryLower) {
		score += 5
	}
	if strings.Contains(strings.ToLower(ref.Article), queryLower) {
		score += 2
	}
	return score
}

// GuidanceFor returns the references most relevant to an issue on a given
// document type.
func GuidanceFor(documentType, issueType string) []Reference {
	query := strings.TrimSpace(documentType + " " + issueType)
	issueLower := strings.ToLower(issueType)

	switch {
	case strings.Contains(issueLower, "jurisdiction"):
		return Search(query, "jurisdiction")
	case strings.Contains(issueLower, "formation"):
		return Search(query, "company_formation")
	case strings.Contains(issueLower, "compliance"):
		return Search(query, "compliance")
	default:
		return Search(query, "")
	}
}

// Citation formats a reference as a legal citation.
func Citation(ref Reference) string {
	return ref.Source + ", " + ref.Article
}

// LinksFor returns the official links relevant to a link category.
func LinksFor(category string) []string {
	var out []string
	for _, key := range categoryLinks[category] {
		if url, ok := OfficialLinks[key]; ok {
			out = append(out, url)
		}
	}
	return out
}

// CategoryFor maps an issue type to a link category.
func CategoryFor(issueType string) string {
	lower := strings.ToLower(issueType)
	switch {
	case strings.Contains(lower, "jurisdiction"):
		return "jurisdiction"
	case strings.Contains(lower, "formation"), strings.Contains(lower, "clause"):
		return "company_formation"
	case strings.Contains(lower, "compliance"):
		return "compliance"
	default:
		return "commercial"
	}
}
