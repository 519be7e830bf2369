// Package rules holds the static ADGM compliance rule catalog: jurisdiction
// patterns, per-type required clauses, ambiguous-language patterns, and the
// regulation article tables. All values are initialized once and must be
// treated as read-only; they are safe to share across concurrent checks.
package rules

import "regexp"

// JurisdictionPatterns match valid references to the ADGM jurisdiction.
var JurisdictionPatterns = compileAll(
	`ADGM\s+Courts?`,
	`Abu\s+Dhabi\s+Global\s+Market`,
	`ADGM\s+Companies?\s+Regulations?`,
	`ADGM\s+Commercial\s+Regulations?`,
)

// ForbiddenCourtPatterns match references to court systems outside ADGM.
var ForbiddenCourtPatterns = compileAll(
	`UAE\s+Federal\s+Courts?`,
	`Federal\s+Courts?\s+of\s+UAE`,
	`Dubai\s+Courts?`,
	`Abu\s+Dhabi\s+Courts?`,
)

// RequiredClauses lists the clauses each document type must contain. The
// clause phrases are matched as case-insensitive substrings of the document
// text. Document types not present here yield no required-clause findings.
var RequiredClauses = map[string][]string{
	"Articles of Association": {
		"company name",
		"registered office",
		"objects clause",
		"share capital",
		"directors",
		"shareholders",
		"amendment procedures",
	},
	"Memorandum of Association": {
		"company name",
		"registered office",
		"objects",
		"liability",
		"share capital",
		"subscribers",
	},
	"Board Resolution": {
		"date",
		"directors present",
		"resolution text",
		"voting results",
		"signatures",
	},
}

// AmbiguousPattern pairs a hedging-language pattern with the finding
// description it produces.
type AmbiguousPattern struct {
	Pattern     *regexp.Regexp
	Description string
}

// AmbiguousPatterns are the hedging and vague phrasings flagged as
// non-binding legal language. Every occurrence is reported.
var AmbiguousPatterns = []AmbiguousPattern{
	{regexp.MustCompile(`(?i)may\s+or\s+may\s+not`), `Ambiguous language - "may or may not"`},
	{regexp.MustCompile(`(?i)at\s+our\s+discretion`), "Vague discretionary language"},
	{regexp.MustCompile(`(?i)reasonable\s+efforts?`), `Subjective standard - "reasonable efforts"`},
	{regexp.MustCompile(`(?i)best\s+endeavours?`), `Subjective standard - "best endeavours"`},
	{regexp.MustCompile(`(?i)subject\s+to\s+availability`), "Conditional language without clear terms"},
}

// Regulations maps each regulation body to the articles it covers.
var Regulations = map[string][]string{
	"Companies Regulations 2020": {
		"Art. 6 - Company Formation",
		"Art. 15 - Share Capital Requirements",
		"Art. 22 - Director Qualifications",
		"Art. 45 - Corporate Governance",
	},
	"Commercial Regulations": {
		"Art. 3 - Business Licensing",
		"Art. 8 - Compliance Requirements",
		"Art. 12 - Reporting Obligations",
	},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}
