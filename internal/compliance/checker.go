// Package compliance applies the ADGM rule catalog to one document and
// computes its weighted compliance score.
package compliance

import (
	"fmt"
	"math"
	"strings"

	"adgm-backend/internal/extract"
	"adgm-backend/internal/rules"
)

// Severity weights for score computation: High=3, Medium=2, Low=1.
const (
	weightHigh   = 3
	weightMedium = 2
	weightLow    = 1
)

// compliantThreshold is the minimum score a document must reach to be
// considered compliant.
const compliantThreshold = 80.0

// Check runs every compliance check against one document and returns the
// aggregated report. A zero-valued structure is treated as a document with no
// title and no sections, never as an error.
func Check(documentType, text string, structure extract.Structure) Report {
	checks := []func() []Issue{
		func() []Issue { return checkJurisdiction(text) },
		func() []Issue { return checkRequiredClauses(documentType, text) },
		func() []Issue { return checkLegalLanguage(text) },
		func() []Issue { return checkFormatting(structure) },
	}

	var issues []Issue
	for _, check := range checks {
		issues = append(issues, check()...)
	}

	return buildReport(issues)
}

// checkJurisdiction flags references to court systems outside ADGM and,
// independently, the absence of any ADGM jurisdiction reference. A document
// can trigger both.
func checkJurisdiction(text string) []Issue {
	var issues []Issue

	for _, pattern := range rules.ForbiddenCourtPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			issues = append(issues, Issue{
				Type:          TypeJurisdictionError,
				Severity:      SeverityHigh,
				Description:   fmt.Sprintf("Document references %s instead of ADGM Courts", match),
				Section:       "Jurisdiction Clause",
				Clause:        match,
				ADGMReference: "ADGM Companies Regulations 2020, Art. 6",
				Suggestion:    "Update jurisdiction clause to reference ADGM Courts exclusively",
			})
		}
	}

	adgmReferences := 0
	for _, pattern := range rules.JurisdictionPatterns {
		adgmReferences += len(pattern.FindAllStringIndex(text, -1))
	}
	if adgmReferences == 0 {
		issues = append(issues, Issue{
			Type:          TypeMissingADGMReference,
			Severity:      SeverityHigh,
			Description:   "Document does not reference ADGM jurisdiction",
			Section:       "Jurisdiction",
			Clause:        "No ADGM reference found",
			ADGMReference: "ADGM Companies Regulations 2020, Art. 6",
			Suggestion:    "Add explicit reference to ADGM jurisdiction and courts",
		})
	}

	return issues
}

// checkRequiredClauses reports each required clause absent from the text.
// Document types with no clause list yield no issues.
func checkRequiredClauses(documentType, text string) []Issue {
	required, ok := rules.RequiredClauses[documentType]
	if !ok {
		return nil
	}

	lower := strings.ToLower(text)
	var issues []Issue
	for _, clause := range required {
		if strings.Contains(lower, clause) {
			continue
		}
		issues = append(issues, Issue{
			Type:          TypeMissingClause,
			Severity:      SeverityHigh,
			Description:   fmt.Sprintf("Required clause '%s' is missing", clause),
			Section:       "Document Structure",
			Clause:        clause,
			ADGMReference: "ADGM Companies Regulations 2020",
			Suggestion:    fmt.Sprintf("Add %s clause to comply with ADGM requirements", clause),
		})
	}
	return issues
}

// checkLegalLanguage flags every occurrence of a hedging or vague phrase.
func checkLegalLanguage(text string) []Issue {
	var issues []Issue
	for _, ap := range rules.AmbiguousPatterns {
		for _, match := range ap.Pattern.FindAllString(text, -1) {
			issues = append(issues, Issue{
				Type:          TypeAmbiguousLanguage,
				Severity:      SeverityMedium,
				Description:   ap.Description,
				Section:       "Legal Language",
				Clause:        match,
				ADGMReference: "ADGM Commercial Regulations",
				Suggestion:    "Replace with specific, binding language",
			})
		}
	}
	return issues
}

// checkFormatting applies the structural heuristics: missing title and
// insufficient sectioning.
func checkFormatting(structure extract.Structure) []Issue {
	var issues []Issue

	if structure.Title == "" {
		issues = append(issues, Issue{
			Type:          TypeMissingTitle,
			Severity:      SeverityMedium,
			Description:   "Document lacks a clear title",
			Section:       "Document Structure",
			Clause:        "No title found",
			ADGMReference: "ADGM Document Standards",
			Suggestion:    "Add a clear, descriptive document title",
		})
	}

	if len(structure.Sections) < 2 {
		issues = append(issues, Issue{
			Type:          TypePoorStructure,
			Severity:      SeverityLow,
			Description:   "Document lacks proper sectioning",
			Section:       "Document Structure",
			Clause:        "Insufficient sections",
			ADGMReference: "ADGM Document Standards",
			Suggestion:    "Organize content into clear, numbered sections",
		})
	}

	return issues
}

func buildReport(issues []Issue) Report {
	report := Report{
		TotalIssues: len(issues),
		Issues:      issues,
	}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityHigh:
			report.HighCount++
		case SeverityMedium:
			report.MediumCount++
		case SeverityLow:
			report.LowCount++
		}
	}

	if report.TotalIssues == 0 {
		report.Score = 100
	} else {
		weighted := float64(weightHigh*report.HighCount + weightMedium*report.MediumCount + weightLow*report.LowCount)
		maxPossible := float64(weightHigh * report.TotalIssues)
		report.Score = round2(math.Max(0, 100-weighted/maxPossible*100))
	}
	report.IsCompliant = report.Score >= compliantThreshold
	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
