package extract

import "strings"

// UnknownDocumentType is returned when no classification rule matches.
const UnknownDocumentType = "Unknown Document Type"

type typeRule struct {
	keywords []string
	label    string
}

// Classification ladder, first match wins. Company formation documents come
// before the broader regulatory and commercial buckets so that, for example,
// an Articles of Association that mentions "agreement" still classifies as
// Articles of Association.
var typeRules = []typeRule{
	{[]string{"articles of association"}, "Articles of Association"},
	{[]string{"memorandum of association"}, "Memorandum of Association"},
	{[]string{"board resolution"}, "Board Resolution"},
	{[]string{"shareholder resolution"}, "Shareholder Resolution"},
	{[]string{"incorporation application"}, "Incorporation Application"},
	{[]string{"ubo declaration"}, "UBO Declaration"},
	{[]string{"register of members"}, "Register of Members and Directors"},
	{[]string{"change of registered address"}, "Change of Registered Address Notice"},
	{[]string{"license", "licensing", "regulatory"}, "Regulatory Filing"},
	{[]string{"employment", "hr", "contract"}, "Employment Contract"},
	{[]string{"commercial", "agreement", "partnership"}, "Commercial Agreement"},
	{[]string{"compliance", "risk", "policy"}, "Compliance Policy"},
}

// IdentifyDocumentType classifies a legal document from its extracted text.
func IdentifyDocumentType(content string) string {
	lower := strings.ToLower(content)
	if strings.Contains(lower, "memorandum") && strings.Contains(lower, "association") &&
		!strings.Contains(lower, "articles of association") {
		return "Memorandum of Association"
	}
	for _, rule := range typeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return UnknownDocumentType
}
