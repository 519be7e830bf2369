// Package checklist verifies that an uploaded document set satisfies the
// required-document checklist of its legal process.
package checklist

// Requirement describes one document a legal process calls for. The catalog
// is initialized once and read-only afterwards; it is safe to share across
// concurrent verifications.
type Requirement struct {
	DocumentName    string   `json:"document_name"`
	IsMandatory     bool     `json:"is_mandatory"`
	Description     string   `json:"description"`
	ADGMReference   string   `json:"adgm_reference"`
	ContentKeywords []string `json:"content_keywords"`
}

// processOrder fixes catalog iteration order. Process identification breaks
// ties by this order, first declared wins.
var processOrder = []string{
	"Company Incorporation",
	"Business Licensing",
	"Employment Contracts",
	"Commercial Agreements",
}

var checklists = map[string][]Requirement{
	"Company Incorporation": {
		{
			DocumentName:    "Articles of Association",
			IsMandatory:     true,
			Description:     "Constitutional document defining company structure",
			ADGMReference:   "ADGM Companies Regulations 2020, Art. 6",
			ContentKeywords: []string{"articles of association", "company articles", "aoa", "articles", "constitutional document", "company structure"},
		},
		{
			DocumentName:    "Memorandum of Association",
			IsMandatory:     true,
			Description:     "Document establishing company and its objects",
			ADGMReference:   "ADGM Companies Regulations 2020, Art. 6",
			ContentKeywords: []string{"memorandum of association", "company memorandum", "memorandum", "company objects", "company establishment"},
		},
		{
			DocumentName:    "Board Resolution",
			IsMandatory:     true,
			Description:     "Resolution authorizing incorporation",
			ADGMReference:   "ADGM Companies Regulations 2020, Art. 22",
			ContentKeywords: []string{"board resolution", "board meeting", "directors resolution", "board decision", "directors decision"},
		},
		{
			DocumentName:    "Shareholder Resolution",
			IsMandatory:     true,
			Description:     "Resolution approving incorporation",
			ADGMReference:   "ADGM Companies Regulations 2020, Art. 15",
			ContentKeywords: []string{"shareholder resolution", "shareholders resolution", "member resolution", "shareholder decision", "member decision"},
		},
		{
			DocumentName:    "Incorporation Application Form",
			IsMandatory:     true,
			Description:     "Official application for company registration",
			ADGMReference:   "ADGM Companies Regulations 2020, Art. 6",
			ContentKeywords: []string{"incorporation application", "company registration", "incorporation form", "registration application", "company formation"},
		},
		{
			DocumentName:    "UBO Declaration Form",
			IsMandatory:     true,
			Description:     "Ultimate Beneficial Owner declaration",
			ADGMReference:   "ADGM Companies Regulations 2020, Art. 45",
			ContentKeywords: []string{"ubo declaration", "ultimate beneficial owner", "beneficial owner", "ubo form", "ownership declaration"},
		},
		{
			DocumentName:    "Register of Members and Directors",
			IsMandatory:     true,
			Description:     "Register of company members and directors",
			ADGMReference:   "ADGM Companies Regulations 2020, Art. 22",
			ContentKeywords: []string{"register of members", "register of directors", "members register", "directors register", "company register"},
		},
		{
			DocumentName:    "Change of Registered Address Notice",
			IsMandatory:     false,
			Description:     "Notice of registered office address",
			ADGMReference:   "ADGM Companies Regulations 2020, Art. 8",
			ContentKeywords: []string{"change of address", "registered address", "office address", "address change", "registered office"},
		},
	},
	"Business Licensing": {
		{
			DocumentName:    "License Application Form",
			IsMandatory:     true,
			Description:     "Application for business license",
			ADGMReference:   "ADGM Commercial Regulations, Art. 3",
			ContentKeywords: []string{"license application", "business license", "licensing application", "permit application", "business permit"},
		},
		{
			DocumentName:    "Business Plan",
			IsMandatory:     true,
			Description:     "Detailed business plan and projections",
			ADGMReference:   "ADGM Commercial Regulations, Art. 3",
			ContentKeywords: []string{"business plan", "business strategy", "business proposal", "business model", "business projections"},
		},
		{
			DocumentName:    "Financial Statements",
			IsMandatory:     true,
			Description:     "Audited financial statements",
			ADGMReference:   "ADGM Commercial Regulations, Art. 8",
			ContentKeywords: []string{"financial statements", "financial report", "audited accounts", "financial accounts", "balance sheet"},
		},
		{
			DocumentName:    "Compliance Policy",
			IsMandatory:     true,
			Description:     "Compliance and risk management policy",
			ADGMReference:   "ADGM Commercial Regulations, Art. 12",
			ContentKeywords: []string{"compliance policy", "risk management", "compliance procedures", "risk policy", "compliance framework"},
		},
		{
			DocumentName:    "Board Resolution",
			IsMandatory:     true,
			Description:     "Resolution approving license application",
			ADGMReference:   "ADGM Commercial Regulations, Art. 3",
			ContentKeywords: []string{"board resolution", "board meeting", "directors resolution", "board decision", "directors decision"},
		},
	},
	"Employment Contracts": {
		{
			DocumentName:    "Employment Contract",
			IsMandatory:     true,
			Description:     "Standard employment agreement",
			ADGMReference:   "ADGM Employment Regulations",
			ContentKeywords: []string{"employment contract", "employment agreement", "work contract", "employment terms", "work agreement"},
		},
		{
			DocumentName:    "Job Description",
			IsMandatory:     true,
			Description:     "Detailed job role and responsibilities",
			ADGMReference:   "ADGM Employment Regulations",
			ContentKeywords: []string{"job description", "role description", "position description", "job responsibilities", "role requirements"},
		},
		{
			DocumentName:    "Company Policies",
			IsMandatory:     false,
			Description:     "Relevant company policies and procedures",
			ADGMReference:   "ADGM Employment Regulations",
			ContentKeywords: []string{"company policies", "company procedures", "workplace policies", "employment policies", "company rules"},
		},
		{
			DocumentName:    "Board Resolution",
			IsMandatory:     true,
			Description:     "Resolution approving employment terms",
			ADGMReference:   "ADGM Employment Regulations",
			ContentKeywords: []string{"board resolution", "board meeting", "directors resolution", "board decision", "directors decision"},
		},
	},
	"Commercial Agreements": {
		{
			DocumentName:    "Commercial Agreement",
			IsMandatory:     true,
			Description:     "Main commercial contract",
			ADGMReference:   "ADGM Commercial Regulations",
			ContentKeywords: []string{"commercial agreement", "commercial contract", "business agreement", "commercial terms", "business contract"},
		},
		{
			DocumentName:    "Due Diligence Report",
			IsMandatory:     true,
			Description:     "Due diligence findings",
			ADGMReference:   "ADGM Commercial Regulations",
			ContentKeywords: []string{"due diligence", "due diligence report", "diligence findings", "investigation report", "background check"},
		},
		{
			DocumentName:    "Board Resolution",
			IsMandatory:     true,
			Description:     "Resolution approving agreement",
			ADGMReference:   "ADGM Commercial Regulations",
			ContentKeywords: []string{"board resolution", "board meeting", "directors resolution", "board decision", "directors decision"},
		},
		{
			DocumentName:    "Legal Opinion",
			IsMandatory:     false,
			Description:     "Legal opinion on agreement terms",
			ADGMReference:   "ADGM Commercial Regulations",
			ContentKeywords: []string{"legal opinion", "legal advice", "legal assessment", "legal review", "legal counsel"},
		},
	},
}

// Processes returns the known process types in declaration order.
func Processes() []string {
	out := make([]string, len(processOrder))
	copy(out, processOrder)
	return out
}

// Requirements returns the requirement list for a process, in catalog order,
// or nil for an unknown process.
func Requirements(processType string) []Requirement {
	reqs, ok := checklists[processType]
	if !ok {
		return nil
	}
	out := make([]Requirement, len(reqs))
	copy(out, reqs)
	return out
}

// References returns the distinct regulatory references cited by a process's
// requirements, in catalog order.
func References(processType string) []string {
	reqs, ok := checklists[processType]
	if !ok {
		return nil
	}
	seen := make(map[string]bool, len(reqs))
	var out []string
	for _, req := range reqs {
		if req.ADGMReference == "" || seen[req.ADGMReference] {
			continue
		}
		seen[req.ADGMReference] = true
		out = append(out, req.ADGMReference)
	}
	return out
}
