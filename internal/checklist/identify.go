package checklist

// boardResolutionType is weak evidence for every process.
const boardResolutionType = "Board Resolution"

// processAnchors are the document types that strongly indicate one process.
var processAnchors = map[string][]string{
	"Company Incorporation": {"Articles of Association", "Memorandum of Association"},
	"Business Licensing":    {"License Application Form", "Business Plan"},
	"Employment Contracts":  {"Employment Contract", "Job Description"},
	"Commercial Agreements": {"Commercial Agreement", "Due Diligence Report"},
}

// IdentifyProcess infers the legal process from a set of classified document
// types. Each anchor type adds 3 to its process, a Board Resolution adds 1 to
// every process. The highest score wins; ties go to the first-declared
// process.
func IdentifyProcess(documentTypes []string) string {
	scores := make(map[string]int, len(processOrder))
	for _, process := range processOrder {
		scores[process] = 0
	}

	for _, docType := range documentTypes {
		for _, process := range processOrder {
			for _, anchor := range processAnchors[process] {
				if docType == anchor {
					scores[process] += 3
				}
			}
		}
		if docType == boardResolutionType {
			for _, process := range processOrder {
				scores[process]++
			}
		}
	}

	best := processOrder[0]
	for _, process := range processOrder[1:] {
		if scores[process] > scores[best] {
			best = process
		}
	}
	return best
}
