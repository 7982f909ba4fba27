package ai

// FallbackLabel is the tag applied when classification is unavailable.
const FallbackLabel = "miscellaneous"

// candidateLabels is the closed set of categories offered to the
// zero-shot classifier. The remote score ordering is authoritative.
var candidateLabels = []string{
	"electronics",
	"clothing & accessories",
	"documents & books",
	"sports equipment & toys",
	"personal items",
	"identification",
	"academic/work items",
	"transport items",
	"miscellaneous",
}

// Labels returns the candidate label set.
func Labels() []string {
	out := make([]string, len(candidateLabels))
	copy(out, candidateLabels)
	return out
}
