package recommend

import (
	"slices"
	"strings"

	"github.com/itmo-abit/planbot/internal/curriculum"
)

// Disjoint tag sets behind the program comparison heuristic.
var (
	technicalTags = []string{"ml", "ds", "cv", "nlp", "dl", "rl", "python", "cpp", "sys", "gpu", "bigdata", "stats"}
	productTags   = []string{"product", "pm", "ba", "metrics", "design", "mentoring"}
)

// SuggestProgram picks a program from the declared tags: a purely technical
// profile points at the AI program, a purely product one at AI Product.
// A mixed or empty profile keeps the current selection.
func SuggestProgram(tags []string, current curriculum.ProgramID) curriculum.ProgramID {
	techBias := containsAny(tags, technicalTags)
	prodBias := containsAny(tags, productTags)

	switch {
	case prodBias && !techBias:
		return curriculum.ProgramAIProduct
	case techBias && !prodBias:
		return curriculum.ProgramAI
	default:
		return current
	}
}

func containsAny(tags, set []string) bool {
	for _, tag := range tags {
		if slices.Contains(set, strings.ToLower(tag)) {
			return true
		}
	}
	return false
}
