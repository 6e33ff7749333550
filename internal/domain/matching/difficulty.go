package matching

import (
	"strings"

	"github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/model"
)

// Label groups for the difficulty cascade, in priority order.
var (
	beginnerLabels     = []string{"good first issue", "beginner", "easy", "starter"}
	intermediateLabels = []string{"intermediate", "medium"}
	expertLabels       = []string{"hard", "expert", "complex", "difficult"}
)

// Body keyword groups, scanned only when no label matched. Beginner is
// enumerated before expert, which decides ties.
var complexityKeywords = []struct {
	difficulty model.Difficulty
	words      []string
}{
	{model.DifficultyBeginner, []string{"simple", "easy", "basic", "straightforward", "minor"}},
	{model.DifficultyExpert, []string{"complex", "advanced", "architecture", "performance", "optimization", "refactor"}},
}

// ClassifyDifficulty determines issue difficulty from labels and body
// content. Labels are matched case-insensitively with a first-match-wins
// cascade; the body keyword scan is a fallback. Unclassifiable issues
// default to intermediate.
func ClassifyDifficulty(labels []string, body string) model.Difficulty {
	lowered := make([]string, len(labels))
	for i, label := range labels {
		lowered[i] = strings.ToLower(label)
	}

	switch {
	case hasAnyLabel(lowered, beginnerLabels):
		return model.DifficultyBeginner
	case hasAnyLabel(lowered, intermediateLabels):
		return model.DifficultyIntermediate
	case hasAnyLabel(lowered, expertLabels):
		return model.DifficultyExpert
	case hasAnyLabel(lowered, []string{"help wanted"}):
		return model.DifficultyIntermediate
	case hasAnyLabel(lowered, []string{"bug"}):
		return model.DifficultyIntermediate
	case hasAnyLabel(lowered, []string{"enhancement", "feature"}):
		return model.DifficultyIntermediate
	}

	bodyLower := strings.ToLower(body)
	for _, group := range complexityKeywords {
		for _, word := range group.words {
			if strings.Contains(bodyLower, word) {
				return group.difficulty
			}
		}
	}

	return model.DifficultyIntermediate
}

func hasAnyLabel(labels, wanted []string) bool {
	for _, label := range labels {
		for _, w := range wanted {
			if label == w {
				return true
			}
		}
	}
	return false
}
