package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/personality-quiz/internal/prompts"
	"github.com/jonathan/personality-quiz/internal/scoring"
	"github.com/jonathan/personality-quiz/internal/types"
)

// BuildPrompt renders the instruction block sent to the generative service.
// The output is byte-identical for equal inputs: scores are listed in ranked
// order and the optional interests/hobbies fragments are either fully present
// or fully absent, so the model is never asked to reference data it was not
// given.
func BuildPrompt(scores types.Scores, traits types.RankedTraits, profile types.UserProfile) string {
	var scoreLines strings.Builder
	for i, entry := range scoring.SortScores(scores) {
		if i > 0 {
			scoreLines.WriteString("\n")
		}
		scoreLines.WriteString(fmt.Sprintf("  * %s: %d points", entry.Category, entry.Count))
	}

	interestsSection := ""
	if profile.Interests != "" {
		interestsSection = fmt.Sprintf("\n- Interests: %s", profile.Interests)
	}
	hobbiesSection := ""
	if profile.Hobbies != "" {
		hobbiesSection = fmt.Sprintf("\n- Hobbies: %s", profile.Hobbies)
	}

	// Personalization fragments are only inserted when the profile carries
	// interests or hobbies; otherwise the model would fabricate connections.
	personalTask := ""
	personalDescription := ""
	personalFit := ""
	personalReason := ""
	if profile.HasPersonalInfo() {
		personalTask = " that weaves in their specific interests and hobbies"
		personalDescription = ", mentioning their interests/hobbies"
		personalFit = " and interests"
		personalReason = " with their profile"
	}

	template := prompts.MustGet("analysis.json", "personality-analysis")
	return prompts.Format(template, map[string]string{
		"Name":                profile.Name,
		"Age":                 fmt.Sprintf("%d", profile.Age),
		"InterestsSection":    interestsSection,
		"HobbiesSection":      hobbiesSection,
		"ScoreLines":          scoreLines.String(),
		"Primary":             string(traits.Primary),
		"Secondary":           string(traits.Secondary),
		"PersonalTask":        personalTask,
		"PersonalDescription": personalDescription,
		"PersonalFit":         personalFit,
		"PersonalReason":      personalReason,
	})
}
