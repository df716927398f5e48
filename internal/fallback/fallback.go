// Package fallback produces a pre-authored analysis when the generative call
// fails. Recommend is total: it returns a structurally valid analysis for any
// input, so a completed quiz always yields a report.
package fallback

import (
	"fmt"

	"github.com/jonathan/personality-quiz/internal/types"
)

// summaryTemplate synthesizes the summary from the two trait names. The
// fallback never calls the model, so this is the only personalized text.
const summaryTemplate = "Your %s nature combined with %s traits creates a unique advantage. " +
	"You have the potential to make a real impact by leaning into your natural strengths while continuing to grow. " +
	"The opportunities ahead are vast - focus on what energizes you and the rest will follow."

// Recommend returns the pre-authored analysis for the given traits. An
// unrecognized primary category degrades to the analytical record instead of
// failing; this branch is unreachable through the scoring pipeline but keeps
// the never-errors contract honest.
func Recommend(primary, secondary types.Category, _ types.UserProfile) types.PersonalityAnalysis {
	record, ok := traitRecords[primary]
	if !ok {
		primary = types.CategoryAnalytical
		record = traitRecords[primary]
	}

	books := bookTables[primary]
	courses := courseTables[primary]

	return types.PersonalityAnalysis{
		PersonalityType:       record.Type,
		Description:           record.Description,
		Strengths:             append([]string(nil), record.Strengths...),
		CareerPaths:           append([]types.CareerRecommendation(nil), record.Careers...),
		BookRecommendations:   append([]types.BookRecommendation(nil), books...),
		CourseRecommendations: append([]types.CourseRecommendation(nil), courses...),
		Summary:               fmt.Sprintf(summaryTemplate, primary, secondary),
	}
}
