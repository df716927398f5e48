// Package scoring converts a completed answer set into category scores and
// ranked traits. Both functions are pure; all failures are input-contract
// violations surfaced as typed errors.
package scoring

import (
	"fmt"

	"github.com/jonathan/personality-quiz/internal/types"
)

// Aggregate tallies answers into per-category counts. Each answer contributes
// exactly one point to its question's category; the selected option index does
// not affect the score. Callers guarantee at most one answer per question ID.
func Aggregate(answers []types.Answer) (types.Scores, error) {
	if len(answers) == 0 {
		return nil, &InvalidAnswerSetError{Message: "a submission must contain at least one answer"}
	}

	scores := make(types.Scores)
	for _, answer := range answers {
		if !answer.Category.Valid() {
			return nil, &InvalidAnswerSetError{
				Message: fmt.Sprintf("unknown category %q for question %s", answer.Category, answer.QuestionID),
			}
		}
		scores[answer.Category]++
	}

	return scores, nil
}
