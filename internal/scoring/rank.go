package scoring

import (
	"sort"

	"github.com/jonathan/personality-quiz/internal/types"
)

// CategoryScore pairs a category with its count, used for ordered listings
type CategoryScore struct {
	Category types.Category
	Count    int
}

// SortScores returns the score entries ordered by count descending, ties
// broken by category name ascending. The tie-break is deliberate: map
// iteration order is not a contract anyone should depend on.
func SortScores(scores types.Scores) []CategoryScore {
	entries := make([]CategoryScore, 0, len(scores))
	for category, count := range scores {
		entries = append(entries, CategoryScore{Category: category, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Category < entries[j].Category
	})
	return entries
}

// Rank derives the primary and secondary traits from a score map. Secondary
// falls back to primary when only one category received answers.
func Rank(scores types.Scores) (types.RankedTraits, error) {
	if len(scores) == 0 {
		return types.RankedTraits{}, &EmptyScoresError{}
	}

	entries := SortScores(scores)
	traits := types.RankedTraits{
		Primary:   entries[0].Category,
		Secondary: entries[0].Category,
	}
	if len(entries) > 1 {
		traits.Secondary = entries[1].Category
	}
	return traits, nil
}
