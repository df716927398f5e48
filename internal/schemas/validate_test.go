package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument(t *testing.T) map[string]any {
	t.Helper()

	item := func(fields map[string]any) []any {
		items := make([]any, 5)
		for i := range items {
			items[i] = fields
		}
		return items
	}

	return map[string]any{
		"personalityType": "The Logical Innovator",
		"description":     "You approach problems with structured thinking.",
		"strengths":       []any{"a", "b", "c", "d", "e"},
		"careerPaths": item(map[string]any{
			"title":       "Data Scientist",
			"description": "What this involves",
			"whyGoodFit":  "How this aligns",
		}),
		"bookRecommendations": item(map[string]any{
			"title":  "Thinking, Fast and Slow",
			"author": "Daniel Kahneman",
			"reason": "Why this resonates",
		}),
		"courseRecommendations": item(map[string]any{
			"title":       "Data Science Specialization",
			"platform":    "Coursera",
			"description": "What they learn",
			"level":       "Beginner",
		}),
		"summary": "Lean into your strengths.",
	}
}

func marshal(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestValidateAnalysis_ValidDocument(t *testing.T) {
	assert.NoError(t, ValidateAnalysis(marshal(t, validDocument(t))))
}

func TestValidateAnalysis_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{
			name:   "missing personality type",
			mutate: func(doc map[string]any) { delete(doc, "personalityType") },
		},
		{
			name: "four strengths",
			mutate: func(doc map[string]any) {
				doc["strengths"] = []any{"a", "b", "c", "d"}
			},
		},
		{
			name: "six strengths",
			mutate: func(doc map[string]any) {
				doc["strengths"] = []any{"a", "b", "c", "d", "e", "f"}
			},
		},
		{
			name: "unknown top-level field",
			mutate: func(doc map[string]any) {
				doc["confidence"] = 0.9
			},
		},
		{
			name: "level outside enum",
			mutate: func(doc map[string]any) {
				course := map[string]any{
					"title":       "Course",
					"platform":    "Platform",
					"description": "Description",
					"level":       "Expert",
				}
				doc["courseRecommendations"] = []any{course, course, course, course, course}
			},
		},
		{
			name: "career missing why good fit",
			mutate: func(doc map[string]any) {
				career := map[string]any{
					"title":       "Title",
					"description": "Description",
				}
				doc["careerPaths"] = []any{career, career, career, career, career}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument(t)
			tt.mutate(doc)

			err := ValidateAnalysis(marshal(t, doc))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateAnalysis_NotJSON(t *testing.T) {
	err := ValidateAnalysis([]byte("not json at all"))
	assert.Error(t, err)
}
