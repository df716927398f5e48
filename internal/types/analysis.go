//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// ListArity is the required number of entries in every analysis list field.
// Downstream consumers slice into these lists (top-3 strengths, first career),
// so the arity is a hard contract, not a suggestion.
const ListArity = 5

// PersonalityAnalysis is the report artifact produced once per completed
// submission, by either the analysis gateway or the fallback recommender.
// Both producers must satisfy Validate.
type PersonalityAnalysis struct {
	PersonalityType       string                 `json:"personalityType"`
	Description           string                 `json:"description"`
	Strengths             []string               `json:"strengths"`
	CareerPaths           []CareerRecommendation `json:"careerPaths"`
	BookRecommendations   []BookRecommendation   `json:"bookRecommendations"`
	CourseRecommendations []CourseRecommendation `json:"courseRecommendations"`
	Summary               string                 `json:"summary"`
}

// CareerRecommendation represents one suggested career path
type CareerRecommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	WhyGoodFit  string `json:"whyGoodFit"`
}

// BookRecommendation represents one suggested book
type BookRecommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Reason string `json:"reason"`
}

// CourseRecommendation represents one suggested course
type CourseRecommendation struct {
	Title       string `json:"title"`
	Platform    string `json:"platform"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

// Validate checks that the analysis satisfies the structural contract:
// non-empty scalar fields and exactly ListArity entries per list field.
func (a *PersonalityAnalysis) Validate() error {
	if a.PersonalityType == "" {
		return fmt.Errorf("personalityType is required")
	}
	if a.Description == "" {
		return fmt.Errorf("description is required")
	}
	if a.Summary == "" {
		return fmt.Errorf("summary is required")
	}
	if len(a.Strengths) != ListArity {
		return fmt.Errorf("strengths must have exactly %d entries, got %d", ListArity, len(a.Strengths))
	}
	if len(a.CareerPaths) != ListArity {
		return fmt.Errorf("careerPaths must have exactly %d entries, got %d", ListArity, len(a.CareerPaths))
	}
	if len(a.BookRecommendations) != ListArity {
		return fmt.Errorf("bookRecommendations must have exactly %d entries, got %d", ListArity, len(a.BookRecommendations))
	}
	if len(a.CourseRecommendations) != ListArity {
		return fmt.Errorf("courseRecommendations must have exactly %d entries, got %d", ListArity, len(a.CourseRecommendations))
	}
	return nil
}
