// Package types provides type definitions for structured data used throughout the personality-quiz system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category is a personality category tag. The set is closed; questions are
// authored against it and the fallback tables are indexed by it.
type Category string

// Category constants define the closed category set
const (
	CategoryAnalytical Category = "analytical"
	CategoryCreative   Category = "creative"
	CategorySocial     Category = "social"
	CategoryActive     Category = "active"
	CategoryLeader     Category = "leader"
)

// Categories returns the closed category set in its canonical order.
func Categories() []Category {
	return []Category{
		CategoryAnalytical,
		CategoryCreative,
		CategorySocial,
		CategoryActive,
		CategoryLeader,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryAnalytical, CategoryCreative, CategorySocial, CategoryActive, CategoryLeader:
		return true
	}
	return false
}

// Question represents a single quiz question. Questions are immutable once
// loaded; every question carries exactly one category and four options.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Category Category `json:"category"`
}

// Answer represents a user's selection for one question. At most one Answer
// exists per question ID; re-selecting replaces the prior answer.
type Answer struct {
	QuestionID     string   `json:"questionId"`
	SelectedOption int      `json:"selectedOption"`
	Category       Category `json:"category"`
}

// Scores maps categories to answer counts. Only categories with at least one
// answer are present. Ordering is imposed by scoring.Rank, not by iteration.
type Scores map[Category]int

// Total returns the sum of all category counts.
func (s Scores) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// RankedTraits holds the two highest-scoring categories. Secondary equals
// Primary when only one category received answers.
type RankedTraits struct {
	Primary   Category `json:"primary"`
	Secondary Category `json:"secondary"`
}

// UserProfile represents the intake data captured before the quiz starts.
// Interests and Hobbies are optional free text.
type UserProfile struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Interests string `json:"interests,omitempty"`
	Hobbies   string `json:"hobbies,omitempty"`
}

// HasPersonalInfo reports whether the profile carries optional interests or
// hobbies text that the analysis should reference.
func (p UserProfile) HasPersonalInfo() bool {
	return p.Interests != "" || p.Hobbies != ""
}
