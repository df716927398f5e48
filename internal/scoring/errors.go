package scoring

import "fmt"

// InvalidAnswerSetError indicates the submitted answer set violates the input
// contract: it is empty or contains a category outside the closed set.
type InvalidAnswerSetError struct {
	Message string
}

func (e *InvalidAnswerSetError) Error() string {
	return fmt.Sprintf("invalid answer set: %s", e.Message)
}

// EmptyScoresError indicates ranking was attempted on an empty score map
type EmptyScoresError struct{}

func (e *EmptyScoresError) Error() string {
	return "score map has no entries"
}
