// Package server provides the HTTP REST API for the personality quiz.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/personality-quiz/internal/pipeline"
	"github.com/jonathan/personality-quiz/internal/scoring"
)

// ErrSessionNotFound indicates the session ID does not exist
type ErrSessionNotFound struct {
	ID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrUnauthorized indicates a missing or invalid session token
type ErrUnauthorized struct {
	Reason string
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Gateway failures never reach this mapping; the fallback recommender
// absorbs them before a response is written.
func HTTPStatus(err error) int {
	var notFound *ErrSessionNotFound
	var unauthorized *ErrUnauthorized
	var invalidAnswers *scoring.InvalidAnswerSetError
	var emptyScores *scoring.EmptyScoresError
	var validation *ErrValidation
	var sessionErr *pipeline.SessionError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &invalidAnswers), errors.As(err, &emptyScores), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &sessionErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorCode returns the machine-readable tag written alongside the message.
func errorCode(err error) string {
	var notFound *ErrSessionNotFound
	var unauthorized *ErrUnauthorized
	var invalidAnswers *scoring.InvalidAnswerSetError
	var emptyScores *scoring.EmptyScoresError
	var validation *ErrValidation
	var sessionErr *pipeline.SessionError
	switch {
	case errors.As(err, &notFound):
		return "session_not_found"
	case errors.As(err, &unauthorized):
		return "unauthorized"
	case errors.As(err, &invalidAnswers):
		return "invalid_answer_set"
	case errors.As(err, &emptyScores):
		return "empty_scores"
	case errors.As(err, &validation):
		return "validation_error"
	case errors.As(err, &sessionErr):
		return "session_conflict"
	default:
		return "internal_error"
	}
}
