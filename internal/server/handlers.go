package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/personality-quiz/internal/analysis"
	"github.com/jonathan/personality-quiz/internal/delivery"
	"github.com/jonathan/personality-quiz/internal/fallback"
	"github.com/jonathan/personality-quiz/internal/pipeline"
	"github.com/jonathan/personality-quiz/internal/scoring"
	"github.com/jonathan/personality-quiz/internal/types"
)

// AnalyzeRequest represents the request body for /analyze. Scores arrive
// pre-aggregated as category name to count.
type AnalyzeRequest struct {
	Scores    map[string]int `json:"scores" validate:"required,min=1"`
	Name      string         `json:"name" validate:"required"`
	Age       int            `json:"age" validate:"required,gte=1,lte=120"`
	Interests string         `json:"interests,omitempty"`
	Hobbies   string         `json:"hobbies,omitempty"`
}

// CreateSessionRequest represents the intake body for /sessions
type CreateSessionRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Age       int    `json:"age" validate:"required,gte=1,lte=120"`
	Interests string `json:"interests,omitempty"`
	Hobbies   string `json:"hobbies,omitempty"`
}

// CreateSessionResponse represents the response for /sessions
type CreateSessionResponse struct {
	SessionID       string `json:"session_id"`
	Token           string `json:"token"`
	State           string `json:"state"`
	QuestionCount   int    `json:"question_count"`
	EmailSuggestion string `json:"email_suggestion,omitempty"`
	Returning       bool   `json:"returning,omitempty"`
}

// AnswerRequest represents the body for /sessions/{id}/answers
type AnswerRequest struct {
	QuestionID     string `json:"question_id" validate:"required"`
	SelectedOption int    `json:"selected_option" validate:"gte=0"`
}

// AnswerResponse reports collection progress after recording an answer
type AnswerResponse struct {
	Answered int  `json:"answered"`
	Total    int  `json:"total"`
	Complete bool `json:"complete"`
}

// SubmitResponse represents the response for /sessions/{id}/submit
type SubmitResponse struct {
	SessionID    string                     `json:"session_id"`
	State        string                     `json:"state"`
	Scores       types.Scores               `json:"scores"`
	Traits       types.RankedTraits         `json:"traits"`
	FallbackUsed bool                       `json:"fallback_used"`
	Analysis     *types.PersonalityAnalysis `json:"analysis"`
}

// SessionResponse represents the response for GET /sessions/{id}
type SessionResponse struct {
	SessionID    string                     `json:"session_id"`
	State        string                     `json:"state"`
	Answered     int                        `json:"answered"`
	Total        int                        `json:"total"`
	Complete     bool                       `json:"complete"`
	FallbackUsed bool                       `json:"fallback_used,omitempty"`
	Analysis     *types.PersonalityAnalysis `json:"analysis,omitempty"`
}

// handleQuestions serves the question bank
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	qs, err := s.bank.Questions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "internal_error", "failed to load questions")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"questions": qs})
}

// handleAnalyze runs the stateless analysis flow over pre-aggregated scores.
// Gateway failures are absorbed by the fallback recommender, so the response
// is 200 with usable content for anything past input validation.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorFromErr(w, validationError(err))
		return
	}

	scores := make(types.Scores, len(req.Scores))
	for name, count := range req.Scores {
		category := types.Category(name)
		if !category.Valid() {
			s.errorFromErr(w, &scoring.InvalidAnswerSetError{Message: fmt.Sprintf("unknown category %q", name)})
			return
		}
		if count < 0 {
			s.errorFromErr(w, &scoring.InvalidAnswerSetError{Message: fmt.Sprintf("negative count for category %q", name)})
			return
		}
		scores[category] = count
	}

	traits, err := scoring.Rank(scores)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	profile := types.UserProfile{
		Name:      req.Name,
		Age:       req.Age,
		Interests: req.Interests,
		Hobbies:   req.Hobbies,
	}

	prompt := analysis.BuildPrompt(scores, traits, profile)
	doc, err := s.gateway.Analyze(r.Context(), prompt)
	if err != nil {
		log.Printf("[ANALYSIS] gateway failed, using fallback recommendations: %v", err)
		fb := fallback.Recommend(traits.Primary, traits.Secondary, profile)
		doc = &fb
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

// handleCreateSession starts a quiz session from intake data
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorFromErr(w, validationError(err))
		return
	}

	suggestion, err := delivery.CheckEmail(req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_email", err.Error())
		return
	}

	profile := types.UserProfile{
		Name:      req.Name,
		Age:       req.Age,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Interests: req.Interests,
		Hobbies:   req.Hobbies,
	}

	qs, err := s.bank.Questions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "internal_error", "failed to load questions")
		return
	}

	session := pipeline.NewSession(profile, qs)

	// Intake must succeed even when the archive is unreachable; the user
	// record is retried implicitly by the dedupe on the next visit.
	returning := false
	if s.db != nil {
		if exists, err := s.db.EmailExists(r.Context(), profile.Email); err == nil {
			returning = exists
		}
		userID, err := s.db.SaveUser(r.Context(), profile)
		if err != nil {
			log.Printf("[INTAKE] failed to save user for session %s: %v", session.ID, err)
		} else {
			s.rememberUser(session.ID, userID)
		}
	}

	token, err := s.jwtService.GenerateToken(session.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "internal_error", "failed to issue session token")
		return
	}

	s.storeSession(session)

	s.jsonResponse(w, http.StatusCreated, CreateSessionResponse{
		SessionID:       session.ID.String(),
		Token:           token,
		State:           string(session.State()),
		QuestionCount:   len(qs),
		EmailSuggestion: suggestion,
		Returning:       returning,
	})
}

// handleRecordAnswer records one answer on a collecting session
func (s *Server) handleRecordAnswer(w http.ResponseWriter, r *http.Request) {
	session, err := s.authorizedSession(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorFromErr(w, validationError(err))
		return
	}

	if err := session.Record(req.QuestionID, req.SelectedOption); err != nil {
		s.errorFromErr(w, err)
		return
	}

	answered := len(session.Answers())
	s.jsonResponse(w, http.StatusOK, AnswerResponse{
		Answered: answered,
		Total:    len(session.Question),
		Complete: session.Complete(),
	})
}

// handleSubmit runs the submission pipeline for a completed session
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	session, err := s.authorizedSession(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	var archiver pipeline.Archiver
	if s.db != nil {
		archiver = s.db
	}
	var deliverer pipeline.Deliverer
	if s.reporter != nil {
		deliverer = s.reporter
	}

	result, err := session.Submit(r.Context(), s.gateway, archiver, deliverer)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	if s.db != nil {
		if userID, ok := s.userFor(session.ID); ok {
			go func() {
				if err := s.db.MarkTestCompleted(context.WithoutCancel(r.Context()), userID); err != nil {
					log.Printf("[ARCHIVE] failed to mark test completed for session %s: %v", session.ID, err)
				}
			}()
		}
	}

	// The submit response reports the delivery outcome; archival completes
	// behind it and is visible through GET /sessions/{id}.
	state := pipeline.StateDelivered
	if result.FallbackUsed {
		state = pipeline.StateFallbackDelivered
	}

	s.jsonResponse(w, http.StatusOK, SubmitResponse{
		SessionID:    session.ID.String(),
		State:        string(state),
		Scores:       result.Scores,
		Traits:       result.Traits,
		FallbackUsed: result.FallbackUsed,
		Analysis:     result.Analysis,
	})
}

// handleGetSession reports session progress and, once delivered, the result
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.authorizedSession(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	resp := SessionResponse{
		SessionID: session.ID.String(),
		State:     string(session.State()),
		Answered:  len(session.Answers()),
		Total:     len(session.Question),
		Complete:  session.Complete(),
	}
	if result := session.Result(); result != nil {
		resp.FallbackUsed = result.FallbackUsed
		resp.Analysis = result.Analysis
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// authorizedSession resolves the path session ID, checks the bearer token
// against it, and returns the stored session.
func (s *Server) authorizedSession(r *http.Request) (*pipeline.Session, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "must be a valid session UUID"}
	}

	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, &ErrUnauthorized{Reason: "missing bearer token"}
	}
	claims, err := s.jwtService.ValidateToken(strings.TrimPrefix(header, prefix))
	if err != nil {
		return nil, &ErrUnauthorized{Reason: err.Error()}
	}
	if claims.SessionID != id {
		return nil, &ErrUnauthorized{Reason: "token does not match session"}
	}

	session, ok := s.session(id)
	if !ok {
		return nil, &ErrSessionNotFound{ID: id}
	}
	return session, nil
}

// validationError converts a validator error into the typed request error.
func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed %q validation", fe.Tag())}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}
