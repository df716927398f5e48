package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/personality-quiz/internal/types"
)

// State is a submission lifecycle state
type State string

// Submission lifecycle. Delivered and FallbackDelivered are both success
// states from the user's perspective; Archived follows either.
const (
	StateCollecting        State = "collecting"
	StateScoring           State = "scoring"
	StateRequesting        State = "requesting"
	StateDelivered         State = "delivered"
	StateFallbackDelivered State = "fallback_delivered"
	StateArchived          State = "archived"
)

// SessionError indicates a session-level contract violation
type SessionError struct {
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session error: %s", e.Message)
}

// Session tracks one user's quiz from intake through delivery. Each session
// is a single logical flow: answers accumulate, the set is submitted once,
// and the resulting analysis is immutable. The mutex only exists because the
// archival branch flips the final state from its own goroutine.
type Session struct {
	ID       uuid.UUID
	Profile  types.UserProfile
	Question map[string]types.Question

	mu      sync.Mutex
	order   []string
	answers map[string]types.Answer
	state   State
	result  *Result
}

// NewSession starts a collecting session over the given question set.
func NewSession(profile types.UserProfile, questions []types.Question) *Session {
	byID := make(map[string]types.Question, len(questions))
	order := make([]string, 0, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
		order = append(order, q.ID)
	}
	return &Session{
		ID:       uuid.New(),
		Profile:  profile,
		Question: byID,
		order:    order,
		answers:  make(map[string]types.Answer),
		state:    StateCollecting,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Record stores an answer while collecting. Selecting again for the same
// question replaces the prior answer (last write wins); the category is taken
// from the question, not trusted from the caller.
func (s *Session) Record(questionID string, selectedOption int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCollecting {
		return &SessionError{Message: fmt.Sprintf("cannot record answers in state %s", s.state)}
	}
	question, ok := s.Question[questionID]
	if !ok {
		return &SessionError{Message: fmt.Sprintf("unknown question %q", questionID)}
	}
	if selectedOption < 0 || selectedOption >= len(question.Options) {
		return &SessionError{Message: fmt.Sprintf("option index %d out of range for question %q", selectedOption, questionID)}
	}

	s.answers[questionID] = types.Answer{
		QuestionID:     questionID,
		SelectedOption: selectedOption,
		Category:       question.Category,
	}
	return nil
}

// Complete reports whether every question has a matching answer.
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete()
}

func (s *Session) complete() bool {
	return len(s.answers) == len(s.order)
}

// Answers returns the answer set in question order.
func (s *Session) Answers() []types.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answerList()
}

func (s *Session) answerList() []types.Answer {
	answers := make([]types.Answer, 0, len(s.answers))
	for _, id := range s.order {
		if answer, ok := s.answers[id]; ok {
			answers = append(answers, answer)
		}
	}
	return answers
}

// Result returns the submission result once the session has been delivered.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Submit transitions the session through scoring and requesting and lands in
// Delivered or FallbackDelivered. The transition precondition (every question
// answered) guarantees scoring succeeds; any gateway failure is absorbed.
// Archival runs behind the delivered state and its completion moves the
// session to Archived without changing the user-visible outcome.
func (s *Session) Submit(ctx context.Context, analyzer Analyzer, archiver Archiver, deliverer Deliverer) (*Result, error) {
	s.mu.Lock()
	if s.state != StateCollecting {
		state := s.state
		s.mu.Unlock()
		return nil, &SessionError{Message: fmt.Sprintf("cannot submit in state %s", state)}
	}
	if !s.complete() {
		err := &SessionError{Message: fmt.Sprintf("submission requires all %d questions answered, got %d", len(s.order), len(s.answers))}
		s.mu.Unlock()
		return nil, err
	}
	s.state = StateScoring
	answers := s.answerList()
	s.state = StateRequesting
	s.mu.Unlock()

	result, err := Run(ctx, RunOptions{
		SessionID: s.ID,
		Profile:   s.Profile,
		Answers:   answers,
		Analyzer:  analyzer,
		Archiver:  archiver,
		Deliverer: deliverer,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Input-contract violations only; unreachable when complete() held.
		s.state = StateCollecting
		return nil, err
	}

	if result.FallbackUsed {
		s.state = StateFallbackDelivered
	} else {
		s.state = StateDelivered
	}
	s.result = result

	go func() {
		<-result.Done
		s.mu.Lock()
		s.state = StateArchived
		s.mu.Unlock()
	}()

	return result, nil
}
