// Package db provides PostgreSQL database access for quiz archival: users,
// test responses, results, and the question bank. All writes are
// fire-and-forget from the session's perspective; duplicate archival entries
// are acceptable.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/personality-quiz/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SaveUser stores an intake profile and returns its ID. A profile with an
// already-registered email returns the existing record's ID instead of
// inserting a duplicate.
func (db *DB) SaveUser(ctx context.Context, profile types.UserProfile) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1`,
		profile.Email,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("failed to look up user: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, age, interests, hobbies, test_completed)
		 VALUES ($1, $2, $3, $4, $5, false)
		 RETURNING id`,
		profile.Name, profile.Email, profile.Age, profile.Interests, profile.Hobbies,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save user: %w", err)
	}
	return id, nil
}

// EmailExists reports whether an intake profile already uses the email.
func (db *DB) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// MarkTestCompleted flags a user's intake record after a delivered submission.
func (db *DB) MarkTestCompleted(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET test_completed = true WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark test completed: %w", err)
	}
	return nil
}

// SaveResponses stores the full answer set and derived scores for a session.
func (db *DB) SaveResponses(ctx context.Context, sessionID uuid.UUID, email string, answers []types.Answer, scores types.Scores) error {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO test_responses (session_id, email, answers, scores)
		 VALUES ($1, $2, $3, $4)`,
		sessionID, email, answersJSON, scoresJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save test responses: %w", err)
	}
	return nil
}

// SaveResults stores the analysis document produced for a session.
// FallbackUsed records which producer ran; the document shape is identical
// either way.
func (db *DB) SaveResults(ctx context.Context, sessionID uuid.UUID, email string, analysis *types.PersonalityAnalysis, fallbackUsed bool) error {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO results (session_id, email, analysis, fallback_used)
		 VALUES ($1, $2, $3, $4)`,
		sessionID, email, analysisJSON, fallbackUsed,
	)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	return nil
}

// Questions loads the question bank ordered by position.
func (db *DB) Questions(ctx context.Context) ([]types.Question, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, text, options, category FROM questions ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	defer rows.Close()

	var questions []types.Question
	for rows.Next() {
		var q types.Question
		var optionsJSON []byte
		if err := rows.Scan(&q.ID, &q.Text, &optionsJSON, &q.Category); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		if err := json.Unmarshal(optionsJSON, &q.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options for question %s: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}
	return questions, nil
}

// SeedQuestions uploads the question set, replacing any question with the
// same ID. Positions follow slice order.
func (db *DB) SeedQuestions(ctx context.Context, questions []types.Question) error {
	for i, q := range questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("failed to marshal options for question %s: %w", q.ID, err)
		}
		_, err = db.pool.Exec(ctx,
			`INSERT INTO questions (id, text, options, category, position)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO UPDATE SET text = $2, options = $3, category = $4, position = $5`,
			q.ID, q.Text, optionsJSON, q.Category, i,
		)
		if err != nil {
			return fmt.Errorf("failed to seed question %s: %w", q.ID, err)
		}
	}
	return nil
}
