// Package questions supplies the ordered question bank. The bank may be
// remote (Postgres) or static; callers treat both as interchangeable, and the
// store-backed bank degrades to the static set when the store is unavailable.
package questions

import (
	"context"
	"log"

	"github.com/jonathan/personality-quiz/internal/types"
)

// Bank supplies the ordered question set for a quiz session
type Bank interface {
	Questions(ctx context.Context) ([]types.Question, error)
}

// StaticBank serves the stock question set
type StaticBank struct{}

// Questions returns the stock questions. It never fails.
func (StaticBank) Questions(_ context.Context) ([]types.Question, error) {
	return Defaults(), nil
}

// QuestionStore is the storage seam the store-backed bank reads from
type QuestionStore interface {
	Questions(ctx context.Context) ([]types.Question, error)
}

// StoreBank loads questions from a store and falls back to the stock set when
// the store is unreachable or empty.
type StoreBank struct {
	store QuestionStore
}

// NewStoreBank creates a bank backed by the given store.
func NewStoreBank(store QuestionStore) *StoreBank {
	return &StoreBank{store: store}
}

// Questions loads the bank from the store, degrading to the stock set on any
// error. The degradation is logged, not surfaced: a quiz must always have
// questions to serve.
func (b *StoreBank) Questions(ctx context.Context) ([]types.Question, error) {
	loaded, err := b.store.Questions(ctx)
	if err != nil {
		log.Printf("[QUESTIONS] store load failed, using stock questions: %v", err)
		return Defaults(), nil
	}
	if len(loaded) == 0 {
		return Defaults(), nil
	}
	return loaded, nil
}
