// Package pipeline provides the high-level orchestration for a quiz
// submission: scoring, ranking, the analysis call with its fallback, and the
// fire-and-forget archival and delivery branches.
package pipeline

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/personality-quiz/internal/analysis"
	"github.com/jonathan/personality-quiz/internal/fallback"
	"github.com/jonathan/personality-quiz/internal/scoring"
	"github.com/jonathan/personality-quiz/internal/types"
)

// Analyzer is the generative-service seam
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (*types.PersonalityAnalysis, error)
}

// Archiver is the storage seam. Writes are attempted once; duplicates on
// retry are acceptable.
type Archiver interface {
	SaveResponses(ctx context.Context, sessionID uuid.UUID, email string, answers []types.Answer, scores types.Scores) error
	SaveResults(ctx context.Context, sessionID uuid.UUID, email string, analysis *types.PersonalityAnalysis, fallbackUsed bool) error
}

// Deliverer is the rendering/export/email seam
type Deliverer interface {
	Deliver(ctx context.Context, profile types.UserProfile, analysis *types.PersonalityAnalysis) error
}

// RunOptions holds everything a submission run needs. Archiver and Deliverer
// are optional; a nil collaborator skips that branch.
type RunOptions struct {
	SessionID uuid.UUID
	Profile   types.UserProfile
	Answers   []types.Answer
	Analyzer  Analyzer
	Archiver  Archiver
	Deliverer Deliverer
}

// Result is the outcome of a submission run. Analysis is always non-nil on
// success; FallbackUsed records which producer ran. Done is closed when the
// archival and delivery branches have finished.
type Result struct {
	Scores       types.Scores
	Traits       types.RankedTraits
	Analysis     *types.PersonalityAnalysis
	FallbackUsed bool
	Done         <-chan struct{}
}

// Run executes the scoring-and-recommendation pipeline for a completed answer
// set. Only input-contract violations (empty answers, unknown category) fail
// the run; every gateway failure is absorbed by the fallback recommender.
// Archival and delivery run concurrently after the analysis is available and
// never affect the returned result.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	scores, err := scoring.Aggregate(opts.Answers)
	if err != nil {
		return nil, err
	}
	traits, err := scoring.Rank(scores)
	if err != nil {
		return nil, err
	}

	prompt := analysis.BuildPrompt(scores, traits, opts.Profile)

	result := &Result{Scores: scores, Traits: traits}
	doc, err := opts.Analyzer.Analyze(ctx, prompt)
	if err != nil {
		log.Printf("[ANALYSIS] gateway failed, using fallback recommendations: %v", err)
		fb := fallback.Recommend(traits.Primary, traits.Secondary, opts.Profile)
		doc = &fb
		result.FallbackUsed = true
	}
	result.Analysis = doc

	// Side branches must not delay or fail the user-visible result, and must
	// survive the request context ending once the report is delivered.
	done := make(chan struct{})
	result.Done = done
	go func() {
		defer close(done)
		runSideBranches(context.WithoutCancel(ctx), opts, result)
	}()

	return result, nil
}

// runSideBranches archives the submission and delivers the report. Branch
// failures are logged, never propagated.
func runSideBranches(ctx context.Context, opts RunOptions, result *Result) {
	var g errgroup.Group

	if opts.Archiver != nil {
		g.Go(func() error {
			if err := opts.Archiver.SaveResponses(ctx, opts.SessionID, opts.Profile.Email, opts.Answers, result.Scores); err != nil {
				log.Printf("[ARCHIVE] failed to save responses for session %s: %v", opts.SessionID, err)
			}
			if err := opts.Archiver.SaveResults(ctx, opts.SessionID, opts.Profile.Email, result.Analysis, result.FallbackUsed); err != nil {
				log.Printf("[ARCHIVE] failed to save results for session %s: %v", opts.SessionID, err)
			}
			return nil
		})
	}

	if opts.Deliverer != nil {
		g.Go(func() error {
			if err := opts.Deliverer.Deliver(ctx, opts.Profile, result.Analysis); err != nil {
				log.Printf("[DELIVERY] failed to deliver report for session %s: %v", opts.SessionID, err)
			}
			return nil
		})
	}

	_ = g.Wait()
}
