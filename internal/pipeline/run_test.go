package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/personality-quiz/internal/analysis"
	"github.com/jonathan/personality-quiz/internal/fallback"
	"github.com/jonathan/personality-quiz/internal/scoring"
	"github.com/jonathan/personality-quiz/internal/types"
)

type fakeAnalyzer struct {
	doc *types.PersonalityAnalysis
	err error

	mu      sync.Mutex
	prompts []string
}

func (a *fakeAnalyzer) Analyze(_ context.Context, prompt string) (*types.PersonalityAnalysis, error) {
	a.mu.Lock()
	a.prompts = append(a.prompts, prompt)
	a.mu.Unlock()
	if a.err != nil {
		return nil, a.err
	}
	return a.doc, nil
}

type recordingArchiver struct {
	mu            sync.Mutex
	responsesErr  error
	savedScores   types.Scores
	savedAnalysis *types.PersonalityAnalysis
	savedFallback bool
}

func (a *recordingArchiver) SaveResponses(_ context.Context, _ uuid.UUID, _ string, _ []types.Answer, scores types.Scores) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.savedScores = scores
	return a.responsesErr
}

func (a *recordingArchiver) SaveResults(_ context.Context, _ uuid.UUID, _ string, doc *types.PersonalityAnalysis, fallbackUsed bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.savedAnalysis = doc
	a.savedFallback = fallbackUsed
	return nil
}

type recordingDeliverer struct {
	mu        sync.Mutex
	err       error
	delivered *types.PersonalityAnalysis
}

func (d *recordingDeliverer) Deliver(_ context.Context, _ types.UserProfile, doc *types.PersonalityAnalysis) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delivered = doc
	return d.err
}

func runAnswers(analytical, creative int) []types.Answer {
	var answers []types.Answer
	for i := 0; i < analytical; i++ {
		answers = append(answers, types.Answer{QuestionID: fmt.Sprintf("a%d", i), Category: types.CategoryAnalytical})
	}
	for i := 0; i < creative; i++ {
		answers = append(answers, types.Answer{QuestionID: fmt.Sprintf("c%d", i), Category: types.CategoryCreative})
	}
	return answers
}

func waitDone(t *testing.T, result *Result) {
	t.Helper()
	select {
	case <-result.Done:
	case <-time.After(2 * time.Second):
		t.Fatal("side branches did not finish")
	}
}

func TestRun_GeneratedAnalysis(t *testing.T) {
	doc := fallback.Recommend(types.CategoryAnalytical, types.CategoryCreative, types.UserProfile{})
	analyzer := &fakeAnalyzer{doc: &doc}
	archiver := &recordingArchiver{}
	deliverer := &recordingDeliverer{}

	result, err := Run(context.Background(), RunOptions{
		SessionID: uuid.New(),
		Profile:   types.UserProfile{Name: "Ada", Age: 30, Email: "ada@example.com"},
		Answers:   runAnswers(12, 8),
		Analyzer:  analyzer,
		Archiver:  archiver,
		Deliverer: deliverer,
	})
	require.NoError(t, err)

	assert.False(t, result.FallbackUsed)
	assert.Same(t, &doc, result.Analysis)
	assert.Equal(t, types.Scores{types.CategoryAnalytical: 12, types.CategoryCreative: 8}, result.Scores)
	assert.Equal(t, types.CategoryAnalytical, result.Traits.Primary)
	assert.Equal(t, types.CategoryCreative, result.Traits.Secondary)

	require.Len(t, analyzer.prompts, 1)
	assert.Contains(t, analyzer.prompts[0], "Ada")

	waitDone(t, result)
	assert.Equal(t, result.Scores, archiver.savedScores)
	assert.Same(t, &doc, archiver.savedAnalysis)
	assert.False(t, archiver.savedFallback)
	assert.Same(t, &doc, deliverer.delivered)
}

func TestRun_GatewayFailureFallsBack(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "upstream rejected",
			err:  &analysis.GatewayError{Kind: analysis.KindUpstreamRejected, Status: 529},
		},
		{
			name: "malformed response",
			err:  &analysis.GatewayError{Kind: analysis.KindMalformedResponse},
		},
		{
			name: "timeout",
			err:  &analysis.GatewayError{Kind: analysis.KindTimeout},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archiver := &recordingArchiver{}

			result, err := Run(context.Background(), RunOptions{
				SessionID: uuid.New(),
				Profile:   types.UserProfile{Name: "Ada", Age: 30, Email: "ada@example.com"},
				Answers:   runAnswers(12, 8),
				Analyzer:  &fakeAnalyzer{err: tt.err},
				Archiver:  archiver,
			})
			require.NoError(t, err, "gateway failures must be absorbed")

			assert.True(t, result.FallbackUsed)
			require.NotNil(t, result.Analysis)
			assert.NoError(t, result.Analysis.Validate())

			want := fallback.Recommend(types.CategoryAnalytical, types.CategoryCreative, types.UserProfile{})
			assert.Equal(t, &want, result.Analysis)

			waitDone(t, result)
			assert.True(t, archiver.savedFallback)
		})
	}
}

func TestRun_EmptyAnswers(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		SessionID: uuid.New(),
		Profile:   types.UserProfile{Name: "Ada", Age: 30},
		Analyzer:  &fakeAnalyzer{},
	})
	require.Error(t, err)

	var invalid *scoring.InvalidAnswerSetError
	assert.ErrorAs(t, err, &invalid)
}

func TestRun_SideBranchFailuresAreSoft(t *testing.T) {
	doc := fallback.Recommend(types.CategorySocial, types.CategorySocial, types.UserProfile{})
	archiver := &recordingArchiver{responsesErr: fmt.Errorf("connection reset")}
	deliverer := &recordingDeliverer{err: fmt.Errorf("smtp unreachable")}

	result, err := Run(context.Background(), RunOptions{
		SessionID: uuid.New(),
		Profile:   types.UserProfile{Name: "Ada", Age: 30, Email: "ada@example.com"},
		Answers:   runAnswers(0, 5),
		Analyzer:  &fakeAnalyzer{doc: &doc},
		Archiver:  archiver,
		Deliverer: deliverer,
	})
	require.NoError(t, err)
	waitDone(t, result)

	// The failing responses write still lets the results write proceed.
	assert.Same(t, &doc, archiver.savedAnalysis)
	assert.False(t, result.FallbackUsed)
}

func TestRun_NilCollaboratorsSkipBranches(t *testing.T) {
	doc := fallback.Recommend(types.CategoryActive, types.CategoryActive, types.UserProfile{})

	result, err := Run(context.Background(), RunOptions{
		SessionID: uuid.New(),
		Profile:   types.UserProfile{Name: "Ada", Age: 30},
		Answers:   runAnswers(3, 0),
		Analyzer:  &fakeAnalyzer{doc: &doc},
	})
	require.NoError(t, err)
	waitDone(t, result)
}

func TestRun_SideBranchesSurviveRequestCancel(t *testing.T) {
	doc := fallback.Recommend(types.CategoryLeader, types.CategoryLeader, types.UserProfile{})
	archiver := &recordingArchiver{}

	ctx, cancel := context.WithCancel(context.Background())
	result, err := Run(ctx, RunOptions{
		SessionID: uuid.New(),
		Profile:   types.UserProfile{Name: "Ada", Age: 30, Email: "ada@example.com"},
		Answers:   runAnswers(0, 2),
		Analyzer:  &fakeAnalyzer{doc: &doc},
		Archiver:  archiver,
	})
	require.NoError(t, err)
	cancel()

	waitDone(t, result)
	assert.Same(t, &doc, archiver.savedAnalysis)
}
