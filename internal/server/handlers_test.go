package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/personality-quiz/internal/analysis"
	"github.com/jonathan/personality-quiz/internal/fallback"
	"github.com/jonathan/personality-quiz/internal/pipeline"
	"github.com/jonathan/personality-quiz/internal/questions"
	"github.com/jonathan/personality-quiz/internal/types"
)

// newTestServer builds a server whose gateway points at the given stub
// endpoint. No database, no email: the static bank serves questions and the
// archival/delivery branches are skipped.
func newTestServer(t *testing.T, endpoint string) *Server {
	t.Helper()
	srv, err := New(Config{
		Port:        0,
		TokenSecret: "test-secret",
		Analysis: analysis.Config{
			Endpoint: endpoint,
			APIKey:   "test-key",
			Timeout:  2 * time.Second,
		},
	})
	require.NoError(t, err)
	return srv
}

// stubGatewayDoc serves a messages-API envelope wrapping the given document.
func stubGatewayDoc(t *testing.T, doc types.PersonalityAnalysis) *httptest.Server {
	t.Helper()
	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	envelope, err := json.Marshal(map[string]any{
		"content": []map[string]string{{"type": "text", "text": string(payload)}},
	})
	require.NoError(t, err)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(envelope)
	}))
}

// stubGatewayStatus serves a fixed non-success status.
func stubGatewayStatus(status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"type":"error"}`))
	}))
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")

	rec := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleQuestions(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")

	rec := doJSON(t, srv, http.MethodGet, "/questions", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[struct {
		Questions []types.Question `json:"questions"`
	}](t, rec)
	assert.Len(t, body.Questions, 20)
}

func TestHandleAnalyze_FallbackOnGatewayFailure(t *testing.T) {
	stub := stubGatewayStatus(529)
	defer stub.Close()
	srv := newTestServer(t, stub.URL)

	rec := doJSON(t, srv, http.MethodPost, "/analyze", "", map[string]any{
		"scores": map[string]int{"analytical": 12, "creative": 8},
		"name":   "Ada",
		"age":    30,
	})
	require.Equal(t, http.StatusOK, rec.Code, "gateway failures must be absorbed: %s", rec.Body.String())

	doc := decodeBody[types.PersonalityAnalysis](t, rec)
	require.NoError(t, doc.Validate())

	want := fallback.Recommend(types.CategoryAnalytical, types.CategoryCreative, types.UserProfile{})
	assert.Equal(t, want.PersonalityType, doc.PersonalityType)
}

func TestHandleAnalyze_GeneratedDocument(t *testing.T) {
	want := fallback.Recommend(types.CategorySocial, types.CategoryLeader, types.UserProfile{})
	stub := stubGatewayDoc(t, want)
	defer stub.Close()
	srv := newTestServer(t, stub.URL)

	rec := doJSON(t, srv, http.MethodPost, "/analyze", "", map[string]any{
		"scores": map[string]int{"social": 9, "leader": 7},
		"name":   "Grace",
		"age":    27,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	doc := decodeBody[types.PersonalityAnalysis](t, rec)
	assert.Equal(t, want, doc)
}

func TestHandleAnalyze_Rejections(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")

	tests := []struct {
		name string
		body map[string]any
		code string
	}{
		{
			name: "unknown category",
			body: map[string]any{"scores": map[string]int{"mystic": 5}, "name": "Ada", "age": 30},
			code: "invalid_answer_set",
		},
		{
			name: "negative count",
			body: map[string]any{"scores": map[string]int{"creative": -1}, "name": "Ada", "age": 30},
			code: "invalid_answer_set",
		},
		{
			name: "missing name",
			body: map[string]any{"scores": map[string]int{"creative": 5}, "age": 30},
			code: "validation_error",
		},
		{
			name: "missing scores",
			body: map[string]any{"name": "Ada", "age": 30},
			code: "validation_error",
		},
		{
			name: "age out of bounds",
			body: map[string]any{"scores": map[string]int{"creative": 5}, "name": "Ada", "age": 500},
			code: "validation_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv, http.MethodPost, "/analyze", "", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			body := decodeBody[map[string]string](t, rec)
			assert.Equal(t, tt.code, body["error"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestHandleCreateSession(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")

	rec := doJSON(t, srv, http.MethodPost, "/sessions", "", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"age":   30,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody[CreateSessionResponse](t, rec)
	assert.Equal(t, string(pipeline.StateCollecting), body.State)
	assert.Equal(t, 20, body.QuestionCount)
	assert.NotEmpty(t, body.Token)
	assert.Empty(t, body.EmailSuggestion)

	_, err := uuid.Parse(body.SessionID)
	assert.NoError(t, err)
}

func TestHandleCreateSession_EmailHygiene(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")

	t.Run("disposable domain rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/sessions", "", map[string]any{
			"name":  "Ada",
			"email": "ada@mailinator.com",
			"age":   30,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[map[string]string](t, rec)
		assert.Equal(t, "invalid_email", body["error"])
	})

	t.Run("typo domain gets suggestion", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/sessions", "", map[string]any{
			"name":  "Ada",
			"email": "ada@gmial.com",
			"age":   30,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[CreateSessionResponse](t, rec)
		assert.Equal(t, "ada@gmail.com", body.EmailSuggestion)
	})
}

func TestSessionFlow_EndToEnd(t *testing.T) {
	want := fallback.Recommend(types.CategoryAnalytical, types.CategoryActive, types.UserProfile{})
	stub := stubGatewayDoc(t, want)
	defer stub.Close()
	srv := newTestServer(t, stub.URL)

	created := decodeBody[CreateSessionResponse](t, doJSON(t, srv, http.MethodPost, "/sessions", "", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"age":   30,
	}))

	base := "/sessions/" + created.SessionID
	var progress AnswerResponse
	for _, q := range questions.Defaults() {
		rec := doJSON(t, srv, http.MethodPost, base+"/answers", created.Token, map[string]any{
			"question_id":     q.ID,
			"selected_option": 1,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		progress = decodeBody[AnswerResponse](t, rec)
	}
	assert.True(t, progress.Complete)
	assert.Equal(t, 20, progress.Answered)

	rec := doJSON(t, srv, http.MethodPost, base+"/submit", created.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	submitted := decodeBody[SubmitResponse](t, rec)
	assert.Equal(t, string(pipeline.StateDelivered), submitted.State)
	assert.False(t, submitted.FallbackUsed)
	require.NotNil(t, submitted.Analysis)
	assert.Equal(t, want, *submitted.Analysis)
	assert.Equal(t, 20, submitted.Scores.Total())

	// Double submit is a conflict.
	rec = doJSON(t, srv, http.MethodPost, base+"/submit", created.Token, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, base, created.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody[SessionResponse](t, rec)
	assert.True(t, status.Complete)
	require.NotNil(t, status.Analysis)
	assert.Equal(t, want, *status.Analysis)
}

func TestSessionFlow_GatewayFailureDeliversFallback(t *testing.T) {
	stub := stubGatewayStatus(529)
	defer stub.Close()
	srv := newTestServer(t, stub.URL)

	created := decodeBody[CreateSessionResponse](t, doJSON(t, srv, http.MethodPost, "/sessions", "", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"age":   30,
	}))

	base := "/sessions/" + created.SessionID
	for _, q := range questions.Defaults() {
		rec := doJSON(t, srv, http.MethodPost, base+"/answers", created.Token, map[string]any{
			"question_id":     q.ID,
			"selected_option": 0,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, srv, http.MethodPost, base+"/submit", created.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, "gateway failures must be absorbed")

	submitted := decodeBody[SubmitResponse](t, rec)
	assert.Equal(t, string(pipeline.StateFallbackDelivered), submitted.State)
	assert.True(t, submitted.FallbackUsed)
	require.NotNil(t, submitted.Analysis)
	assert.NoError(t, submitted.Analysis.Validate())
}

func TestSessionAuth(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")

	created := decodeBody[CreateSessionResponse](t, doJSON(t, srv, http.MethodPost, "/sessions", "", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"age":   30,
	}))
	base := "/sessions/" + created.SessionID

	t.Run("missing token", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, base, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, base, "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for another session", func(t *testing.T) {
		otherToken, err := srv.jwtService.GenerateToken(uuid.New())
		require.NoError(t, err)

		rec := doJSON(t, srv, http.MethodGet, base, otherToken, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for unknown session", func(t *testing.T) {
		unknown := uuid.New()
		token, err := srv.jwtService.GenerateToken(unknown)
		require.NoError(t, err)

		rec := doJSON(t, srv, http.MethodGet, "/sessions/"+unknown.String(), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed session id", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/sessions/not-a-uuid", created.Token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecordAnswer_UnknownQuestion(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")

	created := decodeBody[CreateSessionResponse](t, doJSON(t, srv, http.MethodPost, "/sessions", "", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"age":   30,
	}))

	rec := doJSON(t, srv, http.MethodPost, "/sessions/"+created.SessionID+"/answers", created.Token, map[string]any{
		"question_id":     "q99",
		"selected_option": 0,
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "session_conflict", body["error"])
}

func TestSubmit_Incomplete(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")

	created := decodeBody[CreateSessionResponse](t, doJSON(t, srv, http.MethodPost, "/sessions", "", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"age":   30,
	}))

	rec := doJSON(t, srv, http.MethodPost, "/sessions/"+created.SessionID+"/submit", created.Token, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "20 questions")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
