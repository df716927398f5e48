// Package server provides the HTTP REST API for the personality quiz.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/personality-quiz/internal/analysis"
	"github.com/jonathan/personality-quiz/internal/db"
	"github.com/jonathan/personality-quiz/internal/delivery"
	"github.com/jonathan/personality-quiz/internal/pipeline"
	"github.com/jonathan/personality-quiz/internal/questions"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	bank       questions.Bank
	gateway    *analysis.Gateway
	reporter   *delivery.Reporter
	jwtService *JWTService
	validate   *validator.Validate

	mu       sync.RWMutex
	sessions map[uuid.UUID]*pipeline.Session
	users    map[uuid.UUID]uuid.UUID
}

// Config holds server configuration. DatabaseURL and Email are optional;
// without them the server runs with the static question bank and skips
// archival and email delivery.
type Config struct {
	Port        int
	DatabaseURL string
	TokenSecret string
	Analysis    analysis.Config
	Email       delivery.EmailConfig
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("token secret is required")
	}

	s := &Server{
		gateway:    analysis.NewGateway(cfg.Analysis),
		jwtService: NewJWTService(cfg.TokenSecret),
		validate:   validator.New(),
		sessions:   make(map[uuid.UUID]*pipeline.Session),
		users:      make(map[uuid.UUID]uuid.UUID),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
		s.bank = questions.NewStoreBank(database)
	} else {
		s.bank = questions.StaticBank{}
	}

	if cfg.Email.ServiceID != "" {
		s.reporter = delivery.NewReporter(delivery.NewSender(cfg.Email))
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /questions", s.handleQuestions)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("POST /sessions/{id}/answers", s.handleRecordAnswer)
	mux.HandleFunc("POST /sessions/{id}/submit", s.handleSubmit)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for the analysis call
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// session returns the stored session for an ID, if any.
func (s *Server) session(id uuid.UUID) (*pipeline.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// storeSession registers a new session.
func (s *Server) storeSession(session *pipeline.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// rememberUser links a session to its archived user record.
func (s *Server) rememberUser(sessionID, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[sessionID] = userID
}

// userFor returns the archived user record for a session, if any.
func (s *Server) userFor(sessionID uuid.UUID) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.users[sessionID]
	return userID, ok
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response with a code and message
func (s *Server) errorResponse(w http.ResponseWriter, status int, code, message string) {
	s.jsonResponse(w, status, map[string]string{"error": code, "message": message})
}

// errorFromErr maps a typed error to an error response.
func (s *Server) errorFromErr(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), errorCode(err), err.Error())
}
