package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/personality-quiz/internal/analysis"
	"github.com/jonathan/personality-quiz/internal/delivery"
	"github.com/jonathan/personality-quiz/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for the quiz: intake, answer collection, submission, and stateless analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get API key from environment
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	// Database is optional; without it the server runs from the static
	// question bank and skips archival.
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, running without archival")
	}

	tokenSecret := os.Getenv("SESSION_TOKEN_SECRET")
	if tokenSecret == "" {
		// Sessions live in memory, so a per-process secret only invalidates
		// tokens across restarts, which loses nothing.
		tokenSecret = uuid.NewString()
		log.Println("SESSION_TOKEN_SECRET not set, using a per-process secret")
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		TokenSecret: tokenSecret,
		Analysis: analysis.Config{
			APIKey:  apiKey,
			Model:   os.Getenv("ANTHROPIC_MODEL"),
			Timeout: envDuration("ANALYSIS_TIMEOUT"),
		},
		Email: delivery.EmailConfig{
			APIURL:     os.Getenv("EMAILJS_API_URL"),
			ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
			TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
			PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		},
	}
	if cfg.Email.ServiceID == "" {
		log.Println("EMAILJS_SERVICE_ID not set, running without email delivery")
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// envDuration parses a duration from the environment, zero if unset or bad.
func envDuration(name string) time.Duration {
	value := os.Getenv(name)
	if value == "" {
		return 0
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("ignoring invalid %s value %q: %v", name, value, err)
		return 0
	}
	return d
}
