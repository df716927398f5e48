package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/personality-quiz/internal/db"
	"github.com/jonathan/personality-quiz/internal/questions"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upload the stock question bank to the database",
	Long:  "Upserts the twenty stock questions into the questions table so the store-backed bank can serve them. Safe to run repeatedly.",
	RunE:  runSeed,
}

var seedDatabaseURL string

func init() {
	seedCmd.Flags().StringVar(&seedDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if seedDatabaseURL == "" {
		seedDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if seedDatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL not set (set DATABASE_URL environment variable or use --db-url flag)")
	}

	database, err := db.Connect(ctx, seedDatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	bank := questions.Defaults()
	if err := database.SeedQuestions(ctx, bank); err != nil {
		return fmt.Errorf("failed to seed questions: %w", err)
	}

	log.Printf("Seeded %d questions", len(bank))
	return nil
}
