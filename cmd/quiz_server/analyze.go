package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/personality-quiz/internal/analysis"
	"github.com/jonathan/personality-quiz/internal/fallback"
	"github.com/jonathan/personality-quiz/internal/scoring"
	"github.com/jonathan/personality-quiz/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a one-shot personality analysis from aggregated scores",
	Long:  "Ranks the given category scores, requests a generated analysis, and prints the resulting document as JSON. Falls back to the built-in recommendation tables when the generative service is unavailable.",
	RunE:  runAnalyze,
}

var (
	analyzeScores       string
	analyzeName         string
	analyzeAge          int
	analyzeInterests    string
	analyzeHobbies      string
	analyzeOutput       string
	analyzeFallbackOnly bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeScores, "scores", "", `Category scores as JSON, e.g. '{"analytical":12,"creative":8}' (required)`)
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "User name (required)")
	analyzeCmd.Flags().IntVar(&analyzeAge, "age", 0, "User age (required)")
	analyzeCmd.Flags().StringVar(&analyzeInterests, "interests", "", "Optional interests free text")
	analyzeCmd.Flags().StringVar(&analyzeHobbies, "hobbies", "", "Optional hobbies free text")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Output file (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeFallbackOnly, "fallback-only", false, "Skip the generative service and use the built-in tables")

	if err := analyzeCmd.MarkFlagRequired("scores"); err != nil {
		panic(fmt.Sprintf("failed to mark scores flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("age"); err != nil {
		panic(fmt.Sprintf("failed to mark age flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	var raw map[string]int
	if err := json.Unmarshal([]byte(analyzeScores), &raw); err != nil {
		return fmt.Errorf("invalid scores JSON: %w", err)
	}

	scores := make(types.Scores, len(raw))
	for name, count := range raw {
		category := types.Category(name)
		if !category.Valid() {
			return fmt.Errorf("unknown category %q", name)
		}
		scores[category] = count
	}

	traits, err := scoring.Rank(scores)
	if err != nil {
		return fmt.Errorf("failed to rank scores: %w", err)
	}

	profile := types.UserProfile{
		Name:      analyzeName,
		Age:       analyzeAge,
		Interests: analyzeInterests,
		Hobbies:   analyzeHobbies,
	}

	var doc *types.PersonalityAnalysis
	if analyzeFallbackOnly {
		fb := fallback.Recommend(traits.Primary, traits.Secondary, profile)
		doc = &fb
	} else {
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable is required (or use --fallback-only)")
		}

		gateway := analysis.NewGateway(analysis.Config{
			APIKey: apiKey,
			Model:  os.Getenv("ANTHROPIC_MODEL"),
		})

		prompt := analysis.BuildPrompt(scores, traits, profile)
		doc, err = gateway.Analyze(context.Background(), prompt)
		if err != nil {
			log.Printf("[ANALYSIS] gateway failed, using fallback recommendations: %v", err)
			fb := fallback.Recommend(traits.Primary, traits.Secondary, profile)
			doc = &fb
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	if analyzeOutput == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(analyzeOutput, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Printf("Wrote analysis to %s", analyzeOutput)
	return nil
}
