// Package main provides the entry point for the personality quiz HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quiz_server",
	Short: "Personality Quiz HTTP API Server",
	Long:  "Personality Quiz scores trait questionnaires, requests a generated personality analysis, and serves the results with book, course, and career recommendations via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
