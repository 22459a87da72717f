// Package main provides the entry point for the CV-job compatibility
// analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_analyser",
	Short: "CV-job compatibility matching and optimization advisory engine",
	Long:  "cv_analyser scores a candidate profile against a job requirement profile and produces skill-gap rankings with section-level CV optimization advice.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
