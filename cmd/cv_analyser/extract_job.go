package main

import (
	"github.com/spf13/cobra"

	"github.com/Denis172003/CV-Analyser/internal/config"
)

var extractJobCmd = &cobra.Command{
	Use:   "extract-job",
	Short: "Extract a job requirement profile from a posting",
	Long:  "Extract a structured job requirement profile (skills, experience level, responsibilities, keywords) from job posting text.",
	RunE:  runExtractJob,
}

var (
	extractJobFile       string
	extractJobTitle      string
	extractJobCompany    string
	extractJobOut        string
	extractJobConfigPath string
	extractJobLexicon    string
	extractJobInference  bool
)

func init() {
	extractJobCmd.Flags().StringVarP(&extractJobFile, "job", "j", "", "Path to job posting text file (required)")
	extractJobCmd.Flags().StringVar(&extractJobTitle, "title", "", "Job title")
	extractJobCmd.Flags().StringVar(&extractJobCompany, "company", "", "Company name")
	extractJobCmd.Flags().StringVarP(&extractJobOut, "out", "o", "", "Output file for the JSON profile (default stdout)")
	extractJobCmd.Flags().StringVarP(&extractJobConfigPath, "config", "c", "", "Path to JSON config file")
	extractJobCmd.Flags().StringVar(&extractJobLexicon, "lexicon", "", "Path to an external skill lexicon JSON file")
	extractJobCmd.Flags().BoolVar(&extractJobInference, "inference", false, "Enable the inference collaborator")

	_ = extractJobCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(extractJobCmd)
}

func runExtractJob(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, err := readTextFile(extractJobFile)
	if err != nil {
		return err
	}

	engine, err := buildEngine(ctx, config.Config{
		LexiconPath:      extractJobLexicon,
		InferenceEnabled: extractJobInference,
	}, extractJobConfigPath)
	if err != nil {
		return err
	}
	defer engine.Close()

	jobProfile, err := engine.Pipeline.ExtractJob(ctx, text, extractJobTitle, extractJobCompany)
	if err != nil {
		return err
	}

	return writeJSON(extractJobOut, jobProfile)
}
