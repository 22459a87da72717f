package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Denis172003/CV-Analyser/internal/config"
	"github.com/Denis172003/CV-Analyser/internal/observability"
	"github.com/Denis172003/CV-Analyser/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a candidate document against a job posting",
	Long:  "Analyze extracts a job requirement profile and a candidate profile, scores their compatibility, and produces optimization advice.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile       string
	analyzeCandidateFile string
	analyzeJobTitle      string
	analyzeCompany       string
	analyzeSkills        string
	analyzeNoAdvice      bool
	analyzeOut           string
	analyzeConfigPath    string
	analyzeLexiconPath   string
	analyzeInference     bool
	analyzeVerbose       bool
	analyzeJSONLogs      bool
	analyzeDebug         bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job posting text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeCandidateFile, "candidate", "r", "", "Path to candidate document text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobTitle, "title", "", "Job title for advisory phrasing")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Comma-separated pre-extracted candidate skills to merge")
	analyzeCmd.Flags().BoolVar(&analyzeNoAdvice, "no-advice", false, "Skip optimization advice generation")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Output file for the JSON result (default stdout)")
	analyzeCmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeLexiconPath, "lexicon", "", "Path to an external skill lexicon JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeInference, "inference", false, "Enable the inference collaborator")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print human-readable summaries")
	analyzeCmd.Flags().BoolVar(&analyzeJSONLogs, "json-logs", false, "Emit logs as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeDebug, "debug", false, "Enable debug logging")

	_ = analyzeCmd.MarkFlagRequired("job")
	_ = analyzeCmd.MarkFlagRequired("candidate")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jobText, err := readTextFile(analyzeJobFile)
	if err != nil {
		return err
	}
	candidateText, err := readTextFile(analyzeCandidateFile)
	if err != nil {
		return err
	}

	engine, err := buildEngine(ctx, config.Config{
		LexiconPath:      analyzeLexiconPath,
		InferenceEnabled: analyzeInference,
		Verbose:          analyzeVerbose,
		JSONLogs:         analyzeJSONLogs,
		Debug:            analyzeDebug,
	}, analyzeConfigPath)
	if err != nil {
		return err
	}
	defer engine.Close()

	result, err := engine.Pipeline.Analyze(ctx, pipeline.AnalyzeOptions{
		JobText:            jobText,
		JobTitle:           analyzeJobTitle,
		Company:            analyzeCompany,
		CandidateText:      candidateText,
		PreExtractedSkills: splitSkillsFlag(analyzeSkills),
		IncludeAdvice:      !analyzeNoAdvice,
	})
	if err != nil {
		return err
	}

	if engine.Config.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobProfile(result.Job)
		printer.PrintCandidateProfile(result.Candidate)
		printer.PrintReport(result.Report)
		printer.PrintAdvice(result.Report.Advice)
	}

	return writeJSON(analyzeOut, result)
}
