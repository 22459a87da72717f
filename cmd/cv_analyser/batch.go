package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Denis172003/CV-Analyser/internal/config"
	"github.com/Denis172003/CV-Analyser/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate a batch of job/candidate pairings",
	Long:  "Evaluate many (job, candidate) pairings from a JSON file across a bounded worker pool. Per-pair failures are reported in the output and never abort the batch.",
	RunE:  runBatch,
}

var (
	batchPairsFile   string
	batchNoAdvice    bool
	batchConcurrency int
	batchOut         string
	batchConfigPath  string
	batchLexicon     string
	batchInference   bool
)

// batchPairOutput is the JSON shape for one pairing outcome. Errors are
// flattened to strings so the output round-trips cleanly.
type batchPairOutput struct {
	ID     string           `json:"id"`
	Result *pipeline.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchPairsFile, "pairs", "p", "", "Path to a JSON file holding an array of pairings (required)")
	batchCmd.Flags().BoolVar(&batchNoAdvice, "no-advice", false, "Skip optimization advice generation")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Worker pool size (default 4)")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Output file for the JSON results (default stdout)")
	batchCmd.Flags().StringVarP(&batchConfigPath, "config", "c", "", "Path to JSON config file")
	batchCmd.Flags().StringVar(&batchLexicon, "lexicon", "", "Path to an external skill lexicon JSON file")
	batchCmd.Flags().BoolVar(&batchInference, "inference", false, "Enable the inference collaborator")

	_ = batchCmd.MarkFlagRequired("pairs")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(batchPairsFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", batchPairsFile, err)
	}
	var pairs []pipeline.Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("failed to parse pairings from %s: %w", batchPairsFile, err)
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no pairings found in %s", batchPairsFile)
	}

	engine, err := buildEngine(ctx, config.Config{
		LexiconPath:      batchLexicon,
		InferenceEnabled: batchInference,
		BatchConcurrency: batchConcurrency,
	}, batchConfigPath)
	if err != nil {
		return err
	}
	defer engine.Close()

	results := engine.Pipeline.RunBatch(ctx, pairs, !batchNoAdvice)

	out := make([]batchPairOutput, len(results))
	failed := 0
	for i, r := range results {
		out[i] = batchPairOutput{ID: r.ID, Result: r.Result}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d pairings failed\n", failed, len(results))
	}

	return writeJSON(batchOut, out)
}
