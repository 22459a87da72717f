// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/Denis172003/CV-Analyser/internal/extract"
	"github.com/Denis172003/CV-Analyser/internal/inference"
	"github.com/Denis172003/CV-Analyser/internal/scoring"
)

// weightSumTolerance is how far the four factor weights may drift from 1.0.
const weightSumTolerance = 0.001

// Config is the engine configuration, loadable from a JSON file. All fields
// are optional; missing values use the documented defaults. The configuration
// is loaded once per process and treated as read-only for the lifetime of all
// scoring calls.
type Config struct {
	// LexiconPath points to an external skill lexicon JSON file. Empty means
	// the compiled-in default table.
	LexiconPath string `json:"lexicon,omitempty"`

	// Extraction thresholds
	MinTokens   int `json:"min_tokens,omitempty" validate:"gte=0"`
	TopKeywords int `json:"top_keywords,omitempty" validate:"gte=0"`

	// Weights override the documented factor weighting. Nil keeps defaults.
	Weights *scoring.Weights `json:"weights,omitempty"`

	// Inference collaborator
	APIKey                  string `json:"api_key,omitempty"`
	InferenceEnabled        bool   `json:"inference_enabled,omitempty"`
	InferenceModel          string `json:"inference_model,omitempty"`
	InferenceTimeoutSeconds int    `json:"inference_timeout_seconds,omitempty" validate:"gte=0"`
	InferenceBackoffMillis  int    `json:"inference_backoff_millis,omitempty" validate:"gte=0"`

	// Batch evaluation
	BatchConcurrency int `json:"batch_concurrency,omitempty" validate:"gte=0"`

	// Output behavior
	Verbose  bool `json:"verbose,omitempty"`
	JSONLogs bool `json:"json_logs,omitempty"`
	Debug    bool `json:"debug,omitempty"`
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Weights != nil {
		if err := validate.Struct(c.Weights); err != nil {
			return fmt.Errorf("config error: invalid weights: %w", err)
		}
		sum := c.Weights.SkillMatch + c.Weights.ExperienceAlignment +
			c.Weights.KeywordCoverage + c.Weights.ResponsibilityAlignment
		if math.Abs(sum-1.0) > weightSumTolerance {
			return fmt.Errorf("config error: factor weights must sum to 1.0, got %.3f", sum)
		}
	}

	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.LexiconPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.LexiconPath == "" {
		result.LexiconPath = defaults.LexiconPath
	}
	if result.MinTokens == 0 {
		result.MinTokens = defaults.MinTokens
	}
	if result.TopKeywords == 0 {
		result.TopKeywords = defaults.TopKeywords
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.InferenceModel == "" {
		result.InferenceModel = defaults.InferenceModel
	}
	if result.InferenceTimeoutSeconds == 0 {
		result.InferenceTimeoutSeconds = defaults.InferenceTimeoutSeconds
	}
	if result.InferenceBackoffMillis == 0 {
		result.InferenceBackoffMillis = defaults.InferenceBackoffMillis
	}
	if result.BatchConcurrency == 0 {
		result.BatchConcurrency = defaults.BatchConcurrency
	}
	// Boolean options are opt-in, so an unset CLI flag must not clobber a
	// file-enabled value: merge by OR.
	result.InferenceEnabled = result.InferenceEnabled || defaults.InferenceEnabled
	result.Verbose = result.Verbose || defaults.Verbose
	result.JSONLogs = result.JSONLogs || defaults.JSONLogs
	result.Debug = result.Debug || defaults.Debug

	return result
}

// ExtractOptions maps the configuration onto extraction options.
func (c *Config) ExtractOptions() extract.Options {
	opts := extract.DefaultOptions()
	if c.MinTokens > 0 {
		opts.MinTokens = c.MinTokens
	}
	if c.TopKeywords > 0 {
		opts.TopKeywords = c.TopKeywords
	}
	return opts
}

// ScoringWeights returns the configured weights or the documented defaults.
func (c *Config) ScoringWeights() scoring.Weights {
	if c.Weights != nil {
		return *c.Weights
	}
	return scoring.DefaultWeights()
}

// InferenceModelName returns the configured model or the collaborator default.
func (c *Config) InferenceModelName() string {
	if c.InferenceModel != "" {
		return c.InferenceModel
	}
	return inference.DefaultModel
}
