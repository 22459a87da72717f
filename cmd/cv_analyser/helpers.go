package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Denis172003/CV-Analyser/internal/config"
	"github.com/Denis172003/CV-Analyser/internal/inference"
	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/logger"
	"github.com/Denis172003/CV-Analyser/internal/pipeline"
)

// apiKeyEnvVar is the environment variable consulted when the config file
// carries no API key.
const apiKeyEnvVar = "GEMINI_API_KEY"

// engineSetup bundles everything a subcommand needs to run the pipeline.
type engineSetup struct {
	Config   *config.Config
	Pipeline *pipeline.Pipeline
	Log      *zap.Logger
}

// Close releases the collaborator, if one was created.
func (s *engineSetup) Close() {
	if s.Pipeline.Collaborator != nil {
		_ = s.Pipeline.Collaborator.Close()
	}
	_ = s.Log.Sync()
}

// buildEngine loads the config file (when given), merges it under the flag
// values, loads the lexicon, and wires the pipeline.
func buildEngine(ctx context.Context, flags config.Config, configPath string) (*engineSetup, error) {
	cfg := flags
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(apiKeyEnvVar)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		lex, err = lexicon.Load(cfg.LexiconPath)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded external lexicon",
			zap.String("path", cfg.LexiconPath),
			zap.String("version", lex.Version))
	}

	var collaborator inference.Collaborator
	if cfg.InferenceEnabled {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("inference is enabled but no API key is configured (set %s or api_key)", apiKeyEnvVar)
		}
		collaborator, err = inference.NewGeminiCollaborator(ctx, cfg.APIKey, cfg.InferenceModelName())
		if err != nil {
			return nil, fmt.Errorf("failed to create inference collaborator: %w", err)
		}
	}

	return &engineSetup{
		Config: &cfg,
		Log:    log,
		Pipeline: &pipeline.Pipeline{
			Lexicon:      lex,
			Config:       &cfg,
			Logger:       log,
			Collaborator: collaborator,
		},
	}, nil
}

// readTextFile reads a document and rejects empty files early.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("file %s is empty", path)
	}
	return text, nil
}

// splitSkillsFlag parses the comma-separated pre-extracted skills flag.
func splitSkillsFlag(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// writeJSON marshals v with indentation to a file, or stdout when path is
// empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
