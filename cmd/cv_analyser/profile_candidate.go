package main

import (
	"github.com/spf13/cobra"

	"github.com/Denis172003/CV-Analyser/internal/config"
)

var profileCandidateCmd = &cobra.Command{
	Use:   "profile-candidate",
	Short: "Build a candidate profile from a resume document",
	Long:  "Build a structured candidate profile (skills, experience level, experience bullets) from candidate document text.",
	RunE:  runProfileCandidate,
}

var (
	profileCandidateFile   string
	profileCandidateSkills string
	profileCandidateOut    string
	profileCandidateConfig string
	profileCandidateLex    string
	profileCandidateInfer  bool
)

func init() {
	profileCandidateCmd.Flags().StringVarP(&profileCandidateFile, "candidate", "r", "", "Path to candidate document text file (required)")
	profileCandidateCmd.Flags().StringVar(&profileCandidateSkills, "skills", "", "Comma-separated pre-extracted skills to merge")
	profileCandidateCmd.Flags().StringVarP(&profileCandidateOut, "out", "o", "", "Output file for the JSON profile (default stdout)")
	profileCandidateCmd.Flags().StringVarP(&profileCandidateConfig, "config", "c", "", "Path to JSON config file")
	profileCandidateCmd.Flags().StringVar(&profileCandidateLex, "lexicon", "", "Path to an external skill lexicon JSON file")
	profileCandidateCmd.Flags().BoolVar(&profileCandidateInfer, "inference", false, "Enable the inference collaborator")

	_ = profileCandidateCmd.MarkFlagRequired("candidate")

	rootCmd.AddCommand(profileCandidateCmd)
}

func runProfileCandidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, err := readTextFile(profileCandidateFile)
	if err != nil {
		return err
	}

	engine, err := buildEngine(ctx, config.Config{
		LexiconPath:      profileCandidateLex,
		InferenceEnabled: profileCandidateInfer,
	}, profileCandidateConfig)
	if err != nil {
		return err
	}
	defer engine.Close()

	candProfile, err := engine.Pipeline.ProfileCandidate(ctx, text, splitSkillsFlag(profileCandidateSkills))
	if err != nil {
		return err
	}

	return writeJSON(profileCandidateOut, candProfile)
}
