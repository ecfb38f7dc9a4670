package main

import (
	"github.com/spf13/cobra"

	"github.com/factlens/factlens/internal/api"
	"github.com/factlens/factlens/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "factlens",
	Short: "Claim verification pipeline with grounded LLM fact-checking",
	Long: `Factlens verifies factual claims using LLM backends with web-search
grounding, and produces shareable verdicts with supporting citations.

The pipeline includes:
  - Grounded fact-check with verdict, confidence, and citations
  - Defensive parsing of model output with tiered JSON recovery
  - Image claim transcription for screenshots and memes
  - Short shareable warning summaries`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.factlens/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "factlens home directory (default: ~/.factlens)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
