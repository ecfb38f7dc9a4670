package factcheck

import (
	"context"
	"log/slog"
	"strings"

	"github.com/factlens/factlens/internal/calllog"
	"github.com/factlens/factlens/internal/factcheck/prompts/summary"
	"github.com/factlens/factlens/internal/providers"
)

// FallbackSummary is returned whenever the summary call fails or comes back
// empty. The summary is cosmetic, not load-bearing; it must never abort the
// pipeline.
const FallbackSummary = "Verification complete."

// Summarizer produces the short shareable one-liner for a finished verdict.
type Summarizer struct {
	client   providers.GenerativeClient
	recorder *calllog.Recorder
	logger   *slog.Logger

	model string
}

// SummarizerConfig configures a Summarizer.
type SummarizerConfig struct {
	Client   providers.GenerativeClient
	Recorder *calllog.Recorder // Optional
	Logger   *slog.Logger      // Optional
	Model    string            // Client default if empty
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(cfg SummarizerConfig) *Summarizer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{
		client:   cfg.Client,
		recorder: cfg.Recorder,
		logger:   logger,
		model:    cfg.Model,
	}
}

// Summarize requests a ten-word warning/confirmation for sharing.
// It never fails outward: any error or empty response yields the fixed
// fallback string.
func (s *Summarizer) Summarize(ctx context.Context, explanation, verdict string) string {
	req := &providers.GenerateRequest{
		Prompt: summary.UserPrompt(explanation, verdict),
		Model:  s.model,
	}

	resp, err := s.client.Generate(ctx, req)
	s.recorder.Record(summary.UserPromptKey, resp, err)
	if err != nil {
		s.logger.Warn("summary call failed, using fallback", "error", err)
		return FallbackSummary
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return FallbackSummary
	}
	return text
}
