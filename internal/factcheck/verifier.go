package factcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/factlens/factlens/internal/calllog"
	"github.com/factlens/factlens/internal/factcheck/prompts/verify"
	"github.com/factlens/factlens/internal/providers"
)

// defaultCitationTitle is used when the backend omits a grounding title.
const defaultCitationTitle = "Source Link"

// Verifier issues the fact-check call with search grounding and normalizes
// the model payload into a Result.
type Verifier struct {
	client   providers.GenerativeClient
	recorder *calllog.Recorder
	logger   *slog.Logger

	model       string
	temperature float64
}

// VerifierConfig configures a Verifier.
type VerifierConfig struct {
	Client      providers.GenerativeClient
	Recorder    *calllog.Recorder // Optional
	Logger      *slog.Logger      // Optional
	Model       string            // Client default if empty
	Temperature float64
}

// NewVerifier creates a new Verifier.
func NewVerifier(cfg VerifierConfig) *Verifier {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{
		client:      cfg.Client,
		recorder:    cfg.Recorder,
		logger:      logger,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Verify fact-checks a claim. Failures are ErrVerificationUnavailable or
// ErrMalformedResponse; no partial or defaulted Result is ever returned in
// place of a real failure.
func (v *Verifier) Verify(ctx context.Context, claim string) (*Result, error) {
	result, err := v.verify(ctx, claim)
	if err != nil {
		// Re-propagate tagged failures unchanged; wrap everything else
		// (network, auth, quota) as an availability problem.
		if errors.Is(err, ErrVerificationUnavailable) || errors.Is(err, ErrMalformedResponse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrVerificationUnavailable, err)
	}
	return result, nil
}

func (v *Verifier) verify(ctx context.Context, claim string) (*Result, error) {
	// Search grounding is mandatory: grounding metadata is the sole source
	// of citations, even for claims the model considers obvious.
	req := &providers.GenerateRequest{
		System:       verify.SystemPrompt(),
		Prompt:       verify.UserPrompt(claim),
		EnableSearch: true,
		Model:        v.model,
		Temperature:  v.temperature,
	}

	resp, err := v.client.Generate(ctx, req)
	v.recorder.Record(verify.UserPromptKey, resp, err)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(resp.Text) == "" {
		return nil, fmt.Errorf("%w: no response from verification model", ErrVerificationUnavailable)
	}

	payload, err := Parse(resp.Text)
	if err != nil {
		v.logger.Warn("unparseable verification payload",
			"provider", resp.Provider,
			"bytes", len(resp.Text))
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if err := checkVerdictPayload(payload); err != nil {
		// Advisory only - normalization defaults whatever is off-shape.
		v.logger.Warn("verdict payload drifted from canonical shape", "error", err)
	}

	result := normalizePayload(payload)
	result.Citations = extractCitations(resp)
	return result, nil
}

// normalizePayload coerces the untrusted mapping into a Result.
// Missing or unknown fields default; they never fail.
func normalizePayload(payload map[string]any) *Result {
	result := &Result{
		Verdict:     VerdictUnverified,
		Explanation: DefaultExplanation,
		Category:    CategoryOther,
		Citations:   []Citation{},
	}

	if s, ok := payload["verdict"].(string); ok {
		result.Verdict = parseVerdict(s)
	}
	result.Confidence = parseConfidence(payload["confidence"])
	if s, ok := payload["explanation"].(string); ok && strings.TrimSpace(s) != "" {
		result.Explanation = s
	}
	if s, ok := payload["category"].(string); ok {
		result.Category = parseCategory(s)
	}

	return result
}

// parseConfidence accepts the number, string-number and missing cases,
// clamping to 0-100 and defaulting to 0.
func parseConfidence(v any) int {
	var value float64
	switch n := v.(type) {
	case float64:
		value = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		value = parsed
	default:
		return 0
	}

	switch {
	case value < 0:
		return 0
	case value > 100:
		return 100
	default:
		return int(value)
	}
}

// extractCitations walks the first candidate's grounding chunks in order.
// Chunks without a usable URI are skipped, not errored; a missing title
// falls back to a generic placeholder.
func extractCitations(resp *providers.GenerateResult) []Citation {
	citations := []Citation{}
	for _, chunk := range resp.FirstGrounding() {
		if chunk.Web == nil || strings.TrimSpace(chunk.Web.URI) == "" {
			continue
		}
		title := chunk.Web.Title
		if strings.TrimSpace(title) == "" {
			title = defaultCitationTitle
		}
		citations = append(citations, Citation{Title: title, URL: chunk.Web.URI})
	}
	return citations
}
