package factcheck

import (
	"context"
	"log/slog"
	"strings"
)

// State is a pipeline stage marker, reported to the optional observer so a
// hosting surface can show progress. Transitions are strictly linear;
// a failure at any transition moves straight to StateFailed.
type State string

const (
	StateIdle         State = "idle"
	StateTranscribing State = "transcribing"
	StateVerifying    State = "verifying"
	StateSummarizing  State = "summarizing"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// Pipeline sequences transcription, verification and summarization into one
// result or one surfaced error. Each Run is self-contained; a Pipeline is
// safe for concurrent use.
type Pipeline struct {
	verifier    *Verifier
	summarizer  *Summarizer
	transcriber *Transcriber
	logger      *slog.Logger

	// OnState, when set, observes every state transition.
	OnState func(State)
}

// PipelineConfig configures a Pipeline.
type PipelineConfig struct {
	Verifier    *Verifier
	Summarizer  *Summarizer
	Transcriber *Transcriber
	Logger      *slog.Logger // Optional
}

// NewPipeline creates a new Pipeline.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		verifier:    cfg.Verifier,
		summarizer:  cfg.Summarizer,
		transcriber: cfg.Transcriber,
		logger:      logger,
	}
}

func (p *Pipeline) transition(s State) {
	if p.OnState != nil {
		p.OnState(s)
	}
}

// Run executes the pipeline for one request.
//
// Text path:  Verify -> Summarize -> Done.
// Image path: Transcribe -> (ErrNoLegibleText on empty output, before any
// verification call) -> Verify -> Summarize -> Done.
//
// Transcription and verification errors short-circuit; summarization can
// never fail the run. The composed result is a new value - the verifier's
// output is not mutated.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	p.transition(StateIdle)

	claim := req.Content
	if req.Kind == KindImage {
		p.transition(StateTranscribing)
		text, err := p.transcriber.Transcribe(ctx, req.Bytes, req.MIMEType)
		if err != nil {
			p.transition(StateFailed)
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			// The call succeeded but found nothing usable; terminal,
			// and verification must not run on empty input.
			p.transition(StateFailed)
			return nil, ErrNoLegibleText
		}
		claim = text
	}

	if strings.TrimSpace(claim) == "" {
		p.transition(StateFailed)
		return nil, ErrEmptyClaim
	}

	p.transition(StateVerifying)
	verified, err := p.verifier.Verify(ctx, claim)
	if err != nil {
		p.transition(StateFailed)
		return nil, err
	}

	p.transition(StateSummarizing)
	summaryText := p.summarizer.Summarize(ctx, verified.Explanation, string(verified.Verdict))

	p.transition(StateDone)
	result := verified.WithSummary(summaryText)
	p.logger.Info("claim verified",
		"verdict", result.Verdict,
		"confidence", result.Confidence,
		"citations", len(result.Citations))
	return result, nil
}
