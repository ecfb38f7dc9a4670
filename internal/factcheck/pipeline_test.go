package factcheck

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/factlens/factlens/internal/providers"
)

func newTestPipeline(verifyClient, summaryClient, transcribeClient providers.GenerativeClient) *Pipeline {
	return NewPipeline(PipelineConfig{
		Verifier:    NewVerifier(VerifierConfig{Client: verifyClient}),
		Summarizer:  NewSummarizer(SummarizerConfig{Client: summaryClient}),
		Transcriber: NewTranscriber(TranscriberConfig{Client: transcribeClient}),
	})
}

func TestRun_TextPathEndToEnd(t *testing.T) {
	verifyMock := &providers.MockClient{
		Responses: []*providers.GenerateResult{groundedResponse(
			`{"verdict":"False","confidence":99,"explanation":"The sun cannot turn green; this is scientifically impossible.","category":"Science"}`,
			providers.GroundingChunk{Web: &providers.WebSource{Title: "NASA", URI: "https://nasa.gov"}},
		)},
	}
	summaryMock := providers.NewMockClient("False alarm: the sun has not changed color at all.")
	p := newTestPipeline(verifyMock, summaryMock, providers.NewMockClient(""))

	var states []State
	p.OnState = func(s State) { states = append(states, s) }

	result, err := p.Run(context.Background(), TextRequest("NASA confirmed the sun turned green"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Verdict != VerdictFalse {
		t.Fatalf("Verdict = %q, want False", result.Verdict)
	}
	if result.Summary == "" {
		t.Fatal("Summary must be non-empty")
	}
	if len(result.Citations) != 1 {
		t.Fatalf("Citations = %d, want 1", len(result.Citations))
	}

	want := []State{StateIdle, StateVerifying, StateSummarizing, StateDone}
	if !reflect.DeepEqual(states, want) {
		t.Fatalf("state transitions = %v, want %v", states, want)
	}
}

func TestRun_ComposingDoesNotMutateVerifierResult(t *testing.T) {
	verifyMock := providers.NewMockClient(`{"verdict":"True","confidence":80,"explanation":"ok","category":"Other"}`)
	summaryMock := providers.NewMockClient("Confirmed true, share freely.")
	p := newTestPipeline(verifyMock, summaryMock, providers.NewMockClient(""))

	v := p.verifier
	inner, err := v.Verify(context.Background(), "claim")
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	combined := inner.WithSummary("s")
	if inner.Summary != "" {
		t.Fatal("WithSummary mutated the original result")
	}
	if combined.Summary != "s" {
		t.Fatalf("combined.Summary = %q", combined.Summary)
	}
}

func TestRun_ImagePath(t *testing.T) {
	transcribeMock := providers.NewMockClient("The moon is made of cheese")
	verifyMock := providers.NewMockClient(`{"verdict":"False","confidence":100,"explanation":"It is rock.","category":"Science"}`)
	summaryMock := providers.NewMockClient("Nope, the moon is rock, not cheese.")
	p := newTestPipeline(verifyMock, summaryMock, transcribeMock)

	claimSeen := ""
	verifyMock.OnGenerate = func(req *providers.GenerateRequest) { claimSeen = req.Prompt }

	result, err := p.Run(context.Background(), ImageRequest([]byte{0x01}, "image/png"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Verdict != VerdictFalse {
		t.Fatalf("Verdict = %q, want False", result.Verdict)
	}
	if !strings.Contains(claimSeen, "The moon is made of cheese") {
		t.Fatalf("verification prompt missing transcribed claim: %q", claimSeen)
	}
}

func TestRun_WhitespaceTranscriptionFailsBeforeVerification(t *testing.T) {
	transcribeMock := providers.NewMockClient("   \n\t ")
	verifyMock := providers.NewMockClient(`{"verdict":"True"}`)
	p := newTestPipeline(verifyMock, providers.NewMockClient(""), transcribeMock)

	_, err := p.Run(context.Background(), ImageRequest([]byte{0x01}, "image/png"))
	if !errors.Is(err, ErrNoLegibleText) {
		t.Fatalf("error = %v, want ErrNoLegibleText", err)
	}
	if verifyMock.Calls() != 0 {
		t.Fatalf("verifier called %d times, want 0", verifyMock.Calls())
	}
}

func TestRun_TranscriptionFailureShortCircuits(t *testing.T) {
	transcribeMock := &providers.MockClient{Err: fmt.Errorf("blurred beyond recognition")}
	verifyMock := providers.NewMockClient(`{"verdict":"True"}`)
	summaryMock := providers.NewMockClient("ok")
	p := newTestPipeline(verifyMock, summaryMock, transcribeMock)

	_, err := p.Run(context.Background(), ImageRequest([]byte{0x01}, "image/png"))
	if !errors.Is(err, ErrTranscriptionFailed) {
		t.Fatalf("error = %v, want ErrTranscriptionFailed", err)
	}
	if verifyMock.Calls() != 0 || summaryMock.Calls() != 0 {
		t.Fatal("downstream stages ran after transcription failure")
	}
}

func TestRun_VerificationFailureSkipsSummary(t *testing.T) {
	verifyMock := &providers.MockClient{Err: fmt.Errorf("backend down")}
	summaryMock := providers.NewMockClient("ok")
	p := newTestPipeline(verifyMock, summaryMock, providers.NewMockClient(""))

	var states []State
	p.OnState = func(s State) { states = append(states, s) }

	_, err := p.Run(context.Background(), TextRequest("claim"))
	if !errors.Is(err, ErrVerificationUnavailable) {
		t.Fatalf("error = %v, want ErrVerificationUnavailable", err)
	}
	if summaryMock.Calls() != 0 {
		t.Fatal("summary ran after verification failure")
	}
	if states[len(states)-1] != StateFailed {
		t.Fatalf("final state = %v, want failed", states[len(states)-1])
	}
}

func TestRun_SummaryFailureNeverFailsPipeline(t *testing.T) {
	verifyMock := providers.NewMockClient(`{"verdict":"True","confidence":70,"explanation":"ok","category":"Other"}`)
	summaryMock := &providers.MockClient{Err: fmt.Errorf("summary backend down")}
	p := newTestPipeline(verifyMock, summaryMock, providers.NewMockClient(""))

	result, err := p.Run(context.Background(), TextRequest("claim"))
	if err != nil {
		t.Fatalf("Run() error = %v, summary failures must be absorbed", err)
	}
	if result.Summary != FallbackSummary {
		t.Fatalf("Summary = %q, want %q", result.Summary, FallbackSummary)
	}
}

func TestRun_EmptyTextClaim(t *testing.T) {
	verifyMock := providers.NewMockClient(`{"verdict":"True"}`)
	p := newTestPipeline(verifyMock, providers.NewMockClient(""), providers.NewMockClient(""))

	_, err := p.Run(context.Background(), TextRequest("   "))
	if !errors.Is(err, ErrEmptyClaim) {
		t.Fatalf("error = %v, want ErrEmptyClaim", err)
	}
	if verifyMock.Calls() != 0 {
		t.Fatal("verifier must not run on an empty claim")
	}
}
