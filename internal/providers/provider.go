// Package providers defines the generative backend boundary and its
// implementations. Clients are constructed once at process start from config
// and injected into the pipeline components; there is no shared global.
package providers

import (
	"context"
	"time"
)

// GenerativeClient is the single boundary the pipeline consumes: free-form
// generation with an optional system instruction, optional inline image, and
// an optional live web-search augmentation flag.
type GenerativeClient interface {
	// Generate sends one generation request and returns the response text
	// plus any grounding metadata the backend attached.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)

	// Name returns the client identifier (e.g., "gemini").
	Name() string
}

// InlineImage is binary image data tagged with its MIME type, sent alongside
// the instruction for multimodal calls.
type InlineImage struct {
	Data     []byte
	MIMEType string
}

// GenerateRequest is a request to a generative backend.
type GenerateRequest struct {
	// System is the system instruction (empty = none).
	System string

	// Prompt is the user instruction.
	Prompt string

	// Image, when set, is attached as inline data for multimodal input.
	Image *InlineImage

	// EnableSearch asks the backend to ground the answer in live web
	// search. Grounding metadata on the result is only populated when the
	// backend supports this and it is enabled.
	EnableSearch bool

	// Model selection (client default if empty).
	Model string

	Temperature float64

	// RequestID for call-log correlation (generated if empty).
	RequestID string
}

// GenerateResult is the response from a generative backend.
//
// Grounding metadata is modeled with explicit optional fields: candidate,
// metadata, chunk and web reference may each be absent independently, and
// absence at any level simply yields no citations.
type GenerateResult struct {
	// Text is the concatenated response text of the first candidate.
	Text string

	Candidates []Candidate

	// Provider info
	Provider  string
	ModelUsed string

	// Timing and usage
	ExecutionTime time.Duration
	InputTokens   int
	OutputTokens  int

	RequestID string
}

// Candidate is one response alternative.
type Candidate struct {
	Grounding *GroundingMetadata
}

// GroundingMetadata holds the retrieval evidence for a candidate.
type GroundingMetadata struct {
	Chunks []GroundingChunk
}

// GroundingChunk is a single retrieved document reference.
type GroundingChunk struct {
	Web *WebSource
}

// WebSource is a web page backing a grounding chunk.
type WebSource struct {
	Title string
	URI   string
}

// FirstGrounding returns the first candidate's grounding chunks, or nil when
// any level of the chain is absent.
func (r *GenerateResult) FirstGrounding() []GroundingChunk {
	if r == nil || len(r.Candidates) == 0 {
		return nil
	}
	meta := r.Candidates[0].Grounding
	if meta == nil {
		return nil
	}
	return meta.Chunks
}
