package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

const (
	GeminiName         = "gemini"
	GeminiDefaultModel = "gemini-2.5-flash"
)

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey       string
	DefaultModel string
	Timeout      time.Duration
}

// GeminiClient implements GenerativeClient using the official Google GenAI
// SDK. It is the only backend that populates grounding metadata, via the
// Google Search tool.
type GeminiClient struct {
	client       *genai.Client
	defaultModel string
	timeout      time.Duration
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = GeminiDefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client:       client,
		defaultModel: cfg.DefaultModel,
		timeout:      cfg.Timeout,
	}, nil
}

// Name returns the client identifier.
func (c *GeminiClient) Name() string {
	return GeminiName
}

// Generate sends a generation request to Gemini.
func (c *GeminiClient) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	start := time.Now()

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.EnableSearch {
		config.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	result := &GenerateResult{
		Text:          resp.Text(),
		Candidates:    mapCandidates(resp.Candidates),
		Provider:      GeminiName,
		ModelUsed:     model,
		ExecutionTime: time.Since(start),
		RequestID:     requestID,
	}
	if usage := resp.UsageMetadata; usage != nil {
		result.InputTokens = int(usage.PromptTokenCount)
		result.OutputTokens = int(usage.CandidatesTokenCount)
	}

	return result, nil
}

// mapCandidates converts SDK candidates into the explicit nullable model used
// at the pipeline boundary. Absent metadata at any level maps to nil, which
// downstream reads as "no citations".
func mapCandidates(in []*genai.Candidate) []Candidate {
	out := make([]Candidate, 0, len(in))
	for _, cand := range in {
		if cand == nil {
			continue
		}
		mapped := Candidate{}
		if meta := cand.GroundingMetadata; meta != nil {
			grounding := &GroundingMetadata{}
			for _, chunk := range meta.GroundingChunks {
				if chunk == nil {
					continue
				}
				mappedChunk := GroundingChunk{}
				if chunk.Web != nil {
					mappedChunk.Web = &WebSource{
						Title: chunk.Web.Title,
						URI:   chunk.Web.URI,
					}
				}
				grounding.Chunks = append(grounding.Chunks, mappedChunk)
			}
			mapped.Grounding = grounding
		}
		out = append(out, mapped)
	}
	return out
}

// Verify interface
var _ GenerativeClient = (*GeminiClient)(nil)
