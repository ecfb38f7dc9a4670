package factcheck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/factlens/factlens/internal/calllog"
	"github.com/factlens/factlens/internal/factcheck/prompts/transcribe"
	"github.com/factlens/factlens/internal/providers"
)

// Transcriber extracts legible text from an uploaded image.
type Transcriber struct {
	client   providers.GenerativeClient
	recorder *calllog.Recorder
	logger   *slog.Logger

	model string
}

// TranscriberConfig configures a Transcriber.
type TranscriberConfig struct {
	Client   providers.GenerativeClient
	Recorder *calllog.Recorder // Optional
	Logger   *slog.Logger      // Optional
	Model    string            // Client default if empty
}

// NewTranscriber creates a new Transcriber.
func NewTranscriber(cfg TranscriberConfig) *Transcriber {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Transcriber{
		client:   cfg.Client,
		recorder: cfg.Recorder,
		logger:   logger,
		model:    cfg.Model,
	}
}

// Transcribe sends the image for text extraction. A call failure is
// ErrTranscriptionFailed; an empty transcription is returned as "" without
// error - deciding that "no text found" is terminal belongs to the pipeline,
// because the call itself did not error.
func (t *Transcriber) Transcribe(ctx context.Context, imageBytes []byte, mimeType string) (string, error) {
	req := &providers.GenerateRequest{
		Prompt: transcribe.UserPrompt(),
		Image: &providers.InlineImage{
			Data:     imageBytes,
			MIMEType: mimeType,
		},
		Model: t.model,
	}

	resp, err := t.client.Generate(ctx, req)
	t.recorder.Record(transcribe.UserPromptKey, resp, err)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
	}

	return resp.Text, nil
}
