package factcheck

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/factlens/factlens/internal/providers"
)

func TestTranscribe_ReturnsText(t *testing.T) {
	mock := providers.NewMockClient("BREAKING: aliens landed in Ohio")
	mock.OnGenerate = func(req *providers.GenerateRequest) {
		if req.Image == nil {
			t.Error("transcription request must carry inline image data")
		} else if req.Image.MIMEType != "image/png" {
			t.Errorf("MIMEType = %q, want image/png", req.Image.MIMEType)
		}
	}
	tr := NewTranscriber(TranscriberConfig{Client: mock})

	got, err := tr.Transcribe(context.Background(), []byte{0x89, 0x50}, "image/png")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "BREAKING: aliens landed in Ohio" {
		t.Fatalf("Transcribe() = %q", got)
	}
}

func TestTranscribe_EmptyTextIsNotAnError(t *testing.T) {
	mock := providers.NewMockClient("")
	tr := NewTranscriber(TranscriberConfig{Client: mock})

	got, err := tr.Transcribe(context.Background(), []byte{0x01}, "image/jpeg")
	if err != nil {
		t.Fatalf("empty transcription must not error, got %v", err)
	}
	if got != "" {
		t.Fatalf("Transcribe() = %q, want empty string", got)
	}
}

func TestTranscribe_CallFailureWrapped(t *testing.T) {
	mock := &providers.MockClient{Err: fmt.Errorf("image too large")}
	tr := NewTranscriber(TranscriberConfig{Client: mock})

	_, err := tr.Transcribe(context.Background(), []byte{0x01}, "image/jpeg")
	if !errors.Is(err, ErrTranscriptionFailed) {
		t.Fatalf("error = %v, want ErrTranscriptionFailed", err)
	}
}
