package factcheck

import (
	"context"
	"fmt"
	"testing"

	"github.com/factlens/factlens/internal/providers"
)

func TestSummarize_ReturnsModelText(t *testing.T) {
	mock := providers.NewMockClient("Debunked: the sun is still yellow, stop sharing this.")
	s := NewSummarizer(SummarizerConfig{Client: mock})

	got := s.Summarize(context.Background(), "The sun has not turned green.", "False")
	if got != "Debunked: the sun is still yellow, stop sharing this." {
		t.Fatalf("Summarize() = %q", got)
	}
}

func TestSummarize_FallbackOnError(t *testing.T) {
	mock := &providers.MockClient{Err: fmt.Errorf("quota exceeded")}
	s := NewSummarizer(SummarizerConfig{Client: mock})

	got := s.Summarize(context.Background(), "explanation", "True")
	if got != FallbackSummary {
		t.Fatalf("Summarize() = %q, want %q", got, FallbackSummary)
	}
}

func TestSummarize_FallbackOnEmptyResponse(t *testing.T) {
	mock := providers.NewMockClient("  \n ")
	s := NewSummarizer(SummarizerConfig{Client: mock})

	got := s.Summarize(context.Background(), "explanation", "True")
	if got != FallbackSummary {
		t.Fatalf("Summarize() = %q, want %q", got, FallbackSummary)
	}
}
