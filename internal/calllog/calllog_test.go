package calllog

import (
	"fmt"
	"testing"
	"time"

	"github.com/factlens/factlens/internal/providers"
)

func TestRecorder_RecordAndRecent(t *testing.T) {
	r := NewRecorder(10, nil)

	r.Record("verify.user", &providers.GenerateResult{
		Text:          `{"verdict":"True"}`,
		Provider:      "mock",
		ModelUsed:     "mock-model",
		ExecutionTime: 120 * time.Millisecond,
		InputTokens:   10,
		OutputTokens:  5,
	}, nil)
	r.Record("summary.user", nil, fmt.Errorf("boom"))

	calls := r.Recent(0)
	if len(calls) != 2 {
		t.Fatalf("Recent() = %d calls, want 2", len(calls))
	}

	// Newest first
	if calls[0].PromptKey != "summary.user" || calls[0].Success {
		t.Fatalf("newest call = %+v, want failed summary.user", calls[0])
	}
	if calls[1].PromptKey != "verify.user" || !calls[1].Success {
		t.Fatalf("oldest call = %+v, want successful verify.user", calls[1])
	}
	if calls[1].LatencyMs != 120 {
		t.Fatalf("LatencyMs = %d, want 120", calls[1].LatencyMs)
	}
}

func TestRecorder_RingBound(t *testing.T) {
	r := NewRecorder(3, nil)
	for i := 0; i < 5; i++ {
		r.Record(fmt.Sprintf("key-%d", i), &providers.GenerateResult{}, nil)
	}

	calls := r.Recent(0)
	if len(calls) != 3 {
		t.Fatalf("retained %d calls, want 3", len(calls))
	}
	if calls[0].PromptKey != "key-4" || calls[2].PromptKey != "key-2" {
		t.Fatalf("wrong window: %v .. %v", calls[0].PromptKey, calls[2].PromptKey)
	}
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *Recorder
	r.Record("key", nil, nil) // must not panic
	if got := r.Recent(5); got != nil {
		t.Fatalf("nil recorder Recent() = %v, want nil", got)
	}
}

func TestRecorder_RecentLimit(t *testing.T) {
	r := NewRecorder(10, nil)
	for i := 0; i < 4; i++ {
		r.Record("key", &providers.GenerateResult{}, nil)
	}
	if got := r.Recent(2); len(got) != 2 {
		t.Fatalf("Recent(2) = %d calls, want 2", len(got))
	}
}
