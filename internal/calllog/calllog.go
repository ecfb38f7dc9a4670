// Package calllog records every generative backend call for traceability.
// Records live in a bounded in-memory ring; nothing is persisted.
package calllog

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/factlens/factlens/internal/providers"
)

// DefaultCapacity bounds the in-memory ring.
const DefaultCapacity = 256

// Call represents one recorded backend call.
type Call struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	LatencyMs int       `json:"latency_ms"`

	// Prompt traceability
	PromptKey string `json:"prompt_key"`

	// Model info
	Provider string `json:"provider"`
	Model    string `json:"model"`

	// Token usage
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`

	// Response
	Response string `json:"response,omitempty"`

	// Status
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Recorder captures calls into a bounded ring.
type Recorder struct {
	mu       sync.Mutex
	calls    []Call
	capacity int
	logger   *slog.Logger
}

// NewRecorder creates a recorder with the given capacity (DefaultCapacity if
// zero or negative).
func NewRecorder(capacity int, logger *slog.Logger) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		capacity: capacity,
		logger:   logger,
	}
}

// Record captures a completed backend call. The result may be nil when the
// call failed before producing one.
func (r *Recorder) Record(promptKey string, result *providers.GenerateResult, callErr error) {
	if r == nil {
		return
	}

	call := Call{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		PromptKey: promptKey,
		Success:   callErr == nil,
	}
	if result != nil {
		call.LatencyMs = int(result.ExecutionTime.Milliseconds())
		call.Provider = result.Provider
		call.Model = result.ModelUsed
		call.InputTokens = result.InputTokens
		call.OutputTokens = result.OutputTokens
		call.Response = result.Text
		if result.RequestID != "" {
			call.ID = result.RequestID
		}
	}
	if callErr != nil {
		call.Error = callErr.Error()
		r.logger.Warn("backend call failed",
			"prompt_key", promptKey,
			"error", callErr)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
	if len(r.calls) > r.capacity {
		r.calls = r.calls[len(r.calls)-r.capacity:]
	}
}

// Recent returns up to limit most recent calls, newest first.
// limit <= 0 means all retained calls.
func (r *Recorder) Recent(limit int) []Call {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.calls)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]Call, limit)
	for i := 0; i < limit; i++ {
		out[i] = r.calls[n-1-i]
	}
	return out
}
