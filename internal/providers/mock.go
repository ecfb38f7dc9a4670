package providers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const MockClientName = "mock"

// MockClient is a GenerativeClient for testing.
// Responses can be scripted per call; once the script is exhausted the last
// entry repeats.
type MockClient struct {
	// Configurable behavior
	Latency    time.Duration
	Err        error             // Returned on every call when set
	Responses  []*GenerateResult // Scripted responses, consumed in order
	OnGenerate func(req *GenerateRequest)

	mu           sync.Mutex
	requestCount atomic.Int64
}

// NewMockClient creates a mock that answers every call with the given text.
func NewMockClient(text string) *MockClient {
	return &MockClient{
		Responses: []*GenerateResult{{Text: text, Provider: MockClientName}},
	}
}

// Name returns the client identifier.
func (c *MockClient) Name() string {
	return MockClientName
}

// Calls returns the number of Generate invocations so far.
func (c *MockClient) Calls() int {
	return int(c.requestCount.Load())
}

// Generate returns the next scripted response or the configured error.
func (c *MockClient) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	count := c.requestCount.Add(1)

	if c.OnGenerate != nil {
		c.OnGenerate(req)
	}

	if c.Latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.Latency):
		}
	}

	if c.Err != nil {
		return nil, c.Err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Responses) == 0 {
		return nil, fmt.Errorf("mock: no scripted response for call %d", count)
	}
	resp := c.Responses[0]
	if len(c.Responses) > 1 {
		c.Responses = c.Responses[1:]
	}

	out := *resp
	out.Provider = MockClientName
	out.RequestID = fmt.Sprintf("mock-%d", count)
	return &out, nil
}

// Verify interface
var _ GenerativeClient = (*MockClient)(nil)
