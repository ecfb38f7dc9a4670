package providers

import (
	"context"
	"errors"
	"testing"
)

func TestFirstGrounding(t *testing.T) {
	tests := []struct {
		name   string
		result *GenerateResult
		want   bool
	}{
		{
			name:   "no candidates",
			result: &GenerateResult{},
			want:   false,
		},
		{
			name:   "candidate without grounding",
			result: &GenerateResult{Candidates: []Candidate{{}}},
			want:   false,
		},
		{
			name: "candidate with grounding",
			result: &GenerateResult{Candidates: []Candidate{{
				Grounding: &GroundingMetadata{
					Chunks: []GroundingChunk{{Web: &WebSource{URI: "https://example.com"}}},
				},
			}}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.FirstGrounding()
			if (got != nil) != tt.want {
				t.Fatalf("FirstGrounding() = %v, want present=%v", got, tt.want)
			}
		})
	}
}

func TestMockClientScriptedResponses(t *testing.T) {
	mock := &MockClient{
		Responses: []*GenerateResult{
			{Text: "first"},
			{Text: "second"},
		},
	}

	ctx := context.Background()
	for i, want := range []string{"first", "second", "second"} {
		result, err := mock.Generate(ctx, &GenerateRequest{Prompt: "p"})
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if result.Text != want {
			t.Fatalf("call %d: text = %q, want %q", i, result.Text, want)
		}
	}
	if mock.Calls() != 3 {
		t.Fatalf("Calls() = %d, want 3", mock.Calls())
	}
}

func TestMockClientError(t *testing.T) {
	wantErr := errors.New("backend down")
	mock := &MockClient{Err: wantErr}

	_, err := mock.Generate(context.Background(), &GenerateRequest{Prompt: "p"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	client := NewMockClient("ok")

	registry.Register("mock", client)

	got, err := registry.Get("mock")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != GenerativeClient(client) {
		t.Fatal("Get returned a different client")
	}

	if names := registry.List(); len(names) != 1 || names[0] != "mock" {
		t.Fatalf("List() = %v", names)
	}

	registry.Unregister("mock")
	if _, err := registry.Get("mock"); err == nil {
		t.Fatal("expected error after Unregister")
	}
}
