package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("FACTLENS_TEST_KEY", "secret-123")

	tests := []struct {
		in   string
		want string
	}{
		{"${FACTLENS_TEST_KEY}", "secret-123"},
		{"prefix-${FACTLENS_TEST_KEY}-suffix", "prefix-secret-123-suffix"},
		{"no-vars-here", "no-vars-here"},
		{"${FACTLENS_UNSET_VAR}", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ResolveEnvVars(tt.in); got != tt.want {
			t.Errorf("ResolveEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	gemini, ok := cfg.GetProvider("gemini")
	if !ok {
		t.Fatal("default config missing gemini provider")
	}
	if !gemini.Enabled {
		t.Fatal("gemini should be enabled by default")
	}
	if _, ok := cfg.GetProvider("anthropic"); ok {
		t.Fatal("GetProvider returned a provider that is not configured")
	}
	if cfg.Pipeline.Verify.Provider != "gemini" {
		t.Fatalf("verify provider = %q, want gemini (search grounding required)", cfg.Pipeline.Verify.Provider)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.CallLog.Capacity <= 0 {
		t.Fatal("call log capacity must be positive")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "providers:") {
		t.Fatal("written config missing providers section")
	}
	if !strings.Contains(content, "${GEMINI_API_KEY}") {
		t.Fatal("written config should reference GEMINI_API_KEY via env syntax")
	}
}
