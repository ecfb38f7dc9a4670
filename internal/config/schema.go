package config

// Config holds factlens configuration.
// Stored at: ~/.factlens/config.yaml
type Config struct {
	Providers map[string]ProviderCfg `mapstructure:"providers" yaml:"providers"`
	Pipeline  PipelineCfg            `mapstructure:"pipeline" yaml:"pipeline"`
	Server    ServerCfg              `mapstructure:"server" yaml:"server"`
	CallLog   CallLogCfg             `mapstructure:"call_log" yaml:"call_log"`
}

// ProviderCfg configures a generative backend client.
type ProviderCfg struct {
	Type    string `mapstructure:"type" yaml:"type"`         // "gemini", "openai"
	Model   string `mapstructure:"model" yaml:"model"`       // Default model name
	APIKey  string `mapstructure:"api_key" yaml:"api_key"`   // Supports ${ENV_VAR} syntax
	BaseURL string `mapstructure:"base_url" yaml:"base_url"` // OpenAI-compatible endpoints only
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
}

// StageCfg selects the provider and model for one pipeline call.
type StageCfg struct {
	Provider    string  `mapstructure:"provider" yaml:"provider"`
	Model       string  `mapstructure:"model" yaml:"model"` // Provider default if empty
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`
}

// PipelineCfg selects providers per pipeline stage. Verification needs a
// backend with search grounding; summary and transcription do not.
type PipelineCfg struct {
	Verify     StageCfg `mapstructure:"verify" yaml:"verify"`
	Summary    StageCfg `mapstructure:"summary" yaml:"summary"`
	Transcribe StageCfg `mapstructure:"transcribe" yaml:"transcribe"`
}

// ServerCfg holds HTTP server settings.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// CallLogCfg bounds the in-memory call log.
type CallLogCfg struct {
	Capacity int `mapstructure:"capacity" yaml:"capacity"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Providers: map[string]ProviderCfg{
			"gemini": {
				Type:    "gemini",
				Model:   "gemini-2.5-flash",
				APIKey:  "${GEMINI_API_KEY}",
				Enabled: true,
			},
			"openai": {
				Type:    "openai",
				Model:   "gpt-4o-mini",
				APIKey:  "${OPENAI_API_KEY}",
				Enabled: false,
			},
		},
		Pipeline: PipelineCfg{
			Verify:     StageCfg{Provider: "gemini"},
			Summary:    StageCfg{Provider: "gemini"},
			Transcribe: StageCfg{Provider: "gemini"},
		},
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		CallLog: CallLogCfg{
			Capacity: 256,
		},
	}
}

// GetProvider returns a provider config by name.
func (c *Config) GetProvider(name string) (ProviderCfg, bool) {
	p, ok := c.Providers[name]
	return p, ok
}
