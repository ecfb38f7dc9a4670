package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/factlens/factlens/internal/calllog"
	"github.com/factlens/factlens/internal/config"
	"github.com/factlens/factlens/internal/factcheck"
	"github.com/factlens/factlens/internal/home"
	"github.com/factlens/factlens/internal/providers"
	"github.com/factlens/factlens/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Factlens server",
	Long: `Start the Factlens HTTP server.

The server provides:
  - /health               - Basic server health check
  - /status               - Server status with configured providers
  - /api/v1/verify        - Verify a text claim
  - /api/v1/verify/image  - Verify a claim from an image
  - /api/v1/calls         - Recent backend call history

Examples:
  factlens serve                 # Start on default port 8080
  factlens serve --port 3000     # Start on custom port
  factlens serve --host 0.0.0.0  # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}
		if !h.ConfigExists() && cfgFile == "" {
			if err := config.WriteDefault(h.ConfigPath()); err != nil {
				return err
			}
			logger.Info("wrote default config", "path", h.ConfigPath())
		}

		// Load configuration
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cm.WatchConfig()
		cfg := cm.Get()

		// Build generative clients from config
		registry, err := buildRegistry(ctx, cfg, logger)
		if err != nil {
			return err
		}

		recorder := calllog.NewRecorder(cfg.CallLog.Capacity, logger)

		pipeline, err := buildPipeline(cfg, registry, recorder, logger)
		if err != nil {
			return err
		}

		host := serveHost
		if host == "" {
			host = cfg.Server.Host
		}
		port := servePort
		if port == "" {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Pipeline:      pipeline,
			Registry:      registry,
			Recorder:      recorder,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

// buildRegistry constructs a client for every enabled provider in config.
func buildRegistry(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*providers.Registry, error) {
	registry := providers.NewRegistry()
	registry.SetLogger(logger)

	for name, pcfg := range cfg.Providers {
		if !pcfg.Enabled {
			continue
		}

		apiKey := config.ResolveEnvVars(pcfg.APIKey)
		if apiKey == "" {
			logger.Warn("provider has no API key, skipping", "provider", name)
			continue
		}

		switch pcfg.Type {
		case "gemini":
			client, err := providers.NewGeminiClient(ctx, providers.GeminiConfig{
				APIKey:       apiKey,
				DefaultModel: pcfg.Model,
			})
			if err != nil {
				return nil, fmt.Errorf("provider %s: %w", name, err)
			}
			registry.Register(name, client)
		case "openai":
			registry.Register(name, providers.NewOpenAIClient(providers.OpenAIConfig{
				APIKey:       apiKey,
				BaseURL:      config.ResolveEnvVars(pcfg.BaseURL),
				DefaultModel: pcfg.Model,
			}))
		default:
			return nil, fmt.Errorf("provider %s: unknown type %q", name, pcfg.Type)
		}
	}

	if len(registry.List()) == 0 {
		return nil, fmt.Errorf("no providers available, check API keys in config")
	}

	return registry, nil
}

// buildPipeline wires the configured stage clients into a pipeline.
func buildPipeline(cfg *config.Config, registry *providers.Registry, recorder *calllog.Recorder, logger *slog.Logger) (*factcheck.Pipeline, error) {
	verifyClient, err := stageClient(registry, cfg.Pipeline.Verify)
	if err != nil {
		return nil, fmt.Errorf("verify stage: %w", err)
	}
	summaryClient, err := stageClient(registry, cfg.Pipeline.Summary)
	if err != nil {
		return nil, fmt.Errorf("summary stage: %w", err)
	}
	transcribeClient, err := stageClient(registry, cfg.Pipeline.Transcribe)
	if err != nil {
		return nil, fmt.Errorf("transcribe stage: %w", err)
	}

	return factcheck.NewPipeline(factcheck.PipelineConfig{
		Verifier: factcheck.NewVerifier(factcheck.VerifierConfig{
			Client:      verifyClient,
			Recorder:    recorder,
			Logger:      logger,
			Model:       cfg.Pipeline.Verify.Model,
			Temperature: cfg.Pipeline.Verify.Temperature,
		}),
		Summarizer: factcheck.NewSummarizer(factcheck.SummarizerConfig{
			Client:   summaryClient,
			Recorder: recorder,
			Logger:   logger,
			Model:    cfg.Pipeline.Summary.Model,
		}),
		Transcriber: factcheck.NewTranscriber(factcheck.TranscriberConfig{
			Client:   transcribeClient,
			Recorder: recorder,
			Logger:   logger,
			Model:    cfg.Pipeline.Transcribe.Model,
		}),
		Logger: logger,
	}), nil
}

// stageClient resolves the client a pipeline stage is configured to use.
func stageClient(registry *providers.Registry, stage config.StageCfg) (providers.GenerativeClient, error) {
	client, err := registry.Get(stage.Provider)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config)")

	rootCmd.AddCommand(serveCmd)
}
