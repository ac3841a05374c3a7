// Package app wires configuration, clients, and services together.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rmoreira/carteira/internal/clients/gemini"
	"github.com/rmoreira/carteira/internal/common"
	"github.com/rmoreira/carteira/internal/interfaces"
	"github.com/rmoreira/carteira/internal/services/analyzer"
	"github.com/rmoreira/carteira/internal/services/commentary"
	"github.com/rmoreira/carteira/internal/services/extract"
)

// App holds all initialized services and clients. Dependencies are built
// here and injected explicitly; nothing is constructed at package level.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	GeminiClient     interfaces.GeminiClient
	ExtractorService interfaces.ExtractorService
	AnalyzerService  interfaces.AnalyzerService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, the Gemini client, and the
// analysis services. configPath may be empty, in which case the default
// resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load configuration - check provided path, CARTEIRA_CONFIG, then
	// binary dir, then fallback for development.
	if configPath == "" {
		configPath = os.Getenv("CARTEIRA_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "carteira.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/carteira.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	// Commentary is the one degradable dependency: without a key the
	// analyzer still runs, using the deterministic fallback commentary.
	var geminiClient interfaces.GeminiClient
	var commentaryService interfaces.CommentaryService

	geminiKey, err := common.ResolveAPIKey(config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - commentary will be auto-generated")
	} else {
		client, err := gemini.NewClient(context.Background(), geminiKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithTimeout(config.Clients.Gemini.GetTimeout()),
			gemini.WithRateLimit(config.Clients.Gemini.RateLimit),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client - commentary will be auto-generated")
		} else {
			geminiClient = client
			commentaryService = commentary.NewService(client, logger)
		}
	}

	extractorService := extract.NewService(logger)
	analyzerService := analyzer.NewService(extractorService, commentaryService, logger)

	a := &App{
		Config:           config,
		Logger:           logger,
		GeminiClient:     geminiClient,
		ExtractorService: extractorService,
		AnalyzerService:  analyzerService,
		StartupTime:      startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}
