// Package container provides dependency injection for the sheet-ledger
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/sheet-ledger/internal/accounting"
	"fjacquet/sheet-ledger/internal/categorizer"
	"fjacquet/sheet-ledger/internal/config"
	"fjacquet/sheet-ledger/internal/fileutils"
	"fjacquet/sheet-ledger/internal/ledger"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	opener   store.Opener
	aiClient categorizer.AIClient
	service  *accounting.Service
}

// Option overrides a dependency, mostly for tests.
type Option func(*Container)

// WithLogger replaces the logger built from the log section.
func WithLogger(logger logging.Logger) Option {
	return func(c *Container) { c.logger = logger }
}

// WithOpener replaces the excelize workbook opener.
func WithOpener(open store.Opener) Option {
	return func(c *Container) { c.opener = open }
}

// WithAIClient replaces the Gemini client. It is used even when AI is disabled
// in the configuration.
func WithAIClient(client categorizer.AIClient) Option {
	return func(c *Container) { c.aiClient = client }
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	// Create logger first as it's needed by other components
	if c.logger == nil {
		c.logger = config.ConfigureLoggingFromConfig(cfg)
	}
	if c.opener == nil {
		c.opener = store.OpenWorkbook(c.logger)
	}

	if c.aiClient == nil && cfg.AI.Enabled && cfg.AI.APIKey != "" {
		c.aiClient = categorizer.NewGeminiClient(cfg.AI.APIKey, cfg.AI.Model, cfg.AITimeout(), c.logger)
		c.logger.Info("AI categorization enabled")
	} else if c.aiClient == nil {
		c.logger.Debug("AI categorization disabled")
	}

	format, err := cfg.DateFormat()
	if err != nil {
		return nil, fmt.Errorf("invalid date settings: %w", err)
	}

	window := cfg.Fill.Window
	if window < 0 {
		window = 0
	}
	c.service = accounting.NewService(c.opener, accounting.Options{
		Workbook: fileutils.NormalizePath(cfg.Workbook),
		Sheets: accounting.Sheets{
			Ledger:     cfg.Sheets.Ledger,
			Categories: cfg.Sheets.Categories,
			Accounts:   cfg.Sheets.Accounts,
		},
		RulesFile:  cfg.Rules.File,
		Format:     format,
		FillWindow: uint(window),
		FillMargin: cfg.FillMargin(),
		Regroup:    ledger.RegroupOptions{StopAtNote: cfg.Regroup.StopAtNote},
		Ingest:     cfg.IngestOptions(),
	}, c.aiClient, c.logger)

	c.logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldWorkbook, Value: cfg.Workbook},
		logging.Field{Key: "ai_enabled", Value: c.aiClient != nil})

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetService returns the accounting service bound to the configured workbook.
func (c *Container) GetService() *accounting.Service {
	return c.service
}

// GetAIClient returns the container's AI client instance.
// Returns nil if AI is not enabled.
func (c *Container) GetAIClient() categorizer.AIClient {
	return c.aiClient
}

// Close releases the AI client, if it holds a connection.
func (c *Container) Close() error {
	if closer, ok := c.aiClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close AI client: %w", err)
		}
	}
	return nil
}
