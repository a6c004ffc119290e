package config

import (
	"context"
	"database/sql"
	"fmt"

	"file-converter/internal/domain"
	"file-converter/internal/infra/supabase"
	"file-converter/internal/repository"
	"file-converter/internal/service"
	"file-converter/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	Stager            domain.Stager
	ConversionService domain.ConversionService
	PhotoSheetService domain.PhotoSheetService
	// ChatService is nil when the model backend is not configured;
	// handlers respond 503 in that case.
	ChatService domain.ChatService

	chatDB    *sql.DB
	generator domain.TextGenerator
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	stager, err := service.NewFileStager(cfg.GetStagingPath(), appLogger)
	if err != nil {
		return nil, fmt.Errorf("initialize stager: %w", err)
	}

	dispatcher := service.NewDefaultDispatcher(appLogger)
	converter := service.NewDocumentConverter(dispatcher, stager, appLogger)

	sheetStorage, err := newSheetStorage(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("initialize sheet storage: %w", err)
	}
	sheets := service.NewSheetBuilder(sheetStorage, appLogger)

	c := &Container{
		Config:            cfg,
		Logger:            appLogger,
		Stager:            stager,
		ConversionService: converter,
		PhotoSheetService: sheets,
	}

	if err := c.initChat(cfg, appLogger); err != nil {
		return nil, err
	}

	return c, nil
}

// newSheetStorage prefers the Supabase bucket when credentials are
// present and falls back to the local media directory.
func newSheetStorage(cfg domain.Config, appLogger domain.Logger) (domain.SheetStorage, error) {
	if cfg.GetSupabaseURL() != "" && cfg.GetSupabaseKey() != "" {
		storage := supabase.NewSheetStorage(cfg, appLogger)
		if err := storage.Initialize(); err != nil {
			return nil, err
		}
		return storage, nil
	}
	return service.NewLocalSheetStorage(cfg.GetMediaPath(), appLogger)
}

// initChat wires the chat stack. Missing GCP configuration disables
// chat instead of failing startup; conversion must keep working without
// model credentials.
func (c *Container) initChat(cfg domain.Config, appLogger domain.Logger) error {
	if cfg.GetGCPProjectID() == "" {
		appLogger.Warn("GCP_PROJECT_ID not set, chat endpoints disabled")
		return nil
	}

	db, err := repository.OpenChatDB(cfg.GetChatDBPath())
	if err != nil {
		return fmt.Errorf("initialize chat db: %w", err)
	}
	chatRepo := repository.NewSQLiteChatRepository(db)
	if err := chatRepo.Init(); err != nil {
		db.Close()
		return fmt.Errorf("initialize chat schema: %w", err)
	}

	generator, err := service.NewGeminiGenerator(context.Background(),
		cfg.GetGCPProjectID(), cfg.GetGCPLocation(), appLogger)
	if err != nil {
		db.Close()
		return fmt.Errorf("initialize text generator: %w", err)
	}

	c.chatDB = db
	c.generator = generator
	c.ChatService = service.NewChatManager(chatRepo, generator, appLogger)
	return nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// Close releases the container's long-lived resources.
func (c *Container) Close() error {
	var firstErr error
	if c.generator != nil {
		if err := c.generator.Close(); err != nil {
			firstErr = err
		}
	}
	if c.chatDB != nil {
		if err := c.chatDB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
