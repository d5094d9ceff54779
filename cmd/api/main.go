package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/binguliki/IntelliLearn/config"
	_ "github.com/binguliki/IntelliLearn/docs" // Swagger docs
	chatUC "github.com/binguliki/IntelliLearn/internal/chat/usecase"
	"github.com/binguliki/IntelliLearn/internal/httpserver"
	"github.com/binguliki/IntelliLearn/internal/middleware"
	notesSqlite "github.com/binguliki/IntelliLearn/internal/notes/repository/sqlite"
	"github.com/binguliki/IntelliLearn/internal/session"
	"github.com/binguliki/IntelliLearn/internal/speech"
	"github.com/binguliki/IntelliLearn/internal/tools"
	"github.com/binguliki/IntelliLearn/pkg/gemini"
	"github.com/binguliki/IntelliLearn/pkg/log"
	"github.com/binguliki/IntelliLearn/pkg/whisper"
)

// @title       IntelliLearn API
// @description Conversational learning assistant with tool-augmented chat, quizzes, notes, and speech transcription.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting IntelliLearn...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	if cfg.Gemini.ImageModel != "" {
		geminiClient.SetImageModel(cfg.Gemini.ImageModel)
	}

	// 4. Note storage
	noteStore, err := notesSqlite.New(cfg.Notes.DBPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open note store: %v", err)
		return
	}
	defer noteStore.Close()
	logger.Infof(ctx, "Note store ready at %s", cfg.Notes.DBPath)

	// 5. Tool registry
	registry := tools.NewRegistry()
	registry.Register(tools.NewGenerateQuizTool(logger))
	registry.Register(tools.NewGenerateImageTool(logger, geminiClient))
	registry.Register(tools.NewSaveNotesTool(logger, noteStore))

	// 6. Sessions and chat use case
	sessions := session.New(gemini.TutorSystemPrompt, cfg.Session.TTL, cfg.Session.MaxSessions)
	uc := chatUC.New(logger, geminiClient, registry, sessions)

	// 7. Speech transcription (warms up in the background)
	whisperClient := whisper.NewClient(cfg.Whisper.URL)
	speechLoader := speech.NewLoader(logger, whisperClient)
	speechLoader.Start(ctx)

	// 8. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatUC:      uc,
		Speech:      speechLoader,
		NotesRepo:   noteStore,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
