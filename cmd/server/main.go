package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diabred/diabred/internal/api"
	"github.com/diabred/diabred/internal/chatbot"
	"github.com/diabred/diabred/internal/config"
	"github.com/diabred/diabred/internal/observability"
	"github.com/diabred/diabred/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	gin.SetMode(cfg.GinMode)

	kb, err := chatbot.LoadKnowledgeBase(cfg.FAQFile)
	if err != nil {
		logger.Error("knowledge base load failed", "error", err)
		os.Exit(1)
	}

	opts := api.Options{
		Bot:         chatbot.New(kb),
		Sessions:    chatbot.NewSessionStore(cfg.ChatSessionCacheSize),
		MaxMessages: cfg.ChatMaxMessages,
		Metrics:     observability.NewMetrics(),
		Logger:      logger,
		StaticRoot:  detectStaticRoot(cfg.StaticDir),
	}

	if cfg.EnableDB {
		if cfg.AutoMigrate {
			if err := store.Migrate(cfg.DatabaseURL); err != nil {
				logger.Error("database migration failed", "error", err)
				os.Exit(1)
			}
		}
		pool, err := store.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		opts.Evaluations = store.New(pool)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("server listening",
		"port", cfg.Port,
		"db", cfg.EnableDB,
		"static", opts.StaticRoot,
	)
	waitForShutdown(server, logger)
}

func waitForShutdown(server *http.Server, logger *slog.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// detectStaticRoot returns the directory holding the site's index.html.
// An explicit dir wins; otherwise the working directory and its two
// parents are searched.
func detectStaticRoot(explicit string) string {
	if explicit != "" {
		return explicit
	}

	startDir, err := os.Getwd()
	if err != nil {
		return "."
	}

	candidates := []string{
		startDir,
		filepath.Dir(startDir),
		filepath.Dir(filepath.Dir(startDir)),
	}

	for _, dir := range candidates {
		if fileExists(filepath.Join(dir, "index.html")) {
			return dir
		}
	}

	return startDir
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
