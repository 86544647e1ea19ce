// Package api exposes the risk predictor and the FAQ chatbot over HTTP.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/diabred/diabred/internal/chatbot"
	"github.com/diabred/diabred/internal/observability"
	"github.com/diabred/diabred/internal/store"
)

// HealthChecker reports backing store availability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// EvaluationRepository persists scorer runs.
type EvaluationRepository interface {
	HealthChecker
	Save(ctx context.Context, e store.Evaluation) error
	Get(ctx context.Context, id uuid.UUID) (store.Evaluation, error)
	Recent(ctx context.Context, limit int) ([]store.Evaluation, error)
}

// Options configures the router. Evaluations may be nil when the database
// is disabled.
type Options struct {
	Evaluations EvaluationRepository
	Bot         *chatbot.Bot
	Sessions    *chatbot.SessionStore
	MaxMessages int
	Metrics     *observability.Metrics
	Logger      *slog.Logger
	StaticRoot  string
}

type server struct {
	evaluations EvaluationRepository
	bot         *chatbot.Bot
	sessions    *chatbot.SessionStore
	maxMessages int
	metrics     *observability.Metrics
	logger      *slog.Logger
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(opts Options) *gin.Engine {
	s := &server{
		evaluations: opts.Evaluations,
		bot:         opts.Bot,
		sessions:    opts.Sessions,
		maxMessages: opts.MaxMessages,
		metrics:     opts.Metrics,
		logger:      opts.Logger,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.metrics == nil {
		s.metrics = observability.NewMetrics()
	}
	if s.sessions == nil {
		s.sessions = chatbot.NewSessionStore(0)
	}

	router := gin.New()
	router.Use(
		requestLogger(s.logger, s.metrics),
		gin.Recovery(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}),
	)

	if opts.StaticRoot != "" {
		mountStatic(router, opts.StaticRoot)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", s.readyz)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	riskGroup := router.Group("/api/risk")
	riskGroup.POST("/evaluate", s.evaluate)
	riskGroup.GET("/evaluations", s.listEvaluations)
	riskGroup.GET("/evaluations/:id", s.getEvaluation)

	chat := router.Group("/api/chat")
	chat.GET("/quick-questions", s.quickQuestions)
	chat.POST("/sessions", s.createSession)
	chat.GET("/sessions/:id", s.getSession)
	chat.POST("/sessions/:id/messages", s.sendMessage)
	chat.POST("/sessions/:id/actions", s.pressAction)
	chat.POST("/sessions/:id/toggle", s.toggleSession)
	chat.POST("/sessions/:id/close", s.closeSession)

	return router
}

func (s *server) readyz(c *gin.Context) {
	if s.evaluations == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.evaluations.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"db":     fmt.Sprintf("unhealthy: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}

// mountStatic serves the educational site: index.html at the root and
// its asset folders when present.
func mountStatic(router *gin.Engine, root string) {
	router.Static("/static", root)
	if fileExists(filepath.Join(root, "index.html")) {
		router.StaticFile("/", filepath.Join(root, "index.html"))
	}
	for _, dir := range []string{"js", "css", "img", "pdf"} {
		if dirExists(filepath.Join(root, dir)) {
			router.Static("/"+dir, filepath.Join(root, dir))
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
