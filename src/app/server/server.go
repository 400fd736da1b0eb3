// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"faqhub/src/app/http/handler"
	"faqhub/src/app/http/response"
	"faqhub/src/app/middleware"
	"faqhub/src/core/domain"
	"faqhub/src/core/ports"
	"faqhub/src/core/usecase"
	"faqhub/src/infra/config"
	"faqhub/src/infra/resilience"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler   *handler.HealthHandler
	themeHandler    *handler.ThemeHandler
	userHandler     *handler.UserHandler
	faqHandler      *handler.FAQHandler
	questionHandler *handler.UserQuestionHandler

	metrics *middleware.Metrics
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.KnowledgeBaseRepository) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(repo, log)
	themeService := usecase.NewThemeService(repo, log)
	userService := usecase.NewUserService(repo, log)
	faqService := usecase.NewFAQService(repo, log)
	questionService := usecase.NewUserQuestionService(repo, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		cfg:             cfg,
		log:             log,
		router:          router,
		healthHandler:   handler.NewHealthHandler(healthService),
		themeHandler:    handler.NewThemeHandler(themeService),
		userHandler:     handler.NewUserHandler(userService),
		faqHandler:      handler.NewFAQHandler(faqService),
		questionHandler: handler.NewUserQuestionHandler(questionService),
		metrics:         middleware.NewMetrics(registry),
	}

	s.setupMiddleware()
	s.setupRoutes(registry)
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(s.metrics.Handler())
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes(registry *prometheus.Registry) {
	// Health and metrics endpoints stay outside the /DB surface
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	light := middleware.Timeout(domain.LightOperationTimeout)
	heavy := middleware.Timeout(domain.HeavyOperationTimeout)

	// Hot endpoints get a bulkhead and a breaker each
	res := s.cfg.Resilience
	breakerSettings := resilience.BreakerSettings{
		VolumeThreshold: res.BreakerVolumeThreshold,
		FailureRatio:    res.BreakerFailureRatio,
		OpenInterval:    res.BreakerOpenInterval,
		TrialSuccesses:  res.BreakerTrialSuccesses,
	}
	guard := func(name string) []gin.HandlerFunc {
		return []gin.HandlerFunc{
			middleware.Admission(resilience.NewBulkhead(res.BulkheadSlots, res.BulkheadQueue)),
			middleware.CircuitBreaker(resilience.NewBreaker(name, breakerSettings, s.log)),
		}
	}

	db := s.router.Group("/DB")
	{
		themes := db.Group("/Themes", light)
		themes.GET("/getAll", s.themeHandler.GetAll)
		themes.POST("/add/:name", s.themeHandler.Add)
		themes.DELETE("/delete/:id", s.themeHandler.Delete)

		faq := db.Group("/FAQ")
		faq.GET("/getAllByTheme/:id", append(guard("faq-by-theme"), heavy, s.faqHandler.GetAllByTheme)...)
		faq.POST("/addFAQ", light, s.faqHandler.Add)
		faq.PATCH("/updateFAQ", light, s.faqHandler.Update)
		faq.DELETE("/delete/:id", light, s.faqHandler.Delete)

		users := db.Group("/users")
		users.POST("/addUser", light, s.userHandler.Add)
		users.GET("/getRole/:id", append(guard("user-role"), light, s.userHandler.GetRole)...)
		users.PATCH("/promote/:id", light, s.userHandler.Promote)
		users.PATCH("/demote/:id", light, s.userHandler.Demote)
		users.PATCH("/block/:id", light, s.userHandler.Block)
		users.PATCH("/unblock/:id", light, s.userHandler.Unblock)

		questions := db.Group("/userQuestions")
		questions.POST("/post", append(guard("user-question-post"), light, s.questionHandler.Post)...)
		questions.GET("/getAllByUser/:id", heavy, s.questionHandler.GetAllByUser)
		questions.DELETE("/removeByUser/:id", heavy, s.questionHandler.RemoveByUser)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Envelope{
			Data:    nil,
			Message: "The requested resource was not found",
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
