package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "loyalty-server/internal/api"
	"loyalty-server/internal/apierrors"
	authHandler "loyalty-server/internal/auth/handler"
	"loyalty-server/internal/bootstrap"
	"loyalty-server/internal/config"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Server owns the HTTP listener of the loyalty API
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
	production bool
}

func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config:     cfg,
		deps:       deps,
		logger:     logger,
		production: os.Getenv("GO_ENV") == "production",
	}
}

// Setup builds the router: CORS for the Mini App origin, request logging,
// then the admin and Mini App route groups.
func (s *Server) Setup() {
	if s.production {
		gin.SetMode(gin.ReleaseMode)
	}
	apierrors.UseJSONFieldNames()

	s.router = gin.New()
	s.router.Use(cors.New(s.corsConfig()))
	s.router.Use(observability.Middleware(s.logger, s.deps.Metrics))

	api := apisetup.New(s.router.Group("/"), apisetup.Handlers{
		Auth:          s.deps.AuthHandler,
		Agents:        s.deps.AgentHandler,
		Bonus:         s.deps.BonusHandler,
		Queues:        s.deps.QueueHandler,
		Contacts:      s.deps.ContactHandler,
		Notifications: s.deps.NotificationHandler,
		Segments:      s.deps.SegmentHandler,
		MiniApp:       s.deps.MiniAppHandler,
		MiniAppLimit:  ratelimit.Middleware(s.deps.MiniAppRateLimit, s.logger),
	}, &s.deps.Store, s.deps.Metrics.Registry)
	api.RegisterRoutes()
}

// The Mini App is served from WebAppURI and calls the API cross-origin with
// its initData header; local development adds the dev server origin.
func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", authHandler.InitDataHeader}
	cfg.ExposeHeaders = []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"}
	cfg.AllowOrigins = []string{s.config.Services.WebAppURI}
	if !s.production && s.config.Services.WebAppURI != "http://localhost:3000" {
		cfg.AllowOrigins = append(cfg.AllowOrigins, "http://localhost:3000")
	}
	return cfg
}

// Start listens in the background; a listener failure exits the process
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("loyalty api listening on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatal(ctx, "http listener failed", err)
		}
	}()

	return nil
}

// WaitForShutdown blocks until SIGINT, SIGTERM or ctx cancellation, drains
// in-flight requests and releases the dependencies.
func (s *Server) WaitForShutdown(ctx context.Context) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()
	s.logger.Info(ctx, "shutting down loyalty api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.deps.Cleanup()
	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info(ctx, "loyalty api stopped")
	return nil
}
