// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/rwalabs/platform-middleware/pkg/app/http"
	"github.com/rwalabs/platform-middleware/pkg/auth"
	"github.com/rwalabs/platform-middleware/pkg/config"
	"github.com/rwalabs/platform-middleware/pkg/gate"
	"github.com/rwalabs/platform-middleware/pkg/news"
	"github.com/rwalabs/platform-middleware/pkg/pgutil"
	"github.com/rwalabs/platform-middleware/pkg/registry"
	"github.com/rwalabs/platform-middleware/pkg/requeststore"
	"github.com/rwalabs/platform-middleware/pkg/staking"
	whitelistservice "github.com/rwalabs/platform-middleware/pkg/whitelist/service"
)

const defaultRequestTimeout = 60

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	jwtSecret, err := cfg.Auth.Secret()
	if err != nil {
		return fmt.Errorf("load jwt secret: %w", err)
	}
	issuer := auth.NewTokenIssuer(jwtSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	reg := registry.New(registry.NewStore(db), logger)
	requests := requeststore.NewStore(db)

	workflow := whitelistservice.NewLog(whitelistservice.New(requests, reg), logger)
	loginService := auth.NewLoginService(issuer, reg, logger)
	accessGate := gate.New(reg)
	stakingService := staking.NewService(db)

	newsService := news.NewService(news.NewStore(db), cfg.News.TTL, cfg.News.CleanupInterval, logger)
	newsService.StartPeriodicCleanup()
	// Safety net; the explicit Stop below runs before deferred closes.
	defer newsService.Stop()

	router := s.setupRouter(reg, workflow, loginService, accessGate, newsService, stakingService, issuer, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before the deferred DB close kicks in.
	newsService.Stop()

	return err
}

func (s *Server) setupRouter(
	reg *registry.Registry,
	workflow whitelistservice.Service,
	loginService *auth.LoginService,
	accessGate *gate.Gate,
	newsService *news.Service,
	stakingService *staking.Service,
	issuer *auth.TokenIssuer,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	registry.RegisterRoutes(r, reg, logger)
	gate.RegisterRoutes(r, accessGate, logger)
	auth.RegisterRoutes(r, loginService, logger)
	whitelistservice.RegisterRoutes(r, workflow, issuer, reg, logger)
	news.RegisterRoutes(r, newsService, issuer, reg, logger)
	staking.RegisterRoutes(r, stakingService, logger)

	return r
}
