package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"

	"github.com/mariyaselvam/service-booking-BE/internal/config"
	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/middleware"
	"github.com/mariyaselvam/service-booking-BE/internal/module/booking"
	"github.com/mariyaselvam/service-booking-BE/internal/module/catalog"
	"github.com/mariyaselvam/service-booking-BE/internal/module/user"
	"github.com/mariyaselvam/service-booking-BE/internal/module/vendor"
	"github.com/mariyaselvam/service-booking-BE/internal/seed"
	"github.com/mariyaselvam/service-booking-BE/internal/store"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine  *gin.Engine
	backend store.Backend
	logger  *logger.Logger
	cfg     *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, opens the configured store backend (migrating in debug
// mode or when seeding), loads demo data when database.seed is set, builds
// the resource modules and registers middleware and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	requestTimeout, err := parseRequestTimeout(cfg.Server.Timeout)
	if err != nil {
		return nil, err
	}

	success := false

	// 1. Logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 exposes permissive CORS")
	}

	// 2. Store backend.
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	backend, err := store.Open(ctx, &cfg.Database, log.Logger, store.Schema{
		Models:      domain.Models(),
		JSONColumns: domain.JSONColumns(),
		Migrate:     cfg.Server.Mode == gin.DebugMode || cfg.Database.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if success {
			return
		}
		if err := backend.Close(context.Background()); err != nil {
			slog.Error("store close error", slog.Any("error", err))
		}
	}()

	// 3. Demo data.
	if cfg.Database.Seed {
		if _, err := seed.Run(ctx, backend, log.Logger); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	// 4. Manual dependency injection: store → service → handler → module.
	modules := buildModules(backend, log.Logger)

	// 5. Gin engine with custom middleware (not gin.Default()).
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()
	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{TrustUpstream: false}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(middleware.CORSConfigFrom(cfg.Server.Mode, cfg.Server.CORS)),
		middleware.Timeout(requestTimeout),
	)

	// 6. Routes.
	if err := RegisterRoutes(engine, &RouteDeps{Modules: modules, Backend: backend}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine:  engine,
		backend: backend,
		logger:  log,
		cfg:     cfg,
	}, nil
}

func buildModules(backend store.Backend, log *slog.Logger) []Module {
	userRepo := user.NewUserRepository(backend.Collection(domain.CollectionUsers), log)
	userSvc := user.NewUserService(userRepo)
	vendorSvc := vendor.NewVendorService(backend.Collection(domain.CollectionVendors), log)
	catalogSvc := catalog.NewCatalogService(backend.Collection(domain.CollectionServices), log)
	bookingSvc := booking.NewBookingService(backend.Collection(domain.CollectionBookings), log)

	return []Module{
		user.NewModule(user.NewUserHandler(userSvc)),
		vendor.NewModule(vendor.NewVendorHandler(vendorSvc)),
		catalog.NewModule(catalog.NewCatalogHandler(catalogSvc)),
		booking.NewModule(booking.NewBookingHandler(bookingSvc)),
	}
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// parseRequestTimeout returns 0 for an unset timeout.
func parseRequestTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid server.timeout %q: %w", raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid server.timeout %q: must be greater than 0", raw)
	}
	return d, nil
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It shuts the server down gracefully within shutdownTimeout, then closes the
// store backend and the logger.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	log := slog.Default()
	if a.logger != nil {
		log = a.logger.Logger
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", slog.Any("error", err))
		}
	}

	if a.backend != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.backend.Close(closeCtx); err != nil {
			log.Error("store close error", slog.Any("error", err))
		} else {
			log.Info("store closed", slog.String("driver", a.backend.Driver()))
		}
	}

	log.Info("server stopped")
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}

	return runErr
}
