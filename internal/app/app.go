package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/config"
	handler "github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/handler/http"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/notifier"
	postgresrepo "github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository/postgres"
	redisrepo "github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository/redis"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/service"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/storage"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/storage/cloudinary"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/storage/memory"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/migrations"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/database"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/health"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httpclient"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/middleware"
)

// App wires together all dependencies and runs the storefront backend.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
	rdb        *redis.Client
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Connect to PostgreSQL with startup retries.
	pgCfg := cfg.Postgres()
	pool, err := database.NewPostgresPoolWithLogger(ctx, &pgCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	database.RegisterPoolMetrics(pool, "storefront")
	logger.Info("connected to PostgreSQL",
		slog.String("host", pgCfg.Host),
		slog.String("database", pgCfg.DBName),
	)

	// Run database migrations.
	if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("database migrations completed")

	// Connect to Redis for the server-side cart.
	rdb, err := database.NewRedisClient(ctx, cfg.Redis())
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis", slog.String("addr", cfg.Redis().Addr()))

	// Repositories.
	orderRepo := postgresrepo.NewOrderRepository(pool)
	productRepo := postgresrepo.NewProductRepository(pool)
	bannerRepo := postgresrepo.NewBannerRepository(pool)
	postRepo := postgresrepo.NewPostRepository(pool)
	contactRepo := postgresrepo.NewContactRepository(pool)
	cartRepo := redisrepo.NewCartRepository(rdb, cfg.CartTTL)

	// Order notification channels. Sends are never retried so a slow or
	// failing gateway cannot duplicate messages.
	gatewayCfg := httpclient.DefaultConfig()
	gatewayCfg.MaxRetries = 0

	emailNotifier := notifier.NewEmailNotifier(cfg.Email(), httpclient.New(gatewayCfg), logger)
	whatsappClient := httpclient.NewCircuitBreakerClient(
		httpclient.New(gatewayCfg),
		httpclient.DefaultCircuitBreakerConfig("twilio"),
		logger,
	)
	whatsappNotifier := notifier.NewWhatsAppNotifier(cfg.WhatsApp(), whatsappClient, logger)
	dispatcher := notifier.NewDispatcher(logger, emailNotifier, whatsappNotifier)

	// Image storage.
	var store storage.Storage
	if cfg.CloudinaryConfigured() {
		store = cloudinary.New(cfg.Cloudinary(), httpclient.New(httpclient.DefaultConfig()))
		logger.Info("using Cloudinary image storage", slog.String("cloud", cfg.CloudinaryCloudName))
	} else {
		store = memory.New(cfg.UploadBaseURL)
		logger.Warn("cloudinary not configured, uploads are stored in memory")
	}

	// Services.
	svcs := handler.Services{
		Orders:   service.NewOrderService(orderRepo, productRepo, dispatcher, logger),
		Products: service.NewProductService(productRepo, logger),
		Banners:  service.NewBannerService(bannerRepo, logger),
		Blog:     service.NewBlogService(postRepo, logger),
		Contact:  service.NewContactService(contactRepo, logger),
		Cart:     service.NewCartService(cartRepo, logger),
		Media:    service.NewMediaService(store, logger),
	}

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})

	// HTTP router.
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	corsCfg.Environment = cfg.Environment

	router := handler.NewRouter(svcs, healthHandler, logger, handler.RouterConfig{
		CORS:       corsCfg,
		PprofCIDRs: cfg.PprofAllowedCIDRs,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		pool:       pool,
		rdb:        rdb,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	a.pool.Close()

	a.logger.Info("application shutdown complete")
	return nil
}
