package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"scholarstream/internal/app"
	"scholarstream/internal/config"
	"scholarstream/internal/database"
	"scholarstream/internal/domain/application"
	"scholarstream/internal/domain/review"
	"scholarstream/internal/domain/scholarship"
	"scholarstream/internal/domain/user"
	apphttp "scholarstream/internal/http"
	"scholarstream/internal/http/handlers"
	"scholarstream/internal/http/metrics"
	httpmw "scholarstream/internal/http/middleware"
	"scholarstream/internal/integration/stripe"
	"scholarstream/internal/observability"
	"scholarstream/internal/repository/memory"
	"scholarstream/internal/repository/mongodb"
)

type repositories struct {
	users        user.Repository
	scholarships scholarship.Repository
	applications application.Repository
	reviews      review.Repository
	pinger       handlers.Pinger
	close        func(context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := observability.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repos.close(closeCtx); err != nil {
			logger.Warn("store disconnect failed", zap.Error(err))
		}
	}()

	validate := app.NewValidator()
	userService := app.NewUserService(repos.users)
	scholarshipService := app.NewScholarshipService(repos.scholarships)
	applicationService := app.NewApplicationService(repos.applications, validate)
	reviewService := app.NewReviewService(repos.reviews)
	paymentService := app.NewPaymentService(stripe.NewClient(cfg.StripeSecretKey, nil), cfg.PaymentCurrency)

	limiter, closeLimiter := paymentLimiter(ctx, cfg, logger)
	defer closeLimiter()

	collector := metrics.NewCollector()
	router := apphttp.NewRouter(apphttp.RouterDependencies{
		SystemHandler:      handlers.NewSystemHandler(repos.pinger),
		UserHandler:        handlers.NewUserHandler(userService),
		ScholarshipHandler: handlers.NewScholarshipHandler(scholarshipService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService),
		ReviewHandler:      handlers.NewReviewHandler(reviewService),
		PaymentHandler:     handlers.NewPaymentHandler(paymentService),
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		PaymentLimiter:     limiter,
		Metrics:            collector,
		Logger:             logger,
		RequestTimeout:     cfg.RequestTimeout,
		AllowedOrigins:     cfg.CORSAllowedOrigins,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("api started", zap.String("addr", server.Addr), zap.String("store", cfg.StoreDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*repositories, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		return &repositories{
			users:        memory.NewUserRepository(),
			scholarships: memory.NewScholarshipRepository(),
			applications: memory.NewApplicationRepository(),
			reviews:      memory.NewReviewRepository(),
			close:        func(context.Context) error { return nil },
		}, nil
	}

	client, err := database.NewMongo(ctx, database.MongoConfig{
		URI:            cfg.MongoURI,
		ConnectTimeout: cfg.DBConnectTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return &repositories{
		users:        mongodb.NewUserRepository(db),
		scholarships: mongodb.NewScholarshipRepository(db),
		applications: mongodb.NewApplicationRepository(db),
		reviews:      mongodb.NewReviewRepository(db),
		pinger:       database.NewMongoPinger(client),
		close:        client.Disconnect,
	}, nil
}

// paymentLimiter prefers a shared Redis counter and falls back to a process-local one.
func paymentLimiter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (httpmw.Limiter, func()) {
	noop := func() {}
	if cfg.PaymentRateLimitPerMin <= 0 {
		return httpmw.NoopLimiter{}, noop
	}
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("invalid redis url, using in-memory rate limiter", zap.Error(err))
		} else {
			client := redis.NewClient(opts)
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			err := client.Ping(pingCtx).Err()
			cancel()
			if err == nil {
				return httpmw.NewRedisLimiter(client, cfg.PaymentRateLimitPerMin, time.Minute, "ratelimit:payment"), func() { _ = client.Close() }
			}
			logger.Warn("redis unavailable, using in-memory rate limiter", zap.Error(err))
			_ = client.Close()
		}
	}
	return httpmw.NewMemoryLimiter(cfg.PaymentRateLimitPerMin, time.Minute), noop
}
