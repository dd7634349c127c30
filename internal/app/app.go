package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/energymonitor-backend/internal/adapter/mqtt"
	"github.com/heartmarshall/energymonitor-backend/internal/adapter/postgres"
	consumptionrepo "github.com/heartmarshall/energymonitor-backend/internal/adapter/postgres/consumption"
	userrepo "github.com/heartmarshall/energymonitor-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/energymonitor-backend/internal/auth"
	"github.com/heartmarshall/energymonitor-backend/internal/config"
	"github.com/heartmarshall/energymonitor-backend/internal/domain"
	authsvc "github.com/heartmarshall/energymonitor-backend/internal/service/auth"
	"github.com/heartmarshall/energymonitor-backend/internal/service/consumption"
	"github.com/heartmarshall/energymonitor-backend/internal/service/insight"
	"github.com/heartmarshall/energymonitor-backend/internal/service/insight/synthetic"
	"github.com/heartmarshall/energymonitor-backend/internal/transport/middleware"
	"github.com/heartmarshall/energymonitor-backend/internal/transport/rest"
	"github.com/heartmarshall/energymonitor-backend/migrations"
)

// Publisher is the event sink shared by the services.
type Publisher interface {
	PublishReading(ctx context.Context, r domain.Reading)
	PublishRecommendation(ctx context.Context, userID uuid.UUID, rec domain.Recommendation)
	IsConnected() bool
	Close()
}

// Services holds the wired application services.
type Services struct {
	Users       *userrepo.Repo
	Auth        *authsvc.Service
	Consumption *consumption.Service
	Insight     *insight.Service
	Events      Publisher
}

// NewServices wires repositories and services over pool.
func NewServices(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger, pub Publisher) *Services {
	users := userrepo.New(pool)
	readings := consumptionrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	gen := synthetic.New(synthetic.WithCostPerKWh(cfg.Insight.CostPerKWh))

	return &Services{
		Users:       users,
		Auth:        authsvc.NewService(logger, users, jwt, cfg.Auth),
		Consumption: consumption.NewService(logger, readings, tx, pub, gen, cfg.Insight),
		Insight:     insight.NewService(logger, readings, pub, gen, cfg.Insight),
		Events:      pub,
	}
}

// OpenDatabase connects to PostgreSQL and, when configured, applies pending
// migrations.
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if !cfg.AutoMigrate {
		return pool, nil
	}

	if err := Migrate(ctx, pool, logger, func(m *postgres.Migrator) error { return m.Up(ctx) }); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Migrate runs fn against a migrator over the embedded schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, fn func(*postgres.Migrator) error) error {
	m, err := postgres.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	if err := fn(m); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// NewPublisher connects the MQTT publisher, or returns a no-op one when
// publishing is disabled.
func NewPublisher(cfg config.MQTTConfig, logger *slog.Logger) (Publisher, error) {
	if !cfg.Enabled {
		return mqtt.Noop{}, nil
	}
	return mqtt.New(cfg, logger)
}

// Run serves the HTTP API until ctx is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("addr", cfg.Server.Addr()),
		slog.Bool("mqtt", cfg.MQTT.Enabled),
	)

	pool, err := OpenDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	pub, err := NewPublisher(cfg.MQTT, logger)
	if err != nil {
		return err
	}
	defer pub.Close()

	svcs := NewServices(pool, cfg, logger, pub)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(cfg, logger, pool, svcs, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// NewHandler builds the full middleware chain around the REST router.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	db interface{ Ping(context.Context) error },
	svcs *Services,
	limiter *middleware.RateLimiter,
) http.Handler {
	router := rest.NewRouter(rest.Routes{
		Health:      rest.NewHealthHandler(db, svcs.Events, Version),
		Legacy:      rest.NewLegacyHandler(cfg.Server.Port),
		Auth:        rest.NewAuthHandler(svcs.Auth, logger),
		Consumption: rest.NewConsumptionHandler(svcs.Consumption, logger),
		Insight:     rest.NewInsightHandler(svcs.Insight, logger),
		AuthLimit:   limiter.Limit(cfg.RateLimit.AuthPerMinute),
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svcs.Auth),
	)(router)
}
