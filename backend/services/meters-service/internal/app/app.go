package app

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	libredis "meterbook/backend/libs/redis"
	"meterbook/backend/services/meters-service/internal/config"
	"meterbook/backend/services/meters-service/internal/db"
	httpserver "meterbook/backend/services/meters-service/internal/http"
	"meterbook/backend/services/meters-service/internal/http/handlers"
	"meterbook/backend/services/meters-service/internal/http/middleware"
	"meterbook/backend/services/meters-service/internal/metrics"
	redisstore "meterbook/backend/services/meters-service/internal/redis"
	"meterbook/backend/services/meters-service/internal/repository"
	"meterbook/backend/services/meters-service/internal/service"
)

// App wires meters-service dependencies.
type App struct {
	server      *httpserver.Server
	db          *sql.DB
	redisClient *redis.Client
	logger      *zap.Logger
}

// New constructs the application graph.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(cfg.Database.DSN, cfg.DBOptions())
	if err != nil {
		return nil, err
	}

	if cfg.Database.Migrate {
		applied, err := db.Migrate(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		logger.Info("database migrated", zap.Strings("files", applied))
	}

	var (
		redisClient *redis.Client
		cache       service.ReferenceCache
	)
	if cfg.CacheEnabled() {
		redisClient, err = libredis.NewRedisClient(cfg.RedisOptions())
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		refCache := redisstore.NewReferenceCache(redisClient, cfg.Redis.TTL)
		if cfg.Database.Migrate {
			if err := refCache.Invalidate(ctx); err != nil {
				logger.Warn("failed to invalidate reference cache", zap.Error(err))
			}
		}
		cache = refCache
	} else {
		logger.Info("reference cache disabled")
	}

	meterTypeRepo := repository.NewMeterTypeRepository(sqlDB)
	benchmarkRepo := repository.NewBenchmarkRepository(sqlDB)
	locationRepo := repository.NewLocationRepository(sqlDB)
	meterRepo := repository.NewMeterRepository(sqlDB)
	readingRepo := repository.NewReadingRepository(sqlDB)
	householdRepo := repository.NewHouseholdRepository(sqlDB)

	appMetrics := metrics.New()
	referenceSvc := service.NewReferenceService(meterTypeRepo, benchmarkRepo, cache, appMetrics, logger)
	locationsSvc := service.NewLocationsService(locationRepo, logger)
	metersSvc := service.NewMetersService(meterRepo, referenceSvc, logger)
	readingsSvc := service.NewReadingsService(readingRepo, logger)
	householdSvc := service.NewHouseholdService(householdRepo, logger)
	analyticsSvc := service.NewAnalyticsService(meterRepo, readingRepo, householdRepo, referenceSvc, logger)
	dashboardSvc := service.NewDashboardService(meterRepo, locationRepo, readingRepo, logger)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Reference:     handlers.NewReferenceHandlers(referenceSvc, logger),
		Locations:     handlers.NewLocationsHandlers(locationsSvc, logger),
		Meters:        handlers.NewMetersHandlers(metersSvc, analyticsSvc, logger),
		Readings:      handlers.NewReadingsHandlers(readingsSvc, logger),
		Profile:       handlers.NewProfileHandlers(householdSvc, logger),
		Dashboard:     handlers.NewDashboardHandler(dashboardSvc, logger),
		HealthHandler: handlers.NewHealthHandler(sqlDB),
		Metrics:       appMetrics.Handler(),
		Instrument:    appMetrics.Middleware,
	}, middleware.AuthMiddleware(cfg.Auth.JWTSecret, cfg.Auth.Issuer))

	mws := []func(http.Handler) http.Handler{
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
	}
	if len(cfg.CORS.AllowedOrigins) > 0 {
		mws = append(mws, httpserver.CORS(cfg.CORS.AllowedOrigins))
	}
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger, mws...)

	return &App{
		server:      server,
		db:          sqlDB,
		redisClient: redisClient,
		logger:      logger,
	}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
