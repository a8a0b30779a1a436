// Package bootstrap wires configuration, storage and the HTTP surface
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/scop/resourcehub/internal/app/controllers"
	appMigrations "github.com/scop/resourcehub/internal/app/migrations"
	appRepos "github.com/scop/resourcehub/internal/app/repositories"
	appRoutes "github.com/scop/resourcehub/internal/app/routes"
	appServices "github.com/scop/resourcehub/internal/app/services"
	"github.com/scop/resourcehub/internal/config"
	"github.com/scop/resourcehub/internal/db"
	appMiddleware "github.com/scop/resourcehub/internal/middleware"
	"github.com/scop/resourcehub/internal/pkg/filestorage"
	"github.com/scop/resourcehub/internal/pkg/logger"
	"github.com/scop/resourcehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	ResourceService    appServices.ResourceService
	PageService        appServices.PageService
	StatsService       appServices.StatsService
	AuthController     *appControllers.AuthController
	ResourceController *appControllers.ResourceController
	PageController     *appControllers.PageController
	StatsController    *appControllers.StatsController
	Dispatcher         *appRoutes.Dispatcher
	Repos              *appRepos.Repositories
	FileStorage        *filestorage.LocalStorage
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file in the working directory is applied first so the config env
// overrides and the seed variables see it.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// applies the seed data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.Run(context.Background(), appRepos.NewRepositories(dbPool)); err != nil {
		// Seed data is reference data; a failure here should not block boot.
		lgr.Error().Err(err).Msg("Failed to apply seed data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, "")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository)
	deps.ResourceService = appServices.NewResourceService(
		deps.Repos.ResourceRepository,
		deps.Repos.SubjectRepository,
		deps.FileStorage,
	)
	deps.PageService = appServices.NewPageService(deps.Repos.PageContentRepository)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.ResourceRepository,
		deps.Repos.PageViewRepository,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService, deps.StatsService, lgr)
	deps.PageController = appControllers.NewPageController(deps.PageService, deps.StatsService, lgr)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService, lgr)

	deps.Dispatcher = appRoutes.NewDispatcher(
		deps.AuthController,
		deps.ResourceController,
		deps.PageController,
		deps.StatsController,
		lgr,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.Use(appMiddleware.CORS())

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions(cfg.Session.CookieName, store))
	router.Use(appMiddleware.SessionUser())

	deps.Dispatcher.Register(router)

	// Uploaded files are served straight off disk
	router.Static("/uploads", cfg.Server.StoragePath)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
