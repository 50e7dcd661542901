package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/adewale/gradlink/internal/app/controllers"
	appMigrations "github.com/adewale/gradlink/internal/app/migrations"
	appRepos "github.com/adewale/gradlink/internal/app/repositories"
	appRoutes "github.com/adewale/gradlink/internal/app/routes"
	appServices "github.com/adewale/gradlink/internal/app/services"
	"github.com/adewale/gradlink/internal/config"
	"github.com/adewale/gradlink/internal/db"
	appMiddleware "github.com/adewale/gradlink/internal/middleware"
	pkgAuth "github.com/adewale/gradlink/internal/pkg/auth"
	"github.com/adewale/gradlink/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ProgrammeService     *appServices.ProgrammeService
	DepartmentService    *appServices.DepartmentService
	GraduateService      *appServices.GraduateService
	DiscussionService    *appServices.DiscussionService
	ProgrammeController  *appControllers.ProgrammeController
	DepartmentController *appControllers.DepartmentController
	GraduateController   *appControllers.GraduateController
	DiscussionController *appControllers.DiscussionController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
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

	lgr := logger.Default()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
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

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenDuration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.ProgrammeService = appServices.NewProgrammeService(deps.Repos.Programmes, deps.Repos.Departments, lgr)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.Departments, deps.Repos.Programmes, lgr)
	deps.GraduateService = appServices.NewGraduateService(deps.Repos.Graduates, deps.Repos.Departments, deps.Repos.Programmes, lgr)
	deps.DiscussionService = appServices.NewDiscussionService(deps.Repos.Subjects, deps.Repos.Comments, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ProgrammeController = appControllers.NewProgrammeController(deps.ProgrammeService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.GraduateController = appControllers.NewGraduateController(deps.GraduateService)
	deps.DiscussionController = appControllers.NewDiscussionController(deps.DiscussionService)

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

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.ProgrammeController,
		deps.DepartmentController,
		deps.GraduateController,
		deps.DiscussionController,
		deps.AuthMiddleware,
	)

	return router
}
