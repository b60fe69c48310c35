package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/coursemart/coursemart-backend/internal/app/controllers"
	appRepos "github.com/coursemart/coursemart-backend/internal/app/repositories"
	appRoutes "github.com/coursemart/coursemart-backend/internal/app/routes"
	appServices "github.com/coursemart/coursemart-backend/internal/app/services"
	"github.com/coursemart/coursemart-backend/internal/config"
	"github.com/coursemart/coursemart-backend/internal/db"
	appMiddleware "github.com/coursemart/coursemart-backend/internal/middleware"
	pkgAuth "github.com/coursemart/coursemart-backend/internal/pkg/auth"
	"github.com/coursemart/coursemart-backend/internal/pkg/email"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
	"github.com/coursemart/coursemart-backend/internal/pkg/payment"
	"github.com/coursemart/coursemart-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services             *appServices.Services
	Repos                *appRepos.Repositories
	TokenService         *pkgAuth.TokenService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	CourseController     *appControllers.CourseController
	CartController       *appControllers.CartController
	AssignmentController *appControllers.AssignmentController
	OrderController      *appControllers.OrderController
	BookingController    *appControllers.BookingController
	StatsController      *appControllers.StatsController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to MongoDB and ensures the collection indexes.
// An unreachable database is a startup failure, not a degraded mode.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to create indexes")
		_ = database.Close(context.Background())
		return nil, err
	}

	lgr.Info().Str("database", cfg.Database.Name).Msg("Database connection established")
	return database, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	repos := appRepos.NewRepositories(database.Database)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := seed.CreateDefaultData(seedCtx, cfg, repos, lgr); err != nil {
		return nil, err
	}

	tokenService := pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenTTL:    cfg.TokenTTL(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	gateway := payment.NewSSLCommerzGateway(payment.SSLCommerzConfig{
		StoreID:       cfg.Payment.StoreID,
		StorePassword: cfg.Payment.StorePassword,
		Sandbox:       cfg.Payment.Sandbox,
	})
	intentCreator := payment.NewStripeClient(cfg.Stripe.SecretKey)

	emailService := email.NewMailgunService(email.MailgunConfig{
		Enabled: cfg.Email.Enabled,
		Domain:  cfg.Email.Domain,
		APIKey:  cfg.Email.APIKey,
		Sender:  cfg.Email.Sender,
	}, lgr)

	services := appServices.NewServices(repos, gateway, intentCreator, emailService, cfg.Payment.CallbackBase, lgr)

	deps := &Dependencies{
		Services:             services,
		Repos:                repos,
		TokenService:         tokenService,
		AuthController:       appControllers.NewAuthController(tokenService, cfg.JWT.CookieName, cfg.IsProduction()),
		UserController:       appControllers.NewUserController(services.UserService),
		CourseController:     appControllers.NewCourseController(services.CourseService),
		CartController:       appControllers.NewCartController(services.CartService),
		AssignmentController: appControllers.NewAssignmentController(services.AssignmentService),
		OrderController:      appControllers.NewOrderController(services.OrderService, cfg.Server.ClientURL),
		BookingController:    appControllers.NewBookingController(services.BookingService),
		StatsController:      appControllers.NewStatsController(services.StatsService),
		AuthMiddleware:       appMiddleware.NewAuthMiddleware(tokenService, repos.UserRepository, cfg.JWT.CookieName),
		Logger:               lgr,
	}

	return deps, nil
}

// SetupRouter builds the gin engine with CORS and all routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// The client sends the token cookie cross origin, so credentialed CORS
	// with an explicit origin list is required; a wildcard would break it.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.CourseController,
		deps.CartController,
		deps.AssignmentController,
		deps.OrderController,
		deps.BookingController,
		deps.StatsController,
		deps.AuthMiddleware,
	)

	lgr.Info().Int("origins", len(cfg.Origins())).Msg("Router configured")
	return router
}
