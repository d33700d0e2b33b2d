// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goal-planner/backend/config"
	"github.com/goal-planner/backend/internal/application/usecase/auth"
	"github.com/goal-planner/backend/internal/application/usecase/category"
	"github.com/goal-planner/backend/internal/application/usecase/goal"
	"github.com/goal-planner/backend/internal/application/usecase/vision"
	"github.com/goal-planner/backend/internal/infra/db"
	"github.com/goal-planner/backend/internal/infra/server/router"
	"github.com/goal-planner/backend/internal/integration/adapters"
	"github.com/goal-planner/backend/internal/integration/entrypoint/controller"
	"github.com/goal-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/goal-planner/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *db.Database
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case login attempts are counted in memory.
func NewInjector(cfg *config.Config, database *db.Database, redisClient *redis.Client) *Injector {
	gormDB := database.DB()

	// Create repositories
	userRepo := persistence.NewUserRepository(gormDB)
	tokenRepo := persistence.NewTokenRepository(gormDB)
	categoryRepo := persistence.NewCategoryRepository(gormDB)
	goalRepo := persistence.NewGoalRepository(gormDB)
	visionRepo := persistence.NewFutureVisionRepository(gormDB)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, categoryRepo, passwordService, tokenService, cfg.Planner.SeedPresets)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo, goalRepo, visionRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, goalRepo)
	reorderCategoriesUseCase := category.NewReorderCategoriesUseCase(categoryRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, categoryRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, categoryRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create vision use cases
	listVisionsUseCase := vision.NewListVisionsUseCase(visionRepo)
	createVisionUseCase := vision.NewCreateVisionUseCase(visionRepo, categoryRepo, cfg.Planner.VisionYearsAhead)
	getVisionUseCase := vision.NewGetVisionUseCase(visionRepo)
	updateVisionUseCase := vision.NewUpdateVisionUseCase(visionRepo, cfg.Planner.VisionYearsAhead)
	deleteVisionUseCase := vision.NewDeleteVisionUseCase(visionRepo)

	// Create controllers
	healthController := controller.NewHealthController(database)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		getCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		reorderCategoriesUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	visionController := controller.NewVisionController(
		listVisionsUseCase,
		createVisionUseCase,
		getVisionUseCase,
		updateVisionUseCase,
		deleteVisionUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(newRateLimitStore(cfg, redisClient), false)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		goalController,
		visionController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     database,
		Router: r,
	}
}

// newRateLimitStore picks the shared Redis store when a client is available.
// Test environments get a high ceiling so suites can log in repeatedly.
func newRateLimitStore(cfg *config.Config, redisClient *redis.Client) middleware.RateLimitStore {
	maxAttempts := cfg.RateLimit.MaxAttempts
	window := cfg.RateLimit.Window
	if cfg.Server.IsTestEnvironment() {
		maxAttempts = 1000
		window = time.Minute
	}

	if redisClient != nil {
		slog.Info("Using redis rate limit store", "max_attempts", maxAttempts, "window", window)
		return middleware.NewRedisStore(redisClient, maxAttempts, window)
	}
	slog.Info("Using in-memory rate limit store", "max_attempts", maxAttempts, "window", window)
	return middleware.NewMemoryStore(maxAttempts, window)
}
