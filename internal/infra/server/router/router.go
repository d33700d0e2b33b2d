// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/goal-planner/backend/internal/integration/entrypoint/controller"
	"github.com/goal-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	categoryController *controller.CategoryController
	goalController     *controller.GoalController
	visionController   *controller.VisionController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	goalController *controller.GoalController,
	visionController *controller.VisionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		categoryController: categoryController,
		goalController:     goalController,
		visionController:   visionController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test", "e2e":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Everything except
// registration, login, refresh and logout requires a bearer token.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
		auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
	}

	categories := v1.Group("/categories")
	categories.Use(r.authMiddleware.Authenticate())
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PUT("/order", r.categoryController.Reorder)
		categories.GET("/:id", r.categoryController.Get)
		categories.PATCH("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	goals := v1.Group("/goals")
	goals.Use(r.authMiddleware.Authenticate())
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/:id", r.goalController.Get)
		goals.GET("/:id/tree", r.goalController.Tree)
		goals.PATCH("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
	}

	visions := v1.Group("/visions")
	visions.Use(r.authMiddleware.Authenticate())
	{
		visions.GET("", r.visionController.List)
		visions.POST("", r.visionController.Create)
		visions.GET("/:id", r.visionController.Get)
		visions.PATCH("/:id", r.visionController.Update)
		visions.DELETE("/:id", r.visionController.Delete)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
