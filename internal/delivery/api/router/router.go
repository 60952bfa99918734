// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifelink/config"
	"lifelink/internal/delivery/api/middleware"
	"lifelink/internal/delivery/api/router/handler"
	"lifelink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProfileHandler   *handler.ProfileHandler
	EmergencyHandler *handler.EmergencyHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	emergencyHandler *handler.EmergencyHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		profileHandler:   params.ProfileHandler,
		emergencyHandler: params.EmergencyHandler,
		adminHandler:     params.AdminHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public scan endpoint, rate limited per client address
	e.GET("/emergency/:code", r.emergencyHandler.Resolve, middleware.NewPublicRateLimiter(r.config))

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication
	apiV1.GET("/me", r.authHandler.Me)

	profilesGroup := apiV1.Group("/profiles")
	{
		profilesGroup.GET("", r.profileHandler.ListProfiles)
		profilesGroup.GET("/:code", r.profileHandler.GetProfile)
		profilesGroup.PUT("/:code", r.profileHandler.SaveProfile)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/stats", r.adminHandler.GetStats)
		adminGroup.GET("/codes", r.adminHandler.ListCodes)
		adminGroup.POST("/codes", r.adminHandler.IssueCodes)
		adminGroup.GET("/codes/:code/qr.png", r.adminHandler.RenderCodePNG)
		adminGroup.GET("/snapshot", r.adminHandler.ExportSnapshot)
		adminGroup.POST("/snapshot", r.adminHandler.ImportSnapshot)
	}
}
