// Package router contains routing setup for the HTTP delivery.
package router

import (
	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"
	"ledger/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all handlers and middlewares, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CompanyHandler  *handler.CompanyHandler
	TransferHandler *handler.TransferHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	companyHandler  *handler.CompanyHandler
	transferHandler *handler.TransferHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		companyHandler:  params.CompanyHandler,
		transferHandler: params.TransferHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Company routes require a valid bearer token
	companyGroup := api.Group("/companies")
	companyGroup.Use(r.authMiddleware.Authenticate)
	{
		companyGroup.POST("/adhere", r.companyHandler.Adhere)
		companyGroup.GET("/with-transfers-last-month", r.companyHandler.ListWithTransfersLastMonth)
		companyGroup.GET("/adhered-last-month", r.companyHandler.ListAdheredLastMonth)
	}

	// Transfer routes require a valid bearer token; recording a transfer
	// additionally requires the admin role
	transferGroup := api.Group("/transfers")
	transferGroup.Use(r.authMiddleware.Authenticate)
	{
		transferGroup.POST("", r.transferHandler.Create,
			r.authMiddleware.RequireRole(entity.RoleAdmin))
		transferGroup.GET("/last-month", r.transferHandler.ListLastMonth)
	}
}
