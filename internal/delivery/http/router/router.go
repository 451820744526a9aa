// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passbook/internal/delivery/http/middleware"
	"passbook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	PassHandler         *handler.PassHandler
	PushHandler         *handler.PushHandler
	LogHandler          *handler.LogHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	passHandler         *handler.PassHandler
	pushHandler         *handler.PushHandler
	logHandler          *handler.LogHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		passHandler:         params.PassHandler,
		pushHandler:         params.PushHandler,
		logHandler:          params.LogHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	// Device registration and delta sync. The serial-number listing is the
	// only registration route the wallet protocol leaves unauthenticated.
	deviceGroup := v1.Group("/devices/:deviceLibraryIdentifier/registrations/:passTypeIdentifier")
	{
		deviceGroup.GET("", r.registrationHandler.GetSerialNumbers)
		deviceGroup.POST("/:serialNumber", r.registrationHandler.RegisterDevice, r.authMiddleware.Authenticate)
		deviceGroup.DELETE("/:serialNumber", r.registrationHandler.UnregisterDevice, r.authMiddleware.Authenticate)
	}

	// Pass delivery
	passGroup := v1.Group("/passes/:passTypeIdentifier/:serialNumber")
	{
		passGroup.GET("", r.passHandler.GetPass, r.authMiddleware.Authenticate)
		passGroup.GET("/qrcode", r.passHandler.DistributionQR)
	}

	// Device error reports
	logGroup := v1.Group("/log")
	{
		logGroup.POST("", r.logHandler.Submit)
		logGroup.GET("", r.logHandler.List, r.authMiddleware.Authenticate)
		logGroup.DELETE("", r.logHandler.Purge, r.authMiddleware.Authenticate)
	}

	// Operator-facing broadcast endpoints
	pushGroup := v1.Group("/push/:passTypeIdentifier/:serialNumber")
	pushGroup.Use(r.authMiddleware.Authenticate)
	{
		pushGroup.POST("", r.pushHandler.Broadcast)
		pushGroup.GET("", r.pushHandler.ListTokens)
	}
}
