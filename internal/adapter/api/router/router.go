package router

import (
	"github.com/labstack/echo/v4"

	"avrstore/internal/adapter/api/middleware"
	"avrstore/internal/infrastructure/ratelimit"
)

// Rate limiter actions.
const (
	ActionAPI      = "api"
	ActionCallback = "callback"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	SetupHealthRouter(e)
	SetupCatalogRouter(e, authMiddleware, limiter)
	SetupCartRouter(e, authMiddleware, limiter)
	SetupOrderRouter(e, authMiddleware, limiter)
	SetupPaymentRouter(e, limiter)
	SetupWebSocketRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
}
