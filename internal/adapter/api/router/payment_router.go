package router

import (
	"github.com/labstack/echo/v4"

	"avrstore/internal/adapter/api/handler"
	"avrstore/internal/adapter/api/middleware"
	"avrstore/internal/infrastructure/ratelimit"
)

func SetupPaymentRouter(e *echo.Echo, limiter *ratelimit.RateLimiter) {
	paymentHandler := handler.GetPaymentHandler()

	payments := e.Group("/v1/payments")
	payments.Use(middleware.RateLimit(limiter, ActionCallback))
	payments.POST("/callback", paymentHandler.HandleCallback)
}
