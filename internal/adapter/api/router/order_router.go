package router

import (
	"github.com/labstack/echo/v4"

	"avrstore/internal/adapter/api/handler"
	"avrstore/internal/adapter/api/middleware"
	"avrstore/internal/infrastructure/ratelimit"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	orderHandler := handler.GetOrderHandler()
	paymentHandler := handler.GetPaymentHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.Use(middleware.RateLimit(limiter, ActionAPI))
	orders.POST("", orderHandler.Checkout)
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.POST("/:id/cancel", orderHandler.CancelOrder)
	orders.POST("/:id/payment", paymentHandler.InitiatePayment)
	orders.GET("/:id/payment", paymentHandler.GetPayment)
}
