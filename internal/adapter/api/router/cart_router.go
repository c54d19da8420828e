package router

import (
	"github.com/labstack/echo/v4"

	"avrstore/internal/adapter/api/handler"
	"avrstore/internal/adapter/api/middleware"
	"avrstore/internal/infrastructure/ratelimit"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.Use(middleware.RateLimit(limiter, ActionAPI))
	cart.GET("", cartHandler.GetCart)
	cart.DELETE("", cartHandler.ClearCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:productId", cartHandler.UpdateItem)
	cart.DELETE("/items/:productId", cartHandler.RemoveItem)
}
