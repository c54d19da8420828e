package router

import (
	"github.com/labstack/echo/v4"

	"avrstore/internal/adapter/api/handler"
	"avrstore/internal/adapter/api/middleware"
	"avrstore/internal/infrastructure/ratelimit"
)

func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	productHandler := handler.GetProductHandler()
	reviewHandler := handler.GetReviewHandler()

	products := e.Group("/v1/products")
	products.Use(middleware.RateLimit(limiter, ActionAPI))
	products.GET("", productHandler.ListProducts)
	products.GET("/featured", productHandler.ListFeatured)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/:id/reviews", reviewHandler.ListReviews)
	products.POST("/:id/reviews", reviewHandler.CreateReview, authMiddleware.Authenticate)

	e.GET("/v1/categories", handler.GetCategoryHandler().ListPublic)

	artisans := e.Group("/v1/artisans")
	artisans.GET("", handler.GetArtisanHandler().ListPublic)
	artisans.GET("/:id", handler.GetArtisanHandler().GetPublic)
}
