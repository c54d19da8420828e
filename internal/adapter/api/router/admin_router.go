package router

import (
	"github.com/labstack/echo/v4"

	"avrstore/internal/adapter/api/handler"
	"avrstore/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	artisanHandler := handler.GetArtisanHandler()
	artisans := admin.Group("/artisans")
	artisans.GET("", artisanHandler.List)
	artisans.POST("", artisanHandler.Create)
	artisans.GET("/:id", artisanHandler.Get)
	artisans.PUT("/:id", artisanHandler.Update)
	artisans.DELETE("/:id", artisanHandler.Delete)

	categoryHandler := handler.GetCategoryHandler()
	categories := admin.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	productHandler := handler.GetProductHandler()
	admin.POST("/products", productHandler.CreateProduct)
	admin.PUT("/products/:id", productHandler.UpdateProduct)

	orderHandler := handler.GetOrderHandler()
	admin.GET("/orders", orderHandler.ListAllOrders)
	admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)

	admin.POST("/uploads", handler.GetFileHandler().UploadFile)
}
