package handler

import (
	"github.com/labstack/echo/v4"

	"avrstore/internal/adapter/api/middleware"
	"avrstore/internal/domain/entity"
	ws "avrstore/internal/infrastructure/websocket"
	"avrstore/internal/usecase"
)

// Dependencies are the use cases the handlers are built from.
type Dependencies struct {
	Products        *usecase.ProductUseCase
	Carts           *usecase.CartUseCase
	Orders          *usecase.OrderUseCase
	Payments        *usecase.PaymentUseCase
	Reviews         *usecase.ReviewUseCase
	Media           *usecase.MediaUseCase
	Artisans        *usecase.ResourceUseCase[entity.Artisan, *entity.Artisan]
	Categories      *usecase.ResourceUseCase[entity.Category, *entity.Category]
	WebSocket       *ws.Manager
	DefaultPageSize int
	MaxUploadBytes  int64
}

var (
	productHandler   *ProductHandler
	cartHandler      *CartHandler
	orderHandler     *OrderHandler
	paymentHandler   *PaymentHandler
	reviewHandler    *ReviewHandler
	fileHandler      *FileHandler
	artisanHandler   *ResourceHandler[entity.Artisan, *entity.Artisan]
	categoryHandler  *ResourceHandler[entity.Category, *entity.Category]
	webSocketHandler *WebSocketHandler
	healthHandler    *HealthHandler
)

func Setup(deps Dependencies) {
	productHandler = NewProductHandler(deps.Products, deps.DefaultPageSize)
	cartHandler = NewCartHandler(deps.Carts)
	orderHandler = NewOrderHandler(deps.Orders)
	paymentHandler = NewPaymentHandler(deps.Payments)
	reviewHandler = NewReviewHandler(deps.Reviews)
	fileHandler = NewFileHandler(deps.Media, deps.MaxUploadBytes)
	artisanHandler = NewResourceHandler(deps.Artisans)
	categoryHandler = NewResourceHandler(deps.Categories)
	webSocketHandler = NewWebSocketHandler(deps.WebSocket)
	healthHandler = NewHealthHandler()
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetArtisanHandler() *ResourceHandler[entity.Artisan, *entity.Artisan] {
	return artisanHandler
}

func GetCategoryHandler() *ResourceHandler[entity.Category, *entity.Category] {
	return categoryHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func currentUID(c echo.Context) string {
	uid, _ := c.Get(middleware.ContextUID).(string)
	return uid
}
