package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	fbapp "firebase.google.com/go/v4"

	"avrstore/internal/adapter/api"
	"avrstore/internal/adapter/api/handler"
	apimiddleware "avrstore/internal/adapter/api/middleware"
	"avrstore/internal/adapter/api/router"
	"avrstore/internal/adapter/repository"
	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/resource"
	"avrstore/internal/domain/service"
	"avrstore/internal/infrastructure/firebase"
	"avrstore/internal/infrastructure/ratelimit"
	"avrstore/internal/infrastructure/storage"
	"avrstore/internal/infrastructure/websocket"
	"avrstore/internal/usecase"
	"avrstore/pkg/config"
	"avrstore/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Configure(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ServiceAccountJSON == "" && cfg.ServiceAccountPath != "" {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
	}
	opts := cfg.ClientOptions()

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	if err := storageClient.EnsureCORS(ctx, cfg.AllowedOrigins); err != nil {
		logger.Warn("Could not configure bucket CORS: %v", err)
	}

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	orderItemRepo := repository.NewFirestoreOrderItemRepository(firestoreClient)
	paymentRepo := repository.NewFirestorePaymentRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	artisanRepo := repository.NewFirestoreDocumentRepository[entity.Artisan, *entity.Artisan](firestoreClient, resource.Artisans())
	categoryRepo := repository.NewFirestoreDocumentRepository[entity.Category, *entity.Category](firestoreClient, resource.Categories())

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	paymentGateway := service.NewSimulatedPaymentGateway(
		cfg.PaymentServerKey,
		cfg.PaymentClientKey,
		cfg.PaymentEnvironment == "production",
	)

	artisanUseCase := usecase.NewResourceUseCase[entity.Artisan, *entity.Artisan](resource.Artisans(), artisanRepo)
	categoryUseCase := usecase.NewResourceUseCase[entity.Category, *entity.Category](resource.Categories(), categoryRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, orderItemRepo, cartRepo, productRepo, wsManager)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway, wsManager)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo)
	mediaUseCase := usecase.NewMediaUseCase(storageClient, productRepo, artisanUseCase, categoryUseCase, cfg.MaxUploadBytes)

	handler.Setup(handler.Dependencies{
		Products:        productUseCase,
		Carts:           cartUseCase,
		Orders:          orderUseCase,
		Payments:        paymentUseCase,
		Reviews:         reviewUseCase,
		Media:           mediaUseCase,
		Artisans:        artisanUseCase,
		Categories:      categoryUseCase,
		WebSocket:       wsManager,
		DefaultPageSize: cfg.DefaultPageSize,
		MaxUploadBytes:  cfg.MaxUploadBytes,
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter(
		ratelimit.Limit{PerMinute: cfg.RateLimitPerMin},
		map[string]ratelimit.Limit{
			router.ActionCallback: {PerMinute: cfg.CallbackLimitPerM},
		},
	)
	limiter.StartCleanupRoutine(ctx, 10*time.Minute)

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware, limiter)

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
