package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"dreamtravels/internal/config"
	"dreamtravels/internal/database"
	"dreamtravels/internal/handlers"
	"dreamtravels/internal/repositories"
	"dreamtravels/internal/services"
	"dreamtravels/internal/sessionstore"
	"dreamtravels/internal/views"
	"dreamtravels/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// --- Session storage ---
	// Sessions live in Redis when it is reachable and in memory otherwise.
	var storage fiber.Storage
	if client := sessionstore.NewRedisClient(cfg); client != nil {
		storage = sessionstore.NewRedisStorage(client)
		defer storage.Close()
		log.Printf("Using Redis session storage at %s", cfg.RedisAddr)
	}

	// --- RabbitMQ ---
	// Order events are optional; checkout works without a broker.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
			go func() {
				log.Println("Starting RabbitMQ consumer for orders...")
				if consumerErr := mqClient.ConsumeOrderEvents(handleOrderEvent); consumerErr != nil {
					log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
				}
			}()
		}
	}

	app, err := newApp(cfg, db, storage, publisher)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server gracefully stopped")
}

// newApp wires repositories, services and handlers into a Fiber app. A nil
// storage keeps sessions in memory and a nil publisher disables order events.
func newApp(cfg *config.Config, db *gorm.DB, storage fiber.Storage, publisher services.EventPublisher) (*fiber.App, error) {
	// --- Initialize Repositories ---
	destinationRepo := repositories.NewGORMDestinationRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	bookingRepo := repositories.NewGORMBookingRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenDuration)
	svc := handlers.Services{
		Auth:         authService,
		Destinations: services.NewDestinationService(destinationRepo),
		Carts:        services.NewCartService(destinationRepo),
		Checkout:     services.NewCheckoutService(orderRepo, publisher),
		Admin:        services.NewAdminService(destinationRepo, bookingRepo, orderRepo),
	}

	// --- Seed data ---
	if cfg.SeedSampleData {
		if _, err := services.SeedDestinations(destinationRepo); err != nil {
			return nil, err
		}
	}
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if _, err := authService.EnsureAdmin(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return nil, fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		Views:       views.New(),
		ViewsLayout: views.Layout,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New()) // Request logger

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "connected",
			"events":   publisher != nil,
		}
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			status["status"] = "unhealthy"
			status["database"] = "unreachable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		return c.JSON(status)
	})

	// --- Page Routes ---
	sessions := sessionstore.NewStore(storage, cfg.SessionExpiration, cfg.CookieSecure)
	web := handlers.NewWeb(sessions, services.NewSessionLocks())
	handlers.Register(app, web, svc, cfg.CookieSecure)

	return app, nil
}

// handleOrderEvent logs the order placement events read back from the queue.
func handleOrderEvent(msg amqp.Delivery) error {
	var event services.OrderPlacedEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("malformed order event: %w", err)
	}
	log.Printf("Received Order Event (Tag: %d): order %s for user %d, %d items, total %.2f",
		msg.DeliveryTag, event.OrderNumber, event.UserID, len(event.Items), event.TotalAmount)
	return nil
}
