package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"katalog/internal/handlers"
	"katalog/internal/middleware"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"
	"katalog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_HOST", "")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_NAME", "katalog")
	viper.SetDefault("JWT_SECRET", "katalog_dev_secret")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	jwtSecret := viper.GetString("JWT_SECRET")

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// --- Initialize RabbitMQ Client (optional) ---
	// Without a broker URL the API still runs; product events are skipped.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			logrus.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		logrus.Warn("RABBITMQ_URL not set, catalog events disabled")
	}

	// --- Initialize Repositories ---
	// Without a database host the in-memory repositories back the API, which
	// keeps local development self-contained.
	var db *gorm.DB
	var userRepo repositories.UserRepository
	var categoryRepo repositories.CategoryRepository
	var productRepo repositories.ProductRepository

	if host := viper.GetString("DATABASE_HOST"); host != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
			host,
			viper.GetString("DATABASE_PORT"),
			viper.GetString("DATABASE_USER"),
			viper.GetString("DATABASE_PASSWORD"),
			viper.GetString("DATABASE_NAME"),
		)
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}); err != nil {
			logrus.Fatalf("Failed to auto-migrate database: %v", err)
		}
		userRepo = repositories.NewGORMUserRepository(db)
		categoryRepo = repositories.NewGORMCategoryRepository(db)
		productRepo = repositories.NewGORMProductRepository(db)
	} else {
		logrus.Warn("DATABASE_HOST not set, using in-memory repositories")
		userRepo = repositories.NewMockUserRepository()
		categoryRepo = repositories.NewMockCategoryRepository()
		productRepo = repositories.NewMockProductRepository()
	}

	// --- Initialize Services ---
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, mqClient)
	authService := services.NewAuthService(userRepo, jwtSecret)

	// --- Initialize Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	authRequired := middleware.AuthRequired(authService)

	// --- API Routes ---
	userHandler.RegisterRoutes(app)
	categoryHandler.RegisterRoutes(app, authRequired)
	productHandler.RegisterRoutes(app, authRequired)
	authHandler.RegisterRoutes(app)

	// --- Greeting Endpoint ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello World!")
	})

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		databaseStatus := "connected"
		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.Ping()
			}
			if err != nil {
				status = "error"
				databaseStatus = "error"
			}
		} else {
			databaseStatus = "in-memory"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"database":  databaseStatus,
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			logrus.Info("Starting RabbitMQ consumer for catalog events...")
			messageHandler := func(msg amqp.Delivery) error {
				logrus.Infof("Received %s event (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeCatalogEvents(messageHandler); consumerErr != nil {
				logrus.Errorf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	logrus.Infof("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	logrus.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logrus.Errorf("Error during Fiber shutdown: %v", err)
	}

	logrus.Info("Server gracefully stopped")
}
