package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/http/handlers"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate the upload table
	if err := models.AutoMigrateResources(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	uploadRepo := repositories.NewUploadRepository(db)
	uploadHandler := handlers.NewUploadHandler(uploadRepo, cfg)

	// Create Fiber app with a body limit matching the upload cap
	app := fiber.New(fiber.Config{
		AppName:   "AcidiLabs Pharma IMS Resources v1.0",
		BodyLimit: handlers.MaxUploadSize,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.GetAllowedOrigins(),
	}))

	// Serve stored attachments
	app.Static("/", cfg.UploadDir)

	// Upload actions
	actions := app.Group("/actions")
	actions.Post("/add-pdf", uploadHandler.AddPDF)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Resources server starting on port %s [MODE: %s]", cfg.ResourcesPort, cfg.AppMode)
	if err := app.Listen(":" + cfg.ResourcesPort); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
