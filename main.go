package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/Vai201/Rail-Madad-Chatbot/database"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/lookup"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/models"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/routes"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		// Try multiple locations for .env file
		err := godotenv.Load(".env")
		if err != nil {
			err = godotenv.Load("environments/.env.development")
			if err != nil {
				log.Println("⚠️  No .env file found - checking environment variables")
			}
		}
	}

	// Initialize storage
	var store storage.Store

	// Check if we should use memory store (for testing)
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		// Connect to database
		log.Println("📦 Connecting to PostgreSQL database...")
		if err := database.Connect(); err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		// Run migrations (idempotent, safe to re-run)
		log.Println("🔄 Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.Query{},
			&models.Complaint{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		// Use database store
		store = storage.NewDatabaseStore(database.DB)
		log.Println("✅ Using PostgreSQL database storage")
	}
	storage.SetStore(store)

	// Load the read-only lookup tables. A failed load must not crash the
	// process: the service starts degraded, dependent intents fail closed
	// and /health reports 503.
	pnrPath := os.Getenv("PNR_DATA_PATH")
	if pnrPath == "" {
		pnrPath = "data/pnr_database.csv"
	}
	stationPath := os.Getenv("STATION_DATA_PATH")
	if stationPath == "" {
		stationPath = "data/stations.csv"
	}

	pnrs, err := lookup.LoadPNRStore(pnrPath)
	if err != nil {
		log.Printf("⚠️  PNR table failed to load - PNR verification will be unavailable: %v", err)
	}
	stations, err := lookup.LoadStationStore(stationPath)
	if err != nil {
		log.Printf("⚠️  Station table failed to load - station lookup will be unavailable: %v", err)
	}

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Rail Madad Chatbot Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Setup routes
	routes.SetupRoutes(app, store, pnrs, stations)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 Rail Madad Chatbot Backend starting on port %s", port)
	log.Printf("📊 Storage: %s", getStorageType())
	log.Printf("🌍 Environment: %s", getEnvironment())
	log.Printf("🎫 PNR records: %d (loaded: %v)", pnrs.Len(), pnrs.Loaded())
	log.Printf("🚉 Stations: %d (loaded: %v)", stations.Len(), stations.Loaded())
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func getEnvironment() string {
	if os.Getenv("INSTANCE_CONNECTION_NAME") != "" {
		return "Production (Cloud Run)"
	}
	return "Development (Local)"
}

func getStorageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}
