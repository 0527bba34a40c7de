package main

import (
	"log"

	"planning-backend/config"
	"planning-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.ConnectDB()

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupOrganizationRoutes(app, config.DB)
	routes.SetupObjectiveRoutes(app, config.DB)
	routes.SetupInitiativeRoutes(app, config.DB)
	routes.SetupMeasureRoutes(app, config.DB)
	routes.SetupActivityRoutes(app, config.DB)
	routes.SetupPlanRoutes(app, config.DB)
	routes.SetupCostingRoutes(app, config.DB)

	port := config.GetEnv("APP_PORT", "3000")
	log.Printf("Server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
