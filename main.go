package main

import (
	"log"

	"simdiklat_backend/config"
	"simdiklat_backend/database"
	announcementRoutes "simdiklat_backend/routers/announcementRoutes"
	authRoutes "simdiklat_backend/routers/authRoutes"
	historyRoutes "simdiklat_backend/routers/historyRoutes"
	seminarRoutes "simdiklat_backend/routers/seminarRoutes"
	userRoutes "simdiklat_backend/routers/userRoutes"
	"simdiklat_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: config.AppConfig.FrontendURL != "*",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded files
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	seminarRoutes.SetupSeminarRoutes(app)
	historyRoutes.SetupHistoryRoutes(app)
	userRoutes.SetupUserRoutes(app)
	announcementRoutes.SetupAnnouncementRoutes(app)

	utils.InitializeSeminarScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
