package main

import (
	"elearn/config"
	"elearn/database"
	"elearn/routers/assignmentRoutes"
	"elearn/routers/authRoutes"
	"elearn/routers/certificateRoutes"
	"elearn/routers/courseRoutes"
	"elearn/routers/liveClassRoutes"
	"elearn/routers/quizRoutes"
	"elearn/routers/recordedRoutes"
	"elearn/routers/reviewRoutes"
	"elearn/routers/userRoutes"
	"elearn/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded assignment files
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	liveClassRoutes.SetupLiveClassRoutes(app)
	recordedRoutes.SetupRecordedClassRoutes(app)
	assignmentRoutes.SetupAssignmentRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)

	// Background status sweep for scheduled live classes
	utils.InitializeLiveClassScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
