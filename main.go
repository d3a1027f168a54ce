package main

import (
	"elimu/config"
	"elimu/curriculum"
	"elimu/database"
	adminRoutes "elimu/routers/adminRoutes"
	assessmentRoutes "elimu/routers/assessmentRoutes"
	authRoutes "elimu/routers/authRoutes"
	careerRoutes "elimu/routers/careerRoutes"
	courseRoutes "elimu/routers/courseRoutes"
	gamificationRoutes "elimu/routers/gamificationRoutes"
	notificationRoutes "elimu/routers/notificationRoutes"
	resourceRoutes "elimu/routers/resourceRoutes"
	speechRoutes "elimu/routers/speechRoutes"
	textbookRoutes "elimu/routers/textbookRoutes"
	tutorRoutes "elimu/routers/tutorRoutes"
	"elimu/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if err := curriculum.Load(config.AppConfig.CurriculumFile); err != nil {
		log.Fatalf("Failed to load curriculum data: %v", err)
	}

	utils.StartStreakScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	textbookRoutes.SetupTextbookRoutes(app)
	tutorRoutes.SetupTutorRoutes(app)
	careerRoutes.SetupCareerRoutes(app)
	gamificationRoutes.SetupGamificationRoutes(app)
	assessmentRoutes.SetupAssessmentRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	resourceRoutes.SetupResourceRoutes(app)
	speechRoutes.SetupSpeechRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
