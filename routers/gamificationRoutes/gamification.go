package gamificationRoutes

import (
	gamificationController "elimu/controllers/gamification"
	"elimu/middleware"
	gamificationValidator "elimu/validators/gamification"

	"github.com/gofiber/fiber/v2"
)

func SetupGamificationRoutes(app *fiber.App) {
	gamificationGroup := app.Group("/gamification")

	gamificationGroup.Get("/profile", middleware.JWTMiddleware, gamificationController.GetProfile)
	gamificationGroup.Post("/xp", middleware.JWTMiddleware, gamificationValidator.AwardXP(), gamificationController.AwardXP)
	gamificationGroup.Get("/xp/history", middleware.JWTMiddleware, gamificationController.GetXPHistory)
	gamificationGroup.Post("/streak", middleware.JWTMiddleware, gamificationController.CheckStreak)
}
