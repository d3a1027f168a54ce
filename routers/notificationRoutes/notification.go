package notificationRoutes

import (
	notificationController "elimu/controllers/notification"
	"elimu/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification", middleware.JWTMiddleware)

	notificationGroup.Get("/list", notificationController.ListNotifications)
	notificationGroup.Post("/read-all", notificationController.MarkAllRead)
	notificationGroup.Post("/:id/read", notificationController.MarkRead)
	notificationGroup.Delete("/:id", notificationController.DeleteNotification)
}
