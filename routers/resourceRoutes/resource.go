package resourceRoutes

import (
	resourceController "elimu/controllers/resource"
	"elimu/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupResourceRoutes(app *fiber.App) {
	resourceGroup := app.Group("/resource", middleware.JWTMiddleware)

	resourceGroup.Get("/list", resourceController.ListResources)
}
