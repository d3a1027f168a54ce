package gamificationValidator

import (
	gamificationController "elimu/controllers/gamification"
	"elimu/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AwardXP validator middleware
func AwardXP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(gamificationController.XPAwardRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount < 0 {
			errors["amount"] = "Amount cannot be negative!"
		}
		if reqData.Multiplier < 0 {
			errors["multiplier"] = "Multiplier cannot be negative!"
		}
		if strings.TrimSpace(reqData.Source) == "" {
			errors["source"] = "Source is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedXP", reqData)
		return c.Next()
	}
}
