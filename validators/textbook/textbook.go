package textbookValidator

import (
	textbookController "elimu/controllers/textbook"
	"elimu/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Generate validator middleware
func Generate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(textbookController.GenerateTextbookRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.GradeLevel) == "" {
			errors["grade_level"] = "Grade level is required!"
		}
		if strings.TrimSpace(reqData.Subject) == "" {
			errors["subject"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.Strand) == "" {
			errors["strand"] = "Strand is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTextbook", reqData)
		return c.Next()
	}
}
