package tutorValidator

import (
	tutorController "elimu/controllers/tutor"
	"elimu/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidContentType(contentType string) bool {
	switch contentType {
	case "read", "podcast", "immersive", "quiz":
		return true
	}
	return false
}

// SaveContent validator middleware
func SaveContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(tutorController.SaveContentRequest)
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
		if strings.TrimSpace(reqData.Substrand) == "" {
			errors["substrand"] = "Substrand is required!"
		}
		if !isValidContentType(reqData.ContentType) {
			errors["content_type"] = "Content type must be read, podcast, immersive or quiz!"
		}
		if reqData.Body == nil {
			errors["body"] = "Body is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}
