package courseValidator

import (
	controllers "elimu/controllers/course"
	"elimu/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// List validator middleware: fills pagination defaults
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.ListQuery)

		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		errors := make(map[string]string)
		if page < 1 {
			errors["page"] = "Page must be at least 1!"
		}
		if limit < 1 || limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Page = &page
		reqData.Limit = &limit

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// Generate validator middleware
func Generate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.GenerateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Topic) == "" {
			errors["topic"] = "Topic is required!"
		}
		if strings.TrimSpace(reqData.Subject) == "" {
			errors["subject"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.GradeLevel) == "" {
			errors["grade_level"] = "Grade level is required!"
		}
		switch reqData.Difficulty {
		case "", "beginner", "intermediate", "advanced":
		default:
			errors["difficulty"] = "Difficulty must be beginner, intermediate or advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.Difficulty == "" {
			reqData.Difficulty = "beginner"
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}
