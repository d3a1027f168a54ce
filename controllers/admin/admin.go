package adminController

import (
	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	courseModels "elimu/models/course"
	textbookModels "elimu/models/textbook"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns platform-wide counts for the admin dashboard
func GetStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var students, teachers, courses, publishedCourses, textbooks, careerPaths, tutorContents, quizAttempts int64

	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "STUDENT", false).Count(&students)
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "TEACHER", false).Count(&teachers)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&courses)
	db.Model(&courseModels.Course{}).Where("is_public = ? AND is_deleted = ?", true, false).Count(&publishedCourses)
	db.Model(&textbookModels.Textbook{}).Where("is_deleted = ?", false).Count(&textbooks)
	db.Model(&models.CareerPath{}).Where("is_deleted = ?", false).Count(&careerPaths)
	db.Model(&models.TutorContent{}).Where("is_deleted = ?", false).Count(&tutorContents)
	db.Model(&courseModels.QuizAttempt{}).Where("is_deleted = ?", false).Count(&quizAttempts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Platform stats fetched successfully!", fiber.Map{
		"students":          students,
		"teachers":          teachers,
		"courses":           courses,
		"published_courses": publishedCourses,
		"textbooks":         textbooks,
		"career_paths":      careerPaths,
		"tutor_contents":    tutorContents,
		"quiz_attempts":     quizAttempts,
	})
}

// ListUsers returns a paginated user listing for the admin dashboard
func ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := database.Database.Db.Where("is_deleted = ?", false)
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}
