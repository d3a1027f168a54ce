package courseRoutes

import (
	courseController "elimu/controllers/course"
	"elimu/middleware"
	courseValidator "elimu/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Post("/generate/stream", middleware.JWTMiddleware, courseValidator.Generate(), courseController.GenerateCourseStream)
	courseGroup.Get("/list", middleware.JWTMiddleware, courseValidator.List(), courseController.GetMyCourses)
	courseGroup.Get("/discover", middleware.JWTMiddleware, courseController.DiscoverCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseController.GetCourseDetails)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, courseController.DeleteCourse)
	courseGroup.Post("/:id/quiz/:quizId/submit", middleware.JWTMiddleware, courseController.SubmitQuiz)
}
