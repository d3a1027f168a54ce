package controllers

import (
	"elimu/database"
	"elimu/middleware"
	courseModels "elimu/models/course"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ListQuery carries validated pagination values
type ListQuery struct {
	Page  *int `json:"page"`
	Limit *int `json:"limit"`
}

// GetMyCourses lists the logged-in user's courses, paged
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*ListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("owner_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Offset(offset).Limit(*reqData.Limit).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var total int64
	database.Database.Db.Model(&courseModels.Course{}).
		Where("owner_id = ? AND is_deleted = ?", userID, false).Count(&total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   total,
		"page":    *reqData.Page,
		"limit":   *reqData.Limit,
	})
}

// MatchesDiscovery reports whether a public course matches a case-insensitive
// search query (over title, description, topic and tags) and a difficulty
// filter. Empty query or difficulty matches everything.
func MatchesDiscovery(course *courseModels.Course, query, difficulty string) bool {
	if difficulty != "" && course.Difficulty != difficulty {
		return false
	}
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(course.Title), q) ||
		strings.Contains(strings.ToLower(course.Description), q) ||
		strings.Contains(strings.ToLower(course.Topic), q) {
		return true
	}

	var tags []string
	if len(course.Tags) > 0 {
		if err := json.Unmarshal(course.Tags, &tags); err == nil {
			for _, tag := range tags {
				if strings.Contains(strings.ToLower(tag), q) {
					return true
				}
			}
		}
	}
	return false
}

// FilterCourses applies MatchesDiscovery in memory, capping at limit and
// reporting whether more rows existed than returned
func FilterCourses(courses []courseModels.Course, query, difficulty string, limit int) (matched []courseModels.Course, hasMore bool) {
	matched = make([]courseModels.Course, 0, limit)
	for i := range courses {
		if !MatchesDiscovery(&courses[i], query, difficulty) {
			continue
		}
		if len(matched) >= limit {
			hasMore = true
			break
		}
		matched = append(matched, courses[i])
	}
	return matched, hasMore
}

// DiscoverCourses searches public courses. Filtering happens in memory after
// the fetch; there is no query planner behind the tag search.
func DiscoverCourses(c *fiber.Ctx) error {
	query := c.Query("q")
	difficulty := c.Query("difficulty")
	limit := c.QueryInt("limit", 20)
	if limit < 1 {
		limit = 20
	}

	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("is_public = ? AND is_deleted = ?", true, false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to discover courses!", nil)
	}

	matched, hasMore := FilterCourses(courses, query, difficulty, limit)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses discovered successfully!", fiber.Map{
		"courses": matched,
		"hasMore": hasMore,
	})
}

// GetCourseDetails returns one course with its lessons and quizzes
func GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", courseID, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []courseModels.Lesson
	database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").
		Find(&lessons)

	var quizzes []courseModels.Quiz
	database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Find(&quizzes)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":  course,
		"lessons": lessons,
		"quizzes": quizzes,
	})
}

// DeleteCourse soft-deletes a course owned by the logged-in user
func DeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", courseID, userID, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", fiber.Map{
		"id": course.ID,
	})
}
