package careerController

import (
	"context"
	"elimu/agents"
	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateCareerPath runs the career agent and persists the path with its
// ordered course list. Non-streaming: a single JSON response.
func GenerateCareerPath(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		Interest   string `json:"interest"`
		GradeLevel string `json:"grade_level"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Interest == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Interest is required!", nil)
	}

	plan, err := agents.GenerateCareerPath(context.Background(), reqData.Interest, reqData.GradeLevel)
	if err != nil {
		log.Printf("Career generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate career path!", nil)
	}

	db := database.Database.Db

	path := models.CareerPath{
		ID:          uuid.NewString(),
		OwnerID:     userID,
		Title:       plan.Title,
		Description: plan.Description,
		Field:       plan.Field,
	}
	if err := db.Create(&path).Error; err != nil {
		log.Printf("Error saving career path: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save career path!", nil)
	}

	courses := make([]models.CareerCourse, len(plan.Courses))
	for i, draft := range plan.Courses {
		courses[i] = models.CareerCourse{
			CareerPathID: path.ID,
			Title:        draft.Title,
			Description:  draft.Description,
			OrderIndex:   i,
		}
	}
	if len(courses) > 0 {
		if err := db.Create(&courses).Error; err != nil {
			log.Printf("Error saving career courses: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save career courses!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Career path generated successfully!", fiber.Map{
		"path":    path,
		"courses": courses,
	})
}

// ListCareerPaths returns all paths; they are globally readable
func ListCareerPaths(c *fiber.Ctx) error {
	var paths []models.CareerPath
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&paths).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch career paths!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Career paths fetched successfully!", paths)
}

// GetCareerPath returns one path with its ordered course list
func GetCareerPath(c *fiber.Ctx) error {
	id := c.Params("id")

	var path models.CareerPath
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", id, false).
		First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Career path not found!", nil)
	}

	var courses []models.CareerCourse
	database.Database.Db.
		Where("career_path_id = ? AND is_deleted = ?", id, false).
		Order("order_index asc").
		Find(&courses)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Career path fetched successfully!", fiber.Map{
		"path":    path,
		"courses": courses,
	})
}

// SaveCareerPath bookmarks a path for the logged-in user
func SaveCareerPath(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	pathID := c.Params("id")

	db := database.Database.Db

	var path models.CareerPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Career path not found!", nil)
	}

	var existing models.SavedCareerPath
	if err := db.Where("user_id = ? AND career_path_id = ? AND is_deleted = ?", userID, pathID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Career path already saved!", existing)
	} else if err != gorm.ErrRecordNotFound {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save career path!", nil)
	}

	saved := models.SavedCareerPath{
		UserID:       userID,
		CareerPathID: pathID,
	}
	if err := db.Create(&saved).Error; err != nil {
		log.Printf("Error saving career path reference: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save career path!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Career path saved successfully!", saved)
}

// UnsaveCareerPath removes a bookmark
func UnsaveCareerPath(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	pathID := c.Params("id")

	db := database.Database.Db

	var saved models.SavedCareerPath
	if err := db.Where("user_id = ? AND career_path_id = ? AND is_deleted = ?", userID, pathID, false).
		First(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Saved career path not found!", nil)
	}

	if err := db.Model(&saved).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unsave career path!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Career path unsaved successfully!", fiber.Map{
		"career_path_id": pathID,
	})
}

// GetSavedCareerPaths lists the user's bookmarked paths
func GetSavedCareerPaths(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var saved []models.SavedCareerPath
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch saved paths!", nil)
	}

	pathIDs := make([]string, len(saved))
	for i, s := range saved {
		pathIDs[i] = s.CareerPathID
	}

	var paths []models.CareerPath
	if len(pathIDs) > 0 {
		db.Where("id IN ? AND is_deleted = ?", pathIDs, false).Find(&paths)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Saved career paths fetched successfully!", paths)
}
