package tutorController

import (
	"elimu/curriculum"
	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// mustJSON marshals v into a JSON column value, falling back to an empty object
func mustJSON(v interface{}) datatypes.JSON {
	out, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(out)
}

// SaveContentRequest is the validated cache write body
type SaveContentRequest struct {
	GradeLevel  string                 `json:"grade_level"`
	Subject     string                 `json:"subject"`
	Strand      string                 `json:"strand"`
	Substrand   string                 `json:"substrand"`
	ContentType string                 `json:"content_type"`
	Body        map[string]interface{} `json:"body"`
}

// SaveContent caches generated tutor content for a substrand. The cache is
// write-once per composite key: the first writer wins and a duplicate POST
// reports cached without overwriting.
func SaveContent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContent").(*SaveContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db
	cacheKey := models.TutorCacheKey(reqData.GradeLevel, reqData.Subject, reqData.Strand, reqData.Substrand, reqData.ContentType)

	var existing models.TutorContent
	if err := db.Where("cache_key = ?", cacheKey).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content already cached!", fiber.Map{
			"cached": true,
			"id":     existing.ID,
		})
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("Error checking tutor content cache: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save content!", nil)
	}

	content := models.TutorContent{
		CacheKey:    cacheKey,
		GradeLevel:  reqData.GradeLevel,
		Subject:     reqData.Subject,
		Strand:      reqData.Strand,
		Substrand:   reqData.Substrand,
		ContentType: reqData.ContentType,
		Body:        mustJSON(reqData.Body),
	}
	if err := db.Create(&content).Error; err != nil {
		// A concurrent writer got there first; the unique index on the
		// cache key makes the first write win
		if err := db.Where("cache_key = ?", cacheKey).First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Content already cached!", fiber.Map{
				"cached": true,
				"id":     existing.ID,
			})
		}
		log.Printf("Error saving tutor content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content cached successfully!", fiber.Map{
		"cached": false,
		"id":     content.ID,
	})
}

// GetContent looks up cached tutor content by its composite key
func GetContent(c *fiber.Ctx) error {
	grade := c.Query("grade")
	subject := c.Query("subject")
	strand := c.Query("strand")
	substrand := c.Query("substrand")
	contentType := c.Query("content_type")

	if grade == "" || subject == "" || strand == "" || substrand == "" || contentType == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "grade, subject, strand, substrand and content_type are required!", nil)
	}

	cacheKey := models.TutorCacheKey(grade, subject, strand, substrand, contentType)

	var content models.TutorContent
	if err := database.Database.Db.
		Where("cache_key = ? AND is_deleted = ?", cacheKey, false).
		First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", content)
}

// GetCurriculum returns the static CBC curriculum tree for a grade/subject pair
func GetCurriculum(c *fiber.Ctx) error {
	grade := c.Query("grade")
	subject := c.Query("subject")

	if grade == "" || subject == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "grade and subject are required!", nil)
	}

	subj, err := curriculum.Lookup(grade, subject)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Curriculum not found for this grade and subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Curriculum fetched successfully!", subj)
}
