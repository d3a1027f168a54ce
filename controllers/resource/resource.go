package resourceController

import (
	"context"
	"elimu/agents"
	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListResources returns dashboard resources filtered by grade and subject.
// When the filter matches nothing, generation kicks off in the background and
// the response tells the client to poll again.
func ListResources(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	grade := c.Query("grade")
	subject := c.Query("subject")
	if grade == "" || subject == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "grade and subject are required!", nil)
	}

	var resources []models.Resource
	if err := database.Database.Db.
		Where("grade_level = ? AND subject = ? AND is_deleted = ?", grade, subject, false).
		Order("created_at desc").
		Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	if len(resources) == 0 {
		go generateResources(userID, grade, subject)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources are being generated!", fiber.Map{
			"resources":  []models.Resource{},
			"generating": true,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources":  resources,
		"generating": false,
	})
}

// generateResources runs the resource agent in the background and notifies the
// requesting user when the batch lands
func generateResources(userID uint, grade, subject string) {
	drafts, err := agents.GenerateResources(context.Background(), grade, subject)
	if err != nil {
		log.Printf("Resource generation failed for %s/%s: %v", grade, subject, err)
		return
	}
	if len(drafts) == 0 {
		return
	}

	db := database.Database.Db

	// Another request may have raced the generation; keep the first batch
	var count int64
	db.Model(&models.Resource{}).
		Where("grade_level = ? AND subject = ? AND is_deleted = ?", grade, subject, false).
		Count(&count)
	if count > 0 {
		return
	}

	resources := make([]models.Resource, len(drafts))
	for i, draft := range drafts {
		resources[i] = models.Resource{
			GradeLevel:   grade,
			Subject:      subject,
			Title:        draft.Title,
			Description:  draft.Description,
			ResourceType: draft.ResourceType,
			URL:          draft.URL,
		}
	}
	if err := db.Create(&resources).Error; err != nil {
		log.Printf("Error saving generated resources: %v", err)
		return
	}

	notification := models.Notification{
		UserID: userID,
		Title:  "New resources ready",
		Body:   "Fresh " + subject + " resources for " + grade + " are now on your dashboard.",
		Kind:   "CONTENT_READY",
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Error creating resource notification: %v", err)
	}
}
