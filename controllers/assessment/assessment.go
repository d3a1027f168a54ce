package assessmentController

import (
	"context"
	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	"elimu/utils"
	"encoding/json"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateAssessmentRequest is the validated assessment body
type CreateAssessmentRequest struct {
	Title       string                   `json:"title"`
	Subject     string                   `json:"subject"`
	GradeLevel  string                   `json:"grade_level"`
	Description string                   `json:"description"`
	Questions   []map[string]interface{} `json:"questions"`
}

// CreateAssessment creates a teacher-owned assessment document
func CreateAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAssessment").(*CreateAssessmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	questions, err := json.Marshal(reqData.Questions)
	if err != nil {
		questions = []byte("[]")
	}

	assessment := models.Assessment{
		TeacherID:   userID,
		Title:       reqData.Title,
		Subject:     reqData.Subject,
		GradeLevel:  reqData.GradeLevel,
		Description: reqData.Description,
		Questions:   datatypes.JSON(questions),
	}
	if err := database.Database.Db.Create(&assessment).Error; err != nil {
		log.Printf("Error creating assessment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assessment created successfully!", assessment)
}

// ListAssessments lists the teacher's assessments with attached materials
func ListAssessments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var assessments []models.Assessment
	if err := db.Where("teacher_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&assessments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assessments!", nil)
	}

	type AssessmentWithMaterials struct {
		models.Assessment
		Materials []models.UploadedMaterial `json:"materials"`
	}

	result := make([]AssessmentWithMaterials, len(assessments))
	for i, assessment := range assessments {
		result[i] = AssessmentWithMaterials{Assessment: assessment}

		var materials []models.UploadedMaterial
		db.Where("assessment_id = ? AND is_deleted = ?", assessment.ID, false).Find(&materials)
		result[i].Materials = materials
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessments fetched successfully!", result)
}

// DeleteAssessment removes an assessment owned by the teacher
func DeleteAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assessmentID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assessment id!", nil)
	}

	db := database.Database.Db

	var assessment models.Assessment
	if err := db.Where("id = ? AND teacher_id = ? AND is_deleted = ?", assessmentID, userID, false).
		First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}

	if err := db.Model(&assessment).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assessment!", nil)
	}
	db.Model(&models.UploadedMaterial{}).Where("assessment_id = ?", assessmentID).Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment deleted successfully!", fiber.Map{
		"id": assessment.ID,
	})
}

// UploadMaterial attaches an uploaded file to an assessment, storing the
// bytes in the content bucket
func UploadMaterial(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assessmentID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assessment id!", nil)
	}

	db := database.Database.Db

	var assessment models.Assessment
	if err := db.Where("id = ? AND teacher_id = ? AND is_deleted = ?", assessmentID, userID, false).
		First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	key := utils.ObjectKey("materials", fileHeader.Filename)

	fileURL, err := utils.UploadToBucket(context.Background(), key, mimeType, data)
	if err != nil {
		log.Printf("Error uploading material: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload file!", nil)
	}

	material := models.UploadedMaterial{
		AssessmentID: uint(assessmentID),
		TeacherID:    userID,
		FileName:     fileHeader.Filename,
		FileURL:      fileURL,
		MimeType:     mimeType,
		SizeBytes:    fileHeader.Size,
	}
	if err := db.Create(&material).Error; err != nil {
		log.Printf("Error saving material record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file record!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material uploaded successfully!", material)
}

// DeleteMaterial removes an uploaded material owned by the teacher
func DeleteMaterial(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	materialID, err := c.ParamsInt("materialId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}

	db := database.Database.Db

	var material models.UploadedMaterial
	if err := db.Where("id = ? AND teacher_id = ? AND is_deleted = ?", materialID, userID, false).
		First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	if err := db.Model(&material).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material deleted successfully!", fiber.Map{
		"id": material.ID,
	})
}
