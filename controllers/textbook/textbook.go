package textbookController

import (
	"bufio"
	"context"
	"elimu/agents"
	"elimu/database"
	"elimu/middleware"
	textbookModels "elimu/models/textbook"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"gorm.io/datatypes"
)

// GenerateTextbookRequest is the validated generation body
type GenerateTextbookRequest struct {
	GradeLevel string `json:"grade_level"`
	Subject    string `json:"subject"`
	Strand     string `json:"strand"`
}

func writeEvent(w *bufio.Writer, event agents.ProgressEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling progress event: %v", err)
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
	if err := w.Flush(); err != nil {
		log.Printf("Error flushing progress event: %v", err)
	}
}

// GenerateTextbookStream runs the four-step textbook chain (planner →
// instructional → creative → assembly) and relays progress as SSE
func GenerateTextbookStream(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTextbook").(*GenerateTextbookRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		runTextbookPipeline(userID, reqData, defaultTextbookSteps(), func(event agents.ProgressEvent) {
			writeEvent(w, event)
		})
	}))

	return nil
}

// textbookPipelineSteps are the agent calls the pipeline runs, injectable so
// orchestration can be driven without a live model
type textbookPipelineSteps struct {
	plan      func(ctx context.Context, gradeLevel, subject, strand string) (*agents.TextbookPlan, error)
	draft     func(ctx context.Context, plan *agents.TextbookPlan, chapter agents.ChapterPlan, gradeLevel string) (*agents.ChapterDraft, error)
	enrich    func(ctx context.Context, draft *agents.ChapterDraft, gradeLevel string) (*agents.ChapterDraft, error)
	summarize func(ctx context.Context, plan *agents.TextbookPlan, chapters []*agents.ChapterDraft) (string, error)
}

func defaultTextbookSteps() textbookPipelineSteps {
	return textbookPipelineSteps{
		plan:      agents.PlanTextbook,
		draft:     agents.DraftChapter,
		enrich:    agents.EnrichChapter,
		summarize: agents.SummarizeTextbook,
	}
}

func runTextbookPipeline(userID uint, req *GenerateTextbookRequest, steps textbookPipelineSteps, emit agents.ProgressSink) {
	ctx := context.Background()

	emit(agents.ProgressEvent{Type: agents.EventStepStart, Step: 1, Message: "Planning the textbook...", Percent: 5})

	plan, err := steps.plan(ctx, req.GradeLevel, req.Subject, req.Strand)
	if err != nil {
		log.Printf("Textbook pipeline failed at planner: %v", err)
		emit(agents.ProgressEvent{Type: agents.EventError, Message: err.Error()})
		return
	}

	emit(agents.ProgressEvent{Type: agents.EventStepComplete, Step: 1, Message: "Textbook planned", Percent: 15, Data: plan})

	total := len(plan.Chapters)
	chapters := make([]*agents.ChapterDraft, 0, total)

	for i, chapterPlan := range plan.Chapters {
		percent := 15 + (i*65)/maxInt(total, 1)

		emit(agents.ProgressEvent{Type: agents.EventStepStart, Step: 2 + i, Message: "Writing chapter: " + chapterPlan.Title, Percent: percent})

		draft, err := steps.draft(ctx, plan, chapterPlan, req.GradeLevel)
		if err != nil {
			log.Printf("Textbook pipeline failed at chapter %q: %v", chapterPlan.Title, err)
			emit(agents.ProgressEvent{Type: agents.EventError, Message: err.Error()})
			return
		}

		draft, err = steps.enrich(ctx, draft, req.GradeLevel)
		if err != nil {
			log.Printf("Textbook pipeline failed enriching %q: %v", chapterPlan.Title, err)
			emit(agents.ProgressEvent{Type: agents.EventError, Message: err.Error()})
			return
		}

		chapters = append(chapters, draft)

		emit(agents.ProgressEvent{Type: agents.EventStepComplete, Step: 2 + i, Message: "Chapter ready: " + draft.Title, Percent: percent + 65/maxInt(total, 1)})
	}

	emit(agents.ProgressEvent{Type: agents.EventStepStart, Step: 2 + total, Message: "Assembling the textbook...", Percent: 85})

	summary, err := steps.summarize(ctx, plan, chapters)
	if err != nil {
		log.Printf("Textbook pipeline failed at assembly: %v", err)
		emit(agents.ProgressEvent{Type: agents.EventError, Message: err.Error()})
		return
	}

	textbook, err := persistTextbook(userID, req, plan, summary, chapters)
	if err != nil {
		log.Printf("Textbook pipeline failed at persistence: %v", err)
		emit(agents.ProgressEvent{Type: agents.EventError, Message: err.Error()})
		return
	}

	emit(agents.ProgressEvent{Type: agents.EventDone, Message: "Textbook generated", Percent: 100, Data: fiber.Map{
		"textbook_id": textbook.ID,
		"title":       textbook.Title,
		"chapters":    len(chapters),
	}})
}

// persistTextbook writes chapters in one batch and the textbook row last.
// Regeneration overwrites an existing textbook for the same strand.
func persistTextbook(userID uint, req *GenerateTextbookRequest, plan *agents.TextbookPlan, summary string, drafts []*agents.ChapterDraft) (*textbookModels.Textbook, error) {
	db := database.Database.Db
	id := textbookModels.CompositeID(req.GradeLevel, req.Subject, req.Strand)

	// Regeneration overwrite: retire previous chapters for this id
	if err := db.Model(&textbookModels.Chapter{}).
		Where("textbook_id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true).Error; err != nil {
		return nil, fmt.Errorf("failed to clear previous chapters: %w", err)
	}

	chapters := make([]textbookModels.Chapter, len(drafts))
	for i, draft := range drafts {
		chapters[i] = textbookModels.Chapter{
			TextbookID: id,
			Title:      draft.Title,
			Content:    draft.Content,
			Activities: mustJSON(draft.Activities),
			OrderIndex: i,
		}
	}
	if len(chapters) > 0 {
		if err := db.Create(&chapters).Error; err != nil {
			return nil, fmt.Errorf("failed to save chapters: %w", err)
		}
	}

	textbook := textbookModels.Textbook{
		ID:         id,
		OwnerID:    userID,
		GradeLevel: req.GradeLevel,
		Subject:    req.Subject,
		Strand:     req.Strand,
		Title:      plan.Title,
		Summary:    summary,
	}
	if err := db.Save(&textbook).Error; err != nil {
		return nil, fmt.Errorf("failed to save textbook: %w", err)
	}

	return &textbook, nil
}

func mustJSON(v interface{}) datatypes.JSON {
	out, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(out)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// GetTextbook returns one textbook with its chapters by composite id
func GetTextbook(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Textbook id is required!", nil)
	}

	var textbook textbookModels.Textbook
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", id, false).
		First(&textbook).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Textbook not found!", nil)
	}

	var chapters []textbookModels.Chapter
	database.Database.Db.
		Where("textbook_id = ? AND is_deleted = ?", id, false).
		Order("order_index asc").
		Find(&chapters)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Textbook fetched successfully!", fiber.Map{
		"textbook": textbook,
		"chapters": chapters,
	})
}

// ListTextbooks lists textbooks, optionally filtered by grade and subject
func ListTextbooks(c *fiber.Ctx) error {
	query := database.Database.Db.Where("is_deleted = ?", false)

	if grade := c.Query("grade"); grade != "" {
		query = query.Where("grade_level = ?", grade)
	}
	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}

	var textbooks []textbookModels.Textbook
	if err := query.Order("created_at desc").Find(&textbooks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch textbooks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Textbooks fetched successfully!", textbooks)
}

// DeleteTextbook removes a textbook by its composite id. Returns 404 when
// the document does not exist; on success returns the removed id.
func DeleteTextbook(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Textbook id is required!", nil)
	}

	db := database.Database.Db

	var textbook textbookModels.Textbook
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&textbook).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Textbook not found!", nil)
	}

	if textbook.OwnerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the owner can delete this textbook!", nil)
	}

	if err := db.Model(&textbook).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete textbook!", nil)
	}
	db.Model(&textbookModels.Chapter{}).Where("textbook_id = ?", id).Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Textbook deleted successfully!", fiber.Map{
		"id": id,
	})
}
