package textbookController

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"elimu/agents"
	"elimu/database"
	textbookModels "elimu/models/textbook"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTextbookApp(t *testing.T, userID uint) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() {
		db.Exec("DELETE FROM textbooks")
		db.Exec("DELETE FROM chapters")
	})

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	})
	app.Get("/textbook/list", ListTextbooks)
	app.Get("/textbook/:id", GetTextbook)
	app.Delete("/textbook/:id", DeleteTextbook)
	return app
}

func TestCompositeID(t *testing.T) {
	assert.Equal(t, "grade4_mathematics_numbers", textbookModels.CompositeID("grade4", "mathematics", "numbers"))
}

func TestDeleteTextbook_NotFound(t *testing.T) {
	app := setupTextbookApp(t, 1)

	req := httptest.NewRequest("DELETE", "/textbook/grade4_mathematics_numbers", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteTextbook_OwnerOnly(t *testing.T) {
	app := setupTextbookApp(t, 2)

	id := textbookModels.CompositeID("grade4", "science", "plants")
	require.NoError(t, database.Database.Db.Create(&textbookModels.Textbook{
		ID:         id,
		OwnerID:    1,
		GradeLevel: "grade4",
		Subject:    "science",
		Strand:     "plants",
		Title:      "Plants Around Us",
	}).Error)

	req := httptest.NewRequest("DELETE", "/textbook/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDeleteTextbook_RemovesAndReturnsID(t *testing.T) {
	app := setupTextbookApp(t, 1)

	id := textbookModels.CompositeID("grade5", "english", "grammar")
	require.NoError(t, database.Database.Db.Create(&textbookModels.Textbook{
		ID:         id,
		OwnerID:    1,
		GradeLevel: "grade5",
		Subject:    "english",
		Strand:     "grammar",
		Title:      "Grammar Basics",
	}).Error)

	req := httptest.NewRequest("DELETE", "/textbook/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Deleted textbooks no longer resolve
	req = httptest.NewRequest("GET", "/textbook/"+id, nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func fakeTextbookSteps() textbookPipelineSteps {
	return textbookPipelineSteps{
		plan: func(ctx context.Context, gradeLevel, subject, strand string) (*agents.TextbookPlan, error) {
			return &agents.TextbookPlan{
				Title: "Numbers",
				Chapters: []agents.ChapterPlan{
					{Title: "Counting"},
					{Title: "Place Value"},
				},
			}, nil
		},
		draft: func(ctx context.Context, plan *agents.TextbookPlan, chapter agents.ChapterPlan, gradeLevel string) (*agents.ChapterDraft, error) {
			return &agents.ChapterDraft{Title: chapter.Title, Content: "Draft of " + chapter.Title}, nil
		},
		enrich: func(ctx context.Context, draft *agents.ChapterDraft, gradeLevel string) (*agents.ChapterDraft, error) {
			draft.Activities = []string{"activity"}
			return draft, nil
		},
		summarize: func(ctx context.Context, plan *agents.TextbookPlan, chapters []*agents.ChapterDraft) (string, error) {
			return "A book about numbers", nil
		},
	}
}

func TestRunTextbookPipeline_EmitsOrderedEventsEndingWithDone(t *testing.T) {
	setupTextbookApp(t, 1)

	var events []agents.ProgressEvent
	req := &GenerateTextbookRequest{GradeLevel: "grade4", Subject: "mathematics", Strand: "numbers"}

	runTextbookPipeline(1, req, fakeTextbookSteps(), func(event agents.ProgressEvent) {
		events = append(events, event)
	})

	require.NotEmpty(t, events)
	assert.Equal(t, agents.EventStepStart, events[0].Type)
	assert.Equal(t, agents.EventDone, events[len(events)-1].Type)

	doneCount, errorCount := 0, 0
	openStep := false
	for _, event := range events {
		switch event.Type {
		case agents.EventStepStart:
			openStep = true
		case agents.EventStepComplete:
			assert.True(t, openStep, "step-complete without a step-start")
			openStep = false
		case agents.EventDone:
			doneCount++
		case agents.EventError:
			errorCount++
		}
	}
	assert.Equal(t, 1, doneCount)
	assert.Equal(t, 0, errorCount)

	id := textbookModels.CompositeID("grade4", "mathematics", "numbers")
	var textbook textbookModels.Textbook
	require.NoError(t, database.Database.Db.Where("id = ?", id).First(&textbook).Error)
	assert.Equal(t, "A book about numbers", textbook.Summary)

	var chapterCount int64
	database.Database.Db.Model(&textbookModels.Chapter{}).
		Where("textbook_id = ? AND is_deleted = ?", id, false).
		Count(&chapterCount)
	assert.Equal(t, int64(2), chapterCount)
}

func TestRunTextbookPipeline_FailingStepEmitsSingleErrorAndStops(t *testing.T) {
	setupTextbookApp(t, 1)

	steps := fakeTextbookSteps()
	steps.plan = func(ctx context.Context, gradeLevel, subject, strand string) (*agents.TextbookPlan, error) {
		return nil, errors.New("model unavailable")
	}

	var events []agents.ProgressEvent
	req := &GenerateTextbookRequest{GradeLevel: "grade4", Subject: "mathematics", Strand: "numbers"}

	runTextbookPipeline(1, req, steps, func(event agents.ProgressEvent) {
		events = append(events, event)
	})

	errorCount := 0
	for _, event := range events {
		if event.Type == agents.EventError {
			errorCount++
		}
		assert.NotEqual(t, agents.EventDone, event.Type)
	}
	assert.Equal(t, 1, errorCount)
	assert.Equal(t, agents.EventError, events[len(events)-1].Type)
}

func TestPersistTextbook_RegenerationRetiresOldChapters(t *testing.T) {
	setupTextbookApp(t, 1)

	req := &GenerateTextbookRequest{GradeLevel: "grade4", Subject: "mathematics", Strand: "numbers"}
	plan := &agents.TextbookPlan{Title: "Numbers"}

	first := []*agents.ChapterDraft{
		{Title: "Counting", Content: "v1"},
		{Title: "Place Value", Content: "v1"},
		{Title: "Rounding", Content: "v1"},
	}
	_, err := persistTextbook(1, req, plan, "first pass", first)
	require.NoError(t, err)

	second := []*agents.ChapterDraft{
		{Title: "Counting", Content: "v2"},
		{Title: "Place Value", Content: "v2"},
	}
	_, err = persistTextbook(1, req, plan, "second pass", second)
	require.NoError(t, err)

	id := textbookModels.CompositeID("grade4", "mathematics", "numbers")

	var active []textbookModels.Chapter
	require.NoError(t, database.Database.Db.
		Where("textbook_id = ? AND is_deleted = ?", id, false).
		Order("order_index asc").
		Find(&active).Error)

	require.Len(t, active, 2)
	assert.Equal(t, "v2", active[0].Content)
	assert.Equal(t, "v2", active[1].Content)
}

func TestListTextbooks_GradeAndSubjectFilter(t *testing.T) {
	app := setupTextbookApp(t, 1)

	db := database.Database.Db
	require.NoError(t, db.Create(&textbookModels.Textbook{
		ID: "grade4_mathematics_numbers", OwnerID: 1,
		GradeLevel: "grade4", Subject: "mathematics", Strand: "numbers", Title: "Numbers",
	}).Error)
	require.NoError(t, db.Create(&textbookModels.Textbook{
		ID: "grade5_science_plants", OwnerID: 1,
		GradeLevel: "grade5", Subject: "science", Strand: "plants", Title: "Plants",
	}).Error)

	req := httptest.NewRequest("GET", "/textbook/list?grade=grade4&subject=mathematics", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
