package controllers

import (
	"bytes"
	"context"
	"elimu/agents"
	"elimu/config"
	"elimu/database"
	courseModels "elimu/models/course"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupCourseDb(t *testing.T) *gorm.DB {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() {
		db.Exec("DELETE FROM courses")
		db.Exec("DELETE FROM lessons")
		db.Exec("DELETE FROM quizzes")
		db.Exec("DELETE FROM quiz_attempts")
		db.Exec("DELETE FROM user_gamifications")
		db.Exec("DELETE FROM xp_transactions")
	})

	return db
}

func fakeCourseSteps() coursePipelineSteps {
	return coursePipelineSteps{
		outline: func(ctx context.Context, topic, gradeLevel, subject, difficulty string) (*agents.CourseOutline, error) {
			return &agents.CourseOutline{
				Title:       "Fractions",
				Description: "Working with fractions",
				Sections:    []string{"Halves", "Quarters"},
				Tags:        []string{"numbers"},
				Difficulty:  difficulty,
			}, nil
		},
		lesson: func(ctx context.Context, outline *agents.CourseOutline, section, gradeLevel string) (*agents.LessonDraft, error) {
			return &agents.LessonDraft{
				Title:      section,
				Content:    "Lesson on " + section,
				Objectives: []string{"understand " + section},
			}, nil
		},
		quiz: func(ctx context.Context, lessonTitle, lessonContent string, questionCount int) (*agents.QuizDraft, error) {
			return &agents.QuizDraft{
				Title: lessonTitle + " quiz",
				Questions: []agents.QuizQuestion{
					{Question: "q", Options: []string{"a", "b"}, AnswerIndex: 0},
				},
			}, nil
		},
	}
}

func collectEvents(events *[]agents.ProgressEvent) agents.ProgressSink {
	return func(event agents.ProgressEvent) {
		*events = append(*events, event)
	}
}

func TestRunCoursePipeline_EmitsOrderedEventsEndingWithDone(t *testing.T) {
	db := setupCourseDb(t)

	var events []agents.ProgressEvent
	req := &GenerateCourseRequest{Topic: "fractions", Subject: "mathematics", GradeLevel: "grade4", Difficulty: "beginner"}

	runCoursePipeline(1, req, fakeCourseSteps(), collectEvents(&events))

	require.NotEmpty(t, events)
	assert.Equal(t, agents.EventStepStart, events[0].Type)
	assert.Equal(t, agents.EventDone, events[len(events)-1].Type)

	// Every step-start is answered by a step-complete before the next starts
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

	// The course landed with its lessons and quizzes, published last
	var course courseModels.Course
	require.NoError(t, db.Where("owner_id = ?", 1).First(&course).Error)
	assert.True(t, course.IsPublic)

	var lessonCount, quizCount int64
	db.Model(&courseModels.Lesson{}).Where("course_id = ?", course.ID).Count(&lessonCount)
	db.Model(&courseModels.Quiz{}).Where("course_id = ?", course.ID).Count(&quizCount)
	assert.Equal(t, int64(2), lessonCount)
	assert.Equal(t, int64(2), quizCount)
}

func TestRunCoursePipeline_FailingStepEmitsSingleErrorAndStops(t *testing.T) {
	setupCourseDb(t)

	steps := fakeCourseSteps()
	steps.lesson = func(ctx context.Context, outline *agents.CourseOutline, section, gradeLevel string) (*agents.LessonDraft, error) {
		return nil, errors.New("model unavailable")
	}

	var events []agents.ProgressEvent
	req := &GenerateCourseRequest{Topic: "fractions", Subject: "mathematics", GradeLevel: "grade4", Difficulty: "beginner"}

	runCoursePipeline(1, req, steps, collectEvents(&events))

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

func TestSubmitQuiz_QuizMustBelongToCourse(t *testing.T) {
	db := setupCourseDb(t)

	course := courseModels.Course{OwnerID: 1, Title: "Fractions", IsPublic: true}
	require.NoError(t, db.Create(&course).Error)

	questions, _ := json.Marshal([]agents.QuizQuestion{
		{Question: "q", Options: []string{"a", "b"}, AnswerIndex: 1},
	})
	quiz := courseModels.Quiz{CourseID: course.ID, Title: "Quiz", Questions: questions}
	require.NoError(t, db.Create(&quiz).Error)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", uint(1))
		return c.Next()
	})
	app.Post("/course/:id/quiz/:quizId/submit", SubmitQuiz)

	submit := func(path string) int {
		body := bytes.NewReader([]byte(`{"answers":[1]}`))
		req := httptest.NewRequest("POST", path, body)
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	quizID := strconv.FormatUint(uint64(quiz.ID), 10)
	courseID := strconv.FormatUint(uint64(course.ID), 10)

	// The quiz id resolves only under its own course
	assert.Equal(t, fiber.StatusNotFound, submit("/course/999999/quiz/"+quizID+"/submit"))
	assert.Equal(t, fiber.StatusOK, submit("/course/"+courseID+"/quiz/"+quizID+"/submit"))
}
