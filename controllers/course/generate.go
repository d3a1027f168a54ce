package controllers

import (
	"bufio"
	"context"
	"elimu/agents"
	"elimu/database"
	"elimu/middleware"
	courseModels "elimu/models/course"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"gorm.io/datatypes"
)

// GenerateCourseRequest is the validated generation body
type GenerateCourseRequest struct {
	Topic      string `json:"topic"`
	Subject    string `json:"subject"`
	GradeLevel string `json:"grade_level"`
	Difficulty string `json:"difficulty"`
}

// writeEvent pushes one JSON event onto the open SSE stream and flushes it.
// Events go out in call order; there is no batching.
func writeEvent(w *bufio.Writer, event agents.ProgressEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling progress event: %v", err)
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
	if err := w.Flush(); err != nil {
		// Client went away; the pipeline keeps running to completion
		log.Printf("Error flushing progress event: %v", err)
	}
}

// GenerateCourseStream runs the course pipeline (planner → lessons → quizzes
// → persistence) and relays progress over a text/event-stream response
func GenerateCourseStream(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedGenerate").(*GenerateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		runCoursePipeline(userID, reqData, defaultCourseSteps(), func(event agents.ProgressEvent) {
			writeEvent(w, event)
		})
	}))

	return nil
}

// coursePipelineSteps are the agent calls the pipeline runs, injectable so
// orchestration can be driven without a live model
type coursePipelineSteps struct {
	outline func(ctx context.Context, topic, gradeLevel, subject, difficulty string) (*agents.CourseOutline, error)
	lesson  func(ctx context.Context, outline *agents.CourseOutline, section, gradeLevel string) (*agents.LessonDraft, error)
	quiz    func(ctx context.Context, lessonTitle, lessonContent string, questionCount int) (*agents.QuizDraft, error)
}

func defaultCourseSteps() coursePipelineSteps {
	return coursePipelineSteps{
		outline: agents.GenerateCourseOutline,
		lesson:  agents.GenerateLesson,
		quiz:    agents.GenerateQuiz,
	}
}

// runCoursePipeline executes the fixed step sequence. Any step failing
// aborts the whole pipeline with one final error event; there is no retry
// and no partial-result resumption.
func runCoursePipeline(userID uint, req *GenerateCourseRequest, steps coursePipelineSteps, emit agents.ProgressSink) {
	// The pipeline deliberately runs on a background context: a client
	// disconnect does not cancel generation already in flight
	ctx := context.Background()

	emit(agents.ProgressEvent{Type: agents.EventStepStart, Step: 1, Message: "Planning your course...", Percent: 5})

	outline, err := steps.outline(ctx, req.Topic, req.GradeLevel, req.Subject, req.Difficulty)
	if err != nil {
		log.Printf("Course pipeline failed at planner: %v", err)
		emit(agents.ProgressEvent{Type: agents.EventError, Message: err.Error()})
		return
	}

	emit(agents.ProgressEvent{Type: agents.EventStepComplete, Step: 1, Message: "Course planned", Percent: 15, Data: outline})

	totalSections := len(outline.Sections)
	lessons := make([]*agents.LessonDraft, 0, totalSections)
	quizzes := make([]*agents.QuizDraft, 0, totalSections)

	for i, section := range outline.Sections {
		percent := 15 + (i*70)/maxInt(totalSections, 1)

		emit(agents.ProgressEvent{Type: agents.EventStepStart, Step: 2 + i, Message: "Writing lesson: " + section, Percent: percent})

		lesson, err := steps.lesson(ctx, outline, section, req.GradeLevel)
		if err != nil {
			log.Printf("Course pipeline failed at lesson %q: %v", section, err)
			emit(agents.ProgressEvent{Type: agents.EventError, Message: err.Error()})
			return
		}

		quiz, err := steps.quiz(ctx, lesson.Title, lesson.Content, 5)
		if err != nil {
			log.Printf("Course pipeline failed at quiz %q: %v", section, err)
			emit(agents.ProgressEvent{Type: agents.EventError, Message: err.Error()})
			return
		}

		lessons = append(lessons, lesson)
		quizzes = append(quizzes, quiz)

		emit(agents.ProgressEvent{Type: agents.EventStepComplete, Step: 2 + i, Message: "Lesson ready: " + lesson.Title, Percent: percent + 70/maxInt(totalSections, 1)})
	}

	emit(agents.ProgressEvent{Type: agents.EventStepStart, Step: 2 + totalSections, Message: "Saving your course...", Percent: 90})

	course, err := persistCourse(userID, req, outline, lessons, quizzes)
	if err != nil {
		log.Printf("Course pipeline failed at persistence: %v", err)
		emit(agents.ProgressEvent{Type: agents.EventError, Message: err.Error()})
		return
	}

	emit(agents.ProgressEvent{Type: agents.EventDone, Message: "Course generated", Percent: 100, Data: fiber.Map{
		"course_id": course.ID,
		"title":     course.Title,
		"lessons":   len(lessons),
	}})
}

// persistCourse writes lessons in one batch, quizzes in a second batch and
// the course row last. The batches are not atomic across tables.
func persistCourse(userID uint, req *GenerateCourseRequest, outline *agents.CourseOutline, lessonDrafts []*agents.LessonDraft, quizDrafts []*agents.QuizDraft) (*courseModels.Course, error) {
	db := database.Database.Db

	course := courseModels.Course{
		OwnerID:     userID,
		Title:       outline.Title,
		Description: outline.Description,
		Topic:       req.Topic,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		Difficulty:  outline.Difficulty,
		Tags:        mustJSON(outline.Tags),
		IsPublic:    true,
	}
	// The course row needs an id before its lessons can reference it, so it
	// is created first but only marked public after the content lands
	course.IsPublic = false
	if err := db.Create(&course).Error; err != nil {
		return nil, fmt.Errorf("failed to save course: %w", err)
	}

	lessons := make([]courseModels.Lesson, len(lessonDrafts))
	for i, draft := range lessonDrafts {
		lessons[i] = courseModels.Lesson{
			CourseID:   course.ID,
			Title:      draft.Title,
			Content:    draft.Content,
			Objectives: mustJSON(draft.Objectives),
			OrderIndex: i,
		}
	}
	if len(lessons) > 0 {
		if err := db.Create(&lessons).Error; err != nil {
			return nil, fmt.Errorf("failed to save lessons: %w", err)
		}
	}

	quizzes := make([]courseModels.Quiz, len(quizDrafts))
	for i, draft := range quizDrafts {
		var lessonID uint
		if i < len(lessons) {
			lessonID = lessons[i].ID
		}
		quizzes[i] = courseModels.Quiz{
			CourseID:  course.ID,
			LessonID:  lessonID,
			Title:     draft.Title,
			Questions: mustJSON(draft.Questions),
		}
	}
	if len(quizzes) > 0 {
		if err := db.Create(&quizzes).Error; err != nil {
			return nil, fmt.Errorf("failed to save quizzes: %w", err)
		}
	}

	if err := db.Model(&course).Update("is_public", true).Error; err != nil {
		return nil, fmt.Errorf("failed to publish course: %w", err)
	}
	course.IsPublic = true

	return &course, nil
}

// mustJSON marshals v into a JSON column value, falling back to an empty array
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
