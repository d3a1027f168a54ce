package controllers

import (
	"elimu/agents"
	"elimu/database"
	"elimu/middleware"
	courseModels "elimu/models/course"
	"encoding/json"
	"log"

	gamificationController "elimu/controllers/gamification"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz grades a quiz attempt, clamps the score to [0,100] and awards XP
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	quizID, err := c.ParamsInt("quizId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	reqData := new(struct {
		Answers []int `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Answers == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Answers are required!", nil)
	}

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", quizID, courseID, false).
		First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []agents.QuizQuestion
	if err := json.Unmarshal(quiz.Questions, &questions); err != nil {
		log.Printf("Error parsing quiz questions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade quiz!", nil)
	}

	score := GradeQuiz(questions, reqData.Answers)

	var attemptCount int64
	db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quizID, false).
		Count(&attemptCount)

	attempt := courseModels.QuizAttempt{
		UserID:        userID,
		QuizID:        quiz.ID,
		Answers:       mustJSON(reqData.Answers),
		Score:         score,
		AttemptNumber: int(attemptCount) + 1,
	}
	if err := db.Create(&attempt).Error; err != nil {
		log.Printf("Error saving quiz attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz attempt!", nil)
	}

	// XP equals the score; first attempts earn full value, retries half
	multiplier := 1.0
	if attempt.AttemptNumber > 1 {
		multiplier = 0.5
	}
	xpResult, xpErr := gamificationController.AwardQuizXP(db, userID, score, multiplier)
	if xpErr != nil {
		log.Printf("Error awarding quiz XP: %v", xpErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", fiber.Map{
		"score":          score,
		"attempt_number": attempt.AttemptNumber,
		"xp_result":      xpResult,
	})
}

// GradeQuiz scores an answer sheet against the questions, as a percentage
// clamped to [0,100]
func GradeQuiz(questions []agents.QuizQuestion, answers []int) int {
	if len(questions) == 0 {
		return 0
	}

	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.AnswerIndex {
			correct++
		}
	}

	score := (correct * 100) / len(questions)
	return agents.ClampInt(score, 0, 100)
}
