package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz holds the generated questions for one lesson
type Quiz struct {
	gorm.Model
	CourseID  uint           `json:"course_id" gorm:"index;not null"`
	LessonID  uint           `json:"lesson_id" gorm:"index"`
	Title     string         `json:"title"`
	Questions datatypes.JSON `json:"questions"` // JSON array: question, options, answer index, explanation
	IsDeleted bool           `gorm:"default:false"`
}

// QuizAttempt represents a student's submission for a quiz
type QuizAttempt struct {
	gorm.Model
	UserID        uint           `json:"user_id" gorm:"index;not null"`
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	Answers       datatypes.JSON `json:"answers"` // JSON array of selected option indexes
	Score         int            `json:"score"`   // clamped to [0,100]
	AttemptNumber int            `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool           `gorm:"default:false"`
}
