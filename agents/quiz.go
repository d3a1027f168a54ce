package agents

import (
	"context"
	"fmt"
)

// GenerateQuiz asks the quiz agent for multiple-choice questions covering a lesson
func GenerateQuiz(ctx context.Context, lessonTitle, lessonContent string, questionCount int) (*QuizDraft, error) {
	if questionCount <= 0 {
		questionCount = 5
	}

	prompt := fmt.Sprintf(`You are a CBC assessment writer. Write %d multiple choice questions
testing the lesson below.

Lesson: %s

%s

Respond with JSON only, in this exact shape:
{
  "title": "quiz title",
  "questions": [
    {
      "question": "question text",
      "options": ["option A", "option B", "option C", "option D"],
      "answer_index": 0,
      "explanation": "why the answer is correct"
    }
  ]
}
Every question must have exactly 4 options and answer_index between 0 and 3.`,
		questionCount, lessonTitle, lessonContent)

	var quiz QuizDraft
	if err := GenerateJSON(ctx, prompt, &quiz); err != nil {
		return nil, fmt.Errorf("quiz agent: %w", err)
	}

	normalizeQuiz(&quiz)
	if quiz.Title == "" {
		quiz.Title = "Quiz: " + lessonTitle
	}
	return &quiz, nil
}
