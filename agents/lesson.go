package agents

import (
	"context"
	"fmt"
)

// GenerateLesson asks the lesson agent to write the content for one section
// of a planned course
func GenerateLesson(ctx context.Context, outline *CourseOutline, section, gradeLevel string) (*LessonDraft, error) {
	prompt := fmt.Sprintf(`You are a CBC tutor writing a lesson for a %s learner in Kenya.

Course: %s
Course description: %s
Lesson to write: %s

Respond with JSON only, in this exact shape:
{
  "title": "%s",
  "content": "the full lesson text in markdown, 300-500 words, with local Kenyan examples",
  "objectives": ["objective 1", "objective 2"]
}`,
		gradeLevel, outline.Title, outline.Description, section, section)

	var lesson LessonDraft
	if err := GenerateJSON(ctx, prompt, &lesson); err != nil {
		return nil, fmt.Errorf("lesson agent: %w", err)
	}

	if lesson.Objectives == nil {
		lesson.Objectives = []string{}
	}
	if lesson.Title == "" {
		lesson.Title = section
	}
	return &lesson, nil
}
