package agents

import (
	"context"
	"fmt"
)

// GenerateCourseOutline asks the planner agent for a titled, ordered section
// list for a topic at a CBC grade level
func GenerateCourseOutline(ctx context.Context, topic, gradeLevel, subject, difficulty string) (*CourseOutline, error) {
	prompt := fmt.Sprintf(`You are a curriculum planner for the Kenyan Competency-Based Curriculum (CBC).
Plan a short course on the topic below for a %s learner.

Topic: %s
Subject: %s
Difficulty: %s

Respond with JSON only, in this exact shape:
{
  "title": "course title",
  "description": "2-3 sentence description",
  "difficulty": "%s",
  "tags": ["tag1", "tag2"],
  "sections": ["section title 1", "section title 2", "section title 3"]
}
Use between 3 and 6 sections. Keep titles short and learner friendly.`,
		gradeLevel, topic, subject, difficulty, difficulty)

	var outline CourseOutline
	if err := GenerateJSON(ctx, prompt, &outline); err != nil {
		return nil, fmt.Errorf("planner agent: %w", err)
	}

	normalizeOutline(&outline, difficulty)
	if outline.Title == "" {
		outline.Title = topic
	}
	return &outline, nil
}
