package agents

import (
	"context"
	"fmt"
)

// GenerateCareerPath asks the career agent for a path with an ordered course list
func GenerateCareerPath(ctx context.Context, interest, gradeLevel string) (*CareerPlan, error) {
	prompt := fmt.Sprintf(`You are a Kenyan career guidance counsellor. A %s CBC learner is
interested in: %s.

Plan a career path for them. Respond with JSON only, in this exact shape:
{
  "title": "career path title",
  "description": "2-3 sentence description of the career and its prospects in Kenya",
  "field": "one word field, e.g. engineering",
  "courses": [
    {"title": "course title", "description": "one sentence"}
  ]
}
Order the courses from foundational to advanced, between 4 and 8 courses.`,
		gradeLevel, interest)

	var plan CareerPlan
	if err := GenerateJSON(ctx, prompt, &plan); err != nil {
		return nil, fmt.Errorf("career agent: %w", err)
	}

	if plan.Courses == nil {
		plan.Courses = []CareerCourseDraft{}
	}
	if plan.Title == "" {
		plan.Title = interest
	}
	return &plan, nil
}
