package agents

import (
	"context"
	"fmt"
)

// GenerateResources asks for dashboard resources for a grade/subject pair.
// Called fire-and-forget when a filtered resource listing comes back empty.
func GenerateResources(ctx context.Context, gradeLevel, subject string) ([]ResourceDraft, error) {
	prompt := fmt.Sprintf(`Suggest 5 learning resources for a Kenyan CBC %s learner studying %s.

Respond with JSON only, in this exact shape:
{
  "resources": [
    {
      "title": "resource title",
      "description": "one sentence",
      "resource_type": "ARTICLE or VIDEO or EXERCISE",
      "url": ""
    }
  ]
}`, gradeLevel, subject)

	var out struct {
		Resources []ResourceDraft `json:"resources"`
	}
	if err := GenerateJSON(ctx, prompt, &out); err != nil {
		return nil, fmt.Errorf("resource agent: %w", err)
	}

	if out.Resources == nil {
		out.Resources = []ResourceDraft{}
	}
	return out.Resources, nil
}
