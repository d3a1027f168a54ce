package agents

import "strings"

// StripJSONFences removes markdown code fences that Gemini sometimes wraps
// around JSON replies even in JSON response mode
func StripJSONFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// ClampInt clamps v into [min, max]
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// normalizeOutline defaults missing arrays and the difficulty tag
func normalizeOutline(o *CourseOutline, difficulty string) {
	if o.Sections == nil {
		o.Sections = []string{}
	}
	if o.Tags == nil {
		o.Tags = []string{}
	}
	if o.Difficulty == "" {
		o.Difficulty = difficulty
	}
}

// normalizeQuiz defaults missing arrays and clamps answer indexes into range
func normalizeQuiz(q *QuizDraft) {
	if q.Questions == nil {
		q.Questions = []QuizQuestion{}
	}
	for i := range q.Questions {
		if q.Questions[i].Options == nil {
			q.Questions[i].Options = []string{}
		}
		max := len(q.Questions[i].Options) - 1
		if max < 0 {
			max = 0
		}
		q.Questions[i].AnswerIndex = ClampInt(q.Questions[i].AnswerIndex, 0, max)
	}
}
