package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripJSONFences_Plain(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripJSONFences(`{"a":1}`))
}

func TestStripJSONFences_JsonFence(t *testing.T) {
	raw := "```json\n{\"a\":1}\n```"

	assert.Equal(t, `{"a":1}`, StripJSONFences(raw))
}

func TestStripJSONFences_BareFence(t *testing.T) {
	raw := "```\n{\"a\":1}\n```"

	assert.Equal(t, `{"a":1}`, StripJSONFences(raw))
}

func TestStripJSONFences_Whitespace(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripJSONFences("  \n{\"a\":1}\n  "))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-5, 0, 100))
	assert.Equal(t, 100, ClampInt(150, 0, 100))
	assert.Equal(t, 42, ClampInt(42, 0, 100))
}

func TestNormalizeOutline_Defaults(t *testing.T) {
	outline := &CourseOutline{}

	normalizeOutline(outline, "beginner")

	assert.NotNil(t, outline.Sections)
	assert.NotNil(t, outline.Tags)
	assert.Equal(t, "beginner", outline.Difficulty)
}

func TestNormalizeOutline_KeepsExistingDifficulty(t *testing.T) {
	outline := &CourseOutline{Difficulty: "advanced"}

	normalizeOutline(outline, "beginner")

	assert.Equal(t, "advanced", outline.Difficulty)
}

func TestNormalizeQuiz_ClampsAnswerIndex(t *testing.T) {
	quiz := &QuizDraft{
		Questions: []QuizQuestion{
			{Options: []string{"a", "b"}, AnswerIndex: 7},
			{Options: []string{"a", "b", "c"}, AnswerIndex: -1},
		},
	}

	normalizeQuiz(quiz)

	assert.Equal(t, 1, quiz.Questions[0].AnswerIndex)
	assert.Equal(t, 0, quiz.Questions[1].AnswerIndex)
}

func TestNormalizeQuiz_DefaultsArrays(t *testing.T) {
	quiz := &QuizDraft{}

	normalizeQuiz(quiz)

	require.NotNil(t, quiz.Questions)

	quiz.Questions = append(quiz.Questions, QuizQuestion{AnswerIndex: 3})
	normalizeQuiz(quiz)

	assert.NotNil(t, quiz.Questions[0].Options)
	assert.Equal(t, 0, quiz.Questions[0].AnswerIndex)
}
