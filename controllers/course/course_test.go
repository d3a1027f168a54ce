package controllers

import (
	"elimu/agents"
	courseModels "elimu/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testCourse(title, description, topic, difficulty string, tags string) courseModels.Course {
	return courseModels.Course{
		Title:       title,
		Description: description,
		Topic:       topic,
		Difficulty:  difficulty,
		Tags:        datatypes.JSON([]byte(tags)),
		IsPublic:    true,
	}
}

func TestMatchesDiscovery_CaseInsensitiveTitle(t *testing.T) {
	course := testCourse("Fractions for Grade 4", "", "", "beginner", "[]")

	assert.True(t, MatchesDiscovery(&course, "FRACTIONS", ""))
	assert.True(t, MatchesDiscovery(&course, "fractions", ""))
	assert.False(t, MatchesDiscovery(&course, "algebra", ""))
}

func TestMatchesDiscovery_DescriptionAndTopic(t *testing.T) {
	course := testCourse("Numbers", "Counting and place value", "arithmetic", "beginner", "[]")

	assert.True(t, MatchesDiscovery(&course, "place value", ""))
	assert.True(t, MatchesDiscovery(&course, "ARITHMETIC", ""))
}

func TestMatchesDiscovery_Tags(t *testing.T) {
	course := testCourse("Plants", "", "", "beginner", `["biology","cbc-science"]`)

	assert.True(t, MatchesDiscovery(&course, "biology", ""))
	assert.True(t, MatchesDiscovery(&course, "CBC", ""))
	assert.False(t, MatchesDiscovery(&course, "physics", ""))
}

func TestMatchesDiscovery_DifficultyFilter(t *testing.T) {
	course := testCourse("Plants", "", "", "intermediate", "[]")

	assert.True(t, MatchesDiscovery(&course, "", "intermediate"))
	assert.False(t, MatchesDiscovery(&course, "", "beginner"))
	assert.True(t, MatchesDiscovery(&course, "", ""))
}

func TestMatchesDiscovery_QueryAndDifficultyIntersect(t *testing.T) {
	course := testCourse("Plants", "", "", "intermediate", "[]")

	assert.True(t, MatchesDiscovery(&course, "plants", "intermediate"))
	assert.False(t, MatchesDiscovery(&course, "plants", "advanced"))
}

func TestFilterCourses_LimitAndHasMore(t *testing.T) {
	courses := []courseModels.Course{
		testCourse("Math A", "", "", "beginner", "[]"),
		testCourse("Math B", "", "", "beginner", "[]"),
		testCourse("Math C", "", "", "beginner", "[]"),
		testCourse("Science", "", "", "beginner", "[]"),
	}

	matched, hasMore := FilterCourses(courses, "math", "", 2)

	require.Len(t, matched, 2)
	assert.True(t, hasMore)
	assert.Equal(t, "Math A", matched[0].Title)
	assert.Equal(t, "Math B", matched[1].Title)
}

func TestFilterCourses_NoMore(t *testing.T) {
	courses := []courseModels.Course{
		testCourse("Math A", "", "", "beginner", "[]"),
		testCourse("Science", "", "", "beginner", "[]"),
	}

	matched, hasMore := FilterCourses(courses, "math", "", 10)

	require.Len(t, matched, 1)
	assert.False(t, hasMore)
}

func TestFilterCourses_EmptyResult(t *testing.T) {
	matched, hasMore := FilterCourses(nil, "anything", "", 10)

	assert.Empty(t, matched)
	assert.False(t, hasMore)
}

func quizQuestions(answerIndexes ...int) []agents.QuizQuestion {
	questions := make([]agents.QuizQuestion, len(answerIndexes))
	for i, idx := range answerIndexes {
		questions[i] = agents.QuizQuestion{
			Question:    "q",
			Options:     []string{"a", "b", "c", "d"},
			AnswerIndex: idx,
		}
	}
	return questions
}

func TestGradeQuiz_AllCorrect(t *testing.T) {
	questions := quizQuestions(0, 1, 2, 3)

	assert.Equal(t, 100, GradeQuiz(questions, []int{0, 1, 2, 3}))
}

func TestGradeQuiz_Partial(t *testing.T) {
	questions := quizQuestions(0, 1, 2, 3)

	assert.Equal(t, 50, GradeQuiz(questions, []int{0, 1, 0, 0}))
}

func TestGradeQuiz_MissingAnswersCountWrong(t *testing.T) {
	questions := quizQuestions(0, 1, 2, 3)

	assert.Equal(t, 25, GradeQuiz(questions, []int{0}))
}

func TestGradeQuiz_NoQuestions(t *testing.T) {
	assert.Equal(t, 0, GradeQuiz(nil, []int{0}))
}
