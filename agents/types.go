package agents

// CourseOutline is the planner agent's output: an ordered section list
type CourseOutline struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
	Sections    []string `json:"sections"`
}

// LessonDraft is the lesson agent's output for one outline section
type LessonDraft struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Objectives []string `json:"objectives"`
}

// QuizQuestion is one multiple-choice question
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation"`
}

// QuizDraft is the quiz agent's output for one lesson
type QuizDraft struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// TextbookPlan is the textbook planner's output
type TextbookPlan struct {
	Title    string        `json:"title"`
	Chapters []ChapterPlan `json:"chapters"`
}

// ChapterPlan is one planned chapter with the topics it must cover
type ChapterPlan struct {
	Title  string   `json:"title"`
	Topics []string `json:"topics"`
}

// ChapterDraft is the instructional agent's output, later enriched by the
// creative agent with classroom activities
type ChapterDraft struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Activities []string `json:"activities"`
}

// CareerCourseDraft is one step of a generated career path
type CareerCourseDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CareerPlan is the career agent's output
type CareerPlan struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Field       string              `json:"field"`
	Courses     []CareerCourseDraft `json:"courses"`
}

// ResourceDraft is one generated dashboard resource
type ResourceDraft struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ResourceType string `json:"resource_type"`
	URL          string `json:"url"`
}
