package agents

import (
	"context"
	"fmt"
	"strings"
)

// PlanTextbook asks the planner agent for a chapter plan covering one
// curriculum strand
func PlanTextbook(ctx context.Context, gradeLevel, subject, strand string) (*TextbookPlan, error) {
	prompt := fmt.Sprintf(`You are a CBC textbook planner. Plan a textbook for the strand below.

Grade: %s
Subject: %s
Strand: %s

Respond with JSON only, in this exact shape:
{
  "title": "textbook title",
  "chapters": [
    {"title": "chapter title", "topics": ["topic 1", "topic 2"]}
  ]
}
Use between 3 and 5 chapters.`, gradeLevel, subject, strand)

	var plan TextbookPlan
	if err := GenerateJSON(ctx, prompt, &plan); err != nil {
		return nil, fmt.Errorf("textbook planner agent: %w", err)
	}

	if plan.Chapters == nil {
		plan.Chapters = []ChapterPlan{}
	}
	for i := range plan.Chapters {
		if plan.Chapters[i].Topics == nil {
			plan.Chapters[i].Topics = []string{}
		}
	}
	if plan.Title == "" {
		plan.Title = fmt.Sprintf("%s %s: %s", gradeLevel, subject, strand)
	}
	return &plan, nil
}

// DraftChapter asks the instructional agent to write one planned chapter
func DraftChapter(ctx context.Context, plan *TextbookPlan, chapter ChapterPlan, gradeLevel string) (*ChapterDraft, error) {
	prompt := fmt.Sprintf(`You are a CBC instructional writer. Write one textbook chapter for a %s learner.

Textbook: %s
Chapter: %s
Topics to cover: %s

Respond with JSON only, in this exact shape:
{
  "title": "%s",
  "content": "full chapter text in markdown, 400-700 words, clear and age appropriate"
}`,
		gradeLevel, plan.Title, chapter.Title, strings.Join(chapter.Topics, ", "), chapter.Title)

	var draft ChapterDraft
	if err := GenerateJSON(ctx, prompt, &draft); err != nil {
		return nil, fmt.Errorf("instructional agent: %w", err)
	}

	if draft.Title == "" {
		draft.Title = chapter.Title
	}
	if draft.Activities == nil {
		draft.Activities = []string{}
	}
	return &draft, nil
}

// EnrichChapter asks the creative agent to add classroom activities to a
// drafted chapter
func EnrichChapter(ctx context.Context, draft *ChapterDraft, gradeLevel string) (*ChapterDraft, error) {
	prompt := fmt.Sprintf(`You are a creative CBC educator. Suggest hands-on classroom activities
for the chapter below, suitable for a %s classroom in Kenya with limited materials.

Chapter: %s

%s

Respond with JSON only, in this exact shape:
{"activities": ["activity 1", "activity 2", "activity 3"]}`,
		gradeLevel, draft.Title, draft.Content)

	var enriched struct {
		Activities []string `json:"activities"`
	}
	if err := GenerateJSON(ctx, prompt, &enriched); err != nil {
		return nil, fmt.Errorf("creative agent: %w", err)
	}

	if enriched.Activities == nil {
		enriched.Activities = []string{}
	}
	draft.Activities = enriched.Activities
	return draft, nil
}

// SummarizeTextbook asks the assembly agent for a back-cover summary of the
// finished chapters
func SummarizeTextbook(ctx context.Context, plan *TextbookPlan, chapters []*ChapterDraft) (string, error) {
	titles := make([]string, len(chapters))
	for i, ch := range chapters {
		titles[i] = ch.Title
	}

	prompt := fmt.Sprintf(`Write a 2-3 sentence summary for a CBC textbook titled "%s"
with these chapters: %s. Respond with the summary text only.`,
		plan.Title, strings.Join(titles, "; "))

	summary, err := GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("assembly agent: %w", err)
	}
	return summary, nil
}
