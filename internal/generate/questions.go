package generate

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"resumeiq-backend/internal/llm"
	"resumeiq-backend/internal/shared/metrics"
)

// resumeContextLimit bounds how much serialized resume JSON is embedded
// in question prompts.
const resumeContextLimit = 3500

var numberedLine = regexp.MustCompile(`^\d+\.\s+(.*)$`)

const questionsTemplate = `Generate interview questions only.

Resume:
%s

Job Role: %s
Difficulty: %s
Type: %s

Return numbered questions ONLY.`

const pagedQuestionsTemplate = `Generate interview questions only.

Resume:
%s

Job Role: %s
Difficulty: %s
Type: %s

Return exactly %d numbered questions, numbered starting from %d.
Return numbered questions ONLY.`

// Questions asks the model for interview questions as numbered prose and
// parses the numbered lines out of the free-text reply. Unlike the
// JSON-strict operations there is no failure variant: lines that do not
// match the numbering are simply skipped.
func (g *Generator) Questions(ctx context.Context, resumeJSON, jobRole, difficulty, interviewType string) ([]string, error) {
	prompt := fmt.Sprintf(questionsTemplate, truncate(resumeJSON, resumeContextLimit), jobRole, difficulty, interviewType)
	return g.numberedQuestions(ctx, prompt)
}

// PagedQuestions requests one page of questions, instructing the model
// to continue numbering from the page's start index. The requested range
// is trusted, not enforced.
func (g *Generator) PagedQuestions(ctx context.Context, resumeJSON, jobRole, difficulty, interviewType string, page, pageSize int) ([]string, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 5
	}
	start := (page-1)*pageSize + 1
	prompt := fmt.Sprintf(pagedQuestionsTemplate, truncate(resumeJSON, resumeContextLimit), jobRole, difficulty, interviewType, pageSize, start)
	return g.numberedQuestions(ctx, prompt)
}

func (g *Generator) numberedQuestions(ctx context.Context, prompt string) ([]string, error) {
	metrics.IncGeneration()
	raw, err := g.llm.Generate(ctx, llm.Request{
		Model: g.model,
		Messages: []llm.Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		metrics.IncGenerationFailed()
		return nil, err
	}
	return parseNumberedLines(raw), nil
}

// parseNumberedLines extracts "<N>. <text>" lines in order.
func parseNumberedLines(text string) []string {
	questions := []string{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		m := numberedLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		q := strings.TrimSpace(m[1])
		if q != "" {
			questions = append(questions, q)
		}
	}
	return questions
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
