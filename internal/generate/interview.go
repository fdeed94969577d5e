package generate

import (
	"context"
	"fmt"
	"strings"
)

// HistoryEntry is one turn of an interview conversation. Role is either
// "user" (the candidate) or "ai" (the interviewer).
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// InterviewTurn is the model's reply to a candidate answer: feedback on
// the answer, a score for it, and the next question to ask.
type InterviewTurn struct {
	Evaluation   string `json:"evaluation"`
	Score        int    `json:"score"`
	NextQuestion string `json:"next_question"`
}

const interviewTemplate = `You are a strict technical interviewer running a mock interview.

Candidate resume:
%s

Conversation so far:
%s

Candidate's latest answer:
%s

Evaluate the answer and ask the next question. STRICT JSON:
{
    "evaluation": "",
    "score": 0,
    "next_question": ""
}`

// InterviewTurn evaluates the candidate's latest answer in the context of
// the conversation history and produces the next question.
func (g *Generator) InterviewTurn(ctx context.Context, resumeJSON string, history []HistoryEntry, answer string) (Result[InterviewTurn], error) {
	prompt := fmt.Sprintf(interviewTemplate, truncate(resumeJSON, resumeContextLimit), renderHistory(history), answer)
	return runJSON[InterviewTurn](ctx, g, prompt, 400, 0.7)
}

func renderHistory(history []HistoryEntry) string {
	if len(history) == 0 {
		return "(start of interview)"
	}
	var b strings.Builder
	for i, entry := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(entry.Role)
		b.WriteString(": ")
		b.WriteString(entry.Content)
	}
	return b.String()
}
