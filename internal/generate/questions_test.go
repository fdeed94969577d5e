package generate

import (
	"context"
	"strings"
	"testing"
)

func TestParseNumberedLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain numbered list",
			text: "1. What is a slice?\n2. Explain channels.\n3. What does defer do?",
			want: []string{"What is a slice?", "Explain channels.", "What does defer do?"},
		},
		{
			name: "prose around the list is skipped",
			text: "Here are your questions:\n\n1. First question\nSome commentary.\n2. Second question\n",
			want: []string{"First question", "Second question"},
		},
		{
			name: "numbering not at line start after trim still matches",
			text: "  1. Indented question",
			want: []string{"Indented question"},
		},
		{
			name: "no numbered lines",
			text: "I could not generate questions.",
			want: []string{},
		},
		{
			name: "number without dot is skipped",
			text: "1) Wrong format\n2. Right format",
			want: []string{"Right format"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseNumberedLines(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("parsed %d questions %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("question[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestQuestionsTruncatesResumeContext(t *testing.T) {
	client := &fakeClient{response: "1. Q"}
	g := NewGenerator(client, "gpt-4o-mini")

	long := strings.Repeat("a", 5000)
	if _, err := g.Questions(context.Background(), long, "SDE", "hard", "technical"); err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if strings.Contains(client.last.Messages[0].Content, strings.Repeat("a", 3501)) {
		t.Error("resume context must be truncated to 3500 characters")
	}
	if !strings.Contains(client.last.Messages[0].Content, strings.Repeat("a", 3500)) {
		t.Error("truncated resume context missing from prompt")
	}
}

func TestPagedQuestionsStartIndex(t *testing.T) {
	client := &fakeClient{response: "6. Q6\n7. Q7"}
	g := NewGenerator(client, "gpt-4o-mini")

	got, err := g.PagedQuestions(context.Background(), "{}", "SDE", "medium", "technical", 2, 5)
	if err != nil {
		t.Fatalf("PagedQuestions: %v", err)
	}
	if len(got) != 2 || got[0] != "Q6" {
		t.Fatalf("questions = %v", got)
	}
	if !strings.Contains(client.last.Messages[0].Content, "numbered starting from 6") {
		t.Errorf("prompt = %q, want start index 6", client.last.Messages[0].Content)
	}
	if !strings.Contains(client.last.Messages[0].Content, "exactly 5 numbered questions") {
		t.Error("prompt must request the page size")
	}
}

func TestInterviewTurnHistoryInPrompt(t *testing.T) {
	client := &fakeClient{response: `{"evaluation": "Solid answer.", "score": 8, "next_question": "What about mutexes?"}`}
	g := NewGenerator(client, "gpt-4o-mini")

	history := []HistoryEntry{
		{Role: RoleAI, Content: "Tell me about channels."},
		{Role: RoleUser, Content: "They synchronize goroutines."},
	}
	res, err := g.InterviewTurn(context.Background(), "{}", history, "They synchronize goroutines.")
	if err != nil || !res.OK() {
		t.Fatalf("InterviewTurn: res=%+v err=%v", res, err)
	}
	if res.Value.Score != 8 || res.Value.NextQuestion != "What about mutexes?" {
		t.Errorf("turn = %+v", res.Value)
	}
	prompt := client.last.Messages[0].Content
	if !strings.Contains(prompt, "ai: Tell me about channels.") {
		t.Error("prompt must render prior ai turns")
	}
	if !strings.Contains(prompt, "user: They synchronize goroutines.") {
		t.Error("prompt must render prior user turns")
	}
	if client.last.Temperature != 0.7 {
		t.Errorf("temperature = %v", client.last.Temperature)
	}
}
