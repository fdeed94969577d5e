package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resumeiq-backend/internal/llm"
)

// fakeClient returns a fixed response and records the last request.
type fakeClient struct {
	response string
	err      error
	calls    int
	last     llm.Request
}

func (f *fakeClient) Generate(ctx context.Context, req llm.Request) (string, error) {
	f.calls++
	f.last = req
	return f.response, f.err
}

func TestScoreParsesReport(t *testing.T) {
	client := &fakeClient{response: "```json\n{\"score\": 82, \"ats_score\": 74, \"strengths\": [\"Go\"], \"weaknesses\": [], \"skills\": [\"Go\", \"SQL\"]}\n```"}
	g := NewGenerator(client, "gpt-4o-mini")

	res, err := g.Score(context.Background(), `{"summary":"engineer"}`)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if !res.OK() {
		t.Fatalf("result = %+v, want value", res)
	}
	if res.Value.Score != 82 || res.Value.ATSScore != 74 {
		t.Errorf("scores = %d/%d", res.Value.Score, res.Value.ATSScore)
	}
	if client.last.MaxTokens != 400 || client.last.Temperature != 0.0 {
		t.Errorf("options = max %d temp %v", client.last.MaxTokens, client.last.Temperature)
	}
	if !strings.Contains(client.last.Messages[0].Content, `{"summary":"engineer"}`) {
		t.Error("prompt must embed the resume text")
	}
}

func TestScoreSoftFailsNoRetry(t *testing.T) {
	client := &fakeClient{response: "I cannot produce JSON today"}
	g := NewGenerator(client, "gpt-4o-mini")

	res, err := g.Score(context.Background(), "resume")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.OK() {
		t.Fatal("result must be a failure")
	}
	if res.Failure.Error != "invalid JSON" {
		t.Errorf("failure error = %q", res.Failure.Error)
	}
	if res.Failure.Raw != "I cannot produce JSON today" {
		t.Errorf("failure raw = %q, want verbatim output", res.Failure.Raw)
	}
	if client.calls != 1 {
		t.Fatalf("calls = %d; generation operations never repair-retry", client.calls)
	}
}

func TestScoreTransportErrorPropagates(t *testing.T) {
	boom := errors.New("gateway timeout")
	client := &fakeClient{err: boom}
	g := NewGenerator(client, "gpt-4o-mini")

	if _, err := g.Score(context.Background(), "resume"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want transport error", err)
	}
}

func TestATSCheckShape(t *testing.T) {
	client := &fakeClient{response: `{"ats_score": 61, "missing_keywords": ["kubernetes"], "format_issues": ["tables"], "suggestions": ["use plain layout"]}`}
	g := NewGenerator(client, "gpt-4o-mini")

	res, err := g.ATSCheck(context.Background(), "resume")
	if err != nil || !res.OK() {
		t.Fatalf("ATSCheck: res=%+v err=%v", res, err)
	}
	if res.Value.ATSScore != 61 || len(res.Value.MissingKeywords) != 1 {
		t.Errorf("report = %+v", res.Value)
	}
	if client.last.MaxTokens != 500 {
		t.Errorf("max tokens = %d", client.last.MaxTokens)
	}
}

func TestJDQuestionsShape(t *testing.T) {
	client := &fakeClient{response: `{"questions": [{"question": "Explain goroutines.", "skill": "Go", "ideal_answer": "Lightweight threads."}]}`}
	g := NewGenerator(client, "gpt-4o-mini")

	res, err := g.JDQuestions(context.Background(), "resume", "backend role")
	if err != nil || !res.OK() {
		t.Fatalf("JDQuestions: res=%+v err=%v", res, err)
	}
	if len(res.Value.Questions) != 1 || res.Value.Questions[0].Skill != "Go" {
		t.Errorf("questions = %+v", res.Value.Questions)
	}
	if !strings.Contains(client.last.Messages[0].Content, "backend role") {
		t.Error("prompt must embed the job description")
	}
	if client.last.MaxTokens != 900 {
		t.Errorf("max tokens = %d", client.last.MaxTokens)
	}
}

func TestCoverLetterShape(t *testing.T) {
	client := &fakeClient{response: `{"cover_letter": "Dear Hiring Manager,"}`}
	g := NewGenerator(client, "gpt-4o-mini")

	res, err := g.CoverLetter(context.Background(), "resume", "jd")
	if err != nil || !res.OK() {
		t.Fatalf("CoverLetter: res=%+v err=%v", res, err)
	}
	if res.Value.CoverLetter != "Dear Hiring Manager," {
		t.Errorf("letter = %q", res.Value.CoverLetter)
	}
	if client.last.MaxTokens != 600 {
		t.Errorf("max tokens = %d", client.last.MaxTokens)
	}
}
