package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"resumeiq-backend/internal/generate"
	"resumeiq-backend/internal/llm"
	"resumeiq-backend/internal/resumes"
)

type fakeLLM struct {
	response string
	err      error
	last     llm.Request
}

func (f *fakeLLM) Generate(ctx context.Context, req llm.Request) (string, error) {
	f.last = req
	return f.response, f.err
}

func seedResume(t *testing.T, repo *resumes.MemoryRepo, userID string) resumes.Resume {
	t.Helper()
	resume := resumes.Resume{
		ID:            "resume-1",
		UserID:        userID,
		FileName:      "resume.pdf",
		ExtractedData: json.RawMessage(`{"summary":"engineer"}`),
	}
	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("seed resume: %v", err)
	}
	return resume
}

func newService(client llm.Client, resumeRepo *resumes.MemoryRepo) *Service {
	return &Service{
		Resumes: resumeRepo,
		Gen:     generate.NewGenerator(client, "gpt-4o-mini"),
		Repo:    NewMemoryRepo(),
	}
}

func TestScorePersistsAnalysis(t *testing.T) {
	client := &fakeLLM{response: `{"score": 80, "ats_score": 70, "strengths": [], "weaknesses": [], "skills": []}`}
	resumeRepo := resumes.NewMemoryRepo()
	seedResume(t, resumeRepo, "user-1")
	svc := newService(client, resumeRepo)

	outcome, err := svc.Score(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if outcome.Failure != nil {
		t.Fatalf("outcome = %+v, want success", outcome)
	}
	if outcome.Report.Score != 80 {
		t.Errorf("score = %d", outcome.Report.Score)
	}

	stored, err := svc.Repo.GetByResumeAndKind(context.Background(), "resume-1", KindScore)
	if err != nil {
		t.Fatalf("stored analysis: %v", err)
	}
	var report generate.ScoreReport
	if err := json.Unmarshal(stored.Result, &report); err != nil {
		t.Fatalf("stored result not JSON: %v", err)
	}
	if report.ATSScore != 70 {
		t.Errorf("stored ats score = %d", report.ATSScore)
	}
}

func TestScoreSoftFailureNotPersisted(t *testing.T) {
	client := &fakeLLM{response: "not json"}
	resumeRepo := resumes.NewMemoryRepo()
	seedResume(t, resumeRepo, "user-1")
	svc := newService(client, resumeRepo)

	outcome, err := svc.Score(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if outcome.Failure == nil || outcome.Failure.Error != "invalid JSON" {
		t.Fatalf("outcome = %+v, want soft failure", outcome)
	}
	if outcome.Failure.Raw != "not json" {
		t.Errorf("raw = %q", outcome.Failure.Raw)
	}

	if _, err := svc.Repo.GetByResumeAndKind(context.Background(), "resume-1", KindScore); !errors.Is(err, ErrNotFound) {
		t.Fatal("failed generation must not be persisted")
	}
}

func TestScoreWithoutResume(t *testing.T) {
	svc := newService(&fakeLLM{}, resumes.NewMemoryRepo())

	if _, err := svc.Score(context.Background(), "user-1"); !errors.Is(err, ErrNoResume) {
		t.Fatalf("err = %v, want ErrNoResume", err)
	}
}

func TestScoreUsesFailureDetailWhenExtractionDegraded(t *testing.T) {
	client := &fakeLLM{response: `{"score": 10, "ats_score": 5, "strengths": [], "weaknesses": [], "skills": []}`}
	resumeRepo := resumes.NewMemoryRepo()
	resume := resumes.Resume{
		ID:               "resume-2",
		UserID:           "user-1",
		ExtractionFailed: true,
		FailureDetail:    json.RawMessage(`{"error":"Invalid JSON returned","raw":"x","fixed":"y"}`),
	}
	if err := resumeRepo.Create(context.Background(), resume); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := newService(client, resumeRepo)

	if _, err := svc.Score(context.Background(), "user-1"); err != nil {
		t.Fatalf("Score: %v", err)
	}
	prompt := client.last.Messages[0].Content
	if !strings.Contains(prompt, "Invalid JSON returned") {
		t.Error("prompt should embed whatever the stored resume payload is")
	}
}

func TestATSCheckNotPersisted(t *testing.T) {
	client := &fakeLLM{response: `{"ats_score": 55, "missing_keywords": [], "format_issues": [], "suggestions": []}`}
	resumeRepo := resumes.NewMemoryRepo()
	seedResume(t, resumeRepo, "user-1")
	svc := newService(client, resumeRepo)

	res, err := svc.ATSCheck(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ATSCheck: %v", err)
	}
	if !res.OK() || res.Value.ATSScore != 55 {
		t.Fatalf("res = %+v", res)
	}
	if _, err := svc.Repo.GetByResumeAndKind(context.Background(), "resume-1", KindATS); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ats report should not be stored, got %v", err)
	}
}

func TestJDQuestionsNotPersisted(t *testing.T) {
	client := &fakeLLM{response: `{"questions": [{"question": "Q", "skill": "Go", "ideal_answer": "A"}]}`}
	resumeRepo := resumes.NewMemoryRepo()
	seedResume(t, resumeRepo, "user-1")
	svc := newService(client, resumeRepo)

	res, err := svc.JDQuestions(context.Background(), "user-1", "backend jd")
	if err != nil {
		t.Fatalf("JDQuestions: %v", err)
	}
	if !res.OK() || len(res.Value.Questions) != 1 {
		t.Fatalf("res = %+v", res)
	}
}
