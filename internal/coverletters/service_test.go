package coverletters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"resumeiq-backend/internal/analyses"
	"resumeiq-backend/internal/generate"
	"resumeiq-backend/internal/llm"
	"resumeiq-backend/internal/resumes"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Generate(ctx context.Context, req llm.Request) (string, error) {
	return f.response, f.err
}

func newService(t *testing.T, client llm.Client, withResume bool) *Service {
	t.Helper()
	resumeRepo := resumes.NewMemoryRepo()
	if withResume {
		err := resumeRepo.Create(context.Background(), resumes.Resume{
			ID:            "resume-1",
			UserID:        "user-1",
			ExtractedData: json.RawMessage(`{"summary":"engineer"}`),
		})
		if err != nil {
			t.Fatalf("seed resume: %v", err)
		}
	}
	return &Service{
		Resumes: resumeRepo,
		Gen:     generate.NewGenerator(client, "gpt-4o-mini"),
		Repo:    NewMemoryRepo(),
	}
}

func TestGeneratePersistsLetter(t *testing.T) {
	svc := newService(t, &fakeLLM{response: `{"cover_letter": "Dear Hiring Manager, ..."}`}, true)

	outcome, err := svc.Generate(context.Background(), "user-1", "backend jd")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if outcome.Letter == nil {
		t.Fatalf("outcome = %+v, want letter", outcome)
	}
	if outcome.Letter.Letter != "Dear Hiring Manager, ..." {
		t.Errorf("letter = %q", outcome.Letter.Letter)
	}
	if outcome.Letter.JobDescription != "backend jd" || outcome.Letter.ResumeID != "resume-1" {
		t.Errorf("letter metadata = %+v", outcome.Letter)
	}

	stored, err := svc.List(context.Background(), "user-1", 10)
	if err != nil || len(stored) != 1 {
		t.Fatalf("List: %v, len=%d", err, len(stored))
	}
}

func TestGenerateSoftFailureNotPersisted(t *testing.T) {
	svc := newService(t, &fakeLLM{response: "sorry, no JSON"}, true)

	outcome, err := svc.Generate(context.Background(), "user-1", "jd")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if outcome.Failure == nil || outcome.Failure.Raw != "sorry, no JSON" {
		t.Fatalf("outcome = %+v, want soft failure", outcome)
	}

	stored, _ := svc.List(context.Background(), "user-1", 10)
	if len(stored) != 0 {
		t.Fatal("failed generation must not be persisted")
	}
}

func TestGenerateWithoutResume(t *testing.T) {
	svc := newService(t, &fakeLLM{}, false)

	if _, err := svc.Generate(context.Background(), "user-1", "jd"); !errors.Is(err, analyses.ErrNoResume) {
		t.Fatalf("err = %v, want ErrNoResume", err)
	}
}
