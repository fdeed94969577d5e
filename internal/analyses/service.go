package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeiq-backend/internal/generate"
	"resumeiq-backend/internal/resumes"
)

// ResumeSource provides the caller's current resume.
type ResumeSource interface {
	GetCurrentByUser(ctx context.Context, userID string) (resumes.Resume, error)
}

// Service runs resume analyses against the current resume.
type Service struct {
	Resumes ResumeSource
	Gen     *generate.Generator
	Repo    Repo
}

// ScoreOutcome carries either a persisted analysis or the model's soft
// failure, never both.
type ScoreOutcome struct {
	Analysis *Analysis
	Report   *generate.ScoreReport
	Failure  *generate.Failure
}

// Score rates the current resume and persists the verdict. A model
// parse failure is returned as a soft outcome, not an error, and is
// not persisted.
func (s *Service) Score(ctx context.Context, userID string) (ScoreOutcome, error) {
	resume, err := s.currentResume(ctx, userID)
	if err != nil {
		return ScoreOutcome{}, err
	}

	res, err := s.Gen.Score(ctx, string(resume.Data()))
	if err != nil {
		return ScoreOutcome{}, fmt.Errorf("score resume: %w", err)
	}
	if !res.OK() {
		return ScoreOutcome{Failure: res.Failure}, nil
	}

	analysis, err := s.persist(ctx, resume, KindScore, res.Value)
	if err != nil {
		return ScoreOutcome{}, err
	}
	return ScoreOutcome{Analysis: &analysis, Report: res.Value}, nil
}

// ATSCheck produces an ATS report for the current resume. The report
// is handed straight to the caller, nothing is persisted.
func (s *Service) ATSCheck(ctx context.Context, userID string) (generate.Result[generate.ATSReport], error) {
	resume, err := s.currentResume(ctx, userID)
	if err != nil {
		return generate.Result[generate.ATSReport]{}, err
	}
	res, err := s.Gen.ATSCheck(ctx, string(resume.Data()))
	if err != nil {
		return generate.Result[generate.ATSReport]{}, fmt.Errorf("ats check: %w", err)
	}
	return res, nil
}

// JDQuestions generates questions targeted at a job description. The
// result is handed straight to the caller, nothing is persisted.
func (s *Service) JDQuestions(ctx context.Context, userID, jobDescription string) (generate.Result[generate.JDQuestionSet], error) {
	resume, err := s.currentResume(ctx, userID)
	if err != nil {
		return generate.Result[generate.JDQuestionSet]{}, err
	}
	res, err := s.Gen.JDQuestions(ctx, string(resume.Data()), jobDescription)
	if err != nil {
		return generate.Result[generate.JDQuestionSet]{}, fmt.Errorf("jd questions: %w", err)
	}
	return res, nil
}

func (s *Service) currentResume(ctx context.Context, userID string) (resumes.Resume, error) {
	resume, err := s.Resumes.GetCurrentByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return resumes.Resume{}, ErrNoResume
		}
		return resumes.Resume{}, err
	}
	return resume, nil
}

func (s *Service) persist(ctx context.Context, resume resumes.Resume, kind string, value any) (Analysis, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return Analysis{}, fmt.Errorf("marshal analysis: %w", err)
	}
	analysis := Analysis{
		ID:        uuid.NewString(),
		ResumeID:  resume.ID,
		UserID:    resume.UserID,
		Kind:      kind,
		Result:    payload,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Upsert(ctx, analysis); err != nil {
		return Analysis{}, fmt.Errorf("persist analysis: %w", err)
	}
	return analysis, nil
}
