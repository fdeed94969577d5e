package coverletters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeiq-backend/internal/analyses"
	"resumeiq-backend/internal/generate"
	"resumeiq-backend/internal/resumes"
)

// Service generates and stores cover letters for the current resume.
type Service struct {
	Resumes analyses.ResumeSource
	Gen     *generate.Generator
	Repo    Repo
}

// Outcome carries the stored letter or the model's soft failure.
type Outcome struct {
	Letter  *CoverLetter
	Failure *generate.Failure
}

// Generate writes a cover letter against the job description and
// persists it. A model parse failure is a soft outcome and is not
// persisted.
func (s *Service) Generate(ctx context.Context, userID, jobDescription string) (Outcome, error) {
	resume, err := s.Resumes.GetCurrentByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return Outcome{}, analyses.ErrNoResume
		}
		return Outcome{}, err
	}

	res, err := s.Gen.CoverLetter(ctx, string(resume.Data()), jobDescription)
	if err != nil {
		return Outcome{}, fmt.Errorf("generate cover letter: %w", err)
	}
	if !res.OK() {
		return Outcome{Failure: res.Failure}, nil
	}

	letter := CoverLetter{
		ID:             uuid.NewString(),
		UserID:         userID,
		ResumeID:       resume.ID,
		JobDescription: jobDescription,
		Letter:         res.Value.CoverLetter,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, letter); err != nil {
		return Outcome{}, fmt.Errorf("persist cover letter: %w", err)
	}
	return Outcome{Letter: &letter}, nil
}

// List returns the user's stored cover letters, newest first.
func (s *Service) List(ctx context.Context, userID string, limit int) ([]CoverLetter, error) {
	return s.Repo.ListByUser(ctx, userID, limit)
}
