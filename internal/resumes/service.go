package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeiq-backend/internal/parse"
	"resumeiq-backend/internal/shared/storage/object"
)

// Extractor runs the structured extraction pipeline on raw PDF bytes.
type Extractor interface {
	ExtractResume(ctx context.Context, fileName string, data []byte) (parse.Outcome, error)
}

// Service contains business logic for resumes.
type Service struct {
	Store     object.ObjectStore
	Repo      Repo
	Extractor Extractor
}

// Upload stores the file, runs extraction, and persists the outcome.
// Degraded extraction (the model never produced a usable record) still
// persists and returns a Resume; only transport-level faults error.
func (s *Service) Upload(ctx context.Context, userID, fileName string, data []byte) (Resume, error) {
	if fileName == "" {
		return Resume{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}
	if len(data) == 0 {
		return Resume{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	storageKey, _, _, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Resume{}, fmt.Errorf("store resume: %w", err)
	}

	outcome, err := s.Extractor.ExtractResume(ctx, fileName, data)
	if err != nil {
		return Resume{}, fmt.Errorf("extract resume: %w", err)
	}

	resume := Resume{
		ID:            uuid.NewString(),
		UserID:        userID,
		FileName:      fileName,
		StorageKey:    storageKey,
		ExtractedText: outcome.Text,
		CreatedAt:     time.Now().UTC(),
	}
	if outcome.OK() {
		payload, err := json.Marshal(outcome.Record)
		if err != nil {
			return Resume{}, fmt.Errorf("marshal record: %w", err)
		}
		resume.ExtractedData = payload
	} else {
		payload, err := json.Marshal(outcome.Failure)
		if err != nil {
			return Resume{}, fmt.Errorf("marshal failure: %w", err)
		}
		resume.ExtractionFailed = true
		resume.FailureDetail = payload
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, fmt.Errorf("persist resume: %w", err)
	}
	return resume, nil
}

// Current returns the newest resume for a user.
func (s *Service) Current(ctx context.Context, userID string) (Resume, error) {
	if userID == "" {
		return Resume{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// List returns resumes newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Data returns the payload to show callers for a resume: the structured
// record on success, the preserved failure object otherwise.
func (r Resume) Data() json.RawMessage {
	if r.ExtractionFailed {
		return r.FailureDetail
	}
	return r.ExtractedData
}
