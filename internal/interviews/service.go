package interviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumeiq-backend/internal/analyses"
	"resumeiq-backend/internal/generate"
	"resumeiq-backend/internal/resumes"
)

// Service runs mock interview setup, question paging, and chat turns.
type Service struct {
	Resumes analyses.ResumeSource
	Gen     *generate.Generator
	Repo    Repo
}

// SetupParams are the caller-supplied interview parameters.
type SetupParams struct {
	JobRole       string
	Company       string
	Difficulty    string
	InterviewType string
	Rounds        int
}

// Setup stores the interview parameters and generates the opening
// question set from the current resume.
func (s *Service) Setup(ctx context.Context, userID string, params SetupParams) (Setup, error) {
	if strings.TrimSpace(params.JobRole) == "" {
		return Setup{}, fmt.Errorf("%w: job role required", ErrInvalidInput)
	}
	if params.Difficulty == "" {
		params.Difficulty = "medium"
	}
	if params.InterviewType == "" {
		params.InterviewType = "technical"
	}
	if params.Rounds < 1 {
		params.Rounds = 1
	}

	resume, err := s.currentResume(ctx, userID)
	if err != nil {
		return Setup{}, err
	}

	questions, err := s.Gen.Questions(ctx, string(resume.Data()), params.JobRole, params.Difficulty, params.InterviewType)
	if err != nil {
		return Setup{}, fmt.Errorf("generate questions: %w", err)
	}

	setup := Setup{
		ID:            uuid.NewString(),
		UserID:        userID,
		ResumeID:      resume.ID,
		JobRole:       params.JobRole,
		Company:       params.Company,
		Difficulty:    params.Difficulty,
		InterviewType: params.InterviewType,
		Rounds:        params.Rounds,
		Questions:     questions,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.CreateSetup(ctx, setup); err != nil {
		return Setup{}, fmt.Errorf("persist setup: %w", err)
	}
	return setup, nil
}

// Questions generates one page of questions for the latest setup. The
// model is told to continue numbering from the page's start index; the
// requested range is trusted, not enforced.
func (s *Service) Questions(ctx context.Context, userID string, page, pageSize int) ([]string, error) {
	setup, err := s.Repo.GetLatestSetup(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: run interview setup first", ErrInvalidInput)
		}
		return nil, err
	}
	resume, err := s.currentResume(ctx, userID)
	if err != nil {
		return nil, err
	}
	questions, err := s.Gen.PagedQuestions(ctx, string(resume.Data()), setup.JobRole, setup.Difficulty, setup.InterviewType, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("generate paged questions: %w", err)
	}
	return questions, nil
}

// ChatOutcome is one chat exchange: the session after the turn and
// either the model's reply or its soft failure.
type ChatOutcome struct {
	SessionID string
	Turn      *generate.InterviewTurn
	Failure   *generate.Failure
}

// Chat runs one interview turn. An empty sessionID starts a fresh
// session. On success exactly two entries are appended to the history:
// the candidate's answer, then the interviewer's reply. A soft model
// failure leaves the history untouched.
func (s *Service) Chat(ctx context.Context, userID, sessionID, answer string) (ChatOutcome, error) {
	if strings.TrimSpace(answer) == "" {
		return ChatOutcome{}, fmt.Errorf("%w: answer required", ErrInvalidInput)
	}

	resume, err := s.currentResume(ctx, userID)
	if err != nil {
		return ChatOutcome{}, err
	}

	session, err := s.loadOrCreateSession(ctx, userID, sessionID)
	if err != nil {
		return ChatOutcome{}, err
	}

	res, err := s.Gen.InterviewTurn(ctx, string(resume.Data()), session.History, answer)
	if err != nil {
		return ChatOutcome{}, fmt.Errorf("interview turn: %w", err)
	}
	if !res.OK() {
		return ChatOutcome{SessionID: session.ID, Failure: res.Failure}, nil
	}

	// The ai entry carries the full turn JSON so the next prompt sees
	// the evaluation and score, not just the follow-up question.
	turnJSON, err := json.Marshal(res.Value)
	if err != nil {
		return ChatOutcome{}, fmt.Errorf("marshal turn: %w", err)
	}
	history := append(session.History,
		generate.HistoryEntry{Role: generate.RoleUser, Content: answer},
		generate.HistoryEntry{Role: generate.RoleAI, Content: string(turnJSON)},
	)
	if err := s.Repo.UpdateSessionHistory(ctx, userID, session.ID, history); err != nil {
		return ChatOutcome{}, fmt.Errorf("persist history: %w", err)
	}

	return ChatOutcome{SessionID: session.ID, Turn: res.Value}, nil
}

func (s *Service) loadOrCreateSession(ctx context.Context, userID, sessionID string) (Session, error) {
	if sessionID != "" {
		session, err := s.Repo.GetSession(ctx, userID, sessionID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return Session{}, fmt.Errorf("%w: unknown session", ErrInvalidInput)
			}
			return Session{}, err
		}
		return session, nil
	}

	setupID := ""
	if setup, err := s.Repo.GetLatestSetup(ctx, userID); err == nil {
		setupID = setup.ID
	}
	session := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		SetupID:   setupID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateSession(ctx, session); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (s *Service) currentResume(ctx context.Context, userID string) (resumes.Resume, error) {
	resume, err := s.Resumes.GetCurrentByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return resumes.Resume{}, analyses.ErrNoResume
		}
		return resumes.Resume{}, err
	}
	return resume, nil
}
