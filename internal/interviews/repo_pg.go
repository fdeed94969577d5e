package interviews

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resumeiq-backend/internal/generate"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) CreateSetup(ctx context.Context, setup Setup) error {
	const query = `
INSERT INTO interview_setups (id, user_id, resume_id, job_role, company, difficulty, interview_type, rounds, questions, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	questions, err := json.Marshal(setup.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	var resumeID any
	if setup.ResumeID != "" {
		resumeID = setup.ResumeID
	}
	_, err = r.DB.ExecContext(ctx, query,
		setup.ID,
		setup.UserID,
		resumeID,
		setup.JobRole,
		setup.Company,
		setup.Difficulty,
		setup.InterviewType,
		setup.Rounds,
		questions,
		setup.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetLatestSetup(ctx context.Context, userID string) (Setup, error) {
	const query = `
SELECT id, user_id, COALESCE(resume_id::text, ''), job_role, company, difficulty, interview_type, rounds, questions, created_at
FROM interview_setups
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`

	var setup Setup
	var questions []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&setup.ID,
		&setup.UserID,
		&setup.ResumeID,
		&setup.JobRole,
		&setup.Company,
		&setup.Difficulty,
		&setup.InterviewType,
		&setup.Rounds,
		&questions,
		&setup.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Setup{}, ErrNotFound
		}
		return Setup{}, err
	}
	if len(questions) > 0 {
		if err := json.Unmarshal(questions, &setup.Questions); err != nil {
			return Setup{}, fmt.Errorf("unmarshal questions: %w", err)
		}
	}
	return setup, nil
}

func (r *PGRepo) CreateSession(ctx context.Context, session Session) error {
	const query = `
INSERT INTO interview_sessions (id, user_id, setup_id, history, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)`

	history, err := json.Marshal(session.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	var setupID any
	if session.SetupID != "" {
		setupID = session.SetupID
	}
	_, err = r.DB.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		setupID,
		history,
		session.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetSession(ctx context.Context, userID, sessionID string) (Session, error) {
	const query = `
SELECT id, user_id, COALESCE(setup_id::text, ''), history, created_at, updated_at
FROM interview_sessions
WHERE user_id = $1 AND id = $2`

	var session Session
	var history []byte
	err := r.DB.QueryRowContext(ctx, query, userID, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.SetupID,
		&history,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &session.History); err != nil {
			return Session{}, fmt.Errorf("unmarshal history: %w", err)
		}
	}
	return session, nil
}

func (r *PGRepo) UpdateSessionHistory(ctx context.Context, userID, sessionID string, entries []generate.HistoryEntry) error {
	const query = `
UPDATE interview_sessions
SET history = $1, updated_at = $2
WHERE user_id = $3 AND id = $4`

	history, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	res, err := r.DB.ExecContext(ctx, query, history, time.Now().UTC(), userID, sessionID)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
