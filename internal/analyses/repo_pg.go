package analyses

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO resume_analyses (id, resume_id, user_id, kind, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (resume_id, kind) DO UPDATE
SET result = EXCLUDED.result, created_at = EXCLUDED.created_at`

	_, err := r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.ResumeID,
		analysis.UserID,
		analysis.Kind,
		[]byte(analysis.Result),
		analysis.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByResumeAndKind(ctx context.Context, resumeID, kind string) (Analysis, error) {
	const query = `
SELECT id, resume_id, user_id, kind, result, created_at
FROM resume_analyses
WHERE resume_id = $1 AND kind = $2`

	var analysis Analysis
	var result []byte
	err := r.DB.QueryRowContext(ctx, query, resumeID, kind).Scan(
		&analysis.ID,
		&analysis.ResumeID,
		&analysis.UserID,
		&analysis.Kind,
		&result,
		&analysis.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	analysis.Result = result
	return analysis, nil
}

var _ Repo = (*PGRepo)(nil)
