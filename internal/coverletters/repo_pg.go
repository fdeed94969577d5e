package coverletters

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, letter CoverLetter) error {
	const query = `
INSERT INTO cover_letters (id, user_id, resume_id, job_description, letter, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	var resumeID any
	if letter.ResumeID != "" {
		resumeID = letter.ResumeID
	}
	_, err := r.DB.ExecContext(ctx, query,
		letter.ID,
		letter.UserID,
		resumeID,
		letter.JobDescription,
		letter.Letter,
		letter.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit int) ([]CoverLetter, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
SELECT id, user_id, COALESCE(resume_id::text, ''), job_description, letter, created_at
FROM cover_letters
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CoverLetter
	for rows.Next() {
		var letter CoverLetter
		if err := rows.Scan(
			&letter.ID,
			&letter.UserID,
			&letter.ResumeID,
			&letter.JobDescription,
			&letter.Letter,
			&letter.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, letter)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
