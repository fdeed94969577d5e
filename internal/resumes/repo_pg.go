package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    file_name,
    storage_key,
    extracted_text,
    extracted_data,
    extraction_failed,
    failure_detail,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

	var extracted any
	if len(resume.ExtractedData) > 0 {
		extracted = []byte(resume.ExtractedData)
	}
	var failure any
	if len(resume.FailureDetail) > 0 {
		failure = []byte(resume.FailureDetail)
	}

	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.StorageKey,
		resume.ExtractedText,
		extracted,
		resume.ExtractionFailed,
		failure,
		resume.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetCurrentByUser(ctx context.Context, userID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, extracted_text, extracted_data, extraction_failed, failure_detail, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`

	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, file_name, storage_key, extracted_text, extracted_data, extraction_failed, failure_detail, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var extracted, failure []byte
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.StorageKey,
		&resume.ExtractedText,
		&extracted,
		&resume.ExtractionFailed,
		&failure,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	if len(extracted) > 0 {
		resume.ExtractedData = extracted
	}
	if len(failure) > 0 {
		resume.FailureDetail = failure
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
