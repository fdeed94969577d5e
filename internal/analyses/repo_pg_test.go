package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := Analysis{
		ID:        "analysis-1",
		ResumeID:  "resume-1",
		UserID:    "user-1",
		Kind:      KindScore,
		Result:    json.RawMessage(`{"score":80}`),
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resume_analyses").
		WithArgs(
			analysis.ID,
			analysis.ResumeID,
			analysis.UserID,
			analysis.Kind,
			[]byte(`{"score":80}`),
			analysis.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), analysis); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByResumeAndKindNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, resume_id, user_id, kind, result").
		WithArgs("resume-9", KindATS).
		WillReturnRows(sqlmock.NewRows([]string{"id", "resume_id", "user_id", "kind", "result", "created_at"}))

	if _, err := repo.GetByResumeAndKind(context.Background(), "resume-9", KindATS); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
