package interviews

import (
	"context"

	"resumeiq-backend/internal/generate"
)

// Repo defines persistence operations for interview setups and sessions.
type Repo interface {
	CreateSetup(ctx context.Context, setup Setup) error
	GetLatestSetup(ctx context.Context, userID string) (Setup, error)
	CreateSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, userID, sessionID string) (Session, error)
	UpdateSessionHistory(ctx context.Context, userID, sessionID string, history []generate.HistoryEntry) error
}
