package analyses

import "context"

// Repo defines persistence operations for analyses.
type Repo interface {
	// Upsert replaces any prior analysis of the same kind for the resume.
	Upsert(ctx context.Context, analysis Analysis) error
	GetByResumeAndKind(ctx context.Context, resumeID, kind string) (Analysis, error)
}
