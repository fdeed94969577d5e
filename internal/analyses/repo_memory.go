package analyses

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Analysis // resumeID+kind -> analysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Analysis)}
}

func key(resumeID, kind string) string {
	return resumeID + "/" + kind
}

func (r *MemoryRepo) Upsert(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key(analysis.ResumeID, analysis.Kind)] = analysis
	return nil
}

func (r *MemoryRepo) GetByResumeAndKind(ctx context.Context, resumeID, kind string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.data[key(resumeID, kind)]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

var _ Repo = (*MemoryRepo)(nil)
