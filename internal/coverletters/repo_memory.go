package coverletters

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]CoverLetter
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]CoverLetter)}
}

func (r *MemoryRepo) Create(ctx context.Context, letter CoverLetter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[letter.UserID] = append(r.data[letter.UserID], letter)
	return nil
}

// ListByUser returns letters newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	letters := r.data[userID]
	out := make([]CoverLetter, 0, len(letters))
	for i := len(letters) - 1; i >= 0; i-- {
		out = append(out, letters[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
