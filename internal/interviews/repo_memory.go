package interviews

import (
	"context"
	"sync"
	"time"

	"resumeiq-backend/internal/generate"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu       sync.RWMutex
	setups   map[string][]Setup // userID -> setups
	sessions map[string]Session // sessionID -> session
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		setups:   make(map[string][]Setup),
		sessions: make(map[string]Session),
	}
}

func (r *MemoryRepo) CreateSetup(ctx context.Context, setup Setup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setups[setup.UserID] = append(r.setups[setup.UserID], setup)
	return nil
}

func (r *MemoryRepo) GetLatestSetup(ctx context.Context, userID string) (Setup, error) {
	if err := ctx.Err(); err != nil {
		return Setup{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	setups := r.setups[userID]
	if len(setups) == 0 {
		return Setup{}, ErrNotFound
	}
	return setups[len(setups)-1], nil
}

func (r *MemoryRepo) CreateSession(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *MemoryRepo) GetSession(ctx context.Context, userID, sessionID string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	if !ok || session.UserID != userID {
		return Session{}, ErrNotFound
	}
	return session, nil
}

func (r *MemoryRepo) UpdateSessionHistory(ctx context.Context, userID, sessionID string, history []generate.HistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok || session.UserID != userID {
		return ErrNotFound
	}
	session.History = history
	session.UpdatedAt = time.Now().UTC()
	r.sessions[sessionID] = session
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
