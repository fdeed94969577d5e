package coverletters

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("cover letter not found")

// Repo defines persistence operations for cover letters.
type Repo interface {
	Create(ctx context.Context, letter CoverLetter) error
	ListByUser(ctx context.Context, userID string, limit int) ([]CoverLetter, error)
}
