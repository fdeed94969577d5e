package analyses

import "errors"

var (
	ErrNotFound = errors.New("analysis not found")
	ErrNoResume = errors.New("upload a resume first")
)
