package resumes

import (
	"encoding/json"
	"time"
)

// Resume is an uploaded resume and the outcome of its extraction run.
// Exactly one of ExtractedData and FailureDetail is set.
type Resume struct {
	ID               string
	UserID           string
	FileName         string
	StorageKey       string
	ExtractedText    string
	ExtractedData    json.RawMessage
	ExtractionFailed bool
	FailureDetail    json.RawMessage
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
