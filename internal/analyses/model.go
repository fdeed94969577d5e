package analyses

import (
	"encoding/json"
	"time"
)

// Analysis is a persisted model verdict about one resume. Kind
// distinguishes the analysis families sharing the table.
type Analysis struct {
	ID        string
	ResumeID  string
	UserID    string
	Kind      string
	Result    json.RawMessage
	CreatedAt time.Time
}

const (
	KindScore = "score"
	KindATS   = "ats"
)
