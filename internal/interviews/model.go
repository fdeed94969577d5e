package interviews

import (
	"time"

	"resumeiq-backend/internal/generate"
)

// Setup captures the parameters of a mock interview and the opening
// question set generated for it.
type Setup struct {
	ID            string
	UserID        string
	ResumeID      string
	JobRole       string
	Company       string
	Difficulty    string
	InterviewType string
	Rounds        int
	Questions     []string
	CreatedAt     time.Time
}

// Session is one running interview conversation. History holds
// alternating candidate and interviewer turns.
type Session struct {
	ID        string
	UserID    string
	SetupID   string
	History   []generate.HistoryEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}
