package coverletters

import "time"

// CoverLetter is a generated cover letter kept for the user's records.
type CoverLetter struct {
	ID             string
	UserID         string
	ResumeID       string
	JobDescription string
	Letter         string
	CreatedAt      time.Time
}
