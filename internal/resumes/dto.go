package resumes

import (
	"encoding/json"
	"time"
)

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ResumeID         string          `json:"resumeId"`
	FileName         string          `json:"fileName"`
	ExtractionFailed bool            `json:"extractionFailed"`
	Data             json.RawMessage `json:"data"`
	UploadedAt       time.Time       `json:"uploadedAt"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		ResumeID:         resume.ID,
		FileName:         resume.FileName,
		ExtractionFailed: resume.ExtractionFailed,
		Data:             resume.Data(),
		UploadedAt:       resume.CreatedAt,
	}
}
