package generate

import (
	"context"
	"fmt"
)

// ATSReport describes how an applicant-tracking system would read the resume.
type ATSReport struct {
	ATSScore        int      `json:"ats_score"`
	MissingKeywords []string `json:"missing_keywords"`
	FormatIssues    []string `json:"format_issues"`
	Suggestions     []string `json:"suggestions"`
}

const atsTemplate = `Generate ATS report. STRICT JSON:

{
  "ats_score": 0,
  "missing_keywords": [],
  "format_issues": [],
  "suggestions": []
}

Resume:
%s`

// ATSCheck produces an ATS compatibility report for the resume.
func (g *Generator) ATSCheck(ctx context.Context, resumeText string) (Result[ATSReport], error) {
	prompt := fmt.Sprintf(atsTemplate, resumeText)
	return runJSON[ATSReport](ctx, g, prompt, 500, 0.0)
}
