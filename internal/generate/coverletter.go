package generate

import (
	"context"
	"fmt"
)

// CoverLetter is the JSON envelope for a generated cover letter.
type CoverLetter struct {
	CoverLetter string `json:"cover_letter"`
}

const coverLetterTemplate = `Generate a professional cover letter.

STRICT JSON:
{
    "cover_letter": ""
}

Resume:
%s

Job Description:
%s`

// CoverLetter writes a cover letter tailored to the job description.
func (g *Generator) CoverLetter(ctx context.Context, resumeText, jobDescription string) (Result[CoverLetter], error) {
	prompt := fmt.Sprintf(coverLetterTemplate, resumeText, jobDescription)
	return runJSON[CoverLetter](ctx, g, prompt, 600, 0.0)
}
