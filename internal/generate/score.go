package generate

import (
	"context"
	"fmt"
)

// ScoreReport is the model's verdict on overall resume quality.
type ScoreReport struct {
	Score      int      `json:"score"`
	ATSScore   int      `json:"ats_score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Skills     []string `json:"skills"`
}

const scoreTemplate = `Score this resume. Return STRICT JSON:

{
  "score": 0,
  "ats_score": 0,
  "strengths": [],
  "weaknesses": [],
  "skills": []
}

Resume text:
%s`

// Score rates the resume and extracts its strengths, weaknesses and skills.
func (g *Generator) Score(ctx context.Context, resumeText string) (Result[ScoreReport], error) {
	prompt := fmt.Sprintf(scoreTemplate, resumeText)
	return runJSON[ScoreReport](ctx, g, prompt, 400, 0.0)
}
