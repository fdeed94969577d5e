package generate

import (
	"context"
	"fmt"
)

// JDQuestion pairs an interview question with the skill it probes and a
// model answer.
type JDQuestion struct {
	Question    string `json:"question"`
	Skill       string `json:"skill"`
	IdealAnswer string `json:"ideal_answer"`
}

// JDQuestionSet is the JSON envelope the model returns for JD questions.
type JDQuestionSet struct {
	Questions []JDQuestion `json:"questions"`
}

const jdQuestionsTemplate = `Generate 10 JD-based questions.

STRICT JSON:
{
    "questions": [
        {
            "question": "",
            "skill": "",
            "ideal_answer": ""
        }
    ]
}

Resume:
%s

JD:
%s`

// JDQuestions generates interview questions targeted at a job description.
func (g *Generator) JDQuestions(ctx context.Context, resumeText, jobDescription string) (Result[JDQuestionSet], error) {
	prompt := fmt.Sprintf(jdQuestionsTemplate, resumeText, jobDescription)
	return runJSON[JDQuestionSet](ctx, g, prompt, 900, 0.0)
}
