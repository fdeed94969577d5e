package parse

import "fmt"

const systemJSONOnly = "You always return valid JSON only."

const transcribePrompt = `You are an AI resume parser. Extract the full readable text from this PDF.
Return ONLY plain text. No JSON. No explanations.`

const structureTemplate = `You are an expert resume parser.

Extract the following fields STRICTLY in valid JSON only:

{
    "contact": {
        "name": "",
        "phone": "",
        "email": "",
        "linkedin": "",
        "github": ""
    },
    "summary": "",
    "education": [],
    "projects": [],
    "experience": [],
    "skills": {
        "programming": [],
        "frameworks_tools": [],
        "soft_skills": []
    },
    "certifications": [],
    "achievements": []
}

RULES:
- Return ONLY pure JSON
- No markdown
- No comments
- No backticks

Resume:
%s`

func structurePrompt(text string) string {
	return fmt.Sprintf(structureTemplate, text)
}

func repairPrompt(raw string) string {
	return "Fix this into valid JSON only:\n" + raw
}
