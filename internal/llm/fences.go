package llm

import "strings"

// StripFences removes markdown code fences from model output. The
// ```json opener is removed first so a bare ``` pass does not leave a
// dangling "json" tag behind.
func StripFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
