package generate

import (
	"context"
	"encoding/json"

	"resumeiq-backend/internal/llm"
	"resumeiq-backend/internal/shared/metrics"
)

// Failure is the soft error variant shared by all generation
// operations. The raw model output is preserved verbatim for callers.
type Failure struct {
	Error string `json:"error"`
	Raw   string `json:"raw"`
}

const failureInvalidJSON = "invalid JSON"

// Result is the outcome of one JSON-strict generation call. Exactly one
// of Value and Failure is set.
type Result[T any] struct {
	Value   *T
	Failure *Failure
}

// OK reports whether the model produced a parseable value.
func (r Result[T]) OK() bool {
	return r.Value != nil
}

// Generator runs the structured generation operations against a model.
type Generator struct {
	llm   llm.Client
	model string
}

// NewGenerator constructs a Generator bound to one model identifier.
func NewGenerator(client llm.Client, model string) *Generator {
	return &Generator{llm: client, model: model}
}

// runJSON performs one prompt call, strips fences, and parses the output
// into T. Parse failures soft-fail into a Failure carrying the raw text;
// there is no repair retry here, only the extraction pipeline retries.
func runJSON[T any](ctx context.Context, g *Generator, prompt string, maxTokens int, temperature float32) (Result[T], error) {
	metrics.IncGeneration()
	raw, err := g.llm.Generate(ctx, llm.Request{
		Model: g.model,
		Messages: []llm.Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		metrics.IncGenerationFailed()
		return Result[T]{}, err
	}

	cleaned := llm.StripFences(raw)
	var value T
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		metrics.IncGenerationFailed()
		return Result[T]{Failure: &Failure{Error: failureInvalidJSON, Raw: cleaned}}, nil
	}
	return Result[T]{Value: &value}, nil
}
