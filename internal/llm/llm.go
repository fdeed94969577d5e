package llm

import (
	"context"
	"errors"
)

// Message is a single chat turn sent to the model.
type Message struct {
	Role    string
	Content string
}

// Attachment is a binary document handed to the model alongside the
// final user message, for providers that accept file inputs.
type Attachment struct {
	FileName string
	MIMEType string
	Data     []byte
}

// Request captures everything needed for one model call.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
	Attachment  *Attachment
}

// Client abstracts generative text providers.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// PlaceholderClient is a stub used when no provider is configured.
type PlaceholderClient struct{}

// Generate always fails; it exists so the app can boot without credentials.
func (PlaceholderClient) Generate(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", errors.New("llm client not configured")
}
