package parse

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resumeiq-backend/internal/extract"
	"resumeiq-backend/internal/llm"
	"resumeiq-backend/internal/shared/metrics"
	"resumeiq-backend/internal/shared/telemetry"
)

// minTextChars is the trimmed-length threshold below which local PDF
// extraction is treated as insufficient (scanned or image-only files)
// and the raw bytes are sent to the model for transcription instead.
const minTextChars = 40

const (
	structureMaxTokens  = 1500
	transcribeMaxTokens = 2000
)

// Pipeline turns raw PDF bytes into a structured ResumeRecord.
type Pipeline struct {
	llm         llm.Client
	model       string
	extractText func([]byte) string
}

// NewPipeline constructs an extraction pipeline backed by the given client.
func NewPipeline(client llm.Client, model string) *Pipeline {
	return &Pipeline{llm: client, model: model, extractText: extract.Text}
}

// ExtractResume runs the full extraction: local text recovery, raw-bytes
// fallback when the text is too short, one structuring call, and at most
// one JSON-repair retry. Model transport errors propagate; everything
// else degrades into a Failure outcome rather than an error.
func (p *Pipeline) ExtractResume(ctx context.Context, fileName string, data []byte) (Outcome, error) {
	metrics.IncExtractionStarted()
	start := time.Now()

	text := p.extractText(data)
	if len(strings.TrimSpace(text)) < minTextChars {
		metrics.IncExtractionFallback()
		transcribed, err := p.transcribe(ctx, fileName, data)
		if err != nil {
			return Outcome{}, fmt.Errorf("transcribe fallback: %w", err)
		}
		// Fallback output replaces local extraction entirely.
		text = transcribed
	}

	raw, err := p.llm.Generate(ctx, llm.Request{
		Model: p.model,
		Messages: []llm.Message{
			{Role: "system", Content: systemJSONOnly},
			{Role: "user", Content: structurePrompt(text)},
		},
		MaxTokens:   structureMaxTokens,
		Temperature: 0.0,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("structure call: %w", err)
	}
	raw = llm.StripFences(raw)

	outcome, err := p.parseOrRepair(ctx, text, raw)
	if err != nil {
		return Outcome{}, err
	}
	metrics.ObserveExtractionDurationMs(float64(time.Since(start).Milliseconds()))
	if outcome.OK() {
		metrics.IncExtractionCompleted()
	} else {
		metrics.IncExtractionDegraded()
		telemetry.Error("resume extraction degraded", map[string]any{
			"reason": outcome.Failure.Error,
		})
	}
	return outcome, nil
}

// transcribe sends the raw document bytes to the model and asks for a
// plain-text rendition.
func (p *Pipeline) transcribe(ctx context.Context, fileName string, data []byte) (string, error) {
	out, err := p.llm.Generate(ctx, llm.Request{
		Model: p.model,
		Messages: []llm.Message{
			{Role: "user", Content: transcribePrompt},
		},
		MaxTokens: transcribeMaxTokens,
		Attachment: &llm.Attachment{
			FileName: fileName,
			MIMEType: "application/pdf",
			Data:     data,
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// parseOrRepair parses the model output, retrying exactly once through a
// repair call when the first parse fails.
func (p *Pipeline) parseOrRepair(ctx context.Context, text, raw string) (Outcome, error) {
	if record, ok := decodeRecord(raw); ok {
		return Outcome{Text: text, Record: record}, nil
	}
	if failure := schemaFailure(raw, ""); failure != nil {
		return Outcome{Text: text, Failure: failure}, nil
	}

	metrics.IncExtractionRepair()
	fixedRaw, err := p.llm.Generate(ctx, llm.Request{
		Model: p.model,
		Messages: []llm.Message{
			{Role: "user", Content: repairPrompt(raw)},
		},
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("repair call: %w", err)
	}
	fixed := llm.StripFences(fixedRaw)

	if record, ok := decodeRecord(fixed); ok {
		return Outcome{Text: text, Record: record}, nil
	}
	if failure := schemaFailure(fixed, raw); failure != nil {
		return Outcome{Text: text, Failure: failure}, nil
	}
	return Outcome{Text: text, Failure: &ExtractionFailure{
		Error: FailureInvalidJSON,
		Raw:   raw,
		Fixed: fixed,
	}}, nil
}

// decodeRecord returns a ResumeRecord when raw is syntactically valid
// JSON that also conforms to the record schema.
func decodeRecord(raw string) (*ResumeRecord, bool) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, false
	}
	if err := validateRecordShape(doc); err != nil {
		return nil, false
	}
	var record ResumeRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, false
	}
	return &record, true
}

// schemaFailure reports schema drift for output that parsed as JSON but
// does not match the record shape. It returns nil when raw is not even
// valid JSON, leaving that case to the repair path.
func schemaFailure(raw, priorRaw string) *ExtractionFailure {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil
	}
	if err := validateRecordShape(doc); err == nil {
		return nil
	}
	failure := &ExtractionFailure{Error: FailureSchemaDrift, Raw: raw}
	if priorRaw != "" {
		failure.Raw = priorRaw
		failure.Fixed = raw
	}
	return failure
}
