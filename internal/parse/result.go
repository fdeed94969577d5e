package parse

// ExtractionFailure is the degraded terminal outcome of the extraction
// pipeline. It is persisted verbatim so callers can inspect what the
// model actually produced.
type ExtractionFailure struct {
	Error string `json:"error"`
	Raw   string `json:"raw"`
	Fixed string `json:"fixed"`
}

// Failure messages distinguish syntactic breakage from schema drift.
const (
	FailureInvalidJSON = "Invalid JSON returned"
	FailureSchemaDrift = "schema validation failed"
)

// Outcome is the result of a full extraction run. Exactly one of Record
// and Failure is set; Text always carries the recovered resume text that
// fed the structuring call.
type Outcome struct {
	Text    string
	Record  *ResumeRecord
	Failure *ExtractionFailure
}

// OK reports whether the pipeline produced a structured record.
func (o Outcome) OK() bool {
	return o.Record != nil
}
