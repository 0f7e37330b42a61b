package resumes

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no resume exists for the requested id.
var ErrNotFound = errors.New("resume not found")

// ErrNoText signals that the text extractor produced no usable text.
// This is a client-fixable condition (unsupported, empty, or corrupt file).
var ErrNoText = errors.New("no text could be extracted")

// ErrBadShape signals that a decoded LLM document is not the required
// top-level object shape.
var ErrBadShape = errors.New("output does not match the expected object shape")

// Pipeline stage names, used in StageError and surfaced in error responses.
const (
	StageStaging    = "staging"
	StageExtraction = "extraction"
	StageDBCreate   = "db-create"
	StageLLMExtract = "llm-extract"
	StageLLMAnalyze = "llm-analyze"
	StageValidation = "validation"
	StageDBUpdate   = "db-update"
)

// StageError wraps a failure with the pipeline stage it occurred in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageFail(stage string, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

// OutputError reports provider output that could not be parsed as the
// expected JSON object. It is not retried: a successful-but-unparseable
// response is a prompt or model issue, not a transient fault.
type OutputError struct {
	Op        string
	RawOutput string
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("llm %s output is not a parseable JSON object", e.Op)
}
