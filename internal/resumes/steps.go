package resumes

import (
	"context"
	"encoding/json"
	"strings"

	"resume-insight/internal/llm"
)

// stripCodeFence removes a leading ```json or ``` fence and the trailing
// ``` from model output. Models routinely wrap their JSON this way despite
// instructions not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "```json"):
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	case strings.HasPrefix(s, "```"):
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// parseObjectOutput validates that model output, after fence stripping, is a
// single JSON object and returns it re-encoded as raw JSON.
func parseObjectOutput(op, output string) (json.RawMessage, error) {
	cleaned := stripCodeFence(output)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil || obj == nil {
		return nil, &OutputError{Op: op, RawOutput: output}
	}
	return json.RawMessage(cleaned), nil
}

// extractProfile runs the first LLM call: raw resume text to a structured
// profile document.
func extractProfile(ctx context.Context, client llm.Client, rawText string) (json.RawMessage, error) {
	output, err := client.Complete(ctx, extractionSystemPrompt, extractionUserMessage(rawText))
	if err != nil {
		return nil, err
	}
	return parseObjectOutput("extraction", output)
}

// analyzeProfile runs the second LLM call: the extracted profile document
// (plus the raw text for context) to an analysis document.
func analyzeProfile(ctx context.Context, client llm.Client, extracted json.RawMessage, rawText string) (json.RawMessage, error) {
	output, err := client.Complete(ctx, analysisSystemPrompt, analysisUserMessage(extracted, rawText))
	if err != nil {
		return nil, err
	}
	return parseObjectOutput("analysis", output)
}
