// Package grader scores written exercise answers with an LLM. A Grader
// sends the exercise prompt, rubric, and learner answer to a model and
// receives a structured verdict: a 0-100 score plus feedback text.
package grader

import (
	"context"
	"encoding/json"
)

// Client is the model-facing abstraction. Grading is single turn, so a
// Prompt carries one system instruction and one user message rather than
// a conversation history.
type Client interface {
	// Complete sends a prompt and returns the model's completion. When the
	// prompt carries a ResponseSchema the completion JSON is validated
	// against it before being returned.
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// ModelID returns the model identifier this client is configured to use.
	ModelID() string
}

// Prompt describes one grading request.
type Prompt struct {
	// System sets the grader persona and constraints.
	System string

	// User is the graded material: exercise prompt, rubric, and answer.
	User string

	// Schema is the JSON shape the completion must conform to. When nil
	// the completion JSON is the raw text response.
	Schema *ResponseSchema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls randomness. Grading wants 0 (deterministic).
	Temperature float64
}

// ResponseSchema defines the JSON structure expected from the model.
type ResponseSchema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "exercise-grade".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Completion holds the model's output.
type Completion struct {
	// JSON is the validated structured output, or the raw text when no
	// schema was requested.
	JSON json.RawMessage

	// Tokens reports token consumption for this request.
	Tokens TokenCount

	// Model is the actual model that served the request.
	Model string

	// Truncated is true when generation stopped at the MaxTokens limit.
	Truncated bool
}

// TokenCount tracks token consumption for a single request.
type TokenCount struct {
	Input  int
	Output int
	Total  int
}
