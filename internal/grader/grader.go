package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/recap/internal/catalog"
	"github.com/abhisek/recap/internal/srs"
)

const gradeMaxTokens = 1024

// gradeSchema is the structured output shape for a grading verdict.
var gradeSchema = &ResponseSchema{
	Name:        "exercise-grade",
	Description: "Score and feedback for a written exercise answer",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"score", "feedback"},
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Grade from 0 (no credit) to 100 (full credit)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Two or three sentences explaining the grade",
			},
		},
		"additionalProperties": false,
	},
}

const gradeSystemPrompt = `You are a strict but fair teaching assistant grading a student's written answer to an exercise.
Score the answer from 0 to 100 against the rubric. A score of 70 or above means the answer demonstrates working understanding.
Grade only what the student wrote. Do not award points for effort or length.`

// Result is a grading verdict.
type Result struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
	Model    string `json:"-"`
}

// Passed reports whether the graded answer meets the passing threshold.
func (r Result) Passed() bool {
	return r.Score >= srs.QuizPassingScore
}

// Grader scores written exercise answers via a model Client.
type Grader struct {
	client Client
}

// New creates a Grader on top of a Client.
func New(client Client) *Grader {
	return &Grader{client: client}
}

// Grade scores a learner's answer to an exercise. The returned Result's
// score is guaranteed to be within [0, 100].
func (g *Grader) Grade(ctx context.Context, ex *catalog.Exercise, answer string) (*Result, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("answer is empty")
	}

	comp, err := g.client.Complete(ctx, Prompt{
		System:    gradeSystemPrompt,
		User:      buildGradeRequest(ex, answer),
		Schema:    gradeSchema,
		MaxTokens: gradeMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("grade answer: %w", err)
	}

	var res Result
	if err := json.Unmarshal(comp.JSON, &res); err != nil {
		return nil, &ErrBadCompletion{
			Content: comp.JSON,
			Err:     fmt.Errorf("decode verdict: %w", err),
		}
	}

	// The schema bounds the score, but a mock or lenient backend may not
	// enforce it. Reject rather than clamp.
	if res.Score < 0 || res.Score > 100 {
		return nil, &ErrBadCompletion{
			Content: comp.JSON,
			Err:     fmt.Errorf("score %d out of range", res.Score),
		}
	}

	res.Model = comp.Model
	return &res, nil
}

func buildGradeRequest(ex *catalog.Exercise, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exercise: %s\n\n", ex.Title)
	fmt.Fprintf(&b, "Prompt:\n%s\n\n", ex.Prompt)
	if ex.Rubric != "" {
		fmt.Fprintf(&b, "Rubric:\n%s\n\n", ex.Rubric)
	}
	fmt.Fprintf(&b, "Student answer:\n%s\n", answer)
	return b.String()
}
