package grader

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/recap/internal/catalog"
)

var testExercise = &catalog.Exercise{
	ID:     "cs101-t1-ex01",
	Title:  "Swap Two Values",
	Prompt: "Write code that swaps two variables.",
	Rubric: "Full marks for a working swap without a third variable.",
}

func TestGrade_ReturnsVerdict(t *testing.T) {
	mock := NewMockClient(MockCompletion{
		JSON: json.RawMessage(`{"score": 85, "feedback": "Correct swap, minor style issues."}`),
	})
	g := New(mock)

	res, err := g.Grade(context.Background(), testExercise, "a, b = b, a")
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if res.Score != 85 {
		t.Errorf("Score = %d, want 85", res.Score)
	}
	if res.Feedback != "Correct swap, minor style issues." {
		t.Errorf("Feedback = %q", res.Feedback)
	}
	if !res.Passed() {
		t.Error("Passed() = false, want true for score 85")
	}
}

func TestGrade_PassedBoundary(t *testing.T) {
	for score, want := range map[int]bool{70: true, 69: false} {
		res := Result{Score: score}
		if got := res.Passed(); got != want {
			t.Errorf("Result{Score: %d}.Passed() = %v, want %v", score, got, want)
		}
	}
}

func TestGrade_PromptCarriesExerciseAndAnswer(t *testing.T) {
	mock := NewMockClient(MockCompletion{
		JSON: json.RawMessage(`{"score": 50, "feedback": "Partial."}`),
	})
	g := New(mock)

	if _, err := g.Grade(context.Background(), testExercise, "swap via temp"); err != nil {
		t.Fatalf("Grade() error = %v", err)
	}

	if len(mock.Prompts) != 1 {
		t.Fatalf("got %d prompts, want 1", len(mock.Prompts))
	}
	p := mock.Prompts[0]
	for _, want := range []string{testExercise.Prompt, testExercise.Rubric, "swap via temp"} {
		if !strings.Contains(p.User, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if p.Schema == nil || p.Schema.Name != "exercise-grade" {
		t.Errorf("prompt schema = %+v, want exercise-grade", p.Schema)
	}
}

func TestGrade_EmptyAnswerRejected(t *testing.T) {
	mock := NewMockClient()
	g := New(mock)

	if _, err := g.Grade(context.Background(), testExercise, "   "); err == nil {
		t.Fatal("Grade() error = nil, want empty answer rejection")
	}
	if mock.CallCount() != 0 {
		t.Errorf("CallCount() = %d, want 0 (no model call for empty answer)", mock.CallCount())
	}
}

func TestGrade_OutOfRangeScoreRejected(t *testing.T) {
	mock := NewMockClient(MockCompletion{
		JSON: json.RawMessage(`{"score": 150, "feedback": "oops"}`),
	})
	g := New(mock)

	_, err := g.Grade(context.Background(), testExercise, "answer")
	var bad *ErrBadCompletion
	if !errors.As(err, &bad) {
		t.Fatalf("Grade() error = %v, want *ErrBadCompletion", err)
	}
}

func TestGrade_MalformedVerdictRejected(t *testing.T) {
	mock := NewMockClient(MockCompletion{
		JSON: json.RawMessage(`not json at all`),
	})
	g := New(mock)

	_, err := g.Grade(context.Background(), testExercise, "answer")
	var bad *ErrBadCompletion
	if !errors.As(err, &bad) {
		t.Fatalf("Grade() error = %v, want *ErrBadCompletion", err)
	}
}

func TestGrade_ClientErrorWrapped(t *testing.T) {
	mock := NewMockClient(MockCompletion{
		Err: &ErrUnavailable{Err: errors.New("down")},
	})
	g := New(mock)

	_, err := g.Grade(context.Background(), testExercise, "answer")
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("Grade() error = %v, want *ErrUnavailable", err)
	}
}
