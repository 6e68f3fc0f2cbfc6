package grader

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateCompletion_NilSchemaAccepts(t *testing.T) {
	if err := validateCompletion(nil, json.RawMessage(`anything`)); err != nil {
		t.Errorf("validateCompletion(nil schema) = %v, want nil", err)
	}
}

func TestValidateCompletion_ValidVerdict(t *testing.T) {
	raw := json.RawMessage(`{"score": 70, "feedback": "Meets the rubric."}`)
	if err := validateCompletion(gradeSchema, raw); err != nil {
		t.Errorf("validateCompletion() = %v, want nil", err)
	}
}

func TestValidateCompletion_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `grade: A+`},
		{"missing feedback", `{"score": 70}`},
		{"score above max", `{"score": 101, "feedback": "x"}`},
		{"score below min", `{"score": -1, "feedback": "x"}`},
		{"score wrong type", `{"score": "seventy", "feedback": "x"}`},
		{"extra field", `{"score": 70, "feedback": "x", "grade": "B"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCompletion(gradeSchema, json.RawMessage(tt.raw))
			var bad *ErrBadCompletion
			if !errors.As(err, &bad) {
				t.Errorf("validateCompletion(%s) = %v, want *ErrBadCompletion", tt.raw, err)
			}
		})
	}
}

func TestValidateCompletion_SchemaCached(t *testing.T) {
	raw := json.RawMessage(`{"score": 50, "feedback": "Partial credit."}`)
	if err := validateCompletion(gradeSchema, raw); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if _, ok := schemaCache.Load(gradeSchema.Name); !ok {
		t.Error("compiled schema not cached after validation")
	}
	if err := validateCompletion(gradeSchema, raw); err != nil {
		t.Errorf("second validate: %v", err)
	}
}
