package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validBank = `{
  "id": "cs101",
  "title": "Intro to Computer Science",
  "topics": [
    {
      "id": "t1",
      "title": "Variables",
      "quizzes": [
        {"id": "cs101-t1-quiz-a", "title": "Variables Quiz A"}
      ],
      "exercises": [
        {"id": "cs101-t1-ex01", "title": "Swap Two Values", "prompt": "Write code that swaps two variables.", "rubric": "Full marks for a working swap."}
      ]
    }
  ]
}`

func writeBank(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
}

func TestLoad_ValidBank(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "cs101.json", validBank)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s := c.Subject("cs101")
	if s == nil {
		t.Fatal("Subject(cs101) = nil, want bank")
	}
	if s.Title != "Intro to Computer Science" {
		t.Errorf("Title = %q, want %q", s.Title, "Intro to Computer Science")
	}
	if len(s.Topics) != 1 || len(s.Topics[0].Quizzes) != 1 || len(s.Topics[0].Exercises) != 1 {
		t.Errorf("unexpected bank shape: %+v", s)
	}
}

func TestLoad_SkipsNonJSON(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "cs101.json", validBank)
	writeBank(t, dir, "notes.txt", "not json")

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := c.SubjectIDs(); len(got) != 1 || got[0] != "cs101" {
		t.Errorf("SubjectIDs() = %v, want [cs101]", got)
	}
}

func TestLoad_RejectsMissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	// Missing "title" at the subject level.
	writeBank(t, dir, "bad.json", `{"id": "cs101", "topics": []}`)

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() error = nil, want schema validation failure")
	}
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "bad.json", `{"id": "cs101", "title": "CS", "topics": [], "extra": 1}`)

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() error = nil, want schema validation failure")
	}
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "bad.json", `{`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() error = nil, want JSON parse failure")
	}
	if !strings.Contains(err.Error(), "bad.json") {
		t.Errorf("error %q does not name the offending file", err)
	}
}

func TestLoad_RejectsDuplicateSubject(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "a.json", validBank)
	writeBank(t, dir, "b.json", validBank)

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() error = nil, want duplicate subject failure")
	}
}

func TestCatalogLookups(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "cs101.json", validBank)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if q, ok := c.Quiz("cs101", "cs101-t1-quiz-a"); !ok || q.Title != "Variables Quiz A" {
		t.Errorf("Quiz() = %+v, %v; want Variables Quiz A, true", q, ok)
	}
	if _, ok := c.Quiz("cs101", "missing"); ok {
		t.Error("Quiz(missing) ok = true, want false")
	}
	if _, ok := c.Quiz("nope", "cs101-t1-quiz-a"); ok {
		t.Error("Quiz(unknown subject) ok = true, want false")
	}

	ex, ok := c.Exercise("cs101", "cs101-t1-ex01")
	if !ok || ex.Prompt == "" {
		t.Errorf("Exercise() = %+v, %v; want prompt set, true", ex, ok)
	}
}

func TestDefaultContentDir_EnvOverride(t *testing.T) {
	t.Setenv("RECAP_CONTENT", "/tmp/banks")

	dir, err := DefaultContentDir()
	if err != nil {
		t.Fatalf("DefaultContentDir() error = %v", err)
	}
	if dir != "/tmp/banks" {
		t.Errorf("DefaultContentDir() = %q, want /tmp/banks", dir)
	}
}

func TestDefaultContentDir_XDG(t *testing.T) {
	t.Setenv("RECAP_CONTENT", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	dir, err := DefaultContentDir()
	if err != nil {
		t.Fatalf("DefaultContentDir() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "recap", "content"); dir != want {
		t.Errorf("DefaultContentDir() = %q, want %q", dir, want)
	}
}
