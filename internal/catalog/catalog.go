// Package catalog loads the study program's content banks: per-subject JSON
// files describing topics, quizzes, and exercises. Banks are validated
// against a JSON schema before use so malformed content fails at load time,
// not mid-session.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Subject is one course subject's content bank.
type Subject struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Topics []Topic `json:"topics"`
}

// Topic groups the quizzes and exercises for one unit of a subject.
type Topic struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Quizzes   []Quiz     `json:"quizzes,omitempty"`
	Exercises []Exercise `json:"exercises,omitempty"`
}

// Quiz is a graded multiple-choice quiz reference.
type Quiz struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Exercise is a written or coding exercise with its grading rubric.
type Exercise struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
	Rubric string `json:"rubric,omitempty"`
}

// Catalog is the loaded set of subject banks.
type Catalog struct {
	subjects map[string]*Subject
}

// Load reads every *.json file in dir as a subject bank.
// Each bank is schema-validated; one bad file fails the whole load.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	c := &Catalog{subjects: make(map[string]*Subject)}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}

		subject, err := parseSubject(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}

		if _, dup := c.subjects[subject.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate subject %q", e.Name(), subject.ID)
		}
		c.subjects[subject.ID] = subject
	}

	return c, nil
}

// parseSubject validates raw bank JSON and unmarshals it.
func parseSubject(data []byte) (*Subject, error) {
	if err := validateSubjectBank(data); err != nil {
		return nil, err
	}

	var s Subject
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode subject bank: %w", err)
	}
	return &s, nil
}

// Subject returns the bank for a subject ID, or nil if not loaded.
func (c *Catalog) Subject(id string) *Subject {
	return c.subjects[id]
}

// SubjectIDs returns the loaded subject IDs in sorted order.
func (c *Catalog) SubjectIDs() []string {
	ids := make([]string, 0, len(c.subjects))
	for id := range c.subjects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Quiz looks up a quiz by subject and quiz ID.
func (c *Catalog) Quiz(subjectID, quizID string) (*Quiz, bool) {
	s := c.subjects[subjectID]
	if s == nil {
		return nil, false
	}
	for i := range s.Topics {
		for j := range s.Topics[i].Quizzes {
			if s.Topics[i].Quizzes[j].ID == quizID {
				return &s.Topics[i].Quizzes[j], true
			}
		}
	}
	return nil, false
}

// Exercise looks up an exercise by subject and exercise ID.
func (c *Catalog) Exercise(subjectID, exerciseID string) (*Exercise, bool) {
	s := c.subjects[subjectID]
	if s == nil {
		return nil, false
	}
	for i := range s.Topics {
		for j := range s.Topics[i].Exercises {
			if s.Topics[i].Exercises[j].ID == exerciseID {
				return &s.Topics[i].Exercises[j], true
			}
		}
	}
	return nil, false
}

// DefaultContentDir resolves the content directory:
// 1. RECAP_CONTENT environment variable
// 2. $XDG_DATA_HOME/recap/content
// 3. ~/.local/share/recap/content
func DefaultContentDir() (string, error) {
	if p := os.Getenv("RECAP_CONTENT"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "recap", "content"), nil
}
