package format

import (
	"testing"

	"github.com/abhisek/recap/internal/srs"
)

func quizItem(subjectID, itemID string) srs.ReviewItem {
	return srs.ReviewItem{SubjectID: subjectID, ItemID: itemID, ItemType: srs.ItemQuiz}
}

func exerciseItem(subjectID, itemID string) srs.ReviewItem {
	return srs.ReviewItem{SubjectID: subjectID, ItemID: itemID, ItemType: srs.ItemExercise}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		item srs.ReviewItem
		want string
	}{
		{"quiz with topic and level", quizItem("cs101", "cs101-t1-quiz-a"), "CS101 Topic 1 Quiz A"},
		{"quiz level b", quizItem("cs101", "cs101-t2-quiz-b"), "CS101 Topic 2 Quiz B"},
		{"math subject code", quizItem("math201", "math201-t3-quiz-c"), "MATH201 Topic 3 Quiz C"},
		{"quiz without level", quizItem("cs101", "cs101-t1-final"), "CS101 Topic 1 Quiz"},
		{"exercise with number", exerciseItem("cs101", "cs101-t1-ex01"), "CS101 Topic 1 Exercise 1"},
		{"exercise strips leading zero", exerciseItem("cs102", "cs102-t4-ex12"), "CS102 Topic 4 Exercise 12"},
		{"exercise without number", exerciseItem("cs101", "cs101-t1-project"), "CS101 Topic 1 Exercise"},
		{"no topic marker", quizItem("cs101", "cs101-quiz-a"), "CS101 Quiz A"},
		{"unrecognized id", quizItem("cs101", "???"), "Quiz"},
		{"multi-digit topic", exerciseItem("cs305", "cs305-t12-ex03"), "CS305 Topic 12 Exercise 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.item); got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.item.ItemID, got, tt.want)
			}
		})
	}
}

func TestItemURL(t *testing.T) {
	quiz := quizItem("cs101", "cs101-t1-quiz-a")
	if got, want := ItemURL(quiz), "#/subject/cs101/quiz/cs101-t1-quiz-a"; got != want {
		t.Errorf("ItemURL(quiz) = %q, want %q", got, want)
	}

	ex := exerciseItem("math201", "math201-t2-ex05")
	if got, want := ItemURL(ex), "#/subject/math201/exercise/math201-t2-ex05"; got != want {
		t.Errorf("ItemURL(exercise) = %q, want %q", got, want)
	}
}
