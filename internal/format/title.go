// Package format derives display labels and navigation paths from review
// item identifiers. It relies only on the ID string patterns used by the
// content banks (e.g. "cs101-t1-quiz-a", "math201-t3-ex02") and performs
// no scheduling logic.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/recap/internal/srs"
)

var (
	subjectCodeRe = regexp.MustCompile(`(?i)^([a-z]+\d+)`)
	topicRe       = regexp.MustCompile(`-t(\d+)-`)
	quizLevelRe   = regexp.MustCompile(`(?i)quiz-([abc])`)
	exerciseNumRe = regexp.MustCompile(`(?i)ex(\d+)`)
)

// Title formats a review item's ID into a human-readable label,
// e.g. "cs101-t1-quiz-a" -> "CS101 Topic 1 Quiz A".
func Title(item srs.ReviewItem) string {
	id := item.ItemID

	var parts []string
	if m := subjectCodeRe.FindStringSubmatch(id); m != nil {
		parts = append(parts, strings.ToUpper(m[1]))
	}
	if m := topicRe.FindStringSubmatch(id); m != nil {
		parts = append(parts, "Topic "+m[1])
	}

	switch item.ItemType {
	case srs.ItemQuiz:
		if m := quizLevelRe.FindStringSubmatch(id); m != nil {
			parts = append(parts, "Quiz "+strings.ToUpper(m[1]))
		} else {
			parts = append(parts, "Quiz")
		}
	default:
		if m := exerciseNumRe.FindStringSubmatch(id); m != nil {
			n, _ := strconv.Atoi(m[1])
			parts = append(parts, fmt.Sprintf("Exercise %d", n))
		} else {
			parts = append(parts, "Exercise")
		}
	}

	return strings.Join(parts, " ")
}

// ItemURL returns the front-end navigation route for a review item.
func ItemURL(item srs.ReviewItem) string {
	kind := "exercise"
	if item.ItemType == srs.ItemQuiz {
		kind = "quiz"
	}
	return fmt.Sprintf("#/subject/%s/%s/%s", item.SubjectID, kind, item.ItemID)
}
