package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/recap/internal/review"
	"github.com/abhisek/recap/internal/srs"
	"github.com/abhisek/recap/internal/store"
)

type memReviewRepo struct {
	items map[string]srs.ReviewItem
}

func (m *memReviewRepo) Get(_ context.Context, subjectID, itemID string) (*srs.ReviewItem, error) {
	it, ok := m.items[subjectID+"/"+itemID]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (m *memReviewRepo) Upsert(_ context.Context, item srs.ReviewItem) error {
	m.items[item.Key()] = item
	return nil
}

func (m *memReviewRepo) All(_ context.Context) ([]srs.ReviewItem, error) {
	out := make([]srs.ReviewItem, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *memReviewRepo) DeleteAll(_ context.Context) error {
	m.items = make(map[string]srs.ReviewItem)
	return nil
}

type memAttemptRepo struct {
	records []store.AttemptRecord
}

func (m *memAttemptRepo) Append(_ context.Context, attemptID string, o srs.AttemptOutcome) error {
	m.records = append(m.records, store.AttemptRecord{
		Sequence:  int64(len(m.records) + 1),
		Timestamp: o.Timestamp,
		AttemptID: attemptID,
		SubjectID: o.SubjectID,
		ItemID:    o.ItemID,
		ItemType:  string(o.ItemType),
		Score:     o.Score,
		Passed:    o.Passed(),
	})
	return nil
}

func (m *memAttemptRepo) All(_ context.Context) ([]store.AttemptRecord, error) {
	return m.records, nil
}

func (m *memAttemptRepo) ForItem(_ context.Context, subjectID, itemID string) ([]store.AttemptRecord, error) {
	var out []store.AttemptRecord
	for _, r := range m.records {
		if r.SubjectID == subjectID && r.ItemID == itemID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memAttemptRepo) DeleteAll(_ context.Context) error {
	m.records = nil
	return nil
}

// memWriter applies the schedule update and log append together, mirroring
// the transactional store writer.
type memWriter struct {
	reviews  *memReviewRepo
	attempts *memAttemptRepo
}

func (w *memWriter) RecordAttempt(ctx context.Context, next srs.ReviewItem, attemptID string, outcome srs.AttemptOutcome) error {
	if err := w.reviews.Upsert(ctx, next); err != nil {
		return err
	}
	return w.attempts.Append(ctx, attemptID, outcome)
}

func newTestModel(t *testing.T, queue []srs.ReviewItem) (Model, *memAttemptRepo) {
	t.Helper()
	reviews := &memReviewRepo{items: make(map[string]srs.ReviewItem)}
	attempts := &memAttemptRepo{}
	svc := review.NewService(reviews, &memWriter{reviews: reviews, attempts: attempts})
	m := NewModel(svc, queue)
	m.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return m, attempts
}

func dueItem(itemID string) srs.ReviewItem {
	return srs.ReviewItem{
		SubjectID:    "cs101",
		ItemID:       itemID,
		ItemType:     srs.ItemQuiz,
		IntervalDays: 1,
		EaseFactor:   srs.InitialEaseFactor,
		DueAt:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeScore(t *testing.T, m Model, score string) Model {
	t.Helper()
	for _, r := range score {
		next, _ := m.Update(keyPress(r))
		m = next.(Model)
	}
	return m
}

func TestEmptyQueueStartsDone(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if m.phase != phaseDone {
		t.Errorf("phase = %v, want phaseDone for empty queue", m.phase)
	}

	if !strings.Contains(m.render(), "Session complete") {
		t.Error("summary view missing for empty queue")
	}
}

func TestScoringViewShowsItem(t *testing.T) {
	m, _ := newTestModel(t, []srs.ReviewItem{dueItem("cs101-t1-quiz-a")})

	view := m.render()
	if !strings.Contains(view, "Review 1 of 1") {
		t.Errorf("view missing progress header: %q", view)
	}
	if !strings.Contains(view, "CS101 Topic 1 Quiz A") {
		t.Errorf("view missing item title: %q", view)
	}
}

func TestSubmitRecordsAttemptAndShowsFeedback(t *testing.T) {
	m, attempts := newTestModel(t, []srs.ReviewItem{dueItem("cs101-t1-quiz-a")})

	m = typeScore(t, m, "85")
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("enter with valid score returned nil cmd")
	}

	// Run the record command and feed its message back, as the runtime would.
	msg := cmd()
	next, _ = m.Update(msg)
	m = next.(Model)

	if m.phase != phaseFeedback {
		t.Fatalf("phase = %v, want phaseFeedback", m.phase)
	}
	if len(attempts.records) != 1 || attempts.records[0].Score != 85 {
		t.Errorf("attempt log = %+v, want one record with score 85", attempts.records)
	}

	view := m.render()
	if !strings.Contains(view, "Passed with 85") {
		t.Errorf("feedback view = %q, want pass message", view)
	}
}

func TestInvalidScoreShowsError(t *testing.T) {
	m, attempts := newTestModel(t, []srs.ReviewItem{dueItem("cs101-t1-quiz-a")})

	m = typeScore(t, m, "777")
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)

	if cmd != nil {
		t.Error("out-of-range score should not produce a record cmd")
	}
	if m.errMsg == "" {
		t.Error("errMsg empty, want validation message")
	}
	if len(attempts.records) != 0 {
		t.Errorf("attempt log = %+v, want empty", attempts.records)
	}
}

func TestNonDigitKeysIgnoredWhileScoring(t *testing.T) {
	m, _ := newTestModel(t, []srs.ReviewItem{dueItem("cs101-t1-quiz-a")})

	m = typeScore(t, m, "9")
	next, _ := m.Update(keyPress('x'))
	m = next.(Model)

	if got := m.input.Value(); got != "9" {
		t.Errorf("input value = %q, want %q (letters ignored)", got, "9")
	}
}

func TestFeedbackAdvancesToNextItemThenSummary(t *testing.T) {
	queue := []srs.ReviewItem{dueItem("cs101-t1-quiz-a"), dueItem("cs101-t2-quiz-a")}
	m, _ := newTestModel(t, queue)

	// First item: record a pass.
	m = typeScore(t, m, "90")
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	next, _ = m.Update(cmd())
	m = next.(Model)

	// Advance to the second item.
	next, _ = m.Update(keyPress(' '))
	m = next.(Model)
	if m.phase != phaseScoring || m.idx != 1 {
		t.Fatalf("phase = %v idx = %d, want scoring second item", m.phase, m.idx)
	}

	// Second item: record a fail.
	m = typeScore(t, m, "40")
	next, cmd = m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	next, _ = m.Update(cmd())
	m = next.(Model)

	next, _ = m.Update(keyPress(' '))
	m = next.(Model)
	if m.phase != phaseDone {
		t.Fatalf("phase = %v, want phaseDone after last item", m.phase)
	}

	view := m.render()
	if !strings.Contains(view, "reviewed 2 · passed 1 · failed 1") {
		t.Errorf("summary view = %q", view)
	}
}

func TestEscQuitsWhileScoring(t *testing.T) {
	m, _ := newTestModel(t, []srs.ReviewItem{dueItem("cs101-t1-quiz-a")})

	_, cmd := m.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("esc returned nil cmd, want tea.Quit")
	}
}
