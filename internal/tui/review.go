// Package tui drives an interactive review session in the terminal. The
// model walks the due queue one item at a time: the learner enters the
// score earned on the quiz or exercise, the attempt is recorded, and the
// new schedule for the item is shown before moving on.
package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/recap/internal/format"
	"github.com/abhisek/recap/internal/review"
	"github.com/abhisek/recap/internal/srs"
)

// phase tracks where the session is in its lifecycle.
type phase int

const (
	phaseScoring  phase = iota // waiting for a score on the current item
	phaseFeedback              // showing the recorded result
	phaseDone                  // queue exhausted, showing the summary
)

// attemptRecordedMsg carries the updated schedule after a recorded attempt.
type attemptRecordedMsg struct {
	item *srs.ReviewItem
}

// attemptErrMsg carries a recording failure.
type attemptErrMsg struct {
	err error
}

// Model is the Bubble Tea model for a review session.
type Model struct {
	service *review.Service
	queue   []srs.ReviewItem
	now     func() time.Time

	idx    int
	phase  phase
	input  textinput.Model
	errMsg string
	last   *srs.ReviewItem
	passed int
	failed int
	width  int
	height int
}

// NewModel creates a session model over the due queue. The queue order is
// preserved; callers pass the output of SelectDue.
func NewModel(service *review.Service, queue []srs.ReviewItem) Model {
	ti := textinput.New()
	ti.Placeholder = "score 0-100"
	ti.CharLimit = 3
	ti.Focus()

	m := Model{
		service: service,
		queue:   queue,
		now:     time.Now,
		input:   ti,
	}
	if len(queue) == 0 {
		m.phase = phaseDone
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case attemptRecordedMsg:
		m.last = msg.item
		if msg.item.LastScore >= srs.QuizPassingScore {
			m.passed++
		} else {
			m.failed++
		}
		m.phase = phaseFeedback
		m.errMsg = ""
		return m, nil

	case attemptErrMsg:
		m.errMsg = msg.err.Error()
		m.phase = phaseScoring
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseScoring {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseScoring:
		switch key {
		case "esc":
			return m, tea.Quit
		case "enter":
			return m.submitScore()
		default:
			// Digits only; everything else is swallowed.
			if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

	case phaseFeedback:
		// Any key advances.
		m.idx++
		m.last = nil
		if m.idx >= len(m.queue) {
			m.phase = phaseDone
			return m, nil
		}
		m.phase = phaseScoring
		m.input.SetValue("")
		return m, m.input.Focus()

	case phaseDone:
		if key == "enter" || key == "esc" || key == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

// submitScore validates the typed score and records the attempt.
func (m Model) submitScore() (tea.Model, tea.Cmd) {
	score, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
	if err != nil || score < 0 || score > 100 {
		m.errMsg = "enter a score between 0 and 100"
		return m, nil
	}

	item := m.queue[m.idx]
	outcome := srs.AttemptOutcome{
		SubjectID: item.SubjectID,
		ItemID:    item.ItemID,
		ItemType:  item.ItemType,
		Score:     score,
		Timestamp: m.now(),
	}

	svc := m.service
	return m, func() tea.Msg {
		next, err := svc.RecordAttempt(context.Background(), outcome)
		if err != nil {
			return attemptErrMsg{err: err}
		}
		return attemptRecordedMsg{item: next}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.SetContent(m.render())
	return v
}

// render produces the full frame for the current phase.
func (m Model) render() string {
	var content string
	switch m.phase {
	case phaseDone:
		content = m.renderSummary()
	case phaseFeedback:
		content = m.renderFeedback()
	default:
		content = m.renderScoring()
	}
	return styleCard.Render(content)
}

func (m Model) renderScoring() string {
	item := m.queue[m.idx]

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Review %d of %d", m.idx+1, len(m.queue))))
	b.WriteString("\n\n")
	b.WriteString(styleBody.Render(format.Title(item)))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render(fmt.Sprintf("streak %d · interval %dd · last score %d",
		item.Streak, item.IntervalDays, item.LastScore)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(styleFail.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(styleHint.Render("enter: record · esc: quit"))
	return b.String()
}

func (m Model) renderFeedback() string {
	var b strings.Builder
	if m.last == nil {
		return ""
	}

	if m.last.LastScore >= srs.QuizPassingScore {
		b.WriteString(stylePass.Render(fmt.Sprintf("Passed with %d", m.last.LastScore)))
	} else {
		b.WriteString(styleFail.Render(fmt.Sprintf("Failed with %d", m.last.LastScore)))
	}
	b.WriteString("\n\n")
	b.WriteString(styleBody.Render(fmt.Sprintf("streak %d · next review in %dd (%s)",
		m.last.Streak, m.last.IntervalDays, m.last.DueAt.Format("Jan 2"))))
	b.WriteString("\n\n")
	b.WriteString(styleHint.Render("any key: next item"))
	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString(styleBody.Render(fmt.Sprintf("reviewed %d · passed %d · failed %d",
		m.passed+m.failed, m.passed, m.failed)))
	b.WriteString("\n\n")
	b.WriteString(styleHint.Render("enter: exit"))
	return b.String()
}

// Run starts an interactive review session over the due queue.
func Run(service *review.Service, queue []srs.ReviewItem) error {
	p := tea.NewProgram(NewModel(service, queue))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running review session:", err)
		return err
	}
	return nil
}
