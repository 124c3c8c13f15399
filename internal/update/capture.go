package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiren23/focusflow/internal/ai"
	"github.com/shiren23/focusflow/internal/model"
)

const captureTimeout = 30 * time.Second

func (m Model) openCapture() (tea.Model, tea.Cmd) {
	m.Capture = CaptureState{Active: true}
	m.captureInput.SetValue("")
	m.captureInput.Focus()
	m.Status = StatusBar{Text: "describe the task in your own words", IsError: false}
	return m, nil
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Input is frozen while a parse is in flight; only esc backs out.
	if m.Capture.Busy {
		if msg.String() == "esc" {
			m.Capture = CaptureState{}
			m.captureInput.Blur()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.Capture = CaptureState{}
		m.captureInput.Blur()
		return m, nil
	case "enter":
		text := m.captureInput.Value()
		if text == "" {
			return m, nil
		}
		m.Capture.Busy = true
		m.Status = StatusBar{Text: "parsing...", IsError: false}
		return m, tea.Batch(m.captureSpinner.Tick, parseCaptureCmd(m.Settings, text, m.now))
	default:
		var cmd tea.Cmd
		m.captureInput, cmd = m.captureInput.Update(msg)
		_ = cmd
		return m, nil
	}
}

func parseCaptureCmd(settings model.Settings, text string, now func() time.Time) tea.Cmd {
	adapter := ai.New(ai.ConfigFromSettings(settings))
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), captureTimeout)
		defer cancel()
		draft, err := adapter.Parse(ctx, text)
		return CaptureDoneMsg{Draft: draft, Err: err}
	}
}

func (m Model) onCaptureDone(msg CaptureDoneMsg) (tea.Model, tea.Cmd) {
	m.Capture.Busy = false
	if msg.Err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("ai parse: %v", msg.Err), IsError: true}
		m.notify("Capture Failed", msg.Err.Error(), "error")
		return m, nil
	}
	if msg.Draft == nil {
		m.Status = StatusBar{Text: "no AI key configured; set one under settings (3)", IsError: true}
		return m, nil
	}

	task := taskFromDraft(*msg.Draft, m.newID(), m.now())
	if err := m.Store.Add(task); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("add task: %v", err), IsError: true}
		return m, nil
	}
	m.Capture = CaptureState{}
	m.captureInput.Blur()
	m.captureInput.SetValue("")
	m.clampKanbanCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("captured: %s", task.Title), IsError: false}
	m.notify("Capture", task.Title, "info")
	return m, nil
}

// taskFromDraft fills the fields the parser does not produce. A deadline that
// does not parse as a calendar date is dropped rather than failing capture.
func taskFromDraft(d ai.Draft, id string, now time.Time) model.Task {
	task := model.Task{
		ID:        id,
		Title:     d.Title,
		Category:  d.Category,
		Priority:  d.Priority,
		Note:      d.Note,
		Repeat:    model.RepeatNone,
		Status:    model.StatusTodo,
		CreatedAt: model.MillisFrom(now),
	}
	if !task.Priority.IsValid() {
		task.Priority = model.PriorityImportant
	}
	if task.Category == "" {
		task.Category = ai.DefaultCategory
	}
	if d.Deadline != "" {
		if parsed, ok := parseDraftDeadline(d.Deadline, now.Location()); ok {
			task.Deadline = &parsed
		}
	}
	return task
}

// parseDraftDeadline accepts the ISO 8601 timestamps the prompt asks for as
// well as bare calendar dates.
func parseDraftDeadline(s string, loc *time.Location) (time.Time, bool) {
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		return parsed, true
	}
	if parsed, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}
