package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// openFocus starts a session on the selected kanban task. Opening always
// resets the clock to the full budget.
func (m Model) openFocus() (tea.Model, tea.Cmd) {
	task, ok := m.selectedKanbanTask()
	if !ok {
		m.Status = StatusBar{Text: "select a task to focus on", IsError: true}
		return m, nil
	}
	m.Focus.Active = true
	m.Focus.TaskID = task.ID
	m.Focus.TaskTitle = task.Title
	m.Focus.RemainingSec = FocusTotalSec
	m.Focus.Phase = FocusRunning
	m.Focus.Generation++
	m.Status = StatusBar{Text: fmt.Sprintf("focus: %s", task.Title), IsError: false}
	return m, focusTickCmd(m.Focus.Generation)
}

func (m Model) handleFocusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		switch m.Focus.Phase {
		case FocusRunning:
			m.Focus.Phase = FocusPaused
			m.Status = StatusBar{Text: "focus paused", IsError: false}
			return m, nil
		case FocusPaused:
			m.Focus.Phase = FocusRunning
			m.Focus.Generation++
			m.Status = StatusBar{Text: "focus running", IsError: false}
			return m, focusTickCmd(m.Focus.Generation)
		}
		return m, nil
	case "r":
		// Reset keeps the run/pause state; a running chain keeps ticking.
		// A finished session only restarts via c.
		if m.Focus.Phase == FocusFinished {
			return m, nil
		}
		m.Focus.RemainingSec = FocusTotalSec
		m.Status = StatusBar{Text: "focus reset", IsError: false}
		return m, nil
	case "c":
		if m.Focus.Phase == FocusFinished {
			m.Focus.RemainingSec = FocusTotalSec
			m.Focus.Phase = FocusRunning
			m.Focus.Generation++
			m.Status = StatusBar{Text: "focus running", IsError: false}
			return m, focusTickCmd(m.Focus.Generation)
		}
		return m, nil
	case "esc":
		m.closeFocus()
		return m, nil
	}
	return m, nil
}

// closeFocus bumps the generation so any tick already in flight is ignored.
func (m *Model) closeFocus() {
	m.Focus.Active = false
	m.Focus.Phase = FocusIdle
	m.Focus.RemainingSec = FocusTotalSec
	m.Focus.Generation++
}

func (m Model) onFocusTick(msg FocusTickMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.Focus.Generation || m.Focus.Phase != FocusRunning {
		return m, nil
	}
	if m.Focus.RemainingSec > 0 {
		m.Focus.RemainingSec--
	}
	if m.Focus.RemainingSec == 0 {
		m.Focus.Phase = FocusFinished
		m.Status = StatusBar{Text: "focus session complete", IsError: false}
		m.notify("Focus", fmt.Sprintf("session complete: %s", m.Focus.TaskTitle), "info")
		return m, nil
	}
	return m, focusTickCmd(msg.Generation)
}

func focusTickCmd(generation int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return FocusTickMsg{Generation: generation}
	})
}
