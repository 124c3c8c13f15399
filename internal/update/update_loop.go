package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiren23/focusflow/internal/brainclock"
	"github.com/shiren23/focusflow/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Monitor != nil {
		return waitForOverdueCmd(m.Monitor.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.Capture.Busy {
			var cmd tea.Cmd
			m.captureSpinner, cmd = m.captureSpinner.Update(typed)
			return m, cmd
		}
	case FocusTickMsg:
		return m.onFocusTick(typed)
	case CaptureDoneMsg:
		return m.onCaptureDone(typed)
	case OverdueDueMsg:
		return m.onOverdueDue(typed)
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Overlays take the keyboard before global keys; ctrl+c always quits.
	if keyStr == "ctrl+c" {
		return m.quit()
	}
	if m.Palette.Active {
		if keyStr == m.Keys.Help {
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		return m.handlePaletteKey(msg), nil
	}
	if m.Editor.Active {
		return m.handleEditorKey(msg)
	}
	if m.Focus.Active {
		return m.handleFocusKey(msg)
	}
	if m.Capture.Active {
		return m.handleCaptureKey(msg)
	}
	if m.Kanban.Searching && m.CurrentView == ViewKanban {
		return m.handleSearchKey(msg), nil
	}
	if m.CurrentView == ViewSettings && m.settingsInputActive() {
		return m.handleSettingsInputKey(msg), nil
	}
	if m.Kanban.PendingMove && m.CurrentView == ViewKanban {
		return m.handlePendingMoveKey(msg), nil
	}

	switch keyStr {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		return m, nil
	case m.Keys.Kanban:
		m.CurrentView = ViewKanban
		return m, nil
	case m.Keys.Calendar:
		m.CurrentView = ViewCalendar
		return m, nil
	case m.Keys.Settings:
		m.CurrentView = ViewSettings
		return m, nil
	case m.Keys.New:
		m.openEditorForNew()
		return m, nil
	case m.Keys.Capture:
		return m.openCapture()
	case m.Keys.Focus:
		return m.openFocus()
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Quit:
		return m.quit()
	}

	switch m.CurrentView {
	case ViewKanban:
		return m.handleKanbanKey(msg)
	case ViewCalendar:
		return m.handleCalendarKey(msg), nil
	case ViewSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	if m.Monitor != nil {
		m.Monitor.Stop()
	}
	return m, tea.Quit
}

func (m Model) onOverdueDue(msg OverdueDueMsg) (tea.Model, tea.Cmd) {
	m.OverdueLog = append(m.OverdueLog, msg.Event)
	if len(m.OverdueLog) > 20 {
		m.OverdueLog = m.OverdueLog[len(m.OverdueLog)-20:]
	}
	text := fmt.Sprintf("%d task(s) overdue", len(msg.Event.Tasks))
	if len(msg.Event.Tasks) == 1 {
		text = fmt.Sprintf("overdue: %s", msg.Event.Tasks[0].Title)
	}
	m.Status = StatusBar{Text: text, IsError: true}
	m.notify("Brain Clock", text, "error")
	if m.Monitor != nil {
		return m, waitForOverdueCmd(m.Monitor.C())
	}
	return m, nil
}

func waitForOverdueCmd(ch <-chan brainclock.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return OverdueDueMsg{Event: ev}
	}
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	switch m.CurrentView {
	case ViewKanban:
		leftPane = m.renderKanbanView()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
	case ViewSettings:
		leftPane = m.renderSettingsView()
	}

	rightPane := strings.TrimSpace(strings.Join([]string{
		m.renderEditorIfVisible(),
		m.renderFocusIfVisible(),
		m.renderCaptureIfVisible(),
		m.renderCommandPalette(),
		m.renderHelpIfVisible(),
	}, "\n"))

	notificationView := m.renderNotificationsView()

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("focusflow | view: %s | %s", m.CurrentView, m.Settings.UserName),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: strings.TrimSpace(notificationView),
		Footer: fmt.Sprintf("keys: %s kanban | %s calendar | %s settings | %s new | %s capture | %s focus | / cmd | %s help | %s quit",
			m.Keys.Kanban, m.Keys.Calendar, m.Keys.Settings, m.Keys.New, m.Keys.Capture, m.Keys.Focus, m.Keys.Help, m.Keys.Quit),
	}, views.ThemeByName(m.Settings.ThemeColor, m.Settings.IsDarkMode))
}
