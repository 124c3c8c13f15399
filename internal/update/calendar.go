package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.shiftCalendarMonth(-1)
	case "l", "right":
		m.shiftCalendarMonth(1)
	case "t":
		m.Calendar.FocusMonth = firstOfMonth(m.now())
		m.Status = StatusBar{Text: "calendar: today", IsError: false}
	}
	return m
}

func (m *Model) shiftCalendarMonth(delta int) {
	m.Calendar.FocusMonth = m.Calendar.FocusMonth.AddDate(0, delta, 0)
	m.Status = StatusBar{
		Text:    fmt.Sprintf("calendar: %s", m.Calendar.FocusMonth.Format("January 2006")),
		IsError: false,
	}
}
