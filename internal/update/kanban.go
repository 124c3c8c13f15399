package update

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiren23/focusflow/internal/model"
)

func (m Model) handleKanbanKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.Kanban.Column > model.PriorityUrgentImportant {
			m.Kanban.Column--
			m.clampKanbanCursor()
		}
	case "l", "right":
		if m.Kanban.Column < model.PriorityNeither {
			m.Kanban.Column++
			m.clampKanbanCursor()
		}
	case "up", "k":
		if m.Kanban.Cursor > 0 {
			m.Kanban.Cursor--
		}
	case "down", "j":
		if m.Kanban.Cursor < len(m.kanbanColumn())-1 {
			m.Kanban.Cursor++
		}
	case "s":
		m.Kanban.Searching = true
		m.searchInput.SetValue(m.Kanban.Query)
		m.searchInput.Focus()
		m.Status = StatusBar{Text: "search active", IsError: false}
	case "enter":
		if task, ok := m.selectedKanbanTask(); ok {
			m.openEditorFor(task)
		}
	case " ":
		if task, ok := m.selectedKanbanTask(); ok {
			if err := m.Store.ToggleStatus(task.ID); err != nil {
				return m, func() tea.Msg { return AppErrorMsg{Err: err} }
			}
			m.clampKanbanCursor()
		}
	case "x":
		if task, ok := m.selectedKanbanTask(); ok {
			removed, err := m.Store.Delete(task.ID)
			if err != nil {
				return m, func() tea.Msg { return AppErrorMsg{Err: err} }
			}
			if removed && m.Editor.Active && m.Editor.TaskID == task.ID {
				m.closeEditor()
			}
			m.clampKanbanCursor()
			m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", task.Title), IsError: false}
		}
	case "m":
		if _, ok := m.selectedKanbanTask(); ok {
			m.Kanban.PendingMove = true
			m.Status = StatusBar{Text: "move to quadrant 1-4", IsError: false}
		}
	}
	return m, nil
}

func (m Model) handlePendingMoveKey(msg tea.KeyMsg) Model {
	m.Kanban.PendingMove = false
	n, err := strconv.Atoi(msg.String())
	if err != nil || !model.Priority(n).IsValid() {
		m.Status = StatusBar{Text: "move cancelled", IsError: false}
		return m
	}
	task, ok := m.selectedKanbanTask()
	if !ok {
		return m
	}
	if err := m.Store.ReassignPriority(task.ID, model.Priority(n)); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.clampKanbanCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("moved to %s", model.Priority(n).Label()), IsError: false}
	return m
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Kanban.Searching = false
		m.Kanban.Query = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.clampKanbanCursor()
	case "enter":
		m.Kanban.Searching = false
		m.searchInput.Blur()
		m.clampKanbanCursor()
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		_ = cmd
		m.Kanban.Query = m.searchInput.Value()
		m.clampKanbanCursor()
	}
	return m
}

// kanbanColumn lists the open tasks of the focused quadrant after the search
// filter.
func (m Model) kanbanColumn() []model.Task {
	return m.kanbanColumnFor(m.Kanban.Column)
}

func (m Model) kanbanColumnFor(p model.Priority) []model.Task {
	var out []model.Task
	for _, t := range m.Store.MatchTitle(m.Kanban.Query) {
		if t.Priority == p && t.Status != model.StatusDone {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) selectedKanbanTask() (model.Task, bool) {
	col := m.kanbanColumn()
	if len(col) == 0 || m.Kanban.Cursor < 0 || m.Kanban.Cursor >= len(col) {
		return model.Task{}, false
	}
	return col[m.Kanban.Cursor], true
}

func (m *Model) clampKanbanCursor() {
	n := len(m.kanbanColumn())
	if n == 0 {
		m.Kanban.Cursor = 0
		return
	}
	if m.Kanban.Cursor >= n {
		m.Kanban.Cursor = n - 1
	}
	if m.Kanban.Cursor < 0 {
		m.Kanban.Cursor = 0
	}
}
