package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiren23/focusflow/internal/ai"
	"github.com/shiren23/focusflow/internal/model"
	"github.com/shiren23/focusflow/internal/views"
)

// Editor field values that live in text widgets (title, deadline, note) are
// committed into EditorState when the widget closes; everything else is
// edited in place.

func (m *Model) openEditorForNew() {
	m.Editor = EditorState{
		Active:   true,
		Priority: m.Kanban.Column,
		Repeat:   model.RepeatNone,
		Status:   model.StatusTodo,
		Category: m.defaultCategory(),
	}
	if !m.Editor.Priority.IsValid() {
		m.Editor.Priority = model.PriorityImportant
	}
	m.resetEditorWidgets("", "", "")
	m.beginEditorFieldEdit()
}

func (m *Model) openEditorFor(t model.Task) {
	deadline := ""
	if t.Deadline != nil {
		deadline = t.Deadline.Format("2006-01-02")
	}
	m.Editor = EditorState{
		Active:      true,
		TaskID:      t.ID,
		Priority:    t.Priority,
		Repeat:      t.Repeat,
		Status:      t.Status,
		Category:    t.Category,
		SubTasks:    append([]model.SubTask(nil), t.SubTasks...),
		Attachments: append([]model.Attachment(nil), t.Attachments...),
		CreatedAt:   t.CreatedAt,
	}
	m.resetEditorWidgets(t.Title, deadline, t.Note)
}

func (m *Model) resetEditorWidgets(title, deadline, note string) {
	m.titleInput.SetValue(title)
	m.deadlineInput.SetValue(deadline)
	m.subtaskInput.SetValue("")
	m.noteArea.SetValue(note)
	m.notePreview.SetContent(views.RenderMarkdown(note, m.Settings.IsDarkMode))
}

func (m *Model) closeEditor() {
	m.Editor = EditorState{}
	m.titleInput.Blur()
	m.deadlineInput.Blur()
	m.subtaskInput.Blur()
	m.noteArea.Blur()
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Editor.Editing {
		return m.handleEditorEditingKey(msg), nil
	}

	switch msg.String() {
	case "esc":
		m.closeEditor()
		return m, nil
	case "tab", "down", "j":
		m.Editor.Field = (m.Editor.Field + 1) % fieldCount
		return m, nil
	case "shift+tab", "up", "k":
		m.Editor.Field = (m.Editor.Field + fieldCount - 1) % fieldCount
		return m, nil
	case "enter":
		m.beginEditorFieldEdit()
		return m, nil
	case "left", "h":
		m.cycleEditorField(-1)
		return m, nil
	case "right", "l":
		m.cycleEditorField(1)
		return m, nil
	case "a":
		if m.Editor.Field == FieldSubTasks {
			m.Editor.Editing = true
			m.subtaskInput.SetValue("")
			m.subtaskInput.Focus()
		}
		return m, nil
	case " ":
		if m.Editor.Field == FieldSubTasks {
			if i := m.Editor.SubCursor; i >= 0 && i < len(m.Editor.SubTasks) {
				m.Editor.SubTasks[i].Completed = !m.Editor.SubTasks[i].Completed
			}
		}
		return m, nil
	case "x":
		if m.Editor.Field == FieldSubTasks {
			if i := m.Editor.SubCursor; i >= 0 && i < len(m.Editor.SubTasks) {
				m.Editor.SubTasks = append(m.Editor.SubTasks[:i], m.Editor.SubTasks[i+1:]...)
				if m.Editor.SubCursor >= len(m.Editor.SubTasks) && m.Editor.SubCursor > 0 {
					m.Editor.SubCursor--
				}
			}
		}
		return m, nil
	case "ctrl+s":
		return m.saveEditor()
	case "ctrl+d":
		return m.deleteFromEditor()
	}
	return m, nil
}

func (m *Model) beginEditorFieldEdit() {
	switch m.Editor.Field {
	case FieldTitle:
		m.Editor.Editing = true
		m.titleInput.Focus()
	case FieldDeadline:
		m.Editor.Editing = true
		m.deadlineInput.Focus()
	case FieldNote:
		m.Editor.Editing = true
		m.noteArea.Focus()
	case FieldSubTasks:
		m.Editor.Editing = true
		m.subtaskInput.SetValue("")
		m.subtaskInput.Focus()
	default:
		m.cycleEditorField(1)
	}
}

func (m *Model) cycleEditorField(delta int) {
	switch m.Editor.Field {
	case FieldCategory:
		m.Editor.Category = cycleString(m.editorCategories(), m.Editor.Category, delta)
	case FieldPriority:
		p := int(m.Editor.Priority) + delta
		if p < int(model.PriorityUrgentImportant) {
			p = int(model.PriorityNeither)
		}
		if p > int(model.PriorityNeither) {
			p = int(model.PriorityUrgentImportant)
		}
		m.Editor.Priority = model.Priority(p)
	case FieldRepeat:
		repeats := []string{
			string(model.RepeatNone), string(model.RepeatDaily),
			string(model.RepeatWeekly), string(model.RepeatMonthly),
		}
		m.Editor.Repeat = model.RepeatType(cycleString(repeats, string(m.Editor.Repeat), delta))
	case FieldSubTasks:
		next := m.Editor.SubCursor + delta
		if next >= 0 && next < len(m.Editor.SubTasks) {
			m.Editor.SubCursor = next
		}
	}
}

func (m Model) handleEditorEditingKey(msg tea.KeyMsg) Model {
	if m.Editor.Field == FieldNote {
		switch msg.String() {
		case "esc":
			m.Editor.Editing = false
			m.noteArea.Blur()
			m.notePreview.SetContent(views.RenderMarkdown(m.noteArea.Value(), m.Settings.IsDarkMode))
		default:
			var cmd tea.Cmd
			m.noteArea, cmd = m.noteArea.Update(msg)
			_ = cmd
		}
		return m
	}

	switch msg.String() {
	case "esc":
		m.Editor.Editing = false
		m.titleInput.Blur()
		m.deadlineInput.Blur()
		m.subtaskInput.Blur()
	case "enter":
		m.Editor.Editing = false
		if m.Editor.Field == FieldSubTasks {
			if text := m.subtaskInput.Value(); text != "" {
				m.Editor.SubTasks = append(m.Editor.SubTasks, model.SubTask{
					ID:   m.newID(),
					Text: text,
				})
				m.Editor.SubCursor = len(m.Editor.SubTasks) - 1
			}
			m.subtaskInput.SetValue("")
		}
		m.titleInput.Blur()
		m.deadlineInput.Blur()
		m.subtaskInput.Blur()
	default:
		var cmd tea.Cmd
		switch m.Editor.Field {
		case FieldTitle:
			m.titleInput, cmd = m.titleInput.Update(msg)
		case FieldDeadline:
			m.deadlineInput, cmd = m.deadlineInput.Update(msg)
		case FieldSubTasks:
			m.subtaskInput, cmd = m.subtaskInput.Update(msg)
		}
		_ = cmd
	}
	return m
}

func (m Model) saveEditor() (tea.Model, tea.Cmd) {
	task, err := m.editorTask()
	if err != nil {
		m.Editor.Err = err.Error()
		return m, nil
	}

	if m.Editor.TaskID == "" {
		err = m.Store.Add(task)
	} else {
		err = m.Store.Update(task)
	}
	if err != nil {
		m.Editor.Err = err.Error()
		return m, nil
	}
	m.closeEditor()
	m.clampKanbanCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("saved: %s", task.Title), IsError: false}
	return m, nil
}

func (m Model) editorTask() (model.Task, error) {
	title := m.titleInput.Value()
	if title == "" {
		return model.Task{}, fmt.Errorf("title is required")
	}

	var deadline *time.Time
	if raw := m.deadlineInput.Value(); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return model.Task{}, fmt.Errorf("invalid deadline %q, want YYYY-MM-DD", raw)
		}
		deadline = &parsed
	}

	task := model.Task{
		ID:          m.Editor.TaskID,
		Title:       title,
		Category:    m.Editor.Category,
		Priority:    m.Editor.Priority,
		Deadline:    deadline,
		Repeat:      m.Editor.Repeat,
		SubTasks:    m.Editor.SubTasks,
		Note:        m.noteArea.Value(),
		Attachments: m.Editor.Attachments,
		Status:      m.Editor.Status,
		CreatedAt:   m.Editor.CreatedAt,
	}
	if task.ID == "" {
		task.ID = m.newID()
		task.CreatedAt = model.MillisFrom(m.now())
		task.Status = model.StatusTodo
	}
	return task, nil
}

func (m Model) deleteFromEditor() (tea.Model, tea.Cmd) {
	if m.Editor.TaskID == "" {
		m.closeEditor()
		return m, nil
	}
	removed, err := m.Store.Delete(m.Editor.TaskID)
	if err != nil {
		return m, func() tea.Msg { return AppErrorMsg{Err: err} }
	}
	m.closeEditor()
	m.clampKanbanCursor()
	if removed {
		m.Status = StatusBar{Text: "task deleted", IsError: false}
	}
	return m, nil
}

func (m Model) defaultCategory() string {
	if len(m.Categories) > 0 {
		return m.Categories[0]
	}
	return ai.DefaultCategory
}

// editorCategories always contains the task's current category so cycling
// never silently rewrites a value the configured list no longer has.
func (m Model) editorCategories() []string {
	out := append([]string(nil), m.Categories...)
	for _, c := range out {
		if c == m.Editor.Category {
			return out
		}
	}
	return append(out, m.Editor.Category)
}

func cycleString(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+delta+len(options))%len(options)]
		}
	}
	return options[0]
}
